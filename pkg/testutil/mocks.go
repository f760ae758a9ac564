package testutil

import (
	"io/fs"

	"github.com/stretchr/testify/mock"
)

// MockFS is a testify mock implementation of types.FS.
type MockFS struct {
	mock.Mock
}

func (m *MockFS) Stat(name string) (fs.FileInfo, error) {
	args := m.Called(name)
	info, _ := args.Get(0).(fs.FileInfo)
	return info, args.Error(1)
}

func (m *MockFS) ReadFile(name string) ([]byte, error) {
	args := m.Called(name)
	data, _ := args.Get(0).([]byte)
	return data, args.Error(1)
}

func (m *MockFS) WriteFile(name string, data []byte, perm fs.FileMode) error {
	args := m.Called(name, data, perm)
	return args.Error(0)
}

func (m *MockFS) ReadDir(name string) ([]fs.DirEntry, error) {
	args := m.Called(name)
	entries, _ := args.Get(0).([]fs.DirEntry)
	return entries, args.Error(1)
}

func (m *MockFS) MkdirAll(path string, perm fs.FileMode) error {
	args := m.Called(path, perm)
	return args.Error(0)
}

func (m *MockFS) Remove(name string) error {
	args := m.Called(name)
	return args.Error(0)
}
