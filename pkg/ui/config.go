package ui

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// ConfigFormats lists the formats MarshalConfig accepts.
var ConfigFormats = []string{"toml", "yaml", "json"}

// MarshalConfig renders v, typically the effective *config.Config, in one of
// ConfigFormats. The result always ends in a newline.
func MarshalConfig(v interface{}, format string) ([]byte, error) {
	var (
		data []byte
		err  error
	)
	switch strings.ToLower(format) {
	case "toml", "":
		data, err = toml.Marshal(v)
	case "yaml", "yml":
		data, err = yaml.Marshal(v)
	case "json":
		data, err = json.MarshalIndent(v, "", "  ")
	default:
		return nil, fmt.Errorf("unknown config format: %s (want one of %s)", format, strings.Join(ConfigFormats, ", "))
	}
	if err != nil {
		return nil, err
	}
	if len(data) == 0 || data[len(data)-1] != '\n' {
		data = append(data, '\n')
	}
	return data, nil
}
