package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/arthur-debert/stemdex/internal/version"
	"github.com/arthur-debert/stemdex/pkg/config"
	"github.com/arthur-debert/stemdex/pkg/logging"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// globalFlags are the persistent flags shared by every command
type globalFlags struct {
	verbosity    int
	dryRun       bool
	root         string
	stems        string
	manifestName string
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	initTemplateFormatting()

	flags := &globalFlags{}

	rootCmd := &cobra.Command{
		Use:     "stemdex",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		Args:    cobra.NoArgs,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(flags.verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, flags, nil)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		DisableAutoGenTag: true,
	}

	rootCmd.PersistentFlags().CountVarP(&flags.verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().BoolVar(&flags.dryRun, "dry-run", false, MsgFlagDryRun)
	rootCmd.PersistentFlags().StringVar(&flags.root, "root", "", MsgFlagRoot)
	rootCmd.PersistentFlags().StringVar(&flags.stems, "stems", "", MsgFlagStems)
	rootCmd.PersistentFlags().StringVar(&flags.manifestName, "manifest-name", "", MsgFlagManifestName)

	rootCmd.SetUsageTemplate(MsgUsageTemplate)

	rootCmd.AddCommand(newGenerateCmd(flags))
	rootCmd.AddCommand(newCheckCmd(flags))
	rootCmd.AddCommand(newListCmd(flags))
	rootCmd.AddCommand(newConfigCmd(flags))
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCompletionCmd())

	return rootCmd
}

// baseDir is the directory holding packs/ and stemdex.toml: --root when
// given, otherwise the directory of the running executable
func (f *globalFlags) baseDir() (string, error) {
	if f.root != "" {
		abs, err := filepath.Abs(f.root)
		if err != nil {
			return "", fmt.Errorf(MsgErrBaseDir, err)
		}
		return abs, nil
	}

	exe, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf(MsgErrBaseDir, err)
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return filepath.Dir(exe), nil
}

// overrides turns the config flags into koanf keys
func (f *globalFlags) overrides() map[string]interface{} {
	o := map[string]interface{}{}
	if f.stems != "" {
		o["stems.names"] = f.stems
	}
	if f.manifestName != "" {
		o["manifest.filename"] = f.manifestName
	}
	return o
}

// load resolves the base directory and the layered configuration
func (f *globalFlags) load() (string, *config.Config, error) {
	base, err := f.baseDir()
	if err != nil {
		return "", nil, err
	}
	cfg, err := config.Load(base, f.overrides())
	if err != nil {
		return "", nil, err
	}
	log.Debug().
		Str("baseDir", base).
		Str("packsRoot", cfg.PacksRoot(base)).
		Msg("Resolved base directory")
	return base, cfg, nil
}
