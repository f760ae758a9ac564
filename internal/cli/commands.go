package cli

import (
	"fmt"

	"github.com/arthur-debert/stemdex/internal/version"
	"github.com/arthur-debert/stemdex/pkg/core"
	"github.com/arthur-debert/stemdex/pkg/filesystem"
	"github.com/arthur-debert/stemdex/pkg/logging"
	"github.com/arthur-debert/stemdex/pkg/packs"
	"github.com/arthur-debert/stemdex/pkg/ui"
	"github.com/arthur-debert/stemdex/pkg/ui/view"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func newGenerateCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:               "generate [packs...]",
		Short:             MsgGenerateShort,
		Long:              MsgGenerateLong,
		Example:           MsgGenerateExample,
		ValidArgsFunction: packNamesCompletion(flags),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, flags, args)
		},
	}
}

func runGenerate(cmd *cobra.Command, flags *globalFlags, packNames []string) error {
	logger := logging.GetLogger("cmd.generate")

	base, cfg, err := flags.load()
	if err != nil {
		return err
	}

	logger.Info().
		Str("packsRoot", cfg.PacksRoot(base)).
		Bool("dryRun", flags.dryRun).
		Strs("packs", packNames).
		Msg("Generating manifests")

	result, err := core.Generate(core.Options{
		PacksRoot:  cfg.PacksRoot(base),
		PackNames:  packNames,
		Config:     cfg,
		FileSystem: filesystem.NewOS(),
		DryRun:     flags.dryRun,
		Out:        cmd.OutOrStdout(),
	})
	if err != nil {
		return err
	}
	return result.Err()
}

func newCheckCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:               "check [packs...]",
		Short:             MsgCheckShort,
		Long:              MsgCheckLong,
		ValidArgsFunction: packNamesCompletion(flags),
		RunE: func(cmd *cobra.Command, args []string) error {
			base, cfg, err := flags.load()
			if err != nil {
				return err
			}

			result, err := core.Check(core.Options{
				PacksRoot:  cfg.PacksRoot(base),
				PackNames:  args,
				Config:     cfg,
				FileSystem: filesystem.NewOS(),
				Out:        cmd.OutOrStdout(),
			})
			if err != nil {
				return err
			}
			return result.Err()
		},
	}
}

func newListCmd(flags *globalFlags) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:               "list [packs...]",
		Short:             MsgListShort,
		Long:              MsgListLong,
		Example:           MsgListExample,
		ValidArgsFunction: packNamesCompletion(flags),
		RunE: func(cmd *cobra.Command, args []string) error {
			outputFormat, err := ui.ParseFormat(format)
			if err != nil {
				return err
			}

			base, cfg, err := flags.load()
			if err != nil {
				return err
			}

			result, err := core.List(core.Options{
				PacksRoot:  cfg.PacksRoot(base),
				PackNames:  args,
				Config:     cfg,
				FileSystem: filesystem.NewOS(),
			})
			if err != nil {
				return err
			}

			renderer, err := ui.NewRenderer(outputFormat, cmd.OutOrStdout())
			if err != nil {
				return fmt.Errorf(MsgErrRenderer, err)
			}
			if err := renderer.RenderListing(view.FromResult(result, cfg.Stems.Names)); err != nil {
				return err
			}
			return result.Err()
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "auto", MsgFlagListFormat)
	return cmd
}

func newConfigCmd(flags *globalFlags) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "config",
		Short: MsgConfigShort,
		Long:  MsgConfigLong,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, cfg, err := flags.load()
			if err != nil {
				return err
			}

			data, err := ui.MarshalConfig(cfg, format)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "toml", MsgFlagConfigFormat)
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: MsgVersionShort,
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprint(cmd.OutOrStdout(), version.String())
		},
	}
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 MsgCompletionShort,
		Long:                  MsgCompletionLong,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletionV2(out, true)
			case "zsh":
				return cmd.Root().GenZshCompletion(out)
			case "fish":
				return cmd.Root().GenFishCompletion(out, true)
			default:
				return cmd.Root().GenPowerShellCompletionWithDesc(out)
			}
		},
	}
}

// packNamesCompletion completes pack names not already on the command line
func packNamesCompletion(flags *globalFlags) func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	return func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		base, cfg, err := flags.load()
		if err != nil {
			return nil, cobra.ShellCompDirectiveError
		}

		found, err := packs.Discover(cfg.PacksRoot(base), filesystem.NewOS(), packs.Options{
			Ignore:     cfg.Packs.Ignore,
			IgnoreFile: cfg.Packs.IgnoreFile,
		})
		if err != nil {
			log.Debug().Err(err).Msg("Pack completion failed")
			return nil, cobra.ShellCompDirectiveError
		}

		used := make(map[string]bool, len(args))
		for _, arg := range packs.NormalizePackNames(args) {
			used[arg] = true
		}

		var available []string
		for _, name := range packs.GetPackNames(found) {
			if !used[name] {
				available = append(available, name)
			}
		}
		return available, cobra.ShellCompDirectiveNoFileComp
	}
}
