package cli

// Command descriptions
const (
	MsgRootShort = "Index the loop files of every sample pack into manifest.json"
	MsgRootLong  = `stemdex scans every pack folder under packs/, finds the loop files of each
known stem (drums_loop_01.ogg, bass_loop_2.ogg, ...) and writes a
manifest.json into the pack listing them in natural order.

Run without a command it behaves like "stemdex generate".`

	MsgGenerateShort = "Write manifest.json for every pack"
	MsgGenerateLong  = `Generate rebuilds the manifest of each pack (or only the named packs) and
overwrites the existing file. A pack that cannot be read is reported and
skipped; the remaining packs are still processed.`
	MsgGenerateExample = `  stemdex generate
  stemdex generate lofi ambient
  stemdex --dry-run generate`

	MsgCheckShort = "Report packs whose manifest is missing or out of date"
	MsgCheckLong  = `Check builds each manifest in memory and compares it byte for byte with
the file on disk. Nothing is written. The exit status is non-zero when any
manifest is stale or missing.`

	MsgListShort   = "Show per-stem loop counts for every pack"
	MsgListLong    = "List builds each manifest in memory and shows how many loop files every stem has. Nothing is written."
	MsgListExample = `  stemdex list
  stemdex list --format json`

	MsgConfigShort = "Print the effective configuration"
	MsgConfigLong  = `Config prints the configuration after layering the built-in defaults,
stemdex.toml in the base directory and STEMDEX_* environment variables.`

	MsgVersionShort    = "Print version information"
	MsgCompletionShort = "Generate shell completion script"
	MsgCompletionLong  = `To load completions:

Bash:
  $ source <(stemdex completion bash)

Zsh:
  $ stemdex completion zsh > "${fpath[1]}/_stemdex"

Fish:
  $ stemdex completion fish | source

PowerShell:
  PS> stemdex completion powershell | Out-String | Invoke-Expression`
)

// Flag descriptions
const (
	MsgFlagVerbose      = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagDryRun       = "Build manifests without writing them"
	MsgFlagRoot         = "Base directory holding packs/ and stemdex.toml (default: the executable's directory)"
	MsgFlagStems        = "Comma separated stem names, overrides stems.names"
	MsgFlagManifestName = "Manifest file name, overrides manifest.filename"
	MsgFlagListFormat   = "Output format: auto, term, text or json"
	MsgFlagConfigFormat = "Output format: toml, yaml or json"
)

// Error messages
const (
	MsgErrBaseDir  = "failed to resolve base directory: %w"
	MsgErrRenderer = "failed to create renderer: %w"
)

// MsgUsageTemplate is cobra's default usage template with bold section titles
const MsgUsageTemplate = `{{boldUpper "Usage"}}:{{if .Runnable}}
  {{.UseLine}}{{end}}{{if .HasAvailableSubCommands}}
  {{.CommandPath}} [command]{{end}}{{if gt (len .Aliases) 0}}

{{boldUpper "Aliases"}}:
  {{.NameAndAliases}}{{end}}{{if .HasExample}}

{{boldUpper "Examples"}}:
{{.Example}}{{end}}{{if .HasAvailableSubCommands}}

{{boldUpper "Commands"}}:{{range .Commands}}{{if (or .IsAvailableCommand (eq .Name "help"))}}
  {{rpad .Name .NamePadding }} {{.Short}}{{end}}{{end}}{{end}}{{if .HasAvailableLocalFlags}}

{{boldUpper "Flags"}}:
{{.LocalFlags.FlagUsages | trimTrailingWhitespaces}}{{end}}{{if .HasAvailableInheritedFlags}}

{{boldUpper "Global Flags"}}:
{{.InheritedFlags.FlagUsages | trimTrailingWhitespaces}}{{end}}{{if .HasAvailableSubCommands}}

Use "{{.CommandPath}} [command] --help" for more information about a command.{{end}}
`
