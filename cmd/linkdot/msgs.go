package linkdot

// Command descriptions
const (
	MsgRootShort = "Install symbolic links declared in a manifest"
	MsgRootLong  = `linkdot reads a manifest of source -> destination pairs, classifies what
currently sits at every destination and then applies one of four modes:

  dry     show what would happen (default)
  strict  link everything, but only if no destination exists yet
  lazy    link missing destinations, leave the rest alone
  force   move existing destinations to <name>.bak.<n> and link over them

Sources are relative to the directory holding the manifest. Destinations
may start with ~ for the home directory.`

	MsgVersionShort    = "Print version information"
	MsgCompletionShort = "Generate shell completion script"
	MsgManShort        = "Generate man page"
	MsgTopicsShort     = "Display available documentation topics"
	MsgTopicsLong      = "Display a list of all available help topics that provide additional documentation beyond command help."
	MsgGenConfigShort  = "Generate a default configuration file"
	MsgGenConfigLong   = "Output the default configuration, every value commented out, to stdout or to the user config file."
)

// Flag descriptions
const (
	MsgFlagVerbose = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagMode    = "Mode to run in: dry, strict, lazy or force"
	MsgFlagFormat  = "Output format: auto, term, text or json"
	MsgFlagWrite   = "Write the config file instead of printing it"
)

// Errors and notices
const (
	MsgErrConfigExists = "config file %s already exists"
	MsgConfigWritten   = "Wrote %s\n"
)

// MsgUsageTemplate is the usage template of every command
const MsgUsageTemplate = `{{boldUpper "usage"}}:{{if .Runnable}}
  {{.UseLine}}{{end}}{{if .HasAvailableSubCommands}}
  {{.CommandPath}} [command]{{end}}{{if gt (len .Aliases) 0}}

{{boldUpper "aliases"}}:
  {{.NameAndAliases}}{{end}}{{if .HasExample}}

{{boldUpper "examples"}}:
{{.Example}}{{end}}{{if .HasAvailableSubCommands}}

{{boldUpper "commands"}}:{{range .Commands}}{{if (or .IsAvailableCommand (eq .Name "help"))}}
  {{rpad .Name .NamePadding }} {{.Short}}{{end}}{{end}}{{end}}{{if .HasAvailableLocalFlags}}

{{boldUpper "flags"}}:
{{.LocalFlags.FlagUsages | trimTrailingWhitespaces}}{{end}}{{if .HasAvailableInheritedFlags}}

{{boldUpper "global flags"}}:
{{.InheritedFlags.FlagUsages | trimTrailingWhitespaces}}{{end}}{{if .HasAvailableSubCommands}}

Use "{{.CommandPath}} [command] --help" for more information about a command.{{end}}
`

// MsgRootExample lists typical invocations
const MsgRootExample = `  linkdot                          # dry run of ./linkfile.toml
  linkdot ~/dotfiles/linkfile.toml # dry run of another manifest
  linkdot -m lazy                  # link what is missing
  linkdot -m force -f json         # overwrite with backups, JSON report`
