package linkdot

import (
	"embed"
	"fmt"
	"io/fs"

	"github.com/arthur-debert/linkdot/internal/version"
	"github.com/arthur-debert/linkdot/pkg/cobrax/topics"
	"github.com/arthur-debert/linkdot/pkg/logging"
	"github.com/arthur-debert/linkdot/pkg/ui"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

//go:embed topics/*.md
var topicFiles embed.FS

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	initTemplateFormatting()

	var (
		verbosity int
		opts      linkFlags
	)

	rootCmd := &cobra.Command{
		Use:     "linkdot [manifest]",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Example: MsgRootExample,
		Version: version.Version,
		Args:    cobra.MaximumNArgs(1),
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLink(cmd, args, opts)
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.Flags().StringVarP(&opts.mode, "mode", "m", "", MsgFlagMode)
	rootCmd.Flags().StringVarP(&opts.format, "format", "f", "", MsgFlagFormat)

	_ = rootCmd.RegisterFlagCompletionFunc("mode", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return []string{"dry", "strict", "lazy", "force"}, cobra.ShellCompDirectiveNoFileComp
	})
	_ = rootCmd.RegisterFlagCompletionFunc("format", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		names := make([]string, 0, len(ui.Formats))
		for _, f := range ui.Formats {
			names = append(names, f.String())
		}
		return names, cobra.ShellCompDirectiveNoFileComp
	})

	rootCmd.SetUsageTemplate(MsgUsageTemplate)
	rootCmd.SetVersionTemplate(version.Info())

	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCompletionCmd())
	rootCmd.AddCommand(newManCmd())
	rootCmd.AddCommand(newGenConfigCmd())
	rootCmd.AddCommand(newTopicsCmd())

	helpFS, err := fs.Sub(topicFiles, "topics")
	if err == nil {
		_, err = topics.InitializeWithOptions(rootCmd, helpFS, topics.Options{
			Extensions: []string{".md"},
			Renderer:   topics.NewGlamourRenderer(),
		})
	}
	if err != nil {
		log.Warn().Err(err).Msg("Help topics unavailable")
	}

	return rootCmd
}

func newTopicsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "topics",
		Short: MsgTopicsShort,
		Long:  MsgTopicsLong,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			helpCmd, _, err := cmd.Root().Find([]string{"help"})
			if err != nil || helpCmd.Run == nil {
				return fmt.Errorf("help command unavailable")
			}
			helpCmd.Run(helpCmd, []string{"topics"})
			return nil
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: MsgVersionShort,
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			_, _ = fmt.Fprint(cmd.OutOrStdout(), version.Info())
		},
	}
}
