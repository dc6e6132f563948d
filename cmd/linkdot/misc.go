package linkdot

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/arthur-debert/linkdot/internal/version"
	"github.com/arthur-debert/linkdot/pkg/config"
	"github.com/arthur-debert/linkdot/pkg/errors"
	"github.com/arthur-debert/linkdot/pkg/paths"
	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"
)

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: MsgCompletionShort,
		Long: `To load completions:

Bash:
  $ source <(linkdot completion bash)

Zsh:
  $ linkdot completion zsh > "${fpath[1]}/_linkdot"

Fish:
  $ linkdot completion fish | source

PowerShell:
  PS> linkdot completion powershell | Out-String | Invoke-Expression
`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			return GenCompletion(cmd.Root(), args[0], cmd.OutOrStdout())
		},
	}
}

func newManCmd() *cobra.Command {
	return &cobra.Command{
		Use:    "man",
		Short:  MsgManShort,
		Args:   cobra.NoArgs,
		Hidden: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return doc.GenMan(cmd.Root(), ManHeader(), cmd.OutOrStdout())
		},
	}
}

// ManHeader is the header of the generated man page
func ManHeader() *doc.GenManHeader {
	return &doc.GenManHeader{
		Title:   "LINKDOT",
		Section: "1",
		Source:  "linkdot " + version.Version,
		Manual:  "linkdot manual",
	}
}

func newGenConfigCmd() *cobra.Command {
	var write bool

	cmd := &cobra.Command{
		Use:   "gen-config",
		Short: MsgGenConfigShort,
		Long:  MsgGenConfigLong,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			content := config.GenerateConfigContent()
			if !write {
				_, err := fmt.Fprint(cmd.OutOrStdout(), content)
				return err
			}

			path := paths.ConfigFilePath()
			if _, err := os.Lstat(path); err == nil {
				return errors.Newf(errors.ErrInvalidInput, MsgErrConfigExists, path)
			}
			if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
				return errors.Wrapf(err, errors.ErrDirCreate, "failed to create %s", filepath.Dir(path))
			}
			if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
				return errors.Wrapf(err, errors.ErrConfigLoad, "failed to write %s", path)
			}
			_, err := fmt.Fprintf(cmd.OutOrStdout(), MsgConfigWritten, path)
			return err
		},
	}
	cmd.Flags().BoolVarP(&write, "write", "w", false, MsgFlagWrite)

	return cmd
}
