package linkdot

import (
	"github.com/arthur-debert/linkdot/pkg/config"
	"github.com/arthur-debert/linkdot/pkg/core"
	"github.com/arthur-debert/linkdot/pkg/ui"
	"github.com/arthur-debert/linkdot/pkg/ui/display"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

type linkFlags struct {
	mode   string
	format string
}

// ExitError carries a non-zero exit status for a failure that has already
// been reported to the user
type ExitError struct {
	Err error
}

func (e *ExitError) Error() string {
	if e.Err == nil {
		return "run failed"
	}
	return e.Err.Error()
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// flagOverrides returns the explicitly set flags keyed like the config file
func flagOverrides(cmd *cobra.Command, args []string, flags linkFlags) map[string]interface{} {
	overrides := map[string]interface{}{}
	if cmd.Flags().Changed("mode") {
		overrides[config.KeyMode] = flags.mode
	}
	if cmd.Flags().Changed("format") {
		overrides[config.KeyFormat] = flags.format
	}
	if len(args) == 1 {
		overrides[config.KeyManifest] = args[0]
	}
	return overrides
}

func runLink(cmd *cobra.Command, args []string, flags linkFlags) error {
	cfg, err := config.Load(flagOverrides(cmd, args, flags))
	if err != nil {
		return err
	}

	format, err := ui.ParseFormat(cfg.Format)
	if err != nil {
		return err
	}

	log.Debug().
		Str("manifest", cfg.Manifest).
		Str("mode", cfg.Mode).
		Str("format", format.String()).
		Msg("Running link")

	result, err := core.Link(core.LinkOptions{
		ManifestPath: cfg.Manifest,
		Mode:         cfg.LinkMode(),
	})
	if err != nil {
		renderer, rerr := ui.NewRenderer(format, cmd.ErrOrStderr())
		if rerr != nil {
			return err
		}
		if rerr := renderer.RenderError(err); rerr != nil {
			return err
		}
		return &ExitError{Err: err}
	}

	report := display.FromResult(result)
	renderer, err := ui.NewRenderer(format, cmd.OutOrStdout())
	if err != nil {
		return err
	}
	if err := renderer.RenderReport(report); err != nil {
		return err
	}

	if report.Failed() {
		return &ExitError{}
	}
	return nil
}
