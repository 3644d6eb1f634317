package commands

import (
	"strings"

	"github.com/spf13/cobra"
	"go.trai.ch/stylegen/internal/app"
	"go.trai.ch/stylegen/internal/core/domain"
	"go.trai.ch/zerr"
)

func (c *CLI) newGenerateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate <stylesheetModule> <stylesheetFunction>",
		Short: "Compile a stylesheet module and write its CSS",
		Example: "  stylegen generate Stylesheets mainStylesheet\n" +
			"  stylegen generate Stylesheets mainStylesheet -o public/main.css -m viewport",
		Args: cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) < 2 {
				_ = cmd.Help()
				return domain.ErrMissingArguments
			}

			flags := cmd.Flags()
			modeName, _ := flags.GetString("mode")
			mode, err := domain.ParseMode(modeName)
			if err != nil {
				return err
			}

			settings, err := c.app.Settings()
			if err != nil {
				return err
			}
			if flags.Changed("project-dir") {
				settings.ProjectDir, _ = flags.GetString("project-dir")
			}
			if flags.Changed("compiler") {
				settings.Compiler, _ = flags.GetString("compiler")
			}
			if flags.Changed("runner") {
				settings.Runner, _ = flags.GetString("runner")
			}
			if flags.Changed("extract-timeout") {
				settings.ExtractTimeout, _ = flags.GetDuration("extract-timeout")
			}

			if strings.TrimSpace(settings.Compiler) == "" || strings.TrimSpace(settings.Runner) == "" {
				return zerr.Wrap(domain.ErrInvalidSettings, "--compiler and --runner must not be empty")
			}

			output, _ := flags.GetString("output")
			check, _ := flags.GetBool("check")
			force, _ := flags.GetBool("force")
			trace, _ := flags.GetBool("trace")

			return c.app.Generate(cmd.Context(), domain.CompileRequest{
				Module: args[0],
				Export: args[1],
				Mode:   mode,
			}, app.GenerateOptions{
				Output:   output,
				Settings: settings,
				Check:    check,
				Force:    force,
				Trace:    trace,
			})
		},
	}

	defaults := domain.DefaultSettings()
	cmd.Flags().StringP("output", "o", domain.DefaultOutputFile, "CSS file to write")
	cmd.Flags().StringP("mode", "m", domain.ModeLayout.String(), "Render mode: layout, viewport or none")
	cmd.Flags().String("project-dir", defaults.ProjectDir, "Directory the compiler runs in")
	cmd.Flags().String("compiler", defaults.Compiler, "Compiler executable (env STYLEGEN_COMPILER)")
	cmd.Flags().String("runner", defaults.Runner, "Worker runner command (env STYLEGEN_RUNNER)")
	cmd.Flags().Duration("extract-timeout", 0, "Give up waiting for the worker after this long, 0 waits forever (env STYLEGEN_EXTRACT_TIMEOUT)")
	cmd.Flags().Bool("check", false, "Load the generated CSS into a rule table and fail on malformed rules")
	cmd.Flags().BoolP("force", "f", false, "Write the output even when it is unchanged")
	return cmd
}
