package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/idilsaglam/endurance/internal/ui"
)

func newInitCmd(app *App) *cobra.Command {
	var force bool
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write the effective configuration (defaults, file, env and flags) to the config file",
		Args:  usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := os.Stat(app.cfgPath)
			switch {
			case err == nil && !force:
				return errUsage("config already exists: %s (use --force to overwrite)", app.cfgPath)
			case err != nil && !errors.Is(err, os.ErrNotExist):
				return fmt.Errorf("stat config: %w", err)
			}
			if err := app.cfg.Save(app.cfgPath); err != nil {
				return fmt.Errorf("save config: %w", err)
			}
			app.log.Info("config written", zap.String("path", app.cfgPath))
			ui.OK(cmd.OutOrStdout(), "wrote "+app.cfgPath)
			return nil
		},
	}
	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing config file")
	return cmd
}
