package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/productfinder/productfinder/infra/config"
	"github.com/productfinder/productfinder/infra/editor"
)

func newTuneCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tune",
		Short: "Edit the feed gesture tuning file in $EDITOR",
		Long: `Open feed.yaml from the state directory in $VISUAL or $EDITOR, creating
it from a commented template when missing. The file is validated after the
editor exits.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("config: %w", err)
			}
			ed, err := editor.NewEnvEditor().Cmd(cfg.TuningPath, config.TuningTemplate)
			if err != nil {
				return err
			}
			ed.Stdin, ed.Stdout, ed.Stderr = os.Stdin, os.Stdout, os.Stderr
			if err := ed.Run(); err != nil {
				return fmt.Errorf("editor: %w", err)
			}
			if _, err := config.LoadTuning(cfg.TuningPath); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "feed tuning OK: %s\n", cfg.TuningPath)
			return nil
		},
	}
}
