package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/yigit/campusconnect/internal/bootstrap"
	"github.com/yigit/campusconnect/internal/seed"
	"github.com/yigit/campusconnect/internal/store"
)

// NewSeedCommand creates the seed command. It writes every missing
// collection file and exits; existing files are left alone.
func NewSeedCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Initialize the data directory with default data",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, lgr, err := bootstrap.LoadConfigAndSetupLogger(opts.ConfigPath)
			if err != nil {
				return err
			}

			st, repos, err := bootstrap.OpenStorage(cfg, lgr)
			if err != nil {
				return err
			}
			if err := seed.CreateDefaultData(cmd.Context(), repos, cfg, lgr); err != nil {
				return fmt.Errorf("seed data directory: %w", err)
			}

			for _, name := range store.AllNames {
				fmt.Fprintln(cmd.OutOrStdout(), st.Path(name))
			}
			return nil
		},
	}
}
