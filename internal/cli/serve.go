package cli

import (
	"github.com/spf13/cobra"
	"github.com/yigit/campusconnect/internal/server"
)

// NewServeCommand creates the serve command.
func NewServeCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(opts)
		},
	}
}

func runServe(opts *RootOptions) error {
	srv, err := server.NewServer(opts.ConfigPath)
	if err != nil {
		return err
	}
	return srv.Run()
}
