package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/hanoi/pkg/buildinfo"
	"github.com/matzehuels/hanoi/pkg/server"
)

// serveCommand creates the serve command, which runs the HTTP API.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		addr    string
		noCache bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		Long: `Serve exposes the solver over HTTP:

  GET  /healthz
  GET  /v1/solve/{disks}
  GET  /v1/board/{disks}?step=k
  POST /v1/verify

Solutions are cached in the configured backend (file, redis or none).
The server shuts down gracefully on interrupt.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := loggerFromContext(ctx)
			if !cmd.Flags().Changed("addr") {
				addr = c.Config.Server.Addr
			}

			logger.Info("starting hanoi server", buildinfo.KeyVals()...)
			runner, err := c.newRunner(ctx, noCache)
			if err != nil {
				return err
			}
			defer runner.Cache.Close()

			srv := server.New(runner,
				server.WithLogger(logger),
				server.WithMaxDisks(c.Config.MaxDisks))
			return srv.ListenAndServe(ctx, addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":8080", "listen address (default from config)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable the solution cache")
	return cmd
}
