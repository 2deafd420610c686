package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Aayushjha0128/GraphSense/internal/server"
	"github.com/Aayushjha0128/GraphSense/pkg/store"
)

// serveCommand creates the serve command, which runs the HTTP API until
// interrupted. The snapshot store backend comes from configuration and
// can be overridden per flag; "none" serves without persistence.
func (c *CLI) serveCommand() *cobra.Command {
	var addr string
	var backend string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if addr != "" {
				c.cfg.Server.Addr = addr
			}
			if backend != "" {
				c.cfg.Store.Backend = backend
			}
			c.registerHooks()

			var st store.Store
			if c.cfg.Store.Backend != "none" {
				var err error
				st, err = store.Open(ctx, c.cfg.Store)
				if err != nil {
					return fmt.Errorf("open snapshot store: %w", err)
				}
				defer st.Close()
				c.Logger.Info("snapshot store ready", "backend", c.cfg.Store.Backend)
			} else {
				c.Logger.Info("running without a snapshot store")
			}

			printInfo("Serving on %s", StyleHighlight.Render(c.cfg.Server.Addr))
			printDetail("press ctrl+c to stop")

			srv := server.New(c.cfg, c.Logger, st)
			err := srv.ListenAndServe(ctx)
			if errors.Is(err, context.Canceled) {
				printNewline()
				printInfo("Server stopped")
				return nil
			}
			return err
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (overrides configuration)")
	cmd.Flags().StringVar(&backend, "store", "", "snapshot store backend: memory, file, redis, mongo, none")
	return cmd
}
