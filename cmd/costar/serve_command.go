package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"costar/internal/server"
)

func newServeCommand(ctx *commandContext) *cobra.Command {
	var bind string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the costar HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := ctx.ensureService()
			if err != nil {
				return err
			}
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			if bind != "" {
				cfg.Server.Bind = bind
			}
			srv, err := server.New(cfg, svc, ctx.logger)
			if err != nil {
				return err
			}

			runCtx := cmd.Context()
			if err := srv.Start(runCtx); err != nil {
				return err
			}
			defer srv.Stop()
			fmt.Fprintf(cmd.OutOrStdout(), "Serving costar API on http://%s (Ctrl+C to stop)\n", srv.Addr())
			<-runCtx.Done()
			return nil
		},
	}

	cmd.Flags().StringVar(&bind, "bind", "", "Override server.bind (host:port)")
	return cmd
}
