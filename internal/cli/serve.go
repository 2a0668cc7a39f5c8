package cli

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/holonet/internal/api"
)

func newServeCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		Long: "Attach the configured store and serve the JSON API until interrupted.\n" +
			"The listen address defaults to :$PORT, or :3000 when PORT is unset.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runServe(cmd)
		},
	}
	cmd.Flags().String("listen-addr", "", "address to listen on (default: :$PORT)")
	cmd.Flags().Int64("default-user-id", api.DefaultUserID, "user that requests act on when X-User-ID is absent")
	return cmd
}

func (a *app) runServe(cmd *cobra.Command) error {
	logger, err := a.logger(cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	b, err := a.openStore()
	if err != nil {
		return err
	}
	defer b.Detach()

	gin.SetMode(gin.ReleaseMode)
	router := api.NewRouter(b, api.Options{
		DefaultUserID: a.cfg.GetInt64(cfgKeyDefaultUserID),
		CORSOrigins:   corsOrigins(a.cfg),
		Logger:        logger,
	})

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := api.NewServer(listenAddr(a.cfg), router, logger).Run(ctx); err != nil {
		return sysError("serve: %w", err)
	}
	return nil
}
