package cmd

import (
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/abhisek/passcheck/internal/web"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the prediction form over HTTP",
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

		p, cfg, err := loadPredictor(cmd)
		if err != nil {
			return err
		}
		addr := cfg.Addr
		if a, _ := cmd.Flags().GetString("addr"); a != "" {
			addr = a
		}
		logger.Info("Artifacts loaded", "model", cfg.ModelPath, "scaler", cfg.ScalerPath)

		if os.Getenv(gin.EnvGinMode) == "" {
			gin.SetMode(gin.ReleaseMode)
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		return web.NewServer(p, logger).ListenAndServe(ctx, addr)
	},
}

func init() {
	serveCmd.Flags().String("addr", "", "Listen address (overrides PASSCHECK_ADDR)")
}
