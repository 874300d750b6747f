package cmd

import (
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/RakshitYadav09/Nasa-Hack-LEO/pkg/server"
)

var listenAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the planning API over HTTP",
	Long: `Serve exposes scoring, cost analysis and reports as a JSON API:

  GET  /healthz
  GET  /api/v1/catalog
  POST /api/v1/hints
  POST /api/v1/score
  POST /api/v1/cost
  POST /api/v1/report   (rate limited)
  POST /api/v1/analyze  (rate limited)`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&listenAddr, "addr", "", "listen address (default from config)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	e, err := loadEnv()
	if err != nil {
		return fmt.Errorf("serve: %w", err)
	}

	addr := listenAddr
	if addr == "" {
		addr = e.cfg.Server.Addr
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	srv := server.New(e.pipeline, e.catalog, server.Config{
		Addr:        addr,
		ReportRPS:   e.cfg.Server.ReportRPS,
		ReportBurst: e.cfg.Server.ReportBurst,
	})
	return srv.ListenAndServe(ctx)
}
