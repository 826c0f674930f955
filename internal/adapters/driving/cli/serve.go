package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/sia-ops/shiftsheet/internal/adapters/driving/httpapi"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP export service",
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	application, err := buildApp(ctx)
	if err != nil {
		return err
	}

	server := httpapi.NewServer(httpapi.Config{
		Addr:              application.cfg.Server.Addr,
		BasicAuthUsername: application.cfg.Server.BasicAuthUsername,
		BasicAuthPassword: application.cfg.Server.BasicAuthPassword,
	}, application.export, application.search)

	if err := server.Start(); err != nil {
		return err
	}
	cmd.Printf("Listening on %s\n", server.Addr())

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return server.Stop(shutdownCtx)
}
