package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"task-list-api/pkg/log"
	"task-list-api/pkg/msg"
	"task-list-api/pkg/resource"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	Long:  "Starts the task list HTTP API, the notification worker and the completion digest scheduler",
	RunE: func(cmd *cobra.Command, args []string) error {
		defer log.Sync()
		log.Info(msg.GetMessage("app.start"))

		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		app, err := newApplication(ctx)
		if err != nil {
			return err
		}
		defer app.Close()

		app.StartBackground(ctx)

		port := resource.GetString("app.server.port")
		serverErr := make(chan error, 1)
		go func() {
			log.Info(msg.GetMessage("app.started", port))
			if err := app.echo.Start(":" + port); err != nil && !errors.Is(err, http.ErrServerClosed) {
				serverErr <- err
			}
		}()

		select {
		case <-ctx.Done():
		case err := <-serverErr:
			log.Error(msg.GetMessage("app.error.internal"), zap.Error(err))
			return err
		}

		log.Info(msg.GetMessage("app.shutdown"))
		shutdownCtx, cancel := context.WithTimeout(context.Background(), resource.GetDuration("app.server.shutdown-timeout"))
		defer cancel()
		if err := app.echo.Shutdown(shutdownCtx); err != nil {
			log.Error(msg.GetMessage("app.error.internal"), zap.Error(err))
		}
		app.Wait()

		log.Info(msg.GetMessage("app.stopped"))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
