// Command server runs the flashdeck HTTP API.
//
// Configuration is read from CONFIG_PATH (YAML) and environment variables,
// see internal/config.
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/heartmarshall/flashdeck-backend/internal/app"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := app.Run(ctx); err != nil {
		log.Fatalf("server exited: %v", err)
	}
}
