// @title URL Shortener API
// @version 1.0
// @description Short links with accounts, email verification and click counting.
// @host localhost:3000
// @BasePath /
package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"github.com/avc-dev/shortlink/internal/app"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

// run держит подписку на сигналы, чтобы stop отработал до завершения процесса
func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	return app.Run(ctx)
}
