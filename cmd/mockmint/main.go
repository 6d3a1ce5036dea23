// mockmint rewrites Solana mint account fixtures so their mint authority is a
// key the test suite controls.
// Usage: go run ./cmd/mockmint patch
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		log.Error().Err(err).Msg("mockmint failed")
		stop()
		os.Exit(1)
	}
}
