package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"golang.org/x/sync/errgroup"
)

var ErrConsumerStopped = errors.New("order events consumer stopped")

// Run serves HTTP and consumes order events until ctx is cancelled or either side fails.
// A failure on one side shuts the other down; the first failure is returned.
func Run(ctx context.Context, consumer ConsumerInterface, server *http.Server, shutdownTimeout time.Duration) error {
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		consumer.Start(gctx)
		if gctx.Err() == nil {
			return ErrConsumerStopped
		}
		return nil
	})

	g.Go(func() error {
		log.Printf("[sales-svc] starting on %s", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		log.Println("[sales-svc] shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
