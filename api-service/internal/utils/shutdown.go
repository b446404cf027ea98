package utils

import (
	"context"
	"log"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"
)

const shutdownTimeout = 15 * time.Second

// ShutdownManager collects close hooks and runs them once a termination
// signal arrives. Hooks run in reverse registration order, so the HTTP server
// drains before the stores it depends on are closed.
type ShutdownManager struct {
	cancelFunc context.CancelFunc
	mu         sync.Mutex
	tasks      []func(context.Context) error
}

func NewShutdownManager(ctx context.Context) (context.Context, *ShutdownManager) {
	ctx, cancel := context.WithCancel(ctx)
	return ctx, &ShutdownManager{cancelFunc: cancel}
}

func (sm *ShutdownManager) Register(task func(context.Context) error) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.tasks = append(sm.tasks, task)
}

// Wait blocks until SIGINT or SIGTERM, cancels the managed context and runs
// the registered tasks. It returns instead of exiting so main owns the
// process exit.
func (sm *ShutdownManager) Wait() {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigChan
	log.Printf("received signal %v, shutting down", sig)
	sm.cancelFunc()

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	sm.Close(ctx)
}

// Close runs the registered tasks in reverse registration order. A failing
// task is logged and does not stop the remaining ones.
func (sm *ShutdownManager) Close(ctx context.Context) {
	sm.mu.Lock()
	tasks := append([]func(context.Context) error(nil), sm.tasks...)
	sm.mu.Unlock()

	for i := len(tasks) - 1; i >= 0; i-- {
		if err := tasks[i](ctx); err != nil {
			log.Printf("shutdown task: %v", err)
		}
	}
}
