package cli

import (
	"context"
	"log"
	"time"

	"stopwatch/internal/config"
	"stopwatch/internal/ipc"
	"stopwatch/internal/service"
)

// instance is a running stopwatch service together with its command endpoint.
type instance struct {
	svc    *service.Service
	guard  *ipc.InstanceGuard
	server *ipc.Server
	cancel context.CancelFunc
}

func startInstance(ctx context.Context, guard *ipc.InstanceGuard, host service.Host, cfg *config.Configuration) *instance {
	runCtx, cancel := context.WithCancel(ctx)
	svc := service.New(host, service.Options{Notification: cfg.Notification()})
	inst := &instance{
		svc:    svc,
		guard:  guard,
		server: ipc.NewServer(svc),
		cancel: cancel,
	}

	go func() {
		if err := svc.Run(runCtx); err != nil {
			log.Printf("[service] run: %v", err)
		}
	}()
	go func() {
		if err := inst.server.Serve(guard.Listener()); err != nil {
			log.Printf("[ipc] serve: %v", err)
		}
	}()

	return inst
}

func (inst *instance) close() {
	shutdownCtx, done := context.WithTimeout(context.Background(), 2*time.Second)
	defer done()

	if err := inst.server.Shutdown(shutdownCtx); err != nil {
		log.Printf("[ipc] shutdown: %v", err)
	}
	inst.cancel()
	<-inst.svc.Done()
	if err := inst.guard.Release(); err != nil {
		log.Printf("[ipc] release: %v", err)
	}
}
