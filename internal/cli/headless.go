package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"

	"stopwatch/internal/config"
	"stopwatch/internal/ipc"
	"stopwatch/internal/platform"
	"stopwatch/internal/service"
	"stopwatch/internal/ui/console"
)

func runHeadless(ctx context.Context, out io.Writer, cfg *config.Configuration, address string) error {
	guard, err := ipc.Listen(address)
	if err != nil {
		if errors.Is(err, ipc.ErrAlreadyRunning) {
			return fmt.Errorf("stopwatch already running at %s", address)
		}
		return err
	}

	hosts := service.MultiHost{console.New(out)}
	if cfg.SystemNotifications {
		hosts = append(hosts, platform.NewToastHost(platform.NewSender()))
	}

	inst := startInstance(ctx, guard, hosts, cfg)
	defer inst.close()
	log.Printf("[cli] headless stopwatch listening on %s", guard.Address())

	select {
	case <-ctx.Done():
	case <-inst.svc.Done():
	}
	return nil
}
