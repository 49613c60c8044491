package main

import (
	"context"
	stdlog "log"
	"os"
	"os/signal"
	"syscall"

	"github.com/hireloop/scheduler/internal/api"
	"github.com/hireloop/scheduler/internal/booking"
	"github.com/hireloop/scheduler/internal/calendar"
	"github.com/hireloop/scheduler/internal/interviews"
	"github.com/hireloop/scheduler/internal/schedule"
	"github.com/hireloop/scheduler/pkg/errors"
	"github.com/hireloop/scheduler/pkg/logger"
)

func main() {
	cfg, err := loadConfig()
	if err != nil {
		stdlog.Panic(errors.WrapFail(err, "load config"))
	}

	log, err := logger.New(cfg.Environment)
	if err != nil {
		stdlog.Panic(errors.WrapFail(err, "init logger"))
	}
	log.Infof("starting scheduler in %s environment", cfg.Environment)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM, syscall.SIGABRT)
	defer cancel()

	store, err := interviews.NewStore(ctx, cfg.Mongo, log)
	if err != nil {
		log.Panic(errors.WrapFail(err, "init interviews store"))
	}

	provider := calendar.NewGoogle(
		cfg.Google,
		calendar.NewAccountTokens(store.Accounts()),
		log,
	)

	engine := schedule.NewEngine(provider, log)
	orch := booking.NewOrchestrator(provider, engine, store.Interviews(), store.Accounts(), log)

	server := api.NewServer(
		cfg.API,
		log,
		engine,
		orch,
		store.Interviews(),
		store.Accounts(),
		provider.Name(),
	)

	stopped := make(chan struct{})
	context.AfterFunc(ctx, func() {
		stdlog.Println("Graceful shutdown...")

		err := server.Shutdown(context.Background())
		if err != nil {
			log.Error(err)
		}

		err = store.Close(context.Background())
		if err != nil {
			log.Error(err)
		}

		stopped <- struct{}{}
	})

	err = server.Serve(ctx)
	if err != nil {
		log.Error(err)
	}

	<-stopped
	stdlog.Println("Shutdown complete")
}
