package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	mobileUC "github.com/rawad-inc/rawad/internal/application/mobile/usecases"
	"github.com/rawad-inc/rawad/internal/infrastructure/config"
	"github.com/rawad-inc/rawad/internal/infrastructure/database"
	"github.com/rawad-inc/rawad/internal/infrastructure/repository"
	"github.com/rawad-inc/rawad/internal/infrastructure/scheduler"
	"github.com/rawad-inc/rawad/internal/shared/logger"
)

func main() {
	env := "development"
	if len(os.Args) > 1 {
		env = os.Args[1]
	}
	if envVar := os.Getenv("ENV"); envVar != "" {
		env = envVar
	}

	cfg, err := config.Load(env)
	if err != nil {
		fmt.Printf("failed to load config: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(&cfg.Logger); err != nil {
		fmt.Printf("failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	log := logger.NewLogger()
	log.Infow("starting background worker", "environment", env)

	if err := database.Init(&cfg.Database); err != nil {
		log.Fatalw("failed to initialize database", "error", err)
	}
	defer database.Close()

	mobileRepo := repository.NewMobileNumberRepository(database.Get())
	jobSeekerRepo := repository.NewJobSeekerProfileRepository(database.Get())
	ticketRepo := repository.NewTicketRepository(database.Get())

	manager, err := scheduler.NewSchedulerManager(log)
	if err != nil {
		log.Fatalw("failed to create scheduler", "error", err)
	}

	expireCodesUC := mobileUC.NewExpireVerificationCodesUseCase(mobileRepo, log)
	if err := manager.RegisterVerificationJobs(expireCodesUC); err != nil {
		log.Fatalw("failed to register verification jobs", "error", err)
	}
	if err := manager.RegisterProfileJobs(scheduler.NewApplicationResetJob(jobSeekerRepo)); err != nil {
		log.Fatalw("failed to register profile jobs", "error", err)
	}
	if err := manager.RegisterSummaryJobs(scheduler.NewDailySummaryJob(ticketRepo, log)); err != nil {
		log.Fatalw("failed to register summary jobs", "error", err)
	}

	manager.Start()
	log.Infow("background worker started")

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan

	log.Infow("shutting down background worker")
	if err := manager.Stop(); err != nil {
		log.Errorw("scheduler shutdown failed", "error", err)
	}
	log.Infow("background worker stopped")
}
