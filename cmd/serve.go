package cmd

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/adamspd/LogicQuiz/auth"
	"github.com/adamspd/LogicQuiz/db"
	"github.com/adamspd/LogicQuiz/handlers"
	"github.com/adamspd/LogicQuiz/jobs"
	"github.com/adamspd/LogicQuiz/progress"
	"github.com/adamspd/LogicQuiz/quiz"
	"github.com/adamspd/LogicQuiz/utils"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd)
	},
}

func runServe(cmd *cobra.Command) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	defer utils.SyncLogger()

	utils.LogStartup("Logic Quiz API starting...")

	database, err := db.InitDB(cfg.DBPath)
	if err != nil {
		return err
	}
	defer database.Close()

	questions, err := loadCatalog(cfg)
	if err != nil {
		return err
	}

	sessionStore := auth.NewSessionStore(cfg.SessionTTL)
	defer sessionStore.Close()

	emailService := auth.NewEmailService(cfg.Email)

	var notifier handlers.Notifier
	var jobManager *jobs.JobManager
	if cfg.RedisURL != "" {
		jobManager = jobs.NewJobManager(cfg.RedisURL, emailService)
		jobManager.RegisterHandlers(emailService)
		notifier = jobManager
	} else {
		utils.LogStartup("REDIS_URL not set, sending e-mails without a queue")
		notifier = jobs.NewInlineNotifier(emailService, emailService)
	}

	service := quiz.NewService(questions, progress.NewStore(), database, auth.ContextIdentity{})
	router := handlers.NewRouter(service, database, sessionStore, notifier)

	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	if jobManager != nil {
		if err := jobManager.Start(); err != nil {
			return err
		}
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		utils.LogStartup("Server ready to accept connections at http://localhost:%s", cfg.Port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	if jobManager != nil {
		g.Go(func() error {
			<-gctx.Done()
			jobManager.Stop()
			return nil
		})
	}

	g.Go(func() error {
		<-gctx.Done()
		utils.LogShutdown("Received shutdown signal, stopping server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
