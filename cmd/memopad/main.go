package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
	"github.com/spf13/cobra"
	"github.com/xxxsen/common/logger"
	"github.com/xxxsen/common/logutil"
	"go.uber.org/zap"

	"memopad/internal/config"
	"memopad/internal/handler"
	"memopad/internal/middleware"
	"memopad/internal/repo"
	"memopad/internal/service"
	"memopad/internal/web"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "memopad",
		Short: "memopad memo server",
	}

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "run memopad server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			logger.Init(
				cfg.Log.File,
				cfg.Log.Level,
				cfg.Log.FileCount,
				cfg.Log.FileSize,
				cfg.Log.KeepDays,
				cfg.Log.Console,
			)
			if cfg.InsecureSecret() {
				logutil.GetLogger(context.Background()).Warn("SECRET_KEY not set, using the insecure development default")
			}

			db, err := repo.Open(cfg.DBPath)
			if err != nil {
				return fmt.Errorf("open db: %w", err)
			}
			if err := repo.ApplyMigrations(db); err != nil {
				return fmt.Errorf("migrations: %w", err)
			}
			return runServer(cfg, db)
		},
	}

	rootCmd.AddCommand(runCmd)

	if err := rootCmd.Execute(); err != nil {
		logutil.GetLogger(context.Background()).Fatal("startup error", zap.Error(err))
	}
}

func runServer(cfg *config.Config, db *sqlx.DB) error {
	logutil.GetLogger(context.Background()).Info(
		"starting server",
		zap.Int("port", cfg.Port),
		zap.String("db_path", cfg.DBPath),
	)

	userRepo := repo.NewUserRepo(db)
	memoRepo := repo.NewMemoRepo(db)

	authService := service.NewAuthService(userRepo, []byte(cfg.SecretKey), time.Hour*time.Duration(cfg.SessionTTLHours))
	memoService := service.NewMemoService(memoRepo)

	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()
	engine.Use(
		gin.Recovery(),
		middleware.RequestID(),
		middleware.AccessLog(),
		gzip.Gzip(gzip.DefaultCompression),
	)
	engine.SetHTMLTemplate(web.Templates())

	handler.RegisterRoutes(engine, handler.RouterDeps{
		Auth:        handler.NewAuthHandler(authService),
		Memos:       handler.NewMemoHandler(memoService),
		AuthService: authService,
	})

	addr := fmt.Sprintf("0.0.0.0:%d", cfg.Port)
	srv := &http.Server{Addr: addr, Handler: engine}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		logutil.GetLogger(context.Background()).Info("http server listening", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logutil.GetLogger(context.Background()).Error("server error", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logutil.GetLogger(context.Background()).Info("server stopping...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
