// @title         Dataproc Console API
// @version       0.1.0
// @description   Submit JSON and an optional file to the processing service, manage the session and read notifications

package main

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/joho/godotenv"

	"dataproc/internal/adapters/bfhl"
	"dataproc/internal/platform/config"
	"dataproc/internal/platform/logger"
	phttp "dataproc/internal/platform/net/http"
	"dataproc/internal/platform/net/middleware"
	"dataproc/internal/services/api"
	submitdomain "dataproc/internal/services/submit/domain"
)

func main() {
	// .env is optional; real env wins over the file
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		logger.Get().Warn().Err(err).Msg("could not read .env")
	}

	root := config.New().Prefix("DATAPROC_")
	consoleCfg := root.Prefix("CONSOLE_")

	l := logger.Get()

	remote := bfhl.NewClient(bfhl.Options{
		BaseURL:   root.MayURL("API_BASE_URL", "http://localhost:3000"),
		Timeout:   root.MayDuration("HTTP_TIMEOUT", 30*time.Second),
		UserAgent: root.MayString("USER_AGENT", "dataproc-console"),
	})

	// http server (reads DATAPROC_CONSOLE_API_PORT etc); /ping answers before routing
	srv := phttp.NewServer(consoleCfg, func(m *chi.Mux) {
		m.Use(middleware.Heartbeat("/ping"))
	})

	api.Mount(
		srv.Router(),
		api.Options{
			Config:         consoleCfg,
			Remote:         remote,
			Logger:         l,
			Policy:         submitdomain.ParseDisplayPolicy(root.MayEnum("DISPLAY_POLICY", "clear", "clear", "keep")),
			MaxUpload:      int64(consoleCfg.MayInt("MAX_UPLOAD_MB", 32)) << 20,
			CORSOrigins:    consoleCfg.MayCSV("CORS_ORIGINS", nil),
			EnableSwagger:  consoleCfg.MayBool("SWAGGER", true),
			EnableProfiler: consoleCfg.MayBool("PROFILER", false),
		},
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	l.Info().Str("remote", remote.BaseURL()).Msg("console starting")
	if err := srv.Run(ctx); err != nil {
		l.Panic().Err(err).Msg("http server stopped")
	}
}
