package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/JadedPigeon/tectoniccalc/internal/catalog"
	"github.com/JadedPigeon/tectoniccalc/internal/config"
	"github.com/JadedPigeon/tectoniccalc/internal/damage"
	"github.com/JadedPigeon/tectoniccalc/internal/database"
	"github.com/JadedPigeon/tectoniccalc/internal/describe"
	"github.com/JadedPigeon/tectoniccalc/internal/handlers"
	"github.com/JadedPigeon/tectoniccalc/internal/logging"
	_ "github.com/lib/pq"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error loading config:", err)
		os.Exit(1)
	}
	log, err := logging.New(cfg.LogLevel)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error building logger:", err)
		os.Exit(1)
	}
	defer log.Sync()

	if err := run(cfg, log); err != nil {
		log.Fatal("server stopped", zap.Error(err))
	}
}

func run(cfg config.Config, log *zap.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := sql.Open("postgres", cfg.DBURL)
	if err != nil {
		return fmt.Errorf("opening db: %w", err)
	}
	defer db.Close()
	if err := db.PingContext(ctx); err != nil {
		return fmt.Errorf("connecting to db: %w", err)
	}
	if err := database.Migrate(ctx, db); err != nil {
		return err
	}

	chart, err := catalog.LoadTypeChart(cfg.TypeChartPath)
	if err != nil {
		return err
	}
	calc, err := damage.NewCalculator(chart, damage.WithLogger(log.Named("damage")))
	if err != nil {
		return err
	}

	h := &handlers.Config{
		DB:              handlers.NewSQLStore(db),
		Calc:            calc,
		Describer:       describe.Plain{},
		Log:             log,
		SessionDuration: cfg.SessionDuration,
		DefaultLevel:    cfg.DefaultLevel,
	}

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           h.Routes(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		log.Info("listening", zap.String("addr", srv.Addr), zap.Int("types", len(chart.Types())))
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		if !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	log.Info("shutting down")
	return srv.Shutdown(shutdownCtx)
}
