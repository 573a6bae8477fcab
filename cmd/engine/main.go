package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"sync/atomic"
	"syscall"
	"time"

	"waitlist-engine/internal/boinord"
	"waitlist-engine/internal/config"
	"waitlist-engine/internal/events"
	"waitlist-engine/internal/httpapi"
	"waitlist-engine/internal/logging"
	"waitlist-engine/internal/poll"
	"waitlist-engine/internal/secrets"
	"waitlist-engine/internal/telemetry"
	"waitlist-engine/internal/util"

	"github.com/gofrs/flock"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 5 * time.Second

func main() {
	log, err := logging.New()
	if err != nil {
		fmt.Fprintln(os.Stderr, "logger:", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	if err := run(log); err != nil {
		log.Error("engine stopped", zap.Error(err))
		_ = log.Sync()
		os.Exit(1)
	}
}

func run(log *zap.Logger) error {
	// Engine data dir: env if provided, else the working directory.
	dataDir := config.DataDir()
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return err
	}

	lock := flock.New(filepath.Join(dataDir, "engine.lock"))
	locked, err := lock.TryLock()
	if err != nil {
		return fmt.Errorf("lock data dir: %w", err)
	}
	if !locked {
		return fmt.Errorf("another engine is already running on %s", dataDir)
	}
	defer func() { _ = lock.Unlock() }()

	userCfgPath, err := config.EnsureUserConfig(dataDir)
	if err != nil {
		return fmt.Errorf("config bootstrap: %w", err)
	}
	loadCfg := func() (config.Config, error) {
		return config.Load(userCfgPath)
	}
	cfg, err := loadCfg()
	if err != nil {
		return fmt.Errorf("config load (%s): %w", userCfgPath, err)
	}
	cfg, vr := config.NormalizeAndValidate(cfg)
	for _, w := range vr.Warnings {
		log.Warn("config", zap.String("warning", w))
	}
	if !vr.OK() {
		return config.Validate(cfg)
	}

	var cfgVal atomic.Value // stores config.Config
	cfgVal.Store(cfg)

	tel, err := telemetry.Setup(context.Background(), "waitlist-engine", telemetry.Config{
		OtlpHTTPEndpoint: cfg.Telemetry.OtlpHTTPEndpoint,
		Stdout:           cfg.Telemetry.Stdout || logging.Debug(),
		StdoutWriter:     os.Stderr,
	})
	if err != nil {
		return fmt.Errorf("telemetry setup: %w", err)
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := tel.Shutdown(ctx); err != nil {
			log.Warn("telemetry shutdown", zap.Error(err))
		}
	}()

	limiter := util.NewHostLimiter(cfg.Provider.RequestsPerSecond, cfg.Provider.Burst)
	client := boinord.New(boinord.Config{
		BaseURL: cfg.Provider.BaseURL,
		Timeout: cfg.Timeout(),
	}, limiter)

	// resolved per fetch from the live config
	creds := func() (boinord.Credentials, error) {
		return secrets.Credentials(cfgVal.Load().(config.Config))
	}

	hub := events.NewHub()
	poller := &poll.Poller{
		Fetcher:     client,
		Credentials: creds,
		Hub:         hub,
		Log:         log.Named("poll"),
	}

	handler := httpapi.NewHandler(httpapi.Deps{
		Fetcher:     client,
		Credentials: creds,
		Poller:      poller,
		Hub:         hub,
		CfgVal:      &cfgVal,
		UserCfgPath: userCfgPath,
		LoadCfg:     loadCfg,
		Log:         log.Named("http"),
	})

	addr := fmt.Sprintf("127.0.0.1:%d", cfg.App.Port)
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}
	srv := &http.Server{
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}
	log.Info("engine listening",
		zap.String("addr", "http://"+addr),
		zap.String("config", userCfgPath),
		zap.Bool("polling", cfg.Polling.Enabled),
		zap.Bool("tracing", tel.Enabled()))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})
	if cfg.Polling.Enabled {
		g.Go(func() error {
			poller.Run(ctx, cfg.PollInterval())
			return nil
		})
	}

	err = g.Wait()
	log.Info("engine shut down")
	return err
}
