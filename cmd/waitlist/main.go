// Command waitlist logs in once and prints the account's waitlist positions.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"waitlist-engine/internal/boinord"
	"waitlist-engine/internal/config"
	"waitlist-engine/internal/logging"
	"waitlist-engine/internal/report"
	"waitlist-engine/internal/secrets"
	"waitlist-engine/internal/telemetry"
	"waitlist-engine/internal/util"

	"go.uber.org/zap"
)

func main() {
	log, err := logging.New()
	if err != nil {
		fmt.Fprintln(os.Stderr, "logger:", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, log); err != nil {
		kind := "setup"
		if k, ok := boinord.KindOf(err); ok {
			kind = k.String()
		}
		log.Error("fetch failed", zap.String("kind", kind), zap.Error(err))
		fmt.Fprintln(os.Stderr, err)
		_ = log.Sync()
		os.Exit(1)
	}
}

func run(ctx context.Context, log *zap.Logger) error {
	cfgPath, err := config.EnsureUserConfig(config.DataDir())
	if err != nil {
		return err
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("config load (%s): %w", cfgPath, err)
	}
	cfg, _ = config.NormalizeAndValidate(cfg)
	if err := config.Validate(cfg); err != nil {
		return err
	}

	tel, err := telemetry.Setup(ctx, "waitlist", telemetry.Config{
		OtlpHTTPEndpoint: cfg.Telemetry.OtlpHTTPEndpoint,
		Stdout:           cfg.Telemetry.Stdout || logging.Debug(),
		StdoutWriter:     os.Stderr,
	})
	if err != nil {
		return fmt.Errorf("telemetry setup: %w", err)
	}
	defer func() {
		if err := tel.Shutdown(context.Background()); err != nil {
			log.Warn("telemetry shutdown", zap.Error(err))
		}
	}()

	creds, err := secrets.Credentials(cfg)
	if err != nil {
		return err
	}

	client := boinord.New(boinord.Config{
		BaseURL: cfg.Provider.BaseURL,
		Timeout: cfg.Timeout(),
	}, util.NewHostLimiter(cfg.Provider.RequestsPerSecond, cfg.Provider.Burst))

	log.Debug("fetching waitlist", zap.String("user", creds.Username))
	apts, err := client.FetchApartments(ctx, creds)
	if err != nil {
		return err
	}
	report.Print(apts)
	return nil
}
