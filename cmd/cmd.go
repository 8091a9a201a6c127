package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/sync/errgroup"

	"github.com/anicoll/blf-reorder/internal/pkg/axl"
	"github.com/anicoll/blf-reorder/internal/pkg/config"
	"github.com/anicoll/blf-reorder/internal/pkg/prompt"
	"github.com/anicoll/blf-reorder/internal/pkg/reorder"
)

func ReorderCommand(ctx *cli.Context) error {
	cfg, err := loadConfig(ctx)
	if err != nil {
		return err
	}

	p, err := prompt.New()
	if err != nil {
		return err
	}
	defer p.Close()

	logger, err := newLogger(cfg, p.Stderr())
	if err != nil {
		return err
	}
	defer func() {
		_ = logger.Sync() // flushes buffer, if any.
	}()
	zap.ReplaceGlobals(logger)

	if err := collectCredentials(p, &cfg.AXL); err != nil {
		return err
	}

	return run(ctx.Context, axl.New(&cfg.AXL), p, p.Stdout(), logger)
}

// loadConfig layers the flags that were explicitly set over the config file,
// the environment and the defaults.
func loadConfig(ctx *cli.Context) (*config.Config, error) {
	cfg, err := config.Load(ctx.String("config"))
	if err != nil {
		return nil, err
	}
	applyFlags(ctx, cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func applyFlags(ctx *cli.Context, cfg *config.Config) {
	if ctx.IsSet("axl-host") {
		cfg.AXL.Host = ctx.String("axl-host")
	}
	if ctx.IsSet("axl-port") {
		cfg.AXL.Port = ctx.Int("axl-port")
	}
	if ctx.IsSet("axl-username") {
		cfg.AXL.Username = ctx.String("axl-username")
	}
	if ctx.IsSet("axl-password") {
		cfg.AXL.Password = ctx.String("axl-password")
	}
	if ctx.IsSet("axl-version") {
		cfg.AXL.Version = ctx.String("axl-version")
	}
	if ctx.IsSet("insecure-skip-verify") {
		cfg.AXL.InsecureSkipVerify = ctx.Bool("insecure-skip-verify")
	}
	if ctx.IsSet("timeout") {
		cfg.AXL.Timeout = ctx.Duration("timeout")
	}
	if ctx.IsSet("log-level") {
		cfg.LogLevel = ctx.String("log-level")
	}
}

func newLogger(cfg *config.Config, w io.Writer) (*zap.Logger, error) {
	logCfg := zap.NewProductionConfig()

	level, err := zap.ParseAtomicLevel(cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	logCfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	var encoder zapcore.Encoder
	switch cfg.LogEncoding {
	case "json":
		encoder = zapcore.NewJSONEncoder(logCfg.EncoderConfig)
	case "console":
		encoder = zapcore.NewConsoleEncoder(logCfg.EncoderConfig)
	default:
		return nil, fmt.Errorf("unknown log encoding %q", cfg.LogEncoding)
	}

	core := zapcore.NewCore(encoder, zapcore.Lock(zapcore.AddSync(w)), level)
	return zap.New(core, zap.AddCaller(), zap.AddStacktrace(zap.ErrorLevel)), nil
}

// collectCredentials prompts for whatever the config left empty.
func collectCredentials(p Prompter, cfg *config.AXLConfig) error {
	if !cfg.Missing() {
		return nil
	}
	var err error
	if cfg.Username == "" {
		if cfg.Username, err = p.Line("Administrator Username: "); err != nil {
			return err
		}
	}
	if cfg.Password == "" {
		if cfg.Password, err = p.Password("Administrator Password: "); err != nil {
			return err
		}
	}
	if cfg.Host == "" {
		if cfg.Host, err = p.Line("CUCM Host: "); err != nil {
			return err
		}
	}
	return nil
}

func run(ctx context.Context, svc AXLService, p Prompter, out io.Writer, logger *zap.Logger) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	eg, ctx := errgroup.WithContext(ctx)

	session := reorder.New(svc, p, out)

	eg.Go(func() error {
		defer cancel()
		state, err := session.Run(ctx)
		logger.Debug("session finished", zap.Stringer("state", state), zap.Error(err))
		return err
	})

	eg.Go(func() error {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		defer signal.Stop(sigCh)

		select {
		case sig := <-sigCh:
			logger.Info("received signal", zap.Stringer("signal", sig))
			// unblocks a pending prompt.
			_ = p.Close()
			return fmt.Errorf("%w: %s", reorder.ErrAborted, sig)
		case <-ctx.Done():
			return nil
		}
	})

	return eg.Wait()
}
