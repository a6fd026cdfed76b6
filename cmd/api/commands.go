package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"

	"dog-registry/internal/bootstrap"
	"dog-registry/internal/config"
	"dog-registry/internal/domain/dogs"
	"dog-registry/internal/platform/logger"
	"dog-registry/internal/platform/metrics"
	"dog-registry/internal/platform/tracing"
	"dog-registry/internal/router"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func newRootCmd() *cobra.Command {
	v := viper.New()

	root := &cobra.Command{
		Use:           "dog-registry",
		Short:         "Registro de perros con front htmx",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(*cobra.Command, []string) error {
			return config.LoadDotEnv()
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd.Context(), v)
		},
	}

	flags := root.PersistentFlags()
	flags.String("port", "", "HTTP port (env PORT, default 3000)")
	flags.String("storage", "", "storage driver: sqlite|postgres|memory (env STORAGE_DRIVER)")
	flags.String("sqlite-path", "", "SQLite file (env SQLITE_PATH, default dogs.db)")
	flags.String("static-dir", "", "static assets directory (env STATIC_DIR)")

	config.SetDefaults(v)
	_ = v.BindPFlag("server.port", flags.Lookup("port"))
	_ = v.BindPFlag("storage.driver", flags.Lookup("storage"))
	_ = v.BindPFlag("storage.sqlite_path", flags.Lookup("sqlite-path"))
	_ = v.BindPFlag("server.static_dir", flags.Lookup("static-dir"))

	root.AddCommand(&cobra.Command{
		Use:   "serve",
		Short: "Inicializa el store y levanta el servidor HTTP",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd.Context(), v)
		},
	})
	root.AddCommand(&cobra.Command{
		Use:   "init-db",
		Short: "Crea la tabla dogs y carga los seeds si está vacía",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runInitDB(cmd.Context(), v)
		},
	})

	return root
}

// app agrupa lo que vive durante todo el proceso.
type app struct {
	cfg    *config.Config
	log    logger.Logger
	store  *bootstrap.Store
	tracer *tracing.Provider
	meter  *metrics.Provider
	reg    *dogs.Registry
}

func newApp(v *viper.Viper) (*app, error) {
	cfg, err := config.Load(v)
	if err != nil {
		return nil, err
	}
	log := cfg.Logger(nil)

	tp, err := tracing.NewProvider(tracing.Config{Exporter: cfg.Tracing.Exporter, ServiceName: cfg.Log.App})
	if err != nil {
		return nil, err
	}

	mp, err := metrics.NewProvider(metrics.Config{
		Exporter:    cfg.Metrics.Exporter,
		ServiceName: cfg.Log.App,
		Interval:    cfg.Metrics.Interval,
	})
	if err != nil {
		_ = tp.Shutdown(context.Background())
		return nil, err
	}

	a := &app{cfg: cfg, log: log, tracer: tp, meter: mp}

	a.store, err = bootstrap.OpenStore(cfg.Storage)
	if err != nil {
		a.close(context.Background())
		return nil, err
	}

	locale, err := dogs.ParseLocale(cfg.Registry.Locale)
	if err != nil {
		a.close(context.Background())
		return nil, err
	}

	a.reg = dogs.NewRegistry(a.store.Repo,
		dogs.WithLocale(locale),
		dogs.WithSeed(cfg.Registry.Seed),
		dogs.WithLogger(log),
		dogs.WithTracerProvider(tp.TracerProvider()),
		dogs.WithMeterProvider(mp.MeterProvider()),
	)
	return a, nil
}

// close libera en orden inverso: store, meter, tracer.
func (a *app) close(ctx context.Context) {
	if err := a.store.Close(); err != nil {
		a.log.Warn("close store failed", map[string]any{"error": err.Error()})
	}
	if err := a.meter.Shutdown(ctx); err != nil {
		a.log.Warn("meter shutdown failed", map[string]any{"error": err.Error()})
	}
	if err := a.tracer.Shutdown(ctx); err != nil {
		a.log.Warn("tracer shutdown failed", map[string]any{"error": err.Error()})
	}
}

func runInitDB(ctx context.Context, v *viper.Viper) error {
	a, err := newApp(v)
	if err != nil {
		return err
	}
	defer a.close(context.Background())

	if err := a.reg.Initialize(ctx); err != nil {
		return fmt.Errorf("initialize: %w", err)
	}
	n, err := a.reg.Count(ctx)
	if err != nil {
		return err
	}
	a.log.Info("database ready", map[string]any{"driver": a.store.Driver, "dogs": n})
	return nil
}

func runServe(ctx context.Context, v *viper.Viper) error {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a, err := newApp(v)
	if err != nil {
		return err
	}
	defer a.close(context.Background())

	// Initialize antes de aceptar requests
	if err := a.reg.Initialize(ctx); err != nil {
		return fmt.Errorf("initialize: %w", err)
	}

	srv := &http.Server{
		Addr: a.cfg.Addr(),
		Handler: router.NewRouter(router.Options{
			Registry:       a.reg,
			Logger:         a.log,
			StaticDir:      a.cfg.Server.StaticDir,
			Docs:           a.cfg.Server.Docs,
			RequestTimeout: a.cfg.Server.RequestTimeout,
		}),
		ReadTimeout:  a.cfg.Server.ReadTimeout,
		WriteTimeout: a.cfg.Server.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		a.log.Info("starting server", map[string]any{"addr": srv.Addr, "driver": a.store.Driver})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	a.log.Info("shutting down", nil)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
