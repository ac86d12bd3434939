package main

import (
	"fmt"
	"os"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"bookclub/internal/api"
	"bookclub/internal/config"
	"bookclub/internal/engine"
)

var cfgFile string

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "bookclub",
		Short:         "Reading statistics dashboard for the «Читаем вместе» book club",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default ./bookclub.yaml)")
	root.PersistentFlags().String("workbook", "", "path to the book list workbook (.xlsx)")
	root.PersistentFlags().String("sheet", "", "worksheet holding the book list")
	root.PersistentFlags().String("log-level", "", "log level (debug, info, warn, error, disabled)")
	root.PersistentFlags().String("log-format", "", "log format (text, json)")

	root.AddCommand(newServeCmd(), newReportCmd())
	return root
}

// loadConfig reads the configuration for cmd and sets up logging.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load(cfgFile, cmd.Flags())
	if err != nil {
		return nil, err
	}
	initLogging(cfg.Logging)
	return cfg, nil
}

func initLogging(cfg config.LoggingConfig) {
	zerolog.TimeFieldFormat = time.RFC3339

	switch cfg.Level {
	case "debug":
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	case "info":
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	case "warn":
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	case "error":
		zerolog.SetGlobalLevel(zerolog.ErrorLevel)
	default:
		zerolog.SetGlobalLevel(zerolog.Disabled)
	}

	if cfg.Format == "text" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
	}
}

func chartOptions(cfg *config.Config) engine.Options {
	return engine.Options{
		DecadeRunMin:  cfg.Charts.DecadeRunMin,
		DecadeFiller:  cfg.Charts.DecadeFiller,
		HistogramBins: cfg.Charts.HistogramBins,
	}
}

func newServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the dashboard over HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			return serve(cfg)
		},
	}
	cmd.Flags().String("addr", "", "listen address (default localhost:8080)")
	cmd.Flags().Bool("metrics", true, "expose Prometheus metrics on /metrics")
	return cmd
}

func serve(cfg *config.Config) error {
	var metrics *api.Metrics
	if cfg.Server.Metrics {
		metrics = api.NewMetrics(prometheus.NewRegistry())
	}

	// The server starts with no data and answers 503 until the workbook
	// has been read.
	h := api.NewHandler(nil, chartOptions(cfg), metrics)
	e := api.NewServer(h, metrics)

	go func() {
		log.Info().Str("path", cfg.Workbook.Path).Msg("loading workbook in background")
		t0 := time.Now()

		frame, err := engine.LoadWorkbook(cfg.Workbook.Path, cfg.Workbook.Sheet)
		if err != nil {
			log.Error().Err(err).Str("path", cfg.Workbook.Path).Msg("failed to load workbook")
			h.SetError(err)
			return
		}
		h.SetData(frame)

		elapsed := time.Since(t0)
		if metrics != nil {
			metrics.LoadSeconds.Set(elapsed.Seconds())
		}
		log.Info().Int("books", frame.Len()).Dur("elapsed", elapsed).Msg("workbook loaded, dashboard is ready")
	}()

	log.Info().Str("addr", cfg.Server.Addr).Msg("server ready (data loading in background)")
	return e.Start(cfg.Server.Addr)
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
