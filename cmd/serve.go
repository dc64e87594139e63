package cmd

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"gamepulse/internal/api"
	"gamepulse/internal/enrich"
	"gamepulse/internal/pandascore"
	"gamepulse/internal/redisclient"
	"gamepulse/internal/storage"
	"gamepulse/worker"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the aggregation workers, esports pollers and HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := GetConfig()

		// Redis client
		rdb := redisclient.New(cfg.Redis)
		defer rdb.Close()
		store := storage.NewSnapshotStore(rdb)

		refreshInterval, err := time.ParseDuration(cfg.Feeds.RefreshInterval)
		if err != nil {
			return err
		}
		refresher := worker.NewNewsRefresher(newAggregator(cfg), store, refreshInterval)

		ws := []worker.Worker{refresher}

		liveStale, err := time.ParseDuration(cfg.Esports.LiveStale)
		if err != nil {
			return err
		}
		upcomingStale, err := time.ParseDuration(cfg.Esports.UpcomingStale)
		if err != nil {
			return err
		}

		// Esports pollers only run with an API token configured.
		if cfg.Esports.Token != "" {
			psc := pandascore.NewClient(cfg.Esports.BaseURL, cfg.Esports.Token, cfg.Esports.PageSize)
			liveInterval, err := time.ParseDuration(cfg.Esports.LiveInterval)
			if err != nil {
				return err
			}
			upcomingInterval, err := time.ParseDuration(cfg.Esports.UpcomingInterval)
			if err != nil {
				return err
			}
			ws = append(ws,
				&worker.EsportsPoller{
					Fetch:     psc.LiveMatches,
					Store:     store,
					Query:     storage.QueryLiveMatches,
					Interval:  liveInterval,
					Staleness: liveStale,
					Retries:   cfg.Esports.Retries,
				},
				&worker.EsportsPoller{
					Fetch:     psc.UpcomingMatches,
					Store:     store,
					Query:     storage.QueryUpcomingMatches,
					Interval:  upcomingInterval,
					Staleness: upcomingStale,
					Retries:   cfg.Esports.Retries,
				},
			)
			slog.Info("starting esports pollers.", "live_interval", cfg.Esports.LiveInterval, "upcoming_interval", cfg.Esports.UpcomingInterval)
		}

		var rewriter enrich.Rewriter
		if cfg.OpenAI.APIKey != "" {
			rewriter = enrich.NewOpenAIRewriter(enrich.OpenAIConfig{
				APIKey:  cfg.OpenAI.APIKey,
				Model:   cfg.OpenAI.Model,
				BaseURL: cfg.OpenAI.BaseURL,
			})
		}

		// HTTP API
		gin.SetMode(gin.ReleaseMode)
		engine := gin.New()
		engine.Use(gin.Recovery())
		api.NewServer(api.Options{
			News:          refresher,
			Store:         store,
			Rewriter:      rewriter,
			BatchSize:     cfg.Enrich.BatchSize,
			LiveStale:     liveStale,
			UpcomingStale: upcomingStale,
		}).RegisterRoutes(engine)

		httpSrv := &http.Server{Addr: cfg.Server.Addr, Handler: engine}
		go func() {
			slog.Info("http api listening.", "addr", cfg.Server.Addr)
			if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				slog.Error("http api failed.", "error", err)
			}
		}()

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		// Signal handling for systemd
		sigc := make(chan os.Signal, 1)
		signal.Notify(sigc, syscall.SIGINT, syscall.SIGTERM)
		go func() {
			s := <-sigc
			log.Printf("received signal: %s, shutting down", s)
			cancel()
		}()

		mgr := worker.NewManager(ws...)
		err = mgr.Start(ctx)

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer shutdownCancel()
		_ = httpSrv.Shutdown(shutdownCtx)

		return err
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
