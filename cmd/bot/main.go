package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"max.ks1230/financegpt/internal/api/httpapi"
	"max.ks1230/financegpt/internal/clients/anthropic"
	"max.ks1230/financegpt/internal/clients/coingecko"
	"max.ks1230/financegpt/internal/clients/kafka"
	"max.ks1230/financegpt/internal/clients/tg"
	"max.ks1230/financegpt/internal/config"
	"max.ks1230/financegpt/internal/logger"
	"max.ks1230/financegpt/internal/model/assistant"
	"max.ks1230/financegpt/internal/model/messages"
	"max.ks1230/financegpt/internal/model/rates"
	"max.ks1230/financegpt/internal/model/reports"
	"max.ks1230/financegpt/internal/model/storage"
	"max.ks1230/financegpt/internal/tracing"
)

const (
	serviceName     = "financegpt-bot"
	shutdownTimeout = 10 * time.Second
	// 09:00 on the first day of every month.
	achievementSweepSpec = "0 9 1 * *"
)

func main() {
	_ = godotenv.Load()
	defer logger.Sync()
	logger.Info("Bot init - start")

	conf, err := config.New()
	if err != nil {
		logger.Fatal("failed to init config:", zap.Error(err))
	}

	tracer, err := tracing.Init(conf.Jaeger(), serviceName)
	if err != nil {
		logger.Fatal("failed to init tracing:", zap.Error(err))
	}
	defer tracer.Close()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	loc := conf.App().TimeLocation()
	clock := func() time.Time { return time.Now().In(loc) }

	cacheClient := newCache(conf.Memcached())
	coins := coingecko.New(conf.CoinGecko(), cacheClient)
	advisor := assistant.NewService(anthropic.New(conf.Anthropic()), conf.App().RecentExpenses())

	watcher := &holdingsWatcher{}
	ledgers := storage.NewInMemStorage(newLedgerFactory(clock, cacheClient, watcher))

	settings, closeSettings := newSettingsStorage(conf.Postgres(), ledgers)
	defer closeSettings()

	puller := rates.NewPuller(settings, coins, ledgers, conf.App())
	watcher.trigger = puller.Trigger

	var (
		tgClient *tg.Client
		sender   messageSender = logSender{}
	)
	if conf.Telegram().Enabled() {
		tgClient, err = tg.New(conf.Telegram(), time.Duration(conf.App().RequestTimeout())*time.Millisecond)
		if err != nil {
			logger.Fatal("failed to init telegram client:", zap.Error(err))
		}
		sender = tgClient
	} else {
		logger.Warn("telegram token is not set, serving the HTTP API only")
	}

	msgOpts := []messages.Option{
		messages.WithClock(clock),
		messages.WithPrices(settings),
		messages.WithCoins(coins),
		messages.WithReportCache(cacheClient),
	}
	var acceptor *reports.AcceptorServer
	if conf.Kafka().Enabled() {
		producer, err := kafka.NewProducer(conf.Kafka())
		if err != nil {
			logger.Fatal("failed to init kafka producer:", zap.Error(err))
		}
		defer producer.Close()
		msgOpts = append(msgOpts, messages.WithReportRequester(reports.NewKafkaRequester(producer)))
	}
	msgService := messages.NewService(sender, ledgers, settings, advisor, conf.App(), msgOpts...)

	if conf.Kafka().Enabled() {
		acceptor, err = reports.NewServer(conf.GRPC().Port(), msgService)
		if err != nil {
			logger.Fatal("failed to init report acceptor:", zap.Error(err))
		}
	}

	httpServer := httpapi.NewServer(conf.HTTP(), conf.App(), ledgers, settings, advisor,
		httpapi.WithPrices(settings),
		httpapi.WithCoins(coins),
	)

	scheduler := cron.New(cron.WithLocation(loc))
	if _, err = scheduler.AddFunc(achievementSweepSpec, func() { msgService.SweepAchievements(ctx) }); err != nil {
		logger.Fatal("failed to schedule achievement sweep:", zap.Error(err))
	}

	logger.Info("Bot init - end")

	g, gctx := errgroup.WithContext(ctx)
	if tgClient != nil {
		g.Go(func() error {
			tgClient.ListenUpdates(gctx, msgService)
			return nil
		})
	}
	g.Go(func() error {
		puller.Pull(gctx)
		return nil
	})
	g.Go(httpServer.ListenAndServe)
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return httpServer.Shutdown(shutdownCtx)
	})
	if acceptor != nil {
		g.Go(acceptor.Serve)
		g.Go(func() error {
			<-gctx.Done()
			acceptor.Shutdown()
			return nil
		})
	}
	g.Go(func() error {
		scheduler.Start()
		<-gctx.Done()
		<-scheduler.Stop().Done()
		return nil
	})

	if err = g.Wait(); err != nil {
		logger.Error("bot stopped with error", zap.Error(err))
	}
	logger.Info("Bot stopped")
}
