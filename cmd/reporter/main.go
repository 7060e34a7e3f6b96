package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"max.ks1230/financegpt/internal/clients/kafka"
	"max.ks1230/financegpt/internal/config"
	"max.ks1230/financegpt/internal/logger"
	"max.ks1230/financegpt/internal/model/reports"
	"max.ks1230/financegpt/internal/tracing"
)

const serviceName = "financegpt-reporter"

func main() {
	_ = godotenv.Load()
	defer logger.Sync()
	logger.Info("Reporter init - start")

	conf, err := config.New()
	if err != nil {
		logger.Fatal("failed to init config:", zap.Error(err))
	}

	tracer, err := tracing.Init(conf.Jaeger(), serviceName)
	if err != nil {
		logger.Fatal("failed to init tracing:", zap.Error(err))
	}
	defer tracer.Close()

	sender, err := reports.NewSender(conf.GRPC().Addr())
	if err != nil {
		logger.Fatal("failed to init report sender:", zap.Error(err))
	}
	defer sender.Close()

	loc := conf.App().TimeLocation()
	generator := reports.NewGenerator(func() time.Time { return time.Now().In(loc) })

	consumer, err := kafka.NewConsumer(conf.Kafka(), generator, sender)
	if err != nil {
		logger.Fatal("failed to init kafka consumer", zap.Error(err))
	}
	defer consumer.Close()

	logger.Info("Reporter init - end")

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err = consumer.StartConsuming(ctx); err != nil {
		logger.Error("failed to consume", zap.Error(err))
	}
	logger.Info("Reporter stopped")
}
