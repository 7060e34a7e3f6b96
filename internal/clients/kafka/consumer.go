package kafka

import (
	"context"
	"fmt"

	"github.com/Shopify/sarama"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	kafkaapi "max.ks1230/financegpt/internal/api/kafka"
	"max.ks1230/financegpt/internal/api/reportapi"
	"max.ks1230/financegpt/internal/logger"
)

type consumerConfig interface {
	producerConfig
	ConsumerGroup() string
}

type reportGenerator interface {
	GenerateReport(ctx context.Context, req kafkaapi.ReportRequest) *reportapi.ReportResult
}

type reportSender interface {
	SendReport(ctx context.Context, report *reportapi.ReportResult) error
}

type Consumer struct {
	consumerGroup sarama.ConsumerGroup
	topic         string
	generator     reportGenerator
	sender        reportSender
}

func NewConsumer(cfg consumerConfig, generator reportGenerator, sender reportSender) (*Consumer, error) {
	config := sarama.NewConfig()
	config.Version = sarama.V2_5_0_0
	config.Consumer.Offsets.Initial = sarama.OffsetOldest

	consumerGroup, err := sarama.NewConsumerGroup(cfg.Brokers(), cfg.ConsumerGroup(), config)
	return &Consumer{
		consumerGroup: consumerGroup,
		topic:         cfg.ReportsTopic(),
		generator:     generator,
		sender:        sender,
	}, err
}

func (c *Consumer) StartConsuming(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		default:
			err := c.consumerGroup.Consume(ctx, []string{c.topic}, c)
			if err != nil {
				return errors.Wrap(err, fmt.Sprintf("consume from %s", c.topic))
			}
		}
	}
}

func (c *Consumer) Close() {
	if err := c.consumerGroup.Close(); err != nil {
		logger.Error("failed to close consumer group", zap.Error(err))
	}
}

func (c *Consumer) Setup(sarama.ConsumerGroupSession) error {
	logger.Info("consumer - setup")
	return nil
}

func (c *Consumer) Cleanup(sarama.ConsumerGroupSession) error {
	logger.Info("consumer - cleanup")
	return nil
}

func (c *Consumer) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for message := range claim.Messages() {
		c.processMessage(session.Context(), message)
		session.MarkMessage(message, "")
	}
	return nil
}

// processMessage never fails the claim: an undecodable or unsendable
// request is logged and skipped.
func (c *Consumer) processMessage(ctx context.Context, message *sarama.ConsumerMessage) {
	req, err := kafkaapi.Decode(message.Value)
	if err != nil {
		logger.Error("cannot decode kafka message", zap.Error(err))
		return
	}
	logger.Info(
		"received report request",
		zap.ByteString("key", message.Key),
		zap.Int64("userID", req.UserID),
		zap.String("period", req.Window.String()),
	)

	report := c.generator.GenerateReport(ctx, req)
	if err = c.sender.SendReport(ctx, report); err != nil {
		logger.Error("failed to send report", zap.Error(err))
	}
}
