package reports

import (
	"context"
	"strconv"

	"github.com/pkg/errors"
	"max.ks1230/financegpt/internal/api/kafka"
)

type producer interface {
	ProduceMessage(key string, message []byte) error
}

// KafkaRequester hands report requests to the reporter process.
type KafkaRequester struct {
	producer producer
}

func NewKafkaRequester(producer producer) *KafkaRequester {
	return &KafkaRequester{producer: producer}
}

func (r *KafkaRequester) RequestReport(_ context.Context, req kafka.ReportRequest) error {
	data, err := kafka.Encode(req)
	if err != nil {
		return err
	}
	return errors.Wrap(r.producer.ProduceMessage(strconv.FormatInt(req.UserID, 10), data), "produce report request")
}
