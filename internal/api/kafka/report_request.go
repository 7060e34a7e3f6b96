package kafka

import (
	"encoding/json"
	"time"

	"github.com/pkg/errors"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/structpb"
	"max.ks1230/financegpt/internal/model/ledger"
	"max.ks1230/financegpt/internal/model/period"
)

// ReportRequest asks the reporter for a report over Window. The ledger
// snapshot travels with the request because ledgers live in the bot process.
type ReportRequest struct {
	UserID      int64           `json:"userId"`
	Window      period.Window   `json:"window"`
	Currency    string          `json:"currency"`
	RequestedAt time.Time       `json:"requestedAt"`
	Snapshot    ledger.Snapshot `json:"snapshot"`
}

// Encode serializes the request as a protobuf Struct.
func Encode(req ReportRequest) ([]byte, error) {
	raw, err := json.Marshal(req)
	if err != nil {
		return nil, errors.Wrap(err, "encode report request")
	}
	var fields map[string]interface{}
	if err = json.Unmarshal(raw, &fields); err != nil {
		return nil, errors.Wrap(err, "encode report request")
	}
	msg, err := structpb.NewStruct(fields)
	if err != nil {
		return nil, errors.Wrap(err, "encode report request")
	}
	data, err := proto.Marshal(msg)
	return data, errors.Wrap(err, "encode report request")
}

func Decode(data []byte) (ReportRequest, error) {
	var msg structpb.Struct
	if err := proto.Unmarshal(data, &msg); err != nil {
		return ReportRequest{}, errors.Wrap(err, "decode report request")
	}
	raw, err := json.Marshal(msg.AsMap())
	if err != nil {
		return ReportRequest{}, errors.Wrap(err, "decode report request")
	}
	var req ReportRequest
	if err = json.Unmarshal(raw, &req); err != nil {
		return ReportRequest{}, errors.Wrap(err, "decode report request")
	}
	return req, nil
}
