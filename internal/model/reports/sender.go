package reports

import (
	"context"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"max.ks1230/financegpt/internal/api/reportapi"
	"max.ks1230/financegpt/internal/logger"
)

type Sender struct {
	conn   *grpc.ClientConn
	client reportapi.ReportAcceptorClient
}

func NewSender(addr string, opts ...grpc.DialOption) (*Sender, error) {
	opts = append([]grpc.DialOption{grpc.WithTransportCredentials(insecure.NewCredentials())}, opts...)
	conn, err := grpc.Dial(addr, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "cannot initiate new connection")
	}
	client := reportapi.NewReportAcceptorClient(conn)
	return &Sender{conn, client}, nil
}

func (s *Sender) Close() {
	err := s.conn.Close()
	if err != nil {
		logger.Error("failed to close grpc connection", zap.Error(err))
	}
}

func (s *Sender) SendReport(ctx context.Context, report *reportapi.ReportResult) error {
	logger.Info("SendReport - start", zap.Int64("userID", report.GetUserID()))
	defer logger.Info("SendReport - end")

	_, err := s.client.AcceptReport(ctx, report)
	return errors.Wrap(err, "send report")
}
