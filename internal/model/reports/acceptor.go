package reports

import (
	"context"
	"fmt"
	"net"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"max.ks1230/financegpt/internal/api/reportapi"
	"max.ks1230/financegpt/internal/logger"
)

type reportAcceptor interface {
	AcceptReport(ctx context.Context, report *reportapi.ReportResult) error
}

// AcceptorServer receives finished reports from the reporter.
type AcceptorServer struct {
	acceptor reportAcceptor
	server   *grpc.Server
	lis      net.Listener
}

func NewServer(port int, acceptor reportAcceptor) (*AcceptorServer, error) {
	lis, err := net.Listen("tcp", fmt.Sprintf(":%d", port))
	if err != nil {
		return nil, errors.Wrap(err, "cannot create server")
	}
	return newServerOn(lis, acceptor), nil
}

func newServerOn(lis net.Listener, acceptor reportAcceptor) *AcceptorServer {
	rpcServer := grpc.NewServer()
	service := &AcceptorServer{
		acceptor: acceptor,
		server:   rpcServer,
		lis:      lis,
	}
	reportapi.RegisterReportAcceptorServer(rpcServer, service)
	return service
}

func (s *AcceptorServer) Serve() error {
	logger.Info("gRPC server listening", zap.Any("addr", s.lis.Addr()))
	err := s.server.Serve(s.lis)
	if err != nil && !errors.Is(err, grpc.ErrServerStopped) {
		logger.Error("failed to serve gRPC", zap.Error(err))
		return err
	}
	return nil
}

func (s *AcceptorServer) Shutdown() {
	s.server.GracefulStop()
	logger.Info("grpc server stopped")
}

func (s *AcceptorServer) AcceptReport(ctx context.Context, in *reportapi.ReportResult) (*reportapi.OperationStatus, error) {
	err := s.acceptor.AcceptReport(ctx, in)
	if err != nil {
		return &reportapi.OperationStatus{Success: false, Error: err.Error()}, err
	}
	return &reportapi.OperationStatus{Success: true}, nil
}
