package reportapi

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"
)

const (
	ServiceName        = "financegpt.reports.v1.ReportAcceptor"
	acceptReportMethod = "/" + ServiceName + "/AcceptReport"
)

type ReportAcceptorServer interface {
	AcceptReport(ctx context.Context, in *ReportResult) (*OperationStatus, error)
}

type ReportAcceptorClient interface {
	AcceptReport(ctx context.Context, in *ReportResult, opts ...grpc.CallOption) (*OperationStatus, error)
}

func RegisterReportAcceptorServer(s grpc.ServiceRegistrar, srv ReportAcceptorServer) {
	s.RegisterService(&ReportAcceptorServiceDesc, srv)
}

// acceptReport unwraps the request Struct, calls the server and wraps the
// status it returns.
func acceptReport(ctx context.Context, srv ReportAcceptorServer, in *structpb.Struct) (*structpb.Struct, error) {
	report, err := ReportFromStruct(in)
	if err != nil {
		return nil, err
	}
	status, err := srv.AcceptReport(ctx, report)
	if err != nil {
		return nil, err
	}
	return status.ToStruct()
}

func acceptReportHandler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(structpb.Struct)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return acceptReport(ctx, srv.(ReportAcceptorServer), in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: acceptReportMethod,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return acceptReport(ctx, srv.(ReportAcceptorServer), req.(*structpb.Struct))
	}
	return interceptor(ctx, in, info, handler)
}

var ReportAcceptorServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*ReportAcceptorServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "AcceptReport",
			Handler:    acceptReportHandler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "reportapi/service.go",
}

type reportAcceptorClient struct {
	cc grpc.ClientConnInterface
}

func NewReportAcceptorClient(cc grpc.ClientConnInterface) ReportAcceptorClient {
	return &reportAcceptorClient{cc}
}

func (c *reportAcceptorClient) AcceptReport(ctx context.Context, in *ReportResult, opts ...grpc.CallOption) (*OperationStatus, error) {
	req, err := in.ToStruct()
	if err != nil {
		return nil, err
	}
	out := new(structpb.Struct)
	if err = c.cc.Invoke(ctx, acceptReportMethod, req, out, opts...); err != nil {
		return nil, err
	}
	return StatusFromStruct(out), nil
}
