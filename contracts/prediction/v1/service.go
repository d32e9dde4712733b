package predictionv1

import (
	"context"

	"github.com/flightforesight/flightforesight/contracts/rpc"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const (
	ServiceName = "flightforesight.prediction.v1.PredictionService"

	PredictDelayFullMethodName    = "/" + ServiceName + "/PredictDelay"
	PredictFareFullMethodName     = "/" + ServiceName + "/PredictFare"
	ListPredictionsFullMethodName = "/" + ServiceName + "/ListPredictions"
)

type PredictionServiceServer interface {
	PredictDelay(context.Context, *PredictDelayRequest) (*PredictDelayResponse, error)
	PredictFare(context.Context, *PredictFareRequest) (*PredictFareResponse, error)
	ListPredictions(context.Context, *ListPredictionsRequest) (*ListPredictionsResponse, error)
}

type UnimplementedPredictionServiceServer struct{}

func (UnimplementedPredictionServiceServer) PredictDelay(context.Context, *PredictDelayRequest) (*PredictDelayResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method PredictDelay not implemented")
}

func (UnimplementedPredictionServiceServer) PredictFare(context.Context, *PredictFareRequest) (*PredictFareResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method PredictFare not implemented")
}

func (UnimplementedPredictionServiceServer) ListPredictions(context.Context, *ListPredictionsRequest) (*ListPredictionsResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListPredictions not implemented")
}

var PredictionServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*PredictionServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "PredictDelay",
			Handler:    rpc.UnaryHandler(PredictDelayFullMethodName, PredictionServiceServer.PredictDelay),
		},
		{
			MethodName: "PredictFare",
			Handler:    rpc.UnaryHandler(PredictFareFullMethodName, PredictionServiceServer.PredictFare),
		},
		{
			MethodName: "ListPredictions",
			Handler:    rpc.UnaryHandler(ListPredictionsFullMethodName, PredictionServiceServer.ListPredictions),
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "prediction/v1/prediction.json",
}

func RegisterPredictionServiceServer(s grpc.ServiceRegistrar, srv PredictionServiceServer) {
	s.RegisterService(&PredictionServiceDesc, srv)
}

type PredictionServiceClient interface {
	PredictDelay(ctx context.Context, in *PredictDelayRequest, opts ...grpc.CallOption) (*PredictDelayResponse, error)
	PredictFare(ctx context.Context, in *PredictFareRequest, opts ...grpc.CallOption) (*PredictFareResponse, error)
	ListPredictions(ctx context.Context, in *ListPredictionsRequest, opts ...grpc.CallOption) (*ListPredictionsResponse, error)
}

type predictionServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewPredictionServiceClient(cc grpc.ClientConnInterface) PredictionServiceClient {
	return &predictionServiceClient{cc: cc}
}

func (c *predictionServiceClient) PredictDelay(ctx context.Context, in *PredictDelayRequest, opts ...grpc.CallOption) (*PredictDelayResponse, error) {
	out := new(PredictDelayResponse)
	if err := c.cc.Invoke(ctx, PredictDelayFullMethodName, in, out, rpc.CallOptions(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *predictionServiceClient) PredictFare(ctx context.Context, in *PredictFareRequest, opts ...grpc.CallOption) (*PredictFareResponse, error) {
	out := new(PredictFareResponse)
	if err := c.cc.Invoke(ctx, PredictFareFullMethodName, in, out, rpc.CallOptions(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *predictionServiceClient) ListPredictions(ctx context.Context, in *ListPredictionsRequest, opts ...grpc.CallOption) (*ListPredictionsResponse, error) {
	out := new(ListPredictionsResponse)
	if err := c.cc.Invoke(ctx, ListPredictionsFullMethodName, in, out, rpc.CallOptions(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}
