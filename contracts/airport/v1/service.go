package airportv1

import (
	"context"

	"github.com/flightforesight/flightforesight/contracts/rpc"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const (
	ServiceName = "flightforesight.airport.v1.AirportDirectoryService"

	GetAirportFullMethodName        = "/" + ServiceName + "/GetAirport"
	ListAirportsFullMethodName      = "/" + ServiceName + "/ListAirports"
	UpsertAirportFullMethodName     = "/" + ServiceName + "/UpsertAirport"
	DeleteAirportFullMethodName     = "/" + ServiceName + "/DeleteAirport"
	ListAirlinesFullMethodName      = "/" + ServiceName + "/ListAirlines"
	SyncReferenceDataFullMethodName = "/" + ServiceName + "/SyncReferenceData"
)

type AirportDirectoryServiceServer interface {
	GetAirport(context.Context, *GetAirportRequest) (*GetAirportResponse, error)
	ListAirports(context.Context, *ListAirportsRequest) (*ListAirportsResponse, error)
	UpsertAirport(context.Context, *UpsertAirportRequest) (*UpsertAirportResponse, error)
	DeleteAirport(context.Context, *DeleteAirportRequest) (*DeleteAirportResponse, error)
	ListAirlines(context.Context, *ListAirlinesRequest) (*ListAirlinesResponse, error)
	SyncReferenceData(context.Context, *SyncReferenceDataRequest) (*SyncReferenceDataResponse, error)
}

type UnimplementedAirportDirectoryServiceServer struct{}

func (UnimplementedAirportDirectoryServiceServer) GetAirport(context.Context, *GetAirportRequest) (*GetAirportResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetAirport not implemented")
}

func (UnimplementedAirportDirectoryServiceServer) ListAirports(context.Context, *ListAirportsRequest) (*ListAirportsResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListAirports not implemented")
}

func (UnimplementedAirportDirectoryServiceServer) UpsertAirport(context.Context, *UpsertAirportRequest) (*UpsertAirportResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method UpsertAirport not implemented")
}

func (UnimplementedAirportDirectoryServiceServer) DeleteAirport(context.Context, *DeleteAirportRequest) (*DeleteAirportResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method DeleteAirport not implemented")
}

func (UnimplementedAirportDirectoryServiceServer) ListAirlines(context.Context, *ListAirlinesRequest) (*ListAirlinesResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListAirlines not implemented")
}

func (UnimplementedAirportDirectoryServiceServer) SyncReferenceData(context.Context, *SyncReferenceDataRequest) (*SyncReferenceDataResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method SyncReferenceData not implemented")
}

var AirportDirectoryServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*AirportDirectoryServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "GetAirport", Handler: rpc.UnaryHandler(GetAirportFullMethodName, AirportDirectoryServiceServer.GetAirport)},
		{MethodName: "ListAirports", Handler: rpc.UnaryHandler(ListAirportsFullMethodName, AirportDirectoryServiceServer.ListAirports)},
		{MethodName: "UpsertAirport", Handler: rpc.UnaryHandler(UpsertAirportFullMethodName, AirportDirectoryServiceServer.UpsertAirport)},
		{MethodName: "DeleteAirport", Handler: rpc.UnaryHandler(DeleteAirportFullMethodName, AirportDirectoryServiceServer.DeleteAirport)},
		{MethodName: "ListAirlines", Handler: rpc.UnaryHandler(ListAirlinesFullMethodName, AirportDirectoryServiceServer.ListAirlines)},
		{MethodName: "SyncReferenceData", Handler: rpc.UnaryHandler(SyncReferenceDataFullMethodName, AirportDirectoryServiceServer.SyncReferenceData)},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "airport/v1/airport.json",
}

func RegisterAirportDirectoryServiceServer(s grpc.ServiceRegistrar, srv AirportDirectoryServiceServer) {
	s.RegisterService(&AirportDirectoryServiceDesc, srv)
}

type AirportDirectoryServiceClient interface {
	GetAirport(ctx context.Context, in *GetAirportRequest, opts ...grpc.CallOption) (*GetAirportResponse, error)
	ListAirports(ctx context.Context, in *ListAirportsRequest, opts ...grpc.CallOption) (*ListAirportsResponse, error)
	UpsertAirport(ctx context.Context, in *UpsertAirportRequest, opts ...grpc.CallOption) (*UpsertAirportResponse, error)
	DeleteAirport(ctx context.Context, in *DeleteAirportRequest, opts ...grpc.CallOption) (*DeleteAirportResponse, error)
	ListAirlines(ctx context.Context, in *ListAirlinesRequest, opts ...grpc.CallOption) (*ListAirlinesResponse, error)
	SyncReferenceData(ctx context.Context, in *SyncReferenceDataRequest, opts ...grpc.CallOption) (*SyncReferenceDataResponse, error)
}

type airportDirectoryServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewAirportDirectoryServiceClient(cc grpc.ClientConnInterface) AirportDirectoryServiceClient {
	return &airportDirectoryServiceClient{cc: cc}
}

func (c *airportDirectoryServiceClient) GetAirport(ctx context.Context, in *GetAirportRequest, opts ...grpc.CallOption) (*GetAirportResponse, error) {
	out := new(GetAirportResponse)
	if err := c.cc.Invoke(ctx, GetAirportFullMethodName, in, out, rpc.CallOptions(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *airportDirectoryServiceClient) ListAirports(ctx context.Context, in *ListAirportsRequest, opts ...grpc.CallOption) (*ListAirportsResponse, error) {
	out := new(ListAirportsResponse)
	if err := c.cc.Invoke(ctx, ListAirportsFullMethodName, in, out, rpc.CallOptions(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *airportDirectoryServiceClient) UpsertAirport(ctx context.Context, in *UpsertAirportRequest, opts ...grpc.CallOption) (*UpsertAirportResponse, error) {
	out := new(UpsertAirportResponse)
	if err := c.cc.Invoke(ctx, UpsertAirportFullMethodName, in, out, rpc.CallOptions(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *airportDirectoryServiceClient) DeleteAirport(ctx context.Context, in *DeleteAirportRequest, opts ...grpc.CallOption) (*DeleteAirportResponse, error) {
	out := new(DeleteAirportResponse)
	if err := c.cc.Invoke(ctx, DeleteAirportFullMethodName, in, out, rpc.CallOptions(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *airportDirectoryServiceClient) ListAirlines(ctx context.Context, in *ListAirlinesRequest, opts ...grpc.CallOption) (*ListAirlinesResponse, error) {
	out := new(ListAirlinesResponse)
	if err := c.cc.Invoke(ctx, ListAirlinesFullMethodName, in, out, rpc.CallOptions(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *airportDirectoryServiceClient) SyncReferenceData(ctx context.Context, in *SyncReferenceDataRequest, opts ...grpc.CallOption) (*SyncReferenceDataResponse, error) {
	out := new(SyncReferenceDataResponse)
	if err := c.cc.Invoke(ctx, SyncReferenceDataFullMethodName, in, out, rpc.CallOptions(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}
