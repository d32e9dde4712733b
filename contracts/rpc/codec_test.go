package rpc

import (
	"context"
	"errors"
	"testing"

	"google.golang.org/grpc"
	"google.golang.org/grpc/encoding"
)

type echoRequest struct {
	Value string `json:"value"`
}

type echoResponse struct {
	Value string `json:"value"`
}

type echoServer struct{}

func (echoServer) Echo(_ context.Context, req *echoRequest) (*echoResponse, error) {
	if req.Value == "" {
		return nil, errors.New("empty")
	}
	return &echoResponse{Value: req.Value}, nil
}

func TestCodecRegistered(t *testing.T) {
	if encoding.GetCodec(CodecName) == nil {
		t.Fatal("json codec must be registered")
	}
}

func TestUnaryHandler_DecodesAndRunsInterceptor(t *testing.T) {
	handler := UnaryHandler("/test.Echo/Echo", echoServer.Echo)

	dec := func(v any) error {
		return Codec{}.Unmarshal([]byte(`{"value":"SYD"}`), v)
	}

	var seenMethod string
	interceptor := func(ctx context.Context, req any, info *grpc.UnaryServerInfo, next grpc.UnaryHandler) (any, error) {
		seenMethod = info.FullMethod
		return next(ctx, req)
	}

	resp, err := handler(echoServer{}, context.Background(), dec, interceptor)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if seenMethod != "/test.Echo/Echo" {
		t.Fatalf("unexpected method in interceptor: %q", seenMethod)
	}
	if got := resp.(*echoResponse).Value; got != "SYD" {
		t.Fatalf("unexpected value: %q", got)
	}
}

func TestUnaryHandler_DecodeError(t *testing.T) {
	handler := UnaryHandler("/test.Echo/Echo", echoServer.Echo)

	_, err := handler(echoServer{}, context.Background(), func(v any) error {
		return Codec{}.Unmarshal([]byte(`{`), v)
	}, nil)
	if err == nil {
		t.Fatal("expected decode error")
	}
}
