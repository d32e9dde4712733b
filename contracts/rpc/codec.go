// Package rpc holds the wire plumbing shared by the service contracts: a JSON
// gRPC codec and a generic unary handler used by the service descriptors.
package rpc

import (
	"encoding/json"

	"google.golang.org/grpc"
	"google.golang.org/grpc/encoding"
)

// CodecName is the gRPC content-subtype, sent as application/grpc+json.
const CodecName = "json"

type Codec struct{}

func (Codec) Marshal(v any) ([]byte, error) {
	return json.Marshal(v)
}

func (Codec) Unmarshal(data []byte, v any) error {
	return json.Unmarshal(data, v)
}

func (Codec) Name() string {
	return CodecName
}

func init() {
	encoding.RegisterCodec(Codec{})
}

// CallOption selects the JSON codec for a client call.
func CallOption() grpc.CallOption {
	return grpc.CallContentSubtype(CodecName)
}

// CallOptions prepends the JSON codec to caller supplied options.
func CallOptions(opts []grpc.CallOption) []grpc.CallOption {
	return append([]grpc.CallOption{CallOption()}, opts...)
}
