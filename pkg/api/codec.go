package api

import (
	"encoding/json"
	"google.golang.org/grpc/encoding"
)

// CodecName is the gRPC content-subtype the VersionTable service speaks. Requests are sent
// as application/grpc+json.
const CodecName = "json"

// jsonCodec marshals messages as JSON. Byte fields travel base64 encoded.
type jsonCodec struct{}

func (jsonCodec) Marshal(v any) ([]byte, error) {
	return json.Marshal(v)
}

func (jsonCodec) Unmarshal(data []byte, v any) error {
	return json.Unmarshal(data, v)
}

func (jsonCodec) Name() string {
	return CodecName
}

func init() {
	encoding.RegisterCodec(jsonCodec{})
}
