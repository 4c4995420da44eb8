package service

import (
	"encoding/json"

	"connectrpc.com/connect"
)

// jsonCodec marshals plain Go message structs. It takes the "json" name so
// Connect clients that send application/json reach it.
type jsonCodec struct{}

var _ connect.Codec = jsonCodec{}

func (jsonCodec) Name() string { return "json" }

func (jsonCodec) Marshal(v any) ([]byte, error) { return json.Marshal(v) }

func (jsonCodec) Unmarshal(data []byte, v any) error { return json.Unmarshal(data, v) }

// WithJSON configures a handler or client to speak the JSON codec.
func WithJSON() connect.Option {
	return connect.WithCodec(jsonCodec{})
}
