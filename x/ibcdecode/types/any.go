package types

import (
	"encoding/json"
)

// NestedMessage is a structured message recovered from the value of a
// protobuf Any.
type NestedMessage interface {
	// TypeTag names the registry entry that produced the message.
	TypeTag() string
}

// ProtobufAny is a type-erased protobuf message. RawValue is always kept so the
// UI can fall back to raw bytes; Decoded is set only when TypeURL is known to
// the registry and the value parsed cleanly.
type ProtobufAny struct {
	TypeURL  string
	RawValue []byte
	Decoded  NestedMessage
}

// IsDecoded reports whether the value was decoded into a NestedMessage.
func (a ProtobufAny) IsDecoded() bool {
	return a.Decoded != nil
}

func (a ProtobufAny) MarshalJSON() ([]byte, error) {
	out := struct {
		TypeURL     string        `json:"type_url"`
		RawValue    []byte        `json:"raw_value"`
		DecodedType string        `json:"decoded_type,omitempty"`
		Decoded     NestedMessage `json:"decoded,omitempty"`
	}{
		TypeURL:  a.TypeURL,
		RawValue: a.RawValue,
		Decoded:  a.Decoded,
	}
	if a.Decoded != nil {
		out.DecodedType = a.Decoded.TypeTag()
	}
	return json.Marshal(out)
}
