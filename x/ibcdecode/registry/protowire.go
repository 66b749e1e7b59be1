package registry

import (
	"fmt"
	"unicode/utf8"

	"google.golang.org/protobuf/encoding/protowire"

	codectypes "github.com/cosmos/cosmos-sdk/codec/types"
)

// unmarshalAny reads a google.protobuf.Any from raw protobuf bytes.
//
// Any layout:
//
//	field 1: string type_url
//	field 2: bytes value
//
// Unlike a generated Unmarshal it rejects unknown fields, other wire types and
// trailing garbage, so arbitrary bytes are not mistaken for an Any.
func unmarshalAny(data []byte) (*codectypes.Any, error) {
	any := &codectypes.Any{}
	seenURL := false
	i := 0
	for i < len(data) {
		num, typ, n := protowire.ConsumeTag(data[i:])
		if n < 0 {
			return nil, fmt.Errorf("bad tag in Any at %d: %w", i, protowire.ParseError(n))
		}
		i += n

		if typ != protowire.BytesType {
			return nil, fmt.Errorf("unexpected wire type %d for field %d in Any", typ, num)
		}
		val, n := protowire.ConsumeBytes(data[i:])
		if n < 0 {
			return nil, fmt.Errorf("bad length in Any at %d: %w", i, protowire.ParseError(n))
		}
		i += n

		switch num {
		case 1: // type_url
			if !utf8.Valid(val) {
				return nil, fmt.Errorf("type_url is not valid UTF-8")
			}
			any.TypeUrl = string(val)
			seenURL = true
		case 2: // value
			any.Value = make([]byte, len(val))
			copy(any.Value, val)
		default:
			return nil, fmt.Errorf("unknown field %d in Any", num)
		}
	}
	if !seenURL || len(any.TypeUrl) < 2 || any.TypeUrl[0] != '/' {
		return nil, fmt.Errorf("missing type_url in Any")
	}
	return any, nil
}

// skipProtoField returns how many bytes the field value following a tag of
// the given number and wire type occupies.
func skipProtoField(data []byte, num protowire.Number, typ protowire.Type) (int, error) {
	n := protowire.ConsumeFieldValue(num, typ, data)
	if n < 0 {
		return 0, protowire.ParseError(n)
	}
	return n, nil
}

// extractProtoField returns the first occurrence of field targetNum with wire
// type targetType. Varint and fixed width values are returned as their raw
// encoded bytes.
func extractProtoField(data []byte, targetNum protowire.Number, targetType protowire.Type) ([]byte, error) {
	i := 0
	for i < len(data) {
		num, typ, n := protowire.ConsumeTag(data[i:])
		if n < 0 {
			return nil, fmt.Errorf("bad tag at offset %d: %w", i, protowire.ParseError(n))
		}
		i += n

		if num == targetNum && typ == targetType && typ == protowire.BytesType {
			val, m := protowire.ConsumeBytes(data[i:])
			if m < 0 {
				return nil, fmt.Errorf("bad length at offset %d: %w", i, protowire.ParseError(m))
			}
			return val, nil
		}

		m, err := skipProtoField(data[i:], num, typ)
		if err != nil {
			return nil, fmt.Errorf("field %d at offset %d: %w", num, i, err)
		}
		if num == targetNum && typ == targetType {
			return data[i : i+m], nil
		}
		i += m
	}
	return nil, fmt.Errorf("field %d not found", targetNum)
}
