package registry

import (
	"github.com/TrustedSmartChain/tscscan/x/ibcdecode/types"
)

// Match is the result of a fallback search.
type Match struct {
	TypeURL string
	Message types.NestedMessage
	// Wrapped is set when the bytes were a protobuf Any around Message.
	Wrapped bool
}

// Search decodes protobuf bytes that carry no envelope and no type URL. It
// tries every entry in priority order and returns the first result that both
// parses and passes the entry's plausibility check. When no entry fits, the
// bytes are read as an Any wrapper and its type URL is looked up once. No
// best fit guessing: the order of Entries is the tie break.
func (r *Registry) Search(bz []byte) (*Match, error) {
	if len(bz) == 0 {
		return nil, types.ErrNoMatch.Wrap("empty input")
	}

	for _, e := range r.entries {
		msg, err := e.run(r, bz, 0)
		if err != nil {
			continue
		}
		if !e.Valid(msg) {
			continue
		}
		return &Match{TypeURL: e.TypeURL, Message: msg}, nil
	}

	any, err := unmarshalAny(bz)
	if err != nil {
		return nil, types.ErrNoMatch.Wrapf("%d candidates rejected, not an Any: %s", len(r.entries), err)
	}
	msg, err := r.TryDecodeAny(any.TypeUrl, any.Value, 0)
	if err != nil {
		return nil, types.ErrNoMatch.Wrapf("%d candidates rejected, Any: %s", len(r.entries), err)
	}
	return &Match{TypeURL: any.TypeUrl, Message: msg, Wrapped: true}, nil
}
