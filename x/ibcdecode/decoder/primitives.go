package decoder

import (
	"encoding/binary"
	"unicode/utf8"

	sdkmath "cosmossdk.io/math"

	"github.com/TrustedSmartChain/tscscan/x/ibcdecode/types"
)

// Envelope primitives. Every reader takes the whole buffer plus an offset and
// returns the value and the number of bytes it consumed. Nothing is read past
// len(bz).
//
//	u8       1 byte
//	u32      4 bytes little endian
//	u64      8 bytes little endian
//	string   u32 length + UTF-8 bytes
//	bytes    u32 length + raw bytes
//	option   u8 tag (0 none, 1 some) + value
//	vec      u32 count + values back to back

type readFn[T any] func(bz []byte, off int) (T, int, error)

func need(bz []byte, off, n int, what string) error {
	if off < 0 || n < 0 || off > len(bz) || len(bz)-off < n {
		return types.ErrTruncatedBuffer.Wrapf("%s: need %d bytes at offset %d, have %d", what, n, off, max(len(bz)-off, 0))
	}
	return nil
}

func readU8(bz []byte, off int) (uint8, int, error) {
	if err := need(bz, off, 1, "u8"); err != nil {
		return 0, 0, err
	}
	return bz[off], 1, nil
}

func readU32(bz []byte, off int) (uint32, int, error) {
	if err := need(bz, off, 4, "u32"); err != nil {
		return 0, 0, err
	}
	return binary.LittleEndian.Uint32(bz[off:]), 4, nil
}

func readU64Raw(bz []byte, off int) (uint64, int, error) {
	if err := need(bz, off, 8, "u64"); err != nil {
		return 0, 0, err
	}
	return binary.LittleEndian.Uint64(bz[off:]), 8, nil
}

func readU64(bz []byte, off int) (sdkmath.Uint, int, error) {
	v, n, err := readU64Raw(bz, off)
	if err != nil {
		return sdkmath.Uint{}, 0, err
	}
	return sdkmath.NewUint(v), n, nil
}

// readBytes returns a copy so decoded messages never alias the caller's buffer.
func readBytes(bz []byte, off int) ([]byte, int, error) {
	l, n, err := readU32(bz, off)
	if err != nil {
		return nil, 0, err
	}
	if err := need(bz, off+n, int(l), "bytes"); err != nil {
		return nil, 0, err
	}
	out := make([]byte, l)
	copy(out, bz[off+n:])
	return out, n + int(l), nil
}

func readString(bz []byte, off int) (string, int, error) {
	l, n, err := readU32(bz, off)
	if err != nil {
		return "", 0, err
	}
	if err := need(bz, off+n, int(l), "string"); err != nil {
		return "", 0, err
	}
	raw := bz[off+n : off+n+int(l)]
	if !utf8.Valid(raw) {
		return "", 0, types.ErrInvalidUTF8.Wrapf("string at offset %d", off)
	}
	return string(raw), n + int(l), nil
}

// readTag reads a one byte enum tag and rejects values above hi.
func readTag(bz []byte, off int, hi uint8, what string) (uint8, int, error) {
	tag, n, err := readU8(bz, off)
	if err != nil {
		return 0, 0, err
	}
	if tag > hi {
		return 0, 0, types.ErrMalformedEnvelope.Wrapf("%s: invalid tag %d at offset %d", what, tag, off)
	}
	return tag, n, nil
}

func readOption[T any](bz []byte, off int, read readFn[T]) (*T, int, error) {
	tag, n, err := readTag(bz, off, 1, "option")
	if err != nil {
		return nil, 0, err
	}
	if tag == 0 {
		return nil, n, nil
	}
	v, m, err := read(bz, off+n)
	if err != nil {
		return nil, 0, err
	}
	return &v, n + m, nil
}

func readVec[T any](bz []byte, off int, read readFn[T]) ([]T, int, error) {
	count, n, err := readU32(bz, off)
	if err != nil {
		return nil, 0, err
	}
	// every element takes at least one byte, so the remaining length bounds
	// the allocation
	if int64(count) > int64(len(bz)-off-n) {
		return nil, 0, types.ErrTruncatedBuffer.Wrapf("vec: %d elements at offset %d exceed remaining %d bytes", count, off, len(bz)-off-n)
	}
	out := make([]T, 0, count)
	pos := off + n
	for i := uint32(0); i < count; i++ {
		v, m, err := read(bz, pos)
		if err != nil {
			return nil, 0, err
		}
		out = append(out, v)
		pos += m
	}
	return out, pos - off, nil
}
