package types

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDecodeHex(t *testing.T) {
	for _, in := range []string{"0x0300ff", "0300FF", "0X0300ff", " 0300ff\n"} {
		bz, err := DecodeHex(in)
		require.NoError(t, err, in)
		require.Equal(t, []byte{0x03, 0x00, 0xff}, bz)
	}

	bz, err := DecodeHex("")
	require.NoError(t, err)
	require.Empty(t, bz)

	for _, in := range []string{"030", "0x0g", "zz"} {
		_, err := DecodeHex(in)
		require.True(t, errors.Is(err, ErrInvalidHex), in)
	}
}

func TestEncodeHex(t *testing.T) {
	require.Equal(t, "0x0300ff", EncodeHex([]byte{0x03, 0x00, 0xff}))
}
