package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	sdkmath "cosmossdk.io/math"
)

func TestHeightString(t *testing.T) {
	require.Equal(t, "1-42", NewHeight(1, 42).String())
	require.True(t, NewHeight(0, 0).IsZero())
	require.False(t, NewHeight(0, 1).IsZero())
}

func TestTimeoutArms(t *testing.T) {
	never := NeverTimeoutHeight()
	require.True(t, never.IsNever())
	_, ok := never.Height()
	require.False(t, ok)

	at := TimeoutAtHeight(NewHeight(2, 100))
	require.False(t, at.IsNever())
	h, ok := at.Height()
	require.True(t, ok)
	require.Equal(t, "2-100", h.String())

	ts := TimeoutAtTimestamp(sdkmath.NewUint(1700000000000000000))
	require.False(t, ts.IsNever())
	require.Equal(t, "1700000000000000000", ts.String())
	require.True(t, NeverTimeoutTimestamp().IsNever())
}

func TestTimeoutJSON(t *testing.T) {
	bz, err := json.Marshal(NeverTimeoutHeight())
	require.NoError(t, err)
	require.JSONEq(t, `{"kind":"never"}`, string(bz))

	bz, err = json.Marshal(TimeoutAtHeight(NewHeight(1, 7)))
	require.NoError(t, err)
	require.JSONEq(t, `{"kind":"at","height":{"revision_number":"1","revision_height":"7"}}`, string(bz))

	// above 2^53 the value must survive as an exact decimal string
	bz, err = json.Marshal(TimeoutAtTimestamp(sdkmath.NewUint(18446744073709551615)))
	require.NoError(t, err)
	require.JSONEq(t, `{"kind":"at","timestamp":"18446744073709551615"}`, string(bz))
}
