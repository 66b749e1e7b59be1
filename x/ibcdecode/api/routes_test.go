package api_test

import (
	"encoding/binary"
	"encoding/hex"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/require"

	"cosmossdk.io/log"

	"github.com/TrustedSmartChain/tscscan/x/ibcdecode/api"
	"github.com/TrustedSmartChain/tscscan/x/ibcdecode/keeper"
	"github.com/TrustedSmartChain/tscscan/x/ibcdecode/types"
)

func newRouter() *mux.Router {
	r := mux.NewRouter()
	api.RegisterRoutes(r, keeper.NewKeeper(log.NewNopLogger(), types.DefaultMaxAnyDepth))
	return r
}

func serve(t *testing.T, method, target, body string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	rec := httptest.NewRecorder()
	newRouter().ServeHTTP(rec, httptest.NewRequest(method, target, strings.NewReader(body)))

	var out map[string]any
	if rec.Code != http.StatusMethodNotAllowed {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), rec.Body.String())
		require.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	}
	return rec, out
}

func confirmHex() string {
	bz := []byte{byte(types.CategoryConnection), types.VariantConnectionOpenConfirm}
	appendStr := func(s string) {
		bz = binary.LittleEndian.AppendUint32(bz, uint32(len(s)))
		bz = append(bz, s...)
	}
	appendStr("connection-4")
	bz = binary.LittleEndian.AppendUint32(bz, 2)
	bz = append(bz, 0xde, 0xad)
	bz = binary.LittleEndian.AppendUint64(bz, 1)
	bz = binary.LittleEndian.AppendUint64(bz, 77)
	appendStr("tsc1relayer")
	return hex.EncodeToString(bz)
}

func TestDecodeRoute(t *testing.T) {
	rec, out := serve(t, http.MethodGet, "/ibc/decode/"+confirmHex(), "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, true, out["decoded"])
	require.Equal(t, types.KindConnectionOpenConfirm, out["kind"])
	require.Equal(t, "Confirm connection connection-4", out["description"])

	rec, out = serve(t, http.MethodGet, "/ibc/decode/0xzz", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, false, out["decoded"])
	require.Equal(t, "0xzz", out["raw"])
}

func TestAttributeRoute(t *testing.T) {
	rec, out := serve(t, http.MethodGet, "/ibc/attribute/00", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, false, out["decoded"])
	require.NotEmpty(t, out["error"])
}

func TestTxEventRoute(t *testing.T) {
	body := `{"jsonrpc":"2.0","id":-1,"result":{"height":"9","end_block_events":[
		{"type":"acknowledge_packet","attributes":[
			{"key":"packet_sequence","value":"4"},
			{"key":"inner-tx-hash","value":"C0FFEE"}]}]}}`

	rec, out := serve(t, http.MethodPost, "/ibc/tx-events/0xc0ffee", body)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "acknowledge_packet", out["type"])

	rec, out = serve(t, http.MethodPost, "/ibc/tx-events/beef", body)
	require.Equal(t, http.StatusNotFound, rec.Code)
	require.Contains(t, out["error"], "beef")

	rec, _ = serve(t, http.MethodPost, "/ibc/tx-events/beef", "<html>")
	require.Equal(t, http.StatusBadRequest, rec.Code)

	rec, _ = serve(t, http.MethodGet, "/ibc/tx-events/beef", "")
	require.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}
