package api

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/TrustedSmartChain/tscscan/x/ibcdecode/keeper"
)

// MaxBlockResultsSize bounds the block_results body accepted by the tx-events
// route.
const MaxBlockResultsSize = 32 << 20

type handler struct {
	k keeper.Keeper
}

// RegisterRoutes mounts the decoding routes on r.
func RegisterRoutes(r *mux.Router, k keeper.Keeper) {
	h := handler{k: k}

	r.HandleFunc("/ibc/decode/{hex}", h.decode).Methods(http.MethodGet)
	r.HandleFunc("/ibc/attribute/{hex}", h.attribute).Methods(http.MethodGet)
	r.HandleFunc("/ibc/tx-events/{hash}", h.txEvent).Methods(http.MethodPost)
}

// decode always answers 200; an undecodable payload is reported in the body.
func (h handler) decode(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.k.DecodeTxData(mux.Vars(r)["hex"]))
}

func (h handler) attribute(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.k.DecodeAttribute(mux.Vars(r)["hex"]))
}

func (h handler) txEvent(w http.ResponseWriter, r *http.Request) {
	hash := mux.Vars(r)["hash"]

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, MaxBlockResultsSize))
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	ev, err := h.k.DecodeTxEvent(hash, body)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	if ev == nil {
		writeJSON(w, http.StatusNotFound, errorResponse{Error: "no IBC event for transaction " + hash})
		return
	}
	writeJSON(w, http.StatusOK, ev)
}

type errorResponse struct {
	Error string `json:"error"`
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, errorResponse{Error: err.Error()})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
