package keeper

import (
	"cosmossdk.io/log"

	"github.com/TrustedSmartChain/tscscan/x/ibcdecode/decoder"
	"github.com/TrustedSmartChain/tscscan/x/ibcdecode/events"
	"github.com/TrustedSmartChain/tscscan/x/ibcdecode/registry"
	"github.com/TrustedSmartChain/tscscan/x/ibcdecode/types"
)

// Keeper owns the read-only decoding tables and exposes the entry points used
// by the CLI and the HTTP API. It holds no mutable state and is safe for
// concurrent use.
type Keeper struct {
	logger log.Logger

	registry *registry.Registry
	decoder  *decoder.Decoder
	events   *events.Decoder
}

// NewKeeper creates a new Keeper instance
func NewKeeper(logger log.Logger, maxAnyDepth int) Keeper {
	logger = logger.With(log.ModuleKey, "x/"+types.ModuleName)

	reg := registry.New(maxAnyDepth)

	k := Keeper{
		logger: logger,

		registry: reg,
		decoder:  decoder.NewDecoder(reg),
		events:   events.NewDecoder(reg),
	}

	logger.Debug("decoder ready", "any_types", len(reg.Entries()), "max_any_depth", reg.MaxDepth())
	return k
}

func (k Keeper) Logger() log.Logger {
	return k.logger
}

// Registry returns the nested-Any table backing the keeper.
func (k Keeper) Registry() *registry.Registry {
	return k.registry
}
