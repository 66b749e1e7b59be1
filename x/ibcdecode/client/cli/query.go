package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/cosmos/cosmos-sdk/client"
	"github.com/spf13/cobra"

	"github.com/TrustedSmartChain/tscscan/x/ibcdecode/keeper"
	"github.com/TrustedSmartChain/tscscan/x/ibcdecode/types"
)

// KeeperFn returns the keeper configured for the running command. It is
// called after the root command has loaded its configuration.
type KeeperFn func() keeper.Keeper

// NewQueryCmd returns the root command for the IBC decoding subcommands.
func NewQueryCmd(keeperFn KeeperFn) *cobra.Command {
	queryCmd := &cobra.Command{
		Use:                        "ibc",
		Short:                      "Decode IBC transaction data and events",
		DisableFlagParsing:         true,
		SuggestionsMinimumDistance: 2,
		RunE:                       client.ValidateCmd,
	}

	queryCmd.AddCommand(
		CmdDecode(keeperFn),
		CmdDecodeAttribute(keeperFn),
		CmdTxEvent(keeperFn),
		CmdTypes(keeperFn),
	)
	return queryCmd
}

func CmdDecode(keeperFn KeeperFn) *cobra.Command {
	return &cobra.Command{
		Use:     "decode [hex]",
		Short:   "Decode enveloped IBC transaction data",
		Example: "tscscan ibc decode 0x0204080000007472616e73666572...",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return printJSON(cmd, keeperFn().DecodeTxData(args[0]))
		},
	}
}

func CmdDecodeAttribute(keeperFn KeeperFn) *cobra.Command {
	return &cobra.Command{
		Use:   "decode-attribute [hex]",
		Short: "Decode a hex protobuf payload taken from an event attribute",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return printJSON(cmd, keeperFn().DecodeAttribute(args[0]))
		},
	}
}

func CmdTxEvent(keeperFn KeeperFn) *cobra.Command {
	return &cobra.Command{
		Use:   "tx-event [tx-hash] [block-results-file]",
		Short: "Find and decode the IBC event of a transaction in a block_results response",
		Long: `Find the IBC event tagged with the transaction hash in a block_results response and decode its hex attributes.
Pass '-' as the file to read the response from stdin, e.g. 'curl -s $RPC/block_results?height=12 | tscscan ibc tx-event 0xABCD -'.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			body, err := readInput(cmd, args[1])
			if err != nil {
				return err
			}

			ev, err := keeperFn().DecodeTxEvent(args[0], body)
			if err != nil {
				return err
			}
			if ev == nil {
				return fmt.Errorf("no IBC event for transaction %s", args[0])
			}
			return printJSON(cmd, ev)
		},
	}
}

func CmdTypes(keeperFn KeeperFn) *cobra.Command {
	return &cobra.Command{
		Use:   "types",
		Short: "List the Any type URLs the decoder understands, in fallback order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			for _, e := range keeperFn().Registry().Entries() {
				fmt.Fprintf(cmd.OutOrStdout(), "%-28s %s\n", e.Tag, e.TypeURL)
			}
			return nil
		},
	}
}

func readInput(cmd *cobra.Command, name string) ([]byte, error) {
	if name == "-" {
		return io.ReadAll(cmd.InOrStdin())
	}
	bz, err := os.ReadFile(name)
	if err != nil {
		return nil, fmt.Errorf("read block results: %w", err)
	}
	return bz, nil
}

func printJSON(cmd *cobra.Command, v any) error {
	bz, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("%s: encode output: %w", types.ModuleName, err)
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), string(bz))
	return err
}
