package main

import (
	"connesus_dao/sdk"

	"github.com/CosmWasm/tinyjson/jwriter"
)

// Companion interface to the fungible-token collaborator. This contract only
// reacts to incoming transfers; the outbound call is declared for the payout
// paths that build on this core but is not exercised by the dispatch surface.

// ftTransfer schedules a token transfer out of this contract.
func ftTransfer(receiver sdk.Address, amount Amount) *string {
	cfg := requireContractConfig()
	w := jwriter.Writer{}
	w.RawString(`{"receiver_id":`)
	w.String(receiver.String())
	w.RawString(`,"amount":`)
	w.Uint64Str(uint64(amount))
	w.RawByte('}')
	payload, err := w.Buffer.BuildBytes(), w.Error
	if err != nil {
		sdk.Abort("failed to marshal ft_transfer args")
	}
	return sdk.ContractCall(cfg.TokenAccount.String(), "ft_transfer", string(payload))
}
