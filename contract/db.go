package main

import (
	"strconv"

	"connesus_dao/sdk"
)

////////////////////////////////////////////////////////////////////////////////
// Contract State Persistence helpers
////////////////////////////////////////////////////////////////////////////////

// encodeToState serializes a record for storage, aborting on codec failure.
func encodeToState(v tinyMarshaler, objectType string) string {
	b, err := marshalBytes(v)
	if err != nil {
		sdk.Abort("failed to marshal " + objectType)
	}
	return string(b)
}

// decodeFromState aborts when a stored blob does not parse; stored state is
// only ever written by this contract so junk here means a schema bug.
func decodeFromState(data string, v tinyUnmarshaler, objectType string) {
	if err := unmarshalBytes([]byte(data), v); err != nil {
		sdk.Abort("failed to unmarshal " + objectType)
	}
}

// -----------------------------------------------------------------------------
// Counters
// -----------------------------------------------------------------------------

// getCount reads the string counter under the key and defaults to zero.
func getCount(key string) uint64 {
	ptr := sdk.StateGetObject(key)
	if ptr == nil || *ptr == "" {
		return 0
	}
	n, _ := strconv.ParseUint(*ptr, 10, 64)
	return n
}

// setCount stores uint64 counters back as decimal strings for the host kv.
func setCount(key string, n uint64) {
	sdk.StateSetObject(key, strconv.FormatUint(n, 10))
}

// -----------------------------------------------------------------------------
// Balance entries (delegations, donations, running totals)
// -----------------------------------------------------------------------------

// getBalance reads an accumulated amount, defaulting missing entries to zero
// so records spring into existence on first relevant transfer.
func getBalance(key string) Amount {
	ptr := sdk.StateGetObject(key)
	if ptr == nil || *ptr == "" {
		return 0
	}
	n, _ := strconv.ParseUint(*ptr, 10, 64)
	return Amount(n)
}

// addBalance accumulates onto an entry; entries only ever increase here.
func addBalance(key string, delta Amount) Amount {
	total := getBalance(key) + delta
	sdk.StateSetObject(key, AmountToString(total))
	return total
}

// -----------------------------------------------------------------------------
// Proposals
// -----------------------------------------------------------------------------

func saveProposal(prpsl *Proposal) {
	sdk.StateSetObject(proposalKey(prpsl.ID), encodeToState(prpsl, "proposal"))
}

// loadProposal returns nil when the id was never assigned.
func loadProposal(id uint64) *Proposal {
	ptr := sdk.StateGetObject(proposalKey(id))
	if ptr == nil || *ptr == "" {
		return nil
	}
	var prpsl Proposal
	decodeFromState(*ptr, &prpsl, "proposal")
	return &prpsl
}

// -----------------------------------------------------------------------------
// Bounties
// -----------------------------------------------------------------------------

func saveBounty(bounty *Bounty) {
	sdk.StateSetObject(bountyKey(bounty.ID), encodeToState(bounty, "bounty"))
}

func loadBounty(id uint64) *Bounty {
	ptr := sdk.StateGetObject(bountyKey(id))
	if ptr == nil || *ptr == "" {
		return nil
	}
	var bounty Bounty
	decodeFromState(*ptr, &bounty, "bounty")
	return &bounty
}
