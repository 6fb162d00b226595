package main

import (
	"fmt"

	"connesus_dao/sdk"
)

// Terse pipe-delimited event lines so indexers can follow mutations without
// scanning full storage diffs.

// emitInitEvent marks the one-time contract setup with owner and token account.
func emitInitEvent(owner string, tokenAccount string) {
	sdk.Log(fmt.Sprintf(
		"ci|owner:%s|token:%s",
		owner,
		tokenAccount,
	))
}

// emitDelegateEvent records an accepted delegation transfer.
func emitDelegateEvent(delegate string, sender string, amount Amount) {
	sdk.Log(fmt.Sprintf(
		"dl|to:%s|by:%s|am:%s",
		delegate,
		sender,
		AmountToString(amount),
	))
}

// emitOpenDonateEvent records a donation not tied to any proposal.
func emitOpenDonateEvent(sender string, amount Amount) {
	sdk.Log(fmt.Sprintf(
		"od|by:%s|am:%s",
		sender,
		AmountToString(amount),
	))
}

// emitProposalDonateEvent records a donation against a Donate-kind proposal.
func emitProposalDonateEvent(proposalId uint64, sender string, amount Amount) {
	sdk.Log(fmt.Sprintf(
		"pd|id:%d|by:%s|am:%s",
		proposalId,
		sender,
		AmountToString(amount),
	))
}

// emitProposalCreatedEvent keeps observers updated with a short pc line for every new proposal.
func emitProposalCreatedEvent(proposalId uint64, proposer string) {
	sdk.Log(fmt.Sprintf(
		"pc|id:%d|by:%s",
		proposalId,
		proposer,
	))
}

// emitBountyCreatedEvent notes a freshly stored bounty and its payout token.
func emitBountyCreatedEvent(bountyId uint64, token string, amount Amount) {
	sdk.Log(fmt.Sprintf(
		"bc|id:%d|token:%s|am:%s",
		bountyId,
		token,
		AmountToString(amount),
	))
}
