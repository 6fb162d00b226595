package main

import (
	"strconv"

	"connesus_dao/sdk"
)

// Amount is a token amount in the smallest denomination. It travels over the
// wire as a decimal string so large balances survive JSON number limits.
type Amount uint64

// AmountToString renders the raw amount for events and view payloads.
// Example payload: AmountToString(100)
func AmountToString(v Amount) string {
	return strconv.FormatUint(uint64(v), 10)
}

// TransferPurpose tags what an incoming token transfer wants to achieve.
type TransferPurpose string

const (
	PurposeDelegate       TransferPurpose = "Delegate"
	PurposeOpenDonate     TransferPurpose = "OpenDonate"
	PurposeProposalDonate TransferPurpose = "ProposalDonate"
	PurposeCreateBounty   TransferPurpose = "CreateBounty"
)

// ProposalKind distinguishes what a proposal pays out or decides. Only Donate
// proposals accept donations through the transfer path.
type ProposalKind string

const (
	ProposalKindDonate   ProposalKind = "Donate"
	ProposalKindTransfer ProposalKind = "Transfer"
	ProposalKindVote     ProposalKind = "Vote"
)

// ProposalStatus captures a proposal's lifecycle.
type ProposalStatus string

const (
	ProposalStatusInProgress ProposalStatus = "InProgress"
	ProposalStatusApproved   ProposalStatus = "Approved"
	ProposalStatusRejected   ProposalStatus = "Rejected"
)

// DaoMetadata is the opaque descriptive blob supplied at init time.
type DaoMetadata struct {
	Name    string
	Purpose string
	Misc    string
}

// ContractConfig is the persisted root config: metadata, owner and the single
// recognized fungible-token contract account.
type ContractConfig struct {
	Metadata     DaoMetadata
	Owner        sdk.Address
	TokenAccount sdk.Address
}

// InitArgs is the constructor payload.
type InitArgs struct {
	Metadata       DaoMetadata
	TokenAccountID sdk.Address
}

// FtOnTransferArgs is the outer payload of the transfer notification: the
// original token sender, the transferred amount and the opaque instruction msg.
type FtOnTransferArgs struct {
	SenderID sdk.Address
	Amount   Amount
	Msg      string
}

// TransferArgs is the command decoded from the notification msg. Delegate,
// Proposal and BountyInput are each only meaningful for their matching purpose.
type TransferArgs struct {
	Delegate     sdk.Address
	Proposal     *uint64
	TransferType TransferPurpose
	BountyInput  *BountyInput
}

// BountyInput is the bounty specification carried inside a CreateBounty transfer.
type BountyInput struct {
	Description string
	Token       sdk.Address
	Amount      Amount
	Times       uint32
	MaxDeadline uint64
}

// Bounty is the stored record; ids increase strictly and are never reused.
type Bounty struct {
	ID          uint64
	Description string
	Token       sdk.Address
	Amount      Amount
	Times       uint32
	MaxDeadline uint64
}

// Proposal is stored at prop:<id>. Donations accumulate per donor and in the
// running total; they are never overwritten.
type Proposal struct {
	ID             uint64
	Proposer       sdk.Address
	Description    string
	Kind           ProposalKind
	Status         ProposalStatus
	SubmissionTime int64
	Donations      map[string]Amount
	TotalDonated   Amount
}

// AddProposalArgs is the add_proposal payload.
type AddProposalArgs struct {
	Description string
	Kind        ProposalKind
}

// AddressFromString converts a human string to the platform address wrapper.
// Example payload: AddressFromString("alice.near")
func AddressFromString(s string) sdk.Address { return sdk.Address(s) }

// AddressToString turns the wrapped type back into the underlying string.
// Example payload: AddressToString(AddressFromString("alice.near"))
func AddressToString(a sdk.Address) string { return a.String() }
