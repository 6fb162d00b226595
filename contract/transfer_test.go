package main

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"connesus_dao/sdk"
)

func TestDelegateTransfer(t *testing.T) {
	setupContract(t)

	ret := notifyTransfer(tokenAccount, "alice.near", 100, `{"delegate":"alice.near","transfer_type":"Delegate"}`)
	assert.Equal(t, "0", *ret)

	assert.Equal(t, Amount(100), viewAmount(t, GetDelegation, "alice.near"))
	assert.Equal(t, Amount(100), viewAmount(t, GetLockedAmount, ""))
	assert.Equal(t, Amount(100), viewAmount(t, GetTotalDelegation, ""))

	// no other map changed
	assert.Equal(t, Amount(0), viewAmount(t, GetDonation, "alice.near"))

	logs := sdk.MockLogs()
	assert.Equal(t, "dl|to:alice.near|by:alice.near|am:100", logs[len(logs)-1])
}

func TestDelegateAccumulates(t *testing.T) {
	setupContract(t)

	notifyTransfer(tokenAccount, "alice.near", 100, `{"delegate":"carol.near","transfer_type":"Delegate"}`)
	notifyTransfer(tokenAccount, "bob.near", 50, `{"delegate":"carol.near","transfer_type":"Delegate"}`)

	assert.Equal(t, Amount(150), viewAmount(t, GetDelegation, "carol.near"))
	assert.Equal(t, Amount(150), viewAmount(t, GetLockedAmount, ""))
	assert.Equal(t, Amount(150), viewAmount(t, GetTotalDelegation, ""))
}

func TestDelegateRejectsForeignTokenContract(t *testing.T) {
	setupContract(t)

	assert.PanicsWithValue(t, ErrInvalidTokenAccount, func() {
		notifyTransfer("evil.near", "alice.near", 100, `{"delegate":"alice.near","transfer_type":"Delegate"}`)
	})

	// rejected before any mutation
	assert.Equal(t, Amount(0), viewAmount(t, GetDelegation, "alice.near"))
	assert.Equal(t, Amount(0), viewAmount(t, GetLockedAmount, ""))
}

func TestOpenDonate(t *testing.T) {
	setupContract(t)

	ret := notifyTransfer(tokenAccount, "alice.near", 30, `{"delegate":"","transfer_type":"OpenDonate"}`)
	assert.Equal(t, "0", *ret)
	notifyTransfer(tokenAccount, "alice.near", 12, `{"delegate":"","transfer_type":"OpenDonate"}`)
	notifyTransfer(tokenAccount, "bob.near", 5, `{"delegate":"","transfer_type":"OpenDonate"}`)

	assert.Equal(t, Amount(42), viewAmount(t, GetDonation, "alice.near"))
	assert.Equal(t, Amount(5), viewAmount(t, GetDonation, "bob.near"))
}

func TestOpenDonateRejectsForeignTokenContract(t *testing.T) {
	setupContract(t)

	assert.PanicsWithValue(t, ErrInvalidTokenAccount, func() {
		notifyTransfer("evil.near", "alice.near", 30, `{"delegate":"","transfer_type":"OpenDonate"}`)
	})
	assert.Equal(t, Amount(0), viewAmount(t, GetDonation, "alice.near"))
}

func TestMalformedMsgRejected(t *testing.T) {
	setupContract(t)

	assert.PanicsWithValue(t, ErrInvalidTransferArgs, func() {
		notifyTransfer(tokenAccount, "alice.near", 100, `not json at all`)
	})
	assert.PanicsWithValue(t, ErrInvalidTransferArgs, func() {
		notifyTransfer(tokenAccount, "alice.near", 100, `{"delegate":"alice.near","transfer_type":"Stake"}`)
	})
}

func TestMalformedOuterPayloadRejected(t *testing.T) {
	setupContract(t)

	setEnv(t, "alice.near", tokenAccount)
	payload := `{"sender_id":"alice.near","amount":`
	assert.PanicsWithValue(t, ErrInvalidTransferArgs, func() {
		FtOnTransfer(&payload)
	})
	assert.PanicsWithValue(t, ErrInvalidTransferArgs, func() {
		FtOnTransfer(nil)
	})
}

func TestZeroAmountAcceptedAsNoop(t *testing.T) {
	setupContract(t)

	ret := notifyTransfer(tokenAccount, "alice.near", 0, `{"delegate":"","transfer_type":"OpenDonate"}`)
	assert.Equal(t, "0", *ret)
	assert.Equal(t, Amount(0), viewAmount(t, GetDonation, "alice.near"))

	ret = notifyTransfer(tokenAccount, "alice.near", 0, `{"delegate":"alice.near","transfer_type":"Delegate"}`)
	assert.Equal(t, "0", *ret)
	assert.Equal(t, Amount(0), viewAmount(t, GetDelegation, "alice.near"))
	assert.Equal(t, Amount(0), viewAmount(t, GetLockedAmount, ""))
}

func TestDelegateRejectsInvalidDelegateAccount(t *testing.T) {
	setupContract(t)

	assert.PanicsWithValue(t, ErrInvalidAccount, func() {
		notifyTransfer(tokenAccount, "alice.near", 100, `{"delegate":"!!","transfer_type":"Delegate"}`)
	})
	assert.Equal(t, Amount(0), viewAmount(t, GetTotalDelegation, ""))
}

func TestTransferBeforeInitRejected(t *testing.T) {
	sdk.MockReset()

	assert.PanicsWithValue(t, ErrNotInitialized, func() {
		notifyTransfer(tokenAccount, "alice.near", 100, `{"delegate":"alice.near","transfer_type":"Delegate"}`)
	})
}

func TestProposalDonateMissingID(t *testing.T) {
	setupContract(t)

	assert.PanicsWithValue(t, ErrProposalIDMissing, func() {
		notifyTransfer(tokenAccount, "alice.near", 100, `{"delegate":"","transfer_type":"ProposalDonate"}`)
	})
}

func TestProposalDonateUnknownProposal(t *testing.T) {
	setupContract(t)

	assert.PanicsWithValue(t, ErrNoProposal, func() {
		notifyTransfer(tokenAccount, "alice.near", 100, `{"delegate":"","proposal":7,"transfer_type":"ProposalDonate"}`)
	})
}

func TestProposalDonateWrongKind(t *testing.T) {
	setupContract(t)

	setEnv(t, ownerAccount, ownerAccount)
	AddProposal(strptr(`{"description":"board election","kind":"Vote"}`))

	assert.PanicsWithValue(t, ErrNotDonationKind, func() {
		notifyTransfer(tokenAccount, "alice.near", 100, `{"delegate":"","proposal":0,"transfer_type":"ProposalDonate"}`)
	})

	prpsl := fetchProposal(t, 0)
	assert.Equal(t, Amount(0), prpsl.TotalDonated)
}

func TestProposalDonateAccumulates(t *testing.T) {
	setupContract(t)

	setEnv(t, ownerAccount, ownerAccount)
	AddProposal(strptr(`{"description":"fund the meetup","kind":"Donate"}`))

	notifyTransfer(tokenAccount, "alice.near", 40, `{"delegate":"","proposal":0,"transfer_type":"ProposalDonate"}`)
	notifyTransfer(tokenAccount, "alice.near", 60, `{"delegate":"","proposal":0,"transfer_type":"ProposalDonate"}`)
	notifyTransfer(tokenAccount, "bob.near", 7, `{"delegate":"","proposal":0,"transfer_type":"ProposalDonate"}`)

	prpsl := fetchProposal(t, 0)
	assert.Equal(t, Amount(100), prpsl.Donations["alice.near"])
	assert.Equal(t, Amount(7), prpsl.Donations["bob.near"])
	assert.Equal(t, Amount(107), prpsl.TotalDonated)

	// proposal donations live on the proposal, not in the open-donation ledger
	assert.Equal(t, Amount(0), viewAmount(t, GetDonation, "alice.near"))
}

func TestProposalDonateRejectsForeignTokenContract(t *testing.T) {
	setupContract(t)

	setEnv(t, ownerAccount, ownerAccount)
	AddProposal(strptr(`{"description":"fund the meetup","kind":"Donate"}`))

	assert.PanicsWithValue(t, ErrInvalidTokenAccount, func() {
		notifyTransfer("evil.near", "alice.near", 40, `{"delegate":"","proposal":0,"transfer_type":"ProposalDonate"}`)
	})
	prpsl := fetchProposal(t, 0)
	assert.Equal(t, Amount(0), prpsl.TotalDonated)
}
