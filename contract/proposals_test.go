package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddProposalAssignsSequentialIDs(t *testing.T) {
	setupContract(t)

	setEnv(t, "alice.near", "alice.near")
	first := AddProposal(strptr(`{"description":"fund the meetup","kind":"Donate"}`))
	require.NotNil(t, first)
	assert.Equal(t, "0", *first)

	setEnv(t, "bob.near", "bob.near")
	second := AddProposal(strptr(`{"description":"pay the rent","kind":"Transfer"}`))
	require.NotNil(t, second)
	assert.Equal(t, "1", *second)

	assert.Equal(t, Amount(2), viewAmount(t, GetLastProposalID, ""))
}

func TestAddProposalRecordsProposerAndStatus(t *testing.T) {
	setupContract(t)

	setEnv(t, "alice.near", "alice.near")
	AddProposal(strptr(`{"description":"fund the meetup","kind":"Donate"}`))

	prpsl := fetchProposal(t, 0)
	assert.Equal(t, uint64(0), prpsl.ID)
	assert.Equal(t, "alice.near", prpsl.Proposer.String())
	assert.Equal(t, ProposalKindDonate, prpsl.Kind)
	assert.Equal(t, ProposalStatusInProgress, prpsl.Status)
	assert.NotZero(t, prpsl.SubmissionTime)
	assert.Empty(t, prpsl.Donations)
}

func TestAddProposalRejectsUnknownKind(t *testing.T) {
	setupContract(t)

	setEnv(t, "alice.near", "alice.near")
	assert.PanicsWithValue(t, ErrInvalidProposalArgs, func() {
		AddProposal(strptr(`{"description":"weird","kind":"Airdrop"}`))
	})
	assert.PanicsWithValue(t, ErrInvalidProposalArgs, func() {
		AddProposal(strptr(`not json`))
	})
}

func TestGetProposalMissing(t *testing.T) {
	setupContract(t)

	assert.PanicsWithValue(t, ErrNoProposal, func() {
		GetProposal(strptr("3"))
	})
}

// Regression: the donation must be written back to storage, not just applied
// to an in-memory copy of the proposal.
func TestProposalDonationSurvivesReload(t *testing.T) {
	setupContract(t)

	setEnv(t, "alice.near", "alice.near")
	AddProposal(strptr(`{"description":"fund the meetup","kind":"Donate"}`))

	notifyTransfer(tokenAccount, "bob.near", 25, `{"delegate":"","proposal":0,"transfer_type":"ProposalDonate"}`)

	reloaded := fetchProposal(t, 0)
	assert.Equal(t, Amount(25), reloaded.Donations["bob.near"])
	assert.Equal(t, Amount(25), reloaded.TotalDonated)
}
