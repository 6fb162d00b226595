package main

import "connesus_dao/sdk"

// -----------------------------------------------------------------------------
// Proposals
// -----------------------------------------------------------------------------

// donate records a donation against this proposal. Amounts accumulate per
// donor and in the running total, they never overwrite.
func (p *Proposal) donate(donor sdk.Address, amount Amount) {
	if p.Donations == nil {
		p.Donations = map[string]Amount{}
	}
	p.Donations[donor.String()] += amount
	p.TotalDonated += amount
}

// proposalDonate validates the target proposal and applies the donation. The
// mutated proposal is written back so the update survives the call.
func proposalDonate(id uint64, donor sdk.Address, amount Amount) {
	prpsl := loadProposal(id)
	if prpsl == nil {
		sdk.Abort(ErrNoProposal)
	}
	if prpsl.Kind != ProposalKindDonate {
		sdk.Abort(ErrNotDonationKind)
	}
	prpsl.donate(donor, amount)
	saveProposal(prpsl)
}

// -----------------------------------------------------------------------------
// Creation
// -----------------------------------------------------------------------------

// AddProposal stores a new proposal under the next sequential id and returns
// the id. Any account may propose; only Donate-kind proposals can later
// receive donations through the transfer path.
// Payload: {"description":"fund the meetup","kind":"Donate"}
func AddProposal(payload *string) *string {
	requireInitialized()

	raw := unwrapPayload(payload, ErrInvalidProposalArgs)
	var args AddProposalArgs
	if err := unmarshalBytes([]byte(raw), &args); err != nil {
		sdk.Abort(ErrInvalidProposalArgs)
	}
	if len(args.Description) > MaxDescriptionLength {
		sdk.Abort(ErrInvalidProposalArgs)
	}
	switch args.Kind {
	case ProposalKindDonate, ProposalKindTransfer, ProposalKindVote:
	default:
		sdk.Abort(ErrInvalidProposalArgs)
	}

	id := getCount(ProposalsCount)
	prpsl := Proposal{
		ID:             id,
		Proposer:       getSenderAddress(),
		Description:    args.Description,
		Kind:           args.Kind,
		Status:         ProposalStatusInProgress,
		SubmissionTime: nowUnix(),
		Donations:      map[string]Amount{},
	}
	saveProposal(&prpsl)
	setCount(ProposalsCount, id+1)

	emitProposalCreatedEvent(id, prpsl.Proposer.String())

	return strptr(UInt64ToString(id))
}

// -----------------------------------------------------------------------------
// Views
// -----------------------------------------------------------------------------

// GetProposal returns the stored proposal as JSON.
// Payload: "0"
func GetProposal(payload *string) *string {
	id := StringToUInt64(unwrapPayload(payload, ErrNoProposal), ErrNoProposal)
	prpsl := loadProposal(id)
	if prpsl == nil {
		sdk.Abort(ErrNoProposal)
	}
	return strptr(encodeToState(prpsl, "proposal"))
}

// GetLastProposalID returns the next id to be assigned.
func GetLastProposalID(_ *string) *string {
	return strptr(UInt64ToString(getCount(ProposalsCount)))
}
