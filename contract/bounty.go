package main

import "connesus_dao/sdk"

// -----------------------------------------------------------------------------
// Bounties
// -----------------------------------------------------------------------------

// createBounty assigns the next sequential bounty id and stores the record.
// The caller has already validated the bounty's payout token account. Ids are
// strictly increasing and never reused.
func createBounty(input *BountyInput) uint64 {
	if len(input.Description) > MaxDescriptionLength {
		sdk.Abort(ErrInvalidBountyArgs)
	}
	id := getCount(BountiesCount)
	bounty := Bounty{
		ID:          id,
		Description: input.Description,
		Token:       input.Token,
		Amount:      input.Amount,
		Times:       input.Times,
		MaxDeadline: input.MaxDeadline,
	}
	saveBounty(&bounty)
	setCount(BountiesCount, id+1)
	return id
}

// -----------------------------------------------------------------------------
// Views
// -----------------------------------------------------------------------------

// GetBounty returns the stored bounty as JSON.
// Payload: "0"
func GetBounty(payload *string) *string {
	id := StringToUInt64(unwrapPayload(payload, ErrNoBounty), ErrNoBounty)
	bounty := loadBounty(id)
	if bounty == nil {
		sdk.Abort(ErrNoBounty)
	}
	return strptr(encodeToState(bounty, "bounty"))
}

// GetLastBountyID returns the next id to be assigned.
func GetLastBountyID(_ *string) *string {
	return strptr(UInt64ToString(getCount(BountiesCount)))
}
