package main

import "connesus_dao/sdk"

// -----------------------------------------------------------------------------
// Open donations (not tied to any proposal)
// -----------------------------------------------------------------------------

// openDonate accumulates a proposal-independent donation under the sender.
func openDonate(sender sdk.Address, amount Amount) {
	addBalance(donationKey(sender), amount)
}

// GetDonation returns the accumulated open-donation total for one account.
// Payload: "alice.near"
func GetDonation(payload *string) *string {
	account := AddressFromString(unwrapPayload(payload, ErrInvalidAccount))
	return strptr(AmountToString(getBalance(donationKey(account))))
}
