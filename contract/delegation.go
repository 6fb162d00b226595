package main

import "connesus_dao/sdk"

// -----------------------------------------------------------------------------
// Delegation bookkeeping
// -----------------------------------------------------------------------------

// internalDelegate accumulates an accepted delegation onto the delegate's
// entry and the delegation total. Entries only increase through this path;
// the sum of all entries never exceeds the tracked total.
func internalDelegate(delegate sdk.Address, amount Amount) {
	if !delegate.IsValid() {
		sdk.Abort(ErrInvalidAccount)
	}
	addBalance(delegationKey(delegate), amount)
	addBalance(TotalDelegationKey, amount)
}

// -----------------------------------------------------------------------------
// Views
// -----------------------------------------------------------------------------

// GetDelegation returns the accumulated balance delegated to one account.
// Payload: "alice.near"
func GetDelegation(payload *string) *string {
	account := AddressFromString(unwrapPayload(payload, ErrInvalidAccount))
	return strptr(AmountToString(getBalance(delegationKey(account))))
}

// GetTotalDelegation returns the delegated token total across all accounts.
func GetTotalDelegation(_ *string) *string {
	return strptr(AmountToString(getBalance(TotalDelegationKey)))
}

// GetLockedAmount returns the running total of funds locked via delegation.
func GetLockedAmount(_ *string) *string {
	return strptr(AmountToString(getBalance(LockedAmountKey)))
}
