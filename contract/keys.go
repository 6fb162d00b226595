package main

import "connesus_dao/sdk"

// Storage key builders. Each of the four maps gets its own prefix so records
// never collide in the host kv store.

// ContractConfigKey stores the serialized ContractConfig.
const ContractConfigKey = "cfg"

// delegationKey holds the accumulated balance delegated to one account.
func delegationKey(account sdk.Address) string {
	return "dlg:" + account.String()
}

// donationKey holds one account's open (proposal-independent) donation total.
func donationKey(account sdk.Address) string {
	return "don:" + account.String()
}

// proposalKey builds a storage key string for a proposal by ID.
func proposalKey(id uint64) string {
	return "prop:" + UInt64ToString(id)
}

// bountyKey builds a storage key string for a bounty by ID.
func bountyKey(id uint64) string {
	return "bounty:" + UInt64ToString(id)
}
