//go:build wasm

package main

// Host export surface. The wrappers keep the //go:wasmexport directives out of
// the logic files so the same package compiles host-side for tests.

//go:wasmexport contract_init
func contractInit(payload *string) *string { return ContractInit(payload) }

//go:wasmexport migrate
func migrate(payload *string) *string { return Migrate(payload) }

//go:wasmexport ft_on_transfer
func ftOnTransfer(payload *string) *string { return FtOnTransfer(payload) }

//go:wasmexport add_proposal
func addProposal(payload *string) *string { return AddProposal(payload) }

//go:wasmexport get_config
func getConfig(payload *string) *string { return GetConfig(payload) }

//go:wasmexport get_metadata
func getMetadata(payload *string) *string { return GetMetadata(payload) }

//go:wasmexport get_owner
func getOwner(payload *string) *string { return GetOwner(payload) }

//go:wasmexport get_delegation
func getDelegation(payload *string) *string { return GetDelegation(payload) }

//go:wasmexport get_total_delegation
func getTotalDelegation(payload *string) *string { return GetTotalDelegation(payload) }

//go:wasmexport get_locked_amount
func getLockedAmount(payload *string) *string { return GetLockedAmount(payload) }

//go:wasmexport get_donation
func getDonation(payload *string) *string { return GetDonation(payload) }

//go:wasmexport get_proposal
func getProposal(payload *string) *string { return GetProposal(payload) }

//go:wasmexport get_last_proposal_id
func getLastProposalID(payload *string) *string { return GetLastProposalID(payload) }

//go:wasmexport get_bounty
func getBounty(payload *string) *string { return GetBounty(payload) }

//go:wasmexport get_last_bounty_id
func getLastBountyID(payload *string) *string { return GetLastBountyID(payload) }
