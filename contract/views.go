package main

import "connesus_dao/sdk"

// Config view methods. Views never mutate state.

// GetConfig returns the full contract configuration as JSON.
func GetConfig(_ *string) *string {
	cfg := requireContractConfig()
	return strptr(encodeToState(cfg, "contract config"))
}

// GetMetadata returns only the DAO metadata blob.
func GetMetadata(_ *string) *string {
	cfg := requireContractConfig()
	return strptr(encodeToState(&cfg.Metadata, "dao metadata"))
}

// GetOwner returns the owner account recorded at init time.
func GetOwner(_ *string) *string {
	owner := getContractOwner()
	if owner == nil {
		sdk.Abort(ErrNotInitialized)
	}
	return strptr(AddressToString(*owner))
}
