////////////////////////////////////////////////////////////////////////////////
// Connesus DAO: delegation, donations and bounties funded by token transfers
////////////////////////////////////////////////////////////////////////////////

package main

import "connesus_dao/sdk"

// main is left empty on purpose
func main() {

}

// -----------------------------------------------------------------------------
// Contract Initialization
// -----------------------------------------------------------------------------

// ContractInit initializes the contract with the caller as owner.
// Must be called before any other function.
// Payload: {"metadata":{...},"token_account_id":"token.near"}
func ContractInit(payload *string) *string {
	if isContractInitialized() {
		sdk.Abort(ErrAlreadyInitialized)
	}

	raw := unwrapPayload(payload, ErrInvalidInitArgs)
	var args InitArgs
	if err := unmarshalBytes([]byte(raw), &args); err != nil {
		sdk.Abort(ErrInvalidInitArgs)
	}
	if !args.TokenAccountID.IsValid() {
		sdk.Abort(ErrInvalidAccount)
	}

	// Store contract config with the transaction origin as owner. Everything
	// else (maps, counters, totals) springs into existence lazily at zero.
	cfg := ContractConfig{
		Metadata:     args.Metadata,
		Owner:        getSenderAddress(),
		TokenAccount: args.TokenAccountID,
	}
	saveContractConfig(&cfg)

	emitInitEvent(cfg.Owner.String(), cfg.TokenAccount.String())

	return strptr("initialized")
}

// -----------------------------------------------------------------------------
// Migration
// -----------------------------------------------------------------------------

// Migrate is callable only by the contract acting on itself. It reads the
// persisted config back unchanged. Replace with field-by-field migration
// whenever the persisted schema changes; until then it is a safe passthrough.
func Migrate(_ *string) *string {
	if getCallerAddress() != getContractAddress() {
		sdk.Abort(ErrNotAllowed)
	}
	cfg := loadContractConfig()
	if cfg == nil {
		sdk.Abort(ErrNotInitialized)
	}
	saveContractConfig(cfg)
	return strptr(encodeToState(cfg, "contract config"))
}
