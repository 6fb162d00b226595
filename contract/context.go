package main

import "connesus_dao/sdk"

// cachedEnv is scoped to the currently executing transaction. Whenever the
// tx.id changes we refresh sdk.GetEnv() so subsequent helper calls (sender,
// caller, timestamps) always see the same snapshot.
var (
	cachedEnv       sdk.Env
	cachedEnvLoaded bool
)

// currentEnv caches the env per tx.id so we dont poke the host api every few lines.
func currentEnv() *sdk.Env {
	var currentTx string
	if txPtr := sdk.GetEnvKey("tx.id"); txPtr != nil {
		currentTx = *txPtr
	}
	if !cachedEnvLoaded || cachedEnv.TxId != currentTx {
		cachedEnv = sdk.GetEnv()
		cachedEnvLoaded = true
	}
	return &cachedEnv
}

// getSenderAddress returns the address of the current transaction origin.
func getSenderAddress() sdk.Address {
	return currentEnv().Sender.Address
}

// getCallerAddress returns the account that invoked this contract directly.
// For transfer notifications that is the fungible-token contract itself.
func getCallerAddress() sdk.Address {
	return currentEnv().Caller.Address
}

// getContractAddress returns this contract's own account id.
func getContractAddress() sdk.Address {
	return sdk.Address(currentEnv().ContractId)
}
