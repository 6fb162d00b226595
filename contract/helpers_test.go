package main

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"connesus_dao/sdk"
)

const (
	contractAccount = "dao.near"
	ownerAccount    = "owner.near"
	tokenAccount    = "token.near"
)

var txCounter int

// setEnv installs a fresh env snapshot with a new tx id so the per-tx env
// cache refreshes between calls, the way the host does per transaction.
func setEnv(t *testing.T, sender, caller string) {
	t.Helper()
	txCounter++
	sdk.MockSetEnv(sdk.Env{
		ContractId:  contractAccount,
		TxId:        fmt.Sprintf("tx-%d", txCounter),
		Index:       0,
		OpIndex:     0,
		BlockId:     "block-1",
		BlockHeight: 42,
		Timestamp:   "2026-08-26T00:00:00",
		Sender:      sdk.Sender{Address: sdk.Address(sender)},
		Caller:      sdk.Caller{Address: sdk.Address(caller)},
		Payer:       sdk.Address(sender),
	})
}

// setupContract resets the mock host and initializes the contract with the
// default owner and token account.
func setupContract(t *testing.T) {
	t.Helper()
	sdk.MockReset()
	setEnv(t, ownerAccount, ownerAccount)
	ret := ContractInit(strptr(`{"metadata":{"name":"connesus","purpose":"testing","misc":""},"token_account_id":"token.near"}`))
	require.NotNil(t, ret)
}

// notifyTransfer invokes the transfer notification the way the token contract
// would: caller is the token contract, sender the original token owner.
func notifyTransfer(caller, sender string, amount Amount, msg string) *string {
	txCounter++
	sdk.MockSetEnv(sdk.Env{
		ContractId: contractAccount,
		TxId:       fmt.Sprintf("tx-%d", txCounter),
		Timestamp:  "2026-08-26T00:00:00",
		Sender:     sdk.Sender{Address: sdk.Address(sender)},
		Caller:     sdk.Caller{Address: sdk.Address(caller)},
		Payer:      sdk.Address(sender),
	})
	payload := fmt.Sprintf(`{"sender_id":%q,"amount":%q,"msg":%q}`, sender, AmountToString(amount), msg)
	return FtOnTransfer(&payload)
}

// viewAmount reads a numeric view result back as Amount.
func viewAmount(t *testing.T, view func(*string) *string, payload string) Amount {
	t.Helper()
	var arg *string
	if payload != "" {
		arg = strptr(payload)
	}
	ret := view(arg)
	require.NotNil(t, ret)
	return Amount(StringToUInt64(*ret, "bad view amount"))
}

// fetchProposal loads a proposal through the view and decodes it.
func fetchProposal(t *testing.T, id uint64) Proposal {
	t.Helper()
	ret := GetProposal(strptr(UInt64ToString(id)))
	require.NotNil(t, ret)
	var prpsl Proposal
	require.NoError(t, unmarshalBytes([]byte(*ret), &prpsl))
	return prpsl
}

// fetchBounty loads a bounty through the view and decodes it.
func fetchBounty(t *testing.T, id uint64) Bounty {
	t.Helper()
	ret := GetBounty(strptr(UInt64ToString(id)))
	require.NotNil(t, ret)
	var bounty Bounty
	require.NoError(t, unmarshalBytes([]byte(*ret), &bounty))
	return bounty
}
