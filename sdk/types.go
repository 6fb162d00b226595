package sdk

import (
	"github.com/CosmWasm/tinyjson/jlexer"
)

type Sender struct {
	Address       Address   `json:"id"`
	RequiredAuths []Address `json:"required_auths"`
}

type Caller struct {
	Address Address `json:"id"`
}

// Env is the per-call execution environment snapshot handed over by the host.
// Caller is the account that invoked this contract directly (for transfer
// notifications that is the token contract), Sender is the transaction origin.
type Env struct {
	ContractId  string
	TxId        string
	Index       int64
	OpIndex     int64
	BlockId     string
	BlockHeight uint64
	Timestamp   string
	Sender      Sender
	Caller      Caller
	Payer       Address
}

// decodeEnv maps the host's flat dotted-key JSON blob onto the Env struct.
// Unknown keys are skipped so host-side additions never break the guest.
func decodeEnv(data string, out *Env) {
	in := jlexer.Lexer{Data: []byte(data)}
	if in.IsNull() {
		in.Skip()
		return
	}
	in.Delim('{')
	for !in.IsDelim('}') {
		key := in.UnsafeFieldName(false)
		in.WantColon()
		if in.IsNull() {
			in.Skip()
			in.WantComma()
			continue
		}
		switch key {
		case "contract.id":
			out.ContractId = string(in.String())
		case "tx.id":
			out.TxId = string(in.String())
		case "tx.index":
			out.Index = int64(in.Int64())
		case "tx.op_index":
			out.OpIndex = int64(in.Int64())
		case "block.id":
			out.BlockId = string(in.String())
		case "block.height":
			out.BlockHeight = uint64(in.Uint64())
		case "block.timestamp":
			out.Timestamp = string(in.String())
		case "msg.sender":
			out.Sender.Address = Address(in.String())
		case "msg.required_auths":
			out.Sender.RequiredAuths = decodeAddressList(&in)
		case "msg.caller":
			out.Caller.Address = Address(in.String())
		case "msg.payer":
			out.Payer = Address(in.String())
		default:
			in.SkipRecursive()
		}
		in.WantComma()
	}
	in.Delim('}')
}

func decodeAddressList(in *jlexer.Lexer) []Address {
	if in.IsNull() {
		in.Skip()
		return nil
	}
	out := make([]Address, 0, 2)
	in.Delim('[')
	for !in.IsDelim(']') {
		out = append(out, Address(in.String()))
		in.WantComma()
	}
	in.Delim(']')
	return out
}
