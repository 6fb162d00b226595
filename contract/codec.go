package main

import (
	"sort"

	"github.com/CosmWasm/tinyjson/jlexer"
	"github.com/CosmWasm/tinyjson/jwriter"

	"connesus_dao/sdk"
)

// Hand-maintained tinyjson codecs for every type that crosses the wire or the
// state boundary. tinygo guests have no reflection, so each type implements
// the tinyjson Marshaler/Unmarshaler pair explicitly over jlexer/jwriter.
// Field names follow the external JSON contract (snake_case); amounts and
// deadlines are decimal strings per the U128/U64 convention.

// -----------------------------------------------------------------------------
// shared primitives
// -----------------------------------------------------------------------------

// readAmount accepts the quoted decimal string form used for token amounts.
func readAmount(in *jlexer.Lexer) Amount {
	return Amount(in.Uint64Str())
}

func writeAmount(out *jwriter.Writer, v Amount) {
	out.Uint64Str(uint64(v))
}

// readAmountMap decodes a donor->amount object.
func readAmountMap(in *jlexer.Lexer) map[string]Amount {
	if in.IsNull() {
		in.Skip()
		return nil
	}
	m := make(map[string]Amount)
	in.Delim('{')
	for !in.IsDelim('}') {
		key := string(in.String())
		in.WantColon()
		m[key] = readAmount(in)
		in.WantComma()
	}
	in.Delim('}')
	return m
}

// writeAmountMap iterates keys in sorted order so encoded blobs are stable.
func writeAmountMap(out *jwriter.Writer, m map[string]Amount) {
	if m == nil {
		out.RawString("null")
		return
	}
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	out.RawByte('{')
	for i, k := range keys {
		if i > 0 {
			out.RawByte(',')
		}
		out.String(k)
		out.RawByte(':')
		writeAmount(out, m[k])
	}
	out.RawByte('}')
}

// -----------------------------------------------------------------------------
// DaoMetadata
// -----------------------------------------------------------------------------

func decodeDaoMetadata(in *jlexer.Lexer, out *DaoMetadata) {
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
		case "name":
			out.Name = string(in.String())
		case "purpose":
			out.Purpose = string(in.String())
		case "misc":
			out.Misc = string(in.String())
		default:
			in.SkipRecursive()
		}
		in.WantComma()
	}
	in.Delim('}')
}

func encodeDaoMetadata(out *jwriter.Writer, in *DaoMetadata) {
	out.RawByte('{')
	out.RawString("\"name\":")
	out.String(in.Name)
	out.RawString(",\"purpose\":")
	out.String(in.Purpose)
	out.RawString(",\"misc\":")
	out.String(in.Misc)
	out.RawByte('}')
}

func (v *DaoMetadata) MarshalTinyJSON(w *jwriter.Writer) { encodeDaoMetadata(w, v) }
func (v *DaoMetadata) UnmarshalTinyJSON(l *jlexer.Lexer) { decodeDaoMetadata(l, v) }
func (v *DaoMetadata) MarshalJSON() ([]byte, error) { return marshalBytes(v) }
func (v *DaoMetadata) UnmarshalJSON(data []byte) error { return unmarshalBytes(data, v) }

// -----------------------------------------------------------------------------
// ContractConfig
// -----------------------------------------------------------------------------

func decodeContractConfig(in *jlexer.Lexer, out *ContractConfig) {
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
		case "metadata":
			decodeDaoMetadata(in, &out.Metadata)
		case "owner":
			out.Owner = sdk.Address(in.String())
		case "token_account_id":
			out.TokenAccount = sdk.Address(in.String())
		default:
			in.SkipRecursive()
		}
		in.WantComma()
	}
	in.Delim('}')
}

func encodeContractConfig(out *jwriter.Writer, in *ContractConfig) {
	out.RawByte('{')
	out.RawString("\"metadata\":")
	encodeDaoMetadata(out, &in.Metadata)
	out.RawString(",\"owner\":")
	out.String(in.Owner.String())
	out.RawString(",\"token_account_id\":")
	out.String(in.TokenAccount.String())
	out.RawByte('}')
}

func (v *ContractConfig) MarshalTinyJSON(w *jwriter.Writer) { encodeContractConfig(w, v) }
func (v *ContractConfig) UnmarshalTinyJSON(l *jlexer.Lexer) { decodeContractConfig(l, v) }
func (v *ContractConfig) MarshalJSON() ([]byte, error) { return marshalBytes(v) }
func (v *ContractConfig) UnmarshalJSON(data []byte) error { return unmarshalBytes(data, v) }

// -----------------------------------------------------------------------------
// InitArgs
// -----------------------------------------------------------------------------

func decodeInitArgs(in *jlexer.Lexer, out *InitArgs) {
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
		case "metadata":
			decodeDaoMetadata(in, &out.Metadata)
		case "token_account_id":
			out.TokenAccountID = sdk.Address(in.String())
		default:
			in.SkipRecursive()
		}
		in.WantComma()
	}
	in.Delim('}')
}

func encodeInitArgs(out *jwriter.Writer, in *InitArgs) {
	out.RawByte('{')
	out.RawString("\"metadata\":")
	encodeDaoMetadata(out, &in.Metadata)
	out.RawString(",\"token_account_id\":")
	out.String(in.TokenAccountID.String())
	out.RawByte('}')
}

func (v *InitArgs) MarshalTinyJSON(w *jwriter.Writer) { encodeInitArgs(w, v) }
func (v *InitArgs) UnmarshalTinyJSON(l *jlexer.Lexer) { decodeInitArgs(l, v) }
func (v *InitArgs) MarshalJSON() ([]byte, error) { return marshalBytes(v) }
func (v *InitArgs) UnmarshalJSON(data []byte) error { return unmarshalBytes(data, v) }

// -----------------------------------------------------------------------------
// FtOnTransferArgs
// -----------------------------------------------------------------------------

func decodeFtOnTransferArgs(in *jlexer.Lexer, out *FtOnTransferArgs) {
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
		case "sender_id":
			out.SenderID = sdk.Address(in.String())
		case "amount":
			out.Amount = readAmount(in)
		case "msg":
			out.Msg = string(in.String())
		default:
			in.SkipRecursive()
		}
		in.WantComma()
	}
	in.Delim('}')
}

func encodeFtOnTransferArgs(out *jwriter.Writer, in *FtOnTransferArgs) {
	out.RawByte('{')
	out.RawString("\"sender_id\":")
	out.String(in.SenderID.String())
	out.RawString(",\"amount\":")
	writeAmount(out, in.Amount)
	out.RawString(",\"msg\":")
	out.String(in.Msg)
	out.RawByte('}')
}

func (v *FtOnTransferArgs) MarshalTinyJSON(w *jwriter.Writer) { encodeFtOnTransferArgs(w, v) }
func (v *FtOnTransferArgs) UnmarshalTinyJSON(l *jlexer.Lexer) { decodeFtOnTransferArgs(l, v) }
func (v *FtOnTransferArgs) MarshalJSON() ([]byte, error) { return marshalBytes(v) }
func (v *FtOnTransferArgs) UnmarshalJSON(data []byte) error { return unmarshalBytes(data, v) }

// -----------------------------------------------------------------------------
// TransferArgs
// -----------------------------------------------------------------------------

func decodeTransferArgs(in *jlexer.Lexer, out *TransferArgs) {
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
		case "delegate":
			out.Delegate = sdk.Address(in.String())
		case "proposal":
			id := uint64(in.Uint64())
			out.Proposal = &id
		case "transfer_type":
			out.TransferType = TransferPurpose(in.String())
		case "bounty_input":
			bi := &BountyInput{}
			decodeBountyInput(in, bi)
			out.BountyInput = bi
		default:
			in.SkipRecursive()
		}
		in.WantComma()
	}
	in.Delim('}')
}

func encodeTransferArgs(out *jwriter.Writer, in *TransferArgs) {
	out.RawByte('{')
	out.RawString("\"delegate\":")
	out.String(in.Delegate.String())
	if in.Proposal != nil {
		out.RawString(",\"proposal\":")
		out.Uint64(*in.Proposal)
	}
	out.RawString(",\"transfer_type\":")
	out.String(string(in.TransferType))
	if in.BountyInput != nil {
		out.RawString(",\"bounty_input\":")
		encodeBountyInput(out, in.BountyInput)
	}
	out.RawByte('}')
}

func (v *TransferArgs) MarshalTinyJSON(w *jwriter.Writer) { encodeTransferArgs(w, v) }
func (v *TransferArgs) UnmarshalTinyJSON(l *jlexer.Lexer) { decodeTransferArgs(l, v) }
func (v *TransferArgs) MarshalJSON() ([]byte, error) { return marshalBytes(v) }
func (v *TransferArgs) UnmarshalJSON(data []byte) error { return unmarshalBytes(data, v) }

// -----------------------------------------------------------------------------
// BountyInput / Bounty
// -----------------------------------------------------------------------------

func decodeBountyInput(in *jlexer.Lexer, out *BountyInput) {
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
		case "description":
			out.Description = string(in.String())
		case "token":
			out.Token = sdk.Address(in.String())
		case "amount":
			out.Amount = readAmount(in)
		case "times":
			out.Times = uint32(in.Uint32())
		case "max_deadline":
			out.MaxDeadline = uint64(in.Uint64Str())
		default:
			in.SkipRecursive()
		}
		in.WantComma()
	}
	in.Delim('}')
}

func encodeBountyInput(out *jwriter.Writer, in *BountyInput) {
	out.RawByte('{')
	out.RawString("\"description\":")
	out.String(in.Description)
	out.RawString(",\"token\":")
	out.String(in.Token.String())
	out.RawString(",\"amount\":")
	writeAmount(out, in.Amount)
	out.RawString(",\"times\":")
	out.Uint32(in.Times)
	out.RawString(",\"max_deadline\":")
	out.Uint64Str(in.MaxDeadline)
	out.RawByte('}')
}

func (v *BountyInput) MarshalTinyJSON(w *jwriter.Writer) { encodeBountyInput(w, v) }
func (v *BountyInput) UnmarshalTinyJSON(l *jlexer.Lexer) { decodeBountyInput(l, v) }
func (v *BountyInput) MarshalJSON() ([]byte, error) { return marshalBytes(v) }
func (v *BountyInput) UnmarshalJSON(data []byte) error { return unmarshalBytes(data, v) }

func decodeBounty(in *jlexer.Lexer, out *Bounty) {
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
		case "id":
			out.ID = uint64(in.Uint64())
		case "description":
			out.Description = string(in.String())
		case "token":
			out.Token = sdk.Address(in.String())
		case "amount":
			out.Amount = readAmount(in)
		case "times":
			out.Times = uint32(in.Uint32())
		case "max_deadline":
			out.MaxDeadline = uint64(in.Uint64Str())
		default:
			in.SkipRecursive()
		}
		in.WantComma()
	}
	in.Delim('}')
}

func encodeBounty(out *jwriter.Writer, in *Bounty) {
	out.RawByte('{')
	out.RawString("\"id\":")
	out.Uint64(in.ID)
	out.RawString(",\"description\":")
	out.String(in.Description)
	out.RawString(",\"token\":")
	out.String(in.Token.String())
	out.RawString(",\"amount\":")
	writeAmount(out, in.Amount)
	out.RawString(",\"times\":")
	out.Uint32(in.Times)
	out.RawString(",\"max_deadline\":")
	out.Uint64Str(in.MaxDeadline)
	out.RawByte('}')
}

func (v *Bounty) MarshalTinyJSON(w *jwriter.Writer) { encodeBounty(w, v) }
func (v *Bounty) UnmarshalTinyJSON(l *jlexer.Lexer) { decodeBounty(l, v) }
func (v *Bounty) MarshalJSON() ([]byte, error) { return marshalBytes(v) }
func (v *Bounty) UnmarshalJSON(data []byte) error { return unmarshalBytes(data, v) }

// -----------------------------------------------------------------------------
// Proposal
// -----------------------------------------------------------------------------

func decodeProposal(in *jlexer.Lexer, out *Proposal) {
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
		case "id":
			out.ID = uint64(in.Uint64())
		case "proposer":
			out.Proposer = sdk.Address(in.String())
		case "description":
			out.Description = string(in.String())
		case "kind":
			out.Kind = ProposalKind(in.String())
		case "status":
			out.Status = ProposalStatus(in.String())
		case "submission_time":
			out.SubmissionTime = int64(in.Int64())
		case "donations":
			out.Donations = readAmountMap(in)
		case "total_donated":
			out.TotalDonated = readAmount(in)
		default:
			in.SkipRecursive()
		}
		in.WantComma()
	}
	in.Delim('}')
}

func encodeProposal(out *jwriter.Writer, in *Proposal) {
	out.RawByte('{')
	out.RawString("\"id\":")
	out.Uint64(in.ID)
	out.RawString(",\"proposer\":")
	out.String(in.Proposer.String())
	out.RawString(",\"description\":")
	out.String(in.Description)
	out.RawString(",\"kind\":")
	out.String(string(in.Kind))
	out.RawString(",\"status\":")
	out.String(string(in.Status))
	out.RawString(",\"submission_time\":")
	out.Int64(in.SubmissionTime)
	out.RawString(",\"donations\":")
	writeAmountMap(out, in.Donations)
	out.RawString(",\"total_donated\":")
	writeAmount(out, in.TotalDonated)
	out.RawByte('}')
}

func (v *Proposal) MarshalTinyJSON(w *jwriter.Writer) { encodeProposal(w, v) }
func (v *Proposal) UnmarshalTinyJSON(l *jlexer.Lexer) { decodeProposal(l, v) }
func (v *Proposal) MarshalJSON() ([]byte, error) { return marshalBytes(v) }
func (v *Proposal) UnmarshalJSON(data []byte) error { return unmarshalBytes(data, v) }

// -----------------------------------------------------------------------------
// AddProposalArgs
// -----------------------------------------------------------------------------

func decodeAddProposalArgs(in *jlexer.Lexer, out *AddProposalArgs) {
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
		case "description":
			out.Description = string(in.String())
		case "kind":
			out.Kind = ProposalKind(in.String())
		default:
			in.SkipRecursive()
		}
		in.WantComma()
	}
	in.Delim('}')
}

func encodeAddProposalArgs(out *jwriter.Writer, in *AddProposalArgs) {
	out.RawByte('{')
	out.RawString("\"description\":")
	out.String(in.Description)
	out.RawString(",\"kind\":")
	out.String(string(in.Kind))
	out.RawByte('}')
}

func (v *AddProposalArgs) MarshalTinyJSON(w *jwriter.Writer) { encodeAddProposalArgs(w, v) }
func (v *AddProposalArgs) UnmarshalTinyJSON(l *jlexer.Lexer) { decodeAddProposalArgs(l, v) }
func (v *AddProposalArgs) MarshalJSON() ([]byte, error) { return marshalBytes(v) }
func (v *AddProposalArgs) UnmarshalJSON(data []byte) error { return unmarshalBytes(data, v) }

// -----------------------------------------------------------------------------
// marshal plumbing
// -----------------------------------------------------------------------------

type tinyMarshaler interface {
	MarshalTinyJSON(w *jwriter.Writer)
}

type tinyUnmarshaler interface {
	UnmarshalTinyJSON(l *jlexer.Lexer)
}

func marshalBytes(v tinyMarshaler) ([]byte, error) {
	w := jwriter.Writer{}
	v.MarshalTinyJSON(&w)
	return w.Buffer.BuildBytes(), w.Error
}

func unmarshalBytes(data []byte, v tinyUnmarshaler) error {
	l := jlexer.Lexer{Data: data}
	v.UnmarshalTinyJSON(&l)
	l.Consumed()
	return l.Error()
}
