package main

import "connesus_dao/sdk"

// -----------------------------------------------------------------------------
// Transfer Dispatcher
// -----------------------------------------------------------------------------

// FtOnTransfer is the single callback the fungible-token contract invokes
// after crediting this contract with a transfer. The msg payload decodes to a
// TransferArgs command which routes to one of four handlers. Validation runs
// before any state mutation; every rejection aborts the whole call and the
// host discards all writes. A successful call returns "0": the transferred
// amount is always fully accepted, never partially refunded.
//
// Payload: {"sender_id":"alice.near","amount":"100","msg":"{\"transfer_type\":\"Delegate\",...}"}
func FtOnTransfer(payload *string) *string {
	requireInitialized()

	raw := unwrapPayload(payload, ErrInvalidTransferArgs)
	var notification FtOnTransferArgs
	if err := unmarshalBytes([]byte(raw), &notification); err != nil {
		sdk.Abort(ErrInvalidTransferArgs)
	}

	var args TransferArgs
	if err := unmarshalBytes([]byte(notification.Msg), &args); err != nil {
		sdk.Abort(ErrInvalidTransferArgs)
	}

	cfg := requireContractConfig()
	sender := notification.SenderID
	amount := notification.Amount

	switch args.TransferType {
	case PurposeDelegate:
		assertAccountID(cfg.TokenAccount)
		internalDelegate(args.Delegate, amount)
		addBalance(LockedAmountKey, amount)
		emitDelegateEvent(args.Delegate.String(), sender.String(), amount)
	case PurposeOpenDonate:
		assertAccountID(cfg.TokenAccount)
		openDonate(sender, amount)
		emitOpenDonateEvent(sender.String(), amount)
	case PurposeProposalDonate:
		assertAccountID(cfg.TokenAccount)
		if args.Proposal == nil {
			sdk.Abort(ErrProposalIDMissing)
		}
		proposalDonate(*args.Proposal, sender, amount)
		emitProposalDonateEvent(*args.Proposal, sender.String(), amount)
	case PurposeCreateBounty:
		if args.BountyInput == nil {
			sdk.Abort(ErrBountyInputMissing)
		}
		assertAccountID(args.BountyInput.Token)
		id := createBounty(args.BountyInput)
		emitBountyCreatedEvent(id, args.BountyInput.Token.String(), args.BountyInput.Amount)
	default:
		sdk.Abort(ErrInvalidTransferArgs)
	}

	return strptr("0")
}

// assertAccountID aborts unless the calling contract equals the candidate
// account. This stops an unrelated token contract from forging delegation,
// donation or bounty credit through the notification entry point.
func assertAccountID(candidate sdk.Address) {
	if getCallerAddress() != candidate {
		sdk.Abort(ErrInvalidTokenAccount)
	}
}
