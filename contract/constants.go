package main

// -----------------------------------------------------------------------------
// Fatal reason strings
// -----------------------------------------------------------------------------

// Every rejection aborts the whole call with one of these fixed reasons. The
// host rolls back all state writes of the call, so no cleanup code exists.
const (
	ErrAlreadyInitialized  = "ERR_CONTRACT_ALREADY_INITIALIZED"
	ErrNotInitialized      = "ERR_CONTRACT_IS_NOT_INITIALIZED"
	ErrNotAllowed          = "ERR_NOT_ALLOWED"
	ErrInvalidInitArgs     = "ERR_INVALID_INIT_ARGS"
	ErrInvalidTransferArgs = "ERR_INVALID_TRANSFER_ARGS"
	ErrInvalidProposalArgs = "ERR_INVALID_PROPOSAL_ARGS"
	ErrInvalidBountyArgs   = "ERR_INVALID_BOUNTY_ARGS"
	ErrInvalidTokenAccount = "ERR_INVALID_TOKEN_ACCOUNT"
	ErrProposalIDMissing   = "PROPOSAL_ID_NOT_PROVIDED"
	ErrNoProposal          = "ERR_NO_PROPOSAL"
	ErrNotDonationKind     = "PROPOSAL_IS_NOT_DONATION_KIND"
	ErrBountyInputMissing  = "BOUNTY_INPUT_NOT_FOUND"
	ErrNoBounty            = "ERR_NO_BOUNTY"
	ErrInvalidAccount      = "ERR_INVALID_ACCOUNT_ID"
)

// -----------------------------------------------------------------------------
// Validation limits
// -----------------------------------------------------------------------------

const (
	// MaxDescriptionLength limits proposal and bounty description blobs.
	MaxDescriptionLength = 2000
)

// -----------------------------------------------------------------------------
// Counter keys
// -----------------------------------------------------------------------------

const (
	// ProposalsCount holds the next proposal id as a decimal string.
	ProposalsCount = "count:prop"
	// BountiesCount holds the next bounty id as a decimal string.
	BountiesCount = "count:bounty"
)

// -----------------------------------------------------------------------------
// Running-total keys
// -----------------------------------------------------------------------------

const (
	// TotalDelegationKey accumulates every accepted delegation amount.
	TotalDelegationKey = "total:delegation"
	// LockedAmountKey tracks funds locked via delegation; it only grows here,
	// the unlock path lives outside this contract's surface.
	LockedAmountKey = "total:locked"
)
