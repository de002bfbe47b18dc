package core

import "errors"

// Configuration errors.
var ErrSharesNotWhole error = errors.New("win share and house share must sum to 10000 basis points")
var ErrZeroAmount error = errors.New("amount must be non-zero")
var ErrZeroAddress error = errors.New("address must be non-zero")

// Validation failures: atomic rejection, zero state change.
var ErrZeroCommitment error = errors.New("commitment digest must be non-zero")
var ErrEmptySecret error = errors.New("revealed secret must not be empty")
var ErrWrongStake error = errors.New("payment must equal the configured stake exactly")
var ErrStakeTooLow error = errors.New("first stake payment is below the configured minimum")
var ErrWrongSponsorFee error = errors.New("payment must equal the configured sponsor fee exactly")

// State precondition failures: atomic rejection, retryable once the
// precondition can become true.
var ErrPaused error = errors.New("game is paused")
var ErrCooldownActive error = errors.New("cooldown has not elapsed since the last commit")
var ErrCommitPending error = errors.New("previous commitment still pending")
var ErrNoCommitment error = errors.New("no pending commitment")
var ErrRevealTooEarly error = errors.New("reveal window has not opened yet")
var ErrRevealTooLate error = errors.New("reveal window has closed")
var ErrCommitStillLive error = errors.New("reveal window has not fully elapsed")
var ErrCommitMismatch error = errors.New("revealed secret does not match the stored commitment")
var ErrPotNotEmpty error = errors.New("pot is not empty")
var ErrPotBelowMinimum error = errors.New("pot is below the minimum required to resolve")
var ErrNothingOwed error = errors.New("no pending payout for this address")
var ErrNoHouseFunds error = errors.New("no house funds to withdraw")

// Authorization failures.
var ErrNotAdmin error = errors.New("caller is not the administrator")

// Fund movement.
var ErrSendFailed error = errors.New("transfer failed")
