package handler

import (
	"errors"
	"net/http"

	"potshot/internal/core"
)

// statusFromError maps game rejections onto HTTP codes. Anything the
// engine does not explicitly reject is a server-side failure.
func statusFromError(err error) int {
	switch {
	case errors.Is(err, core.ErrZeroCommitment),
		errors.Is(err, core.ErrEmptySecret),
		errors.Is(err, core.ErrZeroAmount),
		errors.Is(err, core.ErrWrongStake),
		errors.Is(err, core.ErrStakeTooLow),
		errors.Is(err, core.ErrWrongSponsorFee),
		errors.Is(err, core.ErrCommitMismatch):
		return http.StatusBadRequest
	case errors.Is(err, core.ErrNotAdmin):
		return http.StatusForbidden
	case errors.Is(err, core.ErrNoCommitment),
		errors.Is(err, core.ErrNothingOwed),
		errors.Is(err, core.ErrNoHouseFunds):
		return http.StatusNotFound
	case errors.Is(err, core.ErrPaused),
		errors.Is(err, core.ErrCommitPending),
		errors.Is(err, core.ErrCommitStillLive),
		errors.Is(err, core.ErrPotNotEmpty),
		errors.Is(err, core.ErrPotBelowMinimum):
		return http.StatusConflict
	case errors.Is(err, core.ErrCooldownActive):
		return http.StatusTooManyRequests
	case errors.Is(err, core.ErrRevealTooEarly):
		return http.StatusTooEarly
	case errors.Is(err, core.ErrRevealTooLate):
		return http.StatusGone
	case errors.Is(err, core.ErrSendFailed):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
