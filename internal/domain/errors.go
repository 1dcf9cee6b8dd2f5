package domain

import (
	"errors"
	"fmt"
)

type ErrorKind string

const (
	KindNotFound        ErrorKind = "NOT_FOUND"
	KindInvalidState    ErrorKind = "INVALID_STATE"
	KindForbidden       ErrorKind = "FORBIDDEN"
	KindInvalidArgument ErrorKind = "INVALID_ARGUMENT"
	KindConflict        ErrorKind = "CONFLICT"
	KindConfiguration   ErrorKind = "CONFIGURATION"
)

// Sub-reasons surfaced to the peripheral layer alongside the kind.
const (
	ReasonSuspended       = "SUSPENDED"
	ReasonNotActive       = "NOT_ACTIVE"
	ReasonPaymentRequired = "PAYMENT_REQUIRED"
	ReasonPaymentPending  = "PAYMENT_PENDING"
	ReasonPaymentRejected = "PAYMENT_REJECTED"
	ReasonSelfBid         = "SELF_BID"
	ReasonBelowCurrent    = "BELOW_CURRENT"
	ReasonBelowIncrement  = "BELOW_INCREMENT"
	ReasonCodeTaken       = "CODE_TAKEN"
	ReasonAlreadyApproved = "ALREADY_APPROVED"
	ReasonAlreadyRejected = "ALREADY_REJECTED"
	ReasonNoReserveFloor  = "NO_RESERVE_FLOOR"
	ReasonNotWinner       = "NOT_WINNER"
	ReasonAmountMismatch  = "AMOUNT_MISMATCH"
	ReasonNotesRequired   = "NOTES_REQUIRED"
	ReasonNotSeller       = "NOT_SELLER"
)

// Error is the typed result every usecase returns on failure. Detail carries
// the current state the caller needs to render an actionable message
// (e.g. the admin notes of a rejected payment) without knowing HTTP.
type Error struct {
	Kind   ErrorKind
	Reason string
	Detail string
}

func (e *Error) Error() string {
	if e.Reason == "" {
		return fmt.Sprintf("%s: %s", e.Kind, e.Detail)
	}
	return fmt.Sprintf("%s/%s: %s", e.Kind, e.Reason, e.Detail)
}

func NewError(kind ErrorKind, reason, detail string) *Error {
	return &Error{Kind: kind, Reason: reason, Detail: detail}
}

func NotFoundError(detail string) *Error {
	return &Error{Kind: KindNotFound, Detail: detail}
}

// IsKind reports whether err is a domain Error of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	var de *Error
	return errors.As(err, &de) && de.Kind == kind
}

// ReasonOf extracts the sub-reason of a domain Error, or "".
func ReasonOf(err error) string {
	var de *Error
	if errors.As(err, &de) {
		return de.Reason
	}
	return ""
}

// ErrVersionConflict is returned by AuctionRepository.Update when the stored
// version moved since the caller's read. Usecases re-read and retry.
var ErrVersionConflict = errors.New("auction version conflict")

// ErrWinnerExists is returned by WinnerRepository.CreateIfAbsent when a
// winner record already exists for the auction. Callers treat it as a
// successful no-op.
var ErrWinnerExists = errors.New("winner already recorded")
