// Package apperr defines the typed failures the stock/settlement engine can
// return. Every error carries a Kind so the HTTP layer can map client
// mistakes (not enough stock) to 4xx and internal inconsistencies (ledger
// and batch store disagree) to 5xx with alerting.
package apperr

import (
	"errors"
	"fmt"
)

// Kind classifies an engine failure.
type Kind int

const (
	// KindClient: the request was wrong or cannot be satisfied (bad
	// quantity, unknown item, not enough stock). Actionable by the caller.
	KindClient Kind = iota
	// KindConflict: the operation raced with or repeated another one
	// (double reversal, losing concurrent batch writer).
	KindConflict
	// KindInternal: a data invariant has already been violated; the request
	// did not cause it and the caller cannot fix it.
	KindInternal
)

// Error is the engine's failure type.
type Error struct {
	Kind Kind
	Code string
	Msg  string
}

func (e *Error) Error() string { return e.Msg }

// Sentinel constructors — one per error kind named in the design. Each call
// returns a fresh value so callers can wrap with extra context, while
// errors.Is keeps matching on Code.

func ItemNotFound(name string) *Error {
	return &Error{Kind: KindClient, Code: "ITEM_NOT_FOUND", Msg: fmt.Sprintf("item %q not found", name)}
}

func InsufficientStock(name string, have, want int) *Error {
	return &Error{Kind: KindClient, Code: "INSUFFICIENT_STOCK",
		Msg: fmt.Sprintf("insufficient stock for %q: have %d, requested %d", name, have, want)}
}

func InvalidQuantity(qty int) *Error {
	return &Error{Kind: KindClient, Code: "INVALID_QUANTITY", Msg: fmt.Sprintf("invalid quantity %d", qty)}
}

func ItemExists(name, manufacturer string) *Error {
	return &Error{Kind: KindConflict, Code: "ITEM_EXISTS",
		Msg: fmt.Sprintf("item %q by %q already exists", name, manufacturer)}
}

func AlreadyReversed(ref string) *Error {
	return &Error{Kind: KindConflict, Code: "ALREADY_REVERSED", Msg: fmt.Sprintf("record %s is already reversed", ref)}
}

func LedgerUnderflow(msg string) *Error {
	return &Error{Kind: KindClient, Code: "LEDGER_UNDERFLOW", Msg: msg}
}

// NoAvailableBatch signals that the stock ledger shows units the batch store
// does not have — the stock == Σ batches invariant is already broken.
func NoAvailableBatch(name string) *Error {
	return &Error{Kind: KindInternal, Code: "NO_AVAILABLE_BATCH",
		Msg: fmt.Sprintf("no purchase batch available for %q while stock remains: ledger and batch store disagree", name)}
}

// Is makes errors.Is match two *Error values by Code, so sentinel-style
// checks work on freshly constructed errors.
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return e.Code == t.Code
}

// CodeOf extracts the engine error code, or "" for foreign errors.
func CodeOf(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// KindOf extracts the Kind, defaulting foreign errors to KindInternal.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}
