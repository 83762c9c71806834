// FILE: pkg/billing/errors.go
package billing

import "errors"

// Kind classifies a business-rule violation. Controllers map kinds to HTTP
// statuses; the engine never localizes messages itself.
type Kind string

const (
	KindFeatureNotIncluded  Kind = "feature_not_included"
	KindMonthlyLimitReached Kind = "monthly_limit_reached"
	KindInvalidAmount       Kind = "invalid_amount"
	KindAmountTooLarge      Kind = "amount_too_large"
	KindUnknownPlan         Kind = "unknown_plan"
	KindInsufficientBalance Kind = "insufficient_balance"
)

// Error is an expected, user-actionable billing failure. Infrastructure
// failures (store unavailable) propagate as plain errors instead.
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// HTTPStatus returns the suggested transport status for this kind.
func (e *Error) HTTPStatus() int {
	switch e.Kind {
	case KindFeatureNotIncluded:
		return 403
	case KindMonthlyLimitReached:
		return 429
	case KindInsufficientBalance:
		return 402
	case KindInvalidAmount, KindAmountTooLarge, KindUnknownPlan:
		return 422
	}
	return 422
}

func newError(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// AsError unwraps a billing Error from err, if present.
func AsError(err error) (*Error, bool) {
	var be *Error
	if errors.As(err, &be) {
		return be, true
	}
	return nil, false
}
