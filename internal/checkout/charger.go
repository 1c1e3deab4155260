package checkout

import "context"

// DeclineReason classifies the non-fatal ways a charge can fail once a
// real payment processor replaces the mock.
type DeclineReason string

const (
	ReasonPaymentDeclined   DeclineReason = "payment_declined"
	ReasonInsufficientStock DeclineReason = "insufficient_stock"
	ReasonInvalidAddress    DeclineReason = "invalid_address"
)

// DeclineError is a reportable, non-fatal charge refusal, distinct from
// a transport failure.
type DeclineError struct {
	Reason  DeclineReason
	Message string
}

func (e *DeclineError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return string(e.Reason)
}

type ChargeRequest struct {
	UserID string
	Amount float64
}

// Charger is the payment boundary. A failed charge returns either a
// *DeclineError or a transport error.
type Charger interface {
	Charge(ctx context.Context, req ChargeRequest) error
}

// AlwaysApprove is the demo processor: it cannot fail.
type AlwaysApprove struct{}

func (AlwaysApprove) Charge(context.Context, ChargeRequest) error {
	return nil
}
