package entities

import (
	"errors"
	"fmt"
	"time"
)

// Command names a guarded lifecycle transition. Every flag mutation goes
// through Apply, so guards cannot be bypassed by a new call site.
type Command string

const (
	CommandMarkPaid      Command = "mark_paid"
	CommandMarkUnpaid    Command = "mark_unpaid"
	CommandMarkShipped   Command = "mark_shipped"
	CommandMarkUnshipped Command = "mark_unshipped"
	CommandMarkDelivered Command = "mark_delivered"
	CommandCancel        Command = "cancel"
	CommandSubmitReview  Command = "submit_review"
)

func (c Command) String() string {
	return string(c)
}

// AdminOnly reports whether the command requires the admin role.
// Cancel is open to both roles, review submission to the owner only.
func (c Command) AdminOnly() bool {
	switch c {
	case CommandMarkPaid, CommandMarkUnpaid, CommandMarkShipped, CommandMarkUnshipped, CommandMarkDelivered:
		return true
	default:
		return false
	}
}

// TransitionInput carries command payloads: the mandatory cancellation
// reason and the review reference.
type TransitionInput struct {
	Reason   string
	ReviewID string
}

var ErrValidation = errors.New("invalid command payload")

// InvalidTransitionError reports a guard failure: the command that was
// rejected and the derived status it was rejected in.
type InvalidTransitionError struct {
	Command Command
	Status  Status
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("cannot %s an order in status %s", e.Command, e.Status)
}

// Apply evaluates cmd against the order's current flags and returns the
// resulting order. It never mutates its input. The second return value
// is false when the command would not change any flag; such calls are
// idempotent no-ops and must produce no write and no audit entry.
func Apply(o Order, cmd Command, in TransitionInput, now time.Time) (Order, bool, error) {
	reject := func() (Order, bool, error) {
		return Order{}, false, &InvalidTransitionError{Command: cmd, Status: o.Status()}
	}

	// Cancellation is terminal: after it only reads succeed.
	if o.IsCancelled {
		return reject()
	}

	switch cmd {
	case CommandMarkPaid:
		if o.IsPaid {
			return o, false, nil
		}
		o.IsPaid = true
		o.PaidAt = &now

	case CommandMarkUnpaid:
		if o.IsShipped {
			return reject()
		}
		if !o.IsPaid {
			return o, false, nil
		}
		o.IsPaid = false
		o.PaidAt = nil

	case CommandMarkShipped:
		if !o.IsPaid {
			return reject()
		}
		if o.IsShipped {
			return o, false, nil
		}
		o.IsShipped = true
		o.ShippedAt = &now

	case CommandMarkUnshipped:
		if o.IsDelivered {
			return reject()
		}
		if !o.IsShipped {
			return o, false, nil
		}
		o.IsShipped = false
		o.ShippedAt = nil

	case CommandMarkDelivered:
		if o.IsDelivered {
			return o, false, nil
		}
		if !o.IsShipped {
			return reject()
		}
		o.IsDelivered = true
		o.DeliveredAt = &now

	case CommandCancel:
		if o.IsDelivered {
			return reject()
		}
		if in.Reason == "" {
			return Order{}, false, fmt.Errorf("%w: cancellation reason is required", ErrValidation)
		}
		o.IsCancelled = true
		o.CancelledAt = &now
		o.CancelReason = in.Reason

	case CommandSubmitReview:
		if !o.IsDelivered || o.ReviewID != "" {
			return reject()
		}
		if in.ReviewID == "" {
			return Order{}, false, fmt.Errorf("%w: review reference is required", ErrValidation)
		}
		o.ReviewID = in.ReviewID

	default:
		return Order{}, false, fmt.Errorf("%w: unknown command %q", ErrValidation, cmd)
	}

	o.UpdatedAt = now
	return o, true, nil
}
