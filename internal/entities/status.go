package entities

// Status is display-only state derived from the lifecycle flags. It is
// never persisted as independent truth.
type Status string

const (
	StatusAwaitingPayment Status = "awaiting_payment"
	StatusProcessing      Status = "processing"
	StatusShipped         Status = "shipped"
	StatusDelivered       Status = "delivered"
	StatusCancelled       Status = "cancelled"
)

// Status derives the lifecycle status from the flags. Precedence:
// cancelled wins over everything, then delivered, shipped, paid.
func (o *Order) Status() Status {
	switch {
	case o.IsCancelled:
		return StatusCancelled
	case o.IsDelivered:
		return StatusDelivered
	case o.IsShipped:
		return StatusShipped
	case o.IsPaid:
		return StatusProcessing
	default:
		return StatusAwaitingPayment
	}
}

func (s Status) IsTerminal() bool {
	return s == StatusDelivered || s == StatusCancelled
}

func (s Status) String() string {
	return string(s)
}

// ParseStatus validates a status filter value coming from a caller.
func ParseStatus(raw string) (Status, bool) {
	switch Status(raw) {
	case StatusAwaitingPayment, StatusProcessing, StatusShipped, StatusDelivered, StatusCancelled:
		return Status(raw), true
	default:
		return "", false
	}
}
