package entities

import "time"

type MilestoneState string

const (
	MilestoneCompleted   MilestoneState = "completed"
	MilestonePending     MilestoneState = "pending"
	MilestoneUnreachable MilestoneState = "unreachable"
)

const (
	MilestoneLabelCreated   = "Created"
	MilestoneLabelPaid      = "Payment received"
	MilestoneLabelShipped   = "Shipped"
	MilestoneLabelDelivered = "Delivered"
	MilestoneLabelCancelled = "Cancelled"
)

type Milestone struct {
	Label     string
	Timestamp *time.Time
	State     MilestoneState
}

// Timeline reconstructs the fulfillment milestones from the flags. The
// sequence is fixed: Created, Payment received, Shipped, Delivered, with
// a trailing Cancelled milestone on cancelled orders. Milestones an order
// skipped because of cancellation are unreachable, not pending.
func (o *Order) Timeline() []Milestone {
	createdAt := o.CreatedAt
	milestones := []Milestone{
		{Label: MilestoneLabelCreated, Timestamp: &createdAt, State: MilestoneCompleted},
		milestone(MilestoneLabelPaid, o.IsPaid, o.PaidAt, o.IsCancelled),
		milestone(MilestoneLabelShipped, o.IsShipped, o.ShippedAt, o.IsCancelled),
		milestone(MilestoneLabelDelivered, o.IsDelivered, o.DeliveredAt, o.IsCancelled),
	}

	if o.IsCancelled {
		milestones = append(milestones, Milestone{
			Label:     MilestoneLabelCancelled,
			Timestamp: o.CancelledAt,
			State:     MilestoneCompleted,
		})
	}

	return milestones
}

func milestone(label string, reached bool, at *time.Time, cancelled bool) Milestone {
	m := Milestone{Label: label, Timestamp: at}
	switch {
	case reached:
		m.State = MilestoneCompleted
	case cancelled:
		m.State = MilestoneUnreachable
	default:
		m.State = MilestonePending
	}
	return m
}
