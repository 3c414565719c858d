package belboard

import "fmt"

// TicketStatus is the closed enumeration of support ticket states.
type TicketStatus string

// Ticket lifecycle states. Transitions only move forward; a Closed ticket
// never reopens.
const (
	StatusOpen     TicketStatus = "Open"
	StatusReplied  TicketStatus = "Replied"
	StatusResolved TicketStatus = "Resolved"
	StatusClosed   TicketStatus = "Closed"
)

// Valid reports whether the status is one of the known states.
func (s TicketStatus) Valid() bool {
	switch s {
	case StatusOpen, StatusReplied, StatusResolved, StatusClosed:
		return true
	}
	return false
}

// Terminal reports whether the ticket accepts no further replies.
func (s TicketStatus) Terminal() bool {
	return s == StatusClosed
}

// CanTransition validates a forward status move. Closed is terminal, and a
// ticket never moves back to Open.
func CanTransition(from, to TicketStatus) bool {
	if !from.Valid() || !to.Valid() {
		return false
	}
	if from == StatusClosed {
		return false
	}
	if to == StatusOpen {
		return from == StatusOpen
	}
	return true
}

// Transition applies a validated status change.
func (t *Ticket) Transition(to TicketStatus) error {
	if !CanTransition(t.Status, to) {
		return fmt.Errorf("belboard: ticket %s cannot move %s -> %s", t.TicketNumber, t.Status, to)
	}
	t.Status = to
	return nil
}
