package valueobject

import (
	"fmt"
)

// ---------------------------------------------------------------------------
// PlanStatus – immutable value object
// ---------------------------------------------------------------------------

// PlanStatus represents the lifecycle stage of an installment plan.
type PlanStatus struct {
	value string
}

const (
	planStatusActive    = "ACTIVE"
	planStatusCompleted = "COMPLETED"
)

var (
	PlanStatusActive    = PlanStatus{value: planStatusActive}
	PlanStatusCompleted = PlanStatus{value: planStatusCompleted}
)

var validPlanStatuses = map[string]PlanStatus{
	planStatusActive:    PlanStatusActive,
	planStatusCompleted: PlanStatusCompleted,
}

// NewPlanStatus creates a PlanStatus from a raw string.
func NewPlanStatus(s string) (PlanStatus, error) {
	v, ok := validPlanStatuses[s]
	if !ok {
		return PlanStatus{}, fmt.Errorf("invalid plan status: %q", s)
	}
	return v, nil
}

// String returns the string representation of the status.
func (s PlanStatus) String() string { return s.value }

// IsZero returns true if the status has not been initialised.
func (s PlanStatus) IsZero() bool { return s.value == "" }

// Equal returns true when both statuses carry the same value.
func (s PlanStatus) Equal(other PlanStatus) bool { return s.value == other.value }

// IsTerminal reports whether the status admits no further payments.
func (s PlanStatus) IsTerminal() bool { return s.value == planStatusCompleted }
