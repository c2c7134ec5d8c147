package domain

// SlotState is the planner's primary output per (staff, date, slot).
// Derived, never persisted.
type SlotState struct {
	Time                 TimeOfDay
	IsWithinAvailability bool
	IsBooked             bool
}

// IsSelectable returns true if the slot can be chosen as an appointment start.
// Past slots never reach a SlotState: the planner drops them up front.
func (s SlotState) IsSelectable() bool {
	return s.IsWithinAvailability && !s.IsBooked
}
