package domain

// AvailabilityWindow represents a staff member's declared working interval
// on a specific date. Multiple windows per staff and date are allowed
// (split shifts). Invariant: StartTime < EndTime.
type AvailabilityWindow struct {
	ID          int64
	StaffID     int64
	Date        CalendarDate
	StartTime   TimeOfDay
	EndTime     TimeOfDay
	IsAvailable bool
}

// Covers reports whether the window makes the given slot workable:
// the window is marked available and StartTime <= t < EndTime.
func (w AvailabilityWindow) Covers(t TimeOfDay) bool {
	return w.IsAvailable && !t.Before(w.StartTime) && t.Before(w.EndTime)
}

// IsValid reports whether the window satisfies the StartTime < EndTime invariant.
func (w AvailabilityWindow) IsValid() bool {
	return w.StartTime.Before(w.EndTime)
}

// BookedInterval is the time span occupied by an existing appointment.
// An appointment occupies every slot s with s >= StartTime && s < EndTime
// (half-open interval).
type BookedInterval struct {
	StaffID   int64
	Date      CalendarDate
	StartTime TimeOfDay
	EndTime   TimeOfDay
	Status    AppointmentStatus
}

// IsActive reports whether the interval still blocks its slots.
// Cancelled and no-show appointments do not.
func (b BookedInterval) IsActive() bool {
	return b.Status != StatusCancelledByClient &&
		b.Status != StatusCancelledBySalon &&
		b.Status != StatusNoShow
}
