package domain

// SalonService represents a bookable salon service from the catalog.
// The catalog is owned by salon administration; the booking core only
// reads it to derive appointment duration and denormalized price data.
type SalonService struct {
	ID              int64
	Name            string
	DurationMinutes int
	Price           float64
	Active          bool
}
