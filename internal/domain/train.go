package domain

// Train is read-only reference data fetched from the backend. The client
// never mutates it.
type Train struct {
	ID          string
	Name        string
	Type        string
	FromStation string
	ToStation   string
	Seats       int
}
