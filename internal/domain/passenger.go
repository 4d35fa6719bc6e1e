package domain

// Passenger is created once per booking and never updated afterwards.
// Age, gender and email are optional and stored as given.
type Passenger struct {
	ID       int64   `json:"passenger_id"`
	FullName string  `json:"full_name"`
	Age      *int    `json:"age,omitempty"`
	Gender   *string `json:"gender,omitempty"`
	Email    *string `json:"email,omitempty"`
}
