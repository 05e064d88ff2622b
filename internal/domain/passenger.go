package domain

type Passenger struct {
	ID    int64  `json:"passengerId"`
	Name  string `json:"name"`
	Email string `json:"email,omitempty" binding:"omitempty,email"`
}
