package domain

type Flight struct {
	ID          int64   `json:"flightId"`
	FromCity    City    `json:"fromCity" binding:"required,city"`
	ToCity      City    `json:"toCity" binding:"required,city"`
	FlightDate  Date    `json:"flightDate"`
	Duration    float64 `json:"duration"`
	MaxCapacity int     `json:"maxCapacity"`
}
