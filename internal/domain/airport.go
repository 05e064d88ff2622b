package domain

type Airport struct {
	Name          string `json:"airportName" binding:"required"`
	City          City   `json:"city" binding:"required,city"`
	NoOfTerminals int    `json:"noOfTerminals"`
}
