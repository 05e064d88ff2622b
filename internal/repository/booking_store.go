package repository

import (
	"math"
	"sort"
	"sync"

	"github.com/Domenick1991/airportdesk/internal/domain"
)

const (
	BaseFare         = 3000
	FarePerBooking   = 50
	NoDirectDuration = -1
)

type AirportRepository interface {
	AddAirport(airport domain.Airport)
	LargestAirportName() (string, bool)
	PeopleAtAirportOnDate(date domain.Date, airportName string) int
	OriginAirportName(flightID int64) (string, bool)
}

type FlightRepository interface {
	AddFlight(flight domain.Flight)
	ShortestDirectDuration(from, to domain.City) (float64, bool)
	CalculateFare(flightID int64) int
	RevenueForFlight(flightID int64) int
}

type BookingRepository interface {
	AddPassenger(passenger domain.Passenger)
	GetPassenger(passengerID int64) (domain.Passenger, bool)
	BookTicket(flightID, passengerID int64) error
	CancelTicket(flightID, passengerID int64) error
	CountBookingsByPassenger(passengerID int64) int
	CalculateFare(flightID int64) int
}

// BookingStore keeps airports, flights, passengers and per-flight booking sets in memory.
// One mutex covers all four maps, so the capacity check and insert in BookTicket are atomic.
type BookingStore struct {
	mu         sync.RWMutex
	airports   map[string]domain.Airport
	flights    map[int64]domain.Flight
	passengers map[int64]domain.Passenger
	bookings   map[int64]map[int64]struct{}
}

func NewBookingStore() *BookingStore {
	return &BookingStore{
		airports:   make(map[string]domain.Airport),
		flights:    make(map[int64]domain.Flight),
		passengers: make(map[int64]domain.Passenger),
		bookings:   make(map[int64]map[int64]struct{}),
	}
}

func (s *BookingStore) AddAirport(airport domain.Airport) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.airports[airport.Name] = airport
}

func (s *BookingStore) AddFlight(flight domain.Flight) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.flights[flight.ID] = flight
}

func (s *BookingStore) AddPassenger(passenger domain.Passenger) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.passengers[passenger.ID] = passenger
}

func (s *BookingStore) GetPassenger(passengerID int64) (domain.Passenger, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.passengers[passengerID]
	return p, ok
}

// LargestAirportName returns the airport with the most terminals.
// Ties go to the lexicographically smallest name.
func (s *BookingStore) LargestAirportName() (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var (
		best  domain.Airport
		found bool
	)
	for _, a := range s.airports {
		if !found || a.NoOfTerminals > best.NoOfTerminals ||
			(a.NoOfTerminals == best.NoOfTerminals && a.Name < best.Name) {
			best = a
			found = true
		}
	}
	return best.Name, found
}

func (s *BookingStore) ShortestDirectDuration(from, to domain.City) (float64, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	shortest := math.Inf(1)
	found := false
	for _, f := range s.flights {
		if f.FromCity == from && f.ToCity == to && f.Duration < shortest {
			shortest = f.Duration
			found = true
		}
	}
	if !found {
		return NoDirectDuration, false
	}
	return shortest, true
}

// PeopleAtAirportOnDate counts booked passengers on every flight that departs
// from or arrives at the airport's city on date. Departures and arrivals are
// tallied separately, so a flight that starts and ends in that city counts twice.
func (s *BookingStore) PeopleAtAirportOnDate(date domain.Date, airportName string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	airport, ok := s.airports[airportName]
	if !ok {
		return 0
	}

	count := 0
	for id, f := range s.flights {
		if !f.FlightDate.Equal(date) {
			continue
		}
		if f.FromCity == airport.City {
			count += len(s.bookings[id])
		}
		if f.ToCity == airport.City {
			count += len(s.bookings[id])
		}
	}
	return count
}

// CalculateFare quotes the price for the next passenger. Unknown flights quote the base fare.
func (s *BookingStore) CalculateFare(flightID int64) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return BaseFare + FarePerBooking*len(s.bookings[flightID])
}

func (s *BookingStore) BookTicket(flightID, passengerID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	flight, ok := s.flights[flightID]
	if !ok {
		return domain.ErrFlightNotFound
	}
	if _, ok := s.passengers[passengerID]; !ok {
		return domain.ErrPassengerNotFound
	}

	booked := s.bookings[flightID]
	if len(booked) >= flight.MaxCapacity {
		return domain.ErrFlightFull
	}
	if _, ok := booked[passengerID]; ok {
		return domain.ErrAlreadyBooked
	}

	if booked == nil {
		booked = make(map[int64]struct{})
		s.bookings[flightID] = booked
	}
	booked[passengerID] = struct{}{}
	return nil
}

func (s *BookingStore) CancelTicket(flightID, passengerID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	booked, ok := s.bookings[flightID]
	if !ok {
		return domain.ErrNotBooked
	}
	if _, ok := booked[passengerID]; !ok {
		return domain.ErrNotBooked
	}
	delete(booked, passengerID)
	return nil
}

func (s *BookingStore) CountBookingsByPassenger(passengerID int64) int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	count := 0
	for _, booked := range s.bookings {
		if _, ok := booked[passengerID]; ok {
			count++
		}
	}
	return count
}

// OriginAirportName finds an airport in the flight's origin city. When several
// airports share the city the smallest name wins so repeated calls agree.
func (s *BookingStore) OriginAirportName(flightID int64) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	flight, ok := s.flights[flightID]
	if !ok {
		return "", false
	}

	names := make([]string, 0, len(s.airports))
	for name, a := range s.airports {
		if a.City == flight.FromCity {
			names = append(names, name)
		}
	}
	if len(names) == 0 {
		return "", false
	}
	sort.Strings(names)
	return names[0], true
}

// RevenueForFlight is n*3000 + n*(n-1)*50 for n booked passengers.
func (s *BookingStore) RevenueForFlight(flightID int64) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	n := len(s.bookings[flightID])
	return n*BaseFare + n*(n-1)*FarePerBooking
}

var (
	_ AirportRepository = (*BookingStore)(nil)
	_ FlightRepository  = (*BookingStore)(nil)
	_ BookingRepository = (*BookingStore)(nil)
)
