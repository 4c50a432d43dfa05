package ryanair

import (
	"github.com/arjunrc143/Interconnected-Flights/xtime"
)

// Route is one entry of the route catalog. ConnectingAirport is set on
// already-connected products sold by the carrier itself.
type Route struct {
	AirportFrom       string  `json:"airportFrom"`
	AirportTo         string  `json:"airportTo"`
	ConnectingAirport *string `json:"connectingAirport"`
	NewRoute          bool    `json:"newRoute"`
	SeasonalRoute     bool    `json:"seasonalRoute"`
	Operator          string  `json:"operator"`
	Group             string  `json:"group"`
}

// Schedule is the timetable of a single (origin, destination, year, month).
// Days are unique by day-of-month; the year is implied by the request.
type Schedule struct {
	Month int           `json:"month"`
	Days  []DaySchedule `json:"days"`
}

type DaySchedule struct {
	Day     int      `json:"day"`
	Flights []Flight `json:"flights"`
}

type Flight struct {
	Number        int             `json:"number"`
	DepartureTime xtime.ClockTime `json:"departureTime"`
	ArrivalTime   xtime.ClockTime `json:"arrivalTime"`
}
