package flights

import (
	"github.com/arjunrc143/Interconnected-Flights/xtime"
)

type Leg struct {
	DepartureAirport  string              `json:"departureAirport"`
	ArrivalAirport    string              `json:"arrivalAirport"`
	DepartureDateTime xtime.LocalDateTime `json:"departureDateTime"`
	ArrivalDateTime   xtime.LocalDateTime `json:"arrivalDateTime"`
}

// FlightDetails is one itinerary: a single direct leg or two legs joined at
// a connecting airport.
type FlightDetails struct {
	Stops int   `json:"stops"`
	Legs  []Leg `json:"legs"`
}

func NewFlightDetails(legs ...Leg) FlightDetails {
	return FlightDetails{
		Stops: len(legs) - 1,
		Legs:  legs,
	}
}
