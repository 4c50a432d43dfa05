package model

import (
	"github.com/arjunrc143/Interconnected-Flights/business/flights"
	"github.com/arjunrc143/Interconnected-Flights/xtime"
)

type InterconnectionsRequest struct {
	Departure         string `query:"departure" validate:"required"`
	Arrival           string `query:"arrival" validate:"required"`
	DepartureDateTime string `query:"departureDateTime" validate:"required"`
	ArrivalDateTime   string `query:"arrivalDateTime" validate:"required"`
}

type Leg struct {
	DepartureAirport  string              `json:"departureAirport"`
	ArrivalAirport    string              `json:"arrivalAirport"`
	DepartureDateTime xtime.LocalDateTime `json:"departureDateTime"`
	ArrivalDateTime   xtime.LocalDateTime `json:"arrivalDateTime"`
}

type FlightDetails struct {
	Stops int   `json:"stops"`
	Legs  []Leg `json:"legs"`
}

func FlightDetailsFromBusiness(fd flights.FlightDetails) FlightDetails {
	legs := make([]Leg, 0, len(fd.Legs))
	for _, leg := range fd.Legs {
		legs = append(legs, Leg{
			DepartureAirport:  leg.DepartureAirport,
			ArrivalAirport:    leg.ArrivalAirport,
			DepartureDateTime: leg.DepartureDateTime,
			ArrivalDateTime:   leg.ArrivalDateTime,
		})
	}

	return FlightDetails{
		Stops: fd.Stops,
		Legs:  legs,
	}
}
