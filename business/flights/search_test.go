package flights

import (
	"context"
	"errors"
	"github.com/arjunrc143/Interconnected-Flights/business/schedule"
	"github.com/arjunrc143/Interconnected-Flights/ryanair"
	"github.com/arjunrc143/Interconnected-Flights/xtime"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"sync"
	"testing"
)

type fakeRoutesRepo struct {
	routes []ryanair.Route
	err    error
	calls  int
}

func (f *fakeRoutesRepo) AllOperableRoutes(context.Context) ([]ryanair.Route, error) {
	f.calls++
	return f.routes, f.err
}

type fakeScheduleRepo struct {
	mtx       sync.Mutex
	instances map[string][]schedule.FlightInstance
	err       error
	calls     int
}

func (f *fakeScheduleRepo) Expand(_ context.Context, origin, destination string, _, _ xtime.LocalDateTime) ([]schedule.FlightInstance, error) {
	f.mtx.Lock()
	defer f.mtx.Unlock()

	f.calls++

	if f.err != nil {
		return nil, f.err
	}

	return f.instances[origin+"-"+destination], nil
}

func route(from, to string) ryanair.Route {
	return ryanair.Route{
		AirportFrom:   from,
		AirportTo:     to,
		NewRoute:      true,
		SeasonalRoute: true,
		Operator:      "RYANAIR",
		Group:         "CITY",
	}
}

func dummyRoutes() []ryanair.Route {
	return []ryanair.Route{
		route("DUB", "WRO"),
		route("STN", "WRO"),
		route("DUB", "STN"),
		route("DUB", "COK"),
		route("BER", "PRG"),
	}
}

func instance(departure, arrival string) schedule.FlightInstance {
	return schedule.FlightInstance{
		Number:    1,
		Departure: xtime.MustParseLocalDateTime(departure),
		Arrival:   xtime.MustParseLocalDateTime(arrival),
	}
}

func TestFind_Direct(t *testing.T) {
	instances := []schedule.FlightInstance{
		instance("2023-03-01T16:00", "2023-03-01T18:00"),
		instance("2023-03-01T12:00", "2023-03-01T13:00"),
	}

	s := NewSearch(
		&fakeRoutesRepo{routes: dummyRoutes()},
		&fakeScheduleRepo{instances: map[string][]schedule.FlightInstance{
			"DUB-WRO": instances,
			"DUB-STN": instances,
			"STN-WRO": instances,
		}},
	)

	details, err := s.Find(
		context.Background(),
		"DUB", "WRO",
		xtime.MustParseLocalDateTime("2023-03-01T07:00"),
		xtime.MustParseLocalDateTime("2023-03-01T07:00"),
	)

	require.NoError(t, err)
	require.Len(t, details, 2)

	assert.Equal(t, NewFlightDetails(Leg{
		DepartureAirport:  "DUB",
		ArrivalAirport:    "WRO",
		DepartureDateTime: xtime.MustParseLocalDateTime("2023-03-01T16:00"),
		ArrivalDateTime:   xtime.MustParseLocalDateTime("2023-03-01T18:00"),
	}), details[0])
	assert.Equal(t, NewFlightDetails(Leg{
		DepartureAirport:  "DUB",
		ArrivalAirport:    "WRO",
		DepartureDateTime: xtime.MustParseLocalDateTime("2023-03-01T12:00"),
		ArrivalDateTime:   xtime.MustParseLocalDateTime("2023-03-01T13:00"),
	}), details[1])
	assert.Equal(t, 0, details[0].Stops)
}

func TestFind_RejectsDepartureAfterArrival(t *testing.T) {
	routesRepo := &fakeRoutesRepo{routes: dummyRoutes()}
	scheduleRepo := &fakeScheduleRepo{}
	s := NewSearch(routesRepo, scheduleRepo)

	_, err := s.Find(
		context.Background(),
		"DUB", "WRO",
		xtime.MustParseLocalDateTime("2023-03-01T07:00"),
		xtime.MustParseLocalDateTime("2020-03-01T07:00"),
	)

	assert.ErrorIs(t, err, ErrTravelDates)
	assert.Zero(t, routesRepo.calls)
	assert.Zero(t, scheduleRepo.calls)
}

func TestFind_Interconnection(t *testing.T) {
	s := NewSearch(
		&fakeRoutesRepo{routes: dummyRoutes()},
		&fakeScheduleRepo{instances: map[string][]schedule.FlightInstance{
			"DUB-STN": {instance("2023-03-02T16:00", "2023-03-02T18:00")},
			"STN-WRO": {instance("2023-03-02T19:00", "2023-03-02T21:00")},
		}},
	)

	details, err := s.Find(
		context.Background(),
		"DUB", "WRO",
		xtime.MustParseLocalDateTime("2023-03-01T07:00"),
		xtime.MustParseLocalDateTime("2023-03-03T07:00"),
	)

	require.NoError(t, err)
	require.Len(t, details, 1)
	assert.Equal(t, 1, details[0].Stops)
	assert.Equal(t, []Leg{
		{
			DepartureAirport:  "DUB",
			ArrivalAirport:    "STN",
			DepartureDateTime: xtime.MustParseLocalDateTime("2023-03-02T16:00"),
			ArrivalDateTime:   xtime.MustParseLocalDateTime("2023-03-02T18:00"),
		},
		{
			DepartureAirport:  "STN",
			ArrivalAirport:    "WRO",
			DepartureDateTime: xtime.MustParseLocalDateTime("2023-03-02T19:00"),
			ArrivalDateTime:   xtime.MustParseLocalDateTime("2023-03-02T21:00"),
		},
	}, details[0].Legs)
}

func TestFind_LayoverBoundsAreExclusive(t *testing.T) {
	find := func(secondLegDeparture string) []FlightDetails {
		s := NewSearch(
			&fakeRoutesRepo{routes: dummyRoutes()},
			&fakeScheduleRepo{instances: map[string][]schedule.FlightInstance{
				"DUB-STN": {instance("2023-03-02T16:00", "2023-03-02T18:00")},
				"STN-WRO": {instance(secondLegDeparture, "2023-03-02T23:00")},
			}},
		)

		details, err := s.Find(
			context.Background(),
			"DUB", "WRO",
			xtime.MustParseLocalDateTime("2023-03-01T07:00"),
			xtime.MustParseLocalDateTime("2023-03-03T07:00"),
		)
		require.NoError(t, err)

		return details
	}

	// departure at the exact arrival instant
	assert.Empty(t, find("2023-03-02T18:00"))
	// departure at exactly arrival + 2h
	assert.Empty(t, find("2023-03-02T20:00"))
	// strictly inside the layover window
	assert.Len(t, find("2023-03-02T19:59"), 1)
	assert.Len(t, find("2023-03-02T18:01"), 1)
}

func TestFind_ConnectingAirportMustMatch(t *testing.T) {
	// second leg departs BGY, first leg arrives STN: no join even though the
	// times line up
	s := NewSearch(
		&fakeRoutesRepo{routes: []ryanair.Route{
			route("DUB", "STN"),
			route("DUB", "BGY"),
			route("BGY", "WRO"),
		}},
		&fakeScheduleRepo{instances: map[string][]schedule.FlightInstance{
			"DUB-STN": {instance("2023-03-02T16:00", "2023-03-02T18:00")},
			"BGY-WRO": {instance("2023-03-02T19:00", "2023-03-02T21:00")},
		}},
	)

	details, err := s.Find(
		context.Background(),
		"DUB", "WRO",
		xtime.MustParseLocalDateTime("2023-03-01T07:00"),
		xtime.MustParseLocalDateTime("2023-03-03T07:00"),
	)

	require.NoError(t, err)

	for _, fd := range details {
		assert.Equal(t, fd.Legs[0].ArrivalAirport, fd.Legs[1].DepartureAirport)
	}
}

func TestFind_DirectEmptyWithoutDirectRoute(t *testing.T) {
	// DUB reaches WRO only via STN; no direct itinerary may appear
	s := NewSearch(
		&fakeRoutesRepo{routes: []ryanair.Route{
			route("STN", "WRO"),
			route("DUB", "STN"),
		}},
		&fakeScheduleRepo{instances: map[string][]schedule.FlightInstance{
			"DUB-STN": {instance("2023-03-02T16:00", "2023-03-02T18:00")},
			"STN-WRO": {instance("2023-03-02T19:00", "2023-03-02T21:00")},
		}},
	)

	details, err := s.Find(
		context.Background(),
		"DUB", "WRO",
		xtime.MustParseLocalDateTime("2023-03-01T07:00"),
		xtime.MustParseLocalDateTime("2023-03-03T07:00"),
	)

	require.NoError(t, err)
	require.Len(t, details, 1)
	assert.Equal(t, 1, details[0].Stops)
}

func TestFind_FirstDirectRouteWins(t *testing.T) {
	// duplicate direct routes: only the first is expanded
	scheduleRepo := &fakeScheduleRepo{instances: map[string][]schedule.FlightInstance{
		"DUB-WRO": {instance("2023-03-02T16:00", "2023-03-02T18:00")},
	}}
	s := NewSearch(
		&fakeRoutesRepo{routes: []ryanair.Route{
			route("DUB", "WRO"),
			route("DUB", "WRO"),
		}},
		scheduleRepo,
	)

	details, err := s.Find(
		context.Background(),
		"DUB", "WRO",
		xtime.MustParseLocalDateTime("2023-03-01T07:00"),
		xtime.MustParseLocalDateTime("2023-03-03T07:00"),
	)

	require.NoError(t, err)
	assert.Len(t, details, 1)
	assert.Equal(t, 1, scheduleRepo.calls)
}

func TestFind_PropagatesRoutesError(t *testing.T) {
	expectedErr := errors.New("routes unavailable")
	s := NewSearch(&fakeRoutesRepo{err: expectedErr}, &fakeScheduleRepo{})

	_, err := s.Find(
		context.Background(),
		"DUB", "WRO",
		xtime.MustParseLocalDateTime("2023-03-01T07:00"),
		xtime.MustParseLocalDateTime("2023-03-03T07:00"),
	)

	assert.ErrorIs(t, err, expectedErr)
}

func TestNewFlightDetails(t *testing.T) {
	leg := Leg{DepartureAirport: "DUB", ArrivalAirport: "WRO"}

	assert.Equal(t, 0, NewFlightDetails(leg).Stops)
	assert.Equal(t, 1, NewFlightDetails(leg, leg).Stops)
}
