package flights

import (
	"context"
	"errors"
	"github.com/arjunrc143/Interconnected-Flights/business/routes"
	"github.com/arjunrc143/Interconnected-Flights/business/schedule"
	"github.com/arjunrc143/Interconnected-Flights/common"
	"github.com/arjunrc143/Interconnected-Flights/ryanair"
	"github.com/arjunrc143/Interconnected-Flights/xiter"
	"github.com/arjunrc143/Interconnected-Flights/xtime"
	"golang.org/x/sync/errgroup"
	"slices"
	"time"
)

// maxLayover is the fixed cap on the gap between a first leg's arrival and
// the second leg's departure.
const maxLayover = time.Hour * 2

var ErrTravelDates = errors.New("departure date is after arrival date")

type routesRepo interface {
	AllOperableRoutes(ctx context.Context) ([]ryanair.Route, error)
}

type scheduleRepo interface {
	Expand(ctx context.Context, origin, destination string, from, to xtime.LocalDateTime) ([]schedule.FlightInstance, error)
}

type Search struct {
	routes   routesRepo
	schedule scheduleRepo
}

func NewSearch(routes routesRepo, schedule scheduleRepo) *Search {
	return &Search{
		routes:   routes,
		schedule: schedule,
	}
}

// Find returns every direct and one-stop itinerary from departure to arrival
// within [from, to], direct itineraries first.
func (s *Search) Find(ctx context.Context, departure, arrival string, from, to xtime.LocalDateTime) ([]FlightDetails, error) {
	if from.Compare(to) > 0 {
		return nil, ErrTravelDates
	}

	all, err := s.routes.AllOperableRoutes(ctx)
	if err != nil {
		return nil, err
	}

	direct, err := s.findDirect(ctx, departure, arrival, from, to, all)
	if err != nil {
		return nil, err
	}

	interconnected, err := s.findInterconnections(ctx, departure, arrival, from, to, all)
	if err != nil {
		return nil, err
	}

	return slices.Concat(direct, interconnected), nil
}

// findDirect expands the first direct route between the two airports, if any,
// into single-leg itineraries.
func (s *Search) findDirect(ctx context.Context, departure, arrival string, from, to xtime.LocalDateTime, all []ryanair.Route) ([]FlightDetails, error) {
	idx := slices.IndexFunc(all, func(r ryanair.Route) bool {
		return r.AirportFrom == departure && r.AirportTo == arrival
	})

	if idx == -1 {
		return nil, nil
	}

	legs, err := s.expandRoute(ctx, all[idx], from, to)
	if err != nil {
		return nil, err
	}

	details := make([]FlightDetails, 0, len(legs))
	for _, leg := range legs {
		details = append(details, NewFlightDetails(leg))
	}

	return details, nil
}

// findInterconnections joins legs departing the origin with legs arriving at
// the destination through a shared connecting airport. Both route sets are
// narrowed to routes that can actually meet at a connecting point before any
// timetable is fetched.
func (s *Search) findInterconnections(ctx context.Context, departure, arrival string, from, to xtime.LocalDateTime, all []ryanair.Route) ([]FlightDetails, error) {
	fromOrigin := routes.SelectByOrigin(all, departure)
	toDestination := routes.SelectByDestination(all, arrival)

	reachableVia := common.CollectSet(xiter.Map(
		xiter.All(toDestination),
		func(r ryanair.Route) string { return r.AirportFrom },
	))

	firstLegRoutes := slices.Collect(xiter.Filter(
		xiter.All(fromOrigin),
		func(r ryanair.Route) bool { return reachableVia.Contains(r.AirportTo) },
	))

	possibleFirstLegs, err := s.expandRoutes(ctx, firstLegRoutes, from, to)
	if err != nil {
		return nil, err
	}

	firstLegArrivals := common.CollectSet(xiter.Map(
		xiter.All(firstLegRoutes),
		func(r ryanair.Route) string { return r.AirportTo },
	))

	secondLegRoutes := slices.Collect(xiter.Filter(
		xiter.All(toDestination),
		func(r ryanair.Route) bool { return firstLegArrivals.Contains(r.AirportFrom) },
	))

	possibleSecondLegs, err := s.expandRoutes(ctx, secondLegRoutes, from, to)
	if err != nil {
		return nil, err
	}

	var details []FlightDetails
	for _, firstLeg := range possibleFirstLegs {
		latestDeparture := firstLeg.ArrivalDateTime.Add(maxLayover)

		for _, secondLeg := range possibleSecondLegs {
			if secondLeg.DepartureAirport != firstLeg.ArrivalAirport {
				continue
			}

			// both bounds strict: no zero-minute connections, no departure
			// at exactly the layover cap
			if firstLeg.ArrivalDateTime.Compare(secondLeg.DepartureDateTime) < 0 && secondLeg.DepartureDateTime.Compare(latestDeparture) < 0 {
				details = append(details, NewFlightDetails(firstLeg, secondLeg))
			}
		}
	}

	return details, nil
}

// expandRoutes expands each route concurrently, preserving route order in the
// flattened result.
func (s *Search) expandRoutes(ctx context.Context, rs []ryanair.Route, from, to xtime.LocalDateTime) ([]Leg, error) {
	results := make([][]Leg, len(rs))

	g, gctx := errgroup.WithContext(ctx)
	for i, r := range rs {
		g.Go(func() error {
			legs, err := s.expandRoute(gctx, r, from, to)
			if err != nil {
				return err
			}

			results[i] = legs
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return slices.Concat(results...), nil
}

func (s *Search) expandRoute(ctx context.Context, r ryanair.Route, from, to xtime.LocalDateTime) ([]Leg, error) {
	instances, err := s.schedule.Expand(ctx, r.AirportFrom, r.AirportTo, from, to)
	if err != nil {
		return nil, err
	}

	legs := make([]Leg, 0, len(instances))
	for _, instance := range instances {
		legs = append(legs, Leg{
			DepartureAirport:  r.AirportFrom,
			ArrivalAirport:    r.AirportTo,
			DepartureDateTime: instance.Departure,
			ArrivalDateTime:   instance.Arrival,
		})
	}

	return legs, nil
}
