package routes

import (
	"context"
	"github.com/arjunrc143/Interconnected-Flights/ryanair"
	"github.com/arjunrc143/Interconnected-Flights/xiter"
	"slices"
)

type routesClient interface {
	Routes(ctx context.Context) ([]ryanair.Route, error)
}

type Search struct {
	c        routesClient
	operator string
}

func NewSearch(c routesClient, operator string) *Search {
	return &Search{
		c:        c,
		operator: operator,
	}
}

// AllOperableRoutes returns the catalog reduced to routes the accepted
// operator flies itself: no pre-connected products, catalog order preserved.
func (s *Search) AllOperableRoutes(ctx context.Context) ([]ryanair.Route, error) {
	all, err := s.c.Routes(ctx)
	if err != nil {
		return nil, err
	}

	return slices.Collect(xiter.Filter(
		xiter.All(all),
		func(r ryanair.Route) bool {
			return r.ConnectingAirport == nil && r.Operator == s.operator
		},
	)), nil
}

func SelectByOrigin(routes []ryanair.Route, airport string) []ryanair.Route {
	return slices.Collect(xiter.Filter(
		xiter.All(routes),
		func(r ryanair.Route) bool {
			return r.AirportFrom == airport
		},
	))
}

func SelectByDestination(routes []ryanair.Route, airport string) []ryanair.Route {
	return slices.Collect(xiter.Filter(
		xiter.All(routes),
		func(r ryanair.Route) bool {
			return r.AirportTo == airport
		},
	))
}
