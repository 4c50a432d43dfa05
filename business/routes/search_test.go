package routes

import (
	"context"
	"errors"
	"github.com/arjunrc143/Interconnected-Flights/ryanair"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
)

type fakeRoutesClient struct {
	routes []ryanair.Route
	err    error
}

func (f *fakeRoutesClient) Routes(context.Context) ([]ryanair.Route, error) {
	return f.routes, f.err
}

func TestAllOperableRoutes(t *testing.T) {
	via := "STN"
	c := &fakeRoutesClient{routes: []ryanair.Route{
		{AirportFrom: "DUB", AirportTo: "WRO", Operator: "RYANAIR"},
		{AirportFrom: "DUB", AirportTo: "BGY", Operator: "LAUDA"},
		{AirportFrom: "DUB", AirportTo: "KRK", ConnectingAirport: &via, Operator: "RYANAIR"},
		{AirportFrom: "STN", AirportTo: "WRO", Operator: "RYANAIR"},
	}}

	s := NewSearch(c, "RYANAIR")
	operable, err := s.AllOperableRoutes(context.Background())

	require.NoError(t, err)
	require.Len(t, operable, 2)
	assert.Equal(t, "DUB", operable[0].AirportFrom)
	assert.Equal(t, "WRO", operable[0].AirportTo)
	assert.Equal(t, "STN", operable[1].AirportFrom)
}

func TestAllOperableRoutes_PropagatesError(t *testing.T) {
	expectedErr := errors.New("catalog unavailable")

	s := NewSearch(&fakeRoutesClient{err: expectedErr}, "RYANAIR")
	_, err := s.AllOperableRoutes(context.Background())

	assert.ErrorIs(t, err, expectedErr)
}

func TestSelectByOrigin(t *testing.T) {
	all := []ryanair.Route{
		{AirportFrom: "DUB", AirportTo: "WRO"},
		{AirportFrom: "STN", AirportTo: "WRO"},
		{AirportFrom: "DUB", AirportTo: "STN"},
	}

	selected := SelectByOrigin(all, "DUB")
	require.Len(t, selected, 2)
	assert.Equal(t, "WRO", selected[0].AirportTo)
	assert.Equal(t, "STN", selected[1].AirportTo)

	assert.Empty(t, SelectByOrigin(all, "BER"))
}

func TestSelectByDestination(t *testing.T) {
	all := []ryanair.Route{
		{AirportFrom: "DUB", AirportTo: "WRO"},
		{AirportFrom: "STN", AirportTo: "WRO"},
		{AirportFrom: "DUB", AirportTo: "STN"},
	}

	selected := SelectByDestination(all, "WRO")
	require.Len(t, selected, 2)
	assert.Equal(t, "DUB", selected[0].AirportFrom)
	assert.Equal(t, "STN", selected[1].AirportFrom)
}
