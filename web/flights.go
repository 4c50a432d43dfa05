package web

import (
	"context"
	"errors"
	"github.com/arjunrc143/Interconnected-Flights/business/flights"
	"github.com/arjunrc143/Interconnected-Flights/web/model"
	"github.com/arjunrc143/Interconnected-Flights/xtime"
	"github.com/labstack/echo/v4"
	"net/http"
)

type flightsSearch interface {
	Find(ctx context.Context, departure, arrival string, from, to xtime.LocalDateTime) ([]flights.FlightDetails, error)
}

type FlightsHandler struct {
	search flightsSearch
}

func NewFlightsHandler(search flightsSearch) *FlightsHandler {
	return &FlightsHandler{search: search}
}

func (fh *FlightsHandler) Interconnections(c echo.Context) error {
	ctx := c.Request().Context()

	var req model.InterconnectionsRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err)
	}

	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	from, err := xtime.ParseLocalDateTime(req.DepartureDateTime)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid departureDateTime, expected "+xtime.Layout)
	}

	to, err := xtime.ParseLocalDateTime(req.ArrivalDateTime)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid arrivalDateTime, expected "+xtime.Layout)
	}

	details, err := fh.search.Find(ctx, req.Departure, req.Arrival, from, to)
	if err != nil {
		if errors.Is(err, flights.ErrTravelDates) {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}

		if errors.Is(err, context.DeadlineExceeded) {
			return echo.NewHTTPError(http.StatusRequestTimeout, err)
		}

		return echo.NewHTTPError(http.StatusBadGateway, "flight data retrieval failed").SetInternal(err)
	}

	resp := make([]model.FlightDetails, 0, len(details))
	for _, fd := range details {
		resp = append(resp, model.FlightDetailsFromBusiness(fd))
	}

	return c.JSON(http.StatusOK, resp)
}
