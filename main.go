package main

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"github.com/arjunrc143/Interconnected-Flights/business/flights"
	"github.com/arjunrc143/Interconnected-Flights/business/routes"
	"github.com/arjunrc143/Interconnected-Flights/business/schedule"
	"github.com/arjunrc143/Interconnected-Flights/config"
	"github.com/arjunrc143/Interconnected-Flights/ryanair"
	"github.com/arjunrc143/Interconnected-Flights/web"
	"github.com/labstack/echo/v4"
	"golang.org/x/time/rate"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	cfg, err := config.Load(cmp.Or(os.Getenv("FLIGHTS_CONFIG"), "config.yml"))
	if err != nil {
		panic(err)
	}

	clientOpts := []ryanair.ClientOption{
		ryanair.WithHttpClient(&http.Client{Timeout: time.Second * 30}),
		ryanair.WithRateLimiter(rate.NewLimiter(rate.Limit(20), 20)),
	}

	if cfg.Ryanair.RoutesUrl != "" {
		clientOpts = append(clientOpts, ryanair.WithRoutesBaseUrl(cfg.Ryanair.RoutesUrl))
	}

	if cfg.Ryanair.SchedulesUrl != "" {
		clientOpts = append(clientOpts, ryanair.WithSchedulesBaseUrl(cfg.Ryanair.SchedulesUrl))
	}

	client := ryanair.NewClient(clientOpts...)

	routeSearch := routes.NewSearch(client, cfg.Ryanair.Operator)
	scheduleSearch := schedule.NewSearch(client)
	flightSearch := flights.NewSearch(routeSearch, scheduleSearch)

	e := echo.New()
	e.HideBanner = true
	e.JSONSerializer = web.JSONSerializer{}
	e.Validator = web.NewValidator()
	e.Use(
		web.ErrorLogAndMaskMiddleware(slog.Default()),
		web.NoCacheOnErrorMiddleware(),
	)

	{
		group := e.Group("/flights")

		fh := web.NewFlightsHandler(flightSearch)
		group.GET("/interconnections", fh.Interconnections)
	}

	if err := run(ctx, e, cfg.Server.Port); err != nil {
		panic(err)
	}
}

func run(ctx context.Context, e *echo.Echo, port int) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	go func() {
		<-ctx.Done()
		if err := e.Shutdown(context.Background()); err != nil {
			slog.Error("error shutting down the echo server", slog.String("err", err.Error()))
		}
	}()

	if err := e.Start(fmt.Sprintf(":%d", port)); err != nil {
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}

		return err
	}

	return nil
}
