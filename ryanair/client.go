package ryanair

import (
	"cmp"
	"context"
	"encoding/json"
	"fmt"
	"golang.org/x/time/rate"
	"io"
	"net/http"
	"net/url"
	"time"
)

type responseStatusErr struct {
	StatusCode int
	Status     string
}

func (e responseStatusErr) Error() string {
	return e.Status
}

type Client struct {
	httpClient       *http.Client
	limiter          *rate.Limiter
	routesBaseUrl    string
	schedulesBaseUrl string
}

type ClientOption func(c *Client)

func WithHttpClient(httpClient *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

func WithRateLimiter(limiter *rate.Limiter) ClientOption {
	return func(c *Client) {
		c.limiter = limiter
	}
}

func WithRoutesBaseUrl(baseUrl string) ClientOption {
	return func(c *Client) {
		c.routesBaseUrl = baseUrl
	}
}

func WithSchedulesBaseUrl(baseUrl string) ClientOption {
	return func(c *Client) {
		c.schedulesBaseUrl = baseUrl
	}
}

func NewClient(opts ...ClientOption) *Client {
	c := new(Client)

	for _, opt := range opts {
		opt(c)
	}

	c.httpClient = cmp.Or(c.httpClient, http.DefaultClient)
	c.routesBaseUrl = cmp.Or(c.routesBaseUrl, "https://services-api.ryanair.com/locate/3/routes")
	c.schedulesBaseUrl = cmp.Or(c.schedulesBaseUrl, "https://services-api.ryanair.com/timtbl/3/schedules")

	return c
}

// Routes fetches the complete route catalog in a single query.
func (c *Client) Routes(ctx context.Context) ([]Route, error) {
	return doRequest[[]Route](ctx, c, c.routesBaseUrl)
}

// Schedule fetches the timetable of one route for one month.
func (c *Client) Schedule(ctx context.Context, origin, destination string, year int, month time.Month) (Schedule, error) {
	surl := fmt.Sprintf(
		"%s/%s/%s/years/%d/months/%d",
		c.schedulesBaseUrl,
		url.PathEscape(origin),
		url.PathEscape(destination),
		year,
		int(month),
	)

	return doRequest[Schedule](ctx, c, surl)
}

func doRequest[T any](ctx context.Context, c *Client, surl string) (T, error) {
	var def T

	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return def, err
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, surl, nil)
	if err != nil {
		return def, err
	}

	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return def, err
	}

	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		_, _ = io.Copy(io.Discard, resp.Body)
		return def, responseStatusErr{
			StatusCode: resp.StatusCode,
			Status:     resp.Status,
		}
	}

	var res T
	if err = json.NewDecoder(resp.Body).Decode(&res); err != nil {
		return def, fmt.Errorf("failed to parse response: %w", err)
	}

	return res, nil
}
