package schedule

import (
	"context"
	"github.com/arjunrc143/Interconnected-Flights/ryanair"
	"github.com/arjunrc143/Interconnected-Flights/xtime"
	"golang.org/x/sync/errgroup"
	"slices"
	"time"
)

type scheduleClient interface {
	Schedule(ctx context.Context, origin, destination string, year int, month time.Month) (ryanair.Schedule, error)
}

// FlightInstance is a timetable entry resolved against a concrete day.
// Arrival sits on the same calendar day as departure; the timetable carries
// no overnight flights.
type FlightInstance struct {
	Number    int
	Departure xtime.LocalDateTime
	Arrival   xtime.LocalDateTime
}

type Search struct {
	c            scheduleClient
	inclusiveEnd bool
	parallelism  int
}

type SearchOption func(s *Search)

// WithInclusiveEnd widens the end-exclusive day bounds by one day so that
// flights on the exact last day of a window are included.
func WithInclusiveEnd() SearchOption {
	return func(s *Search) {
		s.inclusiveEnd = true
	}
}

func WithParallelism(parallelism int) SearchOption {
	return func(s *Search) {
		s.parallelism = parallelism
	}
}

func NewSearch(c scheduleClient, opts ...SearchOption) *Search {
	s := &Search{c: c, parallelism: 4}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// monthRange is one timetable query: a single month with a half-open
// day-of-month interval [fromDay, toDay).
type monthRange struct {
	year    int
	month   time.Month
	fromDay int
	toDay   int
}

// Expand resolves the timetable of (origin, destination) into concrete flight
// instances for every day of [from, to]. The window is partitioned along year
// and month boundaries first; the independent per-month fetches then run
// concurrently, with results re-sequenced into partition order.
// Valid only for from <= to.
func (s *Search) Expand(ctx context.Context, origin, destination string, from, to xtime.LocalDateTime) ([]FlightInstance, error) {
	ranges := s.partition(from, to)
	results := make([][]FlightInstance, len(ranges))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.parallelism)

	for i, mr := range ranges {
		g.Go(func() error {
			instances, err := s.expandMonth(gctx, origin, destination, mr)
			if err != nil {
				return err
			}

			results[i] = instances
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return slices.Concat(results...), nil
}

func (s *Search) partition(from, to xtime.LocalDateTime) []monthRange {
	endPad := 0
	if s.inclusiveEnd {
		endPad = 1
	}

	return compactRanges(partitionYears(from, to, endPad))
}

// partitionYears splits the window at year boundaries: the departing year up
// to Dec 31, the arriving year from Jan 1, and every whole year strictly
// between the two.
func partitionYears(from, to xtime.LocalDateTime, endPad int) []monthRange {
	if from.Year == to.Year {
		return partitionMonths(from.Year, from.Month, from.Day, to.Month, to.Day, endPad)
	}

	ranges := partitionMonths(from.Year, from.Month, from.Day, time.December, 31, endPad)
	ranges = append(ranges, partitionMonths(to.Year, time.January, 1, to.Month, to.Day, endPad)...)

	for year := from.Year + 1; year < to.Year; year++ {
		ranges = append(ranges, partitionMonths(year, time.January, 1, time.December, 31, endPad)...)
	}

	return ranges
}

// partitionMonths splits one in-year window at month boundaries: the
// departing month up to (but excluding) its last day, the arriving month from
// day 1 up to (but excluding) the window's end day, and every whole month
// strictly between with the inclusive-safe full range [1, 32).
func partitionMonths(year int, fromMonth time.Month, fromDay int, toMonth time.Month, toDay, endPad int) []monthRange {
	if fromMonth == toMonth {
		return []monthRange{{year, fromMonth, fromDay, toDay + endPad}}
	}

	ranges := []monthRange{
		{year, fromMonth, fromDay, lastDayOfMonth(year, fromMonth) + endPad},
		{year, toMonth, 1, toDay + endPad},
	}

	for month := fromMonth + 1; month < toMonth; month++ {
		ranges = append(ranges, monthRange{year, month, 1, 32})
	}

	return ranges
}

// compactRanges drops zero-width day ranges so no fetch is made for them.
func compactRanges(ranges []monthRange) []monthRange {
	result := make([]monthRange, 0, len(ranges))
	for _, mr := range ranges {
		if mr.fromDay < mr.toDay {
			result = append(result, mr)
		}
	}

	return result
}

func (s *Search) expandMonth(ctx context.Context, origin, destination string, mr monthRange) ([]FlightInstance, error) {
	sched, err := s.c.Schedule(ctx, origin, destination, mr.year, mr.month)
	if err != nil {
		return nil, err
	}

	var instances []FlightInstance
	for _, day := range sched.Days {
		if day.Day < mr.fromDay || day.Day >= mr.toDay {
			continue
		}

		for _, f := range day.Flights {
			instances = append(instances, FlightInstance{
				Number:    f.Number,
				Departure: f.DepartureTime.Resolve(mr.year, mr.month, day.Day),
				Arrival:   f.ArrivalTime.Resolve(mr.year, mr.month, day.Day),
			})
		}
	}

	return instances, nil
}

func lastDayOfMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
