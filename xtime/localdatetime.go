package xtime

import (
	"cmp"
	"encoding/json"
	"time"
)

// Layout is the wire format for date-times: local clock time, no zone, no seconds.
const Layout = "2006-01-02T15:04"

var ldtZero LocalDateTime

type LocalDateTime struct {
	Year   int
	Month  time.Month
	Day    int
	Hour   int
	Minute int
}

func NewLocalDateTime(t time.Time) LocalDateTime {
	year, month, day := t.Date()
	hour, minute, _ := t.Clock()
	return LocalDateTime{year, month, day, hour, minute}
}

func ParseLocalDateTime(v string) (LocalDateTime, error) {
	t, err := time.Parse(Layout, v)
	return NewLocalDateTime(t), err
}

func MustParseLocalDateTime(v string) LocalDateTime {
	ldt, err := ParseLocalDateTime(v)
	if err != nil {
		panic(err)
	}

	return ldt
}

func (ldt LocalDateTime) String() string {
	return ldt.Time(nil).Format(Layout)
}

func (ldt LocalDateTime) Time(loc *time.Location) time.Time {
	return time.Date(ldt.Year, ldt.Month, ldt.Day, ldt.Hour, ldt.Minute, 0, 0, cmp.Or(loc, time.UTC))
}

func (ldt LocalDateTime) Date() (int, time.Month, int) {
	return ldt.Year, ldt.Month, ldt.Day
}

func (ldt LocalDateTime) Compare(other LocalDateTime) int {
	return ldt.Time(nil).Compare(other.Time(nil))
}

func (ldt LocalDateTime) Add(d time.Duration) LocalDateTime {
	return NewLocalDateTime(ldt.Time(nil).Add(d))
}

func (ldt LocalDateTime) IsZero() bool {
	return ldt == ldtZero
}

func (ldt *LocalDateTime) UnmarshalJSON(data []byte) error {
	var v string
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}

	var err error
	*ldt, err = ParseLocalDateTime(v)

	return err
}

func (ldt LocalDateTime) MarshalJSON() ([]byte, error) {
	return json.Marshal(ldt.String())
}
