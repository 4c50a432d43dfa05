package xtime

import (
	"fmt"
	"time"
)

// ClockTime is a local HH:MM clock time with no date attached. It only
// becomes an absolute instant once resolved against a concrete day.
type ClockTime time.Duration

func ParseClockTime(v string) (ClockTime, error) {
	t, err := time.Parse("15:04", v)
	if err != nil {
		return ClockTime(0), err
	}

	hour, minute, _ := t.Clock()
	return ClockTime(time.Duration(hour)*time.Hour + time.Duration(minute)*time.Minute), nil
}

func MustParseClockTime(v string) ClockTime {
	ct, err := ParseClockTime(v)
	if err != nil {
		panic(err)
	}

	return ct
}

func (ct ClockTime) Clock() (int, int) {
	d := time.Duration(ct).Truncate(time.Minute)
	hour := d / time.Hour
	d %= time.Hour

	minute := d / time.Minute

	return int(hour), int(minute)
}

// Resolve pins the clock time onto a calendar day.
func (ct ClockTime) Resolve(year int, month time.Month, day int) LocalDateTime {
	hour, minute := ct.Clock()
	return LocalDateTime{year, month, day, hour, minute}
}

func (ct ClockTime) String() string {
	hour, minute := ct.Clock()
	return fmt.Sprintf("%02d:%02d", hour, minute)
}

func (ct *ClockTime) UnmarshalText(text []byte) error {
	var err error
	*ct, err = ParseClockTime(string(text))

	return err
}

func (ct ClockTime) MarshalText() ([]byte, error) {
	return []byte(ct.String()), nil
}
