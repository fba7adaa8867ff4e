// Package sidereal supplies the earth's rotation angle relative to the
// stars: Julian date, Greenwich mean sidereal time and local sidereal
// angle, plus a clock that reads them on demand for a fixed longitude.
package sidereal

import (
	"math"
	"time"
)

// JulianDate returns the Julian date for a wall-clock instant.
func JulianDate(t time.Time) float64 {
	t = t.UTC()

	y := float64(t.Year())
	m := float64(t.Month())
	d := float64(t.Day())

	dayFrac := (float64(t.Hour()) +
		float64(t.Minute())/60 +
		float64(t.Second())/3600 +
		float64(t.Nanosecond())/3600e9) / 24

	// January and February count as months 13 and 14 of the prior year.
	if m <= 2 {
		y--
		m += 12
	}

	a := math.Floor(y / 100)
	b := 2 - a + math.Floor(a/4)

	return math.Floor(365.25*(y+4716)) +
		math.Floor(30.6001*(m+1)) +
		d + dayFrac + b - 1524.5
}

// Greenwich returns Greenwich mean sidereal time in degrees for a
// wall-clock instant, per the IAU 1982 expression.
func Greenwich(t time.Time) float64 {
	jd := JulianDate(t)
	T := (jd - 2451545.0) / 36525.0

	gmst := 280.46061837 +
		360.98564736629*(jd-2451545.0) +
		0.000387933*T*T -
		T*T*T/38710000.0

	return norm360(gmst)
}

// Local returns the local sidereal angle in degrees for an instant and
// an observer longitude (east positive).
func Local(t time.Time, lonDeg float64) float64 {
	return norm360(Greenwich(t) + lonDeg)
}

func norm360(deg float64) float64 {
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	return deg
}

// Clock reads the current sidereal angle for a fixed longitude. The
// zero longitude clock reads Greenwich sidereal time.
type Clock struct {
	lonDeg float64
	now    func() time.Time
}

// NewClock returns a wall-clock-backed sidereal clock for a longitude
// in degrees (east positive).
func NewClock(lonDeg float64) *Clock {
	return &Clock{lonDeg: lonDeg, now: time.Now}
}

// NewClockAt returns a clock reading its instants from now instead of
// the wall clock. Used for replaying a fixed moment and in tests.
func NewClockAt(lonDeg float64, now func() time.Time) *Clock {
	return &Clock{lonDeg: lonDeg, now: now}
}

// Degrees returns the current local sidereal angle in degrees.
func (c *Clock) Degrees() float64 {
	return Local(c.now(), c.lonDeg)
}

// Hours returns the current local sidereal time in hours.
func (c *Clock) Hours() float64 {
	return c.Degrees() / 15
}

// UTC returns the instant the clock is reading, in UTC.
func (c *Clock) UTC() time.Time {
	return c.now().UTC()
}

// LocalTime returns the instant the clock is reading, in the process
// local zone.
func (c *Clock) LocalTime() time.Time {
	return c.now()
}
