// Package astro provides two-component coordinate frames built on
// angle values, and the spherical transforms that derive one frame
// from another: horizon (altitude/azimuth) to and from equatorial
// (hour angle/declination, or right ascension/declination via an
// externally supplied sidereal angle).
package astro

import (
	"errors"
	"fmt"

	"github.com/pootle/pootlesastropi/internal/angle"
)

// ErrSourceNotFound reports a derivation whose required inputs were
// missing or of the wrong kind.
var ErrSourceNotFound = errors.New("astro: derivation source not found")

// SiteSource supplies the observer latitude a horizon/equatorial
// derivation needs. *EarthLocation satisfies it, as does a bare
// *angle.Value holding a latitude.
type SiteSource interface {
	SiteLatitude() *angle.Value
}

// siteLat resolves a SiteSource to a latitude value.
func siteLat(site SiteSource) (*angle.Value, error) {
	if site == nil {
		return nil, fmt.Errorf("%w: no site supplied", ErrSourceNotFound)
	}
	lat := site.SiteLatitude()
	if lat == nil {
		return nil, fmt.Errorf("%w: source carries no latitude", ErrSourceNotFound)
	}
	return lat, nil
}

// EarthLocation is a position on the earth's surface.
type EarthLocation struct {
	Lat *angle.Value
	Lon *angle.Value
}

// NewEarthLocation builds a location from latitude and longitude in
// degrees (north and east positive).
func NewEarthLocation(latDeg, lonDeg float64) (*EarthLocation, error) {
	lat, err := angle.New(angle.Latitude, latDeg, angle.Degrees)
	if err != nil {
		return nil, err
	}
	lon, err := angle.New(angle.Longitude, lonDeg, angle.Degrees)
	if err != nil {
		return nil, err
	}
	return &EarthLocation{Lat: lat, Lon: lon}, nil
}

// ParseEarthLocation builds a location from latitude and longitude
// text ("53:04:06.6N", "4:34:34.6W").
func ParseEarthLocation(lat, lon string) (*EarthLocation, error) {
	la, err := angle.Parse(angle.Latitude, lat, angle.Degrees)
	if err != nil {
		return nil, err
	}
	lo, err := angle.Parse(angle.Longitude, lon, angle.Degrees)
	if err != nil {
		return nil, err
	}
	return &EarthLocation{Lat: la, Lon: lo}, nil
}

// SiteLatitude implements SiteSource.
func (l *EarthLocation) SiteLatitude() *angle.Value { return l.Lat }

func (l *EarthLocation) String() string {
	return "earthLoc: " + multi(l.Lat, 'd') + ", " + multi(l.Lon, 'd')
}

// Observed is a sky position in the horizon frame.
type Observed struct {
	Alt *angle.Value
	Az  *angle.Value
}

// NewObserved builds a horizon position from altitude and azimuth in
// degrees.
func NewObserved(altDeg, azDeg float64) (*Observed, error) {
	alt, err := angle.New(angle.Altitude, altDeg, angle.Degrees)
	if err != nil {
		return nil, err
	}
	az, err := angle.New(angle.Azimuth, azDeg, angle.Degrees)
	if err != nil {
		return nil, err
	}
	return &Observed{Alt: alt, Az: az}, nil
}

// ParseObserved builds a horizon position from altitude and azimuth
// text.
func ParseObserved(alt, az string) (*Observed, error) {
	a, err := angle.Parse(angle.Altitude, alt, angle.Degrees)
	if err != nil {
		return nil, err
	}
	z, err := angle.Parse(angle.Azimuth, az, angle.Degrees)
	if err != nil {
		return nil, err
	}
	return &Observed{Alt: a, Az: z}, nil
}

func (o *Observed) String() string {
	return "observedCoord: " + multi(o.Alt, 'd') + ", " + multi(o.Az, 'd')
}

// LocalEquatorial is a sky position in hour angle and declination,
// relative to the observer's meridian.
type LocalEquatorial struct {
	Hour *angle.Value
	Dec  *angle.Value
}

// NewLocalEquatorial builds a local equatorial position from hour
// angle and declination in degrees.
func NewLocalEquatorial(hourDeg, decDeg float64) (*LocalEquatorial, error) {
	h, err := angle.New(angle.HourAngle, hourDeg, angle.Degrees)
	if err != nil {
		return nil, err
	}
	d, err := angle.New(angle.Declination, decDeg, angle.Degrees)
	if err != nil {
		return nil, err
	}
	return &LocalEquatorial{Hour: h, Dec: d}, nil
}

// ParseLocalEquatorial builds a local equatorial position from hour
// angle and declination text.
func ParseLocalEquatorial(hour, dec string) (*LocalEquatorial, error) {
	h, err := angle.Parse(angle.HourAngle, hour, angle.Degrees)
	if err != nil {
		return nil, err
	}
	d, err := angle.Parse(angle.Declination, dec, angle.Degrees)
	if err != nil {
		return nil, err
	}
	return &LocalEquatorial{Hour: h, Dec: d}, nil
}

func (e *LocalEquatorial) String() string {
	return "localEquatorial: " + multi(e.Hour, 'd') + ", " + multi(e.Dec, 'd')
}

// RADec is a sky position in right ascension and declination.
type RADec struct {
	RA  *angle.Value
	Dec *angle.Value
}

// NewRADec builds a celestial position from right ascension and
// declination in degrees.
func NewRADec(raDeg, decDeg float64) (*RADec, error) {
	ra, err := angle.New(angle.RightAscension, raDeg, angle.Degrees)
	if err != nil {
		return nil, err
	}
	d, err := angle.New(angle.Declination, decDeg, angle.Degrees)
	if err != nil {
		return nil, err
	}
	return &RADec{RA: ra, Dec: d}, nil
}

// ParseRADec builds a celestial position from right ascension and
// declination text.
func ParseRADec(ra, dec string) (*RADec, error) {
	r, err := angle.Parse(angle.RightAscension, ra, angle.Degrees)
	if err != nil {
		return nil, err
	}
	d, err := angle.Parse(angle.Declination, dec, angle.Degrees)
	if err != nil {
		return nil, err
	}
	return &RADec{RA: r, Dec: d}, nil
}

func (r *RADec) String() string {
	return "raDec: " + multi(r.RA, 'd') + ", " + multi(r.Dec, 'd')
}

// MotorPair is a pair of mount motor shaft positions, each free to
// take any position in a full turn.
type MotorPair struct {
	RAMotor  *angle.Value
	DecMotor *angle.Value
}

// NewMotorPair builds a motor pair from shaft positions in degrees.
func NewMotorPair(raDeg, decDeg float64) (*MotorPair, error) {
	ra, err := angle.New(angle.Motor, raDeg, angle.Degrees)
	if err != nil {
		return nil, err
	}
	de, err := angle.New(angle.Motor, decDeg, angle.Degrees)
	if err != nil {
		return nil, err
	}
	return &MotorPair{RAMotor: ra, DecMotor: de}, nil
}

// ParseMotorPair builds a motor pair from shaft position text.
func ParseMotorPair(ra, dec string) (*MotorPair, error) {
	r, err := angle.Parse(angle.Motor, ra, angle.Degrees)
	if err != nil {
		return nil, err
	}
	d, err := angle.Parse(angle.Motor, dec, angle.Degrees)
	if err != nil {
		return nil, err
	}
	return &MotorPair{RAMotor: r, DecMotor: d}, nil
}

func (m *MotorPair) String() string {
	return "motorPair: RA:" + multi(m.RAMotor, 'd') + ", DEC:" + multi(m.DecMotor, 'd')
}

// multi renders a component with its kind's sexagesimal template fed
// from the given source unit.
func multi(v *angle.Value, src byte) string {
	s, err := v.Format(string(src) + "x;")
	if err != nil {
		return "!" + err.Error()
	}
	return s
}
