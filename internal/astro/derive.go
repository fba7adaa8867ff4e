package astro

import (
	"fmt"

	"github.com/pootle/pootlesastropi/internal/angle"
)

// ObservedFromEquatorial derives a horizon position from a local
// equatorial position and the observer's latitude.
func ObservedFromEquatorial(eq *LocalEquatorial, site SiteSource) (*Observed, error) {
	if eq == nil {
		return nil, fmt.Errorf("%w: no local equatorial pair supplied", ErrSourceNotFound)
	}
	lat, err := siteLat(site)
	if err != nil {
		return nil, err
	}

	altRad, azRad := Transform(eq.Dec.Radians(), lat.Radians(), eq.Hour.Radians())

	alt, err := angle.New(angle.Altitude, altRad, angle.Radians)
	if err != nil {
		return nil, err
	}
	az, err := angle.New(angle.Azimuth, azRad, angle.Radians)
	if err != nil {
		return nil, err
	}
	return &Observed{Alt: alt, Az: az}, nil
}

// EquatorialFromObserved derives a local equatorial position from a
// horizon position and the observer's latitude. It is the inverse of
// ObservedFromEquatorial; both directions share Transform with the
// roles swapped.
func EquatorialFromObserved(oc *Observed, site SiteSource) (*LocalEquatorial, error) {
	if oc == nil {
		return nil, fmt.Errorf("%w: no observed pair supplied", ErrSourceNotFound)
	}
	lat, err := siteLat(site)
	if err != nil {
		return nil, err
	}

	decRad, hourRad := Transform(oc.Alt.Radians(), lat.Radians(), oc.Az.Radians())

	dec, err := angle.New(angle.Declination, decRad, angle.Radians)
	if err != nil {
		return nil, err
	}
	hour, err := angle.New(angle.HourAngle, hourRad, angle.Radians)
	if err != nil {
		return nil, err
	}
	return &LocalEquatorial{Hour: hour, Dec: dec}, nil
}

// EquatorialFromCelestial derives a local equatorial position from a
// celestial one and the current sidereal angle in degrees:
// hour angle = sidereal - right ascension. Declination carries over
// unchanged; no trigonometric transform is involved.
func EquatorialFromCelestial(rd *RADec, siderealDeg float64) (*LocalEquatorial, error) {
	if rd == nil {
		return nil, fmt.Errorf("%w: no RA/dec pair supplied", ErrSourceNotFound)
	}
	hour, err := angle.New(angle.HourAngle, siderealDeg-rd.RA.Degrees(), angle.Degrees)
	if err != nil {
		return nil, err
	}
	return &LocalEquatorial{Hour: hour, Dec: angle.Copy(rd.Dec)}, nil
}

// ObservedFromCelestial derives a horizon position straight from a
// celestial one, given the observer's latitude and the current
// sidereal angle in degrees.
func ObservedFromCelestial(rd *RADec, site SiteSource, siderealDeg float64) (*Observed, error) {
	eq, err := EquatorialFromCelestial(rd, siderealDeg)
	if err != nil {
		return nil, err
	}
	return ObservedFromEquatorial(eq, site)
}
