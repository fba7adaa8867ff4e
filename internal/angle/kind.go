package angle

import (
	"fmt"
	"math"
)

// Unit identifies which representation a raw number or string is in.
// The byte values double as the unit marker characters recognized by
// the parser ("51.5d", "0.9r", "3h25:30").
type Unit byte

const (
	Degrees Unit = 'd'
	Radians Unit = 'r'
	Hours   Unit = 'h'
)

func (u Unit) String() string {
	switch u {
	case Degrees:
		return "degrees"
	case Radians:
		return "radians"
	case Hours:
		return "hours"
	default:
		return fmt.Sprintf("unit(%q)", byte(u))
	}
}

// Kind selects one of the fixed angle specializations. Each kind carries
// its own wrap range per unit, the trailing sign letters its parser
// accepts, and its default presentation templates.
type Kind int

const (
	Latitude Kind = iota
	Longitude
	Altitude
	Azimuth
	RightAscension
	Declination
	Motor
	HourAngle
	FreeRotation
)

func (k Kind) String() string {
	if k < Latitude || k > FreeRotation {
		return "kind(?)"
	}
	return descriptors[k].name
}

// span defines a wrap interval for one unit: stored values lie in
// [-offset, period-offset).
type span struct {
	offset, period float64
}

// trail is a sign letter accepted at the end of an input string.
type trail struct {
	suffix string
	sign   float64
}

type descriptor struct {
	name      string
	label     string
	spans     map[Unit]span
	trails    []trail
	glyph     func(float64) string
	signedMag bool // wrap magnitude only, keep the sign (free rotation)

	// Default format spec and the templates used when a spec leaves
	// the template part empty.
	defSpec   string
	defSingle string
	defMulti  string
}

const twoPi = 2 * math.Pi

func noGlyph(float64) string { return "" }

func northSouth(v float64) string {
	if v >= 0 {
		return "N"
	}
	return "S"
}

func eastWest(v float64) string {
	if v >= 0 {
		return "E"
	}
	return "W"
}

func upDown(v float64) string {
	if v >= 0 {
		return "up"
	}
	return "dn"
}

func rotationSense(v float64) string {
	if v >= 0 {
		return "cw"
	}
	return "ccw"
}

var descriptors = [...]descriptor{
	Latitude: {
		name:  "latitude",
		label: "lat",
		spans: map[Unit]span{
			Degrees: {90, 180},
			Radians: {math.Pi / 2, math.Pi},
		},
		trails:    []trail{{"n", 1}, {"N", 1}, {"s", -1}, {"S", -1}},
		glyph:     northSouth,
		defSpec:   "ds;",
		defSingle: "lat {abs:7.4f} {schar}",
		defMulti:  "lat {abs:d}:{min:02d}:{sec:02d}.{hund:02d} {schar}",
	},
	Longitude: {
		name:  "longitude",
		label: "lon",
		spans: map[Unit]span{
			Degrees: {180, 360},
			Radians: {math.Pi, twoPi},
			Hours:   {12, 24},
		},
		trails:    []trail{{"e", 1}, {"E", 1}, {"w", -1}, {"W", -1}},
		glyph:     eastWest,
		defSpec:   "ds;",
		defSingle: "lon {abs:7.4f} {schar}",
		defMulti:  "lon {abs:d}:{min:02d}:{sec:02d}.{hund:02d} {schar}",
	},
	Altitude: {
		name:  "altitude",
		label: "alt",
		spans: map[Unit]span{
			Degrees: {90, 180},
			Radians: {math.Pi / 2, math.Pi},
		},
		glyph:     upDown,
		defSpec:   "ds;",
		defSingle: "alt {abs:7.4f} {schar}",
		defMulti:  "alt {signed:d}:{min:02d}:{sec:02d}.{hund:02d}",
	},
	Azimuth: {
		name:  "azimuth",
		label: "az",
		spans: map[Unit]span{
			Degrees: {180, 360},
			Radians: {math.Pi, twoPi},
			Hours:   {12, 24},
		},
		glyph:     rotationSense,
		defSpec:   "ds;",
		defSingle: "az {abs:7.4f} {schar}",
		defMulti:  "az {signed:d}:{min:02d}:{sec:02d}.{hund:02d}",
	},
	RightAscension: {
		name:  "right ascension",
		label: "RA",
		spans: map[Unit]span{
			Degrees: {0, 360},
			Radians: {0, twoPi},
			Hours:   {0, 24},
		},
		glyph:     noGlyph,
		defSpec:   "hx;",
		defSingle: "RA {abs:7.4f}",
		defMulti:  "RA {signed:d}:{min:02d}:{sec:02d}.{hund:02d}",
	},
	Declination: {
		name:  "declination",
		label: "DEC",
		spans: map[Unit]span{
			Degrees: {90, 180},
			Radians: {math.Pi / 2, math.Pi},
			Hours:   {6, 12},
		},
		trails:    []trail{{"n", 1}, {"N", 1}, {"s", -1}, {"S", -1}},
		glyph:     noGlyph,
		defSpec:   "dx;",
		defSingle: "DEC {signed:7.4f}",
		defMulti:  "DEC {signed:d}:{min:02d}:{sec:02d}.{hund:02d}",
	},
	Motor: {
		name:  "motor",
		label: "motor",
		spans: map[Unit]span{
			Degrees: {0, 360},
			Radians: {0, twoPi},
			Hours:   {0, 24},
		},
		glyph:     noGlyph,
		defSpec:   "dx;",
		defSingle: "{signed:7.4f}",
		defMulti:  "{signed:3d}:{min:02d}:{sec:02d}.{hund:02d}",
	},
	HourAngle: {
		name:  "hour angle",
		label: "hour",
		spans: map[Unit]span{
			Degrees: {0, 360},
			Radians: {0, twoPi},
			Hours:   {0, 24},
		},
		glyph:     noGlyph,
		defSpec:   "hx;",
		defSingle: "hour {signed:5.1f}",
		defMulti:  "hour {abs:02d}:{min:02d}:{sec:02d}.{hund:02d}",
	},
	FreeRotation: {
		name:  "free rotation",
		label: "move",
		spans: map[Unit]span{
			Degrees: {0, 360},
			Radians: {0, twoPi},
			Hours:   {0, 24},
		},
		glyph:     rotationSense,
		signedMag: true,
		defSpec:   "ds;",
		defSingle: "move {signed:7.4f} {schar}",
		defMulti:  "move {signed:d}:{min:02d}:{sec:02d}.{hund:02d} {schar}",
	},
}

func (k Kind) desc() *descriptor {
	return &descriptors[k]
}

// wrap normalizes v into the kind's range for the given unit.
//
// The default policy maps onto the half-open interval
// [-offset, period-offset). Free rotation instead wraps the magnitude
// and keeps the original sign, so a signed part-turn never collapses to
// its complement (-0.0001 degrees must not become +359.9999).
func (k Kind) wrap(v float64, u Unit) (float64, error) {
	d := k.desc()
	sp, ok := d.spans[u]
	if !ok {
		return 0, fmt.Errorf("%w: %s defines no %s range", ErrRangeConstraint, d.name, u)
	}
	if d.signedMag {
		m := math.Mod(math.Abs(v), sp.period)
		if math.Signbit(v) {
			return -m, nil
		}
		return m, nil
	}
	m := math.Mod(v+sp.offset, sp.period)
	if m < 0 {
		m += sp.period
	}
	return m - sp.offset, nil
}
