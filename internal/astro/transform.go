package astro

import "math"

// acosClampEps bounds how far outside [-1,1] the acos argument may
// drift before the primary formula is abandoned. Within the epsilon
// the argument is clamped (floating-point dust near a pole); beyond it
// the atan fallback takes over.
const acosClampEps = 1e-9

// Transform converts one spherical triple to another. It is its own
// inverse under role swap: called with (declination, latitude, hour
// angle) it yields (altitude, azimuth); called with (altitude,
// latitude, azimuth) it yields (declination, hour angle). All values
// in radians.
//
// Formulae per www.sohcahtoa.org.uk/kepler/altaz.html:
//
//	xt = asin(sin x sin y + cos x cos y cos z)
//	yt = acos((sin x - sin y sin xt) / (cos y cos xt)), mirrored when
//	     sin z > 0.
//
// Near a pole cos y cos xt approaches zero and the acos argument
// leaves [-1,1]; the fallback computes yt from atan with a quadrant
// fix instead.
func Transform(x, y, z float64) (xt, yt float64) {
	sinx := math.Sin(x)
	siny := math.Sin(y)
	cosy := math.Cos(y)

	xt = math.Asin(sinx*siny + math.Cos(x)*cosy*math.Cos(z))

	c := (sinx - siny*math.Sin(xt)) / (cosy * math.Cos(xt))
	switch {
	case math.Abs(c) <= 1:
	case math.Abs(c) <= 1+acosClampEps:
		c = math.Copysign(1, c)
	default:
		cy := -math.Cos(x) * cosy * math.Sin(z)
		cx := sinx - siny*math.Sin(xt)
		yt = math.Atan(cy / cx)
		if cx < 0 {
			yt += math.Pi
		}
		return xt, yt
	}

	yt = math.Acos(c)
	if math.Sin(z) > 0 {
		yt = 2*math.Pi - yt
	}
	return xt, yt
}
