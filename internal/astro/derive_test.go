package astro

import (
	"errors"
	"math"
	"testing"

	"github.com/pootle/pootlesastropi/internal/angle"
)

func mustLat(t *testing.T, deg float64) *angle.Value {
	t.Helper()
	v, err := angle.New(angle.Latitude, deg, angle.Degrees)
	if err != nil {
		t.Fatal(err)
	}
	return v
}

func TestTransformRoundTrip(t *testing.T) {
	// Transforming (alt, lat, az) -> (dec, hour) and feeding the result
	// back with the roles swapped must reproduce the original pair, for
	// sites away from the poles.
	lats := []float64{-60, -30, 0.5, 30, 52, 75}
	alts := []float64{-40, -5, 10, 45, 70}
	azs := []float64{-150, -60, 15, 120, 179}

	for _, latDeg := range lats {
		for _, altDeg := range alts {
			for _, azDeg := range azs {
				lat := latDeg * math.Pi / 180
				alt := altDeg * math.Pi / 180
				az := azDeg * math.Pi / 180

				dec, hour := Transform(alt, lat, az)
				altBack, azBack := Transform(dec, lat, hour)

				if diff := math.Abs(altBack - alt); diff > 1e-9 {
					t.Errorf("lat %v alt %v az %v: altitude drifted by %v",
						latDeg, altDeg, azDeg, diff)
				}
				// Azimuth comes back on the same circle; compare wrapped.
				azDiff := math.Mod(math.Abs(azBack-az), 2*math.Pi)
				if azDiff > math.Pi {
					azDiff = 2*math.Pi - azDiff
				}
				if azDiff > 1e-9 {
					t.Errorf("lat %v alt %v az %v: azimuth drifted by %v",
						latDeg, altDeg, azDeg, azDiff)
				}
			}
		}
	}
}

func TestTransformPoleStaysFinite(t *testing.T) {
	// At the pole cos(lat) underflows to ~1e-17 and the acos argument
	// is numerically fragile; whichever branch handles it, the result
	// must stay finite with the first output pinned to the input
	// elevation.
	for _, z := range []float64{0.25, 1.0, math.Pi - 0.1, -2.0} {
		xt, yt := Transform(0.5, math.Pi/2, z)
		if math.Abs(xt-0.5) > 1e-7 {
			t.Errorf("z=%v: xt = %v, want 0.5", z, xt)
		}
		if math.IsNaN(yt) || math.IsInf(yt, 0) {
			t.Errorf("z=%v: yt = %v, want finite", z, yt)
		}
	}
}

func TestObservedFromEquatorialRoundTrip(t *testing.T) {
	eq, err := NewLocalEquatorial(20, 45)
	if err != nil {
		t.Fatal(err)
	}
	lat := mustLat(t, 52)

	obs, err := ObservedFromEquatorial(eq, lat)
	if err != nil {
		t.Fatal(err)
	}
	if obs.Alt.Degrees() <= 0 {
		t.Errorf("Alt = %v, want above horizon for dec 45 at lat 52", obs.Alt.Degrees())
	}

	back, err := EquatorialFromObserved(obs, lat)
	if err != nil {
		t.Fatal(err)
	}
	if diff := math.Abs(back.Hour.Degrees() - 20); diff > 1e-6 {
		t.Errorf("Hour came back as %v, want 20", back.Hour.Degrees())
	}
	if diff := math.Abs(back.Dec.Degrees() - 45); diff > 1e-6 {
		t.Errorf("Dec came back as %v, want 45", back.Dec.Degrees())
	}
}

func TestDeriveAcceptsEarthLocationAsSite(t *testing.T) {
	eq, err := NewLocalEquatorial(20, 45)
	if err != nil {
		t.Fatal(err)
	}
	loc, err := NewEarthLocation(52, -4)
	if err != nil {
		t.Fatal(err)
	}
	bare := mustLat(t, 52)

	fromLoc, err := ObservedFromEquatorial(eq, loc)
	if err != nil {
		t.Fatal(err)
	}
	fromBare, err := ObservedFromEquatorial(eq, bare)
	if err != nil {
		t.Fatal(err)
	}

	if fromLoc.Alt.Degrees() != fromBare.Alt.Degrees() {
		t.Errorf("Alt differs by site source: %v vs %v",
			fromLoc.Alt.Degrees(), fromBare.Alt.Degrees())
	}
	if fromLoc.Az.Degrees() != fromBare.Az.Degrees() {
		t.Errorf("Az differs by site source: %v vs %v",
			fromLoc.Az.Degrees(), fromBare.Az.Degrees())
	}
}

func TestDeriveSourceErrors(t *testing.T) {
	eq, err := NewLocalEquatorial(20, 45)
	if err != nil {
		t.Fatal(err)
	}
	lon, err := angle.New(angle.Longitude, 10, angle.Degrees)
	if err != nil {
		t.Fatal(err)
	}

	if _, err := ObservedFromEquatorial(nil, mustLat(t, 52)); !errors.Is(err, ErrSourceNotFound) {
		t.Errorf("nil pair error = %v, want ErrSourceNotFound", err)
	}
	if _, err := ObservedFromEquatorial(eq, nil); !errors.Is(err, ErrSourceNotFound) {
		t.Errorf("nil site error = %v, want ErrSourceNotFound", err)
	}
	if _, err := ObservedFromEquatorial(eq, lon); !errors.Is(err, ErrSourceNotFound) {
		t.Errorf("longitude site error = %v, want ErrSourceNotFound", err)
	}
	if _, err := EquatorialFromObserved(nil, mustLat(t, 52)); !errors.Is(err, ErrSourceNotFound) {
		t.Errorf("nil observed error = %v, want ErrSourceNotFound", err)
	}
	if _, err := EquatorialFromCelestial(nil, 100); !errors.Is(err, ErrSourceNotFound) {
		t.Errorf("nil RA/dec error = %v, want ErrSourceNotFound", err)
	}
}

func TestEquatorialFromCelestial(t *testing.T) {
	rd, err := NewRADec(201.2983, -11.1614)
	if err != nil {
		t.Fatal(err)
	}

	eq, err := EquatorialFromCelestial(rd, 100)
	if err != nil {
		t.Fatal(err)
	}

	// hour = sidereal - RA, wrapped into [0, 360).
	want := math.Mod(100-201.2983+360, 360)
	if diff := math.Abs(eq.Hour.Degrees() - want); diff > 1e-9 {
		t.Errorf("Hour = %v, want %v", eq.Hour.Degrees(), want)
	}
	if eq.Dec.Degrees() != rd.Dec.Degrees() {
		t.Errorf("Dec = %v, want %v carried over", eq.Dec.Degrees(), rd.Dec.Degrees())
	}

	// The derived declination is a copy, not a shared value.
	if err := eq.Dec.SetDegrees(0); err != nil {
		t.Fatal(err)
	}
	if rd.Dec.Degrees() == 0 {
		t.Error("mutating the derived declination changed the source")
	}
}

func TestObservedFromCelestial(t *testing.T) {
	rd, err := NewRADec(201.2983, -11.1614)
	if err != nil {
		t.Fatal(err)
	}
	loc, err := NewEarthLocation(52, -4)
	if err != nil {
		t.Fatal(err)
	}

	obs, err := ObservedFromCelestial(rd, loc, 250)
	if err != nil {
		t.Fatal(err)
	}

	// Same answer as deriving in two explicit steps.
	eq, err := EquatorialFromCelestial(rd, 250)
	if err != nil {
		t.Fatal(err)
	}
	twoStep, err := ObservedFromEquatorial(eq, loc)
	if err != nil {
		t.Fatal(err)
	}

	if obs.Alt.Degrees() != twoStep.Alt.Degrees() || obs.Az.Degrees() != twoStep.Az.Degrees() {
		t.Errorf("one-step (%v, %v) != two-step (%v, %v)",
			obs.Alt.Degrees(), obs.Az.Degrees(),
			twoStep.Alt.Degrees(), twoStep.Az.Degrees())
	}
}
