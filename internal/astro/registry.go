package astro

import (
	"fmt"
	"strings"

	"github.com/pootle/pootlesastropi/internal/angle"
)

// kindTags maps the tag words accepted by FromString to angle kinds.
// The set is fixed; anything else is an unknown tag.
var kindTags = map[string]angle.Kind{
	"lat":  angle.Latitude,
	"lon":  angle.Longitude,
	"alt":  angle.Altitude,
	"az":   angle.Azimuth,
	"RA":   angle.RightAscension,
	"DEC":  angle.Declination,
	"move": angle.FreeRotation,
}

// FromString builds an angle value from tagged text such as
// "lat 51:30:00N" or "RA 13h25:11.6". The word before the first space
// selects the kind and the remainder is handed to that kind's parser.
func FromString(s string) (*angle.Value, error) {
	tag, rest, found := strings.Cut(s, " ")
	if !found {
		return nil, fmt.Errorf("%w: %q has no tag word", angle.ErrUnknownTag, s)
	}
	k, ok := kindTags[tag]
	if !ok {
		return nil, fmt.Errorf("%w: %q", angle.ErrUnknownTag, tag)
	}
	return angle.Parse(k, rest, angle.Degrees)
}
