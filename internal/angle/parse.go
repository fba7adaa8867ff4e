package angle

import (
	"fmt"
	"strconv"
	"strings"
)

// parseText turns angle text into a raw (unwrapped) number and the unit
// it is in. The grammar, applied in order:
//
//  1. Exactly one occurrence of a unit marker ('d', 'r' or 'h', checked
//     in that priority) selects the unit and the marker is removed.
//     With no marker the fallback unit applies. explicit reports
//     whether a marker decided the unit.
//  2. After trimming, a trailing sign letter from the kind's table
//     ('N'/'S', 'E'/'W') fixes the sign and is removed.
//  3. Text containing exactly two colons is a degrees:minutes:seconds
//     triple (integer degrees and minutes, float seconds), combined as
//     deg + min/60 + sec/3600; anything else must be a single float.
func parseText(k Kind, s string, fallback Unit) (val float64, u Unit, explicit bool, err error) {
	u = fallback
	switch u {
	case Degrees, Radians, Hours:
	default:
		u = Degrees
	}

	t := s
	for _, m := range [...]Unit{Degrees, Radians, Hours} {
		marker := string(byte(m))
		if strings.Count(t, marker) == 1 {
			u = m
			t = strings.Replace(t, marker, "", 1)
			explicit = true
			break
		}
	}

	t = strings.TrimSpace(t)

	sign := 1.0
	for _, tr := range k.desc().trails {
		if strings.HasSuffix(t, tr.suffix) {
			sign = tr.sign
			t = strings.TrimSpace(t[:len(t)-len(tr.suffix)])
			break
		}
	}

	parts := strings.Split(t, ":")
	switch len(parts) {
	case 1:
		f, ferr := strconv.ParseFloat(t, 64)
		if ferr != nil {
			return 0, u, explicit, fmt.Errorf("%w: %q is not a number or d:m:s triple", ErrParse, s)
		}
		val = f
	case 3:
		lead := 1.0
		head := parts[0]
		switch {
		case strings.HasPrefix(head, "+"):
			head = head[1:]
		case strings.HasPrefix(head, "-"):
			lead = -1
			head = head[1:]
		}
		dg, e1 := strconv.Atoi(head)
		mn, e2 := strconv.Atoi(parts[1])
		sc, e3 := strconv.ParseFloat(parts[2], 64)
		if e1 != nil || e2 != nil || e3 != nil || dg < 0 || mn < 0 || sc < 0 {
			return 0, u, explicit, fmt.Errorf("%w: %q is not a valid d:m:s triple", ErrParse, s)
		}
		val = lead * (float64(dg) + float64(mn)/60 + sc/3600)
	default:
		return 0, u, explicit, fmt.Errorf("%w: %q has %d colon separators, want 0 or 2", ErrParse, s, len(parts)-1)
	}

	return val * sign, u, explicit, nil
}
