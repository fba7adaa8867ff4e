package angle

import (
	"fmt"
	"math"
	"strings"
)

// nanSentinel is returned whenever the selected representation is NaN;
// templates are never evaluated against NaN.
const nanSentinel = "---"

// Format renders the value through a format spec of the shape
//
//	<src><mode>;<template>
//
// src selects the representation feeding the template: 'd' degrees,
// 'r' radians or 'h' hours. mode is optional: 's' (the default) formats
// a single float, any other character formats a sexagesimal breakdown.
// An empty template uses the kind's default for that mode.
//
// Templates hold {name} or {name:verb} placeholders, verb being a
// printf verb without the '%'. Single mode supplies abs, signed, schar
// and lab; sexagesimal mode supplies abs, signed (whole units), min,
// sec, hund (with frac as an alias), schar and lab.
//
// A spec with no semicolon falls back to formatting the degree value
// directly with the spec as a float verb ("5.3f").
func (v *Value) Format(spec string) (string, error) {
	d := v.kind.desc()
	if spec == "" {
		spec = d.defSpec
	}

	prefix, tmpl, found := strings.Cut(spec, ";")
	if !found || len(prefix) < 1 || len(prefix) > 2 {
		dv := v.Degrees()
		if math.IsNaN(dv) {
			return nanSentinel, nil
		}
		return fmt.Sprintf("%"+spec, dv), nil
	}

	var sval float64
	switch prefix[0] {
	case 'd':
		sval = v.Degrees()
	case 'r':
		sval = v.Radians()
	case 'h':
		sval = v.Hours()
	default:
		return "", fmt.Errorf("%w: source selector %q in %q", ErrFormatSpec, prefix[0], spec)
	}
	if math.IsNaN(sval) {
		return nanSentinel, nil
	}

	if len(prefix) == 1 || prefix[1] == 's' {
		if tmpl == "" {
			tmpl = d.defSingle
		}
		return expand(tmpl, map[string]any{
			"abs":    math.Abs(sval),
			"signed": sval,
			"schar":  d.glyph(sval),
			"lab":    d.label,
		})
	}

	if tmpl == "" {
		tmpl = d.defMulti
	}

	// Round the whole value to hundredths of a second before slicing
	// it into fields, so 44.999999s renders as 45.00 and the output
	// reparses to the same value at the declared precision.
	hund := int64(math.Floor(math.Abs(sval)*360000 + 0.5))
	whole := hund / 360000
	mins := (hund % 360000) / 6000
	secs := (hund % 6000) / 100
	frac := hund % 100

	sgn := int64(1)
	if sval < 0 {
		sgn = -1
	}

	return expand(tmpl, map[string]any{
		"abs":    whole,
		"signed": whole * sgn,
		"min":    mins,
		"sec":    secs,
		"hund":   frac,
		"frac":   frac,
		"schar":  d.glyph(float64(sgn)),
		"lab":    d.label,
	})
}

// expand substitutes {name} and {name:verb} placeholders in a template.
func expand(tmpl string, fields map[string]any) (string, error) {
	var b strings.Builder
	for i := 0; i < len(tmpl); i++ {
		c := tmpl[i]
		if c != '{' {
			b.WriteByte(c)
			continue
		}
		end := strings.IndexByte(tmpl[i:], '}')
		if end < 0 {
			return "", fmt.Errorf("%w: unterminated placeholder in %q", ErrFormatSpec, tmpl)
		}
		token := tmpl[i+1 : i+end]
		i += end

		name, verb, hasVerb := strings.Cut(token, ":")
		val, ok := fields[name]
		if !ok {
			return "", fmt.Errorf("%w: unknown placeholder %q in %q", ErrFormatSpec, name, tmpl)
		}
		if hasVerb {
			fmt.Fprintf(&b, "%"+verb, val)
		} else {
			fmt.Fprintf(&b, "%v", val)
		}
	}
	return b.String(), nil
}
