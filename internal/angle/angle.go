// Package angle provides smart angle values for amateur astronomy use:
// latitude, longitude, altitude, azimuth, right ascension, declination,
// motor shaft position, local hour angle and free rotation.
//
// A Value stores one angle and converts lazily between degrees and
// radians; hours are always a view of degrees (degrees / 15). Every
// write is wrapped into the range its kind allows. Values parse from a
// small grammar (floats, d:m:s triples, embedded unit markers, trailing
// sign letters) and format through a compact spec mini-language.
package angle

import (
	"fmt"
	"math"
)

// Value is a single angle of a fixed Kind.
//
// Degrees and radians are cached independently; at most one cache is
// empty at a time, and reading the empty one fills it from the other.
// A Value is not safe for concurrent use.
type Value struct {
	kind Kind

	deg, rad       float64
	hasDeg, hasRad bool

	subs []subscriber
}

type subscriber struct {
	id string
	fn func(*Value)
}

// New builds a Value of kind k from a raw number in unit u,
// wrapped into the kind's range.
func New(k Kind, v float64, u Unit) (*Value, error) {
	w, err := k.wrap(v, u)
	if err != nil {
		return nil, err
	}
	val := &Value{kind: k}
	val.store(w, u)
	return val, nil
}

// Parse builds a Value of kind k from text. A unit marker embedded in
// the string wins; otherwise fallback names the unit.
func Parse(k Kind, s string, fallback Unit) (*Value, error) {
	raw, u, _, err := parseText(k, s, fallback)
	if err != nil {
		return nil, err
	}
	w, err := k.wrap(raw, u)
	if err != nil {
		return nil, err
	}
	val := &Value{kind: k}
	val.store(w, u)
	return val, nil
}

// Copy builds a new Value of the same kind, copied by degree value.
// Subscriptions are not copied.
func Copy(v *Value) *Value {
	c := &Value{kind: v.kind}
	c.store(v.Degrees(), Degrees)
	return c
}

// Kind returns the value's kind.
func (v *Value) Kind() Kind { return v.kind }

// SiteLatitude lets a bare latitude act as an observer-site source for
// frame derivations. It returns the value itself for a latitude and nil
// for every other kind.
func (v *Value) SiteLatitude() *Value {
	if v.kind == Latitude {
		return v
	}
	return nil
}

// store writes a wrapped value in unit u and drops the other cache.
// Hours are folded straight into the degree cache.
func (v *Value) store(w float64, u Unit) {
	switch u {
	case Radians:
		v.rad, v.hasRad, v.hasDeg = w, true, false
	case Hours:
		v.deg, v.hasDeg, v.hasRad = w*15, true, false
	default:
		v.deg, v.hasDeg, v.hasRad = w, true, false
	}
}

// Degrees returns the angle in degrees, filling the cache if needed.
func (v *Value) Degrees() float64 {
	if !v.hasDeg {
		v.deg = v.rad * 180 / math.Pi
		v.hasDeg = true
	}
	return v.deg
}

// Radians returns the angle in radians, filling the cache if needed.
func (v *Value) Radians() float64 {
	if !v.hasRad {
		v.rad = v.deg * math.Pi / 180
		v.hasRad = true
	}
	return v.rad
}

// Hours returns the angle in hours. Hours are never cached separately:
// the result is always Degrees()/15.
func (v *Value) Hours() float64 {
	return v.Degrees() / 15
}

// Set writes a raw number in unit u, wrapping it into the kind's range.
// Writing a value that wraps to the current one does not notify
// subscribers.
func (v *Value) Set(f float64, u Unit) error {
	w, err := v.kind.wrap(f, u)
	if err != nil {
		return err
	}
	v.apply(w, u)
	return nil
}

// SetString parses text and writes the result. The text must resolve to
// unit u: an embedded marker naming a different unit is a parse error,
// mirroring Set's explicit unit contract.
func (v *Value) SetString(s string, u Unit) error {
	raw, pu, explicit, err := parseText(v.kind, s, u)
	if err != nil {
		return err
	}
	if explicit && pu != u {
		return fmt.Errorf("%w: %q carries a %s marker, expected %s", ErrParse, s, pu, u)
	}
	w, err := v.kind.wrap(raw, pu)
	if err != nil {
		return err
	}
	v.apply(w, pu)
	return nil
}

// SetDegrees writes the angle in degrees.
func (v *Value) SetDegrees(f float64) error { return v.Set(f, Degrees) }

// SetRadians writes the angle in radians.
func (v *Value) SetRadians(f float64) error { return v.Set(f, Radians) }

// SetHours writes the angle in hours.
func (v *Value) SetHours(f float64) error { return v.Set(f, Hours) }

// apply stores a wrapped value unless it equals the current value in
// the same unit, and notifies subscribers on a real change.
func (v *Value) apply(w float64, u Unit) {
	var cur float64
	switch u {
	case Radians:
		cur = v.Radians()
	case Hours:
		cur = v.Hours()
	default:
		cur = v.Degrees()
	}
	if w == cur {
		return
	}
	v.store(w, u)
	v.notify()
}

// Subscribe registers fn to run after every change, keyed by id.
// Subscribing an existing id replaces its callback in place.
func (v *Value) Subscribe(id string, fn func(*Value)) {
	for i := range v.subs {
		if v.subs[i].id == id {
			v.subs[i].fn = fn
			return
		}
	}
	v.subs = append(v.subs, subscriber{id: id, fn: fn})
}

// Unsubscribe removes the callback keyed by id. Removing an unknown id
// is a no-op.
func (v *Value) Unsubscribe(id string) {
	for i := range v.subs {
		if v.subs[i].id == id {
			v.subs = append(v.subs[:i], v.subs[i+1:]...)
			return
		}
	}
}

// notify walks a snapshot of the subscription list, so a callback may
// unsubscribe itself (or others) while the walk is in progress.
func (v *Value) notify() {
	if len(v.subs) == 0 {
		return
	}
	snap := make([]subscriber, len(v.subs))
	copy(snap, v.subs)
	for _, s := range snap {
		s.fn(v)
	}
}

// String renders the value with its kind's default format spec.
func (v *Value) String() string {
	s, err := v.Format("")
	if err != nil {
		return fmt.Sprintf("!%v", err)
	}
	return s
}
