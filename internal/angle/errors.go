package angle

import "errors"

// Sentinel errors, matched with errors.Is.
var (
	// ErrParse reports text that is not a signed float, a d:m:s triple,
	// or either of those with a recognized unit marker or sign letter.
	ErrParse = errors.New("angle: parse error")

	// ErrRangeConstraint reports a unit a kind defines no range for,
	// such as an hour range on latitude.
	ErrRangeConstraint = errors.New("angle: no range constraint")

	// ErrFormatSpec reports a malformed format specification or template.
	ErrFormatSpec = errors.New("angle: bad format spec")

	// ErrUnknownTag reports a registry tag word with no registered kind.
	ErrUnknownTag = errors.New("angle: unknown kind tag")
)
