package geogen

import "github.com/arl/geogen/oracle"

// Bounds is a [min, max] size bound on a sized output (a multipoint's
// point count, a contour's vertex count, a hole's vertex count, ...).
type Bounds struct {
	Min, Max int
}

// resolveSize validates and clamps a Bounds against a structural floor
// (e.g. 3 for a contour): negative bounds or max < min are a hard
// ConfigurationError; min below floor is clamped up and a SizeWarning is
// logged but generation proceeds, mirroring §6/§7's error model.
func resolveSize(log Logger, b Bounds, floor int, what string) (Bounds, error) {
	if b.Min < 0 || b.Max < 0 {
		return b, newError(ConfigurationError, "%s: negative size bound (min=%d, max=%d)", what, b.Min, b.Max)
	}
	if b.Max < b.Min {
		return b, newError(ConfigurationError, "%s: max size %d below min size %d", what, b.Max, b.Min)
	}
	if b.Max < floor {
		return b, newError(ConfigurationError, "%s: max size %d below structural minimum %d", what, b.Max, floor)
	}
	if b.Min < floor {
		log.Warningf("%s: min size %d below structural minimum %d, clamping up", what, b.Min, floor)
		b.Min = floor
	}
	return b, nil
}

// pickSize draws a concrete size within b using the oracle's integer range
// draw, the way the original generator's "list" strategy picks a length.
func pickSize(o oracle.Oracle, b Bounds) int {
	if b.Min == b.Max {
		return b.Min
	}
	return o.Integer(b.Min, b.Max)
}
