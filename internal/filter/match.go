package filter

import "strings"

// Record is anything a predicate can be evaluated against in memory.
type Record interface {
	Text(column string) (string, bool)
	Number(column string) (float64, bool)
}

// Match evaluates pred against rec with the same semantics SQL gives the
// store. Unknown columns never match.
func Match(pred Predicate, rec Record) bool {
	switch p := pred.(type) {
	case Contains:
		v, ok := rec.Text(p.Column)
		return ok && strings.Contains(v, p.Term)
	case Range:
		v, ok := rec.Number(p.Column)
		if !ok || (p.Min == nil && p.Max == nil) {
			return false
		}
		if p.Min != nil && v < *p.Min {
			return false
		}
		if p.Max != nil && v > *p.Max {
			return false
		}
		return true
	case Any:
		for _, c := range p {
			if Match(c, rec) {
				return true
			}
		}
		return false
	case All:
		for _, c := range p {
			if !Match(c, rec) {
				return false
			}
		}
		return true
	}
	return false
}
