package filter

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

var (
	// ErrNilPredicate is returned when there is no predicate to render.
	ErrNilPredicate = errors.New("nil predicate")
	// ErrEmptyRange is returned for a Range with neither bound set.
	ErrEmptyRange = errors.New("range predicate without bounds")
)

// Columns whitelists the columns a table exposes to predicates. Column
// names are interpolated into SQL, so anything outside the list is refused.
type Columns struct {
	Text    []string
	Numeric []string
}

var (
	// CustomerColumns are the columns of the customers table.
	CustomerColumns = Columns{
		Text: []string{"first_name", "last_name", "address", "email", "phone_number"},
	}
	// ProductColumns are the columns of the products table.
	ProductColumns = Columns{
		Text:    []string{"name", "description", "category", "image_url"},
		Numeric: []string{"price"},
	}
)

// SQL renders pred as a WHERE clause body for Postgres using positional
// parameters starting at $firstArg, e.g.
//
//	(strpos(name, $1) > 0 OR (price >= $2 AND price <= $3))
func SQL(pred Predicate, cols Columns, firstArg int) (string, []any, error) {
	b := &sqlBuilder{cols: cols, next: firstArg}
	clause, err := b.render(pred)
	if err != nil {
		return "", nil, err
	}
	return clause, b.args, nil
}

type sqlBuilder struct {
	cols Columns
	next int
	args []any
}

func (b *sqlBuilder) bind(v any) string {
	b.args = append(b.args, v)
	ph := fmt.Sprintf("$%d", b.next)
	b.next++
	return ph
}

func (b *sqlBuilder) render(pred Predicate) (string, error) {
	switch p := pred.(type) {
	case nil:
		return "", ErrNilPredicate
	case Contains:
		if !slices.Contains(b.cols.Text, p.Column) {
			return "", fmt.Errorf("unknown text column %q", p.Column)
		}
		// strpos keeps the term literal; LIKE would treat % and _ as wildcards.
		return fmt.Sprintf("strpos(%s, %s) > 0", p.Column, b.bind(p.Term)), nil
	case Range:
		if !slices.Contains(b.cols.Numeric, p.Column) {
			return "", fmt.Errorf("unknown numeric column %q", p.Column)
		}
		switch {
		case p.Min != nil && p.Max != nil:
			return fmt.Sprintf("(%s >= %s AND %s <= %s)", p.Column, b.bind(*p.Min), p.Column, b.bind(*p.Max)), nil
		case p.Min != nil:
			return fmt.Sprintf("%s >= %s", p.Column, b.bind(*p.Min)), nil
		case p.Max != nil:
			return fmt.Sprintf("%s <= %s", p.Column, b.bind(*p.Max)), nil
		}
		return "", ErrEmptyRange
	case Any:
		return b.join([]Predicate(p), " OR ", "FALSE")
	case All:
		return b.join([]Predicate(p), " AND ", "TRUE")
	}
	return "", fmt.Errorf("unsupported predicate %T", pred)
}

func (b *sqlBuilder) join(children []Predicate, sep, empty string) (string, error) {
	if len(children) == 0 {
		return empty, nil
	}
	parts := make([]string, 0, len(children))
	for _, c := range children {
		s, err := b.render(c)
		if err != nil {
			return "", err
		}
		parts = append(parts, s)
	}
	if len(parts) == 1 {
		return parts[0], nil
	}
	return "(" + strings.Join(parts, sep) + ")", nil
}
