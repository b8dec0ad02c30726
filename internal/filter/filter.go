// Package filter composes search predicates over customer and product
// records and renders them for the store.
package filter

import (
	"fmt"
	"strings"
	"unicode/utf8"

	appErrors "github.com/taemotherlode01/ministore-api/internal/errors"
)

// Predicate is a node of a search condition tree: Contains, Range, Any or All.
type Predicate interface {
	predicate()
}

// Contains matches when Column holds Term as a substring (case-sensitive).
type Contains struct {
	Column string
	Term   string
}

// Range matches when Column lies within [Min, Max]. A nil bound is open.
type Range struct {
	Column string
	Min    *float64
	Max    *float64
}

// Any matches when at least one child matches. An empty Any matches nothing.
type Any []Predicate

// All matches when every child matches. An empty All matches everything.
type All []Predicate

func (Contains) predicate() {}
func (Range) predicate()    {}
func (Any) predicate()      {}
func (All) predicate()      {}

// Mode decides how a price range combines with the text predicates.
type Mode int

const (
	// MatchAny ORs the price range with the text predicates: a product in
	// range matches even when none of its text fields contain the term.
	MatchAny Mode = iota
	// NarrowByPrice ANDs the price range with the OR of text predicates.
	NarrowByPrice
)

func (m Mode) String() string {
	if m == NarrowByPrice {
		return "narrow"
	}
	return "any"
}

// ParseMode maps the PRICE_FILTER_MODE setting to a Mode.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "any", "or":
		return MatchAny, nil
	case "narrow", "and":
		return NarrowByPrice, nil
	}
	return MatchAny, fmt.Errorf("unknown price filter mode %q", s)
}

var (
	// CustomerSearchColumns are the customer columns a term is matched against.
	CustomerSearchColumns = []string{"first_name", "email"}
	// ProductSearchColumns are the product columns a term is matched against.
	ProductSearchColumns = []string{"name", "description", "category"}
)

// PriceColumn is the product column price bounds apply to.
const PriceColumn = "price"

// AnyOf builds an Any, dropping nil children.
func AnyOf(preds ...Predicate) Predicate {
	out := make(Any, 0, len(preds))
	for _, p := range preds {
		if p != nil {
			out = append(out, p)
		}
	}
	return out
}

// AllOf builds an All, dropping nil children.
func AllOf(preds ...Predicate) Predicate {
	out := make(All, 0, len(preds))
	for _, p := range preds {
		if p != nil {
			out = append(out, p)
		}
	}
	return out
}

// ContainsAny matches term against each column.
func ContainsAny(term string, columns ...string) []Predicate {
	preds := make([]Predicate, 0, len(columns))
	for _, c := range columns {
		preds = append(preds, Contains{Column: c, Term: term})
	}
	return preds
}

// PriceBetween returns the price range for the given bounds, or nil when
// both are absent so that no price condition is added at all.
func PriceBetween(lo, hi *float64) Predicate {
	if lo == nil && hi == nil {
		return nil
	}
	return Range{Column: PriceColumn, Min: lo, Max: hi}
}

func validateTerm(term string) error {
	if strings.TrimSpace(term) == "" {
		return appErrors.Invalid("search term must not be empty")
	}
	// Postgres refuses NUL bytes and invalid UTF-8 in text parameters.
	if !utf8.ValidString(term) || strings.ContainsRune(term, 0) {
		return appErrors.Invalid("search term must be valid UTF-8 text")
	}
	return nil
}

// CustomerTerm selects customers whose first name or email contains term.
func CustomerTerm(term string) (Predicate, error) {
	if err := validateTerm(term); err != nil {
		return nil, err
	}
	return AnyOf(ContainsAny(term, CustomerSearchColumns...)...), nil
}

// ProductTerm selects products whose name, description or category contains
// term, combined with the optional price bounds according to mode.
func ProductTerm(term string, lo, hi *float64, mode Mode) (Predicate, error) {
	if err := validateTerm(term); err != nil {
		return nil, err
	}
	text := ContainsAny(term, ProductSearchColumns...)
	price := PriceBetween(lo, hi)
	if price == nil {
		return AnyOf(text...), nil
	}
	if mode == NarrowByPrice {
		return AllOf(AnyOf(text...), price), nil
	}
	return AnyOf(append(text, price)...), nil
}
