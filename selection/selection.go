// Package selection filters projected verb rows.
//
// An expression is a list of items that must all hold:
//
//	tense=past       the column tense has the value past
//	tense=past|nil   one of the values
//	!modal=can       the column modal has not the value can
//	subject          the column subject is present
//	!complementizer  the column complementizer is absent
package selection

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/revelaction/vclause/clause"
	"github.com/revelaction/vclause/verb"
)

type Item struct {
	Header string `json:"header"`

	// Values are the accepted values. Empty means presence is tested.
	Values []string `json:"values,omitempty"`

	Negate bool `json:"negate,omitempty"`
}

func (it Item) String() string {
	s := it.Header
	if len(it.Values) > 0 {
		s += "=" + strings.Join(it.Values, "|")
	}

	if it.Negate {
		return "!" + s
	}

	return s
}

func (it Item) match(value string) bool {
	var ok bool
	if len(it.Values) == 0 {
		ok = value != clause.None
	} else {
		ok = slices.Contains(it.Values, value)
	}

	return ok != it.Negate
}

type Expr []Item

func (e Expr) String() string {
	sl := make([]string, len(e))
	for i, item := range e {
		sl[i] = item.String()
	}

	return strings.Join(sl, " ")
}

// Headers returns the unique headers the expression reads, in order.
func (e Expr) Headers() []string {
	var headers []string
	for _, item := range e {
		if !slices.Contains(headers, item.Header) {
			headers = append(headers, item.Header)
		}
	}

	return headers
}

// Match reports whether the row values, aligned to headers, satisfy all
// items. An item whose header is not projected never matches. An empty
// expression matches every row.
func (e Expr) Match(headers, values []string) bool {
	for _, item := range e {
		idx := slices.Index(headers, item.Header)
		if idx < 0 || idx >= len(values) {
			return false
		}

		if !item.match(values[idx]) {
			return false
		}
	}

	return true
}

// Parse parses the user input and converts it to an Expr. Values are
// lower-cased like the projected values.
func Parse(args []string) (Expr, error) {
	var expr Expr
	for _, arg := range args {
		for _, field := range strings.Fields(arg) {
			item, err := parseItem(field)
			if err != nil {
				return nil, err
			}

			expr = append(expr, item)
		}
	}

	return expr, nil
}

func parseItem(s string) (Item, error) {
	item := Item{}
	if strings.HasPrefix(s, "!") {
		item.Negate = true
		s = s[1:]
	}

	header, values, hasValue := strings.Cut(s, "=")
	if header == "" {
		return Item{}, errors.New("empty header in selection item")
	}

	if !verb.IsHeader(header) {
		return Item{}, fmt.Errorf("unknown header in selection item: %s", header)
	}

	item.Header = header

	if hasValue {
		for _, v := range strings.Split(values, "|") {
			if v == "" {
				return Item{}, fmt.Errorf("empty value in selection item: %s", s)
			}
			item.Values = append(item.Values, strings.ToLower(v))
		}
	}

	return item, nil
}
