package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"
)

// ImportDocument is the raw nested input an import run consumes. All
// levels are optional; an absent slice imports nothing at that level.
type ImportDocument struct {
	Restaurants []RestaurantInput `json:"restaurants"`
}

type RestaurantInput struct {
	Name  string      `json:"name"`
	Menus []MenuInput `json:"menus,omitempty"`
}

// MenuInput may carry its items under the current menu_items key or the
// legacy dishes key. The normalizer folds dishes into menu_items; when
// both are present the legacy key is authoritative.
type MenuInput struct {
	Name      string          `json:"name"`
	MenuItems []MenuItemInput `json:"menu_items,omitempty"`
	Dishes    []MenuItemInput `json:"dishes,omitempty"`
}

type MenuItemInput struct {
	Name  *string `json:"name"`
	Price Price   `json:"price,omitempty"`
}

var priceStringPattern = regexp.MustCompile(`^\d+\.?\d*$`)

// Price is a menu item price as it arrived on the wire: a JSON number
// or a numeric string. The raw form is preserved so the normalized
// document round-trips unchanged; consumers coerce with Float.
type Price struct {
	raw json.RawMessage
}

func (p *Price) UnmarshalJSON(data []byte) error {
	p.raw = append(p.raw[:0], data...)
	return nil
}

func (p Price) MarshalJSON() ([]byte, error) {
	if p.IsNull() {
		return []byte("null"), nil
	}
	return p.raw, nil
}

func (p Price) IsNull() bool {
	return len(p.raw) == 0 || bytes.Equal(p.raw, []byte("null"))
}

// String returns the original textual form, unquoted, for log messages.
func (p Price) String() string {
	if p.IsNull() {
		return ""
	}
	var s string
	if err := json.Unmarshal(p.raw, &s); err == nil {
		return s
	}
	return string(p.raw)
}

// Validate accepts a null price (deferred to store validation), a
// non-negative JSON number, or a string of digits with an optional
// single decimal point. Anything else is an input error.
func (p Price) Validate() error {
	if p.IsNull() {
		return nil
	}
	var s string
	if err := json.Unmarshal(p.raw, &s); err == nil {
		if !priceStringPattern.MatchString(s) {
			return NewInputError("invalid price format: %s", s)
		}
		return nil
	}
	var f float64
	if err := json.Unmarshal(p.raw, &f); err == nil {
		if f < 0 {
			return NewInputError("invalid price format: %s", string(p.raw))
		}
		return nil
	}
	return NewInputError("invalid price format: %s", string(p.raw))
}

// Float coerces the price for comparison and storage. A null price
// coerces to zero; the store rejects it when the item is created.
func (p Price) Float() (float64, error) {
	if p.IsNull() {
		return 0, nil
	}
	if err := p.Validate(); err != nil {
		return 0, err
	}
	var s string
	if err := json.Unmarshal(p.raw, &s); err == nil {
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, NewInputError("invalid price format: %s", s)
		}
		return f, nil
	}
	var f float64
	if err := json.Unmarshal(p.raw, &f); err != nil {
		return 0, fmt.Errorf("failed to decode price: %w", err)
	}
	return f, nil
}

// NumberPrice builds a Price from a plain number, for documents
// assembled in-process rather than decoded from JSON.
func NumberPrice(v float64) Price {
	raw, _ := json.Marshal(v)
	return Price{raw: raw}
}

// StringPrice builds a Price carrying a numeric string.
func StringPrice(s string) Price {
	raw, _ := json.Marshal(s)
	return Price{raw: raw}
}
