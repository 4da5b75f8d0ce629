// Package cart implements the line aggregator used at checkout and the
// per-user persistence behind it. Lines are merged by their identity
// key: two additions of the same product in the same color and size
// always collapse into a single line.
package cart

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Price accepts either a JSON number or a currency-prefixed string
// such as "$12.99". Older clients send the display string verbatim.
type Price float64

func (p *Price) UnmarshalJSON(b []byte) error {
	var f float64
	if err := json.Unmarshal(b, &f); err == nil {
		*p = Price(f)
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("price must be a number or string: %w", err)
	}
	f, err := ParsePrice(s)
	if err != nil {
		return err
	}
	*p = Price(f)
	return nil
}

// ParsePrice strips a leading currency symbol and parses the rest.
func ParsePrice(s string) (float64, error) {
	s = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(s), "$"))
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid price %q", s)
	}
	return f, nil
}

// Key is the line identity: additions with an equal key merge into one
// line instead of creating a second one.
type Key struct {
	ProductID uint
	Color     string
	Size      string
}

// Line is a single cart entry holding a price snapshot of the product
// at the time it was added.
type Line struct {
	ID            string    `json:"id"`
	ProductID     uint      `json:"productId"`
	Name          string    `json:"name"`
	Price         Price     `json:"price"`
	Image         string    `json:"image"`
	SelectedColor string    `json:"selectedColor"`
	SelectedSize  string    `json:"selectedSize"`
	Quantity      int       `json:"quantity"`
	AddedAt       time.Time `json:"addedAt"`
}

// Key returns the line's identity key.
func (l Line) Key() Key {
	return Key{ProductID: l.ProductID, Color: l.SelectedColor, Size: l.SelectedSize}
}

// Cart aggregates lines for one user key. Every mutation re-serializes
// the full line list through the bound store before returning.
type Cart struct {
	store   Store
	userKey string
	lines   []Line
}

// New returns an empty cart bound to the store. Nothing is persisted
// until the first mutation.
func New(store Store, userKey string) *Cart {
	return &Cart{store: store, userKey: userKey}
}

// Open loads the persisted lines for the user key.
func Open(store Store, userKey string) (*Cart, error) {
	lines, err := store.Load(userKey)
	if err != nil {
		return nil, err
	}
	return &Cart{store: store, userKey: userKey, lines: lines}, nil
}

// Add merges the line into an existing one with the same identity key,
// incrementing its quantity, or appends it as a new line. Quantities
// below 1 are treated as 1. A missing line ID is generated.
func (c *Cart) Add(line Line) error {
	if line.Quantity < 1 {
		line.Quantity = 1
	}
	for i := range c.lines {
		if c.lines[i].Key() == line.Key() {
			c.lines[i].Quantity += line.Quantity
			return c.persist()
		}
	}
	if line.ID == "" {
		line.ID = uuid.NewString()
	}
	if line.AddedAt.IsZero() {
		line.AddedAt = time.Now()
	}
	c.lines = append(c.lines, line)
	return c.persist()
}

// SetQuantity sets the quantity of a line, clamped to a minimum of 1.
func (c *Cart) SetQuantity(lineID string, qty int) error {
	if qty < 1 {
		qty = 1
	}
	for i := range c.lines {
		if c.lines[i].ID == lineID {
			c.lines[i].Quantity = qty
			return c.persist()
		}
	}
	return fmt.Errorf("cart line %s not found", lineID)
}

// Remove deletes a single line.
func (c *Cart) Remove(lineID string) error {
	for i := range c.lines {
		if c.lines[i].ID == lineID {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
			return c.persist()
		}
	}
	return fmt.Errorf("cart line %s not found", lineID)
}

// Clear empties the cart.
func (c *Cart) Clear() error {
	c.lines = nil
	return c.persist()
}

// Lines returns a copy of the current lines.
func (c *Cart) Lines() []Line {
	out := make([]Line, len(c.lines))
	copy(out, c.lines)
	return out
}

// TotalQuantity sums quantities across all lines.
func (c *Cart) TotalQuantity() int {
	n := 0
	for _, l := range c.lines {
		n += l.Quantity
	}
	return n
}

// Total sums price multiplied by quantity across all lines.
func (c *Cart) Total() float64 {
	return Total(c.lines)
}

// Total sums price multiplied by quantity for a slice of lines.
func Total(lines []Line) float64 {
	var sum float64
	for _, l := range lines {
		sum += float64(l.Price) * float64(l.Quantity)
	}
	return sum
}

func (c *Cart) persist() error {
	return c.store.Save(c.userKey, c.lines)
}
