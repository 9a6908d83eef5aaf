package cart

import (
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/five82/chased/internal/money"
)

// Location identifies where a cart badge is displayed.
type Location int

const (
	// Primary is the desktop header badge.
	Primary Location = iota
	// Secondary is the compact (mobile) header badge.
	Secondary
)

// Locations lists every badge location in render order.
var Locations = []Location{Primary, Secondary}

func (l Location) String() string {
	switch l {
	case Primary:
		return "primary"
	case Secondary:
		return "secondary"
	default:
		return "unknown"
	}
}

// BadgeRenderer displays the item count next to the cart icon.
type BadgeRenderer interface {
	RenderBadge(loc Location, count int)
}

// ListRenderer displays the itemised cart and its formatted total.
type ListRenderer interface {
	RenderCartList(lines []Line, total string)
}

// Product is what a caller hands to Add.
type Product struct {
	Name      string
	PriceText string
	ImageRef  string
}

// Item is one line in the cart. Adding the same product twice yields two items.
type Item struct {
	ID         string
	Name       string
	PriceText  string
	ImageRef   string
	Quantity   int
	Price      money.Money
	PriceValid bool
}

// Line is the display row pushed to a ListRenderer.
type Line struct {
	Name      string
	PriceText string
	ImageRef  string
}

// Cart owns an ordered list of line items. It is not safe for concurrent use;
// callers drive it from a single event loop.
type Cart struct {
	items  []Item
	symbol string
	badges BadgeRenderer
	list   ListRenderer
	logger *zap.Logger
	newID  func() string
}

// Option configures a Cart.
type Option func(*Cart)

// WithBadges attaches the badge sink.
func WithBadges(r BadgeRenderer) Option {
	return func(c *Cart) { c.badges = r }
}

// WithList attaches the itemised list sink.
func WithList(r ListRenderer) Option {
	return func(c *Cart) { c.list = r }
}

// WithLogger sets the logger used for recoverable defects.
func WithLogger(l *zap.Logger) Option {
	return func(c *Cart) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithCurrency overrides the currency symbol stripped from price text.
func WithCurrency(symbol string) Option {
	return func(c *Cart) {
		if symbol != "" {
			c.symbol = symbol
		}
	}
}

// New returns an empty cart.
func New(opts ...Option) *Cart {
	c := &Cart{
		symbol: money.DefaultSymbol,
		logger: zap.NewNop(),
		newID:  uuid.NewString,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SetBadges swaps the badge sink. Passing nil detaches it.
func (c *Cart) SetBadges(r BadgeRenderer) {
	c.badges = r
}

// SetList swaps the list sink. Passing nil detaches it.
func (c *Cart) SetList(r ListRenderer) {
	c.list = r
}

// Add appends a new line item with quantity 1 and re-renders.
func (c *Cart) Add(p Product) Item {
	item := Item{
		ID:        c.newID(),
		Name:      p.Name,
		PriceText: p.PriceText,
		ImageRef:  p.ImageRef,
		Quantity:  1,
		Price:     money.Zero(c.symbol),
	}

	price, err := money.Parse(p.PriceText, c.symbol)
	if err == nil {
		_, err = c.Sum().Add(price)
	}
	switch {
	case err == nil:
		item.Price = price
		item.PriceValid = true
	case errors.Is(err, money.ErrOverflow):
		c.logger.Warn("price overflows cart total; counting as zero",
			zap.String("item_id", item.ID),
			zap.String("name", p.Name),
			zap.String("price_text", p.PriceText),
			zap.Error(err))
	case errors.Is(err, money.ErrInvalidPrice):
		c.logger.Warn("unparseable price; counting as zero",
			zap.String("item_id", item.ID),
			zap.String("name", p.Name),
			zap.String("price_text", p.PriceText),
			zap.Error(err))
	}

	c.items = append(c.items, item)
	c.logger.Debug("cart item added", zap.String("item_id", item.ID), zap.Int("count", len(c.items)))
	c.render()
	return item
}

// RemoveAt removes the item at index. Out-of-range indexes are ignored and
// report false.
func (c *Cart) RemoveAt(index int) bool {
	if index < 0 || index >= len(c.items) {
		c.logger.Debug("cart remove ignored", zap.Int("index", index), zap.Int("count", len(c.items)))
		return false
	}
	c.items = append(c.items[:index], c.items[index+1:]...)
	c.render()
	return true
}

// Count returns the number of line items.
func (c *Cart) Count() int {
	return len(c.items)
}

// Items returns a copy of the line items in display order.
func (c *Cart) Items() []Item {
	if len(c.items) == 0 {
		return nil
	}
	dup := make([]Item, len(c.items))
	copy(dup, c.items)
	return dup
}

// Sum returns the summed price of all items. Add keeps the running total
// within range, so items that cannot be added are skipped.
func (c *Cart) Sum() money.Money {
	total := money.Zero(c.symbol)
	for _, item := range c.items {
		if next, err := total.Add(item.Price); err == nil {
			total = next
		}
	}
	return total
}

// Total formats the cart total. An empty cart renders as the bare symbol
// followed by 0, e.g. "£0"; otherwise two decimals are shown.
func (c *Cart) Total() string {
	if len(c.items) == 0 {
		return c.symbol + "0"
	}
	return c.Sum().String()
}

// Refresh pushes the current state to both sinks without mutating anything.
func (c *Cart) Refresh() {
	c.render()
}

func (c *Cart) render() {
	count := len(c.items)
	if c.badges != nil {
		for _, loc := range Locations {
			c.badges.RenderBadge(loc, count)
		}
	}
	if c.list != nil {
		c.list.RenderCartList(c.lines(), c.Total())
	}
}

func (c *Cart) lines() []Line {
	lines := make([]Line, 0, len(c.items))
	for _, item := range c.items {
		lines = append(lines, Line{Name: item.Name, PriceText: item.PriceText, ImageRef: item.ImageRef})
	}
	return lines
}
