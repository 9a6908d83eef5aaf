package cart

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

type badgeRecorder struct {
	values map[Location]int
	calls  int
}

func (b *badgeRecorder) RenderBadge(loc Location, count int) {
	if b.values == nil {
		b.values = make(map[Location]int)
	}
	b.values[loc] = count
	b.calls++
}

type listRecorder struct {
	lines []Line
	total string
	calls int
}

func (l *listRecorder) RenderCartList(lines []Line, total string) {
	l.lines = lines
	l.total = total
	l.calls++
}

func product(name, price string) Product {
	return Product{Name: name, PriceText: price, ImageRef: "img/" + name + ".png"}
}

func TestCart_TotalFormatting(t *testing.T) {
	c := New()
	assert.Equal(t, "£0", c.Total())

	c.Add(product("Linen Dress", "£10.00"))
	c.Add(product("Silver Ring", "£5.50"))
	assert.Equal(t, "£15.50", c.Total())
	assert.Equal(t, 2, c.Count())

	require.True(t, c.RemoveAt(0))
	require.True(t, c.RemoveAt(0))
	assert.Equal(t, "£0", c.Total())
}

func TestCart_DuplicatesAreSeparateLineItems(t *testing.T) {
	c := New()
	a := c.Add(product("Boots", "£40.00"))
	b := c.Add(product("Boots", "£40.00"))

	require.Equal(t, 2, c.Count())
	assert.NotEqual(t, a.ID, b.ID)
	assert.Equal(t, 1, a.Quantity)
	assert.Equal(t, 1, b.Quantity)
	assert.Equal(t, "£80.00", c.Total())
}

func TestCart_RemoveAtOutOfRangeIsNoop(t *testing.T) {
	c := New()
	c.Add(product("Tee", "£12.00"))
	c.Add(product("Jeans", "£30.00"))
	before := c.Items()

	for _, idx := range []int{-1, c.Count(), 99} {
		assert.False(t, c.RemoveAt(idx), "RemoveAt(%d)", idx)
	}
	if diff := cmp.Diff(before, c.Items()); diff != "" {
		t.Fatalf("items changed after bad removals (-want +got):\n%s", diff)
	}

	empty := New()
	assert.False(t, empty.RemoveAt(0))
	assert.Equal(t, 0, empty.Count())
}

func TestCart_RemoveAtKeepsOrder(t *testing.T) {
	c := New()
	c.Add(product("a", "£1.00"))
	c.Add(product("b", "£2.00"))
	c.Add(product("c", "£3.00"))

	require.True(t, c.RemoveAt(1))
	items := c.Items()
	require.Len(t, items, 2)
	assert.Equal(t, "a", items[0].Name)
	assert.Equal(t, "c", items[1].Name)
	assert.Equal(t, "£4.00", c.Total())
}

func TestCart_BadgesStayConsistent(t *testing.T) {
	badges := &badgeRecorder{}
	c := New(WithBadges(badges))
	rng := rand.New(rand.NewSource(7))

	for i := 0; i < 200; i++ {
		if rng.Intn(3) == 0 {
			c.RemoveAt(rng.Intn(c.Count()+2) - 1)
		} else {
			c.Add(product(fmt.Sprintf("p%d", i), "£1.00"))
		}
		if badges.calls == 0 {
			continue
		}
		require.Equal(t, badges.values[Primary], badges.values[Secondary], "step %d", i)
		require.Equal(t, c.Count(), badges.values[Primary], "step %d", i)
	}
}

func TestCart_RendersListUnconditionally(t *testing.T) {
	list := &listRecorder{}
	badges := &badgeRecorder{}
	c := New(WithList(list), WithBadges(badges))

	c.Add(product("Heels", "£25.00"))
	c.Add(product("Gown", "£80.00"))
	c.RemoveAt(0)

	assert.Equal(t, 3, list.calls)
	assert.Equal(t, 6, badges.calls)
	want := []Line{{Name: "Gown", PriceText: "£80.00", ImageRef: "img/Gown.png"}}
	if diff := cmp.Diff(want, list.lines); diff != "" {
		t.Fatalf("lines mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, "£80.00", list.total)

	// A failed removal does not re-render.
	c.RemoveAt(5)
	assert.Equal(t, 3, list.calls)
}

func TestCart_MissingSinksDoNotPanic(t *testing.T) {
	c := New()
	assert.NotPanics(t, func() {
		c.Add(product("Scarf", "£9.00"))
		c.RemoveAt(0)
		c.Refresh()
	})

	list := &listRecorder{}
	c.SetList(list)
	c.Refresh()
	assert.Equal(t, 1, list.calls)
	assert.Equal(t, "£0", list.total)

	c.SetList(nil)
	c.Add(product("Scarf", "£9.00"))
	assert.Equal(t, 1, list.calls)
}

func TestCart_UnparseablePriceCountsAsZeroAndWarns(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	c := New(WithLogger(zap.New(core)))

	c.Add(product("Mystery Box", "call for price"))
	item := c.Add(product("Belt", "£15.00"))

	assert.Equal(t, "£15.00", c.Total())
	assert.True(t, item.PriceValid)
	assert.False(t, c.Items()[0].PriceValid)

	entries := logs.FilterMessage("unparseable price; counting as zero").All()
	require.Len(t, entries, 1)
	assert.Equal(t, "call for price", entries[0].ContextMap()["price_text"])
}

func TestCart_OversizedPriceCountsAsZero(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	c := New(WithLogger(zap.New(core)))

	c.Add(product("Belt", "£10.00"))
	huge := c.Add(product("Yacht", "£1e30"))

	assert.False(t, huge.PriceValid)
	assert.Equal(t, "£10.00", c.Total())
	assert.Len(t, logs.FilterMessage("unparseable price; counting as zero").All(), 1)
}

func TestCart_TotalThatWouldOverflowCountsAsZero(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	c := New(WithLogger(zap.New(core)))

	c.Add(product("Vault", "£92233720368547758.07"))
	extra := c.Add(product("Key", "£1.00"))

	assert.False(t, extra.PriceValid)
	assert.Equal(t, "£92233720368547758.07", c.Total())
	assert.Len(t, logs.FilterMessage("price overflows cart total; counting as zero").All(), 1)

	require.True(t, c.RemoveAt(0))
	assert.Equal(t, "£0.00", c.Total())
}

func TestCart_ExtraDecimalsRoundToPence(t *testing.T) {
	c := New()
	item := c.Add(product("Scarf", "£10.005"))

	assert.True(t, item.PriceValid)
	assert.Equal(t, int64(1001), item.Price.Minor)
	assert.Equal(t, "£10.01", c.Total())
}

func TestCart_CustomCurrency(t *testing.T) {
	c := New(WithCurrency("$"))
	assert.Equal(t, "$0", c.Total())
	c.Add(product("Cap", "$3.25"))
	assert.Equal(t, "$3.25", c.Total())
}

func TestCart_ItemsReturnsCopy(t *testing.T) {
	c := New()
	c.Add(product("Hoodie", "£35.00"))

	items := c.Items()
	items[0].Name = "mutated"
	assert.Equal(t, "Hoodie", c.Items()[0].Name)
	assert.Nil(t, New().Items())
}

func TestLocationString(t *testing.T) {
	assert.Equal(t, "primary", Primary.String())
	assert.Equal(t, "secondary", Secondary.String())
	assert.Equal(t, "unknown", Location(9).String())
}
