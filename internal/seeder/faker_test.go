package seeder

import (
	"regexp"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/Rana718/distria-seed/internal/geo"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	skuPattern   = regexp.MustCompile(`^PRD-\d{5}-[A-Z]{2}$`)
	phonePattern = regexp.MustCompile(`^\+591 (\d{8}|3 3\d{2}-\d{4})$`)
)

func TestSKUFormat(t *testing.T) {
	g := NewDataGenerator(1)
	for i := 0; i < 500; i++ {
		sku := g.SKU()
		assert.Regexp(t, skuPattern, sku)
	}
}

func TestPriceRangeAndScale(t *testing.T) {
	g := NewDataGenerator(2)
	lo := decimal.NewFromFloat(minPrice)
	hi := decimal.NewFromFloat(maxPrice)

	for i := 0; i < 1000; i++ {
		p := g.Price()
		assert.True(t, p.GreaterThanOrEqual(lo) && p.LessThanOrEqual(hi), "price %s", p)
		assert.True(t, p.Equal(p.Round(2)), "price %s has more than 2 decimals", p)
	}
}

func TestRecentDateWholeDaysBack(t *testing.T) {
	now := time.Date(2024, time.June, 1, 12, 0, 0, 0, time.UTC)
	g := NewDataGenerator(3, WithClock(func() time.Time { return now }))

	for i := 0; i < 500; i++ {
		d := g.RecentDate(60)
		assert.False(t, d.After(now))
		assert.False(t, d.Before(now.AddDate(0, 0, -60)))
		assert.Equal(t, now.Hour(), d.Hour())
	}
}

func TestPhoneFormat(t *testing.T) {
	g := NewDataGenerator(4)
	for i := 0; i < 200; i++ {
		assert.Regexp(t, phonePattern, g.Phone())
	}
}

func TestCustomerEmailsAreUnique(t *testing.T) {
	g := NewDataGenerator(5)
	seen := make(map[string]bool)
	for i := 0; i < 2000; i++ {
		email := g.CustomerEmail(g.FullName())
		require.False(t, seen[email], "duplicate email %s", email)
		seen[email] = true
		assert.True(t, utf8.ValidString(email))
		assert.NotContains(t, email, " ")
	}
}

func TestCustomerEmailStripsAccents(t *testing.T) {
	g := NewDataGenerator(6)
	email := g.CustomerEmail("José Áñez Cuéllar")
	assert.True(t, strings.HasPrefix(email, "jose.anez1@"), email)
}

func TestZoneAddressTemplates(t *testing.T) {
	g := NewDataGenerator(7)
	prefixes := []string{"Av. ", "Radial ", "anillo", "Calle ", "Barrio "}
	hits := make(map[string]int)

	for i := 0; i < 500; i++ {
		addr := g.Address()
		require.NotEmpty(t, addr)
		for _, p := range prefixes {
			if strings.Contains(addr, p) {
				hits[p]++
			}
		}
	}
	for _, p := range prefixes {
		assert.Positive(t, hits[p], "template with %q never produced", p)
	}
}

func TestFakerAddresses(t *testing.T) {
	g := NewDataGenerator(8, WithFakerAddresses())
	addr := g.Address()
	assert.Contains(t, addr, ", ")
}

func TestAddressReference(t *testing.T) {
	g := NewDataGenerator(9)
	for i := 0; i < 100; i++ {
		assert.NotEmpty(t, g.AddressReference())
	}
}

func TestDescriptionFitsColumn(t *testing.T) {
	g := NewDataGenerator(10)
	for i := 0; i < 200; i++ {
		assert.LessOrEqual(t, utf8.RuneCountInString(g.Description()), maxDescriptionLen)
	}
}

func TestProductNameShape(t *testing.T) {
	g := NewDataGenerator(11)
	for i := 0; i < 100; i++ {
		parts := strings.Fields(g.ProductName())
		require.GreaterOrEqual(t, len(parts), 3)
		assert.Contains(t, productCategories, parts[0])
	}
}

func TestCoordinatesUseInjectedGenerator(t *testing.T) {
	fixed := &geo.Generator{
		Center: geo.CityCenter,
		Bounds: geo.CityBounds,
	}
	g := NewDataGenerator(12, WithCoordinates(fixed))
	p := g.Coordinates()
	assert.InDelta(t, geo.CityCenter.Lat, p.Lat, 1e-8)
	assert.InDelta(t, geo.CityCenter.Lng, p.Lng, 1e-8)
}

func TestTruncateWords(t *testing.T) {
	tests := []struct {
		name  string
		in    string
		limit int
		want  string
	}{
		{"short", "hola mundo", 20, "hola mundo"},
		{"cut on space", "uno dos tres cuatro", 10, "uno dos."},
		{"no space", "abcdefghij", 5, "abcd."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := truncateWords(tt.in, tt.limit)
			assert.Equal(t, tt.want, got)
			assert.LessOrEqual(t, utf8.RuneCountInString(got), tt.limit)
		})
	}
}
