package seeder

import (
	"fmt"
	"math/rand"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/Rana718/distria-seed/internal/geo"
	"github.com/go-faker/faker/v4"
	"github.com/shopspring/decimal"
)

const (
	skuPrefix         = "PRD"
	minPrice          = 5.0
	maxPrice          = 500.0
	maxDescriptionLen = 200
	notesProbability  = 0.3
	customerDays      = 180
	productDays       = 365
	orderDays         = 60
	routeDays         = 30
)

var (
	firstNames = []string{
		"Juan", "Carlos", "Luis", "Jorge", "Miguel", "José", "Fernando", "Diego", "Ricardo", "Andrés",
		"María", "Ana", "Lucía", "Carmen", "Rosa", "Daniela", "Paola", "Gabriela", "Valeria", "Sofía",
		"Marcelo", "Rodrigo", "Álvaro", "Mauricio", "Sergio", "Patricia", "Claudia", "Verónica", "Lorena", "Silvia",
	}
	lastNames = []string{
		"Pérez", "Gutiérrez", "Rojas", "Vargas", "Mendoza", "Flores", "Suárez", "Justiniano", "Áñez", "Roca",
		"Montaño", "Salvatierra", "Ribera", "Chávez", "Quiroga", "Rodríguez", "García", "López", "Fernández", "Moreno",
		"Paz", "Banzer", "Vaca", "Saucedo", "Arteaga", "Cuéllar", "Parada", "Hurtado", "Terrazas", "Céspedes",
	}
	emailDomains = []string{"gmail.com", "hotmail.com", "yahoo.com", "outlook.com", "cotas.com.bo", "entelnet.bo"}

	productCategories = []string{
		"Electrónica", "Alimentos", "Bebidas", "Ropa", "Calzado",
		"Hogar", "Ferretería", "Juguetes", "Deportes", "Libros",
	}
	colorNames = []string{
		"Rojo", "Azul", "Verde", "Amarillo", "Negro", "Blanco", "Gris", "Naranja",
		"Morado", "Rosado", "Celeste", "Turquesa", "Beige", "Marrón", "Dorado", "Plateado",
	}
	storageLocations = []string{
		"Estante A-1", "Estante A-2", "Estante B-1", "Estante B-2",
		"Bodega Principal", "Bodega Secundaria", "Refrigerador 1",
		"Zona de Carga", "Almacén General",
	}

	accentReplacer = strings.NewReplacer(
		"á", "a", "é", "e", "í", "i", "ó", "o", "ú", "u", "ü", "u", "ñ", "n",
		"Á", "a", "É", "e", "Í", "i", "Ó", "o", "Ú", "u", "Ñ", "n", " ", ".",
	)
)

type GeneratorOption func(*DataGenerator)

// WithClock fixes "now" for recent-date generation.
func WithClock(now func() time.Time) GeneratorOption {
	return func(g *DataGenerator) { g.now = now }
}

// WithFakerAddresses draws addresses from faker's real-address list instead
// of the Santa Cruz templates.
func WithFakerAddresses() GeneratorOption {
	return func(g *DataGenerator) { g.fakerAddresses = true }
}

// WithCoordinates swaps the coordinate generator.
func WithCoordinates(c *geo.Generator) GeneratorOption {
	return func(g *DataGenerator) { g.coords = c }
}

// DataGenerator produces every random value of a run from one seeded source.
// It also reseeds faker's package-level source, so only one generator should
// be active at a time.
type DataGenerator struct {
	rand           *rand.Rand
	coords         *geo.Generator
	now            func() time.Time
	fakerAddresses bool
	counter        int
}

func NewDataGenerator(seed int64, opts ...GeneratorOption) *DataGenerator {
	faker.SetRandomSource(faker.NewSafeSource(rand.NewSource(seed)))

	g := &DataGenerator{
		rand:   rand.New(rand.NewSource(seed)),
		coords: geo.NewSantaCruz(),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

func (g *DataGenerator) Now() time.Time {
	return g.now()
}

// Between returns a uniform integer in [lo, hi].
func (g *DataGenerator) Between(lo, hi int) int {
	return lo + g.rand.Intn(hi-lo+1)
}

func (g *DataGenerator) Uniform(lo, hi float64) float64 {
	return lo + (hi-lo)*g.rand.Float64()
}

func (g *DataGenerator) Chance(p float64) bool {
	return g.rand.Float64() < p
}

func pick[T any](g *DataGenerator, items []T) T {
	return items[g.rand.Intn(len(items))]
}

func (g *DataGenerator) Coordinates() geo.Point {
	return g.coords.Generate(g.rand)
}

// SKU is PRD-<5 digits>-<2 letters>. Collisions are possible and left to the
// unique index to report.
func (g *DataGenerator) SKU() string {
	return fmt.Sprintf("%s-%d-%c%c", skuPrefix, g.Between(10000, 99999), g.upperLetter(), g.upperLetter())
}

func (g *DataGenerator) upperLetter() rune {
	return rune('A' + g.rand.Intn(26))
}

func (g *DataGenerator) Price() decimal.Decimal {
	return decimal.NewFromFloat(g.Uniform(minPrice, maxPrice)).Round(2)
}

// RecentDate is now minus a whole number of days in [0, days].
func (g *DataGenerator) RecentDate(days int) time.Time {
	return g.now().AddDate(0, 0, -g.rand.Intn(days+1))
}

func (g *DataGenerator) FullName() string {
	name := pick(g, firstNames) + " " + pick(g, lastNames)
	if g.Chance(0.5) {
		name += " " + pick(g, lastNames)
	}
	return name
}

// Phone returns a Bolivian mobile or Santa Cruz landline number.
func (g *DataGenerator) Phone() string {
	if g.Chance(0.75) {
		return fmt.Sprintf("+591 %d%07d", g.Between(6, 7), g.rand.Intn(10000000))
	}
	return fmt.Sprintf("+591 3 3%02d-%04d", g.rand.Intn(100), g.rand.Intn(10000))
}

// CustomerEmail derives an address from the name; the counter keeps every
// email of a run unique.
func (g *DataGenerator) CustomerEmail(name string) string {
	g.counter++
	parts := strings.Fields(name)
	local := parts[0]
	if len(parts) > 1 {
		local += " " + parts[1]
	}
	local = accentReplacer.Replace(strings.ToLower(local))
	return fmt.Sprintf("%s%d@%s", local, g.counter, pick(g, emailDomains))
}

func (g *DataGenerator) Address() string {
	if g.fakerAddresses {
		addr := faker.GetRealAddress()
		return fmt.Sprintf("%s, %s", addr.Address, addr.City)
	}
	return g.zoneAddress()
}

func (g *DataGenerator) ProductName() string {
	word := faker.Word()
	if word != "" {
		r, size := utf8.DecodeRuneInString(word)
		word = strings.ToUpper(string(r)) + word[size:]
	}
	return fmt.Sprintf("%s %s %s", pick(g, productCategories), word, pick(g, colorNames))
}

// Description is lorem text cut to the column limit on a word boundary.
func (g *DataGenerator) Description() string {
	return truncateWords(faker.Paragraph(), maxDescriptionLen)
}

// Notes is set on roughly 30% of orders.
func (g *DataGenerator) Notes() *string {
	if !g.Chance(notesProbability) {
		return nil
	}
	s := faker.Sentence()
	return &s
}

func (g *DataGenerator) StorageLocation() string {
	return pick(g, storageLocations)
}

func (g *DataGenerator) Shuffle(ids []int64) {
	g.rand.Shuffle(len(ids), func(i, j int) { ids[i], ids[j] = ids[j], ids[i] })
}

func truncateWords(s string, limit int) string {
	if utf8.RuneCountInString(s) <= limit {
		return s
	}
	runes := []rune(s)[:limit-1]
	cut := string(runes)
	if i := strings.LastIndex(cut, " "); i > 0 {
		cut = cut[:i]
	}
	return strings.TrimRight(cut, " ,;") + "."
}
