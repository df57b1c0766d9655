package geo

import (
	"math"
	"math/rand"
)

type Point struct {
	Lat float64 `json:"lat" yaml:"lat"`
	Lng float64 `json:"lng" yaml:"lng"`
}

type Bounds struct {
	MinLat, MaxLat float64
	MinLng, MaxLng float64
}

func (b Bounds) Contains(p Point) bool {
	return p.Lat >= b.MinLat && p.Lat <= b.MaxLat &&
		p.Lng >= b.MinLng && p.Lng <= b.MaxLng
}

func (b Bounds) Clamp(p Point) Point {
	return Point{
		Lat: math.Max(b.MinLat, math.Min(b.MaxLat, p.Lat)),
		Lng: math.Max(b.MinLng, math.Min(b.MaxLng, p.Lng)),
	}
}

// Generator draws coordinates inside a city. The zero value is not usable; use
// NewSantaCruz or fill every field.
type Generator struct {
	Center          Point
	Radius          float64
	Zones           []Zone
	ZoneProbability float64
	Bounds          Bounds
}

func NewSantaCruz() *Generator {
	return &Generator{
		Center:          CityCenter,
		Radius:          CityRadius,
		Zones:           SantaCruzZones,
		ZoneProbability: ZoneProbability,
		Bounds:          CityBounds,
	}
}

// Generate returns a point rounded to 8 decimals. The draw order (zone coin,
// zone index, lat offset, lng offset) is fixed so a seeded source reproduces
// the same sequence.
func (g *Generator) Generate(r *rand.Rand) Point {
	center, radius := g.Center, g.Radius
	if len(g.Zones) > 0 && r.Float64() < g.ZoneProbability {
		z := g.Zones[r.Intn(len(g.Zones))]
		center, radius = Point{Lat: z.Lat, Lng: z.Lng}, z.Radius
	}

	p := Point{
		Lat: center.Lat + uniform(r, -radius, radius),
		Lng: center.Lng + uniform(r, -radius, radius),
	}
	p = g.Bounds.Clamp(p)

	return Point{Lat: Round(p.Lat, 8), Lng: Round(p.Lng, 8)}
}

func uniform(r *rand.Rand, lo, hi float64) float64 {
	return lo + (hi-lo)*r.Float64()
}

// Round rounds half away from zero to the given number of decimal places.
func Round(v float64, places int) float64 {
	pow := math.Pow(10, float64(places))
	return math.Round(v*pow) / pow
}
