package geo

// Zone is a named district of Santa Cruz de la Sierra. Radius is in degrees and
// bounds a square around the center, not a circle.
type Zone struct {
	Name   string  `json:"name" yaml:"name"`
	Lat    float64 `json:"lat" yaml:"lat"`
	Lng    float64 `json:"lng" yaml:"lng"`
	Radius float64 `json:"radius" yaml:"radius"`
}

// Plaza 24 de Septiembre.
var CityCenter = Point{Lat: -17.783444, Lng: -63.182127}

// CityRadius covers the metropolitan area, roughly 15km.
const CityRadius = 0.135

// ZoneProbability is the share of points drawn from a named zone rather than
// from the whole city.
const ZoneProbability = 0.8

var CityBounds = Bounds{
	MinLat: -17.9,
	MaxLat: -17.65,
	MinLng: -63.3,
	MaxLng: -63.05,
}

var SantaCruzZones = []Zone{
	// centro y primer anillo
	{Name: "Centro", Lat: -17.783444, Lng: -63.182127, Radius: 0.015},
	{Name: "Equipetrol", Lat: -17.784167, Lng: -63.180833, Radius: 0.020},

	// segundo anillo
	{Name: "Plan 3000", Lat: -17.750000, Lng: -63.166667, Radius: 0.025},
	{Name: "Villa 1ro de Mayo", Lat: -17.816667, Lng: -63.150000, Radius: 0.020},
	{Name: "Pampa de la Isla", Lat: -17.750000, Lng: -63.200000, Radius: 0.025},

	// tercer anillo
	{Name: "Av. Santos Dumont", Lat: -17.800000, Lng: -63.166667, Radius: 0.030},
	{Name: "Radial 10", Lat: -17.766667, Lng: -63.133333, Radius: 0.025},
	{Name: "Radial 13", Lat: -17.816667, Lng: -63.200000, Radius: 0.025},

	// cuarto anillo y periferia
	{Name: "Norte", Lat: -17.733333, Lng: -63.166667, Radius: 0.035},
	{Name: "Sur", Lat: -17.833333, Lng: -63.166667, Radius: 0.035},
	{Name: "Este", Lat: -17.783333, Lng: -63.116667, Radius: 0.035},
	{Name: "Oeste", Lat: -17.783333, Lng: -63.216667, Radius: 0.035},
}
