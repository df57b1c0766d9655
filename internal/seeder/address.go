package seeder

import "fmt"

var (
	avenues = []string{
		"Monseñor Rivero", "San Martín", "Cristo Redentor", "Banzer", "Alemana", "Busch",
		"Irala", "Cañoto", "Grigotá", "Piraí", "Roca y Coronado", "Santos Dumont",
		"Beni", "Paraguá", "Virgen de Cotoca", "Mutualista", "Uruguay", "Brasil",
	}
	streets = []string{
		"Libertad", "Ayacucho", "Junín", "Sucre", "Bolívar", "Florida", "Independencia",
		"24 de Septiembre", "René Moreno", "Warnes", "Velasco", "Suárez de Figueroa",
		"Seoane", "Charcas", "Chuquisaca", "Potosí", "Cochabamba", "Murillo",
	}
	neighborhoods = []string{
		"Equipetrol", "Las Palmas", "Hamacas", "Urbarí", "Sirari", "Los Lotes", "Plan 3000",
		"Villa 1ro de Mayo", "El Trompillo", "Barrio Lindo", "Cañada Pailita", "La Cuchilla",
		"Pampa de la Isla", "Los Mangales", "Guapay", "Abasto", "Santa Rosita", "El Bajío",
	}
	radials  = []int{1, 4, 9, 10, 13, 17, 19, 23, 26, 27}
	rings    = []string{"1er", "2do", "3er", "4to", "5to", "6to", "7mo", "8vo"}
	ringSide = []string{"interno", "externo"}

	landmarks = []string{
		"la iglesia", "el mercado", "la plaza principal", "el colegio", "la farmacia",
		"el surtidor", "la cancha", "el módulo policial", "la parada de micros",
	}
)

// addressTemplates are the five local address shapes: avenue, radial road,
// ring road, street with neighborhood, and neighborhood with block and lot.
var addressTemplates = []func(g *DataGenerator) string{
	func(g *DataGenerator) string {
		return fmt.Sprintf("Av. %s #%d, %s", pick(g, avenues), g.Between(1, 3500), pick(g, neighborhoods))
	},
	func(g *DataGenerator) string {
		return fmt.Sprintf("Radial %d, calle %s #%d", pick(g, radials), pick(g, streets), g.Between(1, 999))
	},
	func(g *DataGenerator) string {
		return fmt.Sprintf("%s anillo %s, Av. %s #%d", pick(g, rings), pick(g, ringSide), pick(g, avenues), g.Between(1, 2500))
	},
	func(g *DataGenerator) string {
		return fmt.Sprintf("Calle %s #%d, Barrio %s", pick(g, streets), g.Between(1, 1500), pick(g, neighborhoods))
	},
	func(g *DataGenerator) string {
		return fmt.Sprintf("Barrio %s, UV %d, Mza. %d, Lote %d", pick(g, neighborhoods), g.Between(1, 160), g.Between(1, 60), g.Between(1, 40))
	},
}

func (g *DataGenerator) zoneAddress() string {
	return pick(g, addressTemplates)(g)
}

// AddressReference is the free-text hint stored next to a customer address.
func (g *DataGenerator) AddressReference() string {
	switch g.rand.Intn(4) {
	case 0:
		return fmt.Sprintf("Casa %d", g.Between(1, 250))
	case 1:
		return fmt.Sprintf("Dpto. %d%c", g.Between(1, 12), rune('A'+g.rand.Intn(4)))
	case 2:
		return fmt.Sprintf("Frente a %s", pick(g, landmarks))
	default:
		return fmt.Sprintf("A media cuadra de %s", pick(g, landmarks))
	}
}
