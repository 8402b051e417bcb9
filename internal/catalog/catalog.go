// =============================================================================
// Sales Data Generator - Reference Catalog
// =============================================================================
//
// This package holds the fixed reference data every other stage samples from:
//   - The category -> item taxonomy (ordered, since order drives product IDs)
//   - The ten cities where stores and customers live
//   - Store zone suffixes, product style suffixes and variant suffixes
//   - The weighted payment-method table
//   - Price bands and quantity ranges per category
//
// Everything here is pure data. Accessors hand out copies so no caller can
// mutate the shared tables.
//
// =============================================================================

package catalog

import (
	"math/rand/v2"
	"slices"

	"github.com/shopspring/decimal"
)

// Brand prefixes every generated store name.
const Brand = "Sodimac"

// Category names.
const (
	Herramientas = "Herramientas"
	Construccion = "Construcción"
	Pintura      = "Pintura"
	Electricos   = "Eléctricos"
	Plomeria     = "Plomería"
	Iluminacion  = "Iluminación"
	Pisos        = "Pisos"
	Jardin       = "Jardín"
	Bano         = "Baño"
	Cocina       = "Cocina"
)

// =============================================================================
// TAXONOMY
// =============================================================================

// Category is one entry of the product taxonomy.
type Category struct {
	// Name is the category label written to the output.
	Name string

	// Items are the base item names sold under this category.
	Items []string
}

var categories = []Category{
	{Herramientas, []string{"Taladro", "Sierra Eléctrica", "Lijadora", "Martillo", "Destornillador", "Llave Inglesa"}},
	{Construccion, []string{"Cemento Portland", "Arena", "Ladrillo", "Varilla", "Malla Electrosoldada", "Tubería PVC"}},
	{Pintura, []string{"Pintura Latex", "Esmalte", "Thinner", "Brocha", "Rodillo", "Sellador"}},
	{Electricos, []string{"Cable THW", "Toma Corriente", "Interruptor", "Bombillo LED", "Extensión", "Cinta Aislante"}},
	{Plomeria, []string{"Llave de Paso", "Tubo PVC", "Codo 90°", "Válvula Check", "Sifón", "Flexible Agua"}},
	{Iluminacion, []string{"Lámpara LED", "Reflector", "Aplique Pared", "Foco Ahorrador", "Tira LED"}},
	{Pisos, []string{"Cerámica", "Porcelanato", "Piso Laminado", "Alfombra", "Vinilo"}},
	{Jardin, []string{"Pala", "Rastrillo", "Manguera", "Tijera Podar", "Maceta", "Tierra Abonada"}},
	{Bano, []string{"Sanitario", "Lavamanos", "Grifería", "Ducha", "Espejo", "Mueble Baño"}},
	{Cocina, []string{"Lavaplatos", "Grifería Cocina", "Campana Extractora", "Mueble Cocina"}},
}

var cities = []string{
	"Bogotá", "Medellín", "Cali", "Barranquilla", "Bucaramanga",
	"Pereira", "Cartagena", "Ibagué", "Manizales", "Villavicencio",
}

var zones = []string{"Norte", "Sur", "Centro", "Occidente", "Oriente", "Calle 80", "Autopista", "Suba"}

var styles = []string{"Premium", "Estándar", "Profesional", "Hogar", "Industrial"}

var variants = []string{"Plus", "Eco", "Pro", "Max", "V2", "Deluxe"}

// Categories returns the taxonomy in its fixed order.
func Categories() []Category {
	out := make([]Category, len(categories))
	for i, c := range categories {
		out[i] = Category{Name: c.Name, Items: slices.Clone(c.Items)}
	}
	return out
}

// ItemCount is the number of (category, item) pairs in the taxonomy.
func ItemCount() int {
	n := 0
	for _, c := range categories {
		n += len(c.Items)
	}
	return n
}

// Cities returns the fixed city list.
func Cities() []string { return slices.Clone(cities) }

// Zones returns the store zone suffixes.
func Zones() []string { return slices.Clone(zones) }

// Styles returns the product style suffixes.
func Styles() []string { return slices.Clone(styles) }

// Variants returns the variant suffixes, in rotation order.
func Variants() []string { return slices.Clone(variants) }

// IsCity reports whether name is one of the fixed cities.
func IsCity(name string) bool { return slices.Contains(cities, name) }

// =============================================================================
// PRICING AND QUANTITY RULES
// =============================================================================

// Band is a closed numeric range.
type Band struct {
	Min float64
	Max float64
}

// PriceBand returns the base-price range for a category.
func PriceBand(category string) Band {
	switch category {
	case Construccion, Pisos, Bano, Cocina:
		return Band{Min: 50000, Max: 800000}
	case Herramientas, Electricos:
		return Band{Min: 25000, Max: 350000}
	default:
		return Band{Min: 10000, Max: 200000}
	}
}

// QuantityRange returns the inclusive [min, max] units sold per transaction.
func QuantityRange(category string) (int, int) {
	switch category {
	case Construccion, Pintura:
		return 1, 10
	case Herramientas, Electricos:
		return 1, 3
	default:
		return 1, 5
	}
}

// Uniform draws a float uniformly from [lo, hi].
func Uniform(r *rand.Rand, lo, hi float64) float64 {
	return lo + (hi-lo)*r.Float64()
}

// RoundPrice rounds a raw amount to 2 decimal places.
func RoundPrice(v float64) decimal.Decimal {
	return decimal.NewFromFloat(v).Round(2)
}

// ScalePrice multiplies price by factor and rounds to 2 decimal places.
func ScalePrice(price decimal.Decimal, factor float64) decimal.Decimal {
	return price.Mul(decimal.NewFromFloat(factor)).Round(2)
}

// =============================================================================
// PAYMENT METHODS
// =============================================================================

// PaymentMethod is a label with its selection probability.
type PaymentMethod struct {
	Label  string
	Weight float64
}

var paymentMethods = []PaymentMethod{
	{"Tarjeta Crédito", 0.35},
	{"Tarjeta Débito", 0.25},
	{"Efectivo", 0.15},
	{"Transferencia", 0.10},
	{"Tarjeta Sodimac", 0.15},
}

// PaymentMethods returns the weighted payment table.
func PaymentMethods() []PaymentMethod { return slices.Clone(paymentMethods) }

// PickWeighted draws one label by cumulative-distribution sampling.
// Weights are expected to sum to 1.0; the last label absorbs rounding slack.
func PickWeighted(r *rand.Rand, methods []PaymentMethod) string {
	x := r.Float64()
	cumulative := 0.0
	for _, m := range methods {
		cumulative += m.Weight
		if x < cumulative {
			return m.Label
		}
	}
	return methods[len(methods)-1].Label
}
