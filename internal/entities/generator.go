// =============================================================================
// Sales Data Generator - Entity Generators
// =============================================================================
//
// This package builds the four entity collections the sampler draws from.
//
// GENERATION ORDER (matters for reproducibility with a fixed seed):
//   1. Products  - walk the catalog, then synthesize variants up to target
//   2. Stores    - random city + random zone
//   3. Customers - person data + random home city
//   4. Sellers   - random store + person data
//
// Every random draw comes from the *rand.Rand handed to New. Person data
// comes from the injected persona.Provider.
//
// =============================================================================

package entities

import (
	"errors"
	"fmt"
	"math/rand/v2"

	"github.com/ginjaninja78/sales-data-generator/internal/catalog"
	"github.com/ginjaninja78/sales-data-generator/internal/persona"
	"github.com/ginjaninja78/sales-data-generator/internal/types"
)

// FirstProductID is the ID assigned to the first product.
const FirstProductID = 1000

// VariantPoolSize bounds which products can seed a variant.
const VariantPoolSize = 60

// Variant price multiplier range.
const (
	VariantFactorMin = 0.8
	VariantFactorMax = 1.3
)

// ErrNoStores is returned when sellers are requested without any store.
var ErrNoStores = errors.New("cannot assign sellers: no stores generated")

// Generator builds entities from a seeded source and a person-data provider.
type Generator struct {
	rng    *rand.Rand
	people persona.Provider
}

// New returns a Generator drawing from rng and people.
func New(rng *rand.Rand, people persona.Provider) *Generator {
	return &Generator{rng: rng, people: people}
}

// =============================================================================
// PRODUCTS
// =============================================================================

// Products returns exactly target products with sequential IDs.
//
// The catalog is walked in order first. Each item gets a price drawn from its
// category band and a random style suffix. If the catalog runs out before
// target, variants are synthesized from a random product among the first
// VariantPoolSize, with suffixes rotating through catalog.Variants().
func (g *Generator) Products(target int) []types.Product {
	products := make([]types.Product, 0, target)
	styles := catalog.Styles()
	nextID := FirstProductID

walk:
	for _, cat := range catalog.Categories() {
		band := catalog.PriceBand(cat.Name)
		for _, item := range cat.Items {
			if len(products) >= target {
				break walk
			}
			price := catalog.RoundPrice(catalog.Uniform(g.rng, band.Min, band.Max))
			style := styles[g.rng.IntN(len(styles))]
			products = append(products, types.Product{
				ID:        nextID,
				Name:      item + " " + style,
				Category:  cat.Name,
				BasePrice: price,
			})
			nextID++
		}
	}

	variants := catalog.Variants()
	for k := 0; len(products) < target; k++ {
		pool := min(VariantPoolSize, len(products))
		base := products[g.rng.IntN(pool)]
		factor := catalog.Uniform(g.rng, VariantFactorMin, VariantFactorMax)
		products = append(products, types.Product{
			ID:        nextID,
			Name:      base.Name + " " + variants[k%len(variants)],
			Category:  base.Category,
			BasePrice: catalog.ScalePrice(base.BasePrice, factor),
		})
		nextID++
	}

	return products
}

// =============================================================================
// STORES
// =============================================================================

// Stores returns n stores named "{brand} {city} {zone}". Names may repeat.
func (g *Generator) Stores(n int) []types.Store {
	cities := catalog.Cities()
	zones := catalog.Zones()

	stores := make([]types.Store, n)
	for i := range stores {
		city := cities[g.rng.IntN(len(cities))]
		zone := zones[g.rng.IntN(len(zones))]
		stores[i] = types.Store{
			ID:   i,
			Name: fmt.Sprintf("%s %s %s", catalog.Brand, city, zone),
			City: city,
		}
	}
	return stores
}

// =============================================================================
// CUSTOMERS AND SELLERS
// =============================================================================

// Customers returns n customers with unique emails and random home cities.
// A provider that runs out of unique emails aborts generation.
func (g *Generator) Customers(n int) ([]types.Customer, error) {
	cities := catalog.Cities()

	customers := make([]types.Customer, n)
	for i := range customers {
		city := cities[g.rng.IntN(len(cities))]
		name := g.people.Name()
		email, err := g.people.UniqueEmail()
		if err != nil {
			return nil, fmt.Errorf("failed to generate customer %d: %w", i+1, err)
		}
		customers[i] = types.Customer{Name: name, Email: email, City: city}
	}
	return customers, nil
}

// Sellers returns n sellers, each bound to one uniformly chosen store.
func (g *Generator) Sellers(n int, stores []types.Store) ([]types.Seller, error) {
	if len(stores) == 0 {
		return nil, ErrNoStores
	}

	sellers := make([]types.Seller, n)
	for i := range sellers {
		store := stores[g.rng.IntN(len(stores))]
		sellers[i] = types.Seller{
			Name:  g.people.Name(),
			Email: g.people.CompanyEmail(),
			Store: store,
		}
	}
	return sellers, nil
}
