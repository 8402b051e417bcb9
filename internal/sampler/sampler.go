// =============================================================================
// Sales Data Generator - Transaction Sampler
// =============================================================================
//
// The sampler turns the entity collections into a stream of sale records.
// Each call to Next executes one round of the sampling protocol.
//
// DRAW ORDER (fixed; changing it changes the output for a given seed):
//   1. customer, seller, product         - uniform, independent
//   2. locality coin                     - always drawn
//      2a. local store                   - only if the coin hits and a store
//                                          exists in the customer's city
//      2b. local seller                  - only if 2a ran and that store has
//                                          sellers
//   3. discount coin, then factor        - factor only if the coin hits
//   4. quantity                          - range depends on category
//   5. payment method                    - weighted
//   6. order date                        - uniform day in [today-2y, today]
//
// The sale's store is always the final seller's store. When the locality
// rule cannot find a local store or a seller there, the original seller and
// its home store stand.
//
// =============================================================================

package sampler

import (
	"errors"
	"math/rand/v2"
	"time"

	"github.com/shopspring/decimal"

	"github.com/ginjaninja78/sales-data-generator/internal/catalog"
	"github.com/ginjaninja78/sales-data-generator/internal/types"
)

// Discount multiplier range.
const (
	DiscountFactorMin = 0.70
	DiscountFactorMax = 0.95
)

// HistoryYears is how far back order dates reach.
const HistoryYears = 2

// ErrEmptyPopulation is returned when any entity collection is empty.
var ErrEmptyPopulation = errors.New("sampler needs at least one customer, seller, product and store")

// =============================================================================
// CONFIGURATION
// =============================================================================

// Rules holds the probabilities of the correlation rules.
type Rules struct {
	// LocalityProbability is the chance a sale is routed to the customer's city.
	LocalityProbability float64

	// DiscountProbability is the chance the base price is discounted.
	DiscountProbability float64
}

// DefaultRules returns the standard rule probabilities.
func DefaultRules() Rules {
	return Rules{
		LocalityProbability: 0.8,
		DiscountProbability: 0.15,
	}
}

// Population is the read-only set of entities a sampler draws from.
type Population struct {
	Products  []types.Product
	Stores    []types.Store
	Customers []types.Customer
	Sellers   []types.Seller
}

// =============================================================================
// SAMPLER
// =============================================================================

// Sampler emits one transaction record per Next call.
type Sampler struct {
	rng   *rand.Rand
	pop   Population
	rules Rules

	payments []catalog.PaymentMethod

	// storesByCity and sellersByStore hold indexes in generation order, so a
	// uniform pick over them equals a uniform pick over a filtered slice.
	storesByCity   map[string][]int
	sellersByStore map[int][]int

	firstDay time.Time
	days     int

	seq int
}

// New returns a Sampler over pop. Order dates span HistoryYears back from
// the calendar date of today.
func New(rng *rand.Rand, pop Population, rules Rules, today time.Time) (*Sampler, error) {
	if len(pop.Customers) == 0 || len(pop.Sellers) == 0 || len(pop.Products) == 0 || len(pop.Stores) == 0 {
		return nil, ErrEmptyPopulation
	}

	s := &Sampler{
		rng:            rng,
		pop:            pop,
		rules:          rules,
		payments:       catalog.PaymentMethods(),
		storesByCity:   make(map[string][]int),
		sellersByStore: make(map[int][]int),
	}

	for i, store := range pop.Stores {
		s.storesByCity[store.City] = append(s.storesByCity[store.City], i)
	}
	for i, seller := range pop.Sellers {
		s.sellersByStore[seller.Store.ID] = append(s.sellersByStore[seller.Store.ID], i)
	}

	s.firstDay, s.days = dateWindow(today)
	return s, nil
}

// dateWindow returns the first day of the order date window and the number
// of days from it to the calendar date of today. Feb 29 maps to Feb 28 of
// the earlier year instead of rolling over into March.
func dateWindow(today time.Time) (time.Time, int) {
	y, m, d := today.Date()
	lastDay := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)

	fy := y - HistoryYears
	// Day 0 of the next month is the last day of month m.
	if dim := time.Date(fy, m+1, 0, 0, 0, 0, 0, time.UTC).Day(); d > dim {
		d = dim
	}
	firstDay := time.Date(fy, m, d, 0, 0, 0, 0, time.UTC)

	return firstDay, int(lastDay.Sub(firstDay).Hours() / 24)
}

// Emitted returns how many records have been produced so far.
func (s *Sampler) Emitted() int {
	return s.seq
}

// Next draws the next transaction record.
func (s *Sampler) Next() types.Record {
	customer := s.pop.Customers[s.rng.IntN(len(s.pop.Customers))]
	seller := s.pop.Sellers[s.rng.IntN(len(s.pop.Sellers))]
	product := s.pop.Products[s.rng.IntN(len(s.pop.Products))]

	seller = s.applyLocality(customer, seller)
	price := s.finalPrice(product)
	quantity := s.quantity(product.Category)
	payment := catalog.PickWeighted(s.rng, s.payments)
	date := s.orderDate()

	s.seq++
	return types.Record{
		Seq:         s.seq,
		OrderDate:   date,
		Customer:    customer,
		Seller:      seller,
		Product:     product,
		UnitPrice:   price,
		Quantity:    quantity,
		Store:       seller.Store,
		PaymentType: payment,
	}
}

// applyLocality routes the sale to a seller in the customer's city when the
// locality coin hits and such a seller exists.
func (s *Sampler) applyLocality(customer types.Customer, seller types.Seller) types.Seller {
	if s.rng.Float64() >= s.rules.LocalityProbability {
		return seller
	}

	local := s.storesByCity[customer.City]
	if len(local) == 0 {
		return seller
	}
	store := s.pop.Stores[local[s.rng.IntN(len(local))]]

	staff := s.sellersByStore[store.ID]
	if len(staff) == 0 {
		return seller
	}
	return s.pop.Sellers[staff[s.rng.IntN(len(staff))]]
}

func (s *Sampler) finalPrice(product types.Product) decimal.Decimal {
	if s.rng.Float64() >= s.rules.DiscountProbability {
		return product.BasePrice
	}
	factor := catalog.Uniform(s.rng, DiscountFactorMin, DiscountFactorMax)
	return catalog.ScalePrice(product.BasePrice, factor)
}

func (s *Sampler) quantity(category string) int {
	lo, hi := catalog.QuantityRange(category)
	return lo + s.rng.IntN(hi-lo+1)
}

func (s *Sampler) orderDate() time.Time {
	return s.firstDay.AddDate(0, 0, s.rng.IntN(s.days+1))
}
