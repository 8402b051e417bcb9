// =============================================================================
// Sales Data Generator - Shared Types
// =============================================================================
//
// This package contains the entity and record types shared by the generation
// stages to avoid import cycles. Types defined here are used by:
//   - entities  (builds Product, Store, Customer, Seller)
//   - sampler   (reads entities, emits Record)
//   - csvwriter / xlsxwriter (serialize Record)
//
// All values are immutable once built. Nothing in the pipeline mutates an
// entity after its generator returns it.
//
// =============================================================================

package types

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// =============================================================================
// ENTITIES
// =============================================================================

// Product is a catalog entry.
type Product struct {
	// ID is the sequential product number (1000, 1001, ...).
	ID int

	// Name is "{item} {style}", optionally followed by a variant suffix.
	Name string

	// Category is one of the fixed catalog categories.
	Category string

	// BasePrice is the undiscounted unit price, rounded to 2 decimals.
	BasePrice decimal.Decimal
}

// Code returns the product identifier as written to the output, e.g. PROD-1000.
func (p Product) Code() string {
	return fmt.Sprintf("PROD-%d", p.ID)
}

// Store is a physical store. Names may repeat; ID is the identity.
type Store struct {
	// ID is the store's position in the generated store list.
	ID int

	Name string
	City string
}

// Customer is a shopper with a home city.
type Customer struct {
	Name  string
	Email string
	City  string
}

// Seller is a sales associate bound to exactly one store.
type Seller struct {
	Name  string
	Email string

	// Store is a copy of the seller's home store, fixed at creation.
	Store Store
}

// =============================================================================
// OUTPUT RECORD
// =============================================================================

// OrderIDOffset is added to the 1-based transaction index to form order IDs.
const OrderIDOffset = 100000

// DateLayout is the ISO calendar date format used for order dates.
const DateLayout = "2006-01-02"

// Header is the fixed column order of the output dataset.
var Header = []string{
	"order_id", "order_date",
	"customer_name", "customer_email", "customer_city",
	"seller_name", "seller_email",
	"product_id", "product_name", "category",
	"unit_price", "quantity",
	"store_name", "store_city",
	"payment_type",
}

// Record is one simulated sale.
type Record struct {
	// Seq is the 1-based transaction index.
	Seq int

	OrderDate time.Time
	Customer  Customer
	Seller    Seller
	Product   Product

	// UnitPrice is the final price: BasePrice, or BasePrice discounted.
	UnitPrice decimal.Decimal
	Quantity  int

	// Store is where the sale happened, always the final seller's store.
	Store Store

	PaymentType string
}

// OrderID returns the formatted order identifier, e.g. ORD-100001.
func (r Record) OrderID() string {
	return fmt.Sprintf("ORD-%d", OrderIDOffset+r.Seq)
}

// Row renders the record as strings in Header order.
func (r Record) Row() []string {
	return []string{
		r.OrderID(),
		r.OrderDate.Format(DateLayout),
		r.Customer.Name,
		r.Customer.Email,
		r.Customer.City,
		r.Seller.Name,
		r.Seller.Email,
		r.Product.Code(),
		r.Product.Name,
		r.Product.Category,
		r.UnitPrice.String(),
		fmt.Sprintf("%d", r.Quantity),
		r.Store.Name,
		r.Store.City,
		r.PaymentType,
	}
}
