// Package entity contains the core business objects of the shop.
package entity

import "github.com/shopspring/decimal"

// Product is a sellable item of the catalogue.
type Product struct {
	ID       string          // Opaque identifier assigned by the store on creation.
	Name     string          // Display name; not unique.
	Price    decimal.Decimal // Unit price. Expected non-negative, not enforced.
	Category string          // Sport tag, e.g. "Soccer".
	Quantity int             // Units in stock.
}
