package domain

import "github.com/shopspring/decimal"

// Product is a catalog item sold by a vendor.
type Product struct {
	ID         int64
	SKU        string
	Name       string
	Price      decimal.NullDecimal
	VendorID   *int64
	VendorName *string // resolved from vendors.name on reads
}

// InventoryRecord tracks stock of a product independent of project usage.
type InventoryRecord struct {
	ID          int64
	ProductID   *int64
	ProductName *string
	Quantity    int
}

// DefaultProjectProductQuantity is used when a product is linked to a project without a quantity.
const DefaultProjectProductQuantity = 1

// ProjectProduct is one row of the product/project join table.
type ProjectProduct struct {
	ProductID   int64
	ProductName string
	Quantity    int
}
