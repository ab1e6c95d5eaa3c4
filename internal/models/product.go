package models

import "github.com/shopspring/decimal"

// Product is a row of the products table joined with its vendor name.
type Product struct {
	ID         int64               `db:"id"`
	SKU        string              `db:"sku"`
	Name       string              `db:"name"`
	Price      decimal.NullDecimal `db:"price"`
	VendorID   *int64              `db:"vendor_id"`
	VendorName *string             `db:"vendor_name"`
}

// InventoryRecord is a row of the inventory table joined with its product name.
type InventoryRecord struct {
	ID          int64   `db:"id"`
	ProductID   *int64  `db:"product_id"`
	ProductName *string `db:"product_name"`
	Quantity    int     `db:"quantity"`
}

// ProjectProduct is a row of product_projects joined with the product name.
type ProjectProduct struct {
	ProjectID   int64  `db:"project_id"`
	ProductID   int64  `db:"product_id"`
	ProductName string `db:"product_name"`
	Quantity    int    `db:"quantity"`
}
