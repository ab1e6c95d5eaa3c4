package dto

import (
	"github.com/schergr/interiordesign/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateProductRequest defines the data needed to create a product.
type CreateProductRequest struct {
	SKU      string           `json:"sku" binding:"required,notblank"`
	Name     string           `json:"name" binding:"required,notblank"`
	Price    *decimal.Decimal `json:"price"`
	VendorID *int64           `json:"vendor_id"`
}

// UpdateProductRequest defines the fields that may be changed on a product.
type UpdateProductRequest struct {
	SKU      *string                   `json:"sku" binding:"omitempty,notblank"`
	Name     *string                   `json:"name" binding:"omitempty,notblank"`
	Price    Nullable[decimal.Decimal] `json:"price" swaggertype:"string"`
	VendorID Nullable[int64]           `json:"vendor_id" swaggertype:"integer"`
}

// ProductResponse defines the data returned for a product.
// Price is a fixed-point string, vendor is the resolved vendor name.
type ProductResponse struct {
	ID       int64   `json:"id"`
	SKU      string  `json:"sku"`
	Name     string  `json:"name"`
	Price    *string `json:"price"`
	VendorID *int64  `json:"vendor_id"`
	Vendor   *string `json:"vendor"`
}

// ToProductResponse converts a domain.Product to ProductResponse DTO
func ToProductResponse(p *domain.Product) ProductResponse {
	return ProductResponse{
		ID:       p.ID,
		SKU:      p.SKU,
		Name:     p.Name,
		Price:    FormatMoney(p.Price),
		VendorID: p.VendorID,
		Vendor:   p.VendorName,
	}
}

// ToListProductResponse converts a slice of domain.Product to a slice of ProductResponse DTOs
func ToListProductResponse(products []domain.Product) []ProductResponse {
	res := make([]ProductResponse, len(products))
	for i := range products {
		res[i] = ToProductResponse(&products[i])
	}
	return res
}

// CreateInventoryRequest defines the data needed to record stock for a product.
type CreateInventoryRequest struct {
	ProductID *int64 `json:"product_id" binding:"required"`
	Quantity  *int   `json:"quantity" binding:"omitempty,gte=0"`
}

// UpdateInventoryRequest defines the fields that may be changed on an inventory record.
type UpdateInventoryRequest struct {
	ProductID Nullable[int64] `json:"product_id" swaggertype:"integer"`
	Quantity  *int            `json:"quantity" binding:"omitempty,gte=0"`
}

// InventoryResponse defines the data returned for an inventory record.
type InventoryResponse struct {
	ID        int64   `json:"id"`
	ProductID *int64  `json:"product_id"`
	Product   *string `json:"product"`
	Quantity  int     `json:"quantity"`
}

func ToInventoryResponse(r *domain.InventoryRecord) InventoryResponse {
	return InventoryResponse{
		ID:        r.ID,
		ProductID: r.ProductID,
		Product:   r.ProductName,
		Quantity:  r.Quantity,
	}
}

func ToListInventoryResponse(records []domain.InventoryRecord) []InventoryResponse {
	res := make([]InventoryResponse, len(records))
	for i := range records {
		res[i] = ToInventoryResponse(&records[i])
	}
	return res
}
