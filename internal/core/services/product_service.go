package services

import (
	"github.com/schergr/interiordesign/internal/apperrors"
	"github.com/schergr/interiordesign/internal/core/domain"
	portsrepo "github.com/schergr/interiordesign/internal/core/ports/repositories"
	portssvc "github.com/schergr/interiordesign/internal/core/ports/services"
	"github.com/schergr/interiordesign/internal/dto"
)

// NewProductService creates the product catalog service.
func NewProductService(repo portsrepo.ProductRepositoryFacade) portssvc.ProductSvcFacade {
	return &entityService[domain.Product, dto.CreateProductRequest, dto.UpdateProductRequest]{
		entity: "Product",
		repo:   repo,
		build: func(req dto.CreateProductRequest) (*domain.Product, error) {
			if err := requireText("sku", req.SKU); err != nil {
				return nil, err
			}
			if err := requireText("name", req.Name); err != nil {
				return nil, err
			}
			return &domain.Product{
				SKU:      req.SKU,
				Name:     req.Name,
				Price:    dto.ToNullDecimal(req.Price),
				VendorID: req.VendorID,
			}, nil
		},
		apply: func(p *domain.Product, req dto.UpdateProductRequest) error {
			if err := setTextIfPresent("sku", &p.SKU, req.SKU); err != nil {
				return err
			}
			if err := setTextIfPresent("name", &p.Name, req.Name); err != nil {
				return err
			}
			setMoney(&p.Price, req.Price)
			setNullable(&p.VendorID, req.VendorID)
			return nil
		},
	}
}

// NewInventoryService creates the stock tracking service.
func NewInventoryService(repo portsrepo.InventoryRepositoryFacade) portssvc.InventorySvcFacade {
	return &entityService[domain.InventoryRecord, dto.CreateInventoryRequest, dto.UpdateInventoryRequest]{
		entity: "Inventory record",
		repo:   repo,
		build: func(req dto.CreateInventoryRequest) (*domain.InventoryRecord, error) {
			if req.ProductID == nil {
				return nil, apperrors.Validationf("Invalid input: product_id is required")
			}
			rec := &domain.InventoryRecord{ProductID: req.ProductID}
			setIfPresent(&rec.Quantity, req.Quantity)
			if rec.Quantity < 0 {
				return nil, apperrors.Validationf("Invalid input: quantity must not be negative")
			}
			return rec, nil
		},
		apply: func(rec *domain.InventoryRecord, req dto.UpdateInventoryRequest) error {
			if err := setRequiredRef("product_id", &rec.ProductID, req.ProductID); err != nil {
				return err
			}
			setIfPresent(&rec.Quantity, req.Quantity)
			if rec.Quantity < 0 {
				return apperrors.Validationf("Invalid input: quantity must not be negative")
			}
			return nil
		},
	}
}
