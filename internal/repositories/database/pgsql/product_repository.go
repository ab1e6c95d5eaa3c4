package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/schergr/interiordesign/internal/core/domain"
	portsrepo "github.com/schergr/interiordesign/internal/core/ports/repositories"
	"github.com/schergr/interiordesign/internal/models"
)

type PgxProductRepository struct {
	*entityRepository[domain.Product, models.Product]
}

// Ensure PgxProductRepository implements portsrepo.ProductRepositoryFacade
var _ portsrepo.ProductRepositoryFacade = (*PgxProductRepository)(nil)

func newPgxProductRepository(pool *pgxpool.Pool) portsrepo.ProductRepositoryFacade {
	return &PgxProductRepository{newEntityRepository(pool, tableSpec[domain.Product, models.Product]{
		entity: "Product",
		table:  "products",
		selectSQL: `
SELECT p.id, p.sku, p.name, p.price, p.vendor_id, v.name AS vendor_name
FROM products p
LEFT JOIN vendors v ON v.id = p.vendor_id`,
		idColumn:  "p.id",
		insertSQL: `INSERT INTO products (sku, name, price, vendor_id) VALUES ($1, $2, $3, $4) RETURNING id`,
		updateSQL: `UPDATE products SET sku = $2, name = $3, price = $4, vendor_id = $5 WHERE id = $1`,
		insertArgs: func(p *domain.Product) []any {
			return []any{p.SKU, p.Name, p.Price, p.VendorID}
		},
		updateArgs: func(p *domain.Product) []any {
			return []any{p.ID, p.SKU, p.Name, p.Price, p.VendorID}
		},
		toDomain: func(m models.Product) domain.Product {
			return domain.Product{
				ID:         m.ID,
				SKU:        m.SKU,
				Name:       m.Name,
				Price:      m.Price,
				VendorID:   m.VendorID,
				VendorName: m.VendorName,
			}
		},
	})}
}

type PgxInventoryRepository struct {
	*entityRepository[domain.InventoryRecord, models.InventoryRecord]
}

var _ portsrepo.InventoryRepositoryFacade = (*PgxInventoryRepository)(nil)

func newPgxInventoryRepository(pool *pgxpool.Pool) portsrepo.InventoryRepositoryFacade {
	return &PgxInventoryRepository{newEntityRepository(pool, tableSpec[domain.InventoryRecord, models.InventoryRecord]{
		entity: "Inventory record",
		table:  "inventory",
		selectSQL: `
SELECT i.id, i.product_id, p.name AS product_name, i.quantity
FROM inventory i
LEFT JOIN products p ON p.id = i.product_id`,
		idColumn:  "i.id",
		insertSQL: `INSERT INTO inventory (product_id, quantity) VALUES ($1, $2) RETURNING id`,
		updateSQL: `UPDATE inventory SET product_id = $2, quantity = $3 WHERE id = $1`,
		insertArgs: func(r *domain.InventoryRecord) []any {
			return []any{r.ProductID, r.Quantity}
		},
		updateArgs: func(r *domain.InventoryRecord) []any {
			return []any{r.ID, r.ProductID, r.Quantity}
		},
		toDomain: func(m models.InventoryRecord) domain.InventoryRecord {
			return domain.InventoryRecord{ID: m.ID, ProductID: m.ProductID, ProductName: m.ProductName, Quantity: m.Quantity}
		},
	})}
}
