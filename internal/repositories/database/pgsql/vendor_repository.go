package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/schergr/interiordesign/internal/core/domain"
	portsrepo "github.com/schergr/interiordesign/internal/core/ports/repositories"
	"github.com/schergr/interiordesign/internal/models"
)

type PgxVendorRepository struct {
	*entityRepository[domain.Vendor, models.Vendor]
}

// Ensure PgxVendorRepository implements portsrepo.VendorRepositoryFacade
var _ portsrepo.VendorRepositoryFacade = (*PgxVendorRepository)(nil)

func newPgxVendorRepository(pool *pgxpool.Pool) portsrepo.VendorRepositoryFacade {
	return &PgxVendorRepository{newEntityRepository(pool, tableSpec[domain.Vendor, models.Vendor]{
		entity: "Vendor",
		table:  "vendors",
		selectSQL: `
SELECT v.id, v.name, v.contact_name, v.contact_info, v.phone, v.email,
	v.address_line1, v.address_line2, v.city, v.state, v.postal_code, v.country,
	v.tax_id, v.website_url, v.portal_url
FROM vendors v`,
		idColumn: "v.id",
		insertSQL: `
INSERT INTO vendors (name, contact_name, contact_info, phone, email, address_line1, address_line2,
	city, state, postal_code, country, tax_id, website_url, portal_url)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
RETURNING id`,
		updateSQL: `
UPDATE vendors SET name = $2, contact_name = $3, contact_info = $4, phone = $5, email = $6,
	address_line1 = $7, address_line2 = $8, city = $9, state = $10, postal_code = $11,
	country = $12, tax_id = $13, website_url = $14, portal_url = $15
WHERE id = $1`,
		insertArgs: func(v *domain.Vendor) []any { return vendorColumns(v) },
		updateArgs: func(v *domain.Vendor) []any { return append([]any{v.ID}, vendorColumns(v)...) },
		toDomain: func(m models.Vendor) domain.Vendor {
			return domain.Vendor{
				ID:           m.ID,
				Name:         m.Name,
				ContactName:  m.ContactName,
				ContactInfo:  m.ContactInfo,
				Phone:        m.Phone,
				Email:        m.Email,
				AddressLine1: m.AddressLine1,
				AddressLine2: m.AddressLine2,
				City:         m.City,
				State:        m.State,
				PostalCode:   m.PostalCode,
				Country:      m.Country,
				TaxID:        m.TaxID,
				WebsiteURL:   m.WebsiteURL,
				PortalURL:    m.PortalURL,
			}
		},
	})}
}

func vendorColumns(v *domain.Vendor) []any {
	return []any{
		v.Name, v.ContactName, v.ContactInfo, v.Phone, v.Email, v.AddressLine1, v.AddressLine2,
		v.City, v.State, v.PostalCode, v.Country, v.TaxID, v.WebsiteURL, v.PortalURL,
	}
}

type PgxDocumentRepository struct {
	*entityRepository[domain.Document, models.Document]
}

var _ portsrepo.DocumentRepositoryFacade = (*PgxDocumentRepository)(nil)

func newPgxDocumentRepository(pool *pgxpool.Pool) portsrepo.DocumentRepositoryFacade {
	return &PgxDocumentRepository{newEntityRepository(pool, tableSpec[domain.Document, models.Document]{
		entity: "Document",
		table:  "documents",
		selectSQL: `
SELECT d.id, d.filename, d.vendor_id, v.name AS vendor_name
FROM documents d
LEFT JOIN vendors v ON v.id = d.vendor_id`,
		idColumn:  "d.id",
		insertSQL: `INSERT INTO documents (filename, vendor_id) VALUES ($1, $2) RETURNING id`,
		updateSQL: `UPDATE documents SET filename = $2, vendor_id = $3 WHERE id = $1`,
		insertArgs: func(d *domain.Document) []any {
			return []any{d.Filename, d.VendorID}
		},
		updateArgs: func(d *domain.Document) []any {
			return []any{d.ID, d.Filename, d.VendorID}
		},
		toDomain: func(m models.Document) domain.Document {
			return domain.Document{ID: m.ID, Filename: m.Filename, VendorID: m.VendorID, VendorName: m.VendorName}
		},
	})}
}
