package models

// Vendor is a row of the vendors table.
type Vendor struct {
	ID           int64   `db:"id"`
	Name         string  `db:"name"`
	ContactName  *string `db:"contact_name"`
	ContactInfo  *string `db:"contact_info"`
	Phone        *string `db:"phone"`
	Email        *string `db:"email"`
	AddressLine1 *string `db:"address_line1"`
	AddressLine2 *string `db:"address_line2"`
	City         *string `db:"city"`
	State        *string `db:"state"`
	PostalCode   *string `db:"postal_code"`
	Country      *string `db:"country"`
	TaxID        *string `db:"tax_id"`
	WebsiteURL   *string `db:"website_url"`
	PortalURL    *string `db:"portal_url"`
}

// Document is a row of the documents table joined with its vendor name.
type Document struct {
	ID         int64   `db:"id"`
	Filename   string  `db:"filename"`
	VendorID   *int64  `db:"vendor_id"`
	VendorName *string `db:"vendor_name"`
}
