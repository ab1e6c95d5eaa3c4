package domain

// Vendor is a supplier of products.
type Vendor struct {
	ID           int64
	Name         string
	ContactName  *string
	ContactInfo  *string
	Phone        *string
	Email        *string
	AddressLine1 *string
	AddressLine2 *string
	City         *string
	State        *string
	PostalCode   *string
	Country      *string
	TaxID        *string
	WebsiteURL   *string
	PortalURL    *string
}

// Document is a file reference attached to a vendor (catalogs, price sheets).
type Document struct {
	ID         int64
	Filename   string
	VendorID   *int64
	VendorName *string // resolved from vendors.name on reads
}
