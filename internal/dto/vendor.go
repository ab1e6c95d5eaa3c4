package dto

import "github.com/schergr/interiordesign/internal/core/domain"

// CreateVendorRequest defines the data needed to create a vendor.
type CreateVendorRequest struct {
	Name         string  `json:"name" binding:"required,notblank"`
	ContactName  *string `json:"contact_name"`
	ContactInfo  *string `json:"contact_info"`
	Phone        *string `json:"phone"`
	Email        *string `json:"email" binding:"omitempty,email"`
	AddressLine1 *string `json:"address_line1"`
	AddressLine2 *string `json:"address_line2"`
	City         *string `json:"city"`
	State        *string `json:"state"`
	PostalCode   *string `json:"postal_code"`
	Country      *string `json:"country"`
	TaxID        *string `json:"tax_id"`
	WebsiteURL   *string `json:"website_url" binding:"omitempty,url"`
	PortalURL    *string `json:"portal_url" binding:"omitempty,url"`
}

// UpdateVendorRequest defines the fields that may be changed on a vendor.
// Absent keys keep the stored value; an explicit null clears a nullable column.
type UpdateVendorRequest struct {
	Name         *string          `json:"name" binding:"omitempty,notblank"`
	ContactName  Nullable[string] `json:"contact_name" swaggertype:"string"`
	ContactInfo  Nullable[string] `json:"contact_info" swaggertype:"string"`
	Phone        Nullable[string] `json:"phone" swaggertype:"string"`
	Email        Nullable[string] `json:"email" binding:"omitempty,email" swaggertype:"string"`
	AddressLine1 Nullable[string] `json:"address_line1" swaggertype:"string"`
	AddressLine2 Nullable[string] `json:"address_line2" swaggertype:"string"`
	City         Nullable[string] `json:"city" swaggertype:"string"`
	State        Nullable[string] `json:"state" swaggertype:"string"`
	PostalCode   Nullable[string] `json:"postal_code" swaggertype:"string"`
	Country      Nullable[string] `json:"country" swaggertype:"string"`
	TaxID        Nullable[string] `json:"tax_id" swaggertype:"string"`
	WebsiteURL   Nullable[string] `json:"website_url" binding:"omitempty,url" swaggertype:"string"`
	PortalURL    Nullable[string] `json:"portal_url" binding:"omitempty,url" swaggertype:"string"`
}

// VendorResponse defines the data returned for a vendor.
type VendorResponse struct {
	ID           int64   `json:"id"`
	Name         string  `json:"name"`
	ContactName  *string `json:"contact_name"`
	ContactInfo  *string `json:"contact_info"`
	Phone        *string `json:"phone"`
	Email        *string `json:"email"`
	AddressLine1 *string `json:"address_line1"`
	AddressLine2 *string `json:"address_line2"`
	City         *string `json:"city"`
	State        *string `json:"state"`
	PostalCode   *string `json:"postal_code"`
	Country      *string `json:"country"`
	TaxID        *string `json:"tax_id"`
	WebsiteURL   *string `json:"website_url"`
	PortalURL    *string `json:"portal_url"`
}

// ToVendorResponse converts a domain.Vendor to VendorResponse DTO
func ToVendorResponse(v *domain.Vendor) VendorResponse {
	return VendorResponse{
		ID:           v.ID,
		Name:         v.Name,
		ContactName:  v.ContactName,
		ContactInfo:  v.ContactInfo,
		Phone:        v.Phone,
		Email:        v.Email,
		AddressLine1: v.AddressLine1,
		AddressLine2: v.AddressLine2,
		City:         v.City,
		State:        v.State,
		PostalCode:   v.PostalCode,
		Country:      v.Country,
		TaxID:        v.TaxID,
		WebsiteURL:   v.WebsiteURL,
		PortalURL:    v.PortalURL,
	}
}

// ToListVendorResponse converts a slice of domain.Vendor to a slice of VendorResponse DTOs
func ToListVendorResponse(vendors []domain.Vendor) []VendorResponse {
	res := make([]VendorResponse, len(vendors))
	for i := range vendors {
		res[i] = ToVendorResponse(&vendors[i])
	}
	return res
}

// CreateDocumentRequest defines the data needed to attach a document to a vendor.
type CreateDocumentRequest struct {
	Filename string `json:"filename" binding:"required,notblank"`
	VendorID *int64 `json:"vendor_id"`
}

// UpdateDocumentRequest defines the fields that may be changed on a document.
type UpdateDocumentRequest struct {
	Filename *string         `json:"filename" binding:"omitempty,notblank"`
	VendorID Nullable[int64] `json:"vendor_id" swaggertype:"integer"`
}

// DocumentResponse defines the data returned for a document.
type DocumentResponse struct {
	ID       int64   `json:"id"`
	Filename string  `json:"filename"`
	VendorID *int64  `json:"vendor_id"`
	Vendor   *string `json:"vendor"`
}

func ToDocumentResponse(d *domain.Document) DocumentResponse {
	return DocumentResponse{
		ID:       d.ID,
		Filename: d.Filename,
		VendorID: d.VendorID,
		Vendor:   d.VendorName,
	}
}

func ToListDocumentResponse(docs []domain.Document) []DocumentResponse {
	res := make([]DocumentResponse, len(docs))
	for i := range docs {
		res[i] = ToDocumentResponse(&docs[i])
	}
	return res
}
