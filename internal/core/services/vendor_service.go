package services

import (
	"github.com/schergr/interiordesign/internal/core/domain"
	portsrepo "github.com/schergr/interiordesign/internal/core/ports/repositories"
	portssvc "github.com/schergr/interiordesign/internal/core/ports/services"
	"github.com/schergr/interiordesign/internal/dto"
)

// NewVendorService creates the vendor service.
func NewVendorService(repo portsrepo.VendorRepositoryFacade) portssvc.VendorSvcFacade {
	return &entityService[domain.Vendor, dto.CreateVendorRequest, dto.UpdateVendorRequest]{
		entity: "Vendor",
		repo:   repo,
		build:  buildVendor,
		apply:  applyVendorUpdate,
	}
}

func buildVendor(req dto.CreateVendorRequest) (*domain.Vendor, error) {
	if err := requireText("name", req.Name); err != nil {
		return nil, err
	}
	return &domain.Vendor{
		Name:         req.Name,
		ContactName:  req.ContactName,
		ContactInfo:  req.ContactInfo,
		Phone:        req.Phone,
		Email:        req.Email,
		AddressLine1: req.AddressLine1,
		AddressLine2: req.AddressLine2,
		City:         req.City,
		State:        req.State,
		PostalCode:   req.PostalCode,
		Country:      req.Country,
		TaxID:        req.TaxID,
		WebsiteURL:   req.WebsiteURL,
		PortalURL:    req.PortalURL,
	}, nil
}

func applyVendorUpdate(v *domain.Vendor, req dto.UpdateVendorRequest) error {
	if err := setTextIfPresent("name", &v.Name, req.Name); err != nil {
		return err
	}
	setNullable(&v.ContactName, req.ContactName)
	setNullable(&v.ContactInfo, req.ContactInfo)
	setNullable(&v.Phone, req.Phone)
	setNullable(&v.Email, req.Email)
	setNullable(&v.AddressLine1, req.AddressLine1)
	setNullable(&v.AddressLine2, req.AddressLine2)
	setNullable(&v.City, req.City)
	setNullable(&v.State, req.State)
	setNullable(&v.PostalCode, req.PostalCode)
	setNullable(&v.Country, req.Country)
	setNullable(&v.TaxID, req.TaxID)
	setNullable(&v.WebsiteURL, req.WebsiteURL)
	setNullable(&v.PortalURL, req.PortalURL)
	return nil
}

// NewDocumentService creates the vendor document service.
func NewDocumentService(repo portsrepo.DocumentRepositoryFacade) portssvc.DocumentSvcFacade {
	return &entityService[domain.Document, dto.CreateDocumentRequest, dto.UpdateDocumentRequest]{
		entity: "Document",
		repo:   repo,
		build: func(req dto.CreateDocumentRequest) (*domain.Document, error) {
			if err := requireText("filename", req.Filename); err != nil {
				return nil, err
			}
			return &domain.Document{Filename: req.Filename, VendorID: req.VendorID}, nil
		},
		apply: func(d *domain.Document, req dto.UpdateDocumentRequest) error {
			if err := setTextIfPresent("filename", &d.Filename, req.Filename); err != nil {
				return err
			}
			setNullable(&d.VendorID, req.VendorID)
			return nil
		},
	}
}
