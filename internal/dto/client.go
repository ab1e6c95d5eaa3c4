package dto

import "github.com/schergr/interiordesign/internal/core/domain"

// CreateClientRequest defines the data needed to create a client.
// Name may be omitted when first_name or last_name is given; it is derived from them.
type CreateClientRequest struct {
	Name           *string `json:"name"`
	FirstName      *string `json:"first_name"`
	LastName       *string `json:"last_name"`
	PrimaryPhone   *string `json:"primary_phone"`
	PrimaryEmail   *string `json:"primary_email" binding:"omitempty,email"`
	SecondaryPhone *string `json:"secondary_phone"`
	SecondaryEmail *string `json:"secondary_email" binding:"omitempty,email"`
	ReferralType   *string `json:"referral_type"`
	EmployeeID     *int64  `json:"employee_id"`
	ContactInfo    *string `json:"contact_info"`
}

// UpdateClientRequest defines the fields that may be changed on a client.
type UpdateClientRequest struct {
	Name           *string          `json:"name" binding:"omitempty,notblank"`
	FirstName      Nullable[string] `json:"first_name" swaggertype:"string"`
	LastName       Nullable[string] `json:"last_name" swaggertype:"string"`
	PrimaryPhone   Nullable[string] `json:"primary_phone" swaggertype:"string"`
	PrimaryEmail   Nullable[string] `json:"primary_email" binding:"omitempty,email" swaggertype:"string"`
	SecondaryPhone Nullable[string] `json:"secondary_phone" swaggertype:"string"`
	SecondaryEmail Nullable[string] `json:"secondary_email" binding:"omitempty,email" swaggertype:"string"`
	ReferralType   Nullable[string] `json:"referral_type" swaggertype:"string"`
	EmployeeID     Nullable[int64]  `json:"employee_id" swaggertype:"integer"`
	ContactInfo    Nullable[string] `json:"contact_info" swaggertype:"string"`
}

// ClientResponse defines the data returned for a client.
type ClientResponse struct {
	ID             int64   `json:"id"`
	Name           string  `json:"name"`
	FirstName      *string `json:"first_name"`
	LastName       *string `json:"last_name"`
	PrimaryPhone   *string `json:"primary_phone"`
	PrimaryEmail   *string `json:"primary_email"`
	SecondaryPhone *string `json:"secondary_phone"`
	SecondaryEmail *string `json:"secondary_email"`
	ReferralType   *string `json:"referral_type"`
	EmployeeID     *int64  `json:"employee_id"`
	Employee       *string `json:"employee"`
	ContactInfo    *string `json:"contact_info"`
}

// ToClientResponse converts a domain.Client to ClientResponse DTO
func ToClientResponse(c *domain.Client) ClientResponse {
	return ClientResponse{
		ID:             c.ID,
		Name:           c.Name,
		FirstName:      c.FirstName,
		LastName:       c.LastName,
		PrimaryPhone:   c.PrimaryPhone,
		PrimaryEmail:   c.PrimaryEmail,
		SecondaryPhone: c.SecondaryPhone,
		SecondaryEmail: c.SecondaryEmail,
		ReferralType:   c.ReferralType,
		EmployeeID:     c.EmployeeID,
		Employee:       c.EmployeeName,
		ContactInfo:    c.ContactInfo,
	}
}

// ToListClientResponse converts a slice of domain.Client to a slice of ClientResponse DTOs
func ToListClientResponse(clients []domain.Client) []ClientResponse {
	res := make([]ClientResponse, len(clients))
	for i := range clients {
		res[i] = ToClientResponse(&clients[i])
	}
	return res
}
