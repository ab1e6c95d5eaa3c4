package domain

import "strings"

// Client is a customer of the business.
type Client struct {
	ID             int64
	Name           string
	FirstName      *string
	LastName       *string
	PrimaryPhone   *string
	PrimaryEmail   *string
	SecondaryPhone *string
	SecondaryEmail *string
	ReferralType   *string
	EmployeeID     *int64
	EmployeeName   *string // resolved from employees.name on reads
	ContactInfo    *string
}

// DeriveClientName joins first and last name, trimming surrounding whitespace.
func DeriveClientName(firstName, lastName *string) string {
	var fn, ln string
	if firstName != nil {
		fn = *firstName
	}
	if lastName != nil {
		ln = *lastName
	}
	return strings.TrimSpace(fn + " " + ln)
}
