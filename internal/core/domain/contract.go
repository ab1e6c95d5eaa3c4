package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Canonical contract statuses seeded on first startup.
var DefaultContractStatuses = []string{"Draft", "Active", "Completed"}

// Employees seeded on first startup.
var DefaultEmployees = []string{"Stephanie Scher", "Sable Murphy", "Jennifer Stewart", "Daniel Murphy"}

// ContractStatus is the lifecycle state of a contract.
type ContractStatus struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Contract is a signed agreement tying a client, project and lead together.
type Contract struct {
	ID           int64
	ClientID     *int64
	ClientName   *string
	EmployeeID   *int64
	EmployeeName *string
	ProjectID    *int64
	ProjectName  *string
	LeadID       *int64
	LeadName     *string
	StatusID     *int64
	StatusName   *string
	StartDate    *time.Time
	EndDate      *time.Time
	Amount       decimal.NullDecimal
}
