package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Project is a row of the projects table joined with its client name.
type Project struct {
	ID          int64      `db:"id"`
	Name        string     `db:"name"`
	Description *string    `db:"description"`
	StartDate   *time.Time `db:"start_date"`
	ClientID    *int64     `db:"client_id"`
	ClientName  *string    `db:"client_name"`
}

// Contract is a row of the contracts table joined with every referenced name.
type Contract struct {
	ID           int64               `db:"id"`
	ClientID     *int64              `db:"client_id"`
	ClientName   *string             `db:"client_name"`
	EmployeeID   *int64              `db:"employee_id"`
	EmployeeName *string             `db:"employee_name"`
	ProjectID    *int64              `db:"project_id"`
	ProjectName  *string             `db:"project_name"`
	LeadID       *int64              `db:"lead_id"`
	LeadName     *string             `db:"lead_name"`
	StatusID     *int64              `db:"status_id"`
	StatusName   *string             `db:"status_name"`
	StartDate    *time.Time          `db:"start_date"`
	EndDate      *time.Time          `db:"end_date"`
	Amount       decimal.NullDecimal `db:"amount"`
}

// Task is a row of the tasks table.
type Task struct {
	ID           int64      `db:"id"`
	Name         string     `db:"name"`
	DueDate      *time.Time `db:"due_date"`
	Completed    bool       `db:"completed"`
	ContractID   *int64     `db:"contract_id"`
	GoogleTaskID *string    `db:"google_task_id"`
}

// Room is a row of the rooms table joined with its project name.
type Room struct {
	ID          int64   `db:"id"`
	Name        string  `db:"name"`
	ProjectID   *int64  `db:"project_id"`
	ProjectName *string `db:"project_name"`
}

// Item is a row of the items table joined with its room name.
type Item struct {
	ID       int64   `db:"id"`
	Name     string  `db:"name"`
	RoomID   *int64  `db:"room_id"`
	RoomName *string `db:"room_name"`
}

// Proposal is a row of the proposals table joined with its project name.
type Proposal struct {
	ID          int64   `db:"id"`
	ProjectID   *int64  `db:"project_id"`
	ProjectName *string `db:"project_name"`
	Description *string `db:"description"`
}

// Invoice is a row of the invoices table.
type Invoice struct {
	ID         int64               `db:"id"`
	ProposalID *int64              `db:"proposal_id"`
	Amount     decimal.NullDecimal `db:"amount"`
}

// Note is a row of the notes table joined with its project name.
type Note struct {
	ID          int64   `db:"id"`
	Text        string  `db:"text"`
	ProjectID   *int64  `db:"project_id"`
	ProjectName *string `db:"project_name"`
}
