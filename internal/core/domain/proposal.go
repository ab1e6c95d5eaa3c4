package domain

import "github.com/shopspring/decimal"

// Proposal is a priced offer made for a project.
type Proposal struct {
	ID          int64
	ProjectID   *int64
	ProjectName *string
	Description *string
}

// Invoice bills against a proposal.
type Invoice struct {
	ID         int64
	ProposalID *int64
	Amount     decimal.NullDecimal
}
