package domain

// LookupTable names a reference table holding canonical name rows.
type LookupTable string

const (
	LookupLeadStages       LookupTable = "lead_stages"
	LookupContractStatuses LookupTable = "contract_statuses"
	LookupEmployees        LookupTable = "employees"
)
