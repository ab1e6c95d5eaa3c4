package domain

// Canonical lead stages seeded on first startup.
var DefaultLeadStages = []string{"New", "Follow-Up", "Sold", "Lost"}

// LeadStage is a step of the sales pipeline.
type LeadStage struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Lead is a prospective client.
type Lead struct {
	ID          int64
	Name        string
	ContactInfo *string
	StageID     *int64
	StageName   *string
}
