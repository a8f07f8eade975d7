package entities

import "time"

// LeadStage tracks where a lead sits in the intake pipeline.
//
// Pipeline stages are ordered (new -> contacted -> quoted -> funded).
// Disposition stages (dnc, not-interested) are terminal labels outside the
// pipeline ordering; they can be applied from any pipeline stage.

type LeadStage string

const (
	LeadStageNew           LeadStage = "new"
	LeadStageContacted     LeadStage = "contacted"
	LeadStageQuoted        LeadStage = "quoted"
	LeadStageFunded        LeadStage = "funded"
	LeadStageDNC           LeadStage = "dnc"
	LeadStageNotInterested LeadStage = "not-interested"
)

var leadStageRank = map[LeadStage]int{
	LeadStageNew:       0,
	LeadStageContacted: 1,
	LeadStageQuoted:    2,
	LeadStageFunded:    3,
}

// IsValid reports whether s is a known pipeline stage or disposition.
func (s LeadStage) IsValid() bool {
	switch s {
	case LeadStageNew, LeadStageContacted, LeadStageQuoted, LeadStageFunded,
		LeadStageDNC, LeadStageNotInterested:
		return true
	}
	return false
}

// IsDisposition reports whether s is a terminal disposition label.
func (s LeadStage) IsDisposition() bool {
	return s == LeadStageDNC || s == LeadStageNotInterested
}

// Rank returns the pipeline position of s, or -1 for dispositions.
func (s LeadStage) Rank() int {
	if r, ok := leadStageRank[s]; ok {
		return r
	}
	return -1
}

// Vehicle is the vehicle a lead wants covered. The odometer reading feeds
// the policy expiration-mileage default at conversion time.
type Vehicle struct {
	Make     string `json:"make"`
	Model    string `json:"model"`
	Year     int    `json:"year"`
	Odometer int64  `json:"odometer"`
	VIN      string `json:"vin,omitempty"`
}

// Note is a free-text annotation an operator leaves on a lead.
type Note struct {
	Text      string    `json:"text"`
	Author    string    `json:"author,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// Lead is a prospective customer record prior to policy issuance.
//
// Storage model (DynamoDB):
//   - PK: id
//
// Ownership: a lead owns its quotes (by lead_id on the quote) and acquires
// at most one policy, ever, through the conversion use case.
type Lead struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Stage     LeadStage `json:"stage"`
	Vehicle   Vehicle   `json:"vehicle"`
	Notes     []Note    `json:"notes,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
