package models

import "time"

// Company is an EDGAR registrant resolved from its ticker.
type Company struct {
	CIK    string `json:"cik"`
	Ticker string `json:"ticker"`
	Title  string `json:"title"`
}

// Filing is one entry of a company's submission history.
type Filing struct {
	AccessionNumber string `json:"accession_number"`
	FilingDate      string `json:"filing_date"`
	Form            string `json:"form"`
	PrimaryDocument string `json:"primary_document"`
}

// FilingArtifact is a filing file persisted to local disk. It doubles as the
// row type of the download ledger.
type FilingArtifact struct {
	AccessionNumber string    `gorm:"primaryKey;column:accession_number" json:"accession_number"`
	FileName        string    `gorm:"primaryKey;column:file_name" json:"file_name"`
	Ticker          string    `gorm:"column:ticker;index" json:"ticker"`
	CIK             string    `gorm:"column:cik" json:"cik"`
	FilingType      string    `gorm:"column:filing_type;index" json:"filing_type"`
	FilingDate      string    `gorm:"column:filing_date" json:"filing_date"`
	PrimaryDocument string    `gorm:"column:primary_document" json:"primary_document"`
	Path            string    `gorm:"column:path" json:"path"`
	SizeBytes       int64     `gorm:"column:size_bytes" json:"size_bytes"`
	RunID           string    `gorm:"column:run_id" json:"run_id"`
	CreatedAt       time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (FilingArtifact) TableName() string {
	return "filing_artifacts"
}
