package dto

import "github.com/Alwanly/sec-edgar-navigator/internal/models"

// Submissions is the body of data.sec.gov/submissions/CIK##########.json.
type Submissions struct {
	CIK     string   `json:"cik"`
	Name    string   `json:"name"`
	Tickers []string `json:"tickers"`
	Filings struct {
		Recent FilingColumns    `json:"recent"`
		Files  []SubmissionPage `json:"files"`
	} `json:"filings"`
}

// SubmissionPage points at an older page of filings. The page body is a bare FilingColumns.
type SubmissionPage struct {
	Name        string `json:"name"`
	FilingCount int    `json:"filingCount"`
	FilingFrom  string `json:"filingFrom"`
	FilingTo    string `json:"filingTo"`
}

// FilingColumns holds filings column-wise, newest first: index i of every slice is one filing.
type FilingColumns struct {
	AccessionNumber []string `json:"accessionNumber"`
	FilingDate      []string `json:"filingDate"`
	Form            []string `json:"form"`
	PrimaryDocument []string `json:"primaryDocument"`
}

// Match returns up to limit filings whose form equals form exactly, in listing order.
func (f FilingColumns) Match(form string, limit int) []models.Filing {
	var out []models.Filing
	if limit <= 0 {
		return out
	}
	for i := 0; i < len(f.AccessionNumber) && i < len(f.Form); i++ {
		if f.Form[i] != form {
			continue
		}
		out = append(out, models.Filing{
			AccessionNumber: f.AccessionNumber[i],
			FilingDate:      at(f.FilingDate, i),
			Form:            f.Form[i],
			PrimaryDocument: at(f.PrimaryDocument, i),
		})
		if len(out) == limit {
			break
		}
	}
	return out
}

func at(s []string, i int) string {
	if i < len(s) {
		return s[i]
	}
	return ""
}
