package dto

// CompanyTicker is one entry of https://www.sec.gov/files/company_tickers.json.
// The document is an object keyed by row index ("0", "1", ...).
type CompanyTicker struct {
	CIK    int64  `json:"cik_str"`
	Ticker string `json:"ticker"`
	Title  string `json:"title"`
}

type CompanyTickers map[string]CompanyTicker
