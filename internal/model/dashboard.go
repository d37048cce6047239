package model

// DashboardCounts summarizes how much content the portal holds.
type DashboardCounts struct {
	Categories       int `json:"categories"`
	Jobs             int `json:"jobs"`
	Results          int `json:"results"`
	AdmitCards       int `json:"admit_cards"`
	Syllabus         int `json:"syllabus"`
	PreviousPapers   int `json:"previous_papers"`
	Materials        int `json:"materials"`
	NewsTickerActive int `json:"news_ticker_active"`
	NewsTickerTotal  int `json:"news_ticker_total"`
}
