package dto

// ImportResponse reports how many rows a CSV import inserted
type ImportResponse struct {
	Inserted int `json:"inserted"`
}

// ExportQuery selects the window and filters of an export
type ExportQuery struct {
	StartDate  string `query:"start_date"`
	EndDate    string `query:"end_date"`
	Category   string `query:"category"`
	Categories string `query:"categories"`
	Kinds      string `query:"kinds"`
	SortBy     string `query:"sort_by"`
}
