package export_report

// ExportReportResponse HTTP response model
type ExportReportResponse struct {
	Date         string `json:"date"`
	Path         string `json:"path"`
	Transactions int    `json:"transactions"`
}
