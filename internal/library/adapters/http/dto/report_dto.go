package dto

// ReportRangeRequest содержит период отчета в формате RFC 3339.
type ReportRangeRequest struct {
	StartDate string `query:"startDate" validate:"required"`
	EndDate   string `query:"endDate" validate:"required"`
	Limit     int    `query:"limit"`
}
