package dto

// Export formats
const (
	FormatCSV  = "csv"
	FormatJSON = "json"
	FormatXLSX = "xlsx"
)

// ExportRequest holds the export query parameters
type ExportRequest struct {
	Format string `form:"format" binding:"omitempty,oneof=csv json xlsx"`
	Limit  int    `form:"limit" binding:"omitempty,min=1,max=10000"`
}

// ContentType returns the response content type for format
func ContentType(format string) string {
	switch format {
	case FormatCSV:
		return "text/csv"
	case FormatJSON:
		return "application/json"
	default:
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	}
}
