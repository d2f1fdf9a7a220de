package request

type ImportEmployeesRequest struct {
	// Path to the CSV file, relative to the configured import directory.
	Path string `json:"path" validate:"required"`
}
