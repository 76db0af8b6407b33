package alert

type AlertResponse struct {
	ID                  string  `json:"id"`
	EmployeeID          string  `json:"employee_id"`
	EmployeeName        *string `json:"employee_name,omitempty"`
	TimeEntryID         string  `json:"time_entry_id"`
	DistanceMeters      float64 `json:"distance_meters"`
	AllowedRadiusMeters int     `json:"allowed_radius_meters"`
	Severity            string  `json:"severity"`
	Message             string  `json:"message"`
	CreatedAt           string  `json:"created_at"`
}

type ListAlertResponse struct {
	TotalCount int64           `json:"total_count"`
	Page       int             `json:"page"`
	Limit      int             `json:"limit"`
	Alerts     []AlertResponse `json:"alerts"`
}
