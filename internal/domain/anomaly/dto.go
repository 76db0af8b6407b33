package anomaly

import (
	"github.com/gestoria-hr/workforce-backend-go/internal/pkg/validator"
)

// ========================================
// ANOMALY DTOs
// ========================================

type AnomalyFilter struct {
	Status     *string
	EntityType *string
	Page       int
	Limit      int
}

func (f *AnomalyFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.Status != nil && *f.Status != "" && !validator.IsInSlice(*f.Status, Statuses) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be one of OPEN, REVIEWED, RESOLVED, FALSE_POSITIVE",
		})
	}
	if f.EntityType != nil && *f.EntityType != "" && !validator.IsInSlice(*f.EntityType, EntityTypes) {
		errs = append(errs, validator.ValidationError{
			Field:   "entity_type",
			Message: "entity_type must be one of TIME_ENTRY, EXPENSE, VACATION",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateStatusRequest struct {
	ID     string `json:"-"`
	Status string `json:"status"`
}

func (r *UpdateStatusRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsInSlice(r.Status, Statuses) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be one of OPEN, REVIEWED, RESOLVED, FALSE_POSITIVE",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type AnomalyResponse struct {
	ID         string   `json:"id"`
	EntityType string   `json:"entity_type"`
	EntityID   string   `json:"entity_id"`
	EmployeeID *string  `json:"employee_id,omitempty"`
	Score      int      `json:"score"`
	Reasons    []Reason `json:"reasons"`
	Status     string   `json:"status"`
	CreatedAt  string   `json:"created_at"`
	UpdatedAt  string   `json:"updated_at"`
}

type ListAnomalyResponse struct {
	TotalCount int64             `json:"total_count"`
	Page       int               `json:"page"`
	Limit      int               `json:"limit"`
	TotalPages int               `json:"total_pages"`
	Anomalies  []AnomalyResponse `json:"anomalies"`
}
