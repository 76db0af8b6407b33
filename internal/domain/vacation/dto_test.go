package vacation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(value string) time.Time {
	parsed, err := time.Parse("2006-01-02", value)
	if err != nil {
		panic(err)
	}
	return parsed
}

func TestWorkingDays_FullWeek(t *testing.T) {
	t.Parallel()

	// Monday through Sunday contains five working days.
	assert.Equal(t, 5, WorkingDays(date("2026-08-24"), date("2026-08-30")))
}

func TestWorkingDays_SingleDay(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 1, WorkingDays(date("2026-08-26"), date("2026-08-26")))
	assert.Equal(t, 0, WorkingDays(date("2026-08-29"), date("2026-08-29"))) // Saturday
}

func TestWorkingDays_SpansMultipleWeeks(t *testing.T) {
	t.Parallel()

	// Tue Sep 1 through Wed Sep 16: 4 + 5 + 3 working days.
	assert.Equal(t, 12, WorkingDays(date("2026-09-01"), date("2026-09-16")))
}

func TestCreateVacationRequest_Validate(t *testing.T) {
	t.Parallel()

	req := CreateVacationRequest{
		StartDate: "2026-09-01",
		EndDate:   "2026-09-05",
		Type:      "VACATION",
	}
	assert.NoError(t, req.Validate())
	assert.Equal(t, date("2026-09-01"), req.ParsedStartDate)

	reversed := CreateVacationRequest{
		StartDate: "2026-09-05",
		EndDate:   "2026-09-01",
		Type:      "VACATION",
	}
	assert.Error(t, reversed.Validate())

	badType := CreateVacationRequest{
		StartDate: "2026-09-01",
		EndDate:   "2026-09-05",
		Type:      "HOLIDAY",
	}
	assert.Error(t, badType.Validate())
}
