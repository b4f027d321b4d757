package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ubelabs/expense-tracker/internal/models"
)

func TestRenderReportOmitsEmptyCategories(t *testing.T) {
	report := &models.UserReport{
		Email:    "alice@example.com",
		Username: "alice",
		Budgets: []models.DueBudget{
			{Name: "Groceries", EndDate: "Aug 15, 2026", Progress: 40, DaysUntilDue: 5},
		},
	}

	body, err := RenderReport(report)
	require.NoError(t, err)

	assert.Contains(t, body, "Hi alice")
	assert.Contains(t, body, "Budgets ending soon")
	assert.Contains(t, body, "Groceries")
	assert.Contains(t, body, "40.00%")
	assert.NotContains(t, body, "Savings deadlines approaching")
	assert.NotContains(t, body, "Expenses due soon")
	assert.NotContains(t, body, "Overdue expenses")
}

func TestRenderReportAllCategories(t *testing.T) {
	report := &models.UserReport{
		Email:    "bob@example.com",
		Username: "bob",
		Budgets:  []models.DueBudget{{Name: "Gas", EndDate: "Aug 12, 2026", Progress: 90, DaysUntilDue: 2}},
		Savings:  []models.DueSaving{{Name: "Vacation", Deadline: "Aug 14, 2026", Progress: 20, DaysUntilDue: 4}},
		Upcoming: []models.DueTransaction{{Name: "Rent", Deadline: "Aug 13, 2026", DaysUntilDue: 3}},
		Overdue:  []models.OverdueTransaction{{Name: "Internet", Deadline: "Aug 8, 2026", DaysOverdue: 2}},
	}

	body, err := RenderReport(report)
	require.NoError(t, err)

	assert.Contains(t, body, "Budgets ending soon")
	assert.Contains(t, body, "Savings deadlines approaching")
	assert.Contains(t, body, "Expenses due soon")
	assert.Contains(t, body, "Overdue expenses")
}

func TestRenderReportEscapesUserContent(t *testing.T) {
	report := &models.UserReport{
		Email:    "eve@example.com",
		Username: "eve",
		Upcoming: []models.DueTransaction{{Name: "<script>alert(1)</script>", Deadline: "Aug 13, 2026", DaysUntilDue: 3}},
	}

	body, err := RenderReport(report)
	require.NoError(t, err)
	assert.NotContains(t, body, "<script>")
}
