package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/ubelabs/expense-tracker/internal/models"
)

func TestNormalize(t *testing.T) {
	assert.Equal(t, "alice", normalize("  Alice  "))
	assert.Equal(t, "mary jane", normalize("Mary   Jane"))
	assert.Equal(t, "", normalize("   "))
	assert.Equal(t, "a@b.com", normalize("A@B.COM"))
}

func TestValidatePassword(t *testing.T) {
	assert.NoError(t, validatePassword("Passw0rd!"))
	assert.Error(t, validatePassword("Pw0rd!a"), "too short")
	assert.Error(t, validatePassword("password1!"), "no upper case")
	assert.Error(t, validatePassword("PASSWORD1!"), "no lower case")
	assert.Error(t, validatePassword("Password!"), "no digit")
	assert.Error(t, validatePassword("Password1"), "no special character")
}

func TestValidateBudget(t *testing.T) {
	ok := models.Budget{Name: "Groceries", AmountLimit: 500}
	assert.NoError(t, validateBudget(&ok))

	zero := ok
	zero.AmountLimit = 0
	assert.Error(t, validateBudget(&zero), "zero limit would make progress undefined")

	negative := ok
	negative.AmountLimit = -10
	assert.Error(t, validateBudget(&negative))

	unnamed := ok
	unnamed.Name = ""
	assert.Error(t, validateBudget(&unnamed))
}

func TestValidateSaving(t *testing.T) {
	ok := models.Saving{Name: "Vacation", CurrentAmount: 100, TargetAmount: 500}
	assert.NoError(t, validateSaving(&ok))

	zero := ok
	zero.TargetAmount = 0
	assert.Error(t, validateSaving(&zero), "zero target would make progress undefined")

	negative := ok
	negative.CurrentAmount = -5
	assert.Error(t, validateSaving(&negative))
}

func TestValidateTransaction(t *testing.T) {
	budgetID := int64(3)
	ok := models.Transaction{
		Name:       "Rent",
		Amount:     1200,
		Type:       models.TypeExpense,
		Date:       time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC),
		CategoryID: 1,
		BudgetID:   &budgetID,
	}
	assert.NoError(t, validateTransaction(&ok))

	income := ok
	income.Type = models.TypeIncome
	assert.Error(t, validateTransaction(&income), "income must not reference a budget")

	income.BudgetID = nil
	assert.NoError(t, validateTransaction(&income))

	badType := ok
	badType.Type = "transfer"
	assert.Error(t, validateTransaction(&badType))

	zeroAmount := ok
	zeroAmount.Amount = 0
	assert.Error(t, validateTransaction(&zeroAmount))
}
