package repository

import (
	"fmt"
	"time"

	"github.com/ubelabs/expense-tracker/internal/models"
)

// Row fetchers feeding the deadline classifier and report aggregator.
// Windowing happens in the service so the classification logic lives in
// one place; these queries only narrow by user and category.

const budgetRowQuery = `
	SELECT u.username, u.email, b.id, b.name, b.amount_limit, b.amount_used, b.end_date
	FROM budgets b
	JOIN users u ON b.user_id = u.id`

const savingsRowQuery = `
	SELECT u.username, u.email, s.sequence, s.name, s.current_amount, s.target_amount, s.deadline_date
	FROM savings s
	JOIN users u ON s.user_id = u.id`

const transactionRowQuery = `
	SELECT u.username, u.email, t.sequence, t.name, t.amount, t.type, t.date, t.resolved, c.name
	FROM transactions t
	JOIN users u ON t.user_id = u.id
	JOIN categories c ON t.category_id = c.id`

// BudgetRows fetches a user's budgets joined with the user's identity
func (r *Repository) BudgetRows(username string) ([]models.BudgetRow, error) {
	return r.budgetRows(budgetRowQuery+` WHERE u.username = $1 ORDER BY b.sequence`, username)
}

// NotificationBudgetRows fetches budgets for every user with
// notifications enabled, ordered by username.
func (r *Repository) NotificationBudgetRows() ([]models.BudgetRow, error) {
	return r.budgetRows(budgetRowQuery + ` WHERE u.notification AND u.active ORDER BY u.username, b.sequence`)
}

func (r *Repository) budgetRows(query string, args ...interface{}) ([]models.BudgetRow, error) {
	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch budget rows: %w", err)
	}
	defer rows.Close()

	var result []models.BudgetRow
	for rows.Next() {
		var b models.BudgetRow
		if err := rows.Scan(&b.Username, &b.Email, &b.ID, &b.Name, &b.AmountLimit, &b.AmountUsed, &b.EndDate); err != nil {
			return nil, fmt.Errorf("failed to scan budget row: %w", err)
		}
		result = append(result, b)
	}
	return result, rows.Err()
}

// SavingsRows fetches a user's savings goals joined with the user's identity
func (r *Repository) SavingsRows(username string) ([]models.SavingsRow, error) {
	return r.savingsRows(savingsRowQuery+` WHERE u.username = $1 ORDER BY s.sequence`, username)
}

// NotificationSavingsRows fetches savings goals for every user with
// notifications enabled, ordered by username.
func (r *Repository) NotificationSavingsRows() ([]models.SavingsRow, error) {
	return r.savingsRows(savingsRowQuery + ` WHERE u.notification AND u.active ORDER BY u.username, s.sequence`)
}

func (r *Repository) savingsRows(query string, args ...interface{}) ([]models.SavingsRow, error) {
	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch savings rows: %w", err)
	}
	defer rows.Close()

	var result []models.SavingsRow
	for rows.Next() {
		var s models.SavingsRow
		if err := rows.Scan(&s.Username, &s.Email, &s.Sequence, &s.Name, &s.CurrentAmount, &s.TargetAmount, &s.Deadline); err != nil {
			return nil, fmt.Errorf("failed to scan savings row: %w", err)
		}
		result = append(result, s)
	}
	return result, rows.Err()
}

// UnresolvedExpenseRows fetches a user's unresolved expense transactions
func (r *Repository) UnresolvedExpenseRows(username string) ([]models.TransactionRow, error) {
	return r.transactionRows(
		transactionRowQuery+` WHERE u.username = $1 AND NOT t.resolved AND t.type = 'expense' ORDER BY t.date`,
		username)
}

// NotificationUnresolvedExpenseRows fetches unresolved expense
// transactions for every user with notifications enabled.
func (r *Repository) NotificationUnresolvedExpenseRows() ([]models.TransactionRow, error) {
	return r.transactionRows(
		transactionRowQuery + ` WHERE u.notification AND u.active AND NOT t.resolved AND t.type = 'expense' ORDER BY u.username, t.date`)
}

// MonthTransactionRows fetches a user's transactions within [from, to)
// for the monthly summary builder.
func (r *Repository) MonthTransactionRows(username string, from, to time.Time) ([]models.TransactionRow, error) {
	return r.transactionRows(
		transactionRowQuery+` WHERE u.username = $1 AND t.date >= $2 AND t.date < $3 ORDER BY t.date`,
		username, from, to)
}

func (r *Repository) transactionRows(query string, args ...interface{}) ([]models.TransactionRow, error) {
	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch transaction rows: %w", err)
	}
	defer rows.Close()

	var result []models.TransactionRow
	for rows.Next() {
		var t models.TransactionRow
		if err := rows.Scan(&t.Username, &t.Email, &t.Sequence, &t.Name, &t.Amount, &t.Type, &t.Date, &t.Resolved, &t.Category); err != nil {
			return nil, fmt.Errorf("failed to scan transaction row: %w", err)
		}
		result = append(result, t)
	}
	return result, rows.Err()
}
