package repository

import (
	"fmt"

	"github.com/ubelabs/expense-tracker/internal/models"
)

// ListBudgets retrieves all budgets for a user, oldest sequence first
func (r *Repository) ListBudgets(username string) ([]models.Budget, error) {
	query := `
		SELECT b.id, b.user_id, b.sequence, b.name, b.description,
		       b.amount_limit, b.amount_used, b.start_date, b.end_date
		FROM budgets b
		JOIN users u ON b.user_id = u.id
		WHERE u.username = $1
		ORDER BY b.sequence`
	rows, err := r.db.Query(query, username)
	if err != nil {
		return nil, fmt.Errorf("failed to list budgets: %w", err)
	}
	defer rows.Close()

	var budgets []models.Budget
	for rows.Next() {
		var b models.Budget
		if err := rows.Scan(&b.ID, &b.UserID, &b.Sequence, &b.Name, &b.Description,
			&b.AmountLimit, &b.AmountUsed, &b.StartDate, &b.EndDate); err != nil {
			return nil, fmt.Errorf("failed to scan budget: %w", err)
		}
		budgets = append(budgets, b)
	}
	return budgets, rows.Err()
}

// ListBudgetNames retrieves the id/name pairs of a user's budgets
func (r *Repository) ListBudgetNames(username string) ([]models.BudgetName, error) {
	query := `
		SELECT b.id, b.name
		FROM budgets b
		JOIN users u ON b.user_id = u.id
		WHERE u.username = $1
		ORDER BY b.sequence`
	rows, err := r.db.Query(query, username)
	if err != nil {
		return nil, fmt.Errorf("failed to list budget names: %w", err)
	}
	defer rows.Close()

	var names []models.BudgetName
	for rows.Next() {
		var n models.BudgetName
		if err := rows.Scan(&n.ID, &n.Name); err != nil {
			return nil, fmt.Errorf("failed to scan budget name: %w", err)
		}
		names = append(names, n)
	}
	return names, rows.Err()
}

// CreateBudget inserts a budget for the named user, assigning the next
// per-user sequence number.
func (r *Repository) CreateBudget(username string, b *models.Budget) error {
	query := `
		INSERT INTO budgets (user_id, sequence, name, description, amount_limit, amount_used, start_date, end_date)
		SELECT u.id,
		       COALESCE((SELECT MAX(sequence) + 1 FROM budgets WHERE user_id = u.id), 1),
		       $2, $3, $4, $5, $6, $7
		FROM users u
		WHERE u.username = $1
		RETURNING id, user_id, sequence`
	err := r.db.QueryRow(query, username, b.Name, b.Description, b.AmountLimit, b.AmountUsed, b.StartDate, b.EndDate).
		Scan(&b.ID, &b.UserID, &b.Sequence)
	if err != nil {
		return fmt.Errorf("failed to create budget: %w", err)
	}
	return nil
}

// UpdateBudget updates a budget identified by the user's sequence number
func (r *Repository) UpdateBudget(username string, sequence int64, b *models.Budget) error {
	query := `
		UPDATE budgets
		SET name = $3, description = $4, amount_limit = $5, start_date = $6, end_date = $7
		FROM users u
		WHERE budgets.user_id = u.id AND u.username = $1 AND budgets.sequence = $2`
	result, err := r.db.Exec(query, username, sequence, b.Name, b.Description, b.AmountLimit, b.StartDate, b.EndDate)
	if err != nil {
		return fmt.Errorf("failed to update budget: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to update budget: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteBudget removes a budget identified by the user's sequence number
func (r *Repository) DeleteBudget(username string, sequence int64) error {
	query := `
		DELETE FROM budgets
		USING users u
		WHERE budgets.user_id = u.id AND u.username = $1 AND budgets.sequence = $2`
	result, err := r.db.Exec(query, username, sequence)
	if err != nil {
		return fmt.Errorf("failed to delete budget: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete budget: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}
