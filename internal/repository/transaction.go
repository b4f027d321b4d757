package repository

import (
	"fmt"
	"time"

	"github.com/ubelabs/expense-tracker/internal/models"
)

// TransactionDetail is a transaction joined with its category and budget
// names, as fetched for the list endpoint.
type TransactionDetail struct {
	Sequence    int64
	Name        string
	Description *string
	Amount      float64
	Type        string
	Date        time.Time
	Resolved    bool
	Category    string
	Budget      *string
}

// ListTransactions retrieves all transactions for a user, newest first
func (r *Repository) ListTransactions(username string) ([]TransactionDetail, error) {
	query := `
		SELECT t.sequence, t.name, t.description, t.amount, t.type, t.date, t.resolved,
		       c.name, b.name
		FROM transactions t
		JOIN users u ON t.user_id = u.id
		JOIN categories c ON t.category_id = c.id
		LEFT JOIN budgets b ON t.budget_id = b.id
		WHERE u.username = $1
		ORDER BY t.date DESC`
	rows, err := r.db.Query(query, username)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	defer rows.Close()

	var transactions []TransactionDetail
	for rows.Next() {
		var t TransactionDetail
		if err := rows.Scan(&t.Sequence, &t.Name, &t.Description, &t.Amount, &t.Type,
			&t.Date, &t.Resolved, &t.Category, &t.Budget); err != nil {
			return nil, fmt.Errorf("failed to scan transaction: %w", err)
		}
		transactions = append(transactions, t)
	}
	return transactions, rows.Err()
}

// CreateTransaction inserts a transaction for the named user, assigning
// the next per-user sequence number.
func (r *Repository) CreateTransaction(username string, t *models.Transaction) error {
	query := `
		INSERT INTO transactions (user_id, sequence, name, description, amount, type, date, resolved, category_id, budget_id)
		SELECT u.id,
		       COALESCE((SELECT MAX(sequence) + 1 FROM transactions WHERE user_id = u.id), 1),
		       $2, $3, $4, $5, $6, $7, $8, $9
		FROM users u
		WHERE u.username = $1
		RETURNING id, user_id, sequence`
	err := r.db.QueryRow(query, username, t.Name, t.Description, t.Amount, t.Type, t.Date, t.Resolved, t.CategoryID, t.BudgetID).
		Scan(&t.ID, &t.UserID, &t.Sequence)
	if err != nil {
		return fmt.Errorf("failed to create transaction: %w", err)
	}
	return nil
}

// UpdateTransaction updates a transaction identified by the user's
// sequence number, including the resolved flag.
func (r *Repository) UpdateTransaction(username string, sequence int64, t *models.Transaction) error {
	query := `
		UPDATE transactions
		SET name = $3, description = $4, amount = $5, type = $6, date = $7,
		    resolved = $8, category_id = $9, budget_id = $10
		FROM users u
		WHERE transactions.user_id = u.id AND u.username = $1 AND transactions.sequence = $2`
	result, err := r.db.Exec(query, username, sequence, t.Name, t.Description, t.Amount, t.Type, t.Date,
		t.Resolved, t.CategoryID, t.BudgetID)
	if err != nil {
		return fmt.Errorf("failed to update transaction: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to update transaction: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteTransaction removes a transaction identified by the user's
// sequence number.
func (r *Repository) DeleteTransaction(username string, sequence int64) error {
	query := `
		DELETE FROM transactions
		USING users u
		WHERE transactions.user_id = u.id AND u.username = $1 AND transactions.sequence = $2`
	result, err := r.db.Exec(query, username, sequence)
	if err != nil {
		return fmt.Errorf("failed to delete transaction: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete transaction: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}
