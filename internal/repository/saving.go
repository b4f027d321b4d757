package repository

import (
	"fmt"

	"github.com/ubelabs/expense-tracker/internal/models"
)

// ListSavings retrieves all savings goals for a user, oldest sequence first
func (r *Repository) ListSavings(username string) ([]models.Saving, error) {
	query := `
		SELECT s.id, s.user_id, s.sequence, s.name, s.description,
		       s.current_amount, s.target_amount, s.deadline_date
		FROM savings s
		JOIN users u ON s.user_id = u.id
		WHERE u.username = $1
		ORDER BY s.sequence`
	rows, err := r.db.Query(query, username)
	if err != nil {
		return nil, fmt.Errorf("failed to list savings: %w", err)
	}
	defer rows.Close()

	var savings []models.Saving
	for rows.Next() {
		var s models.Saving
		if err := rows.Scan(&s.ID, &s.UserID, &s.Sequence, &s.Name, &s.Description,
			&s.CurrentAmount, &s.TargetAmount, &s.Deadline); err != nil {
			return nil, fmt.Errorf("failed to scan saving: %w", err)
		}
		savings = append(savings, s)
	}
	return savings, rows.Err()
}

// CreateSaving inserts a savings goal for the named user, assigning the
// next per-user sequence number.
func (r *Repository) CreateSaving(username string, s *models.Saving) error {
	query := `
		INSERT INTO savings (user_id, sequence, name, description, current_amount, target_amount, deadline_date)
		SELECT u.id,
		       COALESCE((SELECT MAX(sequence) + 1 FROM savings WHERE user_id = u.id), 1),
		       $2, $3, $4, $5, $6
		FROM users u
		WHERE u.username = $1
		RETURNING id, user_id, sequence`
	err := r.db.QueryRow(query, username, s.Name, s.Description, s.CurrentAmount, s.TargetAmount, s.Deadline).
		Scan(&s.ID, &s.UserID, &s.Sequence)
	if err != nil {
		return fmt.Errorf("failed to create saving: %w", err)
	}
	return nil
}

// UpdateSaving updates a savings goal identified by the user's sequence number
func (r *Repository) UpdateSaving(username string, sequence int64, s *models.Saving) error {
	query := `
		UPDATE savings
		SET name = $3, description = $4, current_amount = $5, target_amount = $6, deadline_date = $7
		FROM users u
		WHERE savings.user_id = u.id AND u.username = $1 AND savings.sequence = $2`
	result, err := r.db.Exec(query, username, sequence, s.Name, s.Description, s.CurrentAmount, s.TargetAmount, s.Deadline)
	if err != nil {
		return fmt.Errorf("failed to update saving: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to update saving: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteSaving removes a savings goal identified by the user's sequence number
func (r *Repository) DeleteSaving(username string, sequence int64) error {
	query := `
		DELETE FROM savings
		USING users u
		WHERE savings.user_id = u.id AND u.username = $1 AND savings.sequence = $2`
	result, err := r.db.Exec(query, username, sequence)
	if err != nil {
		return fmt.Errorf("failed to delete saving: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete saving: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}
