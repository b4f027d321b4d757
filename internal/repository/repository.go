package repository

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"
	"github.com/ubelabs/expense-tracker/internal/models"
)

// Domain errors surfaced to the service layer
var (
	ErrNotFound          = errors.New("not found")
	ErrInvalidCurrency   = errors.New("invalid currency")
	ErrDuplicateUsername = errors.New("username is already taken")
	ErrDuplicateEmail    = errors.New("email is already taken")
)

const pqUniqueViolation = "23505"

// Repository provides database operations
type Repository struct {
	db *sql.DB
}

// NewRepository initializes a new repository
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// CreateUser creates a new user in the database
func (r *Repository) CreateUser(user *models.User) error {
	query := `
		INSERT INTO users (username, password_hash, first_name, initial, last_name, email)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at`
	err := r.db.QueryRow(query, user.Username, user.PasswordHash, user.FirstName, user.Initial, user.LastName, user.Email).
		Scan(&user.ID, &user.CreatedAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == pqUniqueViolation {
			if pqErr.Constraint == "users_email_key" {
				return ErrDuplicateEmail
			}
			return ErrDuplicateUsername
		}
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

// FindUserByUsername retrieves a user by username
func (r *Repository) FindUserByUsername(username string) (*models.User, error) {
	user := &models.User{}
	query := `
		SELECT id, username, password_hash, first_name, initial, last_name, email,
		       active, notification, currency_code, created_at
		FROM users
		WHERE username = $1`
	err := r.db.QueryRow(query, username).
		Scan(&user.ID, &user.Username, &user.PasswordHash, &user.FirstName, &user.Initial,
			&user.LastName, &user.Email, &user.Active, &user.Notification, &user.CurrencyCode, &user.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	return user, nil
}

// UpdateUserSettings updates the notification flag and preferred currency
func (r *Repository) UpdateUserSettings(username string, notification bool, currencyCode string) error {
	query := `
		UPDATE users
		SET notification = $2, currency_code = $3, updated_at = CURRENT_TIMESTAMP
		WHERE username = $1`
	result, err := r.db.Exec(query, username, notification, currencyCode)
	if err != nil {
		return fmt.Errorf("failed to update user settings: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to update user settings: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// ListCurrencies retrieves the available currency options
func (r *Repository) ListCurrencies() ([]models.Currency, error) {
	query := `SELECT code, name, sign, dollar_to_currency FROM currencies ORDER BY code`
	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to list currencies: %w", err)
	}
	defer rows.Close()

	var currencies []models.Currency
	for rows.Next() {
		var c models.Currency
		if err := rows.Scan(&c.Code, &c.Name, &c.Sign, &c.DollarToCurrency); err != nil {
			return nil, fmt.Errorf("failed to scan currency: %w", err)
		}
		currencies = append(currencies, c)
	}
	return currencies, rows.Err()
}

// GetCurrency retrieves one currency by code
func (r *Repository) GetCurrency(code string) (*models.Currency, error) {
	c := &models.Currency{}
	query := `SELECT code, name, sign, dollar_to_currency FROM currencies WHERE code = $1`
	err := r.db.QueryRow(query, code).Scan(&c.Code, &c.Name, &c.Sign, &c.DollarToCurrency)
	if err == sql.ErrNoRows {
		return nil, ErrInvalidCurrency
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get currency: %w", err)
	}
	return c, nil
}

// UpdateCurrencyRate updates the dollar-to-currency rate for one code.
// Codes not present in the table are ignored.
func (r *Repository) UpdateCurrencyRate(code string, rate float64) (bool, error) {
	query := `UPDATE currencies SET dollar_to_currency = $2 WHERE code = $1`
	result, err := r.db.Exec(query, code, rate)
	if err != nil {
		return false, fmt.Errorf("failed to update currency rate: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to update currency rate: %w", err)
	}
	return affected > 0, nil
}

// ListCategories retrieves all transaction categories
func (r *Repository) ListCategories() ([]models.Category, error) {
	query := `SELECT id, name, type FROM categories ORDER BY id`
	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	defer rows.Close()

	var categories []models.Category
	for rows.Next() {
		var c models.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.Type); err != nil {
			return nil, fmt.Errorf("failed to scan category: %w", err)
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}
