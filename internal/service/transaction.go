package service

import (
	"github.com/ubelabs/expense-tracker/internal/models"
	"github.com/ubelabs/expense-tracker/internal/utils"
)

// TransactionList carries a user's transactions converted to a display currency
type TransactionList struct {
	Transactions []models.TransactionView
	CurrencySign string
}

// ListTransactions retrieves a user's transactions, newest first, with
// amounts converted to the given currency.
func (s *Service) ListTransactions(username, currencyCode string) (*TransactionList, error) {
	currency, err := s.repo.GetCurrency(currencyCode)
	if err != nil {
		return nil, err
	}

	transactions, err := s.repo.ListTransactions(username)
	if err != nil {
		return nil, err
	}

	list := &TransactionList{CurrencySign: currency.Sign}
	for _, t := range transactions {
		list.Transactions = append(list.Transactions, models.TransactionView{
			Sequence:    t.Sequence,
			Name:        t.Name,
			Description: t.Description,
			Amount:      utils.Convert(t.Amount, currency.DollarToCurrency),
			Type:        t.Type,
			Date:        utils.FormatDate(t.Date, s.loc),
			Resolved:    t.Resolved,
			Category:    t.Category,
			Budget:      t.Budget,
		})
	}
	return list, nil
}

// CreateTransaction validates and stores a new transaction. Amounts
// arrive in USD.
func (s *Service) CreateTransaction(username string, t *models.Transaction) error {
	if err := validateTransaction(t); err != nil {
		return err
	}
	if err := s.repo.CreateTransaction(username, t); err != nil {
		return err
	}
	s.log.Infof("Transaction created for %s: %s (sequence %d)", username, t.Name, t.Sequence)
	return nil
}

// UpdateTransaction validates and updates a transaction by sequence
// number, including the resolved flag.
func (s *Service) UpdateTransaction(username string, sequence int64, t *models.Transaction) error {
	if err := validateTransaction(t); err != nil {
		return err
	}
	if err := s.repo.UpdateTransaction(username, sequence, t); err != nil {
		return err
	}
	s.log.Infof("Transaction %d updated for %s", sequence, username)
	return nil
}

// DeleteTransaction removes a transaction by sequence number
func (s *Service) DeleteTransaction(username string, sequence int64) error {
	if err := s.repo.DeleteTransaction(username, sequence); err != nil {
		return err
	}
	s.log.Infof("Transaction %d deleted for %s", sequence, username)
	return nil
}

func validateTransaction(t *models.Transaction) error {
	if t.Name == "" {
		return invalid("transaction name is required")
	}
	if t.Amount <= 0 {
		return invalid("transaction amount must be greater than zero")
	}
	if t.Type != models.TypeIncome && t.Type != models.TypeExpense {
		return invalid("transaction type must be income or expense")
	}
	if t.Type == models.TypeIncome && t.BudgetID != nil {
		return invalid("income transactions must not reference a budget")
	}
	if t.Date.IsZero() {
		return invalid("transaction date is required")
	}
	if t.CategoryID == 0 {
		return invalid("transaction category is required")
	}
	return nil
}
