package service

import (
	"github.com/ubelabs/expense-tracker/internal/models"
	"github.com/ubelabs/expense-tracker/internal/utils"
)

// BudgetList carries a user's budgets converted to a display currency
type BudgetList struct {
	Budgets      []models.BudgetView
	CurrencySign string
}

// ListBudgets retrieves a user's budgets with amounts converted to the
// given currency. Budgets stays nil when the user has none.
func (s *Service) ListBudgets(username, currencyCode string) (*BudgetList, error) {
	currency, err := s.repo.GetCurrency(currencyCode)
	if err != nil {
		return nil, err
	}

	budgets, err := s.repo.ListBudgets(username)
	if err != nil {
		return nil, err
	}

	list := &BudgetList{CurrencySign: currency.Sign}
	for _, b := range budgets {
		list.Budgets = append(list.Budgets, models.BudgetView{
			ID:          b.ID,
			Sequence:    b.Sequence,
			Name:        b.Name,
			Description: b.Description,
			AmountLimit: utils.Convert(b.AmountLimit, currency.DollarToCurrency),
			AmountUsed:  utils.Convert(b.AmountUsed, currency.DollarToCurrency),
			StartDate:   utils.FormatDate(b.StartDate, s.loc),
			EndDate:     utils.FormatDate(b.EndDate, s.loc),
			Progress:    utils.Progress(b.AmountUsed, b.AmountLimit),
		})
	}
	return list, nil
}

// ListBudgetNames retrieves the id/name pairs of a user's budgets
func (s *Service) ListBudgetNames(username string) ([]models.BudgetName, error) {
	return s.repo.ListBudgetNames(username)
}

// CreateBudget validates and stores a new budget. Amounts arrive in USD.
func (s *Service) CreateBudget(username string, b *models.Budget) error {
	if err := validateBudget(b); err != nil {
		return err
	}
	if err := s.repo.CreateBudget(username, b); err != nil {
		return err
	}
	s.log.Infof("Budget created for %s: %s (sequence %d)", username, b.Name, b.Sequence)
	return nil
}

// UpdateBudget validates and updates a budget by sequence number
func (s *Service) UpdateBudget(username string, sequence int64, b *models.Budget) error {
	if err := validateBudget(b); err != nil {
		return err
	}
	if err := s.repo.UpdateBudget(username, sequence, b); err != nil {
		return err
	}
	s.log.Infof("Budget %d updated for %s", sequence, username)
	return nil
}

// DeleteBudget removes a budget by sequence number
func (s *Service) DeleteBudget(username string, sequence int64) error {
	if err := s.repo.DeleteBudget(username, sequence); err != nil {
		return err
	}
	s.log.Infof("Budget %d deleted for %s", sequence, username)
	return nil
}

// validateBudget rejects zero/negative limits at write time so progress
// computation never divides by zero.
func validateBudget(b *models.Budget) error {
	if b.Name == "" {
		return invalid("budget name is required")
	}
	if b.AmountLimit <= 0 {
		return invalid("budget amount limit must be greater than zero")
	}
	if b.AmountUsed < 0 {
		return invalid("budget used amount must not be negative")
	}
	if b.EndDate.Before(b.StartDate) {
		return invalid("budget end date must not precede its start date")
	}
	return nil
}
