package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/ubelabs/expense-tracker/internal/models"
)

// ListBudgets returns the user's budgets converted to the requested currency
func (h *Handler) ListBudgets(w http.ResponseWriter, r *http.Request) {
	username, ok := h.authorizedUsername(w, r)
	if !ok {
		return
	}
	currencyCode := mux.Vars(r)["currency_code"]
	if currencyCode == "" {
		h.message(w, http.StatusBadRequest, "You must have a preferred currency.")
		return
	}

	list, err := h.svc.ListBudgets(username, currencyCode)
	if err != nil {
		h.respondError(w, err, "A server error occured while retrieving all of your budgets. Please try again later.")
		return
	}

	h.respond(w, http.StatusOK, map[string]interface{}{
		"message":       "Successfully retrieved your budgets.",
		"budget":        list.Budgets,
		"currency_sign": list.CurrencySign,
	})
}

// ListBudgetNames returns the id/name pairs of the user's budgets
func (h *Handler) ListBudgetNames(w http.ResponseWriter, r *http.Request) {
	username, ok := h.authorizedUsername(w, r)
	if !ok {
		return
	}

	names, err := h.svc.ListBudgetNames(username)
	if err != nil {
		h.respondError(w, err, "A server error occured while retrieving all of your budgets. Please try again later.")
		return
	}

	h.respond(w, http.StatusOK, map[string]interface{}{
		"message": "Successfully retrieved your budget list.",
		"budget":  names,
	})
}

type budgetRequest struct {
	Name        string  `json:"name"`
	Description *string `json:"description"`
	AmountLimit float64 `json:"amount_limit"`
	AmountUsed  float64 `json:"amount_used"`
	StartDate   string  `json:"start_date"`
	EndDate     string  `json:"end_date"`
}

func (req *budgetRequest) toModel() (*models.Budget, error) {
	start, err := parseDate(req.StartDate)
	if err != nil {
		return nil, err
	}
	end, err := parseDate(req.EndDate)
	if err != nil {
		return nil, err
	}
	return &models.Budget{
		Name:        req.Name,
		Description: req.Description,
		AmountLimit: req.AmountLimit,
		AmountUsed:  req.AmountUsed,
		StartDate:   start,
		EndDate:     end,
	}, nil
}

// CreateBudget stores a new budget for the user
func (h *Handler) CreateBudget(w http.ResponseWriter, r *http.Request) {
	username, ok := h.authorizedUsername(w, r)
	if !ok {
		return
	}

	var req budgetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.message(w, http.StatusBadRequest, "Malformed request body")
		return
	}
	budget, err := req.toModel()
	if err != nil {
		h.message(w, http.StatusBadRequest, "Budget dates must be in YYYY-MM-DD format")
		return
	}

	if err := h.svc.CreateBudget(username, budget); err != nil {
		h.respondError(w, err, "A server error occured while creating your budget. Please try again later.")
		return
	}

	h.message(w, http.StatusCreated, "Successfully created your budget.")
}

// UpdateBudget updates a budget by sequence number
func (h *Handler) UpdateBudget(w http.ResponseWriter, r *http.Request) {
	username, ok := h.authorizedUsername(w, r)
	if !ok {
		return
	}
	sequence, err := sequenceVar(r)
	if err != nil {
		h.message(w, http.StatusBadRequest, "Budget sequence must be a number")
		return
	}

	var req budgetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.message(w, http.StatusBadRequest, "Malformed request body")
		return
	}
	budget, err := req.toModel()
	if err != nil {
		h.message(w, http.StatusBadRequest, "Budget dates must be in YYYY-MM-DD format")
		return
	}

	if err := h.svc.UpdateBudget(username, sequence, budget); err != nil {
		h.respondError(w, err, "A server error occured while updating your budget. Please try again later.")
		return
	}

	h.message(w, http.StatusOK, "Successfully updated your budget.")
}

// DeleteBudget removes a budget by sequence number
func (h *Handler) DeleteBudget(w http.ResponseWriter, r *http.Request) {
	username, ok := h.authorizedUsername(w, r)
	if !ok {
		return
	}
	sequence, err := sequenceVar(r)
	if err != nil {
		h.message(w, http.StatusBadRequest, "Budget sequence must be a number")
		return
	}

	if err := h.svc.DeleteBudget(username, sequence); err != nil {
		h.respondError(w, err, "A server error occured while deleting your budget. Please try again later.")
		return
	}

	h.message(w, http.StatusOK, "Successfully deleted your budget.")
}
