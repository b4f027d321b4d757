package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/ubelabs/expense-tracker/internal/models"
)

// ListTransactions returns the user's transactions converted to the
// requested currency, newest first
func (h *Handler) ListTransactions(w http.ResponseWriter, r *http.Request) {
	username, ok := h.authorizedUsername(w, r)
	if !ok {
		return
	}
	currencyCode := mux.Vars(r)["currency_code"]
	if currencyCode == "" {
		h.message(w, http.StatusBadRequest, "You must have a preferred currency.")
		return
	}

	list, err := h.svc.ListTransactions(username, currencyCode)
	if err != nil {
		h.respondError(w, err, "A server error occured while retrieving all of your transactions. Please try again later.")
		return
	}

	h.respond(w, http.StatusOK, map[string]interface{}{
		"message":       "Successfully retrieved your transactions",
		"transaction":   list.Transactions,
		"currency_sign": list.CurrencySign,
	})
}

type transactionRequest struct {
	Name        string  `json:"name"`
	Description *string `json:"description"`
	Amount      float64 `json:"amount"`
	Type        string  `json:"type"`
	Date        string  `json:"date"`
	Resolved    bool    `json:"resolved"`
	CategoryID  int64   `json:"category_id"`
	BudgetID    *int64  `json:"budget_id"`
}

func (req *transactionRequest) toModel() (*models.Transaction, error) {
	date, err := parseTimestamp(req.Date)
	if err != nil {
		return nil, err
	}
	return &models.Transaction{
		Name:        req.Name,
		Description: req.Description,
		Amount:      req.Amount,
		Type:        req.Type,
		Date:        date,
		Resolved:    req.Resolved,
		CategoryID:  req.CategoryID,
		BudgetID:    req.BudgetID,
	}, nil
}

// CreateTransaction stores a new transaction for the user
func (h *Handler) CreateTransaction(w http.ResponseWriter, r *http.Request) {
	username, ok := h.authorizedUsername(w, r)
	if !ok {
		return
	}

	var req transactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.message(w, http.StatusBadRequest, "Malformed request body")
		return
	}
	transaction, err := req.toModel()
	if err != nil {
		h.message(w, http.StatusBadRequest, "Transaction date must be a valid timestamp")
		return
	}

	if err := h.svc.CreateTransaction(username, transaction); err != nil {
		h.respondError(w, err, "A server error occured while creating your transaction. Please try again later.")
		return
	}

	h.message(w, http.StatusCreated, "Successfully created your transaction.")
}

// UpdateTransaction updates a transaction by sequence number, including
// its resolved flag
func (h *Handler) UpdateTransaction(w http.ResponseWriter, r *http.Request) {
	username, ok := h.authorizedUsername(w, r)
	if !ok {
		return
	}
	sequence, err := sequenceVar(r)
	if err != nil {
		h.message(w, http.StatusBadRequest, "Transaction sequence must be a number")
		return
	}

	var req transactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.message(w, http.StatusBadRequest, "Malformed request body")
		return
	}
	transaction, err := req.toModel()
	if err != nil {
		h.message(w, http.StatusBadRequest, "Transaction date must be a valid timestamp")
		return
	}

	if err := h.svc.UpdateTransaction(username, sequence, transaction); err != nil {
		h.respondError(w, err, "A server error occured while updating your transaction. Please try again later.")
		return
	}

	h.message(w, http.StatusOK, "Successfully updated your transaction.")
}

// DeleteTransaction removes a transaction by sequence number
func (h *Handler) DeleteTransaction(w http.ResponseWriter, r *http.Request) {
	username, ok := h.authorizedUsername(w, r)
	if !ok {
		return
	}
	sequence, err := sequenceVar(r)
	if err != nil {
		h.message(w, http.StatusBadRequest, "Transaction sequence must be a number")
		return
	}

	if err := h.svc.DeleteTransaction(username, sequence); err != nil {
		h.respondError(w, err, "A server error occured while deleting your transaction. Please try again later.")
		return
	}

	h.message(w, http.StatusOK, "Successfully deleted your transaction.")
}
