package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/ubelabs/expense-tracker/internal/models"
)

// ListSavings returns the user's savings goals converted to the
// requested currency
func (h *Handler) ListSavings(w http.ResponseWriter, r *http.Request) {
	username, ok := h.authorizedUsername(w, r)
	if !ok {
		return
	}
	currencyCode := mux.Vars(r)["currency_code"]
	if currencyCode == "" {
		h.message(w, http.StatusBadRequest, "You must have a preferred currency.")
		return
	}

	list, err := h.svc.ListSavings(username, currencyCode)
	if err != nil {
		h.respondError(w, err, "A server error occured while retrieving all of your savings. Please try again later.")
		return
	}

	h.respond(w, http.StatusOK, map[string]interface{}{
		"message":       "Successfully retrieved your savings",
		"savings":       list.Savings,
		"currency_sign": list.CurrencySign,
	})
}

type savingRequest struct {
	Name          string  `json:"name"`
	Description   *string `json:"description"`
	CurrentAmount float64 `json:"current_amount"`
	TargetAmount  float64 `json:"target_amount"`
	Deadline      string  `json:"deadline"`
}

func (req *savingRequest) toModel() (*models.Saving, error) {
	deadline, err := parseDate(req.Deadline)
	if err != nil {
		return nil, err
	}
	return &models.Saving{
		Name:          req.Name,
		Description:   req.Description,
		CurrentAmount: req.CurrentAmount,
		TargetAmount:  req.TargetAmount,
		Deadline:      deadline,
	}, nil
}

// CreateSaving stores a new savings goal for the user
func (h *Handler) CreateSaving(w http.ResponseWriter, r *http.Request) {
	username, ok := h.authorizedUsername(w, r)
	if !ok {
		return
	}

	var req savingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.message(w, http.StatusBadRequest, "Malformed request body")
		return
	}
	saving, err := req.toModel()
	if err != nil {
		h.message(w, http.StatusBadRequest, "Saving deadline must be in YYYY-MM-DD format")
		return
	}

	if err := h.svc.CreateSaving(username, saving); err != nil {
		h.respondError(w, err, "A server error occured while creating your saving. Please try again later.")
		return
	}

	h.message(w, http.StatusCreated, "Successfully created your saving.")
}

// UpdateSaving updates a savings goal by sequence number
func (h *Handler) UpdateSaving(w http.ResponseWriter, r *http.Request) {
	username, ok := h.authorizedUsername(w, r)
	if !ok {
		return
	}
	sequence, err := sequenceVar(r)
	if err != nil {
		h.message(w, http.StatusBadRequest, "Saving sequence must be a number")
		return
	}

	var req savingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.message(w, http.StatusBadRequest, "Malformed request body")
		return
	}
	saving, err := req.toModel()
	if err != nil {
		h.message(w, http.StatusBadRequest, "Saving deadline must be in YYYY-MM-DD format")
		return
	}

	if err := h.svc.UpdateSaving(username, sequence, saving); err != nil {
		h.respondError(w, err, "A server error occured while updating your saving. Please try again later.")
		return
	}

	h.message(w, http.StatusOK, "Successfully updated your saving.")
}

// DeleteSaving removes a savings goal by sequence number
func (h *Handler) DeleteSaving(w http.ResponseWriter, r *http.Request) {
	username, ok := h.authorizedUsername(w, r)
	if !ok {
		return
	}
	sequence, err := sequenceVar(r)
	if err != nil {
		h.message(w, http.StatusBadRequest, "Saving sequence must be a number")
		return
	}

	if err := h.svc.DeleteSaving(username, sequence); err != nil {
		h.respondError(w, err, "A server error occured while deleting your saving. Please try again later.")
		return
	}

	h.message(w, http.StatusOK, "Successfully deleted your saving.")
}
