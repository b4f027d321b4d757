package handler

import "net/http"

// ListCurrencies returns every supported currency. Public, used by the
// sign-up form.
func (h *Handler) ListCurrencies(w http.ResponseWriter, r *http.Request) {
	currencies, err := h.svc.ListCurrencies()
	if err != nil {
		h.respondError(w, err, "A server error occured while retrieving the currencies. Please try again later.")
		return
	}

	h.respond(w, http.StatusOK, map[string]interface{}{
		"message":  "Successfully retrieved the currencies",
		"currency": currencies,
	})
}

// ListCategories returns every transaction category
func (h *Handler) ListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.svc.ListCategories()
	if err != nil {
		h.respondError(w, err, "A server error occured while retrieving the categories. Please try again later.")
		return
	}

	h.respond(w, http.StatusOK, map[string]interface{}{
		"message":  "Successfully retrieved the categories",
		"category": categories,
	})
}
