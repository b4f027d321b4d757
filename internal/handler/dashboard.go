package handler

import "net/http"

// Deadlines returns the user's 30-day deadline summary
func (h *Handler) Deadlines(w http.ResponseWriter, r *http.Request) {
	username, ok := h.authorizedUsername(w, r)
	if !ok {
		return
	}

	summary, err := h.svc.DeadlineSummary(username)
	if err != nil {
		h.respondError(w, err, "A server error occured while retrieving your deadlines. Please try again later.")
		return
	}

	h.respond(w, http.StatusOK, map[string]interface{}{
		"message":          "Successfully retrieved your deadlines",
		"deadline_summary": summary,
	})
}

// MonthlySummary returns the current month's totals and per-day series
func (h *Handler) MonthlySummary(w http.ResponseWriter, r *http.Request) {
	username, ok := h.authorizedUsername(w, r)
	if !ok {
		return
	}

	summary, chart, err := h.svc.MonthlySummary(username)
	if err != nil {
		h.respondError(w, err, "A server error occured while retrieving your monthly summary. Please try again later.")
		return
	}

	h.respond(w, http.StatusOK, map[string]interface{}{
		"message":         "Successfully retrieved your monthly summary",
		"monthly_summary": summary,
		"run_chart":       chart,
	})
}
