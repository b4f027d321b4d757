package handler

import (
	"encoding/json"
	"net/http"

	"github.com/golang-jwt/jwt/v5"
	"github.com/ubelabs/expense-tracker/internal/middleware"
	"github.com/ubelabs/expense-tracker/internal/service"
)

type signUpRequest struct {
	Credentials struct {
		Username string `json:"username"`
		Password string `json:"password"`
	} `json:"credentials"`
	Name struct {
		First   string `json:"first"`
		Initial string `json:"initial"`
		Last    string `json:"last"`
	} `json:"name"`
	Email string `json:"email"`
}

// SignUp handles user registration
func (h *Handler) SignUp(w http.ResponseWriter, r *http.Request) {
	// a logged-in user must not create accounts
	if _, err := r.Cookie(middleware.CookieName); err == nil {
		h.message(w, http.StatusForbidden, "You must be logged out before signing-up")
		return
	}

	var req signUpRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.message(w, http.StatusBadRequest, "Malformed request body")
		return
	}

	_, err := h.svc.Register(req.Credentials.Username, req.Credentials.Password,
		req.Name.First, req.Name.Initial, req.Name.Last, req.Email)
	if err != nil {
		h.respondError(w, err, "A server error occured while signing up. Please try again later.")
		return
	}

	h.message(w, http.StatusCreated, "Sign-up Success")
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Login handles user authentication and sets the session cookie
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	if _, err := r.Cookie(middleware.CookieName); err == nil {
		h.message(w, http.StatusForbidden, "You must log out before logging in")
		return
	}

	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.message(w, http.StatusBadRequest, "Malformed request body")
		return
	}

	result, err := h.svc.Login(req.Username, req.Password)
	if err != nil {
		h.respondError(w, err, "A server error occured while logging in. Please try again later.")
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     middleware.CookieName,
		Value:    result.Token,
		Path:     "/",
		MaxAge:   int(service.TokenTTL.Seconds()),
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteStrictMode,
	})

	h.respond(w, http.StatusOK, map[string]interface{}{
		"message": "Login Success",
		"user": map[string]interface{}{
			"username":   result.Username,
			"first_name": result.FirstName,
			"currency_settings": map[string]string{
				"currency_code": result.CurrencyCode,
				"currency_sign": result.CurrencySign,
			},
		},
	})
}

// Logout clears the session cookie
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     middleware.CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteStrictMode,
	})
	h.message(w, http.StatusOK, "Logout success")
}

// VerifyToken reports whether the session cookie still holds a valid token
func (h *Handler) VerifyToken(w http.ResponseWriter, r *http.Request) {
	cookie, err := r.Cookie(middleware.CookieName)
	if err != nil {
		h.message(w, http.StatusUnauthorized, "Unauthorized: Token is missing or the token has expired")
		return
	}

	claims := &middleware.Claims{}
	token, err := jwt.ParseWithClaims(cookie.Value, claims, func(t *jwt.Token) (interface{}, error) {
		return []byte(h.cfg.JWTSecret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !token.Valid {
		h.message(w, http.StatusUnauthorized, "Unauthorized: Invalid token")
		return
	}

	h.message(w, http.StatusOK, "Token is valid")
}

// GetBasicInformation returns the user's profile and settings
func (h *Handler) GetBasicInformation(w http.ResponseWriter, r *http.Request) {
	username, ok := h.authorizedUsername(w, r)
	if !ok {
		return
	}

	info, err := h.svc.GetBasicInformation(username)
	if err != nil {
		h.respondError(w, err, "A server error occured while retrieving the user's basic information. Please try again later")
		return
	}

	h.respond(w, http.StatusOK, map[string]interface{}{
		"message": "Successfully retrieved the user's basic information.",
		"user": map[string]interface{}{
			"name": map[string]interface{}{
				"first":   info.FirstName,
				"initial": info.Initial,
				"last":    info.LastName,
			},
			"settings": map[string]interface{}{
				"currency_code": info.CurrencyCode,
				"currency_name": info.CurrencyName,
				"notification":  info.Notification,
			},
			"email": info.Email,
		},
	})
}

type settingsRequest struct {
	Notification bool   `json:"notification"`
	CurrencyCode string `json:"currency_code"`
}

// UpdateSettings changes the notification flag and preferred currency
func (h *Handler) UpdateSettings(w http.ResponseWriter, r *http.Request) {
	username, ok := h.authorizedUsername(w, r)
	if !ok {
		return
	}

	var req settingsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.message(w, http.StatusBadRequest, "Malformed request body")
		return
	}

	if err := h.svc.UpdateSettings(username, req.Notification, req.CurrencyCode); err != nil {
		h.respondError(w, err, "A server error occured while updating your settings. Please try again later.")
		return
	}

	h.message(w, http.StatusOK, "Successfully updated your settings.")
}
