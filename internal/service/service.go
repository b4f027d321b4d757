package service

import (
	"fmt"
	"strings"
	"time"
	"unicode"

	"github.com/golang-jwt/jwt/v5"
	"github.com/sirupsen/logrus"
	"github.com/ubelabs/expense-tracker/internal/config"
	"github.com/ubelabs/expense-tracker/internal/middleware"
	"github.com/ubelabs/expense-tracker/internal/models"
	"github.com/ubelabs/expense-tracker/internal/repository"
	"golang.org/x/crypto/bcrypt"
)

// TokenTTL is the lifetime of a session token
const TokenTTL = time.Hour

// Service handles business logic
type Service struct {
	repo   *repository.Repository
	log    *logrus.Logger
	config *config.Config
	loc    *time.Location
}

// NewService initializes a new service. loc is the fixed civil time zone
// all day-boundary arithmetic is performed in.
func NewService(repo *repository.Repository, log *logrus.Logger, cfg *config.Config, loc *time.Location) *Service {
	return &Service{repo: repo, log: log, config: cfg, loc: loc}
}

// Register creates a new user with a hashed password
func (s *Service) Register(username, password, first, initial, last, email string) (*models.User, error) {
	username = normalize(username)
	first = normalize(first)
	last = normalize(last)
	email = normalize(email)
	initial = normalize(initial)

	if username == "" || password == "" || first == "" || last == "" || email == "" {
		return nil, invalid("you are missing any of the required data: username, password, first and last names, and email")
	}
	if strings.ContainsAny(username, " \t") {
		return nil, invalid("your username must not have a white space")
	}
	if len(initial) > 1 {
		return nil, invalid("your initial must only be a single alphabet")
	}
	if err := validatePassword(password); err != nil {
		return nil, err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Username:     username,
		PasswordHash: string(hashedPassword),
		FirstName:    first,
		LastName:     last,
		Email:        email,
	}
	if initial != "" {
		user.Initial = &initial
	}

	if err := s.repo.CreateUser(user); err != nil {
		return nil, err
	}

	s.log.Infof("User registered: %s", user.Email)
	return user, nil
}

// LoginResult carries the issued token and the user's currency settings
type LoginResult struct {
	Token        string
	Username     string
	FirstName    string
	CurrencyCode string
	CurrencySign string
}

// Login authenticates a user and returns a signed JWT with the user's
// currency settings.
func (s *Service) Login(username, password string) (*LoginResult, error) {
	username = normalize(username)
	if username == "" || password == "" {
		return nil, invalid("username and password fields are missing while logging in")
	}

	user, err := s.repo.FindUserByUsername(username)
	if err != nil {
		return nil, ErrInvalidCredentials
	}
	if !user.Active {
		return nil, ErrAccountDisabled
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	currency, err := s.repo.GetCurrency(user.CurrencyCode)
	if err != nil {
		return nil, err
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, &middleware.Claims{
		Username:  user.Username,
		FirstName: user.FirstName,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(TokenTTL)),
		},
	})
	tokenString, err := token.SignedString([]byte(s.config.JWTSecret))
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	s.log.Infof("User logged in: %s", user.Username)
	return &LoginResult{
		Token:        tokenString,
		Username:     user.Username,
		FirstName:    user.FirstName,
		CurrencyCode: currency.Code,
		CurrencySign: currency.Sign,
	}, nil
}

// BasicInformation is the profile and settings payload
type BasicInformation struct {
	FirstName    string
	Initial      *string
	LastName     string
	Email        string
	Notification bool
	CurrencyCode string
	CurrencyName string
}

// GetBasicInformation retrieves a user's profile and currency settings
func (s *Service) GetBasicInformation(username string) (*BasicInformation, error) {
	user, err := s.repo.FindUserByUsername(username)
	if err != nil {
		return nil, err
	}
	currency, err := s.repo.GetCurrency(user.CurrencyCode)
	if err != nil {
		return nil, err
	}
	return &BasicInformation{
		FirstName:    user.FirstName,
		Initial:      user.Initial,
		LastName:     user.LastName,
		Email:        user.Email,
		Notification: user.Notification,
		CurrencyCode: currency.Code,
		CurrencyName: currency.Name,
	}, nil
}

// UpdateSettings changes the notification flag and preferred currency
func (s *Service) UpdateSettings(username string, notification bool, currencyCode string) error {
	// reject unknown currencies before touching the user row
	if _, err := s.repo.GetCurrency(currencyCode); err != nil {
		return err
	}
	if err := s.repo.UpdateUserSettings(username, notification, currencyCode); err != nil {
		return err
	}
	s.log.Infof("Settings updated for %s: notification=%t currency=%s", username, notification, currencyCode)
	return nil
}

// ListCurrencies retrieves the available currency options
func (s *Service) ListCurrencies() ([]models.Currency, error) {
	return s.repo.ListCurrencies()
}

// ListCategories retrieves all transaction categories
func (s *Service) ListCategories() ([]models.Category, error) {
	return s.repo.ListCategories()
}

// normalize collapses inner whitespace, trims, and lowercases
func normalize(v string) string {
	return strings.ToLower(strings.TrimSpace(strings.Join(strings.Fields(v), " ")))
}

// validatePassword enforces at least 8 characters with one lowercase,
// one uppercase, one digit, and one special character.
func validatePassword(password string) error {
	var hasLower, hasUpper, hasDigit, hasSpecial bool
	for _, r := range password {
		switch {
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsDigit(r):
			hasDigit = true
		default:
			hasSpecial = true
		}
	}
	if len(password) < 8 || !hasLower || !hasUpper || !hasDigit || !hasSpecial {
		return invalid("your password must contain at least one upper case and lowercase letters, one number, and one special character")
	}
	return nil
}
