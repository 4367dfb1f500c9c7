// Package auth owns the credential and session lifecycle: signup validation,
// password hashing, login verification and bearer-token issuance.
package auth

import (
	"errors"
	"strings"

	"fintrack/internal/models"
	"fintrack/internal/store"
	"fintrack/internal/validation"

	"go.uber.org/zap"
)

// ErrInvalidCredentials covers both an unknown username and a wrong
// password. Login never reveals which one failed.
var ErrInvalidCredentials = errors.New("Invalid Credentials")

type Service struct {
	store  *store.Store
	hasher *Hasher
	tokens *TokenService
	log    *zap.Logger
}

func NewService(st *store.Store, hasher *Hasher, tokens *TokenService, log *zap.Logger) *Service {
	return &Service{store: st, hasher: hasher, tokens: tokens, log: log}
}

// SignupInput carries the registration form fields.
type SignupInput struct {
	Name     string
	Mobile   string
	Email    string
	Username string
	Password string
}

// Signup validates, persists and logs in a new account in one flow. Nothing
// is written until both credential checks pass; a uniqueness race at the
// database still maps to store.ErrDuplicateAccount.
func (s *Service) Signup(in SignupInput) (token string, err error) {
	if err := validation.Password(in.Password); err != nil {
		return "", err
	}
	if err := validation.Username(in.Username); err != nil {
		return "", err
	}

	email := strings.ToLower(strings.TrimSpace(in.Email))

	exists, err := s.store.UserExists(email, in.Username)
	if err != nil {
		return "", err
	}
	if exists {
		return "", store.ErrDuplicateAccount
	}

	hashed, err := s.hasher.Hash(in.Password)
	if err != nil {
		return "", err
	}

	user := &models.User{
		Name:     strings.TrimSpace(in.Name),
		Mobile:   strings.TrimSpace(in.Mobile),
		Email:    email,
		Username: in.Username,
		Password: hashed,
		Currency: models.DefaultCurrency,
	}
	if err := s.store.CreateUser(user); err != nil {
		return "", err
	}

	s.log.Info("user registered", zap.Uint("user_id", user.ID), zap.String("username", user.Username))
	return s.tokens.Issue(user.ID)
}

// Login verifies a username/password pair and issues a fresh token.
func (s *Service) Login(username, password string) (string, error) {
	user, err := s.store.UserByUsername(username)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", err
	}
	if !s.hasher.Check(password, user.Password) {
		return "", ErrInvalidCredentials
	}

	s.log.Info("user logged in", zap.Uint("user_id", user.ID))
	return s.tokens.Issue(user.ID)
}
