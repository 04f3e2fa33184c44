package services

import (
	"errors"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"bakery_storefront/internal/models"
)

// SignupUserID is the id every signed-up account receives.
const SignupUserID = 3

var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrSignupIncomplete   = errors.New("please fill out all fields")
	ErrPasswordMismatch   = errors.New("passwords do not match")
)

type SignupRequest struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	Username        string `json:"username"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
}

// AuthService checks credentials against a fixed allow-list of demo accounts.
type AuthService interface {
	Login(username, password string) (*models.User, error)
	Signup(req SignupRequest) (*models.User, error)
}

type account struct {
	user models.User
	hash []byte
}

type authService struct {
	accounts map[string]account
	log      *zap.Logger
}

// NewAuthService hashes the password of every user found in passwords.
// Users without a password cannot log in.
func NewAuthService(users []models.User, passwords map[string]string, log *zap.Logger) (AuthService, error) {
	if log == nil {
		log = zap.NewNop()
	}
	s := &authService{accounts: make(map[string]account, len(users)), log: log}
	for _, u := range users {
		password, ok := passwords[u.Username]
		if !ok {
			continue
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password of %s: %w", u.Username, err)
		}
		s.accounts[u.Username] = account{user: u, hash: hash}
	}
	return s, nil
}

func (s *authService) Login(username, password string) (*models.User, error) {
	acc, ok := s.accounts[username]
	if !ok {
		s.log.Info("login rejected", zap.String("username", username))
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword(acc.hash, []byte(password)); err != nil {
		s.log.Info("login rejected", zap.String("username", username))
		return nil, ErrInvalidCredentials
	}
	user := acc.user
	return &user, nil
}

// Signup accepts any complete form with matching passwords. Nothing is stored.
func (s *authService) Signup(req SignupRequest) (*models.User, error) {
	for _, v := range []string{req.Name, req.Email, req.Username, req.Password, req.ConfirmPassword} {
		if v == "" {
			return nil, ErrSignupIncomplete
		}
	}
	if req.Password != req.ConfirmPassword {
		return nil, ErrPasswordMismatch
	}
	s.log.Info("signup", zap.String("username", req.Username))
	return &models.User{
		ID:       SignupUserID,
		Username: req.Username,
		Name:     req.Name,
		Email:    req.Email,
	}, nil
}
