package service

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"donatehub/internal/domain"
)

// Validation errors surfaced by Register and Login. Handlers map these to
// user-displayable messages; none are silently swallowed.
var (
	ErrMissingFields    = errors.New("missing required fields")
	ErrInvalidEmail     = errors.New("invalid email format")
	ErrPasswordTooShort = errors.New("password too short")
	ErrPasswordMismatch = errors.New("password mismatch")
)

var emailRegexp = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

const (
	bcryptCost     = 10
	minPasswordLen = 6
	tokenValidity  = 24 * time.Hour
)

// Identity registers users with hashed credentials and authenticates them,
// issuing signed bearer tokens.
type Identity struct {
	users     domain.UserRepository
	jwtSecret string
	logger    zerolog.Logger
	now       func() time.Time
}

// NewIdentity creates an identity service signing tokens with the given
// secret.
func NewIdentity(users domain.UserRepository, jwtSecret string, logger zerolog.Logger) *Identity {
	return &Identity{users: users, jwtSecret: jwtSecret, logger: logger, now: time.Now}
}

// RegisterInput carries the registration form fields. LastName is optional.
type RegisterInput struct {
	FirstName       string
	LastName        string
	Email           string
	Password        string
	ConfirmPassword string
	Role            domain.UserRole
}

// Register validates the input and stores a new user with a bcrypt password
// hash. The created credentials are never returned. Validation runs before
// any record is persisted.
func (s *Identity) Register(ctx context.Context, in RegisterInput) error {
	if in.FirstName == "" || in.Email == "" || in.Password == "" || in.ConfirmPassword == "" {
		return ErrMissingFields
	}
	if !emailRegexp.MatchString(in.Email) {
		return ErrInvalidEmail
	}
	if len(in.Password) < minPasswordLen {
		return ErrPasswordTooShort
	}
	if in.Password != in.ConfirmPassword {
		return ErrPasswordMismatch
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcryptCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	role := in.Role
	if role == "" {
		role = domain.UserRoleUser
	}
	user := &domain.User{
		ID:           uuid.NewString(),
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		Email:        strings.ToLower(in.Email),
		PasswordHash: string(hash),
		Role:         role,
		CreatedAt:    s.now(),
	}
	if err := s.users.Create(ctx, user); err != nil {
		return err
	}
	s.logger.Info().Str("user_id", user.ID).Msg("user registered")
	return nil
}

// LoginResult holds the issued token and a minimal user projection.
type LoginResult struct {
	Token string
	User  *domain.User
}

// Login authenticates by email and password and issues an HS256 token valid
// for one day. Unknown email and wrong password both return
// domain.ErrInvalidCredentials so callers cannot tell which one failed.
func (s *Identity) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	if email == "" || password == "" {
		return nil, ErrMissingFields
	}
	if !emailRegexp.MatchString(email) {
		return nil, ErrInvalidEmail
	}

	user, err := s.users.GetByEmail(ctx, email)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, domain.ErrInvalidCredentials
	}
	if err != nil {
		return nil, fmt.Errorf("lookup user: %w", err)
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, domain.ErrInvalidCredentials
	}

	token, err := s.signToken(user)
	if err != nil {
		return nil, fmt.Errorf("sign token: %w", err)
	}
	return &LoginResult{Token: token, User: user}, nil
}

// GetUser fetches a user by id.
func (s *Identity) GetUser(ctx context.Context, id string) (*domain.User, error) {
	return s.users.GetByID(ctx, id)
}

func (s *Identity) signToken(user *domain.User) (string, error) {
	now := s.now()
	claims := jwt.MapClaims{
		"sub":   user.ID,
		"email": user.Email,
		"iat":   now.Unix(),
		"exp":   now.Add(tokenValidity).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.jwtSecret))
}
