package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	ports "pawcare-service/internal/ports/auth"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("user not found")
)

const (
	accessTokenTTL  = time.Hour
	refreshTokenTTL = 30 * 24 * time.Hour
)

type Service struct {
	repo   Repository
	issuer ports.TokenIssuer
	valid  *validator.Validate

	// inyectable para tests
	now func() time.Time
}

func NewService(repo Repository, issuer ports.TokenIssuer) *Service {
	return &Service{
		repo:   repo,
		issuer: issuer,
		valid:  validator.New(),
		now:    time.Now,
	}
}

type Credentials struct {
	Email           string `validate:"required,email"`
	Password        string `validate:"required,min=6"`
	ConfirmPassword string `validate:"omitempty,eqfield=Password"`
}

type OTPRequest struct {
	Email string `validate:"required,email"`
	Code  string `validate:"required,len=6,numeric"`
}

type ProfileInput struct {
	DisplayName string
	AvatarURL   string
	Language    Language
}

// Register crea (o reutiliza) el usuario y devuelve tokens.
// La validación de credenciales es simulada: no se persiste el password.
func (s *Service) Register(ctx context.Context, in Credentials) (User, TokenPair, error) {
	if in.ConfirmPassword == "" {
		return User{}, TokenPair{}, fmt.Errorf("%w: confirm password is required", ErrInvalidInput)
	}
	if err := s.valid.Struct(in); err != nil {
		return User{}, TokenPair{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	return s.signIn(ctx, in.Email)
}

func (s *Service) Login(ctx context.Context, in Credentials) (User, TokenPair, error) {
	in.ConfirmPassword = ""
	if err := s.valid.Struct(in); err != nil {
		return User{}, TokenPair{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	return s.signIn(ctx, in.Email)
}

// SendOTP simula el envío de un código por correo.
func (s *Service) SendOTP(ctx context.Context, email string) error {
	if err := s.valid.Var(strings.TrimSpace(email), "required,email"); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	return nil
}

// LoginOTP acepta cualquier código de exactamente 6 dígitos.
func (s *Service) LoginOTP(ctx context.Context, in OTPRequest) (User, TokenPair, error) {
	if err := s.valid.Struct(in); err != nil {
		return User{}, TokenPair{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	return s.signIn(ctx, in.Email)
}

// ResetPassword simula el flujo de recuperación: solo valida el email.
func (s *Service) ResetPassword(ctx context.Context, email string) error {
	if err := s.valid.Var(strings.TrimSpace(email), "required,email"); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	return nil
}

func (s *Service) GetProfile(ctx context.Context, userID string) (User, error) {
	u, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		return User{}, ErrNotFound
	}
	return u, nil
}

func (s *Service) UpdateProfile(ctx context.Context, userID string, in ProfileInput) (User, error) {
	u, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		return User{}, ErrNotFound
	}

	if name := strings.TrimSpace(in.DisplayName); name != "" {
		u.DisplayName = name
	}
	if in.AvatarURL != "" {
		u.AvatarURL = strings.TrimSpace(in.AvatarURL)
	}
	if in.Language != "" {
		if !ValidLanguage(in.Language) {
			return User{}, fmt.Errorf("%w: invalid language %q", ErrInvalidInput, in.Language)
		}
		u.Language = in.Language
	}
	u.UpdatedAt = s.now().UTC()

	if err := s.repo.Update(ctx, u); err != nil {
		return User{}, err
	}
	return u, nil
}

// signIn hace upsert por email y emite el par de tokens.
func (s *Service) signIn(ctx context.Context, email string) (User, TokenPair, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	u, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		now := s.now().UTC()
		u = User{
			ID:          uuid.NewString(),
			Email:       email,
			DisplayName: displayNameFrom(email),
			Language:    LanguageEnglish,
			CreatedAt:   now,
			UpdatedAt:   now,
		}
		if err := s.repo.Create(ctx, u); err != nil {
			return User{}, TokenPair{}, err
		}
	}

	pair, err := s.issueTokens(u)
	if err != nil {
		return User{}, TokenPair{}, err
	}
	return u, pair, nil
}

func (s *Service) issueTokens(u User) (TokenPair, error) {
	claims := ports.Claims{UserID: u.ID, Email: u.Email}

	access, err := s.issuer.Issue(claims, accessTokenTTL)
	if err != nil {
		return TokenPair{}, err
	}
	refresh, err := s.issuer.Issue(claims, refreshTokenTTL)
	if err != nil {
		return TokenPair{}, err
	}

	return TokenPair{
		AccessToken:  access,
		RefreshToken: refresh,
		ExpiresIn:    int64(accessTokenTTL.Seconds()),
	}, nil
}

func displayNameFrom(email string) string {
	if at := strings.Index(email, "@"); at > 0 {
		return email[:at]
	}
	return email
}
