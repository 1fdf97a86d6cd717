package service

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"imbewu-be/internal/dto"
	"imbewu-be/internal/entity"
	"imbewu-be/internal/pkg/apperrors"
	"imbewu-be/internal/pkg/mailer"
	"imbewu-be/internal/repository/specification"
	"imbewu-be/internal/repository/unitofwork"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type IAuthService interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*dto.RegisterResponse, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error)
}

type authService struct {
	uowFactory   unitofwork.RepositoryFactory
	emailService mailer.IEmailService
}

func NewAuthService(uowFactory unitofwork.RepositoryFactory, emailService mailer.IEmailService) IAuthService {
	return &authService{
		uowFactory:   uowFactory,
		emailService: emailService,
	}
}

// validatePasswordStrength mirrors the signup form's policy: at least 8
// characters with upper, lower, digit and special character.
func validatePasswordStrength(password string) bool {
	if len(password) < 8 {
		return false
	}
	var hasUpper, hasLower, hasDigit, hasSpecial bool
	for _, r := range password {
		switch {
		case r >= 'A' && r <= 'Z':
			hasUpper = true
		case r >= 'a' && r <= 'z':
			hasLower = true
		case r >= '0' && r <= '9':
			hasDigit = true
		case strings.ContainsRune(`!@#$%^&*()_+-=[]{};':"\|,.<>/?`, r):
			hasSpecial = true
		}
	}
	return hasUpper && hasLower && hasDigit && hasSpecial
}

func (s *authService) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.RegisterResponse, error) {
	if !validatePasswordStrength(req.Password) {
		return nil, apperrors.Validation("Password does not meet requirements")
	}
	if !req.TermsAgreed || !req.EthicsAgreed {
		return nil, apperrors.Validation("You must agree to the terms and the cultural ethics commitment")
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	existing, err := uow.UserRepository().FindOne(ctx, specification.ByEmail{Email: req.Email})
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperrors.Conflict("Email already registered")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	hashStr := string(hash)

	user := &entity.User{
		Id:                  uuid.New(),
		Email:               req.Email,
		FullName:            req.FullName,
		Phone:               req.Phone,
		PasswordHash:        &hashStr,
		Role:                entity.UserRole(req.Role),
		Status:              entity.UserStatusActive,
		CulturalAffiliation: req.CulturalAffiliation,
		TermsAgreed:         req.TermsAgreed,
		EthicsAgreed:        req.EthicsAgreed,
		NewsletterAgreed:    req.NewsletterAgreed,
		CreatedAt:           time.Now(),
		UpdatedAt:           time.Now(),
	}

	if err := uow.UserRepository().Create(ctx, user); err != nil {
		return nil, err
	}

	go func() {
		if emailErr := s.emailService.SendWelcome(user.Email, user.FullName); emailErr != nil {
			fmt.Printf("Error sending welcome email: %v\n", emailErr)
		}
	}()

	token, err := generateToken(user)
	if err != nil {
		return nil, err
	}

	return &dto.RegisterResponse{
		Token: token,
		User:  toUserProfile(user),
	}, nil
}

func (s *authService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOne(ctx, specification.ByEmail{Email: req.Email})
	if err != nil {
		return nil, err
	}
	if user == nil || user.PasswordHash == nil {
		return nil, apperrors.Unauthorized("Invalid email or password")
	}
	if user.Status == entity.UserStatusBlocked {
		return nil, apperrors.Forbidden("Account is blocked")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(*user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, apperrors.Unauthorized("Invalid email or password")
	}

	token, err := generateToken(user)
	if err != nil {
		return nil, err
	}

	return &dto.LoginResponse{
		Token: token,
		User:  toUserProfile(user),
	}, nil
}

func generateToken(user *entity.User) (string, error) {
	claims := jwt.MapClaims{
		"user_id": user.Id.String(),
		"role":    string(user.Role),
		"exp":     time.Now().Add(24 * time.Hour).Unix(),
		"iat":     time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(os.Getenv("JWT_SECRET")))
}

func toUserProfile(user *entity.User) dto.UserProfileResponse {
	avatar := ""
	if user.AvatarURL != nil {
		avatar = *user.AvatarURL
	}
	return dto.UserProfileResponse{
		Id:                  user.Id,
		Email:               user.Email,
		FullName:            user.FullName,
		Phone:               user.Phone,
		Role:                string(user.Role),
		Status:              string(user.Status),
		CulturalAffiliation: user.CulturalAffiliation,
		AvatarURL:           avatar,
		Initials:            user.Initials(),
		CreatedAt:           user.CreatedAt,
	}
}
