package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/alawael/platform/internal/app/models"
	"github.com/alawael/platform/internal/app/models/dto"
	"github.com/alawael/platform/internal/app/repositories"
	"github.com/alawael/platform/internal/pkg/apperrors"
	"github.com/alawael/platform/internal/pkg/auth"
)

// Starting balances and placeholder profile values for accounts created
// on first sign-in versus explicit registration.
const (
	loginSeedPoints    = 1250
	registerSeedPoints = 100

	defaultInstitution = "جامعة الخرطوم"
	adminDisplayName   = "مدير النظام"
)

// IdentityService handles accounts, sessions and profile state
type IdentityService struct {
	userRepo    *repositories.UserRepository
	sessionRepo *repositories.SessionRepository
	jwtService  *auth.JWTService
	logger      zerolog.Logger
}

// NewIdentityService creates a new IdentityService
func NewIdentityService(
	userRepo *repositories.UserRepository,
	sessionRepo *repositories.SessionRepository,
	jwtService *auth.JWTService,
	logger zerolog.Logger,
) *IdentityService {
	return &IdentityService{
		userRepo:    userRepo,
		sessionRepo: sessionRepo,
		jwtService:  jwtService,
		logger:      logger,
	}
}

// Login authenticates an existing account or provisions one on the fly.
// An email seen for the first time gets an account with role defaults;
// a known email must present the matching password.
func (s *IdentityService) Login(ctx context.Context, req *dto.LoginRequest) (*models.Session, error) {
	if !models.ValidRole(req.Role) {
		return nil, apperrors.NewValidationError("role", fmt.Sprintf("unknown role %q", req.Role))
	}

	user, err := s.userRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}

	if user != nil {
		if !auth.CheckPassword(user.Password, req.Password) {
			return nil, apperrors.ErrInvalidCredentials
		}
	} else {
		user, err = s.provisionUser(ctx, req)
		if err != nil {
			return nil, err
		}
	}

	return s.openSession(ctx, user)
}

// provisionUser creates an account from login data with role defaults
func (s *IdentityService) provisionUser(ctx context.Context, req *dto.LoginRequest) (*models.User, error) {
	hashed, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		name = nameFromEmail(req.Email)
	}

	user := &models.User{
		ID:        uuid.NewString(),
		Name:      name,
		Email:     strings.ToLower(strings.TrimSpace(req.Email)),
		Password:  hashed,
		Role:      req.Role,
		Language:  models.LanguageArabic,
		CreatedAt: time.Now(),
	}

	switch req.Role {
	case models.RoleStudent:
		points := loginSeedPoints
		user.Points = &points
		user.Institution = defaultInstitution
		if req.Education != nil {
			user.Education = educationFromRequest(req.Education)
		}
	case models.RoleTeacher:
		user.Institution = defaultInstitution
	case models.RoleAdmin:
		user.Name = adminDisplayName
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("userId", user.ID).
		Str("role", string(user.Role)).
		Msg("provisioned account on first sign-in")

	return user, nil
}

// Register creates an account from an explicit registration form
func (s *IdentityService) Register(ctx context.Context, req *dto.RegisterRequest) (*models.Session, error) {
	if !models.ValidRole(req.Role) {
		return nil, apperrors.NewValidationError("role", fmt.Sprintf("unknown role %q", req.Role))
	}
	if req.Password != req.ConfirmPassword {
		return nil, apperrors.NewValidationError("confirmPassword", "passwords do not match")
	}

	existing, err := s.userRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperrors.ErrEmailAlreadyExists
	}

	hashed, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}

	user := &models.User{
		ID:          uuid.NewString(),
		Name:        req.Name,
		Email:       strings.ToLower(strings.TrimSpace(req.Email)),
		Password:    hashed,
		Role:        req.Role,
		Institution: req.Institution,
		Language:    models.LanguageArabic,
		CreatedAt:   time.Now(),
	}

	if req.Role == models.RoleStudent {
		points := registerSeedPoints
		user.Points = &points
		if req.Education != nil {
			user.Education = educationFromRequest(req.Education)
		}
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	return s.openSession(ctx, user)
}

// openSession issues a token and persists the session snapshot
func (s *IdentityService) openSession(ctx context.Context, user *models.User) (*models.Session, error) {
	token, _, err := s.jwtService.GenerateToken(user)
	if err != nil {
		return nil, fmt.Errorf("generating token: %w", err)
	}

	session := &models.Session{
		Token:     token,
		User:      *user,
		CreatedAt: time.Now(),
	}
	// The snapshot never carries the hash; only the user ledger does.
	session.User.Password = ""
	if err := s.sessionRepo.Save(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// Logout discards the persisted session. Unknown sessions are a no-op.
func (s *IdentityService) Logout(ctx context.Context, userID string) error {
	return s.sessionRepo.Delete(ctx, userID)
}

// GetProfile returns the stored account for a user id
func (s *IdentityService) GetProfile(ctx context.Context, userID string) (*models.User, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperrors.ErrUserNotFound
	}
	return user, nil
}

// UpdateProfile applies editable profile fields and refreshes any
// persisted session snapshot so the two never diverge
func (s *IdentityService) UpdateProfile(ctx context.Context, userID string, req *dto.UpdateProfileRequest) (*models.User, error) {
	user, err := s.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	if strings.TrimSpace(req.Name) != "" {
		user.Name = req.Name
	}
	if req.Avatar != "" {
		user.Avatar = req.Avatar
	}
	if req.Institution != "" {
		user.Institution = req.Institution
	}
	if req.Education != nil {
		user.Education = educationFromRequest(req.Education)
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	if err := s.refreshSession(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// ToggleLanguage flips the account between Arabic and English
func (s *IdentityService) ToggleLanguage(ctx context.Context, userID string) (models.Language, error) {
	user, err := s.GetProfile(ctx, userID)
	if err != nil {
		return "", err
	}

	if user.Language == models.LanguageArabic {
		user.Language = models.LanguageEnglish
	} else {
		user.Language = models.LanguageArabic
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return "", err
	}
	if err := s.refreshSession(ctx, user); err != nil {
		return "", err
	}
	return user.Language, nil
}

// refreshSession rewrites the session snapshot if one is persisted
func (s *IdentityService) refreshSession(ctx context.Context, user *models.User) error {
	session, err := s.sessionRepo.Get(ctx, user.ID)
	if err != nil || session == nil {
		return err
	}
	session.User = *user
	session.User.Password = ""
	return s.sessionRepo.Save(ctx, session)
}

// educationFromRequest copies the academic placement onto the stored
// form. A track only applies to third-year secondary students and is
// dropped for any other placement.
func educationFromRequest(req *dto.EducationRequest) *models.Education {
	edu := &models.Education{
		Stage:      req.Stage,
		ClassLevel: req.ClassLevel,
	}
	if req.Stage == models.StageSecondary && req.ClassLevel == "3" {
		edu.Track = req.Track
	}
	return edu
}

// nameFromEmail derives a display name from the local part of an email
func nameFromEmail(email string) string {
	local := email
	if i := strings.Index(email, "@"); i > 0 {
		local = email[:i]
	}
	return strings.NewReplacer(".", " ", "_", " ").Replace(local)
}
