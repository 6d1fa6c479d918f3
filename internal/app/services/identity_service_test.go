package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alawael/platform/internal/app/models"
	"github.com/alawael/platform/internal/app/models/dto"
	"github.com/alawael/platform/internal/app/repositories"
	"github.com/alawael/platform/internal/pkg/apperrors"
	"github.com/alawael/platform/internal/pkg/auth"
)

func newIdentityService(t *testing.T) (*IdentityService, *repositories.Repositories) {
	t.Helper()
	repos := newTestRepos(t)
	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:      "test-secret",
		AccessTokenExp: time.Hour,
		TokenIssuer:    "alawael-test",
	})
	return NewIdentityService(repos.UserRepository, repos.SessionRepository, jwtService, zerolog.Nop()), repos
}

func studentLogin(email string) *dto.LoginRequest {
	return &dto.LoginRequest{
		Email:    email,
		Password: "secret123",
		Role:     models.RoleStudent,
		Name:     "أحمد محمد",
		Education: &dto.EducationRequest{
			Stage:      models.StageSecondary,
			ClassLevel: "3",
			Track:      models.TrackScientific,
		},
	}
}

func TestLoginProvisionsUnknownStudent(t *testing.T) {
	svc, _ := newIdentityService(t)

	session, err := svc.Login(context.Background(), studentLogin("new@alawael.app"))
	require.NoError(t, err)
	require.NotEmpty(t, session.Token)

	user := session.User
	assert.Equal(t, models.RoleStudent, user.Role)
	assert.Equal(t, "new@alawael.app", user.Email)
	require.NotNil(t, user.Points)
	assert.Equal(t, loginSeedPoints, *user.Points)
	assert.Equal(t, defaultInstitution, user.Institution)
	assert.Equal(t, models.LanguageArabic, user.Language)
	require.NotNil(t, user.Education)
	assert.Equal(t, models.StageSecondary, user.Education.Stage)
	assert.Equal(t, "3", user.Education.ClassLevel)
	assert.Equal(t, models.TrackScientific, user.Education.Track)
}

func TestPasswordHashSurvivesStorage(t *testing.T) {
	svc, repos := newIdentityService(t)
	ctx := context.Background()

	session, err := svc.Login(ctx, studentLogin("hash@alawael.app"))
	require.NoError(t, err)

	// The user ledger keeps the bcrypt hash across a storage round trip.
	stored, err := repos.UserRepository.FindByID(ctx, session.User.ID)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.NotEmpty(t, stored.Password)
	assert.True(t, auth.CheckPassword(stored.Password, "secret123"))
}

func TestSessionSnapshotCarriesNoHash(t *testing.T) {
	svc, repos := newIdentityService(t)
	ctx := context.Background()

	session, err := svc.Login(ctx, studentLogin("scrub@alawael.app"))
	require.NoError(t, err)
	assert.Empty(t, session.User.Password)

	stored, err := repos.SessionRepository.Get(ctx, session.User.ID)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Empty(t, stored.User.Password)

	// Profile edits rebuild the snapshot without leaking the hash.
	_, err = svc.UpdateProfile(ctx, session.User.ID, &dto.UpdateProfileRequest{Avatar: "a.png"})
	require.NoError(t, err)
	stored, err = repos.SessionRepository.Get(ctx, session.User.ID)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Empty(t, stored.User.Password)
}

func TestTrackOnlyKeptForThirdYearSecondary(t *testing.T) {
	svc, _ := newIdentityService(t)
	ctx := context.Background()

	req := studentLogin("primary@alawael.app")
	req.Education = &dto.EducationRequest{
		Stage:      models.StagePrimary,
		ClassLevel: "5",
		Track:      models.TrackScientific,
	}
	session, err := svc.Login(ctx, req)
	require.NoError(t, err)
	require.NotNil(t, session.User.Education)
	assert.Empty(t, session.User.Education.Track)

	req = studentLogin("secondyear@alawael.app")
	req.Education.ClassLevel = "2"
	session, err = svc.Login(ctx, req)
	require.NoError(t, err)
	assert.Empty(t, session.User.Education.Track)

	session, err = svc.Login(ctx, studentLogin("thirdyear@alawael.app"))
	require.NoError(t, err)
	assert.Equal(t, models.TrackScientific, session.User.Education.Track)
}

func TestLoginProvisionsAdminDisplayName(t *testing.T) {
	svc, _ := newIdentityService(t)

	session, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "admin@alawael.app",
		Password: "secret123",
		Role:     models.RoleAdmin,
	})
	require.NoError(t, err)
	assert.Equal(t, adminDisplayName, session.User.Name)
	assert.Nil(t, session.User.Points)
}

func TestLoginKnownAccountChecksPassword(t *testing.T) {
	svc, _ := newIdentityService(t)
	ctx := context.Background()

	_, err := svc.Login(ctx, studentLogin("known@alawael.app"))
	require.NoError(t, err)

	// Same email with the right password signs in again.
	session, err := svc.Login(ctx, studentLogin("known@alawael.app"))
	require.NoError(t, err)
	assert.Equal(t, "known@alawael.app", session.User.Email)

	// Wrong password is rejected instead of provisioning a duplicate.
	bad := studentLogin("known@alawael.app")
	bad.Password = "wrong-password"
	_, err = svc.Login(ctx, bad)
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrInvalidCredentials))
}

func TestLoginRejectsUnknownRole(t *testing.T) {
	svc, _ := newIdentityService(t)

	req := studentLogin("x@alawael.app")
	req.Role = "SUPERUSER"
	_, err := svc.Login(context.Background(), req)
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrValidationFailed))
}

func TestRegister(t *testing.T) {
	svc, _ := newIdentityService(t)
	ctx := context.Background()

	session, err := svc.Register(ctx, &dto.RegisterRequest{
		Name:            "ليلى حسن",
		Email:           "Layla@alawael.app",
		Password:        "secret123",
		ConfirmPassword: "secret123",
		Role:            models.RoleStudent,
	})
	require.NoError(t, err)
	assert.Equal(t, "layla@alawael.app", session.User.Email)
	require.NotNil(t, session.User.Points)
	assert.Equal(t, registerSeedPoints, *session.User.Points)

	// The same email cannot register twice, regardless of case.
	_, err = svc.Register(ctx, &dto.RegisterRequest{
		Name:            "ليلى حسن",
		Email:           "layla@alawael.app",
		Password:        "secret123",
		ConfirmPassword: "secret123",
		Role:            models.RoleStudent,
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrEmailAlreadyExists))
}

func TestRegisterPasswordMismatch(t *testing.T) {
	svc, _ := newIdentityService(t)

	_, err := svc.Register(context.Background(), &dto.RegisterRequest{
		Name:            "خالد",
		Email:           "khaled@alawael.app",
		Password:        "secret123",
		ConfirmPassword: "different",
		Role:            models.RoleTeacher,
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrValidationFailed))
}

func TestLogoutDiscardsSession(t *testing.T) {
	svc, repos := newIdentityService(t)
	ctx := context.Background()

	session, err := svc.Login(ctx, studentLogin("bye@alawael.app"))
	require.NoError(t, err)
	userID := session.User.ID

	require.NoError(t, svc.Logout(ctx, userID))

	stored, err := repos.SessionRepository.Get(ctx, userID)
	require.NoError(t, err)
	assert.Nil(t, stored)

	// Logging out twice is harmless.
	require.NoError(t, svc.Logout(ctx, userID))
}

func TestUpdateProfileRefreshesSession(t *testing.T) {
	svc, repos := newIdentityService(t)
	ctx := context.Background()

	session, err := svc.Login(ctx, studentLogin("edit@alawael.app"))
	require.NoError(t, err)
	userID := session.User.ID

	updated, err := svc.UpdateProfile(ctx, userID, &dto.UpdateProfileRequest{
		Name:        "أحمد محمد علي",
		Institution: "جامعة السودان",
	})
	require.NoError(t, err)
	assert.Equal(t, "أحمد محمد علي", updated.Name)

	stored, err := repos.SessionRepository.Get(ctx, userID)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, "أحمد محمد علي", stored.User.Name)
	assert.Equal(t, "جامعة السودان", stored.User.Institution)
}

func TestUpdateProfileKeepsNameWhenAbsent(t *testing.T) {
	svc, _ := newIdentityService(t)
	ctx := context.Background()

	session, err := svc.Login(ctx, studentLogin("avatar@alawael.app"))
	require.NoError(t, err)
	userID := session.User.ID
	originalName := session.User.Name

	updated, err := svc.UpdateProfile(ctx, userID, &dto.UpdateProfileRequest{
		Avatar: "avatars/me.png",
	})
	require.NoError(t, err)
	assert.Equal(t, originalName, updated.Name)
	assert.Equal(t, "avatars/me.png", updated.Avatar)
}

func TestToggleLanguage(t *testing.T) {
	svc, _ := newIdentityService(t)
	ctx := context.Background()

	session, err := svc.Login(ctx, studentLogin("lang@alawael.app"))
	require.NoError(t, err)
	userID := session.User.ID

	lang, err := svc.ToggleLanguage(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, models.LanguageEnglish, lang)
	assert.Equal(t, "ltr", lang.Direction())

	lang, err = svc.ToggleLanguage(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, models.LanguageArabic, lang)
	assert.Equal(t, "rtl", lang.Direction())
}

func TestGetProfileUnknownUser(t *testing.T) {
	svc, _ := newIdentityService(t)

	_, err := svc.GetProfile(context.Background(), "missing")
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrUserNotFound))
}
