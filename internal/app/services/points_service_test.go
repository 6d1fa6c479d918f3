package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alawael/platform/internal/app/models"
	"github.com/alawael/platform/internal/pkg/apperrors"
)

func TestPointsBalance(t *testing.T) {
	repos := newTestRepos(t)
	svc := NewPointsService(repos.UserRepository, zerolog.Nop())
	ctx := context.Background()

	points := 1250
	require.NoError(t, repos.UserRepository.Create(ctx, &models.User{
		ID:     "s1",
		Role:   models.RoleStudent,
		Points: &points,
	}))
	require.NoError(t, repos.UserRepository.Create(ctx, &models.User{
		ID:   "t1",
		Role: models.RoleTeacher,
	}))

	balance, err := svc.Balance(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, 1250, balance)

	_, err = svc.Balance(ctx, "t1")
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrPermissionDenied))

	_, err = svc.Balance(ctx, "missing")
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrUserNotFound))
}

func TestPurchaseLink(t *testing.T) {
	repos := newTestRepos(t)
	svc := NewPointsService(repos.UserRepository, zerolog.Nop())

	link := svc.PurchaseLink()
	assert.True(t, strings.HasPrefix(link.URL, "https://wa.me/249925385818?text="))
	assert.NotContains(t, link.URL, " ")
	assert.Equal(t, 1000, link.BundlePoints)
	assert.Equal(t, 100, link.BundlePrice)
	assert.Equal(t, "SDG", link.Currency)
}
