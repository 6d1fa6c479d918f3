package services

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alawael/platform/internal/app/models"
	"github.com/alawael/platform/internal/app/models/dto"
	"github.com/alawael/platform/internal/app/repositories"
	"github.com/alawael/platform/internal/pkg/apperrors"
)

func newCommunityService(t *testing.T) (*CommunityService, *repositories.Repositories) {
	t.Helper()
	repos := newTestRepos(t)
	svc := NewCommunityService(repos.CommunityRepository, repos.UserRepository, zerolog.Nop())
	return svc, repos
}

func seedStudyGroup(t *testing.T, repos *repositories.Repositories, name string, baseMembers int) string {
	t.Helper()
	group := models.StudyGroup{
		ID:          uuid.NewString(),
		Name:        name,
		Subject:     "الرياضيات",
		BaseMembers: baseMembers,
	}
	existing, err := repos.CommunityRepository.GetGroups(context.Background())
	require.NoError(t, err)
	err = repos.CommunityRepository.SaveGroups(context.Background(), append(existing, group))
	require.NoError(t, err)
	return group.ID
}

func TestCreatePostSnapshotsAuthor(t *testing.T) {
	svc, repos := newCommunityService(t)
	ctx := context.Background()
	seedStudent(t, repos, "s1", "أحمد محمد")

	post, err := svc.CreatePost(ctx, "s1", &dto.CreatePostRequest{
		Content: "هل يمكن لأحد أن يشرح لي مفهوم التفاضل؟",
		Subject: "الرياضيات",
	})
	require.NoError(t, err)
	assert.Equal(t, "s1", post.Author.ID)
	assert.Equal(t, "أحمد محمد", post.Author.Name)
	assert.Equal(t, models.RoleStudent, post.Author.Role)
	assert.Equal(t, "الرياضيات", post.Subject)
	assert.Zero(t, post.Likes)
	assert.False(t, post.IsLiked)
}

func TestCreatePostDefaultsSubject(t *testing.T) {
	svc, repos := newCommunityService(t)
	seedStudent(t, repos, "s1", "أحمد")

	post, err := svc.CreatePost(context.Background(), "s1", &dto.CreatePostRequest{
		Content: "نصيحة لليوم",
	})
	require.NoError(t, err)
	assert.Equal(t, generalSubject, post.Subject)
}

func TestCreatePostRequiresContent(t *testing.T) {
	svc, repos := newCommunityService(t)
	seedStudent(t, repos, "s1", "أحمد")

	_, err := svc.CreatePost(context.Background(), "s1", &dto.CreatePostRequest{Content: "   "})
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrValidationFailed))
}

func TestCreatePostUnknownAuthor(t *testing.T) {
	svc, _ := newCommunityService(t)

	_, err := svc.CreatePost(context.Background(), "ghost", &dto.CreatePostRequest{Content: "مرحبا"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrUserNotFound))
}

func TestFeedIsMostRecentFirst(t *testing.T) {
	svc, repos := newCommunityService(t)
	ctx := context.Background()
	seedStudent(t, repos, "s1", "أحمد")

	_, err := svc.CreatePost(ctx, "s1", &dto.CreatePostRequest{Content: "الأول"})
	require.NoError(t, err)
	_, err = svc.CreatePost(ctx, "s1", &dto.CreatePostRequest{Content: "الثاني"})
	require.NoError(t, err)

	posts, err := svc.ListPosts(ctx, "s1")
	require.NoError(t, err)
	require.Len(t, posts, 2)
	assert.Equal(t, "الثاني", posts[0].Content)
	assert.Equal(t, "الأول", posts[1].Content)
}

func TestToggleLikeRoundTrip(t *testing.T) {
	svc, repos := newCommunityService(t)
	ctx := context.Background()
	seedStudent(t, repos, "s1", "أحمد")
	seedStudent(t, repos, "s2", "سارة")

	post, err := svc.CreatePost(ctx, "s1", &dto.CreatePostRequest{Content: "مرحبا"})
	require.NoError(t, err)

	like, err := svc.ToggleLike(ctx, post.ID, "s2")
	require.NoError(t, err)
	assert.Equal(t, 1, like.Likes)
	assert.True(t, like.IsLiked)

	// Like state is per viewer.
	posts, err := svc.ListPosts(ctx, "s1")
	require.NoError(t, err)
	require.Len(t, posts, 1)
	assert.Equal(t, 1, posts[0].Likes)
	assert.False(t, posts[0].IsLiked)

	// A second toggle removes the like.
	like, err = svc.ToggleLike(ctx, post.ID, "s2")
	require.NoError(t, err)
	assert.Zero(t, like.Likes)
	assert.False(t, like.IsLiked)
}

func TestToggleLikeUnknownPost(t *testing.T) {
	svc, _ := newCommunityService(t)

	_, err := svc.ToggleLike(context.Background(), "missing", "s1")
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrPostNotFound))
}

func TestStudyGroupMembershipToggle(t *testing.T) {
	svc, repos := newCommunityService(t)
	ctx := context.Background()
	groupID := seedStudyGroup(t, repos, "مجموعة الرياضيات المتقدمة", 127)

	joined, err := svc.ToggleMembership(ctx, groupID, "s1")
	require.NoError(t, err)
	assert.Equal(t, 128, joined.Members)
	assert.True(t, joined.IsJoined)

	// Membership is per viewer.
	groups, err := svc.ListGroups(ctx, "s2")
	require.NoError(t, err)
	require.Len(t, groups, 1)
	assert.Equal(t, 128, groups[0].Members)
	assert.False(t, groups[0].IsJoined)

	// Toggling again leaves the group.
	left, err := svc.ToggleMembership(ctx, groupID, "s1")
	require.NoError(t, err)
	assert.Equal(t, 127, left.Members)
	assert.False(t, left.IsJoined)
}

func TestToggleMembershipUnknownGroup(t *testing.T) {
	svc, _ := newCommunityService(t)

	_, err := svc.ToggleMembership(context.Background(), "missing", "s1")
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrGroupNotFound))
}
