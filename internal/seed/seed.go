package seed

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/alawael/platform/internal/app/models"
	"github.com/alawael/platform/internal/app/repositories"
	"github.com/alawael/platform/internal/pkg/auth"
	"github.com/alawael/platform/internal/storage"
)

// CreateDefaultData populates demo accounts and community content when
// the respective collections are empty. Intended for development mode only.
func CreateDefaultData(ctx context.Context, store storage.Store, lgr zerolog.Logger) error {
	if err := seedAccounts(ctx, store, lgr); err != nil {
		return err
	}
	return seedCommunity(ctx, store, lgr)
}

func seedAccounts(ctx context.Context, store storage.Store, lgr zerolog.Logger) error {
	userRepo := repositories.NewUserRepository(store)

	existing, err := userRepo.GetAll(ctx)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		lgr.Debug().Int("users", len(existing)).Msg("User collection already populated, skipping seed")
		return nil
	}

	lgr.Info().Msg("Seeding demo accounts...")

	password, err := auth.HashPassword("password123")
	if err != nil {
		return err
	}

	studentPoints := 1250
	demo := []models.User{
		{
			ID:          uuid.NewString(),
			Name:        "أحمد محمد",
			Email:       "student@alawael.app",
			Password:    password,
			Role:        models.RoleStudent,
			Points:      &studentPoints,
			Institution: "جامعة الخرطوم",
			Education: &models.Education{
				Stage:      models.StageSecondary,
				ClassLevel: "3",
				Track:      models.TrackScientific,
			},
			Language:  models.LanguageArabic,
			CreatedAt: time.Now(),
		},
		{
			ID:          uuid.NewString(),
			Name:        "د. فاطمة علي",
			Email:       "teacher@alawael.app",
			Password:    password,
			Role:        models.RoleTeacher,
			Institution: "جامعة الخرطوم",
			Language:    models.LanguageArabic,
			CreatedAt:   time.Now(),
		},
		{
			ID:        uuid.NewString(),
			Name:      "مدير النظام",
			Email:     "admin@alawael.app",
			Password:  password,
			Role:      models.RoleAdmin,
			Language:  models.LanguageArabic,
			CreatedAt: time.Now(),
		},
	}

	for i := range demo {
		if err := userRepo.Create(ctx, &demo[i]); err != nil {
			return err
		}
	}

	lgr.Info().Int("accounts", len(demo)).Msg("Demo accounts seeded")
	return nil
}

func seedCommunity(ctx context.Context, store storage.Store, lgr zerolog.Logger) error {
	communityRepo := repositories.NewCommunityRepository(store)

	groups, err := communityRepo.GetGroups(ctx)
	if err != nil {
		return err
	}
	if len(groups) > 0 {
		lgr.Debug().Int("groups", len(groups)).Msg("Study groups already populated, skipping seed")
		return nil
	}

	demo := []models.StudyGroup{
		{
			ID:          uuid.NewString(),
			Name:        "مجموعة الرياضيات المتقدمة",
			Subject:     "الرياضيات",
			Description: "مجموعة لمناقشة مواضيع الرياضيات المتقدمة وحل المسائل معاً",
			BaseMembers: 127,
		},
		{
			ID:          uuid.NewString(),
			Name:        "نادي الفيزياء التطبيقية",
			Subject:     "الفيزياء",
			Description: "استكشاف تطبيقات الفيزياء في الحياة العملية والتجارب المثيرة",
			BaseMembers: 89,
		},
		{
			ID:          uuid.NewString(),
			Name:        "مختبر الكيمياء الافتراضي",
			Subject:     "الكيمياء",
			Description: "مناقشة التجارب الكيميائية ومشاركة النتائج والملاحظات",
			BaseMembers: 156,
		},
	}

	if err := communityRepo.SaveGroups(ctx, demo); err != nil {
		return err
	}

	lgr.Info().Int("groups", len(demo)).Msg("Study groups seeded")
	return nil
}
