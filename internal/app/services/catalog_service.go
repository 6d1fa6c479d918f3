package services

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/alawael/platform/internal/app/models"
	"github.com/alawael/platform/internal/app/models/dto"
	"github.com/alawael/platform/internal/app/repositories"
)

// CatalogService builds grouped views over the course, exam and
// homework catalogs. Records with an empty course id land in the
// reserved "unlinked" bucket; records pointing at a deleted course stay
// grouped under the stale id.
type CatalogService struct {
	courseRepo   *repositories.CourseRepository
	examRepo     *repositories.ExamRepository
	homeworkRepo *repositories.HomeworkRepository
	logger       zerolog.Logger
}

// NewCatalogService creates a new CatalogService
func NewCatalogService(
	courseRepo *repositories.CourseRepository,
	examRepo *repositories.ExamRepository,
	homeworkRepo *repositories.HomeworkRepository,
	logger zerolog.Logger,
) *CatalogService {
	return &CatalogService{
		courseRepo:   courseRepo,
		examRepo:     examRepo,
		homeworkRepo: homeworkRepo,
		logger:       logger,
	}
}

// groupKey maps a stored course reference onto its catalog bucket
func groupKey(courseID string) string {
	if courseID == "" {
		return dto.UnlinkedGroupKey
	}
	return courseID
}

// ExamsByCourse groups all exams by course bucket, preserving catalog
// order inside each bucket
func (s *CatalogService) ExamsByCourse(ctx context.Context) (map[string][]models.Exam, error) {
	exams, err := s.examRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	groups := make(map[string][]models.Exam)
	for _, e := range exams {
		key := groupKey(e.CourseID)
		groups[key] = append(groups[key], e)
	}
	return groups, nil
}

// HomeworksByCourse groups all assignments by course bucket, preserving
// catalog order inside each bucket
func (s *CatalogService) HomeworksByCourse(ctx context.Context) (map[string][]models.Homework, error) {
	homeworks, err := s.homeworkRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	groups := make(map[string][]models.Homework)
	for _, h := range homeworks {
		key := groupKey(h.CourseID)
		groups[key] = append(groups[key], h)
	}
	return groups, nil
}

// Catalog assembles the full grouped teaching catalog. Buckets follow
// course catalog order, then stale course ids in first-reference order,
// then the unlinked bucket last.
func (s *CatalogService) Catalog(ctx context.Context) (*dto.CatalogResponse, error) {
	courses, err := s.courseRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	exams, err := s.examRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	homeworks, err := s.homeworkRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	examGroups := make(map[string][]models.Exam)
	for _, e := range exams {
		key := groupKey(e.CourseID)
		examGroups[key] = append(examGroups[key], e)
	}
	homeworkGroups := make(map[string][]models.Homework)
	for _, h := range homeworks {
		key := groupKey(h.CourseID)
		homeworkGroups[key] = append(homeworkGroups[key], h)
	}

	resp := &dto.CatalogResponse{
		Courses: make([]dto.CourseResponse, 0, len(courses)),
		Groups:  make([]dto.CourseGroup, 0, len(courses)+1),
	}

	live := make(map[string]bool, len(courses))
	for i := range courses {
		c := &courses[i]
		resp.Courses = append(resp.Courses, dto.ToCourseResponse(c))
		live[c.ID] = true
		group := dto.CourseGroup{CourseID: c.ID, Title: c.Title}
		fillGroup(&group, examGroups[c.ID], homeworkGroups[c.ID])
		resp.Groups = append(resp.Groups, group)
	}

	// Stale ids point at courses that no longer exist. They are emitted
	// in the order they are first referenced, exams before homeworks.
	staleSeen := make(map[string]bool)
	stale := make([]string, 0)
	for _, e := range exams {
		key := groupKey(e.CourseID)
		if key != dto.UnlinkedGroupKey && !live[key] && !staleSeen[key] {
			staleSeen[key] = true
			stale = append(stale, key)
		}
	}
	for _, h := range homeworks {
		key := groupKey(h.CourseID)
		if key != dto.UnlinkedGroupKey && !live[key] && !staleSeen[key] {
			staleSeen[key] = true
			stale = append(stale, key)
		}
	}
	for _, id := range stale {
		group := dto.CourseGroup{CourseID: id}
		fillGroup(&group, examGroups[id], homeworkGroups[id])
		resp.Groups = append(resp.Groups, group)
	}

	if len(examGroups[dto.UnlinkedGroupKey]) > 0 || len(homeworkGroups[dto.UnlinkedGroupKey]) > 0 {
		group := dto.CourseGroup{CourseID: dto.UnlinkedGroupKey}
		fillGroup(&group, examGroups[dto.UnlinkedGroupKey], homeworkGroups[dto.UnlinkedGroupKey])
		resp.Groups = append(resp.Groups, group)
	}

	return resp, nil
}

// fillGroup maps grouped models onto their wire form
func fillGroup(group *dto.CourseGroup, exams []models.Exam, homeworks []models.Homework) {
	for i := range exams {
		group.Exams = append(group.Exams, dto.ToExamResponse(&exams[i]))
	}
	for i := range homeworks {
		group.Homeworks = append(group.Homeworks, dto.ToHomeworkResponse(&homeworks[i]))
	}
}
