package models

// RoleType defines the user role type
type RoleType string

const (
	RoleStudent     RoleType = "STUDENT"
	RoleTeacher     RoleType = "TEACHER"
	RoleInstitution RoleType = "INSTITUTION"
	RoleParent      RoleType = "PARENT"
	RoleAdmin       RoleType = "ADMIN"
)

// ValidRole reports whether the given role is one of the platform roles.
func ValidRole(r RoleType) bool {
	switch r {
	case RoleStudent, RoleTeacher, RoleInstitution, RoleParent, RoleAdmin:
		return true
	}
	return false
}

// Language is the user interface language preference
type Language string

const (
	LanguageArabic  Language = "ar"
	LanguageEnglish Language = "en"
)

// Direction returns the reading direction for the language (rtl for Arabic).
func (l Language) Direction() string {
	if l == LanguageArabic {
		return "rtl"
	}
	return "ltr"
}

// EducationStage represents the school stage of a student
type EducationStage string

const (
	StagePrimary      EducationStage = "primary"
	StageIntermediate EducationStage = "intermediate"
	StageSecondary    EducationStage = "secondary"
)

// Track is the academic track, meaningful only for third-year secondary students
type Track string

const (
	TrackScientific Track = "scientific"
	TrackLiterary   Track = "literary"
)

// ExamSource distinguishes question-bank exams from external-link exams
type ExamSource string

const (
	ExamSourceInternal ExamSource = "internal"
	ExamSourceExternal ExamSource = "external"
)

// TimerMode selects which timer field of an exam is meaningful
type TimerMode string

const (
	TimerPerExam     TimerMode = "perExam"
	TimerPerQuestion TimerMode = "perQuestion"
)
