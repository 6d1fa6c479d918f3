package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/alawael/platform/internal/app/controllers"
	"github.com/alawael/platform/internal/app/models"
	"github.com/alawael/platform/internal/app/models/dto"
	"github.com/alawael/platform/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	courseController *controllers.CourseController,
	examController *controllers.ExamController,
	homeworkController *controllers.HomeworkController,
	pointsController *controllers.PointsController,
	communityController *controllers.CommunityController,
	authMiddleware *middleware.AuthMiddleware,
) {
	// API version group
	v1 := router.Group("/api/v1")

	// --- Public Auth routes ---
	auth := v1.Group("/auth")
	{
		auth.POST("/register", authController.Register)
		auth.POST("/login", authController.Login)
	}

	// --- Authenticated Routes Group ---
	authenticated := v1.Group("")
	authenticated.Use(authMiddleware.JWTAuth())
	{
		authenticated.POST("/auth/logout", authController.Logout)

		// Profile routes
		profile := authenticated.Group("/profile")
		{
			profile.GET("", authController.GetProfile)
			profile.PUT("", authController.UpdateProfile)
			profile.POST("/language", authController.ToggleLanguage)
		}

		// Points routes (students only)
		points := authenticated.Group("/points")
		points.Use(authMiddleware.RoleRequired(models.RoleStudent))
		{
			points.GET("", pointsController.Balance)
			points.GET("/purchase-link", pointsController.PurchaseLink)
		}

		// Course routes
		courses := authenticated.Group("/courses")
		{
			courses.GET("", courseController.ListCourses)
			courses.GET("/catalog", examController.Catalog)
			courses.GET("/:id", courseController.GetCourse)
			courses.GET("/:id/files/:fileId", courseController.DownloadCourseFile)

			// Teacher-only course management
			coursesTeacherProtected := courses.Group("")
			coursesTeacherProtected.Use(authMiddleware.RoleRequired(models.RoleTeacher))
			{
				coursesTeacherProtected.POST("", courseController.CreateCourse)
				coursesTeacherProtected.DELETE("/:id", courseController.DeleteCourse)
			}

			// Student-only enrollment toggle
			coursesStudentProtected := courses.Group("")
			coursesStudentProtected.Use(authMiddleware.RoleRequired(models.RoleStudent))
			{
				coursesStudentProtected.POST("/:id/enroll", courseController.ToggleEnrollment)
			}
		}

		// Enrollment listing (students only)
		enrollments := authenticated.Group("/enrollments")
		enrollments.Use(authMiddleware.RoleRequired(models.RoleStudent))
		{
			enrollments.GET("", courseController.ListEnrollments)
		}

		// Exam routes
		exams := authenticated.Group("/exams")
		{
			exams.GET("", examController.ListExams)
			exams.GET("/:id", examController.GetExam)

			examsTeacherProtected := exams.Group("")
			examsTeacherProtected.Use(authMiddleware.RoleRequired(models.RoleTeacher))
			{
				examsTeacherProtected.POST("", examController.CreateExam)
				examsTeacherProtected.DELETE("/:id", examController.DeleteExam)
			}
		}

		// Homework routes
		homeworks := authenticated.Group("/homeworks")
		{
			homeworks.GET("", homeworkController.ListHomeworks)

			homeworksTeacherProtected := homeworks.Group("")
			homeworksTeacherProtected.Use(authMiddleware.RoleRequired(models.RoleTeacher))
			{
				homeworksTeacherProtected.POST("", homeworkController.CreateHomework)
				homeworksTeacherProtected.DELETE("/:id", homeworkController.DeleteHomework)
				homeworksTeacherProtected.GET("/:id/submissions", homeworkController.ListSubmissions)
				homeworksTeacherProtected.GET("/:id/submissions/:studentId", homeworkController.DownloadSubmission)
			}

			homeworksStudentProtected := homeworks.Group("")
			homeworksStudentProtected.Use(authMiddleware.RoleRequired(models.RoleStudent))
			{
				homeworksStudentProtected.POST("/:id/submissions", homeworkController.Submit)
				homeworksStudentProtected.GET("/:id/submissions/me", homeworkController.MySubmission)
			}
		}

		// Community feed and study groups (any authenticated account)
		community := authenticated.Group("/community")
		{
			community.GET("/posts", communityController.ListPosts)
			community.POST("/posts", communityController.CreatePost)
			community.POST("/posts/:id/like", communityController.ToggleLike)
			community.GET("/groups", communityController.ListGroups)
			community.POST("/groups/:id/join", communityController.ToggleMembership)
		}
	}

	// Health check endpoint (public)
	v1.GET("/health", func(c *gin.Context) {
		c.JSON(200, dto.NewAPIResponse(gin.H{"status": "ok"}, ""))
	})

	// Swagger routes are set up in bootstrap.go already
}
