package http

import (
	"html/template"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mkoval/agenda/internal/database"
	"github.com/mkoval/agenda/internal/database/analytics"
	"github.com/mkoval/agenda/internal/database/courses"
	"github.com/mkoval/agenda/internal/database/enrollments"
	"github.com/mkoval/agenda/internal/database/programs"
	"github.com/mkoval/agenda/internal/database/students"
	"github.com/mkoval/agenda/internal/database/teachers"
)

// RouterConfig carries every dependency the router needs. Using a config
// struct keeps NewRouter's signature stable as controllers are added.
type RouterConfig struct {
	Database      *database.Database
	Teachers      *teachers.Repository
	Courses       *courses.Repository
	Programs      *programs.Repository
	Students      *students.Repository
	Enrollments   *enrollments.Repository
	Analytics     *analytics.Repository
	TemplatesPath string
	StaticPath    string
	Version       string
}

// NewRouter creates and configures the HTTP router with all endpoints: the
// JSON API under /api plus the server-rendered pages.
func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())

	// Load HTML templates
	tmpl := template.Must(template.New("").ParseGlob(cfg.TemplatesPath + "/*.html"))
	router.SetHTMLTemplate(tmpl)

	// Serve static files
	router.Static("/static", cfg.StaticPath)

	// Create controllers
	health := NewHealthController(cfg.Database, cfg.Version)
	teachersController := NewTeachersController(cfg.Teachers)
	coursesController := NewCoursesController(cfg.Courses, cfg.Teachers)
	programsController := NewProgramsController(cfg.Programs, cfg.Courses, cfg.Students)
	studentsController := NewStudentsController(cfg.Students, cfg.Analytics)
	enrollmentsController := NewEnrollmentsController(cfg.Enrollments, cfg.Students, cfg.Courses)
	analyticsController := NewAnalyticsController(cfg.Analytics)
	uiController := NewUIController(cfg.Teachers, cfg.Courses, cfg.Students, cfg.Programs, cfg.Enrollments, cfg.Analytics)

	// Health endpoints
	router.GET("/health", health.Status)
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "pong",
		})
	})

	// Teachers API
	router.POST("/api/teachers", teachersController.Create)
	router.GET("/api/teachers", teachersController.List)
	router.GET("/api/teachers/:id", teachersController.Get)
	router.PUT("/api/teachers/:id", teachersController.Update)
	router.DELETE("/api/teachers/:id", teachersController.Delete)
	router.GET("/api/teachers/:id/courses", teachersController.Courses)
	router.GET("/api/teachers/:id/students", teachersController.Students)
	router.GET("/api/teachers/:id/evaluations", teachersController.Evaluations)

	// Courses API
	router.POST("/api/courses", coursesController.Create)
	router.GET("/api/courses", coursesController.List)
	router.GET("/api/courses/:id", coursesController.Get)
	router.GET("/api/courses/:id/enrollments", coursesController.Enrollments)

	// Programs API
	router.POST("/api/programs", programsController.Create)
	router.GET("/api/programs", programsController.List)
	router.GET("/api/programs/:id", programsController.Get)
	router.GET("/api/programs/:id/courses", programsController.Courses)
	router.POST("/api/programs/:id/courses", programsController.AssignCourse)
	router.POST("/api/programs/:id/students", programsController.EnrollStudent)

	// Students API
	router.POST("/api/students", studentsController.Create)
	router.GET("/api/students", studentsController.List)
	router.GET("/api/students/:id", studentsController.Get)
	router.PUT("/api/students/:id", studentsController.Update)
	router.DELETE("/api/students/:id", studentsController.Delete)
	router.GET("/api/students/:id/enrollments", studentsController.Enrollments)
	router.GET("/api/students/:id/grades", studentsController.Grades)
	router.GET("/api/students/:id/progress", studentsController.Progress)

	// Enrollments API
	router.POST("/api/enrollments", enrollmentsController.Create)
	router.GET("/api/enrollments/:id", enrollmentsController.Get)
	router.PATCH("/api/enrollments/:id/grade", enrollmentsController.RecordGrade)

	// Analytics API
	router.GET("/api/analytics/popular-courses", analyticsController.PopularCourses)
	router.GET("/api/analytics/popular-teachers", analyticsController.PopularTeachers)
	router.GET("/api/analytics/best-students", analyticsController.BestStudents)
	router.GET("/api/analytics/at-risk-students", analyticsController.AtRiskStudents)

	// Web UI
	router.GET("/", func(c *gin.Context) {
		c.Redirect(http.StatusFound, "/courses")
	})
	router.GET("/teachers", uiController.TeachersPage)
	router.GET("/courses", uiController.CoursesPage)
	router.GET("/students", uiController.StudentsPage)
	router.POST("/courses/add", uiController.AddCourse)
	router.POST("/enroll", uiController.Enroll)
	router.GET("/progress", uiController.ProgressPage)
	router.GET("/analytics", uiController.AnalyticsPage)

	return router
}
