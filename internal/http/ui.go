package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/mkoval/agenda/internal/database/analytics"
	"github.com/mkoval/agenda/internal/database/courses"
	"github.com/mkoval/agenda/internal/database/enrollments"
	"github.com/mkoval/agenda/internal/database/programs"
	"github.com/mkoval/agenda/internal/database/students"
	"github.com/mkoval/agenda/internal/database/teachers"
)

// UIController serves the server-rendered pages. Form handlers follow the
// redirect-after-post pattern so a refresh never resubmits.
type UIController struct {
	teachers    *teachers.Repository
	courses     *courses.Repository
	students    *students.Repository
	programs    *programs.Repository
	enrollments *enrollments.Repository
	analytics   *analytics.Repository
}

func NewUIController(
	teachersRepo *teachers.Repository,
	coursesRepo *courses.Repository,
	studentsRepo *students.Repository,
	programsRepo *programs.Repository,
	enrollmentsRepo *enrollments.Repository,
	analyticsRepo *analytics.Repository,
) *UIController {
	return &UIController{
		teachers:    teachersRepo,
		courses:     coursesRepo,
		students:    studentsRepo,
		programs:    programsRepo,
		enrollments: enrollmentsRepo,
		analytics:   analyticsRepo,
	}
}

func (controller *UIController) TeachersPage(c *gin.Context) {
	all, err := controller.teachers.List()
	if err != nil {
		c.String(http.StatusInternalServerError, "Error loading teachers: %s", err.Error())
		return
	}
	c.HTML(http.StatusOK, "teachers", gin.H{
		"Teachers": all,
	})
}

func (controller *UIController) CoursesPage(c *gin.Context) {
	all, err := controller.courses.List()
	if err != nil {
		c.String(http.StatusInternalServerError, "Error loading courses: %s", err.Error())
		return
	}
	teacherList, err := controller.teachers.List()
	if err != nil {
		c.String(http.StatusInternalServerError, "Error loading teachers: %s", err.Error())
		return
	}
	c.HTML(http.StatusOK, "courses", gin.H{
		"Courses":  all,
		"Teachers": teacherList,
	})
}

func (controller *UIController) StudentsPage(c *gin.Context) {
	all, err := controller.students.List()
	if err != nil {
		c.String(http.StatusInternalServerError, "Error loading students: %s", err.Error())
		return
	}
	c.HTML(http.StatusOK, "students", gin.H{
		"Students": all,
	})
}

// AddCourse handles the course form post. An empty teacher_id field leaves
// the course unassigned.
func (controller *UIController) AddCourse(c *gin.Context) {
	name := c.PostForm("name")
	credits, err := strconv.Atoi(c.PostForm("credits"))
	if name == "" || err != nil {
		c.String(http.StatusBadRequest, "name and numeric credits are required")
		return
	}

	var teacherID *uint
	if raw := c.PostForm("teacher_id"); raw != "" {
		parsed, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			c.String(http.StatusBadRequest, "invalid teacher_id")
			return
		}
		id := uint(parsed)
		teacherID = &id
	}

	if _, err := controller.courses.Add(name, credits, teacherID); err != nil {
		c.String(http.StatusInternalServerError, "Error adding course: %s", err.Error())
		return
	}
	c.Redirect(http.StatusSeeOther, "/courses")
}

// Enroll handles the enrollment form post.
func (controller *UIController) Enroll(c *gin.Context) {
	studentID, err1 := strconv.ParseUint(c.PostForm("student_id"), 10, 32)
	courseID, err2 := strconv.ParseUint(c.PostForm("course_id"), 10, 32)
	semester := c.PostForm("semester")
	if err1 != nil || err2 != nil || semester == "" {
		c.String(http.StatusBadRequest, "student_id, course_id and semester are required")
		return
	}

	if _, err := controller.enrollments.Enroll(uint(studentID), uint(courseID), semester); err != nil {
		c.String(http.StatusConflict, "Error enrolling student: %s", err.Error())
		return
	}
	c.Redirect(http.StatusSeeOther, "/courses")
}

// ProgressPage renders the progress lookup form, with results when both
// identifiers are supplied.
func (controller *UIController) ProgressPage(c *gin.Context) {
	data := gin.H{
		"StudentID": c.Query("student_id"),
		"ProgramID": c.Query("program_id"),
	}

	studentID, err1 := strconv.ParseUint(c.Query("student_id"), 10, 32)
	programID, err2 := strconv.ParseUint(c.Query("program_id"), 10, 32)
	if err1 == nil && err2 == nil {
		progress, err := controller.analytics.StudentProgress(uint(studentID), uint(programID))
		if err != nil {
			c.String(http.StatusInternalServerError, "Error loading progress: %s", err.Error())
			return
		}
		data["HasResult"] = true
		data["Progress"] = progress
	}

	c.HTML(http.StatusOK, "progress", data)
}

// AnalyticsPage renders the analytics view; the page fetches its numbers
// from the JSON analytics endpoints.
func (controller *UIController) AnalyticsPage(c *gin.Context) {
	c.HTML(http.StatusOK, "analytics", gin.H{})
}
