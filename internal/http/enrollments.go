package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mkoval/agenda/internal/database/courses"
	"github.com/mkoval/agenda/internal/database/enrollments"
	"github.com/mkoval/agenda/internal/database/students"
)

// EnrollmentRequest is the creation payload for a course enrollment.
type EnrollmentRequest struct {
	StudentID uint   `json:"student_id" binding:"required"`
	CourseID  uint   `json:"course_id" binding:"required"`
	Semester  string `json:"semester" binding:"required"`
}

// GradeRequest records a grade and status on an existing enrollment. The
// values are stored as given; the store does not constrain them.
type GradeRequest struct {
	Grade  string `json:"grade" binding:"required"`
	Status string `json:"status" binding:"required"`
}

type EnrollmentsController struct {
	repo     *enrollments.Repository
	students *students.Repository
	courses  *courses.Repository
}

func NewEnrollmentsController(repo *enrollments.Repository, studentsRepo *students.Repository, coursesRepo *courses.Repository) *EnrollmentsController {
	return &EnrollmentsController{repo: repo, students: studentsRepo, courses: coursesRepo}
}

// Create rejects nonexistent student or course references up front, then
// registers the enrollment. A duplicate (student, course, semester) triple
// maps to 409 rather than silently succeeding: retakes belong in a
// different semester.
func (controller *EnrollmentsController) Create(c *gin.Context) {
	var req EnrollmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	if _, err := controller.students.Get(req.StudentID); err != nil {
		respondStoreError(c, "student", err)
		return
	}
	if _, err := controller.courses.Get(req.CourseID); err != nil {
		respondStoreError(c, "course", err)
		return
	}

	id, err := controller.repo.Enroll(req.StudentID, req.CourseID, req.Semester)
	if err != nil {
		respondStoreError(c, "enrollment", err)
		return
	}

	enrollment, err := controller.repo.Get(id)
	if err != nil {
		respondInternalError(c, err)
		return
	}
	c.IndentedJSON(http.StatusCreated, enrollment)
}

func (controller *EnrollmentsController) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	enrollment, err := controller.repo.Get(id)
	if err != nil {
		respondStoreError(c, "enrollment", err)
		return
	}
	c.IndentedJSON(http.StatusOK, enrollment)
}

// RecordGrade checks the enrollment exists (the repository update itself is
// unconditional) and returns the updated record.
func (controller *EnrollmentsController) RecordGrade(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var req GradeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	if _, err := controller.repo.Get(id); err != nil {
		respondStoreError(c, "enrollment", err)
		return
	}
	if err := controller.repo.RecordGrade(id, req.Grade, req.Status); err != nil {
		respondInternalError(c, err)
		return
	}

	enrollment, err := controller.repo.Get(id)
	if err != nil {
		respondInternalError(c, err)
		return
	}
	c.IndentedJSON(http.StatusOK, enrollment)
}
