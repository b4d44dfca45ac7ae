package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/mkoval/agenda/internal/database/analytics"
	"github.com/mkoval/agenda/internal/database/students"
)

// StudentRequest is the creation/update payload for a student.
type StudentRequest struct {
	FirstName     string  `json:"first_name" binding:"required"`
	LastName      string  `json:"last_name" binding:"required"`
	StudentNumber string  `json:"student_number" binding:"required"`
	Email         *string `json:"email"`
}

type StudentsController struct {
	repo      *students.Repository
	analytics *analytics.Repository
}

func NewStudentsController(repo *students.Repository, analyticsRepo *analytics.Repository) *StudentsController {
	return &StudentsController{repo: repo, analytics: analyticsRepo}
}

// Create returns 409 when the student number is already taken.
func (controller *StudentsController) Create(c *gin.Context) {
	var req StudentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	id, err := controller.repo.Add(req.FirstName, req.LastName, req.StudentNumber, req.Email)
	if err != nil {
		respondStoreError(c, "student", err)
		return
	}

	student, err := controller.repo.Get(id)
	if err != nil {
		respondInternalError(c, err)
		return
	}
	c.IndentedJSON(http.StatusCreated, student)
}

func (controller *StudentsController) List(c *gin.Context) {
	all, err := controller.repo.List()
	if err != nil {
		respondInternalError(c, err)
		return
	}
	c.IndentedJSON(http.StatusOK, all)
}

func (controller *StudentsController) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	student, err := controller.repo.Get(id)
	if err != nil {
		respondStoreError(c, "student", err)
		return
	}
	c.IndentedJSON(http.StatusOK, student)
}

func (controller *StudentsController) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if _, err := controller.repo.Get(id); err != nil {
		respondStoreError(c, "student", err)
		return
	}

	var req StudentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err.Error())
		return
	}
	if err := controller.repo.Update(id, req.FirstName, req.LastName, req.StudentNumber, req.Email); err != nil {
		respondStoreError(c, "student", err)
		return
	}

	student, err := controller.repo.Get(id)
	if err != nil {
		respondInternalError(c, err)
		return
	}
	c.IndentedJSON(http.StatusOK, student)
}

// Delete removes the student; their enrollment rows stay behind as
// historical records.
func (controller *StudentsController) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if _, err := controller.repo.Get(id); err != nil {
		respondStoreError(c, "student", err)
		return
	}
	if err := controller.repo.Delete(id); err != nil {
		respondInternalError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (controller *StudentsController) Enrollments(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	enrollments, err := controller.repo.Enrollments(id)
	if err != nil {
		respondInternalError(c, err)
		return
	}
	c.IndentedJSON(http.StatusOK, enrollments)
}

func (controller *StudentsController) Grades(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	grades, err := controller.repo.Grades(id)
	if err != nil {
		respondInternalError(c, err)
		return
	}
	c.IndentedJSON(http.StatusOK, grades)
}

// Progress reports the student's standing in the program given by the
// program_id query parameter.
func (controller *StudentsController) Progress(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	programID, err := strconv.ParseUint(c.Query("program_id"), 10, 32)
	if err != nil {
		respondBadRequest(c, "program_id query parameter is required")
		return
	}

	progress, err := controller.analytics.StudentProgress(id, uint(programID))
	if err != nil {
		respondInternalError(c, err)
		return
	}
	c.IndentedJSON(http.StatusOK, progress)
}
