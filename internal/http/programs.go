package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mkoval/agenda/internal/database/courses"
	"github.com/mkoval/agenda/internal/database/programs"
	"github.com/mkoval/agenda/internal/database/students"
)

// ProgramRequest is the creation payload for a program.
type ProgramRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description *string `json:"description"`
}

// AssignCourseRequest adds a course to a program's required set.
type AssignCourseRequest struct {
	CourseID uint `json:"course_id" binding:"required"`
}

// EnrollStudentRequest enrolls a student in a program. StartDate, when
// given, must be an ISO calendar date (YYYY-MM-DD).
type EnrollStudentRequest struct {
	StudentID uint    `json:"student_id" binding:"required"`
	StartDate *string `json:"start_date" binding:"omitempty,datetime=2006-01-02"`
}

type ProgramsController struct {
	repo     *programs.Repository
	courses  *courses.Repository
	students *students.Repository
}

func NewProgramsController(repo *programs.Repository, coursesRepo *courses.Repository, studentsRepo *students.Repository) *ProgramsController {
	return &ProgramsController{repo: repo, courses: coursesRepo, students: studentsRepo}
}

func (controller *ProgramsController) Create(c *gin.Context) {
	var req ProgramRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	id, err := controller.repo.Add(req.Name, req.Description)
	if err != nil {
		respondInternalError(c, err)
		return
	}

	program, err := controller.repo.Get(id)
	if err != nil {
		respondInternalError(c, err)
		return
	}
	c.IndentedJSON(http.StatusCreated, program)
}

func (controller *ProgramsController) List(c *gin.Context) {
	all, err := controller.repo.List()
	if err != nil {
		respondInternalError(c, err)
		return
	}
	c.IndentedJSON(http.StatusOK, all)
}

func (controller *ProgramsController) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	program, err := controller.repo.Get(id)
	if err != nil {
		respondStoreError(c, "program", err)
		return
	}
	c.IndentedJSON(http.StatusOK, program)
}

func (controller *ProgramsController) Courses(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	list, err := controller.repo.Courses(id)
	if err != nil {
		respondInternalError(c, err)
		return
	}
	c.IndentedJSON(http.StatusOK, list)
}

// AssignCourse is idempotent: repeating an assignment succeeds without
// creating a second row.
func (controller *ProgramsController) AssignCourse(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var req AssignCourseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	if _, err := controller.repo.Get(id); err != nil {
		respondStoreError(c, "program", err)
		return
	}
	if _, err := controller.courses.Get(req.CourseID); err != nil {
		respondStoreError(c, "course", err)
		return
	}

	if err := controller.repo.AssignCourse(id, req.CourseID); err != nil {
		respondInternalError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// EnrollStudent is idempotent in the same way as AssignCourse.
func (controller *ProgramsController) EnrollStudent(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var req EnrollStudentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	if _, err := controller.repo.Get(id); err != nil {
		respondStoreError(c, "program", err)
		return
	}
	if _, err := controller.students.Get(req.StudentID); err != nil {
		respondStoreError(c, "student", err)
		return
	}

	if err := controller.repo.EnrollStudent(req.StudentID, id, req.StartDate); err != nil {
		respondInternalError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
