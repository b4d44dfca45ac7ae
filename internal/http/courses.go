package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mkoval/agenda/internal/database/courses"
	"github.com/mkoval/agenda/internal/database/teachers"
)

// CourseRequest is the creation payload for a course. TeacherID may be
// omitted for an unassigned course.
type CourseRequest struct {
	Name      string `json:"name" binding:"required"`
	Credits   int    `json:"credits" binding:"min=0"`
	TeacherID *uint  `json:"teacher_id"`
}

type CoursesController struct {
	repo     *courses.Repository
	teachers *teachers.Repository
}

func NewCoursesController(repo *courses.Repository, teachersRepo *teachers.Repository) *CoursesController {
	return &CoursesController{repo: repo, teachers: teachersRepo}
}

// Create rejects a nonexistent teacher reference before touching the course
// table; the store itself does not enforce the foreign key.
func (controller *CoursesController) Create(c *gin.Context) {
	var req CourseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	if req.TeacherID != nil {
		if _, err := controller.teachers.Get(*req.TeacherID); err != nil {
			respondStoreError(c, "teacher", err)
			return
		}
	}

	id, err := controller.repo.Add(req.Name, req.Credits, req.TeacherID)
	if err != nil {
		respondStoreError(c, "course", err)
		return
	}

	course, err := controller.repo.Get(id)
	if err != nil {
		respondInternalError(c, err)
		return
	}
	c.IndentedJSON(http.StatusCreated, course)
}

func (controller *CoursesController) List(c *gin.Context) {
	all, err := controller.repo.List()
	if err != nil {
		respondInternalError(c, err)
		return
	}
	c.IndentedJSON(http.StatusOK, all)
}

func (controller *CoursesController) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	course, err := controller.repo.Get(id)
	if err != nil {
		respondStoreError(c, "course", err)
		return
	}
	c.IndentedJSON(http.StatusOK, course)
}

func (controller *CoursesController) Enrollments(c *gin.Context) {
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
