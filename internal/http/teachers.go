package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mkoval/agenda/internal/database/teachers"
)

// TeacherRequest is the creation/update payload for a teacher.
type TeacherRequest struct {
	FirstName string  `json:"first_name" binding:"required"`
	LastName  string  `json:"last_name" binding:"required"`
	Email     *string `json:"email"`
}

type TeachersController struct {
	repo *teachers.Repository
}

func NewTeachersController(repo *teachers.Repository) *TeachersController {
	return &TeachersController{repo: repo}
}

func (controller *TeachersController) Create(c *gin.Context) {
	var req TeacherRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	id, err := controller.repo.Add(req.FirstName, req.LastName, req.Email)
	if err != nil {
		respondStoreError(c, "teacher", err)
		return
	}

	teacher, err := controller.repo.Get(id)
	if err != nil {
		respondInternalError(c, err)
		return
	}
	c.IndentedJSON(http.StatusCreated, teacher)
}

func (controller *TeachersController) List(c *gin.Context) {
	all, err := controller.repo.List()
	if err != nil {
		respondInternalError(c, err)
		return
	}
	c.IndentedJSON(http.StatusOK, all)
}

func (controller *TeachersController) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	teacher, err := controller.repo.Get(id)
	if err != nil {
		respondStoreError(c, "teacher", err)
		return
	}
	c.IndentedJSON(http.StatusOK, teacher)
}

// Update is a full field replace, not a partial patch.
func (controller *TeachersController) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if _, err := controller.repo.Get(id); err != nil {
		respondStoreError(c, "teacher", err)
		return
	}

	var req TeacherRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err.Error())
		return
	}
	if err := controller.repo.Update(id, req.FirstName, req.LastName, req.Email); err != nil {
		respondStoreError(c, "teacher", err)
		return
	}

	teacher, err := controller.repo.Get(id)
	if err != nil {
		respondInternalError(c, err)
		return
	}
	c.IndentedJSON(http.StatusOK, teacher)
}

// Delete removes the teacher but not their courses: those keep a dangling
// teacher reference.
func (controller *TeachersController) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if _, err := controller.repo.Get(id); err != nil {
		respondStoreError(c, "teacher", err)
		return
	}
	if err := controller.repo.Delete(id); err != nil {
		respondInternalError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (controller *TeachersController) Courses(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	courses, err := controller.repo.Courses(id)
	if err != nil {
		respondInternalError(c, err)
		return
	}
	c.IndentedJSON(http.StatusOK, courses)
}

func (controller *TeachersController) Students(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	students, err := controller.repo.Students(id)
	if err != nil {
		respondInternalError(c, err)
		return
	}
	c.IndentedJSON(http.StatusOK, students)
}

func (controller *TeachersController) Evaluations(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	evaluations, err := controller.repo.Evaluations(id)
	if err != nil {
		respondInternalError(c, err)
		return
	}
	c.IndentedJSON(http.StatusOK, evaluations)
}
