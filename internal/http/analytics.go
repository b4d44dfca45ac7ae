package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mkoval/agenda/internal/database/analytics"
)

// defaultAnalyticsLimit caps ranking responses when no limit is given.
const defaultAnalyticsLimit = 5

type AnalyticsController struct {
	repo *analytics.Repository
}

func NewAnalyticsController(repo *analytics.Repository) *AnalyticsController {
	return &AnalyticsController{repo: repo}
}

func (controller *AnalyticsController) PopularCourses(c *gin.Context) {
	limit := parseLimitQuery(c, defaultAnalyticsLimit)
	courses, err := controller.repo.PopularCourses(limit)
	if err != nil {
		respondInternalError(c, err)
		return
	}
	c.IndentedJSON(http.StatusOK, courses)
}

func (controller *AnalyticsController) PopularTeachers(c *gin.Context) {
	limit := parseLimitQuery(c, defaultAnalyticsLimit)
	teachers, err := controller.repo.PopularTeachers(limit)
	if err != nil {
		respondInternalError(c, err)
		return
	}
	c.IndentedJSON(http.StatusOK, teachers)
}

func (controller *AnalyticsController) BestStudents(c *gin.Context) {
	limit := parseLimitQuery(c, defaultAnalyticsLimit)
	students, err := controller.repo.BestStudents(limit)
	if err != nil {
		respondInternalError(c, err)
		return
	}
	c.IndentedJSON(http.StatusOK, students)
}

func (controller *AnalyticsController) AtRiskStudents(c *gin.Context) {
	limit := parseLimitQuery(c, defaultAnalyticsLimit)
	students, err := controller.repo.AtRiskStudents(limit)
	if err != nil {
		respondInternalError(c, err)
		return
	}
	c.IndentedJSON(http.StatusOK, students)
}
