package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mkoval/agenda/internal/database"
	"github.com/mkoval/agenda/internal/database/analytics"
	"github.com/mkoval/agenda/internal/database/courses"
	"github.com/mkoval/agenda/internal/database/enrollments"
	"github.com/mkoval/agenda/internal/database/programs"
	"github.com/mkoval/agenda/internal/database/students"
	"github.com/mkoval/agenda/internal/entities"
)

func setupStudentsTestDB(t *testing.T) (*database.Database, func()) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dbPath := "./test_students_" + strings.ReplaceAll(t.Name(), "/", "_") + ".db"
	db, err := database.NewDatabase(dbPath)
	require.NoError(t, err)

	cleanup := func() {
		db.Close()
		os.Remove(dbPath)
	}
	return db, cleanup
}

func newStudentsRouter(db *database.Database) *gin.Engine {
	controller := NewStudentsController(students.NewRepository(db.DB), analytics.NewRepository(db.DB))
	router := gin.New()
	router.POST("/api/students", controller.Create)
	router.GET("/api/students", controller.List)
	router.GET("/api/students/:id", controller.Get)
	router.GET("/api/students/:id/enrollments", controller.Enrollments)
	router.GET("/api/students/:id/progress", controller.Progress)
	return router
}

func TestStudentsController_Create(t *testing.T) {
	db, cleanup := setupStudentsTestDB(t)
	defer cleanup()
	router := newStudentsRouter(db)

	postStudent := func(body string) *httptest.ResponseRecorder {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/api/students", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)
		return w
	}

	t.Run("creates student", func(t *testing.T) {
		w := postStudent(`{"first_name": "Alice", "last_name": "Brown", "student_number": "S001"}`)
		assert.Equal(t, http.StatusCreated, w.Code)

		var student entities.Student
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &student))
		assert.Equal(t, "S001", student.StudentNumber)
	})

	t.Run("duplicate student number returns 409", func(t *testing.T) {
		w := postStudent(`{"first_name": "Bob", "last_name": "Smith", "student_number": "S001"}`)
		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("missing student number returns 400", func(t *testing.T) {
		w := postStudent(`{"first_name": "Bob", "last_name": "Smith"}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestStudentsController_Enrollments(t *testing.T) {
	db, cleanup := setupStudentsTestDB(t)
	defer cleanup()
	router := newStudentsRouter(db)

	studentID, err := students.NewRepository(db.DB).Add("Alice", "Brown", "S001", nil)
	require.NoError(t, err)
	courseID, err := courses.NewRepository(db.DB).Add("Algebra", 5, nil)
	require.NoError(t, err)
	_, err = enrollments.NewRepository(db.DB).Enroll(studentID, courseID, "2025-autumn")
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/students/1/enrollments", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var rows []students.StudentEnrollment
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &rows))
	require.Len(t, rows, 1)
	assert.Equal(t, "Algebra", rows[0].CourseName)
	assert.Equal(t, entities.StatusEnrolled, rows[0].Status)
}

func TestStudentsController_Progress(t *testing.T) {
	db, cleanup := setupStudentsTestDB(t)
	defer cleanup()
	router := newStudentsRouter(db)

	studentID, err := students.NewRepository(db.DB).Add("Alice", "Brown", "S001", nil)
	require.NoError(t, err)
	courseID, err := courses.NewRepository(db.DB).Add("Algebra", 5, nil)
	require.NoError(t, err)
	programsRepo := programs.NewRepository(db.DB)
	programID, err := programsRepo.Add("Mathematics", nil)
	require.NoError(t, err)
	require.NoError(t, programsRepo.AssignCourse(programID, courseID))
	require.NoError(t, programsRepo.EnrollStudent(studentID, programID, nil))

	enrollmentsRepo := enrollments.NewRepository(db.DB)
	eid, err := enrollmentsRepo.Enroll(studentID, courseID, "2025-autumn")
	require.NoError(t, err)
	require.NoError(t, enrollmentsRepo.RecordGrade(eid, "A", entities.StatusCompleted))

	t.Run("reports progress for the program", func(t *testing.T) {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/students/1/progress?program_id=1", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var progress analytics.Progress
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &progress))
		assert.Equal(t, analytics.Progress{Passed: 1, Remaining: 0, Failed: 0}, progress)
	})

	t.Run("missing program_id returns 400", func(t *testing.T) {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/students/1/progress", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
