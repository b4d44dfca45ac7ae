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
	"github.com/mkoval/agenda/internal/database/teachers"
	"github.com/mkoval/agenda/internal/entities"
)

func setupTeachersTestDB(t *testing.T) (*database.Database, func()) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dbPath := "./test_teachers_" + strings.ReplaceAll(t.Name(), "/", "_") + ".db"
	db, err := database.NewDatabase(dbPath)
	require.NoError(t, err)

	cleanup := func() {
		db.Close()
		os.Remove(dbPath)
	}
	return db, cleanup
}

func newTeachersRouter(db *database.Database) *gin.Engine {
	controller := NewTeachersController(teachers.NewRepository(db.DB))
	router := gin.New()
	router.POST("/api/teachers", controller.Create)
	router.GET("/api/teachers", controller.List)
	router.GET("/api/teachers/:id", controller.Get)
	router.PUT("/api/teachers/:id", controller.Update)
	router.DELETE("/api/teachers/:id", controller.Delete)
	return router
}

func TestTeachersController_Create(t *testing.T) {
	t.Run("creates teacher and returns record", func(t *testing.T) {
		db, cleanup := setupTeachersTestDB(t)
		defer cleanup()
		router := newTeachersRouter(db)

		body := `{"first_name": "Maria", "last_name": "Virtanen", "email": "maria@example.com"}`
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/api/teachers", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)

		var teacher entities.Teacher
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &teacher))
		assert.NotZero(t, teacher.ID)
		assert.Equal(t, "Maria", teacher.FirstName)
		require.NotNil(t, teacher.Email)
		assert.Equal(t, "maria@example.com", *teacher.Email)
	})

	t.Run("rejects payload without last name", func(t *testing.T) {
		db, cleanup := setupTeachersTestDB(t)
		defer cleanup()
		router := newTeachersRouter(db)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/api/teachers", strings.NewReader(`{"first_name": "Maria"}`))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestTeachersController_Get(t *testing.T) {
	t.Run("returns 404 for unknown id", func(t *testing.T) {
		db, cleanup := setupTeachersTestDB(t)
		defer cleanup()
		router := newTeachersRouter(db)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/teachers/9999", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("returns 400 for malformed id", func(t *testing.T) {
		db, cleanup := setupTeachersTestDB(t)
		defer cleanup()
		router := newTeachersRouter(db)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/teachers/abc", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestTeachersController_UpdateAndDelete(t *testing.T) {
	db, cleanup := setupTeachersTestDB(t)
	defer cleanup()
	router := newTeachersRouter(db)

	repo := teachers.NewRepository(db.DB)
	id, err := repo.Add("Maria", "Virtanen", nil)
	require.NoError(t, err)

	t.Run("update replaces all fields", func(t *testing.T) {
		body := `{"first_name": "Marja", "last_name": "Virtanen"}`
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("PUT", "/api/teachers/1", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		teacher, err := repo.Get(id)
		require.NoError(t, err)
		assert.Equal(t, "Marja", teacher.FirstName)
	})

	t.Run("delete returns 204 and removes the record", func(t *testing.T) {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("DELETE", "/api/teachers/1", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNoContent, w.Code)

		_, err := repo.Get(id)
		assert.Error(t, err)
	})

	t.Run("delete of missing teacher returns 404", func(t *testing.T) {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("DELETE", "/api/teachers/1", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
