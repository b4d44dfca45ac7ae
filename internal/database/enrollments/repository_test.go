package enrollments

import (
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/mkoval/agenda/internal/database"
	"github.com/mkoval/agenda/internal/database/courses"
	"github.com/mkoval/agenda/internal/database/students"
)

func setupTestDB(t *testing.T) (*database.Database, func()) {
	t.Helper()
	dbPath := "./test_" + strings.ReplaceAll(t.Name(), "/", "_") + ".db"
	db, err := database.NewDatabase(dbPath)
	require.NoError(t, err)

	cleanup := func() {
		db.Close()
		os.Remove(dbPath)
	}
	return db, cleanup
}

func TestRepository_Enroll(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()
	repo := NewRepository(db.DB)

	studentID, err := students.NewRepository(db.DB).Add("Alice", "Brown", "S001", nil)
	require.NoError(t, err)
	courseID, err := courses.NewRepository(db.DB).Add("Math", 5, nil)
	require.NoError(t, err)

	t.Run("new enrollment starts enrolled with no grade", func(t *testing.T) {
		id, err := repo.Enroll(studentID, courseID, "2025-autumn")
		require.NoError(t, err)

		enrollment, err := repo.Get(id)
		require.NoError(t, err)
		assert.Equal(t, "enrolled", enrollment.Status)
		assert.Nil(t, enrollment.Grade)
	})

	t.Run("same offering twice is a uniqueness violation", func(t *testing.T) {
		_, err := repo.Enroll(studentID, courseID, "2025-autumn")
		assert.ErrorIs(t, err, database.ErrDuplicate)
	})

	t.Run("a different semester is a retake, not a duplicate", func(t *testing.T) {
		_, err := repo.Enroll(studentID, courseID, "2026-spring")
		assert.NoError(t, err)
	})
}

func TestRepository_RecordGrade(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()
	repo := NewRepository(db.DB)

	studentID, err := students.NewRepository(db.DB).Add("Alice", "Brown", "S001", nil)
	require.NoError(t, err)
	courseID, err := courses.NewRepository(db.DB).Add("Math", 5, nil)
	require.NoError(t, err)
	id, err := repo.Enroll(studentID, courseID, "2025-autumn")
	require.NoError(t, err)

	t.Run("sets grade and status", func(t *testing.T) {
		require.NoError(t, repo.RecordGrade(id, "A", "completed"))

		enrollment, err := repo.Get(id)
		require.NoError(t, err)
		require.NotNil(t, enrollment.Grade)
		assert.Equal(t, "A", *enrollment.Grade)
		assert.Equal(t, "completed", enrollment.Status)
	})

	t.Run("does not validate the status domain", func(t *testing.T) {
		require.NoError(t, repo.RecordGrade(id, "A+", "audited"))

		enrollment, err := repo.Get(id)
		require.NoError(t, err)
		assert.Equal(t, "audited", enrollment.Status)
	})

	t.Run("nonexistent enrollment is a silent no-op", func(t *testing.T) {
		assert.NoError(t, repo.RecordGrade(9999, "A", "completed"))
	})
}

func TestRepository_GetNotFound(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	_, err := NewRepository(db.DB).Get(42)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
