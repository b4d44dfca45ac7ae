package programs

import (
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mkoval/agenda/internal/database"
	"github.com/mkoval/agenda/internal/database/courses"
	"github.com/mkoval/agenda/internal/database/students"
	"github.com/mkoval/agenda/internal/entities"
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

func strPtr(s string) *string { return &s }

func TestRepository_AddAndList(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()
	repo := NewRepository(db.DB)

	_, err := repo.Add("Physics", nil)
	require.NoError(t, err)
	id, err := repo.Add("Mathematics", strPtr("Core curriculum"))
	require.NoError(t, err)

	all, err := repo.List()
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "Mathematics", all[0].Name, "ordered by name")

	program, err := repo.Get(id)
	require.NoError(t, err)
	require.NotNil(t, program.Description)
	assert.Equal(t, "Core curriculum", *program.Description)
}

func TestRepository_AssignCourse(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()
	repo := NewRepository(db.DB)

	programID, err := repo.Add("Mathematics", nil)
	require.NoError(t, err)
	courseID, err := courses.NewRepository(db.DB).Add("Algebra", 5, nil)
	require.NoError(t, err)

	t.Run("repeated assignment is absorbed", func(t *testing.T) {
		require.NoError(t, repo.AssignCourse(programID, courseID))
		require.NoError(t, repo.AssignCourse(programID, courseID))

		var count int64
		require.NoError(t, db.DB.Model(&entities.ProgramCourse{}).Count(&count).Error)
		assert.EqualValues(t, 1, count)
	})

	t.Run("courses lists the program's requirements", func(t *testing.T) {
		list, err := repo.Courses(programID)
		require.NoError(t, err)
		require.Len(t, list, 1)
		assert.Equal(t, "Algebra", list[0].Name)
	})
}

func TestRepository_EnrollStudent(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()
	repo := NewRepository(db.DB)

	programID, err := repo.Add("Mathematics", nil)
	require.NoError(t, err)
	studentID, err := students.NewRepository(db.DB).Add("Alice", "Brown", "S001", nil)
	require.NoError(t, err)

	require.NoError(t, repo.EnrollStudent(studentID, programID, strPtr("2025-09-01")))

	// A repeat enrollment neither errors nor touches the stored start date.
	require.NoError(t, repo.EnrollStudent(studentID, programID, strPtr("2026-01-01")))

	var rows []entities.StudentProgram
	require.NoError(t, db.DB.Find(&rows).Error)
	require.Len(t, rows, 1)
	require.NotNil(t, rows[0].StartDate)
	assert.Equal(t, "2025-09-01", *rows[0].StartDate)
}
