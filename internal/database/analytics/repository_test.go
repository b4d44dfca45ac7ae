package analytics

import (
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mkoval/agenda/internal/database"
	"github.com/mkoval/agenda/internal/database/courses"
	"github.com/mkoval/agenda/internal/database/enrollments"
	"github.com/mkoval/agenda/internal/database/programs"
	"github.com/mkoval/agenda/internal/database/students"
	"github.com/mkoval/agenda/internal/database/teachers"
	"github.com/mkoval/agenda/internal/entities"
)

type fixture struct {
	db          *database.Database
	teachers    *teachers.Repository
	courses     *courses.Repository
	programs    *programs.Repository
	students    *students.Repository
	enrollments *enrollments.Repository
	analytics   *Repository
}

func setupFixture(t *testing.T) (*fixture, func()) {
	t.Helper()
	dbPath := "./test_" + strings.ReplaceAll(t.Name(), "/", "_") + ".db"
	db, err := database.NewDatabase(dbPath)
	require.NoError(t, err)

	f := &fixture{
		db:          db,
		teachers:    teachers.NewRepository(db.DB),
		courses:     courses.NewRepository(db.DB),
		programs:    programs.NewRepository(db.DB),
		students:    students.NewRepository(db.DB),
		enrollments: enrollments.NewRepository(db.DB),
		analytics:   NewRepository(db.DB),
	}
	cleanup := func() {
		db.Close()
		os.Remove(dbPath)
	}
	return f, cleanup
}

func (f *fixture) enrollGraded(t *testing.T, studentID, courseID uint, semester, grade, status string) {
	t.Helper()
	id, err := f.enrollments.Enroll(studentID, courseID, semester)
	require.NoError(t, err)
	require.NoError(t, f.enrollments.RecordGrade(id, grade, status))
}

func TestStudentProgress(t *testing.T) {
	f, cleanup := setupFixture(t)
	defer cleanup()

	teacherID, err := f.teachers.Add("Maria", "Virtanen", nil)
	require.NoError(t, err)
	courseID, err := f.courses.Add("Algebra", 5, &teacherID)
	require.NoError(t, err)
	programID, err := f.programs.Add("Mathematics", nil)
	require.NoError(t, err)
	require.NoError(t, f.programs.AssignCourse(programID, courseID))
	studentID, err := f.students.Add("Alice", "Brown", "S001", nil)
	require.NoError(t, err)
	require.NoError(t, f.programs.EnrollStudent(studentID, programID, nil))

	t.Run("nothing taken yet", func(t *testing.T) {
		progress, err := f.analytics.StudentProgress(studentID, programID)
		require.NoError(t, err)
		assert.Equal(t, Progress{Passed: 0, Remaining: 1, Failed: 0}, progress)
	})

	t.Run("completed course counts as passed", func(t *testing.T) {
		f.enrollGraded(t, studentID, courseID, "2025-autumn", "A", entities.StatusCompleted)

		progress, err := f.analytics.StudentProgress(studentID, programID)
		require.NoError(t, err)
		assert.Equal(t, Progress{Passed: 1, Remaining: 0, Failed: 0}, progress)
	})

	t.Run("retakes cannot drive remaining below zero", func(t *testing.T) {
		f.enrollGraded(t, studentID, courseID, "2026-spring", "B", entities.StatusCompleted)

		progress, err := f.analytics.StudentProgress(studentID, programID)
		require.NoError(t, err)
		assert.Equal(t, Progress{Passed: 2, Remaining: 0, Failed: 0}, progress)
	})
}

func TestStudentProgress_FailedCourse(t *testing.T) {
	f, cleanup := setupFixture(t)
	defer cleanup()

	courseID, err := f.courses.Add("Mechanics", 5, nil)
	require.NoError(t, err)
	programID, err := f.programs.Add("Physics", nil)
	require.NoError(t, err)
	require.NoError(t, f.programs.AssignCourse(programID, courseID))
	studentID, err := f.students.Add("Bob", "Smith", "S002", nil)
	require.NoError(t, err)

	f.enrollGraded(t, studentID, courseID, "2025-autumn", "F", entities.StatusFailed)

	progress, err := f.analytics.StudentProgress(studentID, programID)
	require.NoError(t, err)
	assert.Equal(t, Progress{Passed: 0, Remaining: 1, Failed: 1}, progress)
}

func TestPopularCourses(t *testing.T) {
	f, cleanup := setupFixture(t)
	defer cleanup()

	busyID, err := f.courses.Add("Algebra", 5, nil)
	require.NoError(t, err)
	_, err = f.courses.Add("Topology", 5, nil)
	require.NoError(t, err)

	s1, err := f.students.Add("Alice", "Brown", "S001", nil)
	require.NoError(t, err)
	s2, err := f.students.Add("Bob", "Smith", "S002", nil)
	require.NoError(t, err)
	_, err = f.enrollments.Enroll(s1, busyID, "2025-autumn")
	require.NoError(t, err)
	_, err = f.enrollments.Enroll(s2, busyID, "2025-autumn")
	require.NoError(t, err)

	ranked, err := f.analytics.PopularCourses(5)
	require.NoError(t, err)
	require.Len(t, ranked, 2, "courses without enrollments still appear")
	assert.Equal(t, "Algebra", ranked[0].Name)
	assert.EqualValues(t, 2, ranked[0].EnrollmentCount)
	assert.Equal(t, "Topology", ranked[1].Name)
	assert.EqualValues(t, 0, ranked[1].EnrollmentCount)

	top, err := f.analytics.PopularCourses(1)
	require.NoError(t, err)
	require.Len(t, top, 1)
}

func TestPopularTeachers(t *testing.T) {
	f, cleanup := setupFixture(t)
	defer cleanup()

	t1, err := f.teachers.Add("Maria", "Virtanen", nil)
	require.NoError(t, err)
	t2, err := f.teachers.Add("John", "Doe", nil)
	require.NoError(t, err)

	c1, err := f.courses.Add("Algebra", 5, &t1)
	require.NoError(t, err)
	c2, err := f.courses.Add("Calculus", 5, &t1)
	require.NoError(t, err)
	_, err = f.courses.Add("Mechanics", 5, &t2)
	require.NoError(t, err)

	studentID, err := f.students.Add("Alice", "Brown", "S001", nil)
	require.NoError(t, err)
	_, err = f.enrollments.Enroll(studentID, c1, "2025-autumn")
	require.NoError(t, err)
	_, err = f.enrollments.Enroll(studentID, c2, "2025-autumn")
	require.NoError(t, err)

	ranked, err := f.analytics.PopularTeachers(5)
	require.NoError(t, err)
	require.Len(t, ranked, 2)
	assert.Equal(t, "Maria Virtanen", ranked[0].Name)
	assert.EqualValues(t, 2, ranked[0].EnrollmentCount)
	assert.EqualValues(t, 0, ranked[1].EnrollmentCount)
}

func TestBestStudents(t *testing.T) {
	f, cleanup := setupFixture(t)
	defer cleanup()

	c1, err := f.courses.Add("Algebra", 5, nil)
	require.NoError(t, err)
	c2, err := f.courses.Add("Calculus", 5, nil)
	require.NoError(t, err)

	ace, err := f.students.Add("Alice", "Brown", "S001", nil)
	require.NoError(t, err)
	mid, err := f.students.Add("Bob", "Smith", "S002", nil)
	require.NoError(t, err)
	fresh, err := f.students.Add("Carol", "Jones", "S003", nil)
	require.NoError(t, err)

	f.enrollGraded(t, ace, c1, "2025-autumn", "A", entities.StatusCompleted)
	f.enrollGraded(t, ace, c2, "2025-autumn", "B", entities.StatusCompleted)
	f.enrollGraded(t, mid, c1, "2025-autumn", "C", entities.StatusCompleted)
	// fresh has an enrollment but no completed course yet.
	_, err = f.enrollments.Enroll(fresh, c1, "2026-spring")
	require.NoError(t, err)

	ranked, err := f.analytics.BestStudents(5)
	require.NoError(t, err)
	require.Len(t, ranked, 2, "students with no completed courses are excluded")
	assert.Equal(t, "Alice Brown", ranked[0].Name)
	assert.InDelta(t, 4.5, ranked[0].AvgGrade, 0.001)
	assert.Equal(t, "Bob Smith", ranked[1].Name)
	assert.InDelta(t, 3.0, ranked[1].AvgGrade, 0.001)
}

func TestAtRiskStudents(t *testing.T) {
	f, cleanup := setupFixture(t)
	defer cleanup()

	c1, err := f.courses.Add("Algebra", 5, nil)
	require.NoError(t, err)
	c2, err := f.courses.Add("Calculus", 5, nil)
	require.NoError(t, err)
	c3, err := f.courses.Add("Topology", 5, nil)
	require.NoError(t, err)

	risky, err := f.students.Add("Dave", "Miller", "S004", nil)
	require.NoError(t, err)
	steady, err := f.students.Add("Erin", "Woods", "S005", nil)
	require.NoError(t, err)

	f.enrollGraded(t, risky, c1, "2025-autumn", "F", entities.StatusFailed)
	f.enrollGraded(t, risky, c2, "2025-autumn", "F", entities.StatusFailed)
	f.enrollGraded(t, risky, c3, "2025-autumn", "C", entities.StatusCompleted)

	// One failed against one passed is not a majority of failures.
	f.enrollGraded(t, steady, c1, "2025-autumn", "F", entities.StatusFailed)
	f.enrollGraded(t, steady, c2, "2025-autumn", "B", entities.StatusCompleted)

	ranked, err := f.analytics.AtRiskStudents(5)
	require.NoError(t, err)
	require.Len(t, ranked, 1)
	assert.Equal(t, "Dave Miller", ranked[0].Name)
	assert.EqualValues(t, 2, ranked[0].Failed)
	assert.EqualValues(t, 1, ranked[0].Passed)
}
