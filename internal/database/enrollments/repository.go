// Package enrollments provides database operations for course enrollments
// and grading.
package enrollments

import (
	"gorm.io/gorm"

	"github.com/mkoval/agenda/internal/database"
	"github.com/mkoval/agenda/internal/entities"
)

// Repository handles all enrollment database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new enrollments repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Enroll registers a student for a course offering and returns the new
// enrollment id. The enrollment starts in status "enrolled" with no grade.
// Unlike the program join relations this is deliberately NOT idempotent: a
// second call with the same (student, course, semester) triple surfaces
// database.ErrDuplicate, because a retake must be a different semester.
func (r *Repository) Enroll(studentID, courseID uint, semester string) (uint, error) {
	enrollment := entities.Enrollment{
		StudentID: studentID,
		CourseID:  courseID,
		Semester:  semester,
		Status:    entities.StatusEnrolled,
	}
	if err := r.db.Create(&enrollment).Error; err != nil {
		return 0, database.TranslateError(err)
	}
	return enrollment.ID, nil
}

// Get retrieves an enrollment by id, or gorm.ErrRecordNotFound when absent.
// Rows survive deletion of their student or course, so this also serves
// historical lookups of orphaned enrollments.
func (r *Repository) Get(id uint) (*entities.Enrollment, error) {
	var enrollment entities.Enrollment
	err := r.db.First(&enrollment, id).Error
	if err != nil {
		return nil, err
	}
	return &enrollment, nil
}

// RecordGrade sets the grade and status of an enrollment. The update is
// unconditional: no existence check, and grade/status are stored as given
// without validating them against a closed set.
func (r *Repository) RecordGrade(enrollmentID uint, grade, status string) error {
	return r.db.Model(&entities.Enrollment{}).
		Where("id = ?", enrollmentID).
		Updates(map[string]any{"grade": grade, "status": status}).Error
}
