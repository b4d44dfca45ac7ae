// Package students provides database operations for student records.
package students

import (
	"gorm.io/gorm"

	"github.com/mkoval/agenda/internal/database"
	"github.com/mkoval/agenda/internal/entities"
)

// StudentEnrollment is one of a student's enrollments joined with the
// student and course names for rendering. The student join also means
// lookups for a deleted student return nothing, even though the enrollment
// rows themselves survive.
type StudentEnrollment struct {
	EnrollmentID uint    `json:"enrollment_id"`
	StudentName  string  `json:"student_name"`
	CourseID     uint    `json:"course_id"`
	CourseName   string  `json:"course_name"`
	Semester     string  `json:"semester"`
	Status       string  `json:"status"`
	Grade        *string `json:"grade,omitempty"`
}

// Repository handles all student database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new students repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Add inserts a student and returns the generated identifier. A duplicate
// student number surfaces database.ErrDuplicate.
func (r *Repository) Add(firstName, lastName, studentNumber string, email *string) (uint, error) {
	student := entities.Student{
		FirstName:     firstName,
		LastName:      lastName,
		StudentNumber: studentNumber,
		Email:         email,
	}
	if err := r.db.Create(&student).Error; err != nil {
		return 0, database.TranslateError(err)
	}
	return student.ID, nil
}

// List returns all students ordered by last name, then first name.
func (r *Repository) List() ([]entities.Student, error) {
	var students []entities.Student
	err := r.db.Order("last_name, first_name").Find(&students).Error
	return students, err
}

// Get retrieves a student by id, or gorm.ErrRecordNotFound when absent.
func (r *Repository) Get(id uint) (*entities.Student, error) {
	var student entities.Student
	err := r.db.First(&student, id).Error
	if err != nil {
		return nil, err
	}
	return &student, nil
}

// Update replaces all fields of an existing student.
func (r *Repository) Update(id uint, firstName, lastName, studentNumber string, email *string) error {
	student := entities.Student{
		ID:            id,
		FirstName:     firstName,
		LastName:      lastName,
		StudentNumber: studentNumber,
		Email:         email,
	}
	return database.TranslateError(r.db.Save(&student).Error)
}

// Delete removes a student unconditionally. Their enrollment rows are left
// in place as historical records and remain retrievable by enrollment id.
func (r *Repository) Delete(id uint) error {
	return r.db.Delete(&entities.Student{}, id).Error
}

// Enrollments returns the student's enrollments joined with course names,
// ordered by semester then course name.
func (r *Repository) Enrollments(studentID uint) ([]StudentEnrollment, error) {
	var enrollments []StudentEnrollment
	err := r.db.Raw(`
		SELECT e.id AS enrollment_id,
		       s.first_name || ' ' || s.last_name AS student_name,
		       c.id AS course_id, c.name AS course_name,
		       e.semester, e.status, e.grade
		FROM enrollment e
		JOIN student s ON s.id = e.student_id
		JOIN course c ON c.id = e.course_id
		WHERE e.student_id = ?
		ORDER BY e.semester, c.name`, studentID).Scan(&enrollments).Error
	return enrollments, err
}

// Grades returns only the student's enrollments that have a recorded grade.
func (r *Repository) Grades(studentID uint) ([]StudentEnrollment, error) {
	var enrollments []StudentEnrollment
	err := r.db.Raw(`
		SELECT e.id AS enrollment_id,
		       s.first_name || ' ' || s.last_name AS student_name,
		       c.id AS course_id, c.name AS course_name,
		       e.semester, e.status, e.grade
		FROM enrollment e
		JOIN student s ON s.id = e.student_id
		JOIN course c ON c.id = e.course_id
		WHERE e.student_id = ? AND e.grade IS NOT NULL
		ORDER BY e.semester, c.name`, studentID).Scan(&enrollments).Error
	return enrollments, err
}
