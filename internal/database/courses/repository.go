// Package courses provides database operations for course records.
package courses

import (
	"gorm.io/gorm"

	"github.com/mkoval/agenda/internal/database"
	"github.com/mkoval/agenda/internal/entities"
)

// CourseWithTeacher is a course row denormalized with its teacher's display
// name. TeacherName is nil for unassigned courses and for courses whose
// teacher has been deleted.
type CourseWithTeacher struct {
	ID          uint    `json:"id"`
	Name        string  `json:"name"`
	Credits     int     `json:"credits"`
	TeacherID   *uint   `json:"teacher_id,omitempty"`
	TeacherName *string `json:"teacher_name,omitempty"`
}

// CourseEnrollment is one enrollment in a course, joined with the student's
// display name for rendering.
type CourseEnrollment struct {
	EnrollmentID uint    `json:"enrollment_id"`
	StudentID    uint    `json:"student_id"`
	StudentName  string  `json:"student_name"`
	Semester     string  `json:"semester"`
	Status       string  `json:"status"`
	Grade        *string `json:"grade,omitempty"`
}

// Repository handles all course database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new courses repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Add inserts a course and returns the generated identifier. A nil
// teacherID leaves the course unassigned.
func (r *Repository) Add(name string, credits int, teacherID *uint) (uint, error) {
	course := entities.Course{
		Name:      name,
		Credits:   credits,
		TeacherID: teacherID,
	}
	if err := r.db.Create(&course).Error; err != nil {
		return 0, database.TranslateError(err)
	}
	return course.ID, nil
}

// List returns all courses with their teacher names, ordered by course name.
func (r *Repository) List() ([]CourseWithTeacher, error) {
	var courses []CourseWithTeacher
	err := r.db.Raw(`
		SELECT c.id, c.name, c.credits, c.teacher_id,
		       t.first_name || ' ' || t.last_name AS teacher_name
		FROM course c
		LEFT JOIN teacher t ON c.teacher_id = t.id
		ORDER BY c.name`).Scan(&courses).Error
	return courses, err
}

// Get retrieves one course with its teacher name, or
// gorm.ErrRecordNotFound when absent.
func (r *Repository) Get(id uint) (*CourseWithTeacher, error) {
	var course CourseWithTeacher
	result := r.db.Raw(`
		SELECT c.id, c.name, c.credits, c.teacher_id,
		       t.first_name || ' ' || t.last_name AS teacher_name
		FROM course c
		LEFT JOIN teacher t ON c.teacher_id = t.id
		WHERE c.id = ?`, id).Scan(&course)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return &course, nil
}

// Enrollments returns the course's enrollments joined with student names,
// ordered by semester then student name.
func (r *Repository) Enrollments(courseID uint) ([]CourseEnrollment, error) {
	var enrollments []CourseEnrollment
	err := r.db.Raw(`
		SELECT e.id AS enrollment_id, s.id AS student_id,
		       s.first_name || ' ' || s.last_name AS student_name,
		       e.semester, e.status, e.grade
		FROM enrollment e
		JOIN student s ON s.id = e.student_id
		WHERE e.course_id = ?
		ORDER BY e.semester, s.last_name, s.first_name`, courseID).Scan(&enrollments).Error
	return enrollments, err
}
