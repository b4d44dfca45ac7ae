// Package teachers provides database operations for teacher records.
//
// # Usage
//
//	repo := teachers.NewRepository(db)
//	id, err := repo.Add("Jane", "Smith", nil)
package teachers

import (
	"gorm.io/gorm"

	"github.com/mkoval/agenda/internal/database"
	"github.com/mkoval/agenda/internal/entities"
)

// TaughtStudent is one distinct student reached through any of a teacher's
// courses, denormalized for direct rendering.
type TaughtStudent struct {
	ID            uint   `json:"id"`
	FirstName     string `json:"first_name"`
	LastName      string `json:"last_name"`
	StudentNumber string `json:"student_number"`
}

// Evaluation is a graded enrollment in one of a teacher's courses.
type Evaluation struct {
	StudentName string `json:"student_name"`
	CourseName  string `json:"course_name"`
	Semester    string `json:"semester"`
	Grade       string `json:"grade"`
}

// Repository handles all teacher database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new teachers repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Add inserts a teacher and returns the generated identifier.
func (r *Repository) Add(firstName, lastName string, email *string) (uint, error) {
	teacher := entities.Teacher{
		FirstName: firstName,
		LastName:  lastName,
		Email:     email,
	}
	if err := r.db.Create(&teacher).Error; err != nil {
		return 0, database.TranslateError(err)
	}
	return teacher.ID, nil
}

// List returns all teachers ordered by last name, then first name.
func (r *Repository) List() ([]entities.Teacher, error) {
	var teachers []entities.Teacher
	err := r.db.Order("last_name, first_name").Find(&teachers).Error
	return teachers, err
}

// Get retrieves a teacher by id, or gorm.ErrRecordNotFound when absent.
func (r *Repository) Get(id uint) (*entities.Teacher, error) {
	var teacher entities.Teacher
	err := r.db.First(&teacher, id).Error
	if err != nil {
		return nil, err
	}
	return &teacher, nil
}

// Update replaces all fields of an existing teacher. A nil email clears the
// stored address.
func (r *Repository) Update(id uint, firstName, lastName string, email *string) error {
	teacher := entities.Teacher{
		ID:        id,
		FirstName: firstName,
		LastName:  lastName,
		Email:     email,
	}
	return r.db.Save(&teacher).Error
}

// Delete removes a teacher unconditionally. Courses referencing the teacher
// keep their now-dangling teacher_id.
func (r *Repository) Delete(id uint) error {
	return r.db.Delete(&entities.Teacher{}, id).Error
}

// Courses returns the teacher's courses ordered by name.
func (r *Repository) Courses(teacherID uint) ([]entities.Course, error) {
	var courses []entities.Course
	err := r.db.Where("teacher_id = ?", teacherID).Order("name").Find(&courses).Error
	return courses, err
}

// Students returns the distinct students enrolled in any of the teacher's
// courses, ordered by last name then first name.
func (r *Repository) Students(teacherID uint) ([]TaughtStudent, error) {
	var students []TaughtStudent
	err := r.db.Raw(`
		SELECT DISTINCT s.id, s.first_name, s.last_name, s.student_number
		FROM student s
		JOIN enrollment e ON e.student_id = s.id
		JOIN course c ON c.id = e.course_id
		WHERE c.teacher_id = ?
		ORDER BY s.last_name, s.first_name`, teacherID).Scan(&students).Error
	return students, err
}

// Evaluations returns student/course/grade rows for the teacher's courses,
// limited to enrollments where a grade has been recorded.
func (r *Repository) Evaluations(teacherID uint) ([]Evaluation, error) {
	var evaluations []Evaluation
	err := r.db.Raw(`
		SELECT s.first_name || ' ' || s.last_name AS student_name,
		       c.name AS course_name,
		       e.semester,
		       e.grade
		FROM enrollment e
		JOIN course c ON c.id = e.course_id
		JOIN student s ON s.id = e.student_id
		WHERE c.teacher_id = ? AND e.grade IS NOT NULL
		ORDER BY c.name, s.last_name, s.first_name`, teacherID).Scan(&evaluations).Error
	return evaluations, err
}
