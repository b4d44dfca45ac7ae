// Package programs provides database operations for programs (named
// curricula) and their two join relations: course membership and
// curriculum-level student enrollment.
package programs

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/mkoval/agenda/internal/entities"
)

// Repository handles all program database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new programs repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Add inserts a program and returns the generated identifier.
func (r *Repository) Add(name string, description *string) (uint, error) {
	program := entities.Program{
		Name:        name,
		Description: description,
	}
	if err := r.db.Create(&program).Error; err != nil {
		return 0, err
	}
	return program.ID, nil
}

// List returns all programs ordered by name.
func (r *Repository) List() ([]entities.Program, error) {
	var programs []entities.Program
	err := r.db.Order("name").Find(&programs).Error
	return programs, err
}

// Get retrieves a program by id, or gorm.ErrRecordNotFound when absent.
func (r *Repository) Get(id uint) (*entities.Program, error) {
	var program entities.Program
	err := r.db.First(&program, id).Error
	if err != nil {
		return nil, err
	}
	return &program, nil
}

// AssignCourse adds a course to the program's required set. Repeated calls
// with the same pair are absorbed without error and without a second row.
func (r *Repository) AssignCourse(programID, courseID uint) error {
	return r.db.Clauses(clause.OnConflict{DoNothing: true}).
		Create(&entities.ProgramCourse{ProgramID: programID, CourseID: courseID}).Error
}

// EnrollStudent enrolls a student in the program. StartDate is an ISO
// calendar date (YYYY-MM-DD) or nil. Duplicate pairs are absorbed; the
// stored start date of an existing enrollment is not touched.
func (r *Repository) EnrollStudent(studentID, programID uint, startDate *string) error {
	return r.db.Clauses(clause.OnConflict{DoNothing: true}).
		Create(&entities.StudentProgram{
			StudentID: studentID,
			ProgramID: programID,
			StartDate: startDate,
		}).Error
}

// Courses returns the program's required courses ordered by name.
func (r *Repository) Courses(programID uint) ([]entities.Course, error) {
	var courses []entities.Course
	err := r.db.Raw(`
		SELECT c.id, c.name, c.credits, c.teacher_id
		FROM course c
		JOIN program_course pc ON pc.course_id = c.id
		WHERE pc.program_id = ?
		ORDER BY c.name`, programID).Scan(&courses).Error
	return courses, err
}
