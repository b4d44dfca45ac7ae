// Package analytics provides the aggregate queries over the school records:
// per-student program progress, popularity rankings, grade-point ranking and
// at-risk detection. All queries are read-only.
package analytics

import (
	"gorm.io/gorm"
)

// Progress summarizes a student's standing in one program.
//
// Passed and Failed are counted over enrollments, not distinct courses, so
// multiple completed attempts at the same course each count; Remaining is
// clamped at zero for that reason.
type Progress struct {
	Passed    int `json:"passed"`
	Remaining int `json:"remaining"`
	Failed    int `json:"failed"`
}

// PopularCourse is a course ranked by enrollment count. Courses with no
// enrollments appear with a count of zero.
type PopularCourse struct {
	ID              uint   `json:"id"`
	Name            string `json:"name"`
	EnrollmentCount int    `json:"enrollment_count"`
}

// PopularTeacher is a teacher ranked by enrollments across their courses.
type PopularTeacher struct {
	ID              uint   `json:"id"`
	Name            string `json:"name"`
	EnrollmentCount int    `json:"enrollment_count"`
}

// RankedStudent is a student ranked by average grade points over completed
// enrollments (A=5, B=4, C=3, D=2, E=1, anything else 0).
type RankedStudent struct {
	ID       uint    `json:"id"`
	Name     string  `json:"name"`
	AvgGrade float64 `json:"avg_grade"`
}

// AtRiskStudent is a student whose failed enrollments outnumber their
// passed ones.
type AtRiskStudent struct {
	ID     uint   `json:"id"`
	Name   string `json:"name"`
	Failed int    `json:"failed"`
	Passed int    `json:"passed"`
}

// Repository runs the aggregate queries.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new analytics repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// StudentProgress returns the student's passed/remaining/failed counts for
// one program. "Passed" is a completed enrollment with a grade other than
// F in one of the program's courses; "failed" is any failed enrollment in
// those courses.
func (r *Repository) StudentProgress(studentID, programID uint) (Progress, error) {
	var progress Progress

	var total int
	err := r.db.Raw(
		`SELECT COUNT(*) FROM program_course WHERE program_id = ?`,
		programID).Scan(&total).Error
	if err != nil {
		return progress, err
	}

	err = r.db.Raw(`
		SELECT COUNT(*) FROM enrollment e
		JOIN program_course pc ON e.course_id = pc.course_id AND pc.program_id = ?
		WHERE e.student_id = ? AND e.status = 'completed' AND e.grade != 'F'`,
		programID, studentID).Scan(&progress.Passed).Error
	if err != nil {
		return progress, err
	}

	err = r.db.Raw(`
		SELECT COUNT(*) FROM enrollment e
		JOIN program_course pc ON e.course_id = pc.course_id AND pc.program_id = ?
		WHERE e.student_id = ? AND e.status = 'failed'`,
		programID, studentID).Scan(&progress.Failed).Error
	if err != nil {
		return progress, err
	}

	progress.Remaining = total - progress.Passed
	if progress.Remaining < 0 {
		progress.Remaining = 0
	}
	return progress, nil
}

// PopularCourses ranks courses by enrollment count, descending, ties broken
// by course name.
func (r *Repository) PopularCourses(limit int) ([]PopularCourse, error) {
	var courses []PopularCourse
	err := r.db.Raw(`
		SELECT c.id, c.name, COUNT(e.id) AS enrollment_count
		FROM course c
		LEFT JOIN enrollment e ON c.id = e.course_id
		GROUP BY c.id
		ORDER BY enrollment_count DESC, c.name
		LIMIT ?`, limit).Scan(&courses).Error
	return courses, err
}

// PopularTeachers ranks teachers by enrollment count across all of their
// courses, descending, ties broken by teacher name.
func (r *Repository) PopularTeachers(limit int) ([]PopularTeacher, error) {
	var teachers []PopularTeacher
	err := r.db.Raw(`
		SELECT t.id, t.first_name || ' ' || t.last_name AS name,
		       COUNT(e.id) AS enrollment_count
		FROM teacher t
		LEFT JOIN course c ON t.id = c.teacher_id
		LEFT JOIN enrollment e ON c.id = e.course_id
		GROUP BY t.id
		ORDER BY enrollment_count DESC, name
		LIMIT ?`, limit).Scan(&teachers).Error
	return teachers, err
}

// BestStudents ranks students by average grade points over their completed
// enrollments. Students with no completed enrollment are not ranked at all.
func (r *Repository) BestStudents(limit int) ([]RankedStudent, error) {
	var students []RankedStudent
	err := r.db.Raw(`
		SELECT s.id, s.first_name || ' ' || s.last_name AS name,
		       AVG(CASE e.grade
		               WHEN 'A' THEN 5 WHEN 'B' THEN 4 WHEN 'C' THEN 3
		               WHEN 'D' THEN 2 WHEN 'E' THEN 1 ELSE 0 END) AS avg_grade
		FROM student s
		JOIN enrollment e ON s.id = e.student_id AND e.status = 'completed'
		GROUP BY s.id
		HAVING COUNT(e.id) > 0
		ORDER BY avg_grade DESC
		LIMIT ?`, limit).Scan(&students).Error
	return students, err
}

// AtRiskStudents returns students whose failed enrollment count strictly
// exceeds their passed count, most failures first.
func (r *Repository) AtRiskStudents(limit int) ([]AtRiskStudent, error) {
	var students []AtRiskStudent
	err := r.db.Raw(`
		SELECT s.id, s.first_name || ' ' || s.last_name AS name,
		       SUM(CASE WHEN e.status = 'failed' THEN 1 ELSE 0 END) AS failed,
		       SUM(CASE WHEN e.status = 'completed' AND e.grade != 'F' THEN 1 ELSE 0 END) AS passed
		FROM student s
		LEFT JOIN enrollment e ON s.id = e.student_id
		GROUP BY s.id
		HAVING failed > passed
		ORDER BY failed DESC
		LIMIT ?`, limit).Scan(&students).Error
	return students, err
}
