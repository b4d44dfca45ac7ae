package entities

// EnrollmentStatus names the statuses the application itself writes.
// The column is not constrained to these values: RecordGrade stores
// whatever status the caller supplies, so historical databases may
// contain other strings and queries must tolerate them.
type EnrollmentStatus = string

const (
	StatusEnrolled  EnrollmentStatus = "enrolled"
	StatusCompleted EnrollmentStatus = "completed"
	StatusFailed    EnrollmentStatus = "failed"
)

type Teacher struct {
	ID        uint    `gorm:"primaryKey" json:"id"`
	FirstName string  `gorm:"size:100;not null" json:"first_name"`
	LastName  string  `gorm:"size:100;not null" json:"last_name"`
	Email     *string `gorm:"size:255" json:"email,omitempty"`
}

// Course references its teacher by a nullable column only. There is no
// enforced foreign key: deleting a teacher leaves the reference dangling.
type Course struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	Name      string `gorm:"size:255;not null" json:"name"`
	Credits   int    `gorm:"not null" json:"credits"`
	TeacherID *uint  `gorm:"index" json:"teacher_id,omitempty"`
}

type Program struct {
	ID          uint    `gorm:"primaryKey" json:"id"`
	Name        string  `gorm:"size:255;not null" json:"name"`
	Description *string `json:"description,omitempty"`
}

// ProgramCourse records membership of a course in a program's required set.
// The composite primary key makes duplicate assignments impossible; writes
// use insert-or-ignore so repeats are absorbed rather than rejected.
type ProgramCourse struct {
	ProgramID uint `gorm:"primaryKey;autoIncrement:false" json:"program_id"`
	CourseID  uint `gorm:"primaryKey;autoIncrement:false" json:"course_id"`
}

type Student struct {
	ID            uint    `gorm:"primaryKey" json:"id"`
	FirstName     string  `gorm:"size:100;not null" json:"first_name"`
	LastName      string  `gorm:"size:100;not null" json:"last_name"`
	StudentNumber string  `gorm:"uniqueIndex;size:50;not null" json:"student_number"`
	Email         *string `gorm:"size:255" json:"email,omitempty"`
}

// StudentProgram is curriculum-level enrollment, distinct from course-level
// Enrollment. StartDate is an ISO calendar date (YYYY-MM-DD) or nil.
type StudentProgram struct {
	StudentID uint    `gorm:"primaryKey;autoIncrement:false" json:"student_id"`
	ProgramID uint    `gorm:"primaryKey;autoIncrement:false" json:"program_id"`
	StartDate *string `gorm:"size:10" json:"start_date,omitempty"`
}

// Enrollment is one student's registration for one course offering in one
// semester. The (student, course, semester) triple is unique so a retake in
// a later semester is a new row while double-enrolling in the same offering
// is a constraint violation.
type Enrollment struct {
	ID        uint    `gorm:"primaryKey" json:"id"`
	StudentID uint    `gorm:"uniqueIndex:idx_enrollment_offering" json:"student_id"`
	CourseID  uint    `gorm:"uniqueIndex:idx_enrollment_offering" json:"course_id"`
	Semester  string  `gorm:"uniqueIndex:idx_enrollment_offering;size:50" json:"semester"`
	Status    string  `gorm:"size:20" json:"status"`
	Grade     *string `gorm:"size:10" json:"grade,omitempty"`
}

func (Teacher) TableName() string {
	return "teacher"
}

func (Course) TableName() string {
	return "course"
}

func (Program) TableName() string {
	return "program"
}

func (ProgramCourse) TableName() string {
	return "program_course"
}

func (Student) TableName() string {
	return "student"
}

func (StudentProgram) TableName() string {
	return "student_program"
}

func (Enrollment) TableName() string {
	return "enrollment"
}
