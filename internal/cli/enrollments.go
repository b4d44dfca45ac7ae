package cli

import (
	"flag"
	"fmt"
	"os"

	"github.com/mkoval/agenda/internal/config"
	"github.com/mkoval/agenda/internal/database/enrollments"
)

// EnrollCourseCommand registers a student for a course offering. Enrolling
// twice in the same (student, course, semester) triple is an error.
type EnrollCourseCommand struct {
	DatabasePath string
	StudentID    uint
	CourseID     uint
	Semester     string
}

func NewEnrollCourseCommand() *EnrollCourseCommand {
	return &EnrollCourseCommand{}
}

func (cmd *EnrollCourseCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("enroll-course", flag.ExitOnError)
	fs.StringVar(&cmd.DatabasePath, "db", config.DefaultDatabasePath, "Path to the school database file")
	fs.UintVar(&cmd.StudentID, "student", 0, "Student id (required)")
	fs.UintVar(&cmd.CourseID, "course", 0, "Course id (required)")
	fs.StringVar(&cmd.Semester, "semester", "", "Semester, e.g. 2026-autumn (required)")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s enroll-course -student <id> -course <id> -semester <term> [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Enroll a student in a course offering.\n\nOptions:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return err
	}
	if cmd.StudentID == 0 || cmd.CourseID == 0 || cmd.Semester == "" {
		return fmt.Errorf("required flags -student, -course and -semester not provided")
	}
	return nil
}

func (cmd *EnrollCourseCommand) Run() error {
	db, err := openDatabase(cmd.DatabasePath)
	if err != nil {
		return err
	}
	defer db.Close()

	id, err := enrollments.NewRepository(db.DB).Enroll(cmd.StudentID, cmd.CourseID, cmd.Semester)
	if err != nil {
		return err
	}
	fmt.Printf("id=%d student_id=%d course_id=%d semester=%s status=enrolled\n",
		id, cmd.StudentID, cmd.CourseID, cmd.Semester)
	return nil
}

// RecordGradeCommand sets grade and status on an existing enrollment.
type RecordGradeCommand struct {
	DatabasePath string
	EnrollmentID uint
	Grade        string
	Status       string
}

func NewRecordGradeCommand() *RecordGradeCommand {
	return &RecordGradeCommand{}
}

func (cmd *RecordGradeCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("record-grade", flag.ExitOnError)
	fs.StringVar(&cmd.DatabasePath, "db", config.DefaultDatabasePath, "Path to the school database file")
	fs.UintVar(&cmd.EnrollmentID, "enrollment", 0, "Enrollment id (required)")
	fs.StringVar(&cmd.Grade, "grade", "", "Grade, e.g. A (required)")
	fs.StringVar(&cmd.Status, "status", "", "Status, e.g. completed or failed (required)")

	if err := fs.Parse(args); err != nil {
		return err
	}
	if cmd.EnrollmentID == 0 || cmd.Grade == "" || cmd.Status == "" {
		return fmt.Errorf("required flags -enrollment, -grade and -status not provided")
	}
	return nil
}

func (cmd *RecordGradeCommand) Run() error {
	db, err := openDatabase(cmd.DatabasePath)
	if err != nil {
		return err
	}
	defer db.Close()

	if err := enrollments.NewRepository(db.DB).RecordGrade(cmd.EnrollmentID, cmd.Grade, cmd.Status); err != nil {
		return err
	}
	fmt.Printf("id=%d grade=%s status=%s\n", cmd.EnrollmentID, cmd.Grade, cmd.Status)
	return nil
}
