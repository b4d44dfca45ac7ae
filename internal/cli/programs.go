package cli

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/mkoval/agenda/internal/config"
	"github.com/mkoval/agenda/internal/database/programs"
)

// AddProgramCommand inserts a program (a named curriculum).
type AddProgramCommand struct {
	DatabasePath string
	Name         string
	Description  string
}

func NewAddProgramCommand() *AddProgramCommand {
	return &AddProgramCommand{}
}

func (cmd *AddProgramCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("add-program", flag.ExitOnError)
	fs.StringVar(&cmd.DatabasePath, "db", config.DefaultDatabasePath, "Path to the school database file")
	fs.StringVar(&cmd.Name, "name", "", "Program name (required)")
	fs.StringVar(&cmd.Description, "description", "", "Program description")

	if err := fs.Parse(args); err != nil {
		return err
	}
	if cmd.Name == "" {
		return fmt.Errorf("required flag -name not provided")
	}
	return nil
}

func (cmd *AddProgramCommand) Run() error {
	db, err := openDatabase(cmd.DatabasePath)
	if err != nil {
		return err
	}
	defer db.Close()

	id, err := programs.NewRepository(db.DB).Add(cmd.Name, optArg(cmd.Description))
	if err != nil {
		return err
	}
	fmt.Printf("id=%d name=%s description=%s\n", id, cmd.Name, cmd.Description)
	return nil
}

// ListProgramsCommand prints all programs ordered by name.
type ListProgramsCommand struct {
	DatabasePath string
}

func NewListProgramsCommand() *ListProgramsCommand {
	return &ListProgramsCommand{}
}

func (cmd *ListProgramsCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("list-programs", flag.ExitOnError)
	fs.StringVar(&cmd.DatabasePath, "db", config.DefaultDatabasePath, "Path to the school database file")
	return fs.Parse(args)
}

func (cmd *ListProgramsCommand) Run() error {
	db, err := openDatabase(cmd.DatabasePath)
	if err != nil {
		return err
	}
	defer db.Close()

	all, err := programs.NewRepository(db.DB).List()
	if err != nil {
		return err
	}
	for _, p := range all {
		fmt.Printf("id=%d name=%s description=%s\n", p.ID, p.Name, optString(p.Description))
	}
	return nil
}

// AssignCourseCommand adds a course to a program's required set. Repeating
// an assignment is a no-op.
type AssignCourseCommand struct {
	DatabasePath string
	ProgramID    uint
	CourseID     uint
}

func NewAssignCourseCommand() *AssignCourseCommand {
	return &AssignCourseCommand{}
}

func (cmd *AssignCourseCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("assign-course", flag.ExitOnError)
	fs.StringVar(&cmd.DatabasePath, "db", config.DefaultDatabasePath, "Path to the school database file")
	fs.UintVar(&cmd.ProgramID, "program", 0, "Program id (required)")
	fs.UintVar(&cmd.CourseID, "course", 0, "Course id (required)")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s assign-course -program <id> -course <id> [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Add a course to a program's required courses.\n\nOptions:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return err
	}
	if cmd.ProgramID == 0 || cmd.CourseID == 0 {
		return fmt.Errorf("required flags -program and -course not provided")
	}
	return nil
}

func (cmd *AssignCourseCommand) Run() error {
	db, err := openDatabase(cmd.DatabasePath)
	if err != nil {
		return err
	}
	defer db.Close()

	if err := programs.NewRepository(db.DB).AssignCourse(cmd.ProgramID, cmd.CourseID); err != nil {
		return err
	}
	fmt.Printf("program_id=%d course_id=%d\n", cmd.ProgramID, cmd.CourseID)
	return nil
}

// EnrollProgramCommand enrolls a student in a program. Repeating an
// enrollment is a no-op.
type EnrollProgramCommand struct {
	DatabasePath string
	StudentID    uint
	ProgramID    uint
	StartDate    string
}

func NewEnrollProgramCommand() *EnrollProgramCommand {
	return &EnrollProgramCommand{}
}

func (cmd *EnrollProgramCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("enroll-program", flag.ExitOnError)
	fs.StringVar(&cmd.DatabasePath, "db", config.DefaultDatabasePath, "Path to the school database file")
	fs.UintVar(&cmd.StudentID, "student", 0, "Student id (required)")
	fs.UintVar(&cmd.ProgramID, "program", 0, "Program id (required)")
	fs.StringVar(&cmd.StartDate, "start", "", "Start date, YYYY-MM-DD")

	if err := fs.Parse(args); err != nil {
		return err
	}
	if cmd.StudentID == 0 || cmd.ProgramID == 0 {
		return fmt.Errorf("required flags -student and -program not provided")
	}
	if cmd.StartDate != "" {
		if _, err := time.Parse("2006-01-02", cmd.StartDate); err != nil {
			return fmt.Errorf("invalid -start date %q, expected YYYY-MM-DD", cmd.StartDate)
		}
	}
	return nil
}

func (cmd *EnrollProgramCommand) Run() error {
	db, err := openDatabase(cmd.DatabasePath)
	if err != nil {
		return err
	}
	defer db.Close()

	if err := programs.NewRepository(db.DB).EnrollStudent(cmd.StudentID, cmd.ProgramID, optArg(cmd.StartDate)); err != nil {
		return err
	}
	fmt.Printf("student_id=%d program_id=%d start_date=%s\n", cmd.StudentID, cmd.ProgramID, cmd.StartDate)
	return nil
}
