package cli

import (
	"flag"
	"fmt"
	"os"

	"github.com/mkoval/agenda/internal/config"
	"github.com/mkoval/agenda/internal/database/courses"
)

// AddCourseCommand inserts a course, optionally assigned to a teacher.
type AddCourseCommand struct {
	DatabasePath string
	Name         string
	Credits      int
	TeacherID    uint
}

func NewAddCourseCommand() *AddCourseCommand {
	return &AddCourseCommand{}
}

func (cmd *AddCourseCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("add-course", flag.ExitOnError)
	fs.StringVar(&cmd.DatabasePath, "db", config.DefaultDatabasePath, "Path to the school database file")
	fs.StringVar(&cmd.Name, "name", "", "Course name (required)")
	fs.IntVar(&cmd.Credits, "credits", 0, "Credit count (required)")
	fs.UintVar(&cmd.TeacherID, "teacher", 0, "Teacher id (omit for an unassigned course)")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s add-course -name <name> -credits <n> [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Add a course to the school database.\n\nOptions:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return err
	}
	if cmd.Name == "" || cmd.Credits <= 0 {
		return fmt.Errorf("required flags -name and -credits not provided")
	}
	return nil
}

func (cmd *AddCourseCommand) Run() error {
	db, err := openDatabase(cmd.DatabasePath)
	if err != nil {
		return err
	}
	defer db.Close()

	id, err := courses.NewRepository(db.DB).Add(cmd.Name, cmd.Credits, optID(cmd.TeacherID))
	if err != nil {
		return err
	}
	fmt.Printf("id=%d name=%s credits=%d teacher_id=%d\n", id, cmd.Name, cmd.Credits, cmd.TeacherID)
	return nil
}

// ListCoursesCommand prints all courses with their teacher names.
type ListCoursesCommand struct {
	DatabasePath string
}

func NewListCoursesCommand() *ListCoursesCommand {
	return &ListCoursesCommand{}
}

func (cmd *ListCoursesCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("list-courses", flag.ExitOnError)
	fs.StringVar(&cmd.DatabasePath, "db", config.DefaultDatabasePath, "Path to the school database file")
	return fs.Parse(args)
}

func (cmd *ListCoursesCommand) Run() error {
	db, err := openDatabase(cmd.DatabasePath)
	if err != nil {
		return err
	}
	defer db.Close()

	all, err := courses.NewRepository(db.DB).List()
	if err != nil {
		return err
	}
	for _, course := range all {
		teacherID := uint(0)
		if course.TeacherID != nil {
			teacherID = *course.TeacherID
		}
		fmt.Printf("id=%d name=%s credits=%d teacher_id=%d teacher_name=%s\n",
			course.ID, course.Name, course.Credits, teacherID, optString(course.TeacherName))
	}
	return nil
}
