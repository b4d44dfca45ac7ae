package cli

import (
	"flag"
	"fmt"

	"github.com/mkoval/agenda/internal/config"
	"github.com/mkoval/agenda/internal/database/analytics"
)

// StudentProgressCommand prints a student's standing in one program.
type StudentProgressCommand struct {
	DatabasePath string
	StudentID    uint
	ProgramID    uint
}

func NewStudentProgressCommand() *StudentProgressCommand {
	return &StudentProgressCommand{}
}

func (cmd *StudentProgressCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("student-progress", flag.ExitOnError)
	fs.StringVar(&cmd.DatabasePath, "db", config.DefaultDatabasePath, "Path to the school database file")
	fs.UintVar(&cmd.StudentID, "student", 0, "Student id (required)")
	fs.UintVar(&cmd.ProgramID, "program", 0, "Program id (required)")

	if err := fs.Parse(args); err != nil {
		return err
	}
	if cmd.StudentID == 0 || cmd.ProgramID == 0 {
		return fmt.Errorf("required flags -student and -program not provided")
	}
	return nil
}

func (cmd *StudentProgressCommand) Run() error {
	db, err := openDatabase(cmd.DatabasePath)
	if err != nil {
		return err
	}
	defer db.Close()

	progress, err := analytics.NewRepository(db.DB).StudentProgress(cmd.StudentID, cmd.ProgramID)
	if err != nil {
		return err
	}
	fmt.Printf("passed=%d remaining=%d failed=%d\n", progress.Passed, progress.Remaining, progress.Failed)
	return nil
}

// rankingCommand holds the flags shared by the four ranking subcommands.
type rankingCommand struct {
	DatabasePath string
	Limit        int
}

func (cmd *rankingCommand) parse(name string, args []string) error {
	fs := flag.NewFlagSet(name, flag.ExitOnError)
	fs.StringVar(&cmd.DatabasePath, "db", config.DefaultDatabasePath, "Path to the school database file")
	fs.IntVar(&cmd.Limit, "limit", 5, "Maximum number of rows to print")
	return fs.Parse(args)
}

// PopularCoursesCommand prints courses ranked by enrollment count.
type PopularCoursesCommand struct {
	rankingCommand
}

func NewPopularCoursesCommand() *PopularCoursesCommand {
	return &PopularCoursesCommand{}
}

func (cmd *PopularCoursesCommand) ParseFlags(args []string) error {
	return cmd.parse("popular-courses", args)
}

func (cmd *PopularCoursesCommand) Run() error {
	db, err := openDatabase(cmd.DatabasePath)
	if err != nil {
		return err
	}
	defer db.Close()

	rows, err := analytics.NewRepository(db.DB).PopularCourses(cmd.Limit)
	if err != nil {
		return err
	}
	for _, row := range rows {
		fmt.Printf("id=%d name=%s enrollments=%d\n", row.ID, row.Name, row.EnrollmentCount)
	}
	return nil
}

// PopularTeachersCommand prints teachers ranked by enrollments across their
// courses.
type PopularTeachersCommand struct {
	rankingCommand
}

func NewPopularTeachersCommand() *PopularTeachersCommand {
	return &PopularTeachersCommand{}
}

func (cmd *PopularTeachersCommand) ParseFlags(args []string) error {
	return cmd.parse("popular-teachers", args)
}

func (cmd *PopularTeachersCommand) Run() error {
	db, err := openDatabase(cmd.DatabasePath)
	if err != nil {
		return err
	}
	defer db.Close()

	rows, err := analytics.NewRepository(db.DB).PopularTeachers(cmd.Limit)
	if err != nil {
		return err
	}
	for _, row := range rows {
		fmt.Printf("id=%d name=%s enrollments=%d\n", row.ID, row.Name, row.EnrollmentCount)
	}
	return nil
}

// BestStudentsCommand prints students ranked by average grade points over
// completed enrollments.
type BestStudentsCommand struct {
	rankingCommand
}

func NewBestStudentsCommand() *BestStudentsCommand {
	return &BestStudentsCommand{}
}

func (cmd *BestStudentsCommand) ParseFlags(args []string) error {
	return cmd.parse("best-students", args)
}

func (cmd *BestStudentsCommand) Run() error {
	db, err := openDatabase(cmd.DatabasePath)
	if err != nil {
		return err
	}
	defer db.Close()

	rows, err := analytics.NewRepository(db.DB).BestStudents(cmd.Limit)
	if err != nil {
		return err
	}
	for _, row := range rows {
		fmt.Printf("id=%d name=%s avg_grade=%.2f\n", row.ID, row.Name, row.AvgGrade)
	}
	return nil
}

// AtRiskStudentsCommand prints students whose failures outnumber their
// passes.
type AtRiskStudentsCommand struct {
	rankingCommand
}

func NewAtRiskStudentsCommand() *AtRiskStudentsCommand {
	return &AtRiskStudentsCommand{}
}

func (cmd *AtRiskStudentsCommand) ParseFlags(args []string) error {
	return cmd.parse("at-risk-students", args)
}

func (cmd *AtRiskStudentsCommand) Run() error {
	db, err := openDatabase(cmd.DatabasePath)
	if err != nil {
		return err
	}
	defer db.Close()

	rows, err := analytics.NewRepository(db.DB).AtRiskStudents(cmd.Limit)
	if err != nil {
		return err
	}
	for _, row := range rows {
		fmt.Printf("id=%d name=%s failed=%d passed=%d\n", row.ID, row.Name, row.Failed, row.Passed)
	}
	return nil
}
