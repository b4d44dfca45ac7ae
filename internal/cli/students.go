package cli

import (
	"flag"
	"fmt"
	"os"

	"github.com/mkoval/agenda/internal/config"
	"github.com/mkoval/agenda/internal/database/students"
)

// AddStudentCommand inserts a student record. The student number must be
// unique across the whole database.
type AddStudentCommand struct {
	DatabasePath  string
	FirstName     string
	LastName      string
	StudentNumber string
	Email         string
}

func NewAddStudentCommand() *AddStudentCommand {
	return &AddStudentCommand{}
}

func (cmd *AddStudentCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("add-student", flag.ExitOnError)
	fs.StringVar(&cmd.DatabasePath, "db", config.DefaultDatabasePath, "Path to the school database file")
	fs.StringVar(&cmd.FirstName, "first", "", "First name (required)")
	fs.StringVar(&cmd.LastName, "last", "", "Last name (required)")
	fs.StringVar(&cmd.StudentNumber, "number", "", "Student number (required, unique)")
	fs.StringVar(&cmd.Email, "email", "", "Email address")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s add-student -first <name> -last <name> -number <number> [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Add a student to the school database.\n\nOptions:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return err
	}
	if cmd.FirstName == "" || cmd.LastName == "" || cmd.StudentNumber == "" {
		return fmt.Errorf("required flags -first, -last and -number not provided")
	}
	return nil
}

func (cmd *AddStudentCommand) Run() error {
	db, err := openDatabase(cmd.DatabasePath)
	if err != nil {
		return err
	}
	defer db.Close()

	id, err := students.NewRepository(db.DB).Add(cmd.FirstName, cmd.LastName, cmd.StudentNumber, optArg(cmd.Email))
	if err != nil {
		return err
	}
	fmt.Printf("id=%d first_name=%s last_name=%s student_number=%s email=%s\n",
		id, cmd.FirstName, cmd.LastName, cmd.StudentNumber, cmd.Email)
	return nil
}

// ListStudentsCommand prints all students ordered by name.
type ListStudentsCommand struct {
	DatabasePath string
}

func NewListStudentsCommand() *ListStudentsCommand {
	return &ListStudentsCommand{}
}

func (cmd *ListStudentsCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("list-students", flag.ExitOnError)
	fs.StringVar(&cmd.DatabasePath, "db", config.DefaultDatabasePath, "Path to the school database file")
	return fs.Parse(args)
}

func (cmd *ListStudentsCommand) Run() error {
	db, err := openDatabase(cmd.DatabasePath)
	if err != nil {
		return err
	}
	defer db.Close()

	all, err := students.NewRepository(db.DB).List()
	if err != nil {
		return err
	}
	for _, s := range all {
		fmt.Printf("id=%d first_name=%s last_name=%s student_number=%s email=%s\n",
			s.ID, s.FirstName, s.LastName, s.StudentNumber, optString(s.Email))
	}
	return nil
}
