package cli

import (
	"flag"
	"fmt"
	"os"

	"github.com/mkoval/agenda/internal/config"
	"github.com/mkoval/agenda/internal/database/teachers"
)

// AddTeacherCommand inserts a teacher record.
type AddTeacherCommand struct {
	DatabasePath string
	FirstName    string
	LastName     string
	Email        string
}

func NewAddTeacherCommand() *AddTeacherCommand {
	return &AddTeacherCommand{}
}

func (cmd *AddTeacherCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("add-teacher", flag.ExitOnError)
	fs.StringVar(&cmd.DatabasePath, "db", config.DefaultDatabasePath, "Path to the school database file")
	fs.StringVar(&cmd.FirstName, "first", "", "First name (required)")
	fs.StringVar(&cmd.LastName, "last", "", "Last name (required)")
	fs.StringVar(&cmd.Email, "email", "", "Email address")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s add-teacher -first <name> -last <name> [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Add a teacher to the school database.\n\nOptions:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return err
	}
	if cmd.FirstName == "" || cmd.LastName == "" {
		return fmt.Errorf("required flags -first and -last not provided")
	}
	return nil
}

func (cmd *AddTeacherCommand) Run() error {
	db, err := openDatabase(cmd.DatabasePath)
	if err != nil {
		return err
	}
	defer db.Close()

	id, err := teachers.NewRepository(db.DB).Add(cmd.FirstName, cmd.LastName, optArg(cmd.Email))
	if err != nil {
		return err
	}
	fmt.Printf("id=%d first_name=%s last_name=%s email=%s\n", id, cmd.FirstName, cmd.LastName, cmd.Email)
	return nil
}

// ListTeachersCommand prints all teachers ordered by name.
type ListTeachersCommand struct {
	DatabasePath string
}

func NewListTeachersCommand() *ListTeachersCommand {
	return &ListTeachersCommand{}
}

func (cmd *ListTeachersCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("list-teachers", flag.ExitOnError)
	fs.StringVar(&cmd.DatabasePath, "db", config.DefaultDatabasePath, "Path to the school database file")
	return fs.Parse(args)
}

func (cmd *ListTeachersCommand) Run() error {
	db, err := openDatabase(cmd.DatabasePath)
	if err != nil {
		return err
	}
	defer db.Close()

	all, err := teachers.NewRepository(db.DB).List()
	if err != nil {
		return err
	}
	for _, t := range all {
		fmt.Printf("id=%d first_name=%s last_name=%s email=%s\n", t.ID, t.FirstName, t.LastName, optString(t.Email))
	}
	return nil
}
