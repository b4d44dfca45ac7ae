package main

import (
	"fmt"
	"os"

	"github.com/mkoval/agenda/internal/cli"
	"github.com/mkoval/agenda/internal/config"
	"github.com/mkoval/agenda/internal/entrypoint"
)

// Version information - set at build time via ldflags
var (
	Version = "dev"
	Commit  = "unknown"
)

func main() {
	// If no arguments or "serve" command, run the HTTP server
	if len(os.Args) < 2 || os.Args[1] == "serve" {
		cfg := config.NewConfig()
		entrypoint.Run(cfg, Version)
		return
	}

	command := os.Args[1]
	args := os.Args[2:]

	var cmd cli.Command
	switch command {
	case "init-db":
		cmd = cli.NewInitDBCommand()
	case "add-teacher":
		cmd = cli.NewAddTeacherCommand()
	case "list-teachers":
		cmd = cli.NewListTeachersCommand()
	case "add-course":
		cmd = cli.NewAddCourseCommand()
	case "list-courses":
		cmd = cli.NewListCoursesCommand()
	case "add-program":
		cmd = cli.NewAddProgramCommand()
	case "list-programs":
		cmd = cli.NewListProgramsCommand()
	case "add-student":
		cmd = cli.NewAddStudentCommand()
	case "list-students":
		cmd = cli.NewListStudentsCommand()
	case "assign-course":
		cmd = cli.NewAssignCourseCommand()
	case "enroll-program":
		cmd = cli.NewEnrollProgramCommand()
	case "enroll-course":
		cmd = cli.NewEnrollCourseCommand()
	case "record-grade":
		cmd = cli.NewRecordGradeCommand()
	case "student-progress":
		cmd = cli.NewStudentProgressCommand()
	case "popular-courses":
		cmd = cli.NewPopularCoursesCommand()
	case "popular-teachers":
		cmd = cli.NewPopularTeachersCommand()
	case "best-students":
		cmd = cli.NewBestStudentsCommand()
	case "at-risk-students":
		cmd = cli.NewAtRiskStudentsCommand()
	case "-h", "--help", "help":
		printUsage()
		return
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", command)
		printUsage()
		os.Exit(1)
	}

	if err := cmd.ParseFlags(args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if err := cmd.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Fprintf(os.Stderr, "Usage: %s <command> [options]\n\n", os.Args[0])
	fmt.Fprintf(os.Stderr, "Commands:\n")
	fmt.Fprintf(os.Stderr, "  serve             Start the HTTP server (default if no command given)\n")
	fmt.Fprintf(os.Stderr, "  init-db           Create the database schema\n")
	fmt.Fprintf(os.Stderr, "  add-teacher       Add a teacher\n")
	fmt.Fprintf(os.Stderr, "  list-teachers     List all teachers\n")
	fmt.Fprintf(os.Stderr, "  add-course        Add a course\n")
	fmt.Fprintf(os.Stderr, "  list-courses      List all courses with teacher names\n")
	fmt.Fprintf(os.Stderr, "  add-program       Add a program\n")
	fmt.Fprintf(os.Stderr, "  list-programs     List all programs\n")
	fmt.Fprintf(os.Stderr, "  add-student       Add a student\n")
	fmt.Fprintf(os.Stderr, "  list-students     List all students\n")
	fmt.Fprintf(os.Stderr, "  assign-course     Add a course to a program\n")
	fmt.Fprintf(os.Stderr, "  enroll-program    Enroll a student in a program\n")
	fmt.Fprintf(os.Stderr, "  enroll-course     Enroll a student in a course offering\n")
	fmt.Fprintf(os.Stderr, "  record-grade      Record a grade on an enrollment\n")
	fmt.Fprintf(os.Stderr, "  student-progress  Show a student's progress in a program\n")
	fmt.Fprintf(os.Stderr, "  popular-courses   Rank courses by enrollment count\n")
	fmt.Fprintf(os.Stderr, "  popular-teachers  Rank teachers by enrollment count\n")
	fmt.Fprintf(os.Stderr, "  best-students     Rank students by average grade\n")
	fmt.Fprintf(os.Stderr, "  at-risk-students  List students with more failures than passes\n")
	fmt.Fprintf(os.Stderr, "\nUse '%s <command> -h' for help on a specific command.\n", os.Args[0])
}
