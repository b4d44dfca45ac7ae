// Command generate_demo creates a demo database with a small faculty, two
// programs and a few semesters of graded enrollments.
// Usage: go run cmd/generate_demo/main.go [-db path/to/school-demo.db]
package main

import (
	"flag"
	"log"
	"os"

	"github.com/mkoval/agenda/internal/config"
	"github.com/mkoval/agenda/internal/database"
	"github.com/mkoval/agenda/internal/database/courses"
	"github.com/mkoval/agenda/internal/database/enrollments"
	"github.com/mkoval/agenda/internal/database/programs"
	"github.com/mkoval/agenda/internal/database/students"
	"github.com/mkoval/agenda/internal/database/teachers"
	"github.com/mkoval/agenda/internal/entities"
)

func strPtr(s string) *string { return &s }

type demoEnrollment struct {
	studentIdx int
	courseIdx  int
	semester   string
	grade      string // empty keeps the enrollment in status "enrolled"
	status     string
}

func main() {
	dbPath := flag.String("db", config.DefaultDemoDatabasePath, "path to the demo database file")
	flag.Parse()

	log.Printf("Generating demo database at %s...", *dbPath)

	// Delete existing demo database to start fresh
	if err := os.Remove(*dbPath); err != nil && !os.IsNotExist(err) {
		log.Fatalf("Failed to remove existing demo database: %v", err)
	}

	db, err := database.NewDatabase(*dbPath)
	if err != nil {
		log.Fatalf("Failed to create database: %v", err)
	}
	defer db.Close()

	teachersRepo := teachers.NewRepository(db.DB)
	coursesRepo := courses.NewRepository(db.DB)
	programsRepo := programs.NewRepository(db.DB)
	studentsRepo := students.NewRepository(db.DB)
	enrollmentsRepo := enrollments.NewRepository(db.DB)

	teacherIDs := make([]uint, 0, 3)
	for _, t := range []entities.Teacher{
		{FirstName: "Maria", LastName: "Keller", Email: strPtr("m.keller@example.edu")},
		{FirstName: "Tomas", LastName: "Lindqvist", Email: strPtr("t.lindqvist@example.edu")},
		{FirstName: "Priya", LastName: "Raman"},
	} {
		id, err := teachersRepo.Add(t.FirstName, t.LastName, t.Email)
		if err != nil {
			log.Fatalf("Failed to add teacher %s %s: %v", t.FirstName, t.LastName, err)
		}
		teacherIDs = append(teacherIDs, id)
	}

	courseSpecs := []struct {
		name       string
		credits    int
		teacherIdx int // -1 leaves the course unassigned
	}{
		{"Algebra I", 5, 0},
		{"Analysis", 5, 0},
		{"Mechanics", 4, 1},
		{"Electromagnetism", 4, 1},
		{"Programming Basics", 3, 2},
		{"Academic Writing", 2, -1},
	}
	courseIDs := make([]uint, 0, len(courseSpecs))
	for _, spec := range courseSpecs {
		var teacherID *uint
		if spec.teacherIdx >= 0 {
			teacherID = &teacherIDs[spec.teacherIdx]
		}
		id, err := coursesRepo.Add(spec.name, spec.credits, teacherID)
		if err != nil {
			log.Fatalf("Failed to add course %s: %v", spec.name, err)
		}
		courseIDs = append(courseIDs, id)
	}

	mathProgram, err := programsRepo.Add("Mathematics", strPtr("Core mathematics curriculum"))
	if err != nil {
		log.Fatalf("Failed to add program: %v", err)
	}
	physicsProgram, err := programsRepo.Add("Physics", strPtr("Core physics curriculum"))
	if err != nil {
		log.Fatalf("Failed to add program: %v", err)
	}
	for _, courseIdx := range []int{0, 1, 4} {
		if err := programsRepo.AssignCourse(mathProgram, courseIDs[courseIdx]); err != nil {
			log.Fatalf("Failed to assign course: %v", err)
		}
	}
	for _, courseIdx := range []int{2, 3, 0} {
		if err := programsRepo.AssignCourse(physicsProgram, courseIDs[courseIdx]); err != nil {
			log.Fatalf("Failed to assign course: %v", err)
		}
	}

	studentSpecs := []struct {
		first, last, number string
		program             uint
	}{
		{"Alice", "Brown", "S001", mathProgram},
		{"Bekzat", "Omarov", "S002", mathProgram},
		{"Chloe", "Fontaine", "S003", physicsProgram},
		{"Daniel", "Okafor", "S004", physicsProgram},
		{"Emil", "Hansen", "S005", mathProgram},
	}
	studentIDs := make([]uint, 0, len(studentSpecs))
	for _, spec := range studentSpecs {
		id, err := studentsRepo.Add(spec.first, spec.last, spec.number, nil)
		if err != nil {
			log.Fatalf("Failed to add student %s: %v", spec.number, err)
		}
		if err := programsRepo.EnrollStudent(id, spec.program, strPtr("2025-09-01")); err != nil {
			log.Fatalf("Failed to enroll student %s in program: %v", spec.number, err)
		}
		studentIDs = append(studentIDs, id)
	}

	demoEnrollments := []demoEnrollment{
		{0, 0, "2025-autumn", "A", entities.StatusCompleted},
		{0, 1, "2025-autumn", "B", entities.StatusCompleted},
		{0, 4, "2026-spring", "", ""},
		{1, 0, "2025-autumn", "F", entities.StatusFailed},
		{1, 0, "2026-spring", "C", entities.StatusCompleted},
		{1, 1, "2026-spring", "", ""},
		{2, 2, "2025-autumn", "B", entities.StatusCompleted},
		{2, 3, "2026-spring", "A", entities.StatusCompleted},
		{3, 2, "2025-autumn", "F", entities.StatusFailed},
		{3, 3, "2026-spring", "F", entities.StatusFailed},
		{4, 0, "2025-autumn", "D", entities.StatusCompleted},
		{4, 4, "2026-spring", "E", entities.StatusCompleted},
	}
	for _, e := range demoEnrollments {
		id, err := enrollmentsRepo.Enroll(studentIDs[e.studentIdx], courseIDs[e.courseIdx], e.semester)
		if err != nil {
			log.Fatalf("Failed to enroll student: %v", err)
		}
		if e.grade != "" {
			if err := enrollmentsRepo.RecordGrade(id, e.grade, e.status); err != nil {
				log.Fatalf("Failed to record grade: %v", err)
			}
		}
	}

	log.Printf("Seeded %d teachers, %d courses, 2 programs, %d students, %d enrollments",
		len(teacherIDs), len(courseIDs), len(studentIDs), len(demoEnrollments))
	log.Println("Demo database generated successfully!")
}
