// Package database provides the data access layer for the application.
//
// # Architecture
//
// The database layer is organized into domain-specific sub-packages:
//
//	database/
//	├── database.go      # Connection setup, schema migration
//	├── errors.go        # Constraint-violation translation
//	├── teachers/        # Teacher CRUD and teaching-related lookups
//	├── courses/         # Course creation and denormalized listings
//	├── programs/        # Programs and the two idempotent join relations
//	├── students/        # Student CRUD and per-student lookups
//	├── enrollments/     # Course enrollment and grading
//	└── analytics/       # Aggregate queries (progress, rankings, at-risk)
//
// # Using Sub-packages
//
// Each sub-package provides a Repository type with domain-specific operations:
//
//	// Initialize database connection
//	db, err := database.NewDatabase("./school.db")
//
//	// Create domain-specific repositories
//	teachersRepo := teachers.NewRepository(db.DB)
//	studentsRepo := students.NewRepository(db.DB)
//
//	// Use repositories
//	id, err := teachersRepo.Add("Jane", "Smith", nil)
//	all, err := studentsRepo.List()
//
// Every repository operation is its own independently committed unit: there
// is no transaction spanning multiple calls, and concurrent writers rely on
// SQLite's own locking.
package database
