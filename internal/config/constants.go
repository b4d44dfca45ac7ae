package config

// Default paths used when the corresponding environment variables are unset
const (
	// DefaultDatabasePath is the default path for the school database
	DefaultDatabasePath = "./school.db"

	// DefaultDemoDatabasePath is the default path for generated demo databases
	DefaultDemoDatabasePath = "./demo/school-demo.db"
)
