package cli

import (
	"flag"
	"fmt"

	"github.com/mkoval/agenda/internal/config"
)

// InitDBCommand creates the database file and schema. Running it against an
// existing database is harmless.
type InitDBCommand struct {
	DatabasePath string
}

func NewInitDBCommand() *InitDBCommand {
	return &InitDBCommand{}
}

func (cmd *InitDBCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("init-db", flag.ExitOnError)
	fs.StringVar(&cmd.DatabasePath, "db", config.DefaultDatabasePath, "Path to the school database file")
	return fs.Parse(args)
}

func (cmd *InitDBCommand) Run() error {
	db, err := openDatabase(cmd.DatabasePath)
	if err != nil {
		return err
	}
	defer db.Close()

	fmt.Printf("database=%s status=ready\n", cmd.DatabasePath)
	return nil
}
