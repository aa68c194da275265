// Package migrations embeds the SQL schema migrations for every supported driver
package migrations

import (
	"embed"
	"fmt"
	"io/fs"
)

//go:embed sqlite/*.sql mysql/*.sql
var files embed.FS

// FS returns the migration files of the given driver ("sqlite" or "mysql")
func FS(driver string) (fs.FS, error) {
	switch driver {
	case "sqlite", "mysql":
		return fs.Sub(files, driver)
	default:
		return nil, fmt.Errorf("no migrations for driver %q", driver)
	}
}
