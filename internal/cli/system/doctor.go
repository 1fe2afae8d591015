package system

import (
	"database/sql"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/mitchellh/go-ps"

	"habittrack/internal/backup"
	"habittrack/internal/cli"
	"habittrack/internal/constants"
	"habittrack/internal/dateutil"
	"habittrack/internal/migration"
	"habittrack/internal/storage"
	"habittrack/migrations"
)

type DoctorCmd struct{}

func (cmd *DoctorCmd) Run(ctx *cli.Context) error {
	fmt.Println("Running diagnostics...")
	fmt.Println()

	hasError := false
	dbReachable := false

	// Check 1: DB reachable
	if err := checkDBReachable(ctx); err != nil {
		fmt.Printf("❌ Database reachable: FAIL\n")
		fmt.Printf("   Error: %v\n", err)
		hasError = true
	} else {
		fmt.Printf("✓ Database reachable: OK\n")
		dbReachable = true
	}

	// Check 2: Schema version valid (only if DB is reachable)
	if dbReachable {
		if err := checkSchemaVersion(ctx); err != nil {
			fmt.Printf("❌ Schema version: FAIL\n")
			fmt.Printf("   Error: %v\n", err)
			hasError = true
		} else {
			fmt.Printf("✓ Schema version: OK\n")
		}
	} else {
		fmt.Printf("⊘ Schema version: SKIPPED (database not reachable)\n")
	}

	// Check 3: Backups present (warning only)
	if err := checkBackupsPresent(ctx); err != nil {
		fmt.Printf("⚠ Backups present: WARNING\n")
		fmt.Printf("   %v\n", err)
	} else {
		fmt.Printf("✓ Backups present: OK\n")
	}

	// Check 4: Settings valid (only if DB is reachable)
	if dbReachable {
		if err := checkSettings(ctx); err != nil {
			fmt.Printf("❌ Settings: FAIL\n")
			fmt.Printf("   Error: %v\n", err)
			hasError = true
		} else {
			fmt.Printf("✓ Settings: OK\n")
		}
	} else {
		fmt.Printf("⊘ Settings: SKIPPED (database not reachable)\n")
	}

	// Check 5: Completion integrity (only if DB is reachable)
	if dbReachable {
		if err := checkCompletionIntegrity(ctx); err != nil {
			fmt.Printf("❌ Completion integrity: FAIL\n")
			fmt.Printf("   Error: %v\n", err)
			hasError = true
		} else {
			fmt.Printf("✓ Completion integrity: OK\n")
		}
	} else {
		fmt.Printf("⊘ Completion integrity: SKIPPED (database not reachable)\n")
	}

	// Check 6: Date formats (only if DB is reachable)
	if dbReachable {
		if err := checkDateFormats(ctx); err != nil {
			fmt.Printf("❌ Date formats: FAIL\n")
			fmt.Printf("   Error: %v\n", err)
			hasError = true
		} else {
			fmt.Printf("✓ Date formats: OK\n")
		}
	} else {
		fmt.Printf("⊘ Date formats: SKIPPED (database not reachable)\n")
	}

	// Check 7: Clock/timezone sanity
	if err := checkClockTimezone(); err != nil {
		fmt.Printf("❌ Clock/timezone: FAIL\n")
		fmt.Printf("   Error: %v\n", err)
		hasError = true
	} else {
		fmt.Printf("✓ Clock/timezone: OK\n")
	}

	// Check 8: Concurrent instances (warning only)
	if err := checkConcurrentInstances(); err != nil {
		fmt.Printf("⚠ Concurrent instances: WARNING\n")
		fmt.Printf("   %v\n", err)
	} else {
		fmt.Printf("✓ Concurrent instances: OK\n")
	}

	fmt.Println()
	if hasError {
		fmt.Println("Diagnostics completed with errors.")
		return fmt.Errorf("one or more health checks failed")
	}

	fmt.Println("All diagnostics passed!")
	return nil
}

// dbProvider is implemented by both backends and exposes the raw connection
// for diagnostic queries.
type dbProvider interface {
	GetDB() *sql.DB
}

func diagnosticDB(ctx *cli.Context) (*sql.DB, error) {
	provider, ok := ctx.Store.(dbProvider)
	if !ok {
		return nil, fmt.Errorf("store does not expose a database connection")
	}
	db := provider.GetDB()
	if db == nil {
		return nil, fmt.Errorf("database connection is nil")
	}
	return db, nil
}

func checkDBReachable(ctx *cli.Context) error {
	if err := ctx.Store.Load(); err != nil {
		return fmt.Errorf("failed to load database: %w", err)
	}

	db, err := diagnosticDB(ctx)
	if err != nil {
		return err
	}

	var result int
	if err := db.QueryRow("SELECT 1").Scan(&result); err != nil {
		return fmt.Errorf("failed to query database: %w", err)
	}
	return nil
}

func checkSchemaVersion(ctx *cli.Context) error {
	db, err := diagnosticDB(ctx)
	if err != nil {
		return err
	}

	dialect := "sqlite"
	if storage.IsPostgresConfig(ctx.Store.GetConfigPath()) {
		dialect = "postgres"
	}
	subFS, err := fs.Sub(migrations.FS, dialect)
	if err != nil {
		return fmt.Errorf("failed to access %s migrations: %w", dialect, err)
	}

	return migration.NewRunner(db, subFS).ValidateVersion()
}

func checkBackupsPresent(ctx *cli.Context) error {
	if storage.IsPostgresConfig(ctx.Store.GetConfigPath()) {
		// PostgreSQL backups are managed server-side.
		return nil
	}

	mgr := backup.NewManager(ctx.Store.GetConfigPath())
	backups, err := mgr.ListBackups()
	if err != nil {
		return fmt.Errorf("failed to list backups: %w", err)
	}

	if len(backups) == 0 {
		return fmt.Errorf("no backups found - consider creating one with 'habittrack backup create'")
	}
	return nil
}

func checkSettings(ctx *cli.Context) error {
	settings, err := ctx.Store.GetSettings()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	if _, err := dateutil.LoadLocation(settings.Timezone); err != nil {
		return fmt.Errorf("configured timezone %q is invalid: %w", settings.Timezone, err)
	}
	if settings.FirstWeekday < time.Sunday || settings.FirstWeekday > time.Saturday {
		return fmt.Errorf("configured first weekday %d is out of range", settings.FirstWeekday)
	}
	return nil
}

func checkCompletionIntegrity(ctx *cli.Context) error {
	db, err := diagnosticDB(ctx)
	if err != nil {
		return err
	}

	// Orphaned completions reference habits that no longer exist.
	var orphanedCount int
	err = db.QueryRow(`
		SELECT COUNT(*)
		FROM completions c
		LEFT JOIN habits h ON c.habit_id = h.id
		WHERE h.id IS NULL
	`).Scan(&orphanedCount)
	if err != nil {
		return fmt.Errorf("failed to check orphaned completions: %w", err)
	}
	if orphanedCount > 0 {
		return fmt.Errorf("found %d orphaned completions (referencing non-existent habits)", orphanedCount)
	}

	// The unique index should make duplicates impossible; this catches
	// databases written before the index existed.
	var duplicateCount int
	err = db.QueryRow(`
		SELECT COUNT(*)
		FROM (
			SELECT habit_id, day, COUNT(*) AS cnt
			FROM completions
			GROUP BY habit_id, day
			HAVING COUNT(*) > 1
		) dups
	`).Scan(&duplicateCount)
	if err != nil {
		return fmt.Errorf("failed to check duplicate completions: %w", err)
	}
	if duplicateCount > 0 {
		return fmt.Errorf("found %d habit+day combinations with duplicate completions", duplicateCount)
	}

	return nil
}

func checkDateFormats(ctx *cli.Context) error {
	// Validate in Go rather than SQL so the check works on both backends.
	completions, err := ctx.Store.GetCompletionsInRange(constants.DayRangeMin, constants.DayRangeMax)
	if err != nil {
		return fmt.Errorf("failed to read completions: %w", err)
	}

	invalid := 0
	for _, c := range completions {
		if _, err := time.Parse(constants.DateFormat, c.Day); err != nil {
			invalid++
		}
	}
	if invalid > 0 {
		return fmt.Errorf("found %d completions with invalid date format", invalid)
	}
	return nil
}

func checkClockTimezone() error {
	now := time.Now()
	if now.Year() < 2020 || now.Year() > 2100 {
		return fmt.Errorf("system time appears incorrect: %s", now.Format(time.RFC3339))
	}
	return nil
}

func checkConcurrentInstances() error {
	processes, err := ps.Processes()
	if err != nil {
		return fmt.Errorf("failed to list processes: %w", err)
	}

	others := 0
	for _, p := range processes {
		if p.Pid() == os.Getpid() {
			continue
		}
		name := strings.TrimSuffix(p.Executable(), ".exe")
		if name == constants.AppName {
			others++
		}
	}
	if others > 0 {
		return fmt.Errorf("found %d other running habittrack instance(s); concurrent writes to the sqlite database can conflict", others)
	}
	return nil
}
