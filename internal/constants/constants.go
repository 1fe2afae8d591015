package constants

const (
	AppName            = "habittrack"
	Version            = "v0.2.0"
	DefaultConfigPath  = "~/.config/habittrack/habittrack.db"
	DefaultKeyringUser = "database-connection"

	// DateFormat is the standard date format used throughout the application (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// Backup constants
	MaxBackups       = 14
	BackupDirName    = "backups"
	BackupFilePrefix = "habittrack-"
	BackupFileSuffix = ".db"

	// Settings keys
	SettingTimezone            = "timezone"
	SettingFirstWeekday        = "first_weekday"
	SettingOnboardingCompleted = "onboarding_completed"

	// Default settings values
	DefaultTimezone     = "Local" // Use system local timezone by default
	DefaultFirstWeekday = 0       // Sunday

	// MaxHabitNameLen caps habit names so list and grid layouts stay usable
	MaxHabitNameLen = 80

	// MonthGridCells is the number of cells in the calendar month grid (6 weeks x 7 days)
	MonthGridCells = 42

	// ToastDurationMs is how long transient confirmations stay on screen
	ToastDurationMs = 2000

	// Day range bounds covering every representable day string. Range ends
	// are exclusive, so the max bound must sort after the last valid day.
	DayRangeMin = "0000-01-01"
	DayRangeMax = "9999-12-32"
)

// StarterHabits are the example habits offered during onboarding.
var StarterHabits = []string{
	"Drink water",
	"Exercise",
	"Read",
	"Meditate",
	"Sleep early",
}
