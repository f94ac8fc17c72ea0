package job

import "time"

// Filter selects jobs. Every non-empty criterion must hold. Value sets follow
// the membership rule: one distinct value is an exact match, several are an
// IN test.
type Filter struct {
	Status           []Status
	CollabID         []string
	UserID           []string
	HardwarePlatform []string
	DateRangeStart   *time.Time
	DateRangeEnd     *time.Time
}

// Columns lists the selectable job columns.
var Columns = []string{
	"id",
	"code",
	"command",
	"collab_id",
	"user_id",
	"status",
	"hardware_platform",
	"hardware_config",
	"timestamp_submission",
	"timestamp_completion",
	"provenance",
	"resource_usage",
	"project_id",
}

// IsColumn reports whether name is a selectable job column.
func IsColumn(name string) bool {
	for _, c := range Columns {
		if c == name {
			return true
		}
	}
	return false
}
