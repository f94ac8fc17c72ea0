package repository

import (
	"cmp"
	"time"

	"github.com/linskybing/simqueue/internal/domain/job"
	"github.com/linskybing/simqueue/internal/domain/project"
	"github.com/linskybing/simqueue/pkg/types"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"k8s.io/apimachinery/pkg/util/sets"
)

// inValues filters column by a set of values. One distinct value is an
// equality test, several are an IN test and none leaves the query untouched.
func inValues[T cmp.Ordered](column string, values []T) func(*gorm.DB) *gorm.DB {
	distinct := sets.List(sets.New(values...))
	return func(db *gorm.DB) *gorm.DB {
		col := clause.Column{Name: column}
		switch len(distinct) {
		case 0:
			return db
		case 1:
			return db.Where(clause.Eq{Column: col, Value: distinct[0]})
		default:
			vals := make([]any, len(distinct))
			for i, v := range distinct {
				vals[i] = v
			}
			return db.Where(clause.IN{Column: col, Values: vals})
		}
	}
}

// jobFilter combines every job filter field. Empty fields add nothing.
func jobFilter(filter job.Filter) []func(*gorm.DB) *gorm.DB {
	return []func(*gorm.DB) *gorm.DB{
		inValues("status", filter.Status),
		inValues("collab_id", filter.CollabID),
		inValues("user_id", filter.UserID),
		inValues("hardware_platform", filter.HardwarePlatform),
		submittedBetween(filter.DateRangeStart, filter.DateRangeEnd),
	}
}

// submittedBetween bounds the submission timestamp. Either bound may be nil.
func submittedBetween(start, end *time.Time) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		col := clause.Column{Name: "timestamp_submission"}
		switch {
		case start != nil && end != nil:
			return db.Where("timestamp_submission BETWEEN ? AND ?", start.UTC(), end.UTC())
		case start != nil:
			return db.Where(clause.Gte{Column: col, Value: start.UTC()})
		case end != nil:
			return db.Where(clause.Lte{Column: col, Value: end.UTC()})
		default:
			return db
		}
	}
}

func paginate(page types.Pagination) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Offset(page.FromIndex).Limit(page.Size)
	}
}

var projectStatusPredicates = map[project.Status]clause.Expr{
	project.StatusInPrep: {
		SQL:  "accepted = ? AND submission_date IS NULL AND decision_date IS NULL",
		Vars: []any{false},
	},
	project.StatusUnderReview: {
		SQL:  "accepted = ? AND submission_date IS NOT NULL AND decision_date IS NULL",
		Vars: []any{false},
	},
	project.StatusRejected: {
		SQL:  "accepted = ? AND decision_date IS NOT NULL",
		Vars: []any{false},
	},
	project.StatusAccepted: {
		SQL:  "accepted = ?",
		Vars: []any{true},
	},
}

// projectStatus expands derived statuses into their stored-field predicates.
func projectStatus(statuses []project.Status) func(*gorm.DB) *gorm.DB {
	distinct := sets.List(sets.New(statuses...))
	return func(db *gorm.DB) *gorm.DB {
		if len(distinct) == 0 {
			return db
		}
		exprs := make([]clause.Expression, 0, len(distinct))
		for _, s := range distinct {
			if p, ok := projectStatusPredicates[s]; ok {
				exprs = append(exprs, p)
			}
		}
		if len(exprs) == 0 {
			return db.Where("1 = 0")
		}
		return db.Where(clause.Or(exprs...))
	}
}

func orderByID(db *gorm.DB) *gorm.DB {
	return db.Order("id")
}
