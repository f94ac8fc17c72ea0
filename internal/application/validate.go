package application

import (
	"github.com/go-playground/validator/v10"
	"github.com/linskybing/simqueue/internal/domain/job"
	"github.com/linskybing/simqueue/internal/errs"
	"github.com/linskybing/simqueue/pkg/types"
	"k8s.io/apimachinery/pkg/util/sets"
)

// validate checks the binding tags shared with the HTTP layer.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.SetTagName("binding")
	return v
}

func validateDTO(dto any) error {
	if err := validate.Struct(dto); err != nil {
		return errs.Validationf("%v", err)
	}
	return nil
}

func validatePage(page types.Pagination) error {
	if page.FromIndex < 0 {
		return errs.Validationf("from_index must not be negative, got %d", page.FromIndex)
	}
	if page.Size < 1 || page.Size > types.MaxPageSize {
		return errs.Validationf("size must be between 1 and %d, got %d", types.MaxPageSize, page.Size)
	}
	return nil
}

// projection resolves a requested column list. id is always selected so
// relations can be loaded and hardware_platform accompanies resource_usage
// so its unit can be resolved. An empty request selects every column.
func projection(fields []string) ([]string, error) {
	if len(fields) == 0 {
		return nil, nil
	}
	cols := sets.New[string]("id")
	for _, f := range fields {
		if !job.IsColumn(f) {
			return nil, errs.Validationf("unknown job field %q", f)
		}
		cols.Insert(f)
	}
	if cols.Has("resource_usage") {
		cols.Insert("hardware_platform")
	}
	return sets.List(cols), nil
}

func validateJobFilter(f job.Filter) error {
	for _, s := range f.Status {
		if !s.Valid() {
			return errs.Validationf("unknown job status %q", s)
		}
	}
	return nil
}
