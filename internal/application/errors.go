package application

import (
	"errors"
	"fmt"

	"github.com/linskybing/simqueue/internal/errs"
	"github.com/linskybing/simqueue/internal/metrics"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

var (
	ErrJobNotFound     = fmt.Errorf("job %w", errs.ErrNotFound)
	ErrLogNotFound     = fmt.Errorf("log %w", errs.ErrNotFound)
	ErrProjectNotFound = fmt.Errorf("project %w", errs.ErrNotFound)
	ErrQuotaNotFound   = fmt.Errorf("quota %w", errs.ErrNotFound)
)

// storeErr classifies an error returned by a repository. A missing row is
// reported as notFound when given. Store failures are logged and counted.
func storeErr(op string, err error, notFound error) error {
	if notFound != nil && isNotFound(err) {
		return notFound
	}
	err = errs.FromStore(op, err)
	if errors.Is(err, errs.ErrStoreUnavailable) {
		metrics.RecordStoreError(op)
		log.Error().Err(err).Str("op", op).Msg("record store failure")
	}
	return err
}

func isNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}

// isDuplicate reports a unique constraint violation. The store is opened with
// error translation so every dialect reports gorm.ErrDuplicatedKey.
func isDuplicate(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey)
}
