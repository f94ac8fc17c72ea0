package application_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/linskybing/simqueue/internal/application"
	"github.com/linskybing/simqueue/internal/domain/job"
	"github.com/linskybing/simqueue/internal/domain/quota"
	"github.com/linskybing/simqueue/internal/errs"
	"github.com/linskybing/simqueue/internal/repository/mock"
	"github.com/linskybing/simqueue/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestCreateThenGetQuota(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	id := f.acceptedProject(t, 0)

	created, err := f.svc.Quota.CreateQuota(ctx, id, quota.CreateQuotaDTO{Limit: ptr(50.0), Platform: "BrainScaleS", Units: "wafer-hours"})
	require.NoError(t, err)

	got, err := f.svc.Quota.GetQuota(ctx, created.ID, id)
	require.NoError(t, err)
	assert.Equal(t, 0.0, got.Usage)
	assert.Equal(t, 50.0, got.Limit)
	assert.Equal(t, "BrainScaleS", got.Platform)
	assert.Equal(t, "wafer-hours", got.Units)

	_, err = f.svc.Quota.GetQuota(ctx, created.ID, uuid.New())
	assert.ErrorIs(t, err, application.ErrQuotaNotFound)

	_, err = f.svc.Quota.CreateQuota(ctx, id, quota.CreateQuotaDTO{Limit: ptr(1.0), Platform: "BrainScaleS", Units: "hours"})
	assert.ErrorIs(t, err, errs.ErrValidation, "one quota per platform")

	_, err = f.svc.Quota.CreateQuota(ctx, uuid.New(), quota.CreateQuotaDTO{Limit: ptr(1.0), Platform: "Spikey", Units: "hours"})
	assert.ErrorIs(t, err, application.ErrProjectNotFound)

	_, err = f.svc.Quota.CreateQuota(ctx, id, quota.CreateQuotaDTO{Platform: "Spikey", Units: "hours"})
	assert.ErrorIs(t, err, errs.ErrValidation, "limit is required")
}

func TestUpdateQuotaReplacesLimitAndUsage(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	id := f.acceptedProject(t, 10, "SpiNNaker")
	quotas, err := f.svc.Quota.QueryQuotas(ctx, id, types.DefaultPagination())
	require.NoError(t, err)
	q := quotas[0]

	_, err = f.svc.Quota.UpdateQuota(ctx, id, q.ID, quota.UpdateQuotaDTO{Limit: ptr(100.0), Usage: ptr(40.0)})
	require.NoError(t, err)

	got, err := f.svc.Quota.GetQuota(ctx, q.ID, id)
	require.NoError(t, err)
	assert.Equal(t, 100.0, got.Limit)
	assert.Equal(t, 40.0, got.Usage)
	assert.Equal(t, q.Platform, got.Platform)
	assert.Equal(t, q.Units, got.Units)

	cases := map[string]quota.UpdateQuotaDTO{
		"missing usage":  {Limit: ptr(1.0)},
		"missing limit":  {Usage: ptr(1.0)},
		"negative usage": {Limit: ptr(1.0), Usage: ptr(-1.0)},
	}
	for name, input := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := f.svc.Quota.UpdateQuota(ctx, id, q.ID, input)
			assert.ErrorIs(t, err, errs.ErrValidation)
		})
	}

	_, err = f.svc.Quota.UpdateQuota(ctx, uuid.New(), q.ID, quota.UpdateQuotaDTO{Limit: ptr(1.0), Usage: ptr(0.0)})
	assert.ErrorIs(t, err, application.ErrQuotaNotFound)
}

func TestQueryQuotasRequiresProject(t *testing.T) {
	f := setup(t)
	_, err := f.svc.Quota.QueryQuotas(context.Background(), uuid.Nil, types.DefaultPagination())
	assert.ErrorIs(t, err, errs.ErrValidation)
}

func TestDeleteQuotas(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	id := f.acceptedProject(t, 10, "SpiNNaker", "BrainScaleS", "Spikey")
	quotas, err := f.svc.Quota.QueryQuotas(ctx, id, types.DefaultPagination())
	require.NoError(t, err)

	require.NoError(t, f.svc.Quota.DeleteQuota(ctx, quotas[0].ID, id))
	require.NoError(t, f.svc.Quota.DeleteQuota(ctx, quotas[0].ID, id), "delete must be idempotent")

	n, err := f.svc.Quota.DeleteAllQuotasForProject(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)

	left, err := f.svc.Quota.QueryQuotas(ctx, id, types.DefaultPagination())
	require.NoError(t, err)
	assert.Empty(t, left)
}

func TestChargeJob(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	id := f.acceptedProject(t, 3, "SpiNNaker")

	running := &job.Job{ID: 9, Status: job.StatusRunning, HardwarePlatform: "SpiNNaker", ProjectID: &id, ResourceUsage: ptr(1.0)}
	assert.ErrorIs(t, f.svc.Quota.ChargeJob(ctx, running), errs.ErrValidation)

	unlinked := &job.Job{ID: 10, Status: job.StatusFinished, HardwarePlatform: "SpiNNaker", ResourceUsage: ptr(1.0)}
	require.NoError(t, f.svc.Quota.ChargeJob(ctx, unlinked))

	finished := &job.Job{ID: 11, Status: job.StatusFinished, HardwarePlatform: "SpiNNaker", ProjectID: &id, ResourceUsage: ptr(5.0)}
	require.NoError(t, f.svc.Quota.ChargeJob(ctx, finished))
	require.NoError(t, f.svc.Quota.ChargeJob(ctx, finished))

	quotas, err := f.svc.Quota.QueryQuotas(ctx, id, types.DefaultPagination())
	require.NoError(t, err)
	assert.Equal(t, 5.0, quotas[0].Usage, "usage above the limit is recorded once")

	other := &job.Job{ID: 12, Status: job.StatusError, HardwarePlatform: "BrainScaleS", ProjectID: &id, ResourceUsage: ptr(1.0)}
	require.NoError(t, f.svc.Quota.ChargeJob(ctx, other), "no quota for the platform leaves usage uncharged")
	_, err = f.repos.Quota.FindCharge(ctx, other.ID)
	assert.Error(t, err, "uncharged jobs leave no charge record")
}

func TestChargeJobStoreFailure(t *testing.T) {
	f := setup(t)
	id := f.acceptedProject(t, 3, "SpiNNaker")

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockQuota := mock.NewMockQuotaRepo(ctrl)
	mockQuota.EXPECT().WithTx(gomock.Any()).Return(mockQuota).AnyTimes()
	mockQuota.EXPECT().FindCharge(gomock.Any(), uint(7)).Return(nil, errors.New("i/o timeout"))
	f.repos.Quota = mockQuota

	j := &job.Job{ID: 7, Status: job.StatusFinished, HardwarePlatform: "SpiNNaker", ProjectID: &id, ResourceUsage: ptr(1.0)}
	err := f.svc.Quota.ChargeJob(context.Background(), j)
	assert.ErrorIs(t, err, errs.ErrStoreUnavailable)
}

func TestCreateQuotaDuplicateKeyIsValidation(t *testing.T) {
	f := setup(t)
	id := f.acceptedProject(t, 0)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockQuota := mock.NewMockQuotaRepo(ctrl)
	mockQuota.EXPECT().WithTx(gomock.Any()).Return(mockQuota).AnyTimes()
	mockQuota.EXPECT().LockForPlatform(gomock.Any(), id, "SpiNNaker").Return(nil, gorm.ErrRecordNotFound)
	mockQuota.EXPECT().Create(gomock.Any(), gomock.Any()).Return(fmt.Errorf("create quota: %w", gorm.ErrDuplicatedKey))
	f.repos.Quota = mockQuota

	_, err := f.svc.Quota.CreateQuota(context.Background(), id, quota.CreateQuotaDTO{Limit: ptr(1.0), Platform: "SpiNNaker", Units: "hours"})
	assert.ErrorIs(t, err, errs.ErrValidation, "a concurrent insert for the same platform is a conflict")
	assert.NotErrorIs(t, err, errs.ErrStoreUnavailable)
}
