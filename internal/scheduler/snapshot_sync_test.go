package scheduler

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/sujin-dev/revu-manager-api/infrastructure/repository/mocks"
	"github.com/sujin-dev/revu-manager-api/internal/domain"
	statsmocks "github.com/sujin-dev/revu-manager-api/internal/usecases/statistics/mocks"
)

func TestSnapshotSyncService_syncSnapshots(t *testing.T) {
	now := time.Now()
	selector := domain.MonthOf(now.Year(), now.Month())

	tests := []struct {
		name  string
		setup func(
			userRepo *mocks.MockUserRepository,
			snapshotRepo *mocks.MockStatSnapshotRepository,
			statsService *statsmocks.MockProvider,
		)
	}{
		{
			name: "upserts every bucket of every active user and prunes",
			setup: func(
				userRepo *mocks.MockUserRepository,
				snapshotRepo *mocks.MockStatSnapshotRepository,
				statsService *statsmocks.MockProvider,
			) {
				userRepo.EXPECT().ListActiveUsers().Return([]*domain.User{
					{ID: 1, Name: "수진"},
					{ID: 2, Name: "민지"},
				}, nil)

				buckets := []*domain.MonthBucket{
					{MonthKey: "2026-07", EconomicValue: 150000},
					{MonthKey: "2026-08", EconomicValue: 230000},
				}

				statsService.EXPECT().MonthlyGrowth(1, selector).Return(buckets, nil)
				statsService.EXPECT().MonthlyGrowth(2, selector).Return(buckets[:1], nil)

				snapshotRepo.EXPECT().SaveOrUpdate(1, buckets[0]).Return(nil)
				snapshotRepo.EXPECT().SaveOrUpdate(1, buckets[1]).Return(nil)
				snapshotRepo.EXPECT().SaveOrUpdate(2, buckets[0]).Return(nil)

				snapshotRepo.EXPECT().DeleteOlderThan(24).Return(int64(3), nil)
			},
		},
		{
			name: "one failing user does not stop the others",
			setup: func(
				userRepo *mocks.MockUserRepository,
				snapshotRepo *mocks.MockStatSnapshotRepository,
				statsService *statsmocks.MockProvider,
			) {
				userRepo.EXPECT().ListActiveUsers().Return([]*domain.User{
					{ID: 1},
					{ID: 2},
				}, nil)

				statsService.EXPECT().MonthlyGrowth(1, selector).
					Return(nil, errors.New("boom"))

				bucket := &domain.MonthBucket{MonthKey: "2026-08", EconomicValue: 99000}
				statsService.EXPECT().MonthlyGrowth(2, selector).
					Return([]*domain.MonthBucket{bucket}, nil)
				snapshotRepo.EXPECT().SaveOrUpdate(2, bucket).Return(nil)

				snapshotRepo.EXPECT().DeleteOlderThan(24).Return(int64(0), nil)
			},
		},
		{
			name: "no active users skips pruning",
			setup: func(
				userRepo *mocks.MockUserRepository,
				snapshotRepo *mocks.MockStatSnapshotRepository,
				statsService *statsmocks.MockProvider,
			) {
				userRepo.EXPECT().ListActiveUsers().Return([]*domain.User{}, nil)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			userRepo := mocks.NewMockUserRepository(ctrl)
			snapshotRepo := mocks.NewMockStatSnapshotRepository(ctrl)
			statsService := statsmocks.NewMockProvider(ctrl)

			tt.setup(userRepo, snapshotRepo, statsService)

			service := &SnapshotSyncService{
				config: SnapshotSyncConfig{
					MaxConcurrentJobs: 2,
					RetentionMonths:   24,
					SyncEnabled:       true,
				},
				userRepo:     userRepo,
				snapshotRepo: snapshotRepo,
				statsService: statsService,
			}

			service.syncSnapshots()

			assert.False(t, service.syncRunning)
		})
	}
}

func TestSnapshotSyncService_processUserSnapshots_saveError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	snapshotRepo := mocks.NewMockStatSnapshotRepository(ctrl)
	statsService := statsmocks.NewMockProvider(ctrl)

	bucket := &domain.MonthBucket{MonthKey: "2026-08", EconomicValue: 12000}
	statsService.EXPECT().MonthlyGrowth(7, gomock.Any()).
		Return([]*domain.MonthBucket{bucket}, nil)
	snapshotRepo.EXPECT().SaveOrUpdate(7, bucket).Return(errors.New("db down"))

	service := &SnapshotSyncService{
		snapshotRepo: snapshotRepo,
		statsService: statsService,
	}

	err := service.processUserSnapshots(7)

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "2026-08")
}
