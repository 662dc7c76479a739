package managing

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/sujin-dev/revu-manager-api/infrastructure/repository/mocks"
	"github.com/sujin-dev/revu-manager-api/internal/domain"
)

func TestService_CreateCampaign(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	campaignRepo := mocks.NewMockCampaignRepository(ctrl)
	extraIncomeRepo := mocks.NewMockExtraIncomeRepository(ctrl)
	service := NewService(campaignRepo, extraIncomeRepo)

	record := &domain.RawCampaignRecord{Title: "수분크림 체험단", Benefit: 45000}
	campaignRepo.EXPECT().Create(1, record).Return(10, nil)

	created, err := service.CreateCampaign(1, record)

	assert.NoError(t, err)
	assert.Equal(t, 10, created.ID)
}

func TestService_CreateCampaign_requiresTitle(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := NewService(mocks.NewMockCampaignRepository(ctrl), mocks.NewMockExtraIncomeRepository(ctrl))

	created, err := service.CreateCampaign(1, &domain.RawCampaignRecord{})

	assert.ErrorIs(t, err, ErrMissingTitle)
	assert.Nil(t, created)
}

func TestService_UpdateCampaign(t *testing.T) {
	tests := []struct {
		name    string
		record  *domain.RawCampaignRecord
		setup   func(repo *mocks.MockCampaignRepository)
		wantErr error
	}{
		{
			name:   "updates existing campaign",
			record: &domain.RawCampaignRecord{ID: 10, Title: "수정된 제목"},
			setup: func(repo *mocks.MockCampaignRepository) {
				repo.EXPECT().GetByID(1, 10).Return(&domain.RawCampaignRecord{ID: 10}, nil)
				repo.EXPECT().Update(1, gomock.Any()).Return(nil)
			},
		},
		{
			name:    "missing id",
			record:  &domain.RawCampaignRecord{Title: "제목"},
			setup:   func(repo *mocks.MockCampaignRepository) {},
			wantErr: ErrCampaignNotFound,
		},
		{
			name:    "missing title",
			record:  &domain.RawCampaignRecord{ID: 10},
			setup:   func(repo *mocks.MockCampaignRepository) {},
			wantErr: ErrMissingTitle,
		},
		{
			name:   "unknown campaign",
			record: &domain.RawCampaignRecord{ID: 99, Title: "제목"},
			setup: func(repo *mocks.MockCampaignRepository) {
				repo.EXPECT().GetByID(1, 99).Return(nil, nil)
			},
			wantErr: ErrCampaignNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			campaignRepo := mocks.NewMockCampaignRepository(ctrl)
			tt.setup(campaignRepo)

			service := NewService(campaignRepo, mocks.NewMockExtraIncomeRepository(ctrl))

			err := service.UpdateCampaign(1, tt.record)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestService_DeleteCampaign_unknown(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	campaignRepo := mocks.NewMockCampaignRepository(ctrl)
	campaignRepo.EXPECT().GetByID(1, 99).Return(nil, nil)

	service := NewService(campaignRepo, mocks.NewMockExtraIncomeRepository(ctrl))

	assert.ErrorIs(t, service.DeleteCampaign(1, 99), ErrCampaignNotFound)
}

func TestService_CreateExtraIncome_allowsEmptyTitle(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	extraIncomeRepo := mocks.NewMockExtraIncomeRepository(ctrl)
	record := &domain.RawExtraIncomeRecord{Title: "", Amount: 35000}
	extraIncomeRepo.EXPECT().Create(1, record).Return(5, nil)

	service := NewService(mocks.NewMockCampaignRepository(ctrl), extraIncomeRepo)

	created, err := service.CreateExtraIncome(1, record)

	assert.NoError(t, err)
	assert.Equal(t, 5, created.ID)
}

func TestService_CreateExtraIncome_repositoryError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	extraIncomeRepo := mocks.NewMockExtraIncomeRepository(ctrl)
	extraIncomeRepo.EXPECT().Create(1, gomock.Any()).Return(0, errors.New("db down"))

	service := NewService(mocks.NewMockCampaignRepository(ctrl), extraIncomeRepo)

	created, err := service.CreateExtraIncome(1, &domain.RawExtraIncomeRecord{Amount: 100})

	assert.Error(t, err)
	assert.Nil(t, created)
}
