package managing

import (
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/sujin-dev/revu-manager-api/infrastructure/repository"
	"github.com/sujin-dev/revu-manager-api/internal/domain"
	"github.com/sujin-dev/revu-manager-api/pkg/utils"
)

var (
	ErrCampaignNotFound    = errors.New("campaign not found")
	ErrExtraIncomeNotFound = errors.New("extra income not found")
	ErrMissingTitle        = errors.New("title is required")
)

// CampaignManager is the CRUD surface for campaign and extra-income rows.
// Writes persist the client payload as-is: the statistics normalizer
// re-coerces on every read and never trusts what was written.
type CampaignManager interface {
	ListCampaigns(userID int) ([]*domain.RawCampaignRecord, error)
	CreateCampaign(userID int, record *domain.RawCampaignRecord) (*domain.RawCampaignRecord, error)
	UpdateCampaign(userID int, record *domain.RawCampaignRecord) error
	DeleteCampaign(userID, campaignID int) error

	ListExtraIncomes(userID int) ([]*domain.RawExtraIncomeRecord, error)
	CreateExtraIncome(userID int, record *domain.RawExtraIncomeRecord) (*domain.RawExtraIncomeRecord, error)
	DeleteExtraIncome(userID, extraIncomeID int) error
}

type Service struct {
	campaignRepo    repository.CampaignRepository
	extraIncomeRepo repository.ExtraIncomeRepository
}

func NewService(
	campaignRepo repository.CampaignRepository,
	extraIncomeRepo repository.ExtraIncomeRepository,
) CampaignManager {
	return &Service{
		campaignRepo:    campaignRepo,
		extraIncomeRepo: extraIncomeRepo,
	}
}

func (s *Service) ListCampaigns(userID int) ([]*domain.RawCampaignRecord, error) {
	return s.campaignRepo.ListByUser(userID)
}

func (s *Service) CreateCampaign(userID int, record *domain.RawCampaignRecord) (*domain.RawCampaignRecord, error) {
	if record.Title == "" {
		return nil, ErrMissingTitle
	}

	logrus.WithFields(logrus.Fields{
		"user_id": userID,
	}).Debugf("creating campaign: %s", utils.PrettyJson(record))

	id, err := s.campaignRepo.Create(userID, record)
	if err != nil {
		return nil, err
	}

	record.ID = id

	return record, nil
}

func (s *Service) UpdateCampaign(userID int, record *domain.RawCampaignRecord) error {
	if record.ID == 0 {
		return ErrCampaignNotFound
	}
	if record.Title == "" {
		return ErrMissingTitle
	}

	existing, err := s.campaignRepo.GetByID(userID, record.ID)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrCampaignNotFound
	}

	return s.campaignRepo.Update(userID, record)
}

func (s *Service) DeleteCampaign(userID, campaignID int) error {
	existing, err := s.campaignRepo.GetByID(userID, campaignID)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrCampaignNotFound
	}

	return s.campaignRepo.Delete(userID, campaignID)
}

func (s *Service) ListExtraIncomes(userID int) ([]*domain.RawExtraIncomeRecord, error) {
	return s.extraIncomeRepo.ListByUser(userID)
}

// CreateExtraIncome accepts an empty title: the aggregator groups those
// rows under the fallback label instead of rejecting them.
func (s *Service) CreateExtraIncome(userID int, record *domain.RawExtraIncomeRecord) (*domain.RawExtraIncomeRecord, error) {
	id, err := s.extraIncomeRepo.Create(userID, record)
	if err != nil {
		return nil, err
	}

	record.ID = id

	return record, nil
}

func (s *Service) DeleteExtraIncome(userID, extraIncomeID int) error {
	return s.extraIncomeRepo.Delete(userID, extraIncomeID)
}
