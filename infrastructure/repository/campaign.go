package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	jsoniter "github.com/json-iterator/go"
	"github.com/lib/pq"

	"github.com/sujin-dev/revu-manager-api/infrastructure/database/postgres"
	"github.com/sujin-dev/revu-manager-api/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const campaignsTable = "campaigns c"

// CampaignRepository stores campaign rows. The client-facing fields live in
// a jsonb payload exactly as submitted; rows come back as raw records and
// all coercion happens in the statistics normalizer, never here.
type CampaignRepository interface {
	ListByUser(userID int) ([]*domain.RawCampaignRecord, error)
	GetByID(userID, campaignID int) (*domain.RawCampaignRecord, error)
	Create(userID int, record *domain.RawCampaignRecord) (int, error)
	Update(userID int, record *domain.RawCampaignRecord) error
	Delete(userID, campaignID int) error
}

type campaignRepository struct {
	conn *postgres.Connection
}

func NewCampaignRepository(conn *postgres.Connection) CampaignRepository {
	return &campaignRepository{
		conn: conn,
	}
}

func (r *campaignRepository) ListByUser(userID int) ([]*domain.RawCampaignRecord, error) {
	query, args, err := squirrel.
		Select("c.id, c.payload").
		From(campaignsTable).
		Where(squirrel.Eq{"c.user_id": userID}).
		OrderBy("c.id ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("building campaign list query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing campaigns: %w", err)
	}
	defer rows.Close()

	records := make([]*domain.RawCampaignRecord, 0)
	for rows.Next() {
		record, err := scanCampaignRow(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating campaign rows: %w", err)
	}

	return records, nil
}

func (r *campaignRepository) GetByID(userID, campaignID int) (*domain.RawCampaignRecord, error) {
	query, args, err := squirrel.
		Select("c.id, c.payload").
		From(campaignsTable).
		Where(squirrel.Eq{"c.user_id": userID, "c.id": campaignID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("building campaign get query: %w", err)
	}

	row := r.conn.QueryRow(query, args...)

	var id int
	var payload []byte
	if err := row.Scan(&id, &payload); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("scanning campaign row: %w", err)
	}

	return decodeCampaignPayload(id, payload)
}

func (r *campaignRepository) Create(userID int, record *domain.RawCampaignRecord) (int, error) {
	payload, err := json.Marshal(record)
	if err != nil {
		return 0, fmt.Errorf("encoding campaign payload: %w", err)
	}

	query, args, err := squirrel.StatementBuilder.
		Insert("campaigns").
		Columns("user_id", "payload").
		Values(userID, payload).
		Suffix("RETURNING id").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("building campaign insert query: %w", err)
	}

	var id int
	if err := r.conn.QueryRow(query, args...).Scan(&id); err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return 0, fmt.Errorf("database error: %w (code: %s)", pqErr, pqErr.Code)
		}
		return 0, fmt.Errorf("inserting campaign: %w", err)
	}

	return id, nil
}

func (r *campaignRepository) Update(userID int, record *domain.RawCampaignRecord) error {
	payload, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("encoding campaign payload: %w", err)
	}

	query, args, err := squirrel.StatementBuilder.
		Update("campaigns").
		Set("payload", payload).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"user_id": userID, "id": record.ID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("building campaign update query: %w", err)
	}

	result, err := r.conn.Exec(query, args...)
	if err != nil {
		return fmt.Errorf("updating campaign: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("reading affected rows: %w", err)
	}
	if affected == 0 {
		return sql.ErrNoRows
	}

	return nil
}

func (r *campaignRepository) Delete(userID, campaignID int) error {
	query, args, err := squirrel.
		Delete("campaigns").
		Where(squirrel.Eq{"user_id": userID, "id": campaignID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("building campaign delete query: %w", err)
	}

	if _, err := r.conn.Exec(query, args...); err != nil {
		return fmt.Errorf("deleting campaign: %w", err)
	}

	return nil
}

func scanCampaignRow(rows *sql.Rows) (*domain.RawCampaignRecord, error) {
	var id int
	var payload []byte

	if err := rows.Scan(&id, &payload); err != nil {
		return nil, fmt.Errorf("scanning campaign row: %w", err)
	}

	return decodeCampaignPayload(id, payload)
}

// decodeCampaignPayload keeps broken payloads recoverable: an undecodable
// payload yields an empty raw record rather than failing the whole listing.
// The normalizer then coerces the missing fields to their zero values.
func decodeCampaignPayload(id int, payload []byte) (*domain.RawCampaignRecord, error) {
	record := &domain.RawCampaignRecord{}
	if len(payload) > 0 {
		_ = json.Unmarshal(payload, record)
	}
	record.ID = id

	return record, nil
}
