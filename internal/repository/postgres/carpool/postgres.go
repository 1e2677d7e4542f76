package carpool

import (
	"context"
	"time"

	"gorm.io/gorm"

	carpooldomain "carpooling-go/internal/domain/carpool"
)

type PostgresRepository struct {
	db *gorm.DB
}

func NewPostgres(db *gorm.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Transaction(ctx context.Context, fn func(carpooldomain.Repository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&PostgresRepository{db: tx})
	})
}

func (r *PostgresRepository) Create(ctx context.Context, carpool *carpooldomain.Carpool) error {
	return r.db.WithContext(ctx).Create(carpool).Error
}

func (r *PostgresRepository) AddIntermediary(ctx context.Context, intermediary *carpooldomain.Intermediary) error {
	return r.db.WithContext(ctx).Create(intermediary).Error
}

type detailRow struct {
	ID          uint      `gorm:"column:id"`
	Capacity    int       `gorm:"column:capacity"`
	Origin      int       `gorm:"column:origin"`
	Destination int       `gorm:"column:destination"`
	Date        time.Time `gorm:"column:date"`
	Depart      string    `gorm:"column:tdepart"`
	Arrive      string    `gorm:"column:tarrive"`
	OrganiserID uint      `gorm:"column:organiser_id"`
	State       int       `gorm:"column:state"`
	Occupancy   int       `gorm:"column:occupancy"`
	Roundtrip   bool      `gorm:"column:roundtrip"`
	CreatedAt   time.Time `gorm:"column:created_at"`
	Forename    string    `gorm:"column:forename"`
	Surname     string    `gorm:"column:surname"`
}

const detailColumns = "carpools.id, carpools.capacity, carpools.origin, carpools.destination, " +
	"carpools.date, carpools.tdepart, carpools.tarrive, carpools.organiser_id, carpools.state, " +
	"carpools.occupancy, carpools.roundtrip, carpools.created_at, users.forename, users.surname"

func (r *PostgresRepository) List(ctx context.Context) ([]carpooldomain.Detail, error) {
	var rows []detailRow
	if err := r.db.WithContext(ctx).
		Table("carpools").
		Select(detailColumns).
		Joins("join users on users.id = carpools.organiser_id").
		Order("carpools.id asc").
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	return toDetails(rows), nil
}

func (r *PostgresRepository) ListByUser(ctx context.Context, userID uint) ([]carpooldomain.Detail, error) {
	var rows []detailRow
	if err := r.db.WithContext(ctx).
		Table("carpools").
		Select(detailColumns).
		Joins("join intermediaries on intermediaries.cid = carpools.id").
		Joins("join users on users.id = carpools.organiser_id").
		Where("intermediaries.uid = ?", userID).
		Order("carpools.id asc").
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	return toDetails(rows), nil
}

func (r *PostgresRepository) ListIntermediaries(ctx context.Context) ([]carpooldomain.Intermediary, error) {
	var intermediaries []carpooldomain.Intermediary
	if err := r.db.WithContext(ctx).Order("id asc").Find(&intermediaries).Error; err != nil {
		return nil, err
	}
	return intermediaries, nil
}

func (r *PostgresRepository) OrganiserExists(ctx context.Context, userID uint) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Table("users").Where("id = ?", userID).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func toDetails(rows []detailRow) []carpooldomain.Detail {
	details := make([]carpooldomain.Detail, 0, len(rows))
	for _, row := range rows {
		details = append(details, carpooldomain.Detail{
			Carpool: carpooldomain.Carpool{
				ID:          row.ID,
				Capacity:    row.Capacity,
				Origin:      row.Origin,
				Destination: row.Destination,
				Date:        row.Date,
				Depart:      row.Depart,
				Arrive:      row.Arrive,
				OrganiserID: row.OrganiserID,
				State:       row.State,
				Occupancy:   row.Occupancy,
				Roundtrip:   row.Roundtrip,
				CreatedAt:   row.CreatedAt,
			},
			OrganiserName: row.Forename + " " + row.Surname,
		})
	}
	return details
}
