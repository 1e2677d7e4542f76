package proposal

import (
	"context"
	"errors"

	"gorm.io/gorm"

	carpooldomain "carpooling-go/internal/domain/carpool"
	proposaldomain "carpooling-go/internal/domain/proposal"
)

type PostgresRepository struct {
	db *gorm.DB
}

func NewPostgres(db *gorm.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Transaction(ctx context.Context, fn func(proposaldomain.Repository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&PostgresRepository{db: tx})
	})
}

func (r *PostgresRepository) Create(ctx context.Context, proposal *proposaldomain.Proposal) error {
	return r.db.WithContext(ctx).Create(proposal).Error
}

func (r *PostgresRepository) GetByUserAndCarpool(ctx context.Context, userID, carpoolID uint) (*proposaldomain.Proposal, error) {
	var found proposaldomain.Proposal
	err := r.db.WithContext(ctx).
		Where("uid = ? AND cid = ?", userID, carpoolID).
		Order("id asc").
		First(&found).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, proposaldomain.ErrProposalNotFound
	}
	if err != nil {
		return nil, err
	}
	return &found, nil
}

// ListByUser orders by cost alone; separation is stored but not a sort key.
func (r *PostgresRepository) ListByUser(ctx context.Context, userID uint) ([]proposaldomain.Proposal, error) {
	var proposals []proposaldomain.Proposal
	if err := r.db.WithContext(ctx).
		Where("uid = ?", userID).
		Order("cost asc, id asc").
		Find(&proposals).Error; err != nil {
		return nil, err
	}
	return proposals, nil
}

func (r *PostgresRepository) MarkAccepted(ctx context.Context, proposalID uint) error {
	return r.db.WithContext(ctx).
		Model(&proposaldomain.Proposal{}).
		Where("id = ?", proposalID).
		Update("accepted", proposaldomain.AcceptedYes).Error
}

func (r *PostgresRepository) HasMembership(ctx context.Context, userID, carpoolID uint) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&carpooldomain.Intermediary{}).
		Where("uid = ? AND cid = ?", userID, carpoolID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *PostgresRepository) AddMembership(ctx context.Context, userID, carpoolID uint) error {
	return r.db.WithContext(ctx).Create(&carpooldomain.Intermediary{
		UserID:    userID,
		CarpoolID: carpoolID,
	}).Error
}

func (r *PostgresRepository) ReserveSeat(ctx context.Context, carpoolID uint) (bool, error) {
	result := r.db.WithContext(ctx).
		Exec("UPDATE carpools SET occupancy = occupancy + 1 WHERE id = ? AND occupancy < capacity", carpoolID)
	return result.RowsAffected > 0, result.Error
}
