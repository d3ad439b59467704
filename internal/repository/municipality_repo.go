package repository

import (
	"context"

	"gorm.io/gorm"

	"turnusplan/backend/internal/model"
)

// MunicipalityRepository is the municipalities data access interface.
type MunicipalityRepository interface {
	Create(ctx context.Context, m *model.Municipality) error
	GetByID(ctx context.Context, id string) (*model.Municipality, error)
	List(ctx context.Context) ([]model.Municipality, error)
}

type municipalityRepo struct {
	db *gorm.DB
}

// NewMunicipalityRepo creates the GORM-backed MunicipalityRepository.
func NewMunicipalityRepo(db *gorm.DB) MunicipalityRepository {
	return &municipalityRepo{db: db}
}

func (r *municipalityRepo) Create(ctx context.Context, m *model.Municipality) error {
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *municipalityRepo) GetByID(ctx context.Context, id string) (*model.Municipality, error) {
	var m model.Municipality
	err := r.db.WithContext(ctx).
		Where("municipality_id = ?", id).
		First(&m).Error
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *municipalityRepo) List(ctx context.Context) ([]model.Municipality, error) {
	var ms []model.Municipality
	err := r.db.WithContext(ctx).
		Order("name ASC").
		Find(&ms).Error
	return ms, err
}
