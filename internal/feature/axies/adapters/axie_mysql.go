// Package adapters provides the repository implementations for the axies feature.
package adapters

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"axie_backend/internal/feature/axies/domain/entity"
	"axie_backend/internal/feature/axies/usecase"
)

type axieMySQL struct {
	db *gorm.DB
}

var _ usecase.AxieRepository = (*axieMySQL)(nil)

// NewAxieRepository creates the MySQL-backed axie repository.
func NewAxieRepository(db *gorm.DB) *axieMySQL {
	return &axieMySQL{db: db}
}

// AxieModel is the GORM representation of a stored listing. The class
// column partitions the table; (class, axie_id) is the reconciliation key.
type AxieModel struct {
	ID     uint   `gorm:"primaryKey"`
	Class  string `gorm:"size:16;not null;uniqueIndex:axie_cls_id,priority:1"`
	AxieID int    `gorm:"not null;uniqueIndex:axie_cls_id,priority:2"`

	Name     string  `gorm:"size:255;not null"`
	Stage    int     `gorm:"not null"`
	PriceUSD float64 `gorm:"column:price_usd;not null;default:0"`
}

// TableName sets the table name for AxieModel.
func (AxieModel) TableName() string {
	return "axies"
}

func toModel(e entity.Axie) AxieModel {
	return AxieModel{
		Class:    e.Class,
		AxieID:   e.AxieID,
		Name:     e.Name,
		Stage:    e.Stage,
		PriceUSD: e.PriceUSD,
	}
}

func toEntity(m AxieModel) entity.Axie {
	return entity.Axie{
		AxieID:   m.AxieID,
		Name:     m.Name,
		Class:    m.Class,
		Stage:    m.Stage,
		PriceUSD: m.PriceUSD,
	}
}

// UpsertBatch inserts the listings in one statement; rows that already
// exist under (class, axie_id) get their mutable columns overwritten.
// Rows are never deleted, so delisted axies simply go stale.
func (r *axieMySQL) UpsertBatch(ctx context.Context, axies []entity.Axie) error {
	if len(axies) == 0 {
		return nil
	}
	ms := make([]AxieModel, 0, len(axies))
	for _, e := range axies {
		ms = append(ms, toModel(e))
	}

	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "class"}, {Name: "axie_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"name", "stage", "price_usd"}),
	}).Create(&ms).Error
}

// FindByClass returns every stored listing in one class partition.
func (r *axieMySQL) FindByClass(ctx context.Context, class entity.Class) ([]entity.Axie, error) {
	var rows []AxieModel
	if err := r.db.WithContext(ctx).
		Where("class = ?", string(class)).
		Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]entity.Axie, 0, len(rows))
	for _, m := range rows {
		out = append(out, toEntity(m))
	}
	return out, nil
}
