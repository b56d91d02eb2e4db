package match

import (
	"gorm.io/gorm"
)

type MatchRepository interface {
	SaveBatch(records []*Match) error
	ListByUser(userID uint) ([]Match, error)
}

type GormMatchRepository struct {
	db *gorm.DB
}

func NewGormMatchRepository(db *gorm.DB) *GormMatchRepository {
	return &GormMatchRepository{db: db}
}

// SaveBatch persists an ingestion batch in input order inside a single
// transaction. Either every record commits or none do; concurrent stats
// reads never observe a partial batch.
func (r *GormMatchRepository) SaveBatch(records []*Match) error {
	if len(records) == 0 {
		return nil
	}
	return r.db.Transaction(func(tx *gorm.DB) error {
		for _, m := range records {
			if err := tx.Create(m).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *GormMatchRepository) ListByUser(userID uint) ([]Match, error) {
	var records []Match
	result := r.db.Where("user_id = ?", userID).Order("id").Find(&records)
	if result.Error != nil {
		return nil, result.Error
	}
	return records, nil
}
