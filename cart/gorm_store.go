package cart

import (
	"time"

	"gorm.io/gorm"
)

// lineRecord is the database row behind a persisted cart line.
type lineRecord struct {
	ID            string    `gorm:"primaryKey"`
	UserKey       string    `gorm:"index;not null"`
	ProductID     uint      `gorm:"not null"`
	Name          string
	Price         float64
	Image         string
	SelectedColor string
	SelectedSize  string
	Quantity      int
	AddedAt       time.Time
}

func (lineRecord) TableName() string { return "cart_lines" }

// Migrate creates the cart line table.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&lineRecord{})
}

// GormStore persists carts in the database, one row per line.
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func (s *GormStore) Load(userKey string) ([]Line, error) {
	var records []lineRecord
	if err := s.db.Where("user_key = ?", userKey).Order("added_at").Find(&records).Error; err != nil {
		return nil, err
	}
	lines := make([]Line, 0, len(records))
	for _, r := range records {
		lines = append(lines, Line{
			ID:            r.ID,
			ProductID:     r.ProductID,
			Name:          r.Name,
			Price:         Price(r.Price),
			Image:         r.Image,
			SelectedColor: r.SelectedColor,
			SelectedSize:  r.SelectedSize,
			Quantity:      r.Quantity,
			AddedAt:       r.AddedAt,
		})
	}
	return lines, nil
}

// Save replaces the user's persisted lines in one transaction.
func (s *GormStore) Save(userKey string, lines []Line) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_key = ?", userKey).Delete(&lineRecord{}).Error; err != nil {
			return err
		}
		if len(lines) == 0 {
			return nil
		}
		records := make([]lineRecord, 0, len(lines))
		for _, l := range lines {
			records = append(records, lineRecord{
				ID:            l.ID,
				UserKey:       userKey,
				ProductID:     l.ProductID,
				Name:          l.Name,
				Price:         float64(l.Price),
				Image:         l.Image,
				SelectedColor: l.SelectedColor,
				SelectedSize:  l.SelectedSize,
				Quantity:      l.Quantity,
				AddedAt:       l.AddedAt,
			})
		}
		return tx.Create(&records).Error
	})
}
