package dao

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

var (
	ErrHasherNotFound = errors.New("hasher not found")
	ErrNothingUpdated = errors.New("update affected no rows")
)

type Hasher struct {
	ID uint `gorm:"primaryKey"`

	RealName string
	HashName string
	FBName   string
	FBURL    string
	KennelID uint   `gorm:"index"`
	Kennel   Kennel `gorm:"foreignKey:KennelID"`
	Notes    string

	Updated time.Time `gorm:"not null"`
}

type HasherDAO struct {
	db *gorm.DB
}

func NewHasherDAO(db *gorm.DB) *HasherDAO {
	return &HasherDAO{
		db: db,
	}
}

func (d *HasherDAO) Insert(ctx context.Context, hasher Hasher) (Hasher, error) {
	hasher.Updated = time.Now()

	result := d.db.WithContext(ctx).Create(&hasher)
	if result.Error != nil {
		return Hasher{}, result.Error
	}

	return hasher, nil
}

func (d *HasherDAO) Update(ctx context.Context, hasher Hasher) (Hasher, error) {
	result := d.db.WithContext(ctx).
		Model(&Hasher{}).
		Where("id = ?", hasher.ID).
		Updates(map[string]interface{}{
			"real_name": hasher.RealName,
			"hash_name": hasher.HashName,
			"fb_name":   hasher.FBName,
			"fb_url":    hasher.FBURL,
			"kennel_id": hasher.KennelID,
			"notes":     hasher.Notes,
			"updated":   time.Now(),
		})
	if result.Error != nil {
		return Hasher{}, result.Error
	}
	if result.RowsAffected == 0 {
		return Hasher{}, ErrNothingUpdated
	}

	return d.FindByID(ctx, hasher.ID)
}

func (d *HasherDAO) FindByID(ctx context.Context, id uint) (Hasher, error) {
	var hasher Hasher

	result := d.db.WithContext(ctx).Preload("Kennel").First(&hasher, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Hasher{}, ErrHasherNotFound
		}

		return Hasher{}, result.Error
	}

	return hasher, nil
}

func (d *HasherDAO) SearchByTerm(ctx context.Context, term string) ([]Hasher, error) {
	var hashers []Hasher

	pattern := "%" + term + "%"
	result := d.db.WithContext(ctx).
		Preload("Kennel").
		Where("real_name ILIKE ? OR hash_name ILIKE ?", pattern, pattern).
		Order("hash_name").
		Find(&hashers)
	if result.Error != nil {
		return nil, result.Error
	}

	return hashers, nil
}

func (d *HasherDAO) ListMostRecent(ctx context.Context, limit int) ([]Hasher, error) {
	var hashers []Hasher

	result := d.db.WithContext(ctx).
		Preload("Kennel").
		Order("updated DESC").
		Limit(limit).
		Find(&hashers)
	if result.Error != nil {
		return nil, result.Error
	}

	return hashers, nil
}

// ListNotAtEvent returns hashers missing from an event's roster,
// for the add-to-roster form.
func (d *HasherDAO) ListNotAtEvent(ctx context.Context, eventID uint) ([]Hasher, error) {
	var hashers []Hasher

	result := d.db.WithContext(ctx).
		Preload("Kennel").
		Where("id NOT IN (?)",
			d.db.Model(&EventHasher{}).Select("hasher_id").Where("event_id = ?", eventID)).
		Order("hash_name").
		Find(&hashers)
	if result.Error != nil {
		return nil, result.Error
	}

	return hashers, nil
}

type AttendanceRow struct {
	EventID uint
	Title   string
	Number  int
	EvDate  time.Time
	Kennel  string
	Hare    bool
	Jedi    bool
}

func (d *HasherDAO) ListAttendance(ctx context.Context, hasherID uint) ([]AttendanceRow, error) {
	var rows []AttendanceRow

	result := d.db.WithContext(ctx).Raw(`
		SELECT e.id AS event_id, e.title, e.number, e.ev_date, k.name AS kennel,
		       eh.hare, eh.jedi
		FROM event_hashers eh
		JOIN events e ON e.id = eh.event_id
		JOIN kennels k ON k.id = e.kennel_id
		WHERE eh.hasher_id = ?
		ORDER BY e.ev_date DESC`, hasherID).
		Scan(&rows)
	if result.Error != nil {
		return nil, result.Error
	}

	return rows, nil
}

type ReceivedHonorRow struct {
	HonorID  uint
	Title    string
	Category string
	EventID  uint
}

func (d *HasherDAO) ListReceivedHonors(ctx context.Context, hasherID uint) ([]ReceivedHonorRow, error) {
	var rows []ReceivedHonorRow

	result := d.db.WithContext(ctx).Raw(`
		SELECT hd.id AS honor_id, hd.title, hd.kind AS category, del.event_id
		FROM honor_deliveries del
		JOIN honor_defs hd ON hd.id = del.honor_id
		WHERE del.hasher_id = ?
		ORDER BY hd.num`, hasherID).
		Scan(&rows)
	if result.Error != nil {
		return nil, result.Error
	}

	return rows, nil
}
