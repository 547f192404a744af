package dao

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

var (
	ErrEventNotFound  = errors.New("event not found")
	ErrAlreadyLinked  = errors.New("hasher already linked to event")
	ErrNothingDeleted = errors.New("delete affected no rows")
)

type Event struct {
	ID uint `gorm:"primaryKey"`

	KennelID uint   `gorm:"not null;index"`
	Kennel   Kennel `gorm:"foreignKey:KennelID"`
	Title    string `gorm:"not null"`
	Number   int
	EvDate   time.Time
	Location string
	Notes    string

	Updated time.Time `gorm:"not null"`
}

// EventHasher is the event roster join row. The composite primary key
// keeps a hasher from appearing twice at the same event.
type EventHasher struct {
	EventID  uint `gorm:"primaryKey;autoIncrement:false"`
	HasherID uint `gorm:"primaryKey;autoIncrement:false"`
	Hare     bool `gorm:"not null;default:false"`
	Jedi     bool `gorm:"not null;default:false"`
}

type EventDAO struct {
	db *gorm.DB
}

func NewEventDAO(db *gorm.DB) *EventDAO {
	return &EventDAO{
		db: db,
	}
}

func (d *EventDAO) Insert(ctx context.Context, event Event) (Event, error) {
	event.Updated = time.Now()

	result := d.db.WithContext(ctx).Create(&event)
	if result.Error != nil {
		return Event{}, result.Error
	}

	return event, nil
}

func (d *EventDAO) Update(ctx context.Context, event Event) (Event, error) {
	result := d.db.WithContext(ctx).
		Model(&Event{}).
		Where("id = ?", event.ID).
		Updates(map[string]interface{}{
			"kennel_id": event.KennelID,
			"title":     event.Title,
			"number":    event.Number,
			"ev_date":   event.EvDate,
			"location":  event.Location,
			"notes":     event.Notes,
			"updated":   time.Now(),
		})
	if result.Error != nil {
		return Event{}, result.Error
	}
	if result.RowsAffected == 0 {
		return Event{}, ErrNothingUpdated
	}

	return d.FindByID(ctx, event.ID)
}

func (d *EventDAO) FindByID(ctx context.Context, id uint) (Event, error) {
	var event Event

	result := d.db.WithContext(ctx).Preload("Kennel").First(&event, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Event{}, ErrEventNotFound
		}

		return Event{}, result.Error
	}

	return event, nil
}

func (d *EventDAO) SearchByTerm(ctx context.Context, term string) ([]Event, error) {
	var events []Event

	pattern := "%" + term + "%"
	result := d.db.WithContext(ctx).
		Preload("Kennel").
		Where("title ILIKE ? OR location ILIKE ?", pattern, pattern).
		Order("ev_date DESC").
		Find(&events)
	if result.Error != nil {
		return nil, result.Error
	}

	return events, nil
}

func (d *EventDAO) ListMostRecent(ctx context.Context, limit int) ([]Event, error) {
	var events []Event

	result := d.db.WithContext(ctx).
		Preload("Kennel").
		Order("updated DESC").
		Limit(limit).
		Find(&events)
	if result.Error != nil {
		return nil, result.Error
	}

	return events, nil
}

func (d *EventDAO) LinkHasher(ctx context.Context, link EventHasher) error {
	result := d.db.WithContext(ctx).Create(&link)
	if result.Error != nil {
		var err *pgconn.PgError
		if errors.As(result.Error, &err) && err.Code == pgerrcode.UniqueViolation {
			return ErrAlreadyLinked
		}

		return result.Error
	}

	return nil
}

// UnlinkHashers removes roster rows by parameterized array binding.
// The caller guarantees a non-empty id list.
func (d *EventDAO) UnlinkHashers(ctx context.Context, hasherIDs []uint, eventID uint) error {
	result := d.db.WithContext(ctx).
		Where("event_id = ? AND hasher_id IN ?", eventID, hasherIDs).
		Delete(&EventHasher{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNothingDeleted
	}

	return nil
}

type ParticipantRow struct {
	HasherID uint
	RealName string
	HashName string
	Hare     bool
	Jedi     bool
}

func (d *EventDAO) ListParticipants(ctx context.Context, eventID uint) ([]ParticipantRow, error) {
	var rows []ParticipantRow

	result := d.db.WithContext(ctx).Raw(`
		SELECT h.id AS hasher_id, h.real_name, h.hash_name, eh.hare, eh.jedi
		FROM event_hashers eh
		JOIN hashers h ON h.id = eh.hasher_id
		WHERE eh.event_id = ?
		ORDER BY h.hash_name`, eventID).
		Scan(&rows)
	if result.Error != nil {
		return nil, result.Error
	}

	return rows, nil
}

type DeliveredHonorRow struct {
	HonorID    uint
	Title      string
	Category   string
	HasherID   uint
	HasherName string
}

// ListDeliveries returns the honors handed out at an event.
func (d *EventDAO) ListDeliveries(ctx context.Context, eventID uint) ([]DeliveredHonorRow, error) {
	var rows []DeliveredHonorRow

	result := d.db.WithContext(ctx).Raw(`
		SELECT hd.id AS honor_id, hd.title, hd.kind AS category,
		       h.id AS hasher_id,
		       COALESCE(NULLIF(h.hash_name, ''), h.real_name) AS hasher_name
		FROM honor_deliveries del
		JOIN honor_defs hd ON hd.id = del.honor_id
		JOIN hashers h ON h.id = del.hasher_id
		WHERE del.event_id = ?
		ORDER BY hd.title`, eventID).
		Scan(&rows)
	if result.Error != nil {
		return nil, result.Error
	}

	return rows, nil
}
