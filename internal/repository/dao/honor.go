package dao

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"
)

var ErrHonorNotFound = errors.New("honor not found")

// HonorDef defines one award: crossing Num in the Kind counter earns Title.
type HonorDef struct {
	ID       uint   `gorm:"primaryKey"`
	KennelID uint   `gorm:"not null;index"`
	Kind     string `gorm:"not null"` // "hash", "hare" or "jedi"
	Num      int    `gorm:"not null"`
	Title    string `gorm:"not null"`
}

// HonorDelivery is the append-only record of an honor being handed out.
// There is deliberately no unique (honor_id, hasher_id) constraint:
// duplicate-award prevention lives in the honors-due exclusion join.
type HonorDelivery struct {
	ID       uint `gorm:"primaryKey"`
	HonorID  uint `gorm:"not null;index"`
	HasherID uint `gorm:"not null;index"`
	EventID  uint `gorm:"not null"`
}

type HonorDAO struct {
	db *gorm.DB
}

func NewHonorDAO(db *gorm.DB) *HonorDAO {
	return &HonorDAO{
		db: db,
	}
}

func (d *HonorDAO) InsertDef(ctx context.Context, def HonorDef) (HonorDef, error) {
	result := d.db.WithContext(ctx).Create(&def)
	if result.Error != nil {
		return HonorDef{}, result.Error
	}

	return def, nil
}

func (d *HonorDAO) ListDefsByKennel(ctx context.Context, kennelID uint) ([]HonorDef, error) {
	var defs []HonorDef

	// Category order is hash, hare, jedi, not lexical.
	result := d.db.WithContext(ctx).
		Where("kennel_id = ?", kennelID).
		Order("CASE kind WHEN 'hash' THEN 1 WHEN 'hare' THEN 2 ELSE 3 END, num").
		Find(&defs)
	if result.Error != nil {
		return nil, result.Error
	}

	return defs, nil
}

func (d *HonorDAO) FindDefByID(ctx context.Context, id uint) (HonorDef, error) {
	var def HonorDef

	result := d.db.WithContext(ctx).First(&def, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return HonorDef{}, ErrHonorNotFound
		}

		return HonorDef{}, result.Error
	}

	return def, nil
}

func (d *HonorDAO) InsertDelivery(ctx context.Context, delivery HonorDelivery) (HonorDelivery, error) {
	result := d.db.WithContext(ctx).Create(&delivery)
	if result.Error != nil {
		return HonorDelivery{}, result.Error
	}

	return delivery, nil
}

type HonorDueRow struct {
	HasherID   uint
	HasherName string
	HonorID    uint
	HonorTitle string
	Threshold  int
	Category   string
}

// Per-category branch of the honors-due query. The roster filter slot
// is empty for the kennel-wide variant; the event variant narrows the
// aggregate to that event's attendees. Counts must strictly exceed the
// threshold, and pairs already delivered are excluded.
const honorsDueBranchSQL = `
SELECT h.id AS hasher_id,
       COALESCE(NULLIF(h.hash_name, ''), h.real_name) AS hasher_name,
       hd.id AS honor_id,
       hd.title AS honor_title,
       hd.num AS threshold,
       hd.kind AS category
FROM honor_defs hd
JOIN (
    SELECT eh.hasher_id, COUNT(*) AS tally
    FROM event_hashers eh
    JOIN events e ON e.id = eh.event_id
    WHERE e.kennel_id = ?{{flag}}{{roster}}
    GROUP BY eh.hasher_id
) counts ON counts.tally > hd.num
JOIN hashers h ON h.id = counts.hasher_id
WHERE hd.kennel_id = ?
  AND hd.kind = ?
  AND NOT EXISTS (
      SELECT 1
      FROM honor_deliveries del
      WHERE del.honor_id = hd.id AND del.hasher_id = h.id
  )`

var categoryFlagFilters = map[string]string{
	"hash": "",
	"hare": " AND eh.hare",
	"jedi": " AND eh.jedi",
}

func buildHonorsDueQuery(kennelID uint, rosterEventID uint) (string, []interface{}) {
	var (
		branches []string
		args     []interface{}
	)

	rosterFilter := ""
	if rosterEventID != 0 {
		rosterFilter = " AND eh.hasher_id IN (SELECT hasher_id FROM event_hashers WHERE event_id = ?)"
	}

	for _, kind := range []string{"hash", "hare", "jedi"} {
		branch := strings.Replace(honorsDueBranchSQL, "{{flag}}", categoryFlagFilters[kind], 1)
		branch = strings.Replace(branch, "{{roster}}", rosterFilter, 1)
		branches = append(branches, branch)

		args = append(args, kennelID)
		if rosterEventID != 0 {
			args = append(args, rosterEventID)
		}
		args = append(args, kennelID, kind)
	}

	return strings.Join(branches, "\nUNION\n"), args
}

// HonorsDueByKennel lists every honor earned but not yet delivered,
// per hasher, across the kennel's award definitions.
func (d *HonorDAO) HonorsDueByKennel(ctx context.Context, kennelID uint) ([]HonorDueRow, error) {
	query, args := buildHonorsDueQuery(kennelID, 0)

	var rows []HonorDueRow
	result := d.db.WithContext(ctx).Raw(query, args...).Scan(&rows)
	if result.Error != nil {
		return nil, result.Error
	}

	return rows, nil
}

// HonorsDueByEvent restricts the evaluation to the event's roster,
// against the thresholds of the event's kennel.
func (d *HonorDAO) HonorsDueByEvent(ctx context.Context, eventID uint) ([]HonorDueRow, error) {
	var event Event
	result := d.db.WithContext(ctx).First(&event, eventID)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrEventNotFound
		}

		return nil, result.Error
	}

	query, args := buildHonorsDueQuery(event.KennelID, eventID)

	var rows []HonorDueRow
	result = d.db.WithContext(ctx).Raw(query, args...).Scan(&rows)
	if result.Error != nil {
		return nil, result.Error
	}

	return rows, nil
}
