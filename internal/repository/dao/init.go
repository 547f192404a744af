package dao

import "gorm.io/gorm"

func InitTables(db *gorm.DB) error {
	return db.AutoMigrate(
		&AuthUser{},
		&Kennel{},
		&Hasher{},
		&Event{},
		&EventHasher{},
		&HonorDef{},
		&HonorDelivery{},
	)
}
