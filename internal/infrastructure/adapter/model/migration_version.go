package model

import "time"

// MigrationVersion records applied schema versions
type MigrationVersion struct {
	ID        uint      `gorm:"primaryKey;autoIncrement"`
	Version   string    `gorm:"size:20;not null"`
	AppliedAt time.Time `gorm:"not null"`
	Details   string    `gorm:"size:255"`
}

// TableName specifies the table name
func (MigrationVersion) TableName() string {
	return "migration_versions"
}
