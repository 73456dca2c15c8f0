package db_models

import (
	"time"

	"gorm.io/gorm"
	"splyt/pkg/utils"
)

type BaseModel struct {
	ID        string `gorm:"type:varchar(24);primaryKey"`
	CreatedAt int64  `gorm:"autoCreateTime"`
	UpdatedAt int64  `gorm:"autoUpdateTime"`
}

// AssignID sets a fresh object id if none has been assigned yet.
// An assigned id is never replaced.
func (b *BaseModel) AssignID() {
	if b.ID == "" {
		b.ID = utils.NewObjectID()
	}
}

// Hooks to manage int64 timestamps
func (b *BaseModel) BeforeCreate(tx *gorm.DB) error {
	b.AssignID()
	now := time.Now().Unix()
	b.CreatedAt = now
	b.UpdatedAt = now
	return nil
}

func (b *BaseModel) BeforeUpdate(tx *gorm.DB) error {
	b.UpdatedAt = time.Now().Unix()
	return nil
}
