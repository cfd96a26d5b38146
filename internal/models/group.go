package models

import "time"

type Group struct {
	ID uint `gorm:"primaryKey" json:"id"`

	OrganizationID uint         `gorm:"index;not null" json:"organization_id"`
	Organization   Organization `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"organization"`

	Name        string `gorm:"size:100;not null" json:"name"`
	Description string `gorm:"size:500" json:"description"`
	GroupCode   string `gorm:"size:8;uniqueIndex" json:"group_code"`

	MaxCapacity int    `json:"max_capacity"`
	Visibility  string `gorm:"size:20;default:'public'" json:"visibility"`
	JoinPolicy  string `gorm:"size:20;default:'approval'" json:"join_policy"`

	IsActive   bool `gorm:"default:true" json:"is_active"`
	IsArchived bool `gorm:"default:false" json:"is_archived"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
