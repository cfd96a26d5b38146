package models

import "time"

type Event struct {
	ID uint `gorm:"primaryKey" json:"id"`

	OrganizationID uint         `gorm:"index;not null" json:"organization_id"`
	Organization   Organization `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"organization"`

	GroupID uint  `gorm:"index;not null" json:"group_id"`
	Group   Group `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"group"`

	Name        string `gorm:"size:100;not null" json:"name"`
	Description string `gorm:"size:1000" json:"description"`
	EventCode   string `gorm:"size:12;uniqueIndex" json:"event_code"`
	Category    string `gorm:"size:30;default:'meeting'" json:"category"`

	StartTime time.Time  `gorm:"index;not null" json:"start_time"`
	EndTime   *time.Time `json:"end_time"`
	Timezone  string     `gorm:"size:10;default:'GMT+00:00'" json:"timezone"`

	RecurrenceType     string     `gorm:"size:20;default:'none'" json:"recurrence_type"`
	RecurrenceInterval int        `gorm:"default:1" json:"recurrence_interval"`
	RecurrenceEndDate  *time.Time `json:"recurrence_end_date"`

	IsActive   bool `gorm:"default:true" json:"is_active"`
	IsArchived bool `gorm:"default:false" json:"is_archived"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// PlannedMinutes retorna a duração prevista do evento em minutos.
func (e *Event) PlannedMinutes() int {
	if e.EndTime == nil {
		return 0
	}
	return int(e.EndTime.Sub(e.StartTime).Round(time.Minute) / time.Minute)
}
