package model

import "gorm.io/datatypes"

// Class is a scheduled, capacity-limited session
type Class struct {
	ID           uint32         `gorm:"column:id;primaryKey;autoIncrement"`
	Title        string         `gorm:"column:title;type:VARCHAR(100);not null"`
	ClassDate    datatypes.Date `gorm:"column:class_date;not null;index:idx_class_date"`
	StartTime    string         `gorm:"column:start_time;type:VARCHAR(5);not null"` // HH:MM
	EndTime      string         `gorm:"column:end_time;type:VARCHAR(5);not null"`   // HH:MM
	Capacity     int            `gorm:"column:capacity;not null"`
	InstructorID *uint32        `gorm:"column:instructor_id;index"`
	Memo         *string        `gorm:"column:memo;type:VARCHAR(500)"`

	Instructor *Instructor `gorm:"foreignKey:InstructorID;constraint:OnDelete:SET NULL"`

	BaseEntity
}

func (*Class) TableName() string {
	return "class"
}
