package model

type Instructor struct {
	ID          uint32  `gorm:"column:id;primaryKey;autoIncrement"`
	Name        string  `gorm:"column:name;type:VARCHAR(100);not null"`
	Phone       *string `gorm:"column:phone;type:VARCHAR(20)"`
	PayPerClass int     `gorm:"column:pay_per_class;not null;default:0"` // 수업 1회당 강사료 (원)
	IsActive    bool    `gorm:"column:is_active;not null"`
	Memo        *string `gorm:"column:memo;type:VARCHAR(500)"`

	BaseEntity
}

func (*Instructor) TableName() string {
	return "instructor"
}
