package model

// Admin is a studio staff account allowed to use the management API
type Admin struct {
	ID       uint32 `gorm:"column:id;primaryKey;autoIncrement"`
	Email    string `gorm:"column:email;type:VARCHAR(255);not null;uniqueIndex:idx_admin_email"`
	Name     string `gorm:"column:name;type:VARCHAR(100);not null"`
	Password string `gorm:"column:password;type:VARCHAR(60);not null"` // bcrypt hash

	BaseEntity
}

func (*Admin) TableName() string {
	return "admin"
}

// NewAdmin expects an already hashed password
func NewAdmin(name, email, hashedPassword string) *Admin {
	return &Admin{
		Name:     name,
		Email:    email,
		Password: hashedPassword,
	}
}

// AllModels lists every table in dependency order (referenced tables first)
func AllModels() []interface{} {
	return []interface{}{
		&Admin{},
		&Instructor{},
		&Member{},
		&CenterConfig{},
		&SystemSetting{},
		&MembershipHistory{},
		&Class{},
		&Reservation{},
		&KakaoUserMapping{},
	}
}
