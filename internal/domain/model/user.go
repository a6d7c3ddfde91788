package model

// User represents a registered user. Name is fixed at creation; only the
// display name can change afterwards.
type User struct {
	ID           int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	Name         string `gorm:"size:64;uniqueIndex;not null" json:"name"`
	DisplayName  string `gorm:"size:128;not null" json:"display_name"`
	CreationTime string `gorm:"not null" json:"creation_time"`
}

// TableName specifies the table name for GORM
func (User) TableName() string {
	return "users"
}
