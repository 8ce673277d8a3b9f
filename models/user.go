package models

import "time"

type Users struct {
	ID        int64     `gorm:"column:id;primary_key" json:"id"`
	Username  string    `gorm:"column:username;type:varchar(64);not null;uniqueIndex:uniq_username" json:"username"`
	Password  string    `gorm:"column:password;type:varchar(100);not null" json:"-"`
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
}

func (Users) TableName() string {
	return "users"
}
