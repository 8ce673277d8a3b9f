package models

import (
	"time"
)

type Note struct {
	ID             int64     `gorm:"column:id;primary_key" json:"id"`
	UserID         int64     `gorm:"column:user_id;not null;default:0;index:idx_user_created,priority:1" json:"user_id"`
	Title          string    `gorm:"column:title;type:varchar(200);not null" json:"title"`
	Content        *string   `gorm:"column:content;type:text" json:"content"`
	Filename       *string   `gorm:"column:filename;type:varchar(255)" json:"filename"`
	StoredFilename *string   `gorm:"column:stored_filename;type:varchar(80);uniqueIndex:uniq_stored_filename" json:"stored_filename"`
	ContentType    *string   `gorm:"column:content_type;type:varchar(100)" json:"content_type"`
	Size           *int64    `gorm:"column:size" json:"size"`
	CreatedAt      time.Time `gorm:"column:created_at;index:idx_user_created,priority:2;index:idx_created_at" json:"created_at"`
}

func (n Note) TableName() string {
	return "notes"
}

// HasAttachment 附件四个字段要么同时存在要么同时为空
func (n Note) HasAttachment() bool {
	return n.StoredFilename != nil && n.Filename != nil
}
