package dao

import (
	"Notely/models"
	"context"

	"gorm.io/gorm"
)

type NoteDAO struct {
	Repo[models.Note]
}

func NewNoteDAO(db *gorm.DB) *NoteDAO {
	return &NoteDAO{Repo: NewRepo[models.Note](db)}
}

// Create 创建笔记
func (d *NoteDAO) Create(ctx context.Context, note *models.Note) error {
	return d.Db.WithContext(ctx).Create(note).Error
}

// FindByUserID 按属主查询笔记列表，按创建时间倒序。
// userID 为 0 时不过滤（单用户模式）。
func (d *NoteDAO) FindByUserID(ctx context.Context, userID int64) ([]*models.Note, error) {
	var notes []*models.Note
	q := d.Db.WithContext(ctx)
	if userID != 0 {
		q = q.Where("user_id = ?", userID)
	}
	err := q.
		Order("created_at DESC").
		Order("id DESC").
		Find(&notes).Error
	return notes, err
}

// FindOwned 按 ID 查询，userID 非 0 时校验属主。
// 属主不匹配与不存在同样返回 gorm.ErrRecordNotFound。
func (d *NoteDAO) FindOwned(ctx context.Context, noteID, userID int64) (*models.Note, error) {
	q := d.Db.WithContext(ctx).Where("id = ?", noteID)
	if userID != 0 {
		q = q.Where("user_id = ?", userID)
	}
	var note models.Note
	if err := q.First(&note).Error; err != nil {
		return nil, err
	}
	return &note, nil
}

// Delete 删除笔记记录
func (d *NoteDAO) Delete(ctx context.Context, noteID int64) error {
	return d.Db.WithContext(ctx).Delete(&models.Note{}, noteID).Error
}
