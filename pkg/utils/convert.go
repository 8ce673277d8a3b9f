package utils

import (
	"Notely/models"
	"Notely/types"
	"time"
)

// ApplyAttachment 将附件元数据整体写入笔记模型，att 为 nil 时四个字段保持为空
func ApplyAttachment(note *models.Note, att *types.Attachment) {
	if att == nil {
		return
	}
	note.Filename = &att.Filename
	note.StoredFilename = &att.StoredFilename
	note.ContentType = &att.ContentType
	note.Size = &att.Size
}

// ConvertNoteToResponse 模型转响应，basePath 为静态访问前缀（如 /uploads）
func ConvertNoteToResponse(basePath string, note *models.Note) *types.NoteResponse {
	resp := &types.NoteResponse{
		ID:        note.ID,
		Title:     note.Title,
		Content:   note.Content,
		CreatedAt: note.CreatedAt.Format(time.RFC3339),
	}
	if note.HasAttachment() {
		url := basePath + "/" + *note.StoredFilename
		resp.FileURL = &url
		resp.Filename = note.Filename
		resp.ContentType = note.ContentType
		resp.Size = note.Size
	}
	return resp
}
