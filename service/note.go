package service

import (
	"Notely/config"
	"Notely/dao"
	"Notely/models"
	"Notely/pkg/log"
	"Notely/pkg/response"
	"Notely/pkg/snowflake"
	"Notely/pkg/utils"
	"Notely/types"
	"context"
	"errors"
	"mime/multipart"
	"net/http"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

var _ INoteService = (*NoteService)(nil)

type INoteService interface {
	CreateNote(ctx context.Context, userID int64, req *types.CreateNoteRequest, file *multipart.FileHeader) (*types.NoteResponse, error)
	ListNotes(ctx context.Context, userID int64) ([]*types.NoteResponse, error)
	GetNote(ctx context.Context, userID, noteID int64) (*types.NoteResponse, error)
	DeleteNote(ctx context.Context, userID, noteID int64) error
}

type NoteService struct {
	Config  *config.Config
	NoteDAO *dao.NoteDAO
	Storage IStorageService
}

// CreateNote 创建笔记。有附件时先落盘再写库，
// 落库失败回收刚写入的文件，保证记录不会指向不完整的文件。
func (s *NoteService) CreateNote(ctx context.Context, userID int64, req *types.CreateNoteRequest, file *multipart.FileHeader) (*types.NoteResponse, error) {
	if req.Title == "" {
		return nil, response.NewError(http.StatusBadRequest, "Title is required")
	}

	var att *types.Attachment
	if file != nil {
		saved, err := s.Storage.SaveUpload(ctx, file)
		if err != nil {
			return nil, err
		}
		att = saved
	}

	note := &models.Note{
		ID:        snowflake.GenID(),
		UserID:    userID,
		Title:     req.Title,
		CreatedAt: time.Now(),
	}
	if req.Content != "" {
		note.Content = &req.Content
	}
	utils.ApplyAttachment(note, att)

	if err := s.NoteDAO.Create(ctx, note); err != nil {
		if att != nil {
			if rmErr := s.Storage.Remove(att.StoredFilename); rmErr != nil {
				log.L.Warn("failed to remove attachment after create error",
					zap.String("stored_filename", att.StoredFilename), zap.Error(rmErr))
			}
		}
		return nil, err
	}

	return utils.ConvertNoteToResponse(s.Config.Storage.BasePath(), note), nil
}

// ListNotes 笔记列表，按创建时间倒序。userID 为 0 时返回全部（单用户模式）。
func (s *NoteService) ListNotes(ctx context.Context, userID int64) ([]*types.NoteResponse, error) {
	notes, err := s.NoteDAO.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	resp := make([]*types.NoteResponse, 0, len(notes))
	for _, note := range notes {
		resp = append(resp, utils.ConvertNoteToResponse(s.Config.Storage.BasePath(), note))
	}
	return resp, nil
}

func (s *NoteService) GetNote(ctx context.Context, userID, noteID int64) (*types.NoteResponse, error) {
	note, err := s.NoteDAO.FindOwned(ctx, noteID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewError(http.StatusNotFound, "Note not found")
		}
		return nil, err
	}
	return utils.ConvertNoteToResponse(s.Config.Storage.BasePath(), note), nil
}

// DeleteNote 删除笔记。附件文件先删，删文件失败只记日志，
// 不阻塞记录删除。属主不匹配与不存在同样报 404。
func (s *NoteService) DeleteNote(ctx context.Context, userID, noteID int64) error {
	note, err := s.NoteDAO.FindOwned(ctx, noteID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NewError(http.StatusNotFound, "Note not found")
		}
		return err
	}

	if note.StoredFilename != nil {
		if err := s.Storage.Remove(*note.StoredFilename); err != nil {
			log.L.Warn("failed to remove attachment file",
				zap.String("stored_filename", *note.StoredFilename), zap.Error(err))
		}
	}

	return s.NoteDAO.Delete(ctx, note.ID)
}
