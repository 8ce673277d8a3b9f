package service

import (
	"Notely/config"
	"Notely/dao"
	"Notely/models"
	"Notely/pkg/database"
	"Notely/pkg/response"
	"Notely/types"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestNoteService(t *testing.T) *NoteService {
	t.Helper()
	dir := t.TempDir()
	cfg := &config.Config{
		App: &config.App{Env: "test", Debug: true},
		Jwt: &config.Jwt{Enabled: true, Secret: "test-secret"},
		Storage: &config.Storage{
			Dir:        filepath.Join(dir, "uploads"),
			PublicPath: "/uploads",
		},
	}
	db, err := gorm.Open(sqlite.Open(filepath.Join(dir, "test.db")), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	return &NoteService{
		Config:  cfg,
		NoteDAO: dao.NewNoteDAO(db),
		Storage: NewStorageService(cfg),
	}
}

func requireBizError(t *testing.T, err error, code int) *response.BizError {
	t.Helper()
	var be *response.BizError
	require.ErrorAs(t, err, &be)
	require.Equal(t, code, be.Code)
	return be
}

func TestCreateAndGetNote_NoFile(t *testing.T) {
	s := newTestNoteService(t)
	ctx := context.Background()

	created, err := s.CreateNote(ctx, 1, &types.CreateNoteRequest{
		Title:   "Shopping",
		Content: "milk, eggs",
	}, nil)
	require.NoError(t, err)
	assert.Equal(t, "Shopping", created.Title)
	require.NotNil(t, created.Content)
	assert.Equal(t, "milk, eggs", *created.Content)
	assert.Nil(t, created.FileURL)
	assert.Nil(t, created.Filename)
	assert.Nil(t, created.ContentType)
	assert.Nil(t, created.Size)

	got, err := s.GetNote(ctx, 1, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, "Shopping", got.Title)
	assert.Equal(t, "milk, eggs", *got.Content)
	assert.Nil(t, got.FileURL)
}

func TestCreateNote_EmptyTitle(t *testing.T) {
	s := newTestNoteService(t)

	_, err := s.CreateNote(context.Background(), 1, &types.CreateNoteRequest{}, nil)
	be := requireBizError(t, err, 400)
	assert.Equal(t, "Title is required", be.Msg)
}

func TestCreateNote_WithFile(t *testing.T) {
	s := newTestNoteService(t)
	ctx := context.Background()

	data := []byte("fake pdf bytes, long enough to matter")
	header := newFileHeader(t, "report.pdf", "application/pdf", data)

	created, err := s.CreateNote(ctx, 1, &types.CreateNoteRequest{Title: "Report"}, header)
	require.NoError(t, err)
	require.NotNil(t, created.FileURL)
	require.NotNil(t, created.Size)
	assert.Equal(t, int64(len(data)), *created.Size)
	assert.Equal(t, "report.pdf", *created.Filename)
	assert.Equal(t, "application/pdf", *created.ContentType)
	assert.True(t, strings.HasPrefix(*created.FileURL, "/uploads/"))

	// 落盘字节数与上传一致
	storedFilename := strings.TrimPrefix(*created.FileURL, "/uploads/")
	stored, err := os.ReadFile(s.Storage.Path(storedFilename))
	require.NoError(t, err)
	assert.Equal(t, data, stored)
}

func TestCreateNote_DisallowedTypePersistsNothing(t *testing.T) {
	s := newTestNoteService(t)
	ctx := context.Background()

	header := newFileHeader(t, "notes.txt", "text/plain", []byte("plain text"))
	_, err := s.CreateNote(ctx, 1, &types.CreateNoteRequest{Title: "Nope"}, header)
	requireBizError(t, err, 400)

	notes, err := s.ListNotes(ctx, 1)
	require.NoError(t, err)
	assert.Empty(t, notes)
	assert.Empty(t, dirEntries(t, s.Config.Storage.UploadDir()))
}

func TestListNotes_OrderAndOwnerScope(t *testing.T) {
	s := newTestNoteService(t)
	ctx := context.Background()

	titles := []string{"first", "second", "third"}
	for _, title := range titles {
		_, err := s.CreateNote(ctx, 1, &types.CreateNoteRequest{Title: title}, nil)
		require.NoError(t, err)
	}
	_, err := s.CreateNote(ctx, 2, &types.CreateNoteRequest{Title: "other user"}, nil)
	require.NoError(t, err)

	notes, err := s.ListNotes(ctx, 1)
	require.NoError(t, err)
	require.Len(t, notes, 3)
	// 新的在前
	assert.Equal(t, "third", notes[0].Title)
	assert.Equal(t, "second", notes[1].Title)
	assert.Equal(t, "first", notes[2].Title)

	other, err := s.ListNotes(ctx, 2)
	require.NoError(t, err)
	require.Len(t, other, 1)
	assert.Equal(t, "other user", other[0].Title)

	// userID 0：单用户模式，返回全部
	all, err := s.ListNotes(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, all, 4)
}

func TestGetNote_OwnerMismatchLooksLikeMissing(t *testing.T) {
	s := newTestNoteService(t)
	ctx := context.Background()

	created, err := s.CreateNote(ctx, 1, &types.CreateNoteRequest{Title: "mine"}, nil)
	require.NoError(t, err)

	_, err = s.GetNote(ctx, 2, created.ID)
	be := requireBizError(t, err, 404)
	assert.Equal(t, "Note not found", be.Msg)

	_, err = s.GetNote(ctx, 1, created.ID+1)
	mismatch := requireBizError(t, err, 404)
	assert.Equal(t, be.Msg, mismatch.Msg)
}

func TestDeleteNote(t *testing.T) {
	s := newTestNoteService(t)
	ctx := context.Background()

	data := []byte("gif bytes")
	created, err := s.CreateNote(ctx, 1, &types.CreateNoteRequest{Title: "with file"},
		newFileHeader(t, "anim.gif", "image/gif", data))
	require.NoError(t, err)
	storedFilename := strings.TrimPrefix(*created.FileURL, "/uploads/")

	require.NoError(t, s.DeleteNote(ctx, 1, created.ID))

	// 记录和文件都应删除
	_, err = s.GetNote(ctx, 1, created.ID)
	requireBizError(t, err, 404)
	_, statErr := os.Stat(s.Storage.Path(storedFilename))
	assert.True(t, os.IsNotExist(statErr))

	// 再删同一 ID 仍是 404
	err = s.DeleteNote(ctx, 1, created.ID)
	requireBizError(t, err, 404)
}

func TestDeleteNote_OwnerMismatch(t *testing.T) {
	s := newTestNoteService(t)
	ctx := context.Background()

	created, err := s.CreateNote(ctx, 1, &types.CreateNoteRequest{Title: "mine"}, nil)
	require.NoError(t, err)

	err = s.DeleteNote(ctx, 2, created.ID)
	requireBizError(t, err, 404)

	// 原记录仍在
	_, err = s.GetNote(ctx, 1, created.ID)
	require.NoError(t, err)
}

func TestDeleteNote_MissingFileDoesNotBlockDeletion(t *testing.T) {
	s := newTestNoteService(t)
	ctx := context.Background()

	created, err := s.CreateNote(ctx, 1, &types.CreateNoteRequest{Title: "with file"},
		newFileHeader(t, "pic.jpg", "image/jpeg", []byte("jpeg")))
	require.NoError(t, err)
	storedFilename := strings.TrimPrefix(*created.FileURL, "/uploads/")

	// 文件已被外部删掉，删除记录仍要成功
	require.NoError(t, os.Remove(s.Storage.Path(storedFilename)))
	require.NoError(t, s.DeleteNote(ctx, 1, created.ID))
}

func TestAttachmentFieldsAllOrNone(t *testing.T) {
	s := newTestNoteService(t)
	ctx := context.Background()

	created, err := s.CreateNote(ctx, 1, &types.CreateNoteRequest{Title: "plain"}, nil)
	require.NoError(t, err)

	var note models.Note
	require.NoError(t, s.NoteDAO.Db.WithContext(ctx).First(&note, created.ID).Error)
	assert.False(t, note.HasAttachment())
	assert.Nil(t, note.Filename)
	assert.Nil(t, note.StoredFilename)
	assert.Nil(t, note.ContentType)
	assert.Nil(t, note.Size)
}
