package service

import (
	"Notely/config"
	"Notely/pkg/response"
	"Notely/types"
	"context"
	"encoding/hex"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path"
	"path/filepath"

	"github.com/google/uuid"
)

// 声明的 Content-Type 白名单，落盘前校验
var allowedContentTypes = map[string]bool{
	"image/png":       true,
	"image/jpeg":      true,
	"image/jpg":       true,
	"image/gif":       true,
	"application/pdf": true,
}

var _ IStorageService = (*LocalStorage)(nil)

type IStorageService interface {
	// SaveUpload 校验并落盘一个上传文件，返回附件元数据
	SaveUpload(ctx context.Context, header *multipart.FileHeader) (*types.Attachment, error)

	// SaveStream 按 1MB 分块把流写到 storedFilename，返回实际写入字节数。
	// 写失败时清理半截文件。
	SaveStream(ctx context.Context, reader io.Reader, storedFilename string) (int64, error)

	// Remove 删除已存储文件，文件不存在视为成功
	Remove(storedFilename string) error

	// Path 存储文件的磁盘路径
	Path(storedFilename string) string
}

type LocalStorage struct {
	Config *config.Config
}

func NewStorageService(cfg *config.Config) IStorageService {
	s := &LocalStorage{Config: cfg}
	if err := os.MkdirAll(cfg.Storage.UploadDir(), 0o755); err != nil {
		panic(err)
	}
	return s
}

func (s *LocalStorage) Path(storedFilename string) string {
	return filepath.Join(s.Config.Storage.UploadDir(), storedFilename)
}

func (s *LocalStorage) SaveUpload(ctx context.Context, header *multipart.FileHeader) (*types.Attachment, error) {
	contentType := header.Header.Get("Content-Type")
	if !allowedContentTypes[contentType] {
		return nil, response.NewError(http.StatusBadRequest,
			fmt.Sprintf("Unsupported file type: %s", contentType))
	}

	// header.Size 不可信，但可做第一道拦截
	maxSize := s.Config.Storage.MaxUploadSize
	if maxSize > 0 && header.Size > maxSize {
		return nil, response.NewError(http.StatusBadRequest, "File too large")
	}

	src, err := header.Open()
	if err != nil {
		return nil, err
	}
	defer src.Close()

	// 存储名 = 随机 uuid hex + 原始扩展名，与原始文件名无关，防路径穿越
	u := uuid.New()
	storedFilename := hex.EncodeToString(u[:]) + path.Ext(header.Filename)

	size, err := s.SaveStream(ctx, src, storedFilename)
	if err != nil {
		return nil, err
	}
	if maxSize > 0 && size > maxSize {
		_ = s.Remove(storedFilename)
		return nil, response.NewError(http.StatusBadRequest, "File too large")
	}

	return &types.Attachment{
		Filename:       header.Filename,
		StoredFilename: storedFilename,
		ContentType:    contentType,
		Size:           size,
	}, nil
}

func (s *LocalStorage) SaveStream(ctx context.Context, reader io.Reader, storedFilename string) (int64, error) {
	dst, err := os.Create(s.Path(storedFilename))
	if err != nil {
		return 0, err
	}

	cleanup := func() {
		_ = dst.Close()
		_ = os.Remove(s.Path(storedFilename))
	}

	buf := make([]byte, 1<<20)
	var size int64
	for {
		if err := ctx.Err(); err != nil {
			cleanup()
			return 0, err
		}
		n, rerr := reader.Read(buf)
		if n > 0 {
			if _, werr := dst.Write(buf[:n]); werr != nil {
				cleanup()
				return 0, werr
			}
			size += int64(n)
		}
		if rerr == io.EOF {
			break
		}
		if rerr != nil {
			cleanup()
			return 0, rerr
		}
	}

	if err := dst.Close(); err != nil {
		_ = os.Remove(s.Path(storedFilename))
		return 0, err
	}
	return size, nil
}

func (s *LocalStorage) Remove(storedFilename string) error {
	err := os.Remove(s.Path(storedFilename))
	if err != nil && os.IsNotExist(err) {
		return nil
	}
	return err
}
