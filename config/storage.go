package config

// Storage 附件落盘配置
type Storage struct {
	// Dir 附件存放目录
	Dir string `json:"dir" yaml:"dir"`
	// PublicPath 静态访问前缀，上传文件通过 <PublicPath>/<stored_filename> 访问
	PublicPath string `json:"public_path" yaml:"public_path"`
	// MaxUploadSize 单文件上限（字节），0 表示不限制
	MaxUploadSize int64 `json:"max_upload_size" yaml:"max_upload_size"`
}

func (s *Storage) BasePath() string {
	if s.PublicPath == "" {
		return "/uploads"
	}
	return s.PublicPath
}

func (s *Storage) UploadDir() string {
	if s.Dir == "" {
		return "uploads"
	}
	return s.Dir
}
