package config

import (
	"os"
	"sync"
)

type UploadConfig struct {
	Dir       string
	MaxSizeMB int64
}

var (
	uploadConfig *UploadConfig
	uploadOnce   sync.Once
)

func LoadUploadConfig() *UploadConfig {
	uploadOnce.Do(func() {
		dir := os.Getenv("UPLOADS_DIR")
		if dir == "" {
			dir = "./uploads/cv"
		}
		uploadConfig = &UploadConfig{
			Dir:       dir,
			MaxSizeMB: 10,
		}
	})
	return uploadConfig
}
