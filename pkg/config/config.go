package config

import "time"

// VideoLibrary definition video_library YAML structure
type VideoLibrary struct {
	Port string `mapstructure:"port"`

	Mongo  DatabaseConfig `mapstructure:"mongo"`
	MinIO  MinIOConfig    `mapstructure:"minio"`
	Auth   AuthConfig     `mapstructure:"auth"`
	Limits LimitConfig    `mapstructure:"limits"`
}

// DatabaseConfig definition db setting
type DatabaseConfig struct {
	Host          string `mapstructure:"host"`
	Port          int    `mapstructure:"port"`
	User          string `mapstructure:"user"`
	Password      string `mapstructure:"password"`
	Database      string `mapstructure:"database"`
	RetryInterval int    `mapstructure:"retry_interval"`
	RetryCount    int    `mapstructure:"retry_count"`
}

// MinIOConfig definition media object storage setting
type MinIOConfig struct {
	Endpoint      string        `mapstructure:"endpoint"`
	User          string        `mapstructure:"user"`
	Password      string        `mapstructure:"password"`
	Bucket        string        `mapstructure:"bucket"`
	UseSSL        bool          `mapstructure:"use_ssl"`
	PresignTTL    time.Duration `mapstructure:"presign_ttl"`
	RetryInterval int           `mapstructure:"retry_interval"`
	RetryCount    int           `mapstructure:"retry_count"`
}

// AuthConfig definition access/refresh token setting
type AuthConfig struct {
	AccessSecret  string        `mapstructure:"access_secret"`
	RefreshSecret string        `mapstructure:"refresh_secret"`
	AccessTTL     time.Duration `mapstructure:"access_ttl"`
	RefreshTTL    time.Duration `mapstructure:"refresh_ttl"`
}

// LimitConfig definition request body and upload limit
type LimitConfig struct {
	BodyLimit   int    `mapstructure:"body_limit"`
	UploadLimit int    `mapstructure:"upload_limit"`
	TmpDir      string `mapstructure:"tmp_dir"`
}
