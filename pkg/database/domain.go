package database

import (
	"context"
	"io"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
)

// Connection definition db setting
type Connection struct {
	ConnectStr string

	RetryCount    int
	RetryInterval time.Duration
}

// MongoDB definition mongo db
type MongoDB struct {
	Client   *mongo.Client
	Database *mongo.Database
}

// MinIOClientRepo definition media store operations
type MinIOClientRepo interface {
	UploadFile(ctx context.Context, objectName, filePath, contentType string) error
	UploadReader(ctx context.Context, objectName string, r io.Reader, size int64, contentType string) error
	DownloadFile(ctx context.Context, objectName, destPath string) error
	RemoveFile(ctx context.Context, objectName string) error
	PresignGetURL(ctx context.Context, objectName string, expiry time.Duration) (string, error)
	ObjectURL(objectName string) string
}

// FileUpload carries an incoming multipart file
type FileUpload struct {
	FileName    string
	ContentType string
	Size        int64
	File        io.Reader
}

// MinIOConnection definition minio
type MinIOConnection struct {
	Endpoint   string
	User       string
	Password   string
	BucketName string
	UseSSL     bool

	RetryCount    int
	RetryInterval time.Duration
}
