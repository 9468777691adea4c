package database

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewMinIOConnectionRetriesAtConfiguredInterval(t *testing.T) {
	start := time.Now()

	_, err := NewMinIOConnection(MinIOConnection{
		Endpoint:   "127.0.0.1:1",
		User:       "test",
		Password:   "testtest",
		BucketName: "media",

		RetryCount:    3,
		RetryInterval: 20 * time.Millisecond,
	})

	assert.Error(t, err)
	// three refused connects plus two 20ms waits, nowhere near seconds
	assert.Less(t, time.Since(start), 10*time.Second)
}

func TestObjectNameFromURL(t *testing.T) {
	assert.Equal(t, "images/old.png", ObjectNameFromURL("http://minio:9000/media/images/old.png"))
	assert.Equal(t, "", ObjectNameFromURL(""))
}
