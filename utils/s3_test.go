package utils

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewS3Uploader_NoBucket(t *testing.T) {
	u, err := NewS3Uploader(context.Background(), "us-east-1", "")
	assert.Error(t, err)
	assert.Nil(t, u)
}
