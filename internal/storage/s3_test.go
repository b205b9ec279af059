package storage

import (
	"context"
	"net/url"
	"strings"
	"testing"
	"time"

	"alcyxob/exercise-tracker/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestPresignedDownloadURL(t *testing.T) {
	ctx := context.Background()
	store, err := NewS3Storage(ctx, config.S3Config{
		Endpoint:        "http://minio.local:9000",
		Region:          "us-east-1",
		AccessKeyID:     "AKIDEXAMPLE",
		SecretAccessKey: "secret",
		BucketName:      "landing",
	}, zap.NewNop())
	require.NoError(t, err)

	raw, err := store.GeneratePresignedDownloadURL(ctx, "views/index.html", 5*time.Minute)
	require.NoError(t, err)

	u, err := url.Parse(raw)
	require.NoError(t, err)
	assert.Equal(t, "minio.local:9000", u.Host)
	assert.Equal(t, "/landing/views/index.html", u.Path)
	assert.Equal(t, "300", u.Query().Get("X-Amz-Expires"))
	assert.True(t, strings.HasPrefix(u.Query().Get("X-Amz-Credential"), "AKIDEXAMPLE/"))
}
