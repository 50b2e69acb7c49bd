package media_storage

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/khoahotran/portfolio-showcase/internal/config"
	"github.com/khoahotran/portfolio-showcase/pkg/logger"
)

type fakeS3 struct {
	objects map[string][]byte
	err     error
}

func (f *fakeS3) PutObject(_ context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	if f.err != nil {
		return nil, f.err
	}
	body, err := io.ReadAll(in.Body)
	if err != nil {
		return nil, err
	}
	f.objects[aws.ToString(in.Key)] = body
	return &s3.PutObjectOutput{}, nil
}

func (f *fakeS3) DeleteObject(_ context.Context, in *s3.DeleteObjectInput, _ ...func(*s3.Options)) (*s3.DeleteObjectOutput, error) {
	delete(f.objects, aws.ToString(in.Key))
	return &s3.DeleteObjectOutput{}, nil
}

func TestS3Adapter_Upload(t *testing.T) {
	fake := &fakeS3{objects: map[string][]byte{}}
	a := &s3Adapter{client: fake, bucket: "portfolio", publicURL: "https://cdn.example.com/", logger: logger.NewNop()}

	url, err := a.Upload(context.Background(), bytes.NewReader([]byte("img")), "profile/", "p1.jpg")
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/profile/p1.jpg", url)
	assert.Equal(t, []byte("img"), fake.objects["profile/p1.jpg"])

	a.publicURL = ""
	url, err = a.Upload(context.Background(), bytes.NewReader(nil), "", "raw.bin")
	require.NoError(t, err)
	assert.Equal(t, "s3://portfolio/raw.bin", url)

	require.NoError(t, a.Delete(context.Background(), "raw.bin"))
	assert.NotContains(t, fake.objects, "raw.bin")
}

func TestS3Adapter_UploadError(t *testing.T) {
	a := &s3Adapter{client: &fakeS3{err: errors.New("denied")}, bucket: "b", logger: logger.NewNop()}
	_, err := a.Upload(context.Background(), bytes.NewReader(nil), "f", "k")
	assert.Error(t, err)
}

func TestLocalAdapter(t *testing.T) {
	dir := t.TempDir()
	up, err := NewLocalAdapter(filepath.Join(dir, "images"))
	require.NoError(t, err)

	path, err := up.Upload(context.Background(), bytes.NewReader([]byte("jpeg")), "ignored", "profile_1.jpg")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "images", "profile_1.jpg"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, []byte("jpeg"), data)

	require.NoError(t, up.Delete(context.Background(), "profile_1.jpg"))
	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err))
	assert.NoError(t, up.Delete(context.Background(), "profile_1.jpg"))
}

func TestNewUploader(t *testing.T) {
	var cfg config.Config
	cfg.App.ImagesDir = t.TempDir()

	up, err := NewUploader(context.Background(), cfg, logger.NewNop())
	require.NoError(t, err)
	assert.IsType(t, &localAdapter{}, up)

	cfg.Uploader.Provider = config.UploaderCloudinary
	_, err = NewUploader(context.Background(), cfg, logger.NewNop())
	assert.Error(t, err)

	cfg.Uploader.Provider = "ftp"
	_, err = NewUploader(context.Background(), cfg, logger.NewNop())
	assert.Error(t, err)
}
