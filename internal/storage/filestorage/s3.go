package filestorage

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// S3FileStorage keeps uploads in an S3 compatible bucket.
type S3FileStorage struct {
	client    *minio.Client
	bucket    string
	publicURL string
}

func NewS3FileStorage(endpoint, accessKey, secretKey, bucket, region, publicURL string, useSSL bool) (*S3FileStorage, error) {
	const op = "filestorage.NewS3FileStorage"

	endpoint = strings.TrimPrefix(endpoint, "https://")
	endpoint = strings.TrimPrefix(endpoint, "http://")

	var creds *credentials.Credentials
	if accessKey == "" || secretKey == "" {
		creds = credentials.NewIAM("")
	} else {
		creds = credentials.NewStaticV4(accessKey, secretKey, "")
	}

	client, err := minio.New(endpoint, &minio.Options{
		Creds:  creds,
		Secure: useSSL,
		Region: region,
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if publicURL == "" {
		scheme := "http"
		if useSSL {
			scheme = "https"
		}
		publicURL = fmt.Sprintf("%s://%s/%s", scheme, endpoint, bucket)
	}

	return &S3FileStorage{
		client:    client,
		bucket:    bucket,
		publicURL: strings.TrimSuffix(publicURL, "/"),
	}, nil
}

func (s *S3FileStorage) Save(ctx context.Context, name string, src io.Reader, size int64, contentType string) (string, int64, error) {
	const op = "filestorage.S3FileStorage.Save"

	key := path.Base(name)

	info, err := s.client.PutObject(ctx, s.bucket, key, src, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", 0, fmt.Errorf("%s: %w", op, err)
	}

	return s.publicURL + "/" + key, info.Size, nil
}

func (s *S3FileStorage) Delete(ctx context.Context, publicPath string) error {
	const op = "filestorage.S3FileStorage.Delete"

	if err := s.client.RemoveObject(ctx, s.bucket, path.Base(publicPath), minio.RemoveObjectOptions{}); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (s *S3FileStorage) BaseURL() string {
	return s.publicURL
}
