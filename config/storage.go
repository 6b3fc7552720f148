package config

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/url"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

var (
	blobClient  *minio.Client
	blobBucket  string
	publicBase  string
	storageOnce sync.Once
)

// ConnectStorage initializes the S3-compatible blob client used for issue
// media. Like Mongo, storage is part of the live-backend configuration: in
// demo mode (or when S3_ENDPOINT is unset) uploads are skipped.
func ConnectStorage() bool {
	ok := false
	storageOnce.Do(func() {
		endpoint := os.Getenv("S3_ENDPOINT")
		if endpoint == "" {
			log.Println("S3_ENDPOINT not set; media uploads disabled")
			return
		}

		useSSL := strings.EqualFold(os.Getenv("S3_USE_SSL"), "true")
		c, err := minio.New(endpoint, &minio.Options{
			Creds:  credentials.NewStaticV4(os.Getenv("S3_ACCESS_KEY"), os.Getenv("S3_SECRET_KEY"), ""),
			Secure: useSSL,
		})
		if err != nil {
			log.Fatalf("Failed to create blob storage client: %v", err)
		}

		bucket := os.Getenv("S3_BUCKET")
		if bucket == "" {
			bucket = "campusfix-media"
		}

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		exists, err := c.BucketExists(ctx, bucket)
		if err != nil {
			log.Fatalf("Failed to check media bucket: %v", err)
		}
		if !exists {
			if err := c.MakeBucket(ctx, bucket, minio.MakeBucketOptions{}); err != nil {
				log.Fatalf("Failed to create media bucket: %v", err)
			}
		}

		blobClient = c
		blobBucket = bucket
		publicBase = strings.TrimRight(os.Getenv("MEDIA_PUBLIC_BASE_URL"), "/")
		log.Println("Connected to blob storage")
	})
	if blobClient != nil {
		ok = true
	}
	return ok
}

// StorageReady reports whether media uploads are possible
func StorageReady() bool {
	return blobClient != nil
}

// UploadMedia streams one attachment into the media bucket and returns its
// stable retrieval URL. Object keys are namespaced per issue so media for a
// record can be located together.
func UploadMedia(ctx context.Context, objectKey, contentType string, reader io.Reader, size int64) (string, error) {
	if blobClient == nil {
		return "", fmt.Errorf("blob storage not configured")
	}

	opts := minio.PutObjectOptions{ContentType: contentType}
	if _, err := blobClient.PutObject(ctx, blobBucket, objectKey, reader, size, opts); err != nil {
		return "", fmt.Errorf("upload media object: %w", err)
	}

	if publicBase != "" {
		return fmt.Sprintf("%s/%s/%s", publicBase, blobBucket, objectKey), nil
	}

	// No public base configured: fall back to a week-long presigned URL.
	u, err := blobClient.PresignedGetObject(ctx, blobBucket, objectKey, 7*24*time.Hour, url.Values{})
	if err != nil {
		return "", fmt.Errorf("presign media object: %w", err)
	}
	return u.String(), nil
}
