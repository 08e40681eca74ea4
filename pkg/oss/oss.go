// Package oss is the blob-storage collaborator. The catalog core only ever
// keeps the opaque object keys returned from here; raw bytes never cross
// into the query/engagement engine.
package oss

import (
	"context"
	"fmt"
	"io"
	"path"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
)

const (
	videoBucket     = "videos"
	thumbnailBucket = "thumbnails"
	bucketRegion    = "us-east-1"
)

func ensureBucket(ctx context.Context, bucketName string) error {
	exists, err := minioClient.BucketExists(ctx, bucketName)
	if err != nil {
		return fmt.Errorf("check bucket error: %w", err)
	}
	if !exists {
		err = minioClient.MakeBucket(ctx, bucketName, minio.MakeBucketOptions{Region: bucketRegion})
		if err != nil {
			return fmt.Errorf("create bucket error: %w", err)
		}
	}
	return nil
}

// UploadVideo stores the media bytes under a fresh uuid key and returns the
// key for the video row.
func UploadVideo(ctx context.Context, reader io.Reader, size int64, contentType, ext string) (string, error) {
	if err := ensureBucket(ctx, videoBucket); err != nil {
		return "", err
	}
	objectName := uuid.New().String() + ext
	_, err := minioClient.PutObject(ctx, videoBucket, objectName, reader, size,
		minio.PutObjectOptions{ContentType: contentType})
	if err != nil {
		return "", fmt.Errorf("upload video error: %w", err)
	}
	return objectName, nil
}

func UploadThumbnail(ctx context.Context, reader io.Reader, size int64, contentType string) (string, error) {
	if err := ensureBucket(ctx, thumbnailBucket); err != nil {
		return "", err
	}
	var ext string
	switch contentType {
	case "image/jpeg", "image/jpg":
		ext = ".jpg"
	case "image/png":
		ext = ".png"
	default:
		return "", fmt.Errorf("unsupported image format: %s", contentType)
	}
	objectName := uuid.New().String() + ext
	_, err := minioClient.PutObject(ctx, thumbnailBucket, objectName, reader, size,
		minio.PutObjectOptions{ContentType: contentType})
	if err != nil {
		return "", fmt.Errorf("upload thumbnail error: %w", err)
	}
	return objectName, nil
}

// RemoveVideoObjects deletes the stored media for a video row. Missing
// objects are not an error, removal is best effort on each key.
func RemoveVideoObjects(ctx context.Context, videoPath, thumbnailPath string) error {
	var firstErr error
	if videoPath != "" {
		if err := minioClient.RemoveObject(ctx, videoBucket, videoPath, minio.RemoveObjectOptions{}); err != nil {
			firstErr = err
		}
	}
	if thumbnailPath != "" {
		if err := minioClient.RemoveObject(ctx, thumbnailBucket, thumbnailPath, minio.RemoveObjectOptions{}); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

// VideoURL renders the public location for an object key.
func VideoURL(objectName string) string {
	if objectName == "" {
		return ""
	}
	return "/" + path.Join("media", "videos", objectName)
}

func ThumbnailURL(objectName string) string {
	if objectName == "" {
		return ""
	}
	return "/" + path.Join("media", "thumbnails", objectName)
}
