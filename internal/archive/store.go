// Package archive stores tar.gz snapshots of generated site templates in
// S3-compatible object storage. Archiving is best-effort: provisioning
// succeeds without it.
package archive

import (
	"archive/tar"
	"bytes"
	"compress/gzip"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// Store uploads template snapshots to a single bucket.
type Store struct {
	client *s3.Client
	bucket string
}

// NewStore creates a Store against an S3-compatible endpoint.
func NewStore(endpoint, region, bucket, accessKey, secretKey string) *Store {
	return &Store{
		client: s3.New(s3.Options{
			BaseEndpoint: aws.String(endpoint),
			Region:       region,
			Credentials:  credentials.NewStaticCredentialsProvider(accessKey, secretKey, ""),
			UsePathStyle: true,
		}),
		bucket: bucket,
	}
}

// ArchiveDir packs dir into a tar.gz and uploads it under the site name.
// Returns the object key.
func (s *Store) ArchiveDir(ctx context.Context, siteName, dir string) (string, error) {
	var buf bytes.Buffer
	if err := packDir(&buf, dir); err != nil {
		return "", fmt.Errorf("pack template dir: %w", err)
	}

	key := fmt.Sprintf("templates/%s/%s.tar.gz", siteName, time.Now().UTC().Format("20060102T150405Z"))
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(buf.Bytes()),
		ContentType: aws.String("application/gzip"),
	})
	if err != nil {
		return "", fmt.Errorf("upload template archive %s: %w", key, err)
	}
	return key, nil
}

func packDir(w io.Writer, dir string) error {
	gz := gzip.NewWriter(w)
	tw := tar.NewWriter(gz)

	err := filepath.WalkDir(dir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}
		info, err := d.Info()
		if err != nil {
			return err
		}
		hdr, err := tar.FileInfoHeader(info, "")
		if err != nil {
			return err
		}
		hdr.Name = filepath.ToSlash(rel)
		if err := tw.WriteHeader(hdr); err != nil {
			return err
		}
		f, err := os.Open(path)
		if err != nil {
			return err
		}
		defer f.Close()
		_, err = io.Copy(tw, f)
		return err
	})
	if err != nil {
		return err
	}
	if err := tw.Close(); err != nil {
		return err
	}
	return gz.Close()
}
