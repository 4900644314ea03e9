package storage

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"strings"

	"serene/config"

	"github.com/aliyun/aliyun-oss-go-sdk/oss"
)

// OSSStore stores objects in an Aliyun OSS bucket. Certificate documents are
// uploaded with ForbidOverWrite so an existing object at the same key makes
// the upload fail instead of silently replacing the document.
type OSSStore struct {
	client     *oss.Client
	bucket     *oss.Bucket
	endpoint   string
	bucketName string
	publicBase string
	prefix     string
}

// NewOSSStoreFromConfig builds the store from AppConfig (OSS_* variables).
func NewOSSStoreFromConfig() (*OSSStore, error) {
	cfg := config.AppConfig
	if cfg.OSSEndpoint == "" || cfg.OSSAccessKey == "" || cfg.OSSSecretKey == "" || cfg.OSSBucket == "" {
		return nil, fmt.Errorf("missing env: OSS_ENDPOINT/OSS_ACCESS_KEY/OSS_SECRET_KEY/OSS_BUCKET")
	}

	client, err := oss.New(cfg.OSSEndpoint, cfg.OSSAccessKey, cfg.OSSSecretKey)
	if err != nil {
		return nil, fmt.Errorf("oss.New: %w", err)
	}

	bucket, err := client.Bucket(cfg.OSSBucket)
	if err != nil {
		return nil, fmt.Errorf("client.Bucket: %w", err)
	}

	if loc, err := client.GetBucketLocation(cfg.OSSBucket); err != nil {
		if se, ok := err.(oss.ServiceError); ok && se.StatusCode == 403 && se.Code == "AccessDenied" {
			log.Printf("[OSS] warn: skip location check due to AccessDenied (bucket=%s). Continuing.", cfg.OSSBucket)
		} else {
			return nil, fmt.Errorf("verify bucket: %w", err)
		}
	} else {
		log.Printf("[OSS] bucket %s location: %s", cfg.OSSBucket, loc)
	}

	return &OSSStore{
		client:     client,
		bucket:     bucket,
		endpoint:   cfg.OSSEndpoint,
		bucketName: cfg.OSSBucket,
		publicBase: cfg.OSSPublicBase,
		prefix:     strings.Trim(cfg.OSSPrefix, "/"),
	}, nil
}

func (s *OSSStore) objectKey(key string) string {
	if s.prefix == "" {
		return key
	}
	return s.prefix + "/" + key
}

func (s *OSSStore) Put(ctx context.Context, key string, body []byte, contentType string) error {
	if key == "" {
		return fmt.Errorf("empty key")
	}
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	err := s.bucket.PutObject(s.objectKey(key), bytes.NewReader(body),
		oss.WithContext(ctx),
		oss.ContentType(contentType),
		oss.ContentDisposition("inline"),
		oss.ForbidOverWrite(true),
	)
	if se, ok := err.(oss.ServiceError); ok && se.Code == "FileAlreadyExists" {
		return ErrObjectExists
	}
	return err
}

func (s *OSSStore) PublicURL(key string) string {
	if key == "" {
		return ""
	}
	full := s.objectKey(key)
	if s.publicBase != "" {
		return strings.TrimRight(s.publicBase, "/") + "/" + full
	}
	end := s.endpoint
	end = strings.TrimPrefix(end, "https://")
	end = strings.TrimPrefix(end, "http://")
	return fmt.Sprintf("https://%s.%s/%s", s.bucketName, end, full)
}

func (s *OSSStore) List(ctx context.Context, prefix string) ([]ObjectInfo, error) {
	var infos []ObjectInfo
	marker := ""
	for {
		res, err := s.bucket.ListObjects(
			oss.WithContext(ctx),
			oss.Prefix(s.objectKey(prefix)),
			oss.Marker(marker),
		)
		if err != nil {
			return nil, err
		}
		for _, obj := range res.Objects {
			key := obj.Key
			if s.prefix != "" {
				key = strings.TrimPrefix(key, s.prefix+"/")
			}
			infos = append(infos, ObjectInfo{Key: key, LastModified: obj.LastModified})
		}
		if !res.IsTruncated {
			return infos, nil
		}
		marker = res.NextMarker
	}
}

func (s *OSSStore) Delete(ctx context.Context, key string) error {
	return s.bucket.DeleteObject(s.objectKey(key), oss.WithContext(ctx))
}
