// Package s3 implements blob storage for uploaded employer logos on top of
// an S3 bucket.
package s3

import (
	"bytes"
	"context"
	"fmt"
	"path"
	"regexp"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	"github.com/studentjobsgroningen/site-services/api/internal/employer/application"
)

type api interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// LogoStore uploads logo images to an S3 bucket and returns their public URL.
type LogoStore struct {
	client       api
	bucket       string
	region       string
	mediaBaseURL string
}

// NewLogoStore builds a store writing to the given bucket. mediaBaseURL, when
// set, is used as the public URL prefix (a CDN in front of the bucket);
// otherwise the bucket's own virtual-hosted URL is used.
func NewLogoStore(cfg aws.Config, bucket, mediaBaseURL string) *LogoStore {
	return &LogoStore{
		client:       s3.NewFromConfig(cfg),
		bucket:       bucket,
		region:       cfg.Region,
		mediaBaseURL: strings.TrimRight(strings.TrimSpace(mediaBaseURL), "/"),
	}
}

var slugPattern = regexp.MustCompile(`[^a-z0-9]+`)

// Upload stores the logo under logos/<company-slug>/<uuid><ext> and returns
// the publicly resolvable URL.
func (s *LogoStore) Upload(ctx context.Context, upload application.LogoUpload) (string, error) {
	if s.bucket == "" {
		return "", fmt.Errorf("logo bucket is not configured")
	}

	key := fmt.Sprintf("logos/%s/%s%s", companySlug(upload.Company), uuid.NewString(), strings.ToLower(path.Ext(upload.Filename)))

	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:       aws.String(s.bucket),
		Key:          aws.String(key),
		Body:         bytes.NewReader(upload.Data),
		ContentType:  aws.String(upload.ContentType),
		CacheControl: aws.String("public, max-age=31536000"),
	})
	if err != nil {
		return "", fmt.Errorf("put logo object: %w", err)
	}

	return s.publicURL(key), nil
}

func (s *LogoStore) publicURL(key string) string {
	if s.mediaBaseURL != "" {
		return s.mediaBaseURL + "/" + key
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.bucket, s.region, key)
}

func companySlug(company string) string {
	slug := slugPattern.ReplaceAllString(strings.ToLower(strings.TrimSpace(company)), "-")
	slug = strings.Trim(slug, "-")
	if slug == "" {
		return "company"
	}
	return slug
}
