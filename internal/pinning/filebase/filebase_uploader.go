package filebase

import (
	"context"
	"errors"
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	"degenlauncher/internal/config"
	"degenlauncher/internal/domain"
	"degenlauncher/internal/pinning"
)

const providerName = "filebase"

// cidMetadataKey is the object metadata key Filebase sets once an object is pinned.
const cidMetadataKey = "cid"

// Uploader implements port.ImageUploader against Filebase's S3-compatible IPFS
// pinning API. Objects are written with PutObject and the resulting CID is read
// back from the object's metadata.
type Uploader struct {
	client   *s3.Client
	uploader *manager.Uploader
	bucket   string
	timeout  time.Duration
}

// NewUploader creates a Filebase uploader from a provider config.
func NewUploader(cfg *config.FilebaseConfig) (*Uploader, error) {
	if !cfg.Enabled() {
		return nil, pinning.NewProviderError(providerName, 0, pinning.ErrNotConfigured)
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(context.Background(),
		awsconfig.WithRegion(cfg.Region),
		awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, ""),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("loading aws config: %w", err)
	}

	var s3Opts []func(*s3.Options)
	if cfg.Endpoint != "" {
		s3Opts = append(s3Opts, func(o *s3.Options) {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		})
	}

	client := s3.NewFromConfig(awsCfg, s3Opts...)
	return &Uploader{
		client:   client,
		uploader: manager.NewUploader(client),
		bucket:   cfg.Bucket,
		timeout:  config.Timeout(cfg.TimeoutSecs),
	}, nil
}

func (u *Uploader) Upload(ctx context.Context, image domain.ImageCandidate) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, u.timeout)
	defer cancel()

	rc, err := image.OpenLimited()
	if err != nil {
		return "", pinning.NewProviderError(providerName, 0, err)
	}
	defer func() { _ = rc.Close() }()

	key := ObjectKey(uuid.New(), image.Name)
	_, err = u.uploader.Upload(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(u.bucket),
		Key:         aws.String(key),
		Body:        rc,
		ContentType: aws.String(image.MediaType),
	})
	if err != nil {
		return "", pinning.NewProviderError(providerName, 0, fmt.Errorf("s3 upload: %w", err))
	}

	head, err := u.client.HeadObject(ctx, &s3.HeadObjectInput{
		Bucket: aws.String(u.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return "", pinning.NewProviderError(providerName, 0, fmt.Errorf("s3 head: %w", err))
	}

	cid := head.Metadata[cidMetadataKey]
	if cid == "" {
		return "", pinning.NewProviderError(providerName, 0, errors.New("object metadata missing cid"))
	}
	return pinning.FilebaseGatewayPrefix + cid, nil
}

// ObjectKey builds a collision-free object key that keeps the original file name.
func ObjectKey(id uuid.UUID, name string) string {
	base := path.Base(strings.ReplaceAll(name, "\\", "/"))
	if base == "." || base == "/" || base == "" {
		base = "image"
	}
	return id.String() + "/" + base
}
