package publish

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/storywire/storywire/internal/config"
	"github.com/storywire/storywire/internal/logger"
	"github.com/storywire/storywire/internal/models"
)

// Publisher uploads selected stories so downstream renderers can pick them
// up. Publishing is best-effort: a failed upload never fails a run.
type Publisher struct {
	client *s3.Client
	bucket string
	prefix string
}

// New creates a publisher against the configured bucket. S3-compatible
// stores are supported through AWS_ENDPOINT_URL_S3 and path-style
// addressing; static credentials from the environment take priority over
// the default chain.
func New(ctx context.Context, cfg *config.Config) (*Publisher, error) {
	if cfg.S3Bucket == "" {
		return nil, fmt.Errorf("no bucket configured")
	}

	loadOpts := []func(*awsconfig.LoadOptions) error{}
	if cfg.S3Region != "" {
		loadOpts = append(loadOpts, awsconfig.WithRegion(cfg.S3Region))
	}
	if key, secret := os.Getenv("S3_ACCESS_KEY_ID"), os.Getenv("S3_SECRET_ACCESS_KEY"); key != "" && secret != "" {
		loadOpts = append(loadOpts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(key, secret, ""),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.UsePathStyle = cfg.S3UsePathStyle
		if endpoint := os.Getenv("AWS_ENDPOINT_URL_S3"); endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
		}
	})

	return &Publisher{
		client: client,
		bucket: cfg.S3Bucket,
		prefix: cfg.S3Prefix,
	}, nil
}

// PublishStories uploads each story as a pretty-printed JSON object under
// <prefix>stories/<id>.json. Individual upload failures are logged and
// counted, not propagated.
func (p *Publisher) PublishStories(ctx context.Context, stories []models.SelectedStory) int {
	published := 0
	for _, story := range stories {
		if err := p.publishOne(ctx, story); err != nil {
			logger.Warn().Err(err).Str("story", story.ID).Msg("Failed to publish story")
			continue
		}
		published++
	}
	return published
}

func (p *Publisher) publishOne(ctx context.Context, story models.SelectedStory) error {
	body, err := json.MarshalIndent(story, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal story %s: %w", story.ID, err)
	}

	key := fmt.Sprintf("%sstories/%s.json", p.prefix, story.ID)
	_, err = p.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(p.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(body),
		ContentType: aws.String("application/json"),
	})
	if err != nil {
		return fmt.Errorf("failed to upload %s: %w", key, err)
	}

	logger.Info().Str("bucket", p.bucket).Str("key", key).Msg("Published story")
	return nil
}
