// Package s3 stores rendered PDF artifacts in object storage. Keys are
// deterministic per document, so re-saving overwrites the previous file.
package s3

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	awss3 "github.com/aws/aws-sdk-go/service/s3"
)

// SignedURLTTL bounds how long a share link stays valid.
const SignedURLTTL = 5 * time.Minute

type Client struct {
	api *awss3.S3
}

func NewClient(region, endpoint string) (*Client, error) {
	cfg := &aws.Config{
		Region: aws.String(region),
	}

	if endpoint != "" {
		cfg.Endpoint = aws.String(endpoint)
		cfg.S3ForcePathStyle = aws.Bool(true)
	}

	sess, err := session.NewSession(cfg)
	if err != nil {
		return nil, fmt.Errorf("create aws session: %w", err)
	}

	return &Client{api: awss3.New(sess)}, nil
}

func (c *Client) Upload(ctx context.Context, bucket, key string, body []byte) error {
	_, err := c.api.PutObjectWithContext(ctx, &awss3.PutObjectInput{
		Bucket:      aws.String(bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(body),
		ContentType: aws.String("application/pdf"),
	})

	if err != nil {
		return fmt.Errorf("put %s/%s: %w", bucket, key, err)
	}

	return nil
}

func (c *Client) Download(ctx context.Context, bucket, key string) ([]byte, error) {
	out, err := c.api.GetObjectWithContext(ctx, &awss3.GetObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})

	if err != nil {
		return nil, fmt.Errorf("get %s/%s: %w", bucket, key, err)
	}

	defer out.Body.Close()

	body, err := io.ReadAll(out.Body)
	if err != nil {
		return nil, err
	}

	return body, nil
}

// SignedURL returns a short-lived link for downloading the object without
// credentials.
func (c *Client) SignedURL(_ context.Context, bucket, key string) (string, error) {
	req, _ := c.api.GetObjectRequest(&awss3.GetObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})

	url, err := req.Presign(SignedURLTTL)
	if err != nil {
		return "", fmt.Errorf("presign %s/%s: %w", bucket, key, err)
	}

	return url, nil
}
