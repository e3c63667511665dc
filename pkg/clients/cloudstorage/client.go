package cloudstorage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"cloud.google.com/go/storage"
	"github.com/estafette/estafette-ci-relay/pkg/api"
	"google.golang.org/api/option"
)

var (
	// ErrObjectNotExist is returned when an artifact cannot be found in the bucket
	ErrObjectNotExist = errors.New("The object does not exist")
)

// Client is the interface for reading prow artifacts from google cloud storage
//
//go:generate mockgen -package=cloudstorage -destination ./mock.go -source=client.go
type Client interface {
	GetObject(ctx context.Context, bucket, objectPath string) (data []byte, err error)
	GetJSON(ctx context.Context, bucket, objectPath string, v interface{}) (err error)
}

// NewStorageClient creates the underlying storage client; public buckets are read without credentials
func NewStorageClient(ctx context.Context, config *api.Config) (*storage.Client, error) {
	if config != nil && config.CloudStorage != nil && config.CloudStorage.Authenticated {
		return storage.NewClient(ctx)
	}

	return storage.NewClient(ctx, option.WithoutAuthentication())
}

// NewClient returns new cloudstorage.Client
func NewClient(storageClient *storage.Client) Client {
	return &client{
		client: storageClient,
	}
}

type client struct {
	client *storage.Client
}

func (c *client) GetObject(ctx context.Context, bucket, objectPath string) (data []byte, err error) {

	reader, err := c.client.Bucket(bucket).Object(objectPath).NewReader(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrObjectNotExist) {
			return nil, fmt.Errorf("gs://%v/%v: %w", bucket, objectPath, ErrObjectNotExist)
		}
		return nil, fmt.Errorf("failed opening gs://%v/%v: %w", bucket, objectPath, err)
	}
	defer reader.Close()

	data, err = io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("failed reading gs://%v/%v: %w", bucket, objectPath, err)
	}

	return data, nil
}

func (c *client) GetJSON(ctx context.Context, bucket, objectPath string, v interface{}) (err error) {

	data, err := c.GetObject(ctx, bucket, objectPath)
	if err != nil {
		return err
	}

	if err = json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("failed unmarshalling gs://%v/%v: %w", bucket, objectPath, err)
	}

	return nil
}
