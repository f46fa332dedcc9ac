package queue

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/hibiken/asynq"

	"github.com/Paintballskaguy/atlas-atlas-files-manager/internal/config"
)

// TypeThumbnail is the task type consumed by the thumbnail worker.
const TypeThumbnail = "file:thumbnail"

// ThumbnailPayload identifies the image to render thumbnails for.
type ThumbnailPayload struct {
	UserID string `json:"userId"`
	FileID string `json:"fileId"`
}

// NewThumbnailTask builds a thumbnail task. Failed tasks are not retried.
func NewThumbnailTask(userID, fileID string) (*asynq.Task, error) {
	b, err := json.Marshal(ThumbnailPayload{UserID: userID, FileID: fileID})
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypeThumbnail, b, asynq.MaxRetry(0)), nil
}

// ParseThumbnailPayload decodes the payload of a thumbnail task.
func ParseThumbnailPayload(t *asynq.Task) (ThumbnailPayload, error) {
	var p ThumbnailPayload
	if err := json.Unmarshal(t.Payload(), &p); err != nil {
		return p, fmt.Errorf("decode thumbnail payload: %w", err)
	}
	return p, nil
}

// Enqueuer publishes thumbnail jobs.
type Enqueuer interface {
	EnqueueThumbnail(ctx context.Context, userID, fileID string) error
}

// RedisOpt converts Redis settings into asynq connection options.
func RedisOpt(cfg config.RedisConfig) asynq.RedisClientOpt {
	return asynq.RedisClientOpt{
		Addr:     cfg.Addr(),
		Password: cfg.Password,
		DB:       cfg.DB,
	}
}

// Client enqueues jobs onto a named asynq queue.
type Client struct {
	client *asynq.Client
	queue  string
}

var _ Enqueuer = (*Client)(nil)

// NewClient connects lazily to the queue's Redis server.
func NewClient(cfg config.QueueConfig) *Client {
	return &Client{
		client: asynq.NewClient(RedisOpt(cfg.Redis)),
		queue:  cfg.Name,
	}
}

func (c *Client) EnqueueThumbnail(ctx context.Context, userID, fileID string) error {
	task, err := NewThumbnailTask(userID, fileID)
	if err != nil {
		return err
	}
	if _, err := c.client.EnqueueContext(ctx, task, asynq.Queue(c.queue)); err != nil {
		return fmt.Errorf("enqueue thumbnail task: %w", err)
	}
	return nil
}

func (c *Client) Close() error {
	return c.client.Close()
}
