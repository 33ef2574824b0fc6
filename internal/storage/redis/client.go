package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Session keys live 30 days; the key names mirror the browser local-storage
// keys of the original client.
const sessionTTL = 30 * 24 * 3600

const authSentinel = "true"

type Client struct {
	cli *redis.Client
}

func New(ctx context.Context, url string) (*Client, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("redis parse url: %w", err)
	}
	cli := redis.NewClient(opts)
	if err := cli.Ping(ctx).Err(); err != nil {
		if closeErr := cli.Close(); closeErr != nil {
			return nil, fmt.Errorf("redis ping: %w (close: %v)", err, closeErr)
		}
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	return &Client{cli: cli}, nil
}

func (c *Client) Close() error {
	return c.cli.Close()
}

func (c *Client) getStr(ctx context.Context, key string) (string, error) {
	val, err := c.cli.Get(ctx, key).Result()
	if err == redis.Nil {
		return "", nil
	}
	return val, err
}

func (c *Client) SetRole(ctx context.Context, sessionID, role string) error {
	return c.cli.Set(ctx, "alertlink-user-role:"+sessionID, role, sessionTTL*time.Second).Err()
}

func (c *Client) GetRole(ctx context.Context, sessionID string) (string, error) {
	return c.getStr(ctx, "alertlink-user-role:"+sessionID)
}

func (c *Client) SetAuth(ctx context.Context, sessionID string) error {
	return c.cli.Set(ctx, "alertlink-auth:"+sessionID, authSentinel, sessionTTL*time.Second).Err()
}

func (c *Client) IsAuthed(ctx context.Context, sessionID string) (bool, error) {
	val, err := c.getStr(ctx, "alertlink-auth:"+sessionID)
	if err != nil {
		return false, err
	}
	return val == authSentinel, nil
}

func (c *Client) SetLanguage(ctx context.Context, sessionID, lang string) error {
	return c.cli.Set(ctx, "app-language:"+sessionID, lang, sessionTTL*time.Second).Err()
}

func (c *Client) GetLanguage(ctx context.Context, sessionID string) (string, error) {
	return c.getStr(ctx, "app-language:"+sessionID)
}

func (c *Client) Clear(ctx context.Context, sessionID string) error {
	return c.cli.Del(ctx,
		"alertlink-user-role:"+sessionID,
		"alertlink-auth:"+sessionID,
		"app-language:"+sessionID,
	).Err()
}
