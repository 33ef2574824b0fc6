package memory

import (
	"context"
	"sync"
	"time"
)

const sessionTTL = 30 * 24 * time.Hour

// authSentinel is the stored auth flag value; anything else means not logged in.
const authSentinel = "true"

type item struct {
	val string
	exp time.Time
}

// Client is the in-memory SessionStore for -dev mode: sessions are lost on
// restart, which matches the original demo's behavior on a cleared browser.
type Client struct {
	mu    sync.RWMutex
	items map[string]item
}

func New() *Client {
	return &Client{items: make(map[string]item)}
}

func (c *Client) Close() error { return nil }

func (c *Client) set(key, val string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items[key] = item{val: val, exp: time.Now().Add(sessionTTL)}
}

func (c *Client) get(key string) string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	v, ok := c.items[key]
	if !ok || time.Now().After(v.exp) {
		return ""
	}
	return v.val
}

func (c *Client) SetRole(ctx context.Context, sessionID, role string) error {
	c.set("alertlink-user-role:"+sessionID, role)
	return nil
}

func (c *Client) GetRole(ctx context.Context, sessionID string) (string, error) {
	return c.get("alertlink-user-role:" + sessionID), nil
}

func (c *Client) SetAuth(ctx context.Context, sessionID string) error {
	c.set("alertlink-auth:"+sessionID, authSentinel)
	return nil
}

func (c *Client) IsAuthed(ctx context.Context, sessionID string) (bool, error) {
	return c.get("alertlink-auth:"+sessionID) == authSentinel, nil
}

func (c *Client) SetLanguage(ctx context.Context, sessionID, lang string) error {
	c.set("app-language:"+sessionID, lang)
	return nil
}

func (c *Client) GetLanguage(ctx context.Context, sessionID string) (string, error) {
	return c.get("app-language:" + sessionID), nil
}

func (c *Client) Clear(ctx context.Context, sessionID string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.items, "alertlink-user-role:"+sessionID)
	delete(c.items, "alertlink-auth:"+sessionID)
	delete(c.items, "app-language:"+sessionID)
	return nil
}
