package analytics

import (
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog/log"
)

// Client sends product analytics events to an HTTP sink. It is strictly
// best-effort: delivery happens off the request goroutine, every failure is
// swallowed after a debug log, and a nil *Client is a valid no-op sink.
type Client struct {
	httpClient *resty.Client
}

type event struct {
	Event      string         `json:"event"`
	Properties map[string]any `json:"properties,omitempty"`
	Timestamp  time.Time      `json:"timestamp"`
}

// New returns a client for the given sink, or nil when the endpoint or key is
// missing, which disables analytics without affecting request handling.
func New(endpoint, key string) *Client {
	if endpoint == "" || key == "" {
		return nil
	}
	httpClient := resty.New().
		SetBaseURL(endpoint).
		SetHeader("Authorization", "Bearer "+key).
		SetHeader("Content-Type", "application/json").
		SetTimeout(5 * time.Second)
	return &Client{httpClient: httpClient}
}

// Capture emits one event without blocking the caller. Errors never reach the
// call site.
func (c *Client) Capture(name string, props map[string]any) {
	if c == nil {
		return
	}
	ev := event{Event: name, Properties: props, Timestamp: time.Now().UTC()}
	go func() {
		defer func() {
			if r := recover(); r != nil {
				log.Debug().Interface("panic", r).Str("event", name).Msg("analytics capture panicked")
			}
		}()
		resp, err := c.httpClient.R().SetBody(ev).Post("")
		if err != nil {
			log.Debug().Err(err).Str("event", name).Msg("analytics capture failed")
			return
		}
		if resp.IsError() {
			log.Debug().Int("status", resp.StatusCode()).Str("event", name).Msg("analytics sink rejected event")
		}
	}()
}
