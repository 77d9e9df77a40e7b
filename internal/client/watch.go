package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	ws "groupadmin/server/internal/websocket"

	"github.com/cenkalti/backoff/v4"
	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
)

const (
	pongWait   = 60 * time.Second
	pingPeriod = 30 * time.Second
	writeWait  = 10 * time.Second

	reconnectInitial = 500 * time.Millisecond
	reconnectMax     = 30 * time.Second
)

var errStreamClosed = errors.New("event stream closed by server")

// Event is one change notification pushed by the server
type Event struct {
	Type      ws.EventType    `json:"type"`
	Payload   json.RawMessage `json:"payload"`
	Timestamp time.Time       `json:"timestamp"`
}

// Decode unmarshals the payload into v
func (e Event) Decode(v interface{}) error {
	return json.Unmarshal(e.Payload, v)
}

// Changed reports whether the event means the group table is stale
func (e Event) Changed() bool {
	switch e.Type {
	case ws.EventGroupCreated, ws.EventGroupUpdated, ws.EventGroupRemoved, ws.EventGroupFlagChanged:
		return true
	}
	return false
}

// WatchURL returns the websocket address of the event stream
func (c *Client) WatchURL() string {
	u := c.BaseURL
	switch {
	case strings.HasPrefix(u, "https://"):
		u = "wss://" + strings.TrimPrefix(u, "https://")
	case strings.HasPrefix(u, "http://"):
		u = "ws://" + strings.TrimPrefix(u, "http://")
	}
	return u + apiPrefix + "/ws"
}

// Watch subscribes to group change events and calls fn for each one until
// ctx is cancelled or the connection drops
func (c *Client) Watch(ctx context.Context, fn func(Event)) error {
	header := http.Header{}
	if token := c.Token(); token != "" {
		header.Set("Authorization", "Bearer "+token)
	}

	conn, resp, err := websocket.DefaultDialer.DialContext(ctx, c.WatchURL(), header)
	if err != nil {
		if resp != nil {
			return &APIError{Status: resp.StatusCode, Message: err.Error()}
		}
		return fmt.Errorf("failed to connect to %s: %w", c.WatchURL(), err)
	}
	defer conn.Close()

	done := make(chan struct{})
	defer close(done)
	go keepAlive(ctx, conn, done)

	conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			if websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				return nil
			}
			return err
		}

		var ev Event
		if err := json.Unmarshal(data, &ev); err != nil {
			logrus.WithError(err).Warn("Dropping malformed event")
			continue
		}
		fn(ev)
	}
}

// keepAlive pings the server and closes the connection once ctx ends
func keepAlive(ctx context.Context, conn *websocket.Conn, done <-chan struct{}) {
	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if err := conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeWait)); err != nil {
				return
			}
		case <-ctx.Done():
			conn.WriteControl(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
				time.Now().Add(writeWait))
			conn.Close()
			return
		case <-done:
			return
		}
	}
}

// Subscribe keeps Watch running until ctx ends, reconnecting with exponential
// backoff whenever the stream drops. A rejected token stops it.
func (c *Client) Subscribe(ctx context.Context, fn func(Event)) error {
	b := backoff.NewExponentialBackOff(
		backoff.WithInitialInterval(reconnectInitial),
		backoff.WithMaxInterval(reconnectMax),
		backoff.WithMaxElapsedTime(0),
	)

	err := backoff.RetryNotify(func() error {
		err := c.Watch(ctx, fn)
		switch {
		case ctx.Err() != nil:
			return backoff.Permanent(ctx.Err())
		case errors.Is(err, ErrUnauthorized):
			return backoff.Permanent(err)
		case err == nil:
			return errStreamClosed
		}
		return err
	}, backoff.WithContext(b, ctx), func(err error, next time.Duration) {
		logrus.WithError(err).WithField("retry_in", next).Warn("Event stream lost, reconnecting")
	})

	if ctx.Err() != nil {
		return ctx.Err()
	}
	return err
}
