package wsfeed

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/bnema/nirogya-cli/internal/domain"
	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
)

const handshakeTimeout = 15 * time.Second

// Sink receives every decoded engine event. Returning an error stops the feed.
type Sink func(domain.EngineEvent) error

// Feed subscribes to the translation engine's status stream over a websocket.
// Each text frame carries one JSON encoded domain.EngineEvent.
type Feed struct {
	url         string
	defaultSlot string
	dialer      *websocket.Dialer
	logger      logrus.FieldLogger
}

func New(url, defaultSlot string, logger logrus.FieldLogger) *Feed {
	if logger == nil {
		logger = logrus.StandardLogger()
	}

	return &Feed{
		url:         url,
		defaultSlot: defaultSlot,
		dialer:      &websocket.Dialer{HandshakeTimeout: handshakeTimeout},
		logger:      logger.WithField("feed_url", url),
	}
}

// Run blocks until ctx is cancelled, the server closes the stream, or sink fails.
// A cancelled context and a normal close both return nil.
func (f *Feed) Run(ctx context.Context, sink Sink) error {
	conn, _, err := f.dialer.DialContext(ctx, f.url, nil)
	if err != nil {
		return fmt.Errorf("websocket dial: %w", err)
	}
	defer conn.Close()

	f.logger.Info("connected to engine status feed")

	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			_ = conn.WriteControl(
				websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
				time.Now().Add(time.Second),
			)
			_ = conn.Close()
		case <-done:
		}
	}()

	for {
		msgType, data, err := conn.ReadMessage()
		if err != nil {
			if ctx.Err() != nil || websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				f.logger.Info("engine status feed closed")
				return nil
			}
			return fmt.Errorf("read engine event: %w", err)
		}
		if msgType != websocket.TextMessage {
			continue
		}

		event, err := f.decode(data)
		if err != nil {
			f.logger.WithError(err).Warn("dropping malformed engine event")
			continue
		}

		if err := sink(event); err != nil {
			return fmt.Errorf("apply engine event: %w", err)
		}
	}
}

var errMissingEventType = errors.New("missing event type")

func (f *Feed) decode(data []byte) (domain.EngineEvent, error) {
	var event domain.EngineEvent
	if err := json.Unmarshal(data, &event); err != nil {
		return domain.EngineEvent{}, fmt.Errorf("decode engine event: %w", err)
	}
	if event.Type == "" {
		return domain.EngineEvent{}, errMissingEventType
	}
	if event.Slot == "" {
		event.Slot = f.defaultSlot
	}

	return event, nil
}
