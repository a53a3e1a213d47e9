// Package realtime is the persistent event channel of the route service client.
package realtime

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"tracker/internal/domain/entity"
	domainerrors "tracker/internal/domain/errors"
	"tracker/internal/errors"

	"github.com/gorilla/websocket"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = (pongWait * 9) / 10

	defaultReconnectMin = time.Second
	defaultReconnectMax = 30 * time.Second
)

// Channel implements service.RealtimeChannel over a websocket. A single reader
// goroutine dispatches frames in receive order, so handlers observe the
// server's emission order. The connection is re-established with exponential
// backoff and joined deliveries are re-joined after every reconnect.
type Channel struct {
	url          string
	dialer       *websocket.Dialer
	logger       *slog.Logger
	reconnectMin time.Duration
	reconnectMax time.Duration

	mu        sync.Mutex
	conn      *websocket.Conn
	joined    map[string]struct{}
	subs      map[uint64]entity.EventHandlers
	nextSubID uint64

	writeMu   sync.Mutex
	connected atomic.Bool

	startOnce sync.Once
	closeOnce sync.Once
	cancel    context.CancelFunc
	done      chan struct{}
}

// NewChannel creates an unstarted channel for the websocket at url.
func NewChannel(url string, reconnectMin, reconnectMax time.Duration, logger *slog.Logger) *Channel {
	if reconnectMin <= 0 {
		reconnectMin = defaultReconnectMin
	}
	if reconnectMax < reconnectMin {
		reconnectMax = max(defaultReconnectMax, reconnectMin)
	}

	return &Channel{
		url:          url,
		dialer:       &websocket.Dialer{HandshakeTimeout: 20 * time.Second},
		logger:       logger,
		reconnectMin: reconnectMin,
		reconnectMax: reconnectMax,
		joined:       make(map[string]struct{}),
		subs:         make(map[uint64]entity.EventHandlers),
		done:         make(chan struct{}),
	}
}

// Start launches the connect/read loop. It returns immediately; connection
// failures are retried in the background until Close.
func (c *Channel) Start(ctx context.Context) {
	c.startOnce.Do(func() {
		ctx, cancel := context.WithCancel(context.WithoutCancel(ctx))
		c.cancel = cancel

		go c.run(ctx)
	})
}

// Close stops the loop and closes the connection. Safe to call more than once.
func (c *Channel) Close() error {
	c.closeOnce.Do(func() {
		started := c.cancel != nil
		if started {
			c.cancel()
		}

		c.mu.Lock()
		conn := c.conn
		c.mu.Unlock()
		if conn != nil {
			c.writeMu.Lock()
			_ = conn.WriteControl(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""), time.Now().Add(writeWait))
			c.writeMu.Unlock()
			_ = conn.Close()
		}

		if started {
			<-c.done
		}
	})

	return nil
}

// IsConnected reports whether the websocket is currently up.
func (c *Channel) IsConnected() bool {
	return c.connected.Load()
}

// Subscribe registers a handler table. The returned func removes it.
func (c *Channel) Subscribe(handlers entity.EventHandlers) func() {
	c.mu.Lock()
	id := c.nextSubID
	c.nextSubID++
	c.subs[id] = handlers
	c.mu.Unlock()

	var once sync.Once

	return func() {
		once.Do(func() {
			c.mu.Lock()
			delete(c.subs, id)
			c.mu.Unlock()
		})
	}
}

// JoinDelivery scopes the stream to deliveryID. When disconnected the join is
// remembered and sent once the connection is back. A cancelled ctx records
// nothing.
func (c *Channel) JoinDelivery(ctx context.Context, deliveryID string) error {
	if deliveryID == "" {
		return domainerrors.ErrValidation.WithDetails("delivery id is required")
	}

	c.mu.Lock()
	if err := ctx.Err(); err != nil {
		c.mu.Unlock()

		return errors.WithStack(err)
	}
	c.joined[deliveryID] = struct{}{}
	conn := c.conn
	c.mu.Unlock()

	if conn == nil {
		c.logger.Debug("[Realtime] Not connected, join deferred until reconnect",
			slog.String("delivery_id", deliveryID),
		)

		return nil
	}

	return c.send(conn, wireJoinDelivery, deliveryID)
}

// LeaveDelivery stops the stream for deliveryID.
func (c *Channel) LeaveDelivery(ctx context.Context, deliveryID string) error {
	c.mu.Lock()
	_, wasJoined := c.joined[deliveryID]
	delete(c.joined, deliveryID)
	conn := c.conn
	c.mu.Unlock()

	if !wasJoined || conn == nil {
		return nil
	}

	return c.send(conn, wireLeaveDelivery, deliveryID)
}

func (c *Channel) send(conn *websocket.Conn, event, deliveryID string) error {
	frame, err := encodeDeliveryFrame(event, deliveryID)
	if err != nil {
		return err
	}

	c.writeMu.Lock()
	defer c.writeMu.Unlock()

	if err := conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
		return domainerrors.ErrServiceUnavailable.WithDetails(err.Error())
	}
	if err := conn.WriteMessage(websocket.TextMessage, frame); err != nil {
		return domainerrors.ErrServiceUnavailable.WithDetails(err.Error())
	}

	return nil
}

func (c *Channel) run(ctx context.Context) {
	defer close(c.done)

	backoff := c.reconnectMin
	for ctx.Err() == nil {
		conn, _, err := c.dialer.DialContext(ctx, c.url, nil)
		if err != nil {
			c.logger.Warn("[Realtime] Connection failed",
				slog.String("url", c.url),
				slog.Duration("retry_in", backoff),
				slog.Any("error", err),
			)

			if !sleep(ctx, backoff) {
				return
			}
			backoff = min(backoff*2, c.reconnectMax)

			continue
		}

		backoff = c.reconnectMin
		c.serve(ctx, conn)
	}
}

// serve owns one connection until it fails or ctx ends.
func (c *Channel) serve(ctx context.Context, conn *websocket.Conn) {
	c.mu.Lock()
	c.conn = conn
	joined := make([]string, 0, len(c.joined))
	for id := range c.joined {
		joined = append(joined, id)
	}
	c.mu.Unlock()

	c.connected.Store(true)
	c.logger.Info("[Realtime] Connected", slog.String("url", c.url))

	for _, id := range joined {
		if err := c.send(conn, wireJoinDelivery, id); err != nil {
			c.logger.Warn("[Realtime] Re-join failed", slog.String("delivery_id", id), slog.Any("error", err))
		}
	}

	connCtx, stopPing := context.WithCancel(ctx)
	go c.keepAlive(connCtx, conn)

	_ = conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		_, frame, err := conn.ReadMessage()
		if err != nil {
			if ctx.Err() == nil {
				c.logger.Warn("[Realtime] Connection lost", slog.Any("error", err))
			}

			break
		}

		c.dispatch(frame)
	}

	stopPing()
	c.connected.Store(false)

	c.mu.Lock()
	if c.conn == conn {
		c.conn = nil
	}
	c.mu.Unlock()

	_ = conn.Close()
}

func (c *Channel) keepAlive(ctx context.Context, conn *websocket.Conn) {
	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			c.writeMu.Lock()
			err := conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeWait))
			c.writeMu.Unlock()
			if err != nil {
				return
			}
		}
	}
}

// dispatch decodes one frame and invokes every subscribed handler for its kind.
func (c *Channel) dispatch(frame []byte) {
	ev, ok, err := decodeFrame(frame)
	if err != nil {
		c.logger.Warn("[Realtime] Dropping malformed event", slog.Any("error", err))

		return
	}
	if !ok {
		c.logger.Debug("[Realtime] Ignoring unknown event", slog.String("frame", string(frame)))

		return
	}

	c.mu.Lock()
	subs := make([]entity.EventHandlers, 0, len(c.subs))
	for id := uint64(0); id < c.nextSubID; id++ {
		if h, found := c.subs[id]; found {
			subs = append(subs, h)
		}
	}
	c.mu.Unlock()

	for _, h := range subs {
		c.invoke(ev, h)
	}
}

func (c *Channel) invoke(ev decodedEvent, h entity.EventHandlers) {
	defer func() {
		if r := recover(); r != nil {
			c.logger.Error("[Realtime] Event handler panicked",
				slog.String("kind", string(ev.kind)),
				slog.Any("panic", r),
			)
		}
	}()

	switch ev.kind {
	case entity.EventLocationUpdate:
		if h.OnLocationUpdate != nil {
			h.OnLocationUpdate(ev.locationUpdate)
		}
	case entity.EventStopCompleted:
		if h.OnStopCompleted != nil {
			h.OnStopCompleted(ev.stopCompleted)
		}
	case entity.EventDeliveryCompleted:
		if h.OnDeliveryCompleted != nil {
			h.OnDeliveryCompleted(ev.deliveryCompleted)
		}
	case entity.EventDeliveryJoined:
		if h.OnDeliveryJoined != nil {
			h.OnDeliveryJoined(ev.deliveryJoined)
		}
	}
}

func sleep(ctx context.Context, d time.Duration) bool {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}
