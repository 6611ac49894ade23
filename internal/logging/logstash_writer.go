package logging

import (
	"errors"
	"net"
	"strings"
	"sync"
	"sync/atomic"
	"time"
)

// LogstashWriter ships newline-delimited JSON log entries to a Logstash TCP input. Writes are
// queued and sent from a background goroutine, so a slow or absent Logstash never blocks a
// request. Entries are dropped when the queue is full or while the connection is down.
type LogstashWriter struct {
	addr          string
	dialTimeout   time.Duration
	writeTimeout  time.Duration
	retryInterval time.Duration
	queueSize     int

	queue   chan []byte
	done    chan struct{}
	dropped atomic.Int64

	closeOnce sync.Once
	conn      net.Conn
	nextRetry time.Time
}

type Option func(*LogstashWriter)

// WithDialTimeout overrides the TCP dial timeout. Defaults to 2 seconds.
func WithDialTimeout(d time.Duration) Option {
	return func(w *LogstashWriter) {
		w.dialTimeout = d
	}
}

// WithWriteTimeout overrides the TCP write timeout. Defaults to 1 second.
func WithWriteTimeout(d time.Duration) Option {
	return func(w *LogstashWriter) {
		w.writeTimeout = d
	}
}

// WithRetryInterval overrides the cool-down after a failed connect or write. Defaults to 5 seconds.
func WithRetryInterval(d time.Duration) Option {
	return func(w *LogstashWriter) {
		w.retryInterval = d
	}
}

// WithQueueSize sets how many entries may wait for the network. Defaults to 1024.
func WithQueueSize(n int) Option {
	return func(w *LogstashWriter) {
		w.queueSize = n
	}
}

func NewLogstashWriter(addr string, opts ...Option) (*LogstashWriter, error) {
	if strings.TrimSpace(addr) == "" {
		return nil, errors.New("logstash: empty address")
	}

	w := &LogstashWriter{
		addr:          addr,
		dialTimeout:   2 * time.Second,
		writeTimeout:  time.Second,
		retryInterval: 5 * time.Second,
		queueSize:     1024,
	}
	for _, opt := range opts {
		opt(w)
	}
	if w.queueSize <= 0 {
		w.queueSize = 1
	}

	w.queue = make(chan []byte, w.queueSize)
	w.done = make(chan struct{})
	go w.run()
	return w, nil
}

// Write queues a copy of p. It never returns an error so a logging failure cannot fail the
// caller; lost entries are counted by Dropped.
func (w *LogstashWriter) Write(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}

	entry := make([]byte, len(p), len(p)+1)
	copy(entry, p)
	if entry[len(entry)-1] != '\n' {
		entry = append(entry, '\n')
	}

	defer func() {
		// send on a closed queue after Close
		if recover() != nil {
			w.dropped.Add(1)
		}
	}()
	select {
	case w.queue <- entry:
	default:
		w.dropped.Add(1)
	}
	return len(p), nil
}

// Dropped reports how many entries were discarded.
func (w *LogstashWriter) Dropped() int64 {
	return w.dropped.Load()
}

// Close flushes what the connection accepts and stops the sender.
func (w *LogstashWriter) Close() error {
	w.closeOnce.Do(func() {
		close(w.queue)
	})
	<-w.done
	return nil
}

func (w *LogstashWriter) run() {
	defer close(w.done)
	defer w.closeConn()

	for entry := range w.queue {
		if err := w.ensureConn(); err != nil {
			w.dropped.Add(1)
			continue
		}
		if w.writeTimeout > 0 {
			_ = w.conn.SetWriteDeadline(time.Now().Add(w.writeTimeout))
		}
		if _, err := w.conn.Write(entry); err != nil {
			w.dropped.Add(1)
			w.closeConn()
			w.scheduleRetry()
		}
	}
}

func (w *LogstashWriter) ensureConn() error {
	if w.conn != nil {
		return nil
	}
	if !w.nextRetry.IsZero() && time.Now().Before(w.nextRetry) {
		return errRetryCooldown
	}

	conn, err := net.DialTimeout("tcp", w.addr, w.dialTimeout)
	if err != nil {
		w.scheduleRetry()
		return err
	}
	w.conn = conn
	w.nextRetry = time.Time{}
	return nil
}

func (w *LogstashWriter) closeConn() {
	if w.conn == nil {
		return
	}
	_ = w.conn.Close()
	w.conn = nil
}

func (w *LogstashWriter) scheduleRetry() {
	if w.retryInterval <= 0 {
		w.nextRetry = time.Time{}
		return
	}
	w.nextRetry = time.Now().Add(w.retryInterval)
}

var errRetryCooldown = errors.New("logstash: retry cooldown in effect")
