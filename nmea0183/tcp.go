package nmea0183

import (
	"context"
	"net"
	"strconv"
	"sync"
	"time"
)

const (
	dialTimeout    = 10 * time.Second
	initialBackoff = 250 * time.Millisecond
	maxBackoff     = 30 * time.Second
)

// TCPSource reads records from a TCP NMEA 0183 feed and re-dials with capped
// backoff whenever the connection drops. SetSource switches the endpoint by
// tearing down the current connection; the next read dials the new address.
type TCPSource struct {
	mu     sync.Mutex
	addr   string
	conn   net.Conn
	device *Device

	config Config
	sleep  func(time.Duration)
}

// NewTCPSource prepares a source for host:port. No connection is made until
// the first ReadRecord.
func NewTCPSource(host string, port int, config Config) *TCPSource {
	return &TCPSource{
		addr:   net.JoinHostPort(host, strconv.Itoa(port)),
		config: config,
		sleep:  time.Sleep,
	}
}

// ReadRecord returns the next record from the feed, transparently
// reconnecting on connection failure. It returns only when a record arrives
// or the context is cancelled.
func (s *TCPSource) ReadRecord(ctx context.Context) (Record, error) {
	backoff := initialBackoff
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		device, addr, err := s.connect(ctx)
		if err != nil {
			if s.config.Logger != nil {
				s.config.Logger.Warn("nmea feed connect failed", "addr", addr, "err", err, "retry-in", backoff)
			}
			s.sleep(backoff)
			backoff = nextBackoff(backoff)
			continue
		}

		rec, err := device.ReadRecord(ctx)
		if err == nil {
			return rec, nil
		}
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		if s.config.Logger != nil {
			s.config.Logger.Warn("nmea feed read failed", "addr", addr, "err", err, "retry-in", backoff)
		}
		s.disconnect()
		s.sleep(backoff)
		backoff = nextBackoff(backoff)
	}
}

func nextBackoff(d time.Duration) time.Duration {
	d *= 2
	if d > maxBackoff {
		return maxBackoff
	}
	return d
}

func (s *TCPSource) connect(ctx context.Context) (*Device, string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.device != nil {
		return s.device, s.addr, nil
	}
	dialer := net.Dialer{Timeout: dialTimeout}
	conn, err := dialer.DialContext(ctx, "tcp", s.addr)
	if err != nil {
		return nil, s.addr, err
	}
	if s.config.Logger != nil {
		s.config.Logger.Info("nmea feed connected", "addr", s.addr)
	}
	s.conn = conn
	s.device = NewDevice(conn, s.config)
	return s.device, s.addr, nil
}

func (s *TCPSource) disconnect() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.conn != nil {
		s.conn.Close()
	}
	s.conn = nil
	s.device = nil
}

// SetSource switches the feed to a new endpoint. The current connection is
// closed, which also unblocks a pending read so it reconnects to the new
// address.
func (s *TCPSource) SetSource(host string, port int) {
	s.mu.Lock()
	s.addr = net.JoinHostPort(host, strconv.Itoa(port))
	s.mu.Unlock()
	s.disconnect()
}

// Close tears down the connection. A blocked ReadRecord fails over into its
// reconnect loop, so cancel its context as well to stop consumption.
func (s *TCPSource) Close() error {
	s.disconnect()
	return nil
}
