package ais

import (
	"context"
	"errors"

	"github.com/charmbracelet/log"
)

// Client couples a record source with a handler: it owns the consumption
// loop the rest of the package is driven from.
type Client struct {
	// Handler is exposed so applications can use its accessors from within
	// their callbacks.
	Handler *Handler

	source RecordSource
	logger *log.Logger
}

// NewClient builds a client over source and handler.
func NewClient(source RecordSource, handler *Handler, logger *log.Logger) *Client {
	return &Client{Handler: handler, source: source, logger: logger}
}

// Run consumes records until the context is cancelled or the source fails
// terminally. Cancellation is a clean stop and returns nil.
func (c *Client) Run(ctx context.Context) error {
	for {
		rec, err := c.source.ReadRecord(ctx)
		if err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				return nil
			}
			return err
		}
		c.Handler.HandleRecord(rec)
	}
}

// SetSource switches the feed endpoint when the source supports it. The
// switch is a disconnect-and-reconnect on the source's own read loop.
func (c *Client) SetSource(host string, port int) error {
	s, ok := c.source.(Retargetable)
	if !ok {
		return errors.New("ais: source endpoint cannot be changed")
	}
	if c.logger != nil {
		c.logger.Info("switching nmea source", "host", host, "port", port)
	}
	s.SetSource(host, port)
	return nil
}

// Close closes the underlying source.
func (c *Client) Close() error {
	return c.source.Close()
}
