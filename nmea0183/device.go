package nmea0183

import (
	"bufio"
	"context"
	"errors"
	"io"

	"github.com/charmbracelet/log"

	"github.com/jamesdalby/ais/internal/utils"
)

// Config configures NMEA 0183 stream sources.
type Config struct {
	// Logger receives skipped-sentence diagnostics at debug level and
	// connection state changes. nil disables logging.
	Logger *log.Logger

	// DebugLogRawSentences logs every raw line before parsing.
	DebugLogRawSentences bool
}

// Device reads NMEA 0183 sentences line by line from a byte stream and parses
// them into records. Lines that carry nothing for the client - unsupported
// sentences, checksum failures, garbage between sentences - are skipped, so
// ReadRecord only ever returns usable records or a transport error.
type Device struct {
	device io.Reader
	reader *bufio.Reader
	config Config
}

// NewDevice wraps a byte stream, typically a net.Conn or serial port.
func NewDevice(reader io.Reader, config Config) *Device {
	return &Device{
		device: reader,
		reader: bufio.NewReader(reader),
		config: config,
	}
}

// ReadRecord reads lines until one parses into a record. The context is
// checked between lines; cancelling it while a read is blocked takes effect
// once the underlying stream unblocks or is closed.
func (d *Device) ReadRecord(ctx context.Context) (Record, error) {
	for {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		line, err := d.reader.ReadString('\n')
		if err != nil {
			if errors.Is(err, io.EOF) && line != "" {
				// Stream ended without a final newline; parse what we have
				// and report EOF on the next call.
				if rec, skip, _ := ParseSentence(line); !skip {
					return rec, nil
				}
			}
			return nil, err
		}
		if d.config.DebugLogRawSentences && d.config.Logger != nil {
			d.config.Logger.Debug("nmea sentence", "raw", utils.FormatSpaces([]byte(line)))
		}

		rec, skip, err := ParseSentence(line)
		if skip {
			if err != nil && d.config.Logger != nil {
				d.config.Logger.Debug("skipping sentence", "err", err)
			}
			continue
		}
		return rec, nil
	}
}

// Close closes the underlying stream when it supports closing.
func (d *Device) Close() error {
	if c, ok := d.device.(io.Closer); ok {
		return c.Close()
	}
	return errors.New("nmea0183: device does not implement Closer interface")
}
