package ais

import (
	"context"

	"github.com/jamesdalby/ais/nmea0183"
)

// RecordSource is a stream of parsed NMEA records, typically an
// nmea0183.TCPSource or a serial Device.
type RecordSource interface {
	ReadRecord(ctx context.Context) (nmea0183.Record, error)
	Close() error
}

// Retargetable is implemented by sources whose endpoint can be switched at
// runtime by disconnecting and reconnecting.
type Retargetable interface {
	SetSource(host string, port int)
}
