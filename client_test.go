package ais

import (
	"context"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jamesdalby/ais/nmea0183"
)

type scriptedSource struct {
	records []nmea0183.Record
	index   int
	err     error
	closed  bool
}

func (s *scriptedSource) ReadRecord(ctx context.Context) (nmea0183.Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s.index >= len(s.records) {
		return nil, s.err
	}
	rec := s.records[s.index]
	s.index++
	return rec, nil
}

func (s *scriptedSource) Close() error {
	s.closed = true
	return nil
}

func TestClientRun(t *testing.T) {
	source := &scriptedSource{
		records: []nmea0183.Record{
			nmea0183.RMC{Lat: 57.5, Lon: 11.5, SOG: 6.5, TrackMadeGood: 15, HasTrack: true},
			nmea0183.VDM{Fragments: 1, Fragment: 1, Payload: "13u?etPv2;0n:dDPwUM1U1Cb069D"},
		},
		err: io.EOF,
	}

	seen := 0
	handler := NewHandler(HandlerConfig{
		They: func(us, them PCS, mmsi int) { seen++ },
	})
	client := NewClient(source, handler, nil)

	err := client.Run(context.Background())
	assert.ErrorIs(t, err, io.EOF)
	assert.Equal(t, 1, seen)
}

func TestClientRunStopsCleanlyOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	client := NewClient(&scriptedSource{err: io.EOF}, NewHandler(HandlerConfig{}), nil)
	assert.NoError(t, client.Run(ctx))
}

func TestClientSetSource(t *testing.T) {
	client := NewClient(&scriptedSource{}, NewHandler(HandlerConfig{}), nil)
	assert.Error(t, client.SetSource("example.net", 10110), "scripted source has a fixed endpoint")

	source := nmea0183.NewTCPSource("localhost", 10110, nmea0183.Config{})
	client = NewClient(source, NewHandler(HandlerConfig{}), nil)
	require.NoError(t, client.SetSource("example.net", 2000))
}

func TestClientClose(t *testing.T) {
	source := &scriptedSource{}
	client := NewClient(source, NewHandler(HandlerConfig{}), nil)
	require.NoError(t, client.Close())
	assert.True(t, source.closed)
}
