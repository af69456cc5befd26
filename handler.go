package ais

import (
	"strconv"
	"time"

	"github.com/charmbracelet/log"
	"github.com/patrickmn/go-cache"

	"github.com/jamesdalby/ais/nmea0183"
)

// HandlerConfig wires the application callbacks into a Handler. All fields
// are optional.
type HandlerConfig struct {
	// We is invoked with the own-vessel sample for every RMC record.
	We func(us PCS)

	// They is invoked at most once per completed VDM chain that decodes to a
	// position-bearing message from a target whose position (and, for vessel
	// reports, course) is available, and only once our own position is known.
	They func(us, them PCS, mmsi int)

	// NameFor is invoked with each ship name before the name index is
	// updated, as a hook for external persistence.
	NameFor func(mmsi int, shipname string)

	// TargetExpiry ages out the per-target name and message indexes; any
	// message from a target refreshes it. Zero keeps targets forever.
	TargetExpiry time.Duration

	Logger *log.Logger
}

// Handler consumes a demultiplexed stream of parsed NMEA records, reassembles
// and decodes AIS payloads, tracks own and target vessel state and drives the
// configured callbacks. It is not safe for concurrent use: all records are
// expected to arrive on the transport's single read loop, and the accessors
// are meant to be called from the callbacks on that same goroutine.
type Handler struct {
	we      func(us PCS)
	they    func(us, them PCS, mmsi int)
	nameFor func(mmsi int, shipname string)
	logger  *log.Logger

	us    PCS
	hasUs bool
	asm   vdmAssembler

	names  *cache.Cache // mmsi -> shipname
	static *cache.Cache // mmsi -> map[key]Message
}

// NewHandler builds a handler from config.
func NewHandler(config HandlerConfig) *Handler {
	expiry := cache.NoExpiration
	cleanup := time.Duration(0)
	if config.TargetExpiry > 0 {
		expiry = config.TargetExpiry
		cleanup = config.TargetExpiry
	}
	return &Handler{
		we:      config.We,
		they:    config.They,
		nameFor: config.NameFor,
		logger:  config.Logger,
		asm:     vdmAssembler{logger: config.Logger},
		names:   cache.New(expiry, cleanup),
		static:  cache.New(expiry, cleanup),
	}
}

// HandleRecord is the single event entry point. It never fails: malformed
// payloads are logged and dropped, and every record yields zero or more
// callback invocations.
func (h *Handler) HandleRecord(rec nmea0183.Record) {
	switch r := rec.(type) {
	case nmea0183.RMC:
		track := 0.0
		if r.HasTrack {
			track = r.TrackMadeGood
		}
		h.us = NewPCS(r.Lat, r.Lon, track, r.SOG)
		h.hasUs = true
		if h.we != nil {
			h.we(h.us)
		}
	case nmea0183.VDM:
		h.handleVDM(r)
	default:
		// VTG and bare positions are accepted but carry nothing RMC does not.
	}
}

func (h *Handler) handleVDM(v nmea0183.VDM) {
	payload, complete := h.asm.Add(v)
	if !complete {
		return
	}
	msg, err := Decode(payload)
	if err != nil {
		if h.logger != nil {
			h.logger.Debug("discarding AIS payload", "err", err, "payload", payload.String())
		}
		return
	}

	switch m := msg.(type) {
	case PositionReport:
		h.stash(m.MMSI, m.Key(), m)
		h.reportTarget(m.MMSI, m.navigation)
	case ClassBPositionReport:
		h.stash(m.MMSI, m.Key(), m)
		h.reportTarget(m.MMSI, m.navigation)
	case StaticVoyageData:
		h.setName(m.MMSI, m.Shipname)
		h.stash(m.MMSI, m.Key(), m)
	case StaticDataA:
		h.setName(m.MMSI, m.Shipname)
		h.stash(m.MMSI, m.Key(), m)
	case StaticDataB:
		h.stash(m.MMSI, m.Key(), m)
	case AidToNavigation:
		h.setName(m.MMSI, m.Name)
		h.stash(m.MMSI, m.Key(), m)
		if lat, lon, ok := m.Position(); ok && h.hasUs && h.they != nil {
			h.they(h.us, NewPCS(lat, lon, 0, 0), m.MMSI)
		}
	}
}

// reportTarget invokes they for a vessel position report once own position,
// target position and target course are all known.
func (h *Handler) reportTarget(mmsi int, nav navigation) {
	if !h.hasUs || h.they == nil {
		return
	}
	course, ok := nav.Course()
	if !ok {
		return
	}
	lat, lon, ok := nav.Position()
	if !ok {
		return
	}
	// An unavailable speed is treated as stationary rather than suppressing
	// the report; position and course alone are still worth a callback.
	sog, _ := nav.SOG()
	h.they(h.us, NewPCS(lat, lon, course, sog), mmsi)
}

func (h *Handler) setName(mmsi int, shipname string) {
	if shipname == "" {
		return
	}
	if h.nameFor != nil {
		h.nameFor(mmsi, shipname)
	}
	h.names.Set(strconv.Itoa(mmsi), shipname, cache.DefaultExpiration)
}

func (h *Handler) stash(mmsi, key int, msg Message) {
	k := strconv.Itoa(mmsi)
	byKey := map[int]Message{}
	if existing, ok := h.static.Get(k); ok {
		byKey = existing.(map[int]Message)
	}
	byKey[key] = msg
	h.static.Set(k, byKey, cache.DefaultExpiration)
	// Any message from the target also keeps its name entry alive.
	if name, ok := h.names.Get(k); ok {
		h.names.Set(k, name, cache.DefaultExpiration)
	}
}

// Name is the most recently seen ship name for mmsi, gathered from type 5,
// 21 and 24A messages.
func (h *Handler) Name(mmsi int) (string, bool) {
	v, ok := h.names.Get(strconv.Itoa(mmsi))
	if !ok {
		return "", false
	}
	return v.(string), true
}

// MostRecentMessage is the latest message of the given index key received
// from mmsi. Keys are wire message types, except Key24A and Key24B for the
// two halves of type 24.
func (h *Handler) MostRecentMessage(mmsi, key int) (Message, bool) {
	v, ok := h.static.Get(strconv.Itoa(mmsi))
	if !ok {
		return nil, false
	}
	msg, ok := v.(map[int]Message)[key]
	return msg, ok
}

// MostRecentMessages is a snapshot of every message type tracked for mmsi,
// copied so callers cannot race the index.
func (h *Handler) MostRecentMessages(mmsi int) map[int]Message {
	snapshot := map[int]Message{}
	v, ok := h.static.Get(strconv.Itoa(mmsi))
	if !ok {
		return snapshot
	}
	for key, msg := range v.(map[int]Message) {
		snapshot[key] = msg
	}
	return snapshot
}
