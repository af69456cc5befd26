package ais

import (
	"github.com/charmbracelet/log"

	"github.com/jamesdalby/ais/nmea0183"
)

// maxAssembledPayload bounds the reassembly buffer. The longest defined AIS
// message spans 5 sentences of at most 82 characters; anything beyond this is
// a runaway chain on a noisy feed.
const maxAssembledPayload = 1024

// vdmAssembler accumulates the armoured payload fragments of multi-sentence
// VDM chains. A fragment whose sequence identifier differs from the chain in
// progress is tolerated rather than discarding the buffer: interleaved chains
// are common on mixed feeds and the first chain usually still completes.
type vdmAssembler struct {
	buf    []byte
	msgID  string
	hasID  bool
	logger *log.Logger
}

// Add appends one fragment. When the fragment completes its chain the
// reassembled payload is returned and the buffer reset.
func (a *vdmAssembler) Add(v nmea0183.VDM) (Payload, bool) {
	if len(a.buf)+len(v.Payload) > maxAssembledPayload {
		if a.logger != nil {
			a.logger.Warn("discarding overlong VDM chain", "length", len(a.buf))
		}
		a.Reset()
	}
	if v.Fragment < v.Fragments {
		if !a.hasID {
			a.msgID = v.MsgID
			a.hasID = true
		} else if v.MsgID != a.msgID {
			// Fragment of an interleaved chain: drop it, keep ours.
			if a.logger != nil {
				a.logger.Debug("out-of-sequence VDM fragment", "want", a.msgID, "got", v.MsgID)
			}
			return Payload{}, false
		}
		a.buf = append(a.buf, v.Payload...)
		return Payload{}, false
	}
	a.buf = append(a.buf, v.Payload...)

	p := NewPayload(string(a.buf), v.FillBits)
	a.Reset()
	return p, true
}

// Reset drops any partial chain.
func (a *vdmAssembler) Reset() {
	a.buf = a.buf[:0]
	a.msgID = ""
	a.hasID = false
}
