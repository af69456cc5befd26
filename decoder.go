package ais

import (
	"errors"
	"fmt"
)

var (
	// ErrShortPayload is returned when a field of the dispatched message type
	// runs past the end of the payload.
	ErrShortPayload = errors.New("ais: payload too short for message type")
	// ErrUnknownMessageType is returned for wire types outside the decoded set.
	ErrUnknownMessageType = errors.New("ais: unsupported message type")
)

// fieldReader reads consecutive fields from a payload and remembers the first
// out-of-range read so a message decode is a single flat block with one error
// check at the end.
type fieldReader struct {
	p   Payload
	err error
}

func (r *fieldReader) unsigned(start, length int) int {
	if r.err != nil {
		return 0
	}
	v, ok := r.p.Unsigned(start, length)
	if !ok {
		r.err = ErrShortPayload
	}
	return v
}

func (r *fieldReader) signed(start, length int) int {
	if r.err != nil {
		return 0
	}
	v, ok := r.p.Signed(start, length)
	if !ok {
		r.err = ErrShortPayload
	}
	return v
}

func (r *fieldReader) signedScaled(start, length, scale int) float64 {
	if r.err != nil {
		return 0
	}
	v, ok := r.p.SignedScaled(start, length, scale)
	if !ok {
		r.err = ErrShortPayload
	}
	return v
}

func (r *fieldReader) unsignedScaled(start, length, scale int) float64 {
	if r.err != nil {
		return 0
	}
	v, ok := r.p.UnsignedScaled(start, length, scale)
	if !ok {
		r.err = ErrShortPayload
	}
	return v
}

func (r *fieldReader) boolean(start int) bool {
	if r.err != nil {
		return false
	}
	v, ok := r.p.Boolean(start)
	if !ok {
		r.err = ErrShortPayload
	}
	return v
}

// text is tolerant: a payload ending mid-string yields the characters read so
// far, matching how transponders truncate optional name extensions.
func (r *fieldReader) text(start, length int) string {
	return r.p.Text(start, length)
}

func (r *fieldReader) header(msgType int) Header {
	return Header{
		MsgType: msgType,
		Repeat:  r.unsigned(6, 2),
		MMSI:    r.unsigned(8, 30),
	}
}

// Decode dispatches on the wire message type and builds the typed message.
// Types 1, 2, 3, 5, 18, 21 and 24 are decoded; anything else returns
// ErrUnknownMessageType.
func Decode(p Payload) (Message, error) {
	msgType, ok := p.Unsigned(0, 6)
	if !ok {
		return nil, ErrShortPayload
	}
	switch msgType {
	case 1, 2, 3:
		return decodePositionReport(p, msgType)
	case 5:
		return decodeStaticVoyageData(p)
	case 18:
		return decodeClassBPositionReport(p)
	case 21:
		return decodeAidToNavigation(p)
	case 24:
		partno, ok := p.Unsigned(38, 2)
		if !ok {
			return nil, ErrShortPayload
		}
		if partno == 0 {
			return decodeStaticDataA(p)
		}
		return decodeStaticDataB(p)
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownMessageType, msgType)
	}
}

func decodePositionReport(p Payload, msgType int) (Message, error) {
	r := &fieldReader{p: p}
	m := PositionReport{
		Header: r.header(msgType),
		Status: r.unsigned(38, 4),
		Turn:   r.signedScaled(42, 8, 3),
		navigation: navigation{
			sog:     r.unsigned(50, 10),
			lon:     r.signed(61, 28),
			lat:     r.signed(89, 27),
			course:  r.unsigned(116, 12),
			heading: r.unsigned(128, 9),
			second:  r.unsigned(137, 6),
		},
		Accuracy: r.boolean(60),
		Maneuver: r.unsigned(143, 2),
		RAIM:     r.boolean(148),
		Radio:    r.unsigned(149, 19),
	}
	if r.err != nil {
		return nil, r.err
	}
	return m, nil
}

func decodeStaticVoyageData(p Payload) (Message, error) {
	r := &fieldReader{p: p}
	m := StaticVoyageData{
		Header:      r.header(5),
		AISVersion:  r.unsigned(38, 2),
		IMO:         r.unsigned(40, 30),
		Callsign:    r.text(70, 42),
		Shipname:    r.text(112, 120),
		Shiptype:    r.unsigned(232, 8),
		ToBow:       r.unsigned(240, 9),
		ToStern:     r.unsigned(249, 9),
		ToPort:      r.unsigned(258, 6),
		ToStarboard: r.unsigned(264, 6),
		EPFD:        r.unsigned(270, 4),
		Month:       r.unsigned(274, 4),
		Day:         r.unsigned(278, 5),
		Hour:        r.unsigned(283, 5),
		Minute:      r.unsigned(288, 6),
		Draught:     r.unsignedScaled(294, 8, 1),
		Destination: r.text(302, 120),
		DTE:         r.boolean(422),
	}
	if r.err != nil {
		return nil, r.err
	}
	return m, nil
}

func decodeClassBPositionReport(p Payload) (Message, error) {
	r := &fieldReader{p: p}
	m := ClassBPositionReport{
		Header: r.header(18),
		navigation: navigation{
			sog:     r.unsigned(46, 10),
			lon:     r.signed(57, 28),
			lat:     r.signed(85, 27),
			course:  r.unsigned(112, 12),
			heading: r.unsigned(124, 9),
			second:  r.unsigned(133, 6),
		},
		Accuracy: r.boolean(56),
		Regional: r.unsigned(139, 2),
		CS:       r.boolean(141),
		Display:  r.boolean(142),
		DSC:      r.boolean(143),
		Band:     r.boolean(144),
		Msg22:    r.boolean(145),
		Assigned: r.boolean(146),
		RAIM:     r.boolean(147),
		Radio:    r.unsigned(148, 20),
	}
	if r.err != nil {
		return nil, r.err
	}
	return m, nil
}

func decodeAidToNavigation(p Payload) (Message, error) {
	r := &fieldReader{p: p}
	name := r.text(43, 120)
	if len(name) == 20 {
		// Full-width names continue in the optional extension block.
		name += r.text(272, 88)
	}
	m := AidToNavigation{
		Header:      r.header(21),
		AidType:     r.unsigned(38, 5),
		Name:        name,
		Accuracy:    r.boolean(163),
		lon:         r.signed(164, 28),
		lat:         r.signed(192, 27),
		ToBow:       r.unsigned(219, 9),
		ToStern:     r.unsigned(228, 9),
		ToPort:      r.unsigned(237, 9),
		ToStarboard: r.unsigned(243, 9),
		EPFD:        r.unsigned(249, 4),
		second:      r.unsigned(253, 6),
		OffPosition: r.boolean(259),
		Regional:    r.unsigned(260, 8),
		RAIM:        r.boolean(268),
		VirtualAid:  r.boolean(269),
		Assigned:    r.boolean(270),
	}
	if r.err != nil {
		return nil, r.err
	}
	return m, nil
}

func decodeStaticDataA(p Payload) (Message, error) {
	r := &fieldReader{p: p}
	m := StaticDataA{
		Header:   r.header(24),
		Shipname: r.text(40, 120),
	}
	if r.err != nil {
		return nil, r.err
	}
	return m, nil
}

func decodeStaticDataB(p Payload) (Message, error) {
	r := &fieldReader{p: p}
	m := StaticDataB{
		Header:   r.header(24),
		Shiptype: r.unsigned(40, 8),
		VendorID: r.text(48, 18),
		Model:    r.unsigned(66, 4),
		Serial:   r.unsigned(70, 20),
		Callsign: r.text(90, 42),

		// Bits 132-161 are shared; decode both readings and let the caller
		// pick by MMSI (see StaticDataB.IsAuxiliaryCraft).
		MothershipMMSI: r.unsigned(132, 30),
		ToBow:          r.unsigned(132, 9),
		ToStern:        r.unsigned(141, 9),
		ToPort:         r.unsigned(150, 6),
		ToStarboard:    r.unsigned(156, 6),
	}
	if r.err != nil {
		return nil, r.err
	}
	return m, nil
}
