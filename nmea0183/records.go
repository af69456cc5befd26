// Package nmea0183 reads NMEA 0183 sentence streams and parses the records
// an AIS client consumes: own-ship RMC and VTG, and the VDM fragments that
// carry armoured AIS payloads.
package nmea0183

// Record is a parsed NMEA 0183 record.
type Record interface {
	isRecord()
}

// RMC is the recommended minimum navigation record: own-ship position, speed
// over ground and track made good.
type RMC struct {
	Lat float64 // degrees, positive north
	Lon float64 // degrees, positive east
	SOG float64 // knots

	// TrackMadeGood is degrees true; receivers omit it when stationary.
	TrackMadeGood float64
	HasTrack      bool
}

func (RMC) isRecord() {}

// VTG is the course and speed over ground record. Parsed for completeness;
// the AIS handler ignores it.
type VTG struct {
	CourseTrue float64
	HasCourse  bool
	SOG        float64
	HasSOG     bool
}

func (VTG) isRecord() {}

// Pos is a bare own-ship position without course or speed, produced from GLL
// sentences.
type Pos struct {
	Lat float64
	Lon float64
}

func (Pos) isRecord() {}

// VDM is one fragment of an armoured AIS payload.
type VDM struct {
	Fragments int    // sentences in this chain
	Fragment  int    // 1-based index of this sentence within the chain
	MsgID     string // sequence identifier tying a chain together, may be empty
	Channel   string // VHF channel, "A" or "B"
	Payload   string // six-bit armoured payload characters
	FillBits  int    // unused bits at the end of the last character
}

func (VDM) isRecord() {}
