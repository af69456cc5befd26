package ais

import "time"

// Index keys for the two halves of a type 24 static data report. Every other
// message is indexed under its wire message type; type 24 needs two slots so
// part A and part B do not evict each other.
const (
	Key24A = 0x24A
	Key24B = 0x24B
)

// Raw wire values that mean "not available". They are stored as decoded and
// masked by the accessors.
const (
	sogNotAvailable     = 1023 // deciknots
	courseNotAvailable  = 3600 // decidegrees
	headingNotAvailable = 511
	lonNotAvailable     = 181 * 600000 // 1/10000 minutes
	latNotAvailable     = 91 * 600000
)

// Not-available coordinate sentinels in minutes, as consumed by DMS when
// formatting the raw minute values of a position report.
const (
	LatNotAvailableMinutes = 91 * 60
	LonNotAvailableMinutes = 181 * 60
)

// Message is implemented by every decoded AIS message variant. Key is the
// value the handler indexes the message under for its source MMSI.
type Message interface {
	Key() int
}

// Header is the block common to all AIS messages.
type Header struct {
	// MsgType is the wire message type, 1-27.
	MsgType int
	// Repeat is the repeat indicator, how many times the message may still
	// be rebroadcast by repeater stations.
	Repeat int
	// MMSI is the nine digit identity of the transmitting station.
	MMSI int
}

// navigation carries the sentinel-coded kinematic fields shared by the
// position report variants. Values are stored raw; accessors scale and mask.
type navigation struct {
	sog     int // deciknots, 1023 not available
	lon     int // 1/10000 minutes east, 181 deg not available
	lat     int // 1/10000 minutes north, 91 deg not available
	course  int // decidegrees true, 3600 not available
	heading int // degrees true, 511 not available
	second  int // UTC second of transmission, 60-63 not available
}

// SOG is speed over ground in knots.
func (n navigation) SOG() (float64, bool) {
	if n.sog == sogNotAvailable {
		return 0, false
	}
	return float64(n.sog) / 10, true
}

// Course is course over ground in degrees true.
func (n navigation) Course() (float64, bool) {
	if n.course == courseNotAvailable {
		return 0, false
	}
	return float64(n.course) / 10, true
}

// Heading is true heading in degrees.
func (n navigation) Heading() (int, bool) {
	if n.heading == headingNotAvailable {
		return 0, false
	}
	return n.heading, true
}

// Second is the UTC second the report was generated at.
func (n navigation) Second() (int, bool) {
	if n.second >= 60 {
		return 0, false
	}
	return n.second, true
}

// LatMinutes is latitude in minutes north of the equator, the unit the wire
// value scales to directly. Feed it to DMS with LatNotAvailableMinutes.
func (n navigation) LatMinutes() (float64, bool) {
	return float64(n.lat) / 10000, n.lat != latNotAvailable
}

// LonMinutes is longitude in minutes east of Greenwich.
func (n navigation) LonMinutes() (float64, bool) {
	return float64(n.lon) / 10000, n.lon != lonNotAvailable
}

// Position is the reported position in degrees.
func (n navigation) Position() (lat, lon float64, ok bool) {
	if n.lat == latNotAvailable || n.lon == lonNotAvailable {
		return 0, 0, false
	}
	return float64(n.lat) / 600000, float64(n.lon) / 600000, true
}

// PositionReport is the class A position report carried by message types 1, 2
// and 3, which share the common navigation block and differ only in tag.
type PositionReport struct {
	Header
	navigation

	// Status is the raw navigational status, see NavStatus.
	Status int
	// Turn is rate of turn as decoded from the wire.
	Turn float64
	// Accuracy is true for a DGPS quality fix (<10m), false for unaugmented.
	Accuracy bool
	// Maneuver is the raw special manoeuvre indicator, see ManeuverLabel.
	Maneuver int
	RAIM     bool
	Radio    int
}

func (m PositionReport) Key() int { return m.MsgType }

// NavStatus is the navigational status label.
func (m PositionReport) NavStatus() (string, bool) {
	return lookup(NavigationStatus, m.Status)
}

// ManeuverLabel is the special manoeuvre label.
func (m PositionReport) ManeuverLabel() (string, bool) {
	return lookup(ManeuverIndicator, m.Maneuver)
}

// StaticVoyageData is the type 5 static and voyage related data report.
type StaticVoyageData struct {
	Header

	AISVersion  int
	IMO         int
	Callsign    string
	Shipname    string
	Shiptype    int
	ToBow       int // metres, reference point to bow
	ToStern     int
	ToPort      int
	ToStarboard int
	EPFD        int
	Month       int // ETA month 1-12, 0 not available
	Day         int // ETA day 1-31, 0 not available
	Hour        int // ETA hour 0-23, 24 not available
	Minute      int
	Draught     float64 // metres
	Destination string
	DTE         bool
}

func (m StaticVoyageData) Key() int { return m.MsgType }

// ShipTypeName is the ship and cargo type label.
func (m StaticVoyageData) ShipTypeName() (string, bool) {
	return lookup(ShipType, m.Shiptype)
}

// FixType is the position fixing device label.
func (m StaticVoyageData) FixType() (string, bool) {
	return lookup(EPFDFixType, m.EPFD)
}

// ETA resolves the month/day/hour/minute fields against now: the estimate is
// placed in the current UTC year, or the next one when that instant has
// already passed.
func (m StaticVoyageData) ETA(now time.Time) (time.Time, bool) {
	if m.Month < 1 || m.Month > 12 || m.Day < 1 {
		return time.Time{}, false
	}
	eta := time.Date(now.Year(), time.Month(m.Month), m.Day, m.Hour, m.Minute, 0, 0, time.UTC)
	if eta.Before(now) {
		eta = eta.AddDate(1, 0, 0)
	}
	return eta, true
}

// ClassBPositionReport is the type 18 standard class B position report.
type ClassBPositionReport struct {
	Header
	navigation

	Accuracy bool
	Regional int
	CS       bool // carrier sense unit, no own slot allocation
	Display  bool
	DSC      bool
	Band     bool
	Msg22    bool
	Assigned bool
	RAIM     bool
	Radio    int
}

func (m ClassBPositionReport) Key() int { return m.MsgType }

// AidToNavigation is the type 21 aid to navigation report.
type AidToNavigation struct {
	Header

	AidType     int
	Name        string
	Accuracy    bool
	lon         int // 1/10000 minutes, same coding as the position reports
	lat         int
	ToBow       int
	ToStern     int
	ToPort      int
	ToStarboard int
	EPFD        int
	second      int
	OffPosition bool
	Regional    int
	RAIM        bool
	VirtualAid  bool
	Assigned    bool
}

func (m AidToNavigation) Key() int { return m.MsgType }

// AidTypeName is the aid type label.
func (m AidToNavigation) AidTypeName() (string, bool) {
	return lookup(AidType, m.AidType)
}

// Second is the UTC second the report was generated at.
func (m AidToNavigation) Second() (int, bool) {
	if m.second >= 60 {
		return 0, false
	}
	return m.second, true
}

// LatMinutes is latitude in minutes north.
func (m AidToNavigation) LatMinutes() (float64, bool) {
	return float64(m.lat) / 10000, m.lat != latNotAvailable
}

// LonMinutes is longitude in minutes east.
func (m AidToNavigation) LonMinutes() (float64, bool) {
	return float64(m.lon) / 10000, m.lon != lonNotAvailable
}

// Position is the aid position in degrees.
func (m AidToNavigation) Position() (lat, lon float64, ok bool) {
	if m.lat == latNotAvailable || m.lon == lonNotAvailable {
		return 0, 0, false
	}
	return float64(m.lat) / 600000, float64(m.lon) / 600000, true
}

// StaticDataA is part A of the type 24 static data report, carrying only the
// ship name.
type StaticDataA struct {
	Header

	Shipname string
}

func (m StaticDataA) Key() int { return Key24A }

// StaticDataB is part B of the type 24 static data report. Bits 132-161
// encode either the mothership MMSI or the hull dimensions depending on
// whether the sender is an auxiliary craft; both decodes are carried and the
// caller selects by IsAuxiliaryCraft.
type StaticDataB struct {
	Header

	Shiptype int
	VendorID string
	Model    int
	Serial   int
	Callsign string

	MothershipMMSI int
	ToBow          int
	ToStern        int
	ToPort         int
	ToStarboard    int
}

func (m StaticDataB) Key() int { return Key24B }

// IsAuxiliaryCraft reports whether the sender MMSI has the 98XXXYYYY form
// assigned to craft associated with a parent ship, in which case
// MothershipMMSI is the valid reading of the shared bits.
func (m StaticDataB) IsAuxiliaryCraft() bool {
	return m.MMSI >= 980000000 && m.MMSI <= 989999999
}

// ShipTypeName is the ship and cargo type label.
func (m StaticDataB) ShipTypeName() (string, bool) {
	return lookup(ShipType, m.Shiptype)
}
