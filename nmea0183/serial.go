package nmea0183

import (
	"fmt"

	"github.com/tarm/serial"
)

// DefaultBaudRate is the NMEA 0183 standard talker rate.
const DefaultBaudRate = 4800

// NewSerialSource opens a serial port NMEA 0183 feed, the transport the
// standard was written for. A baud of 0 selects the standard 4800.
func NewSerialSource(name string, baud int, config Config) (*Device, error) {
	if baud == 0 {
		baud = DefaultBaudRate
	}
	port, err := serial.OpenPort(&serial.Config{Name: name, Baud: baud})
	if err != nil {
		return nil, fmt.Errorf("nmea0183: open serial port %v: %w", name, err)
	}
	return NewDevice(port, config), nil
}
