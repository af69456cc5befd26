// Command aiswatch connects to an NMEA 0183 feed (TCP or serial), tracks AIS
// targets against own-ship RMC fixes and prints each target report with
// range, bearing and closest point of approach.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/pflag"

	"github.com/jamesdalby/ais"
	"github.com/jamesdalby/ais/nmea0183"
)

func main() {
	configPath := pflag.String("config", "", "path to YAML config file")
	host := pflag.String("host", "localhost", "NMEA feed host")
	port := pflag.Int("port", 10110, "NMEA feed TCP port")
	device := pflag.String("device", "", "serial device path; takes precedence over host/port")
	baud := pflag.Int("baud", 4800, "serial baud rate")
	expiry := pflag.Duration("expiry", 10*time.Minute, "forget targets not heard from for this long")
	cpaWarn := pflag.Float64("cpa-warn", 0.5, "warn when CPA falls below this many nautical miles")
	logLevel := pflag.String("log-level", "info", "log level (debug, info, warn, error)")
	pflag.Parse()

	logger := log.NewWithOptions(os.Stderr, log.Options{ReportTimestamp: true})

	cfg := defaultConfig()
	if *configPath != "" {
		var err error
		if cfg, err = loadConfig(*configPath); err != nil {
			logger.Fatal("config", "err", err)
		}
	}
	applyFlags(&cfg, host, port, device, baud, expiry, cpaWarn, logLevel)

	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		logger.Fatal("config", "err", err)
	}
	logger.SetLevel(level)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	sourceConfig := nmea0183.Config{Logger: logger}
	var source ais.RecordSource
	if cfg.Device != "" {
		source, err = nmea0183.NewSerialSource(cfg.Device, cfg.Baud, sourceConfig)
		if err != nil {
			logger.Fatal("serial", "err", err)
		}
	} else {
		source = nmea0183.NewTCPSource(cfg.Host, cfg.Port, sourceConfig)
	}

	var handler *ais.Handler
	handler = ais.NewHandler(ais.HandlerConfig{
		Logger:       logger,
		TargetExpiry: cfg.TargetExpiry,
		We: func(us ais.PCS) {
			logger.Debug("own position",
				"lat", ais.DMS(us.Lat*60, "N", "S", ais.LatNotAvailableMinutes),
				"lon", ais.DMS(us.Lon*60, "E", "W", ais.LonNotAvailableMinutes),
				"cog", us.Cog, "sog", us.Sog)
		},
		They: func(us, them ais.PCS, mmsi int) {
			printTarget(logger, handler, us, them, mmsi, cfg.CPAWarnNM)
		},
	})

	client := ais.NewClient(source, handler, logger)
	defer client.Close()

	if err := client.Run(ctx); err != nil {
		logger.Fatal("feed", "err", err)
	}
}

func applyFlags(cfg *config, host *string, port *int, device *string, baud *int, expiry *time.Duration, cpaWarn *float64, logLevel *string) {
	flags := pflag.CommandLine
	if flags.Changed("host") {
		cfg.Host = *host
	}
	if flags.Changed("port") {
		cfg.Port = *port
	}
	if flags.Changed("device") {
		cfg.Device = *device
	}
	if flags.Changed("baud") {
		cfg.Baud = *baud
	}
	if flags.Changed("expiry") {
		cfg.TargetExpiry = *expiry
	}
	if flags.Changed("cpa-warn") {
		cfg.CPAWarnNM = *cpaWarn
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = *logLevel
	}
}

func printTarget(logger *log.Logger, handler *ais.Handler, us, them ais.PCS, mmsi int, cpaWarnNM float64) {
	name, ok := handler.Name(mmsi)
	if !ok {
		name = "-"
	}

	rng := ais.Range(us.Lat, us.Lon, them.Lat, them.Lon)
	brg := ais.Bearing(us.Lat, us.Lon, them.Lat, them.Lon)

	cpaText, tcpaText := "n/a", "n/a"
	cpa, cpaOK := ais.CPA(us, them)
	tcpa, tcpaOK := ais.TCPA(us, them)
	if cpaOK {
		cpaText = fmt.Sprintf("%.2f nm", cpa)
	}
	if tcpaOK {
		tcpaText = fmt.Sprintf("%.0f min", tcpa*60)
	}

	fmt.Printf("%9d %-20s %11s %12s  rng %6.2f nm  brg %5.1f  cog %5.1f  sog %4.1f kn  cpa %s  tcpa %s\n",
		mmsi, name,
		ais.DMS(them.Lat*60, "N", "S", ais.LatNotAvailableMinutes),
		ais.DMS(them.Lon*60, "E", "W", ais.LonNotAvailableMinutes),
		rng, brg, them.Cog, them.Sog, cpaText, tcpaText)

	if cpaOK && tcpaOK && tcpa > 0 && cpa < cpaWarnNM {
		logger.Warn("close quarters",
			"mmsi", mmsi, "name", name,
			"cpa-nm", fmt.Sprintf("%.2f", cpa),
			"tcpa-min", fmt.Sprintf("%.0f", tcpa*60))
	}
}
