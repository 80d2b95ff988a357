// Command heatsim simulates room temperature over one day under a heater
// schedule and writes the trace as CSV.
package main

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"heater_notifier/internal/logger"
	"heater_notifier/internal/models"
	"heater_notifier/internal/repository"
	"heater_notifier/internal/repository/db"
	"heater_notifier/internal/service"

	"github.com/spf13/pflag"
)

type options struct {
	out      string
	dbPath   string
	building string
	room     string
	day      string
	from     string
	to       string
	logLevel string
	params   service.SimulationParams
}

func parseFlags(args []string) (options, error) {
	p := service.DefaultSimulationParams()
	o := options{params: p}

	fs := pflag.NewFlagSet("heatsim", pflag.ContinueOnError)
	fs.StringVarP(&o.out, "out", "o", "-", "CSV output file, - for stdout")
	fs.StringVar(&o.dbPath, "db", "", "load heat windows from this schedule database")
	fs.StringVar(&o.building, "building", "", "building to load from --db")
	fs.StringVar(&o.room, "room", "", "room to load from --db")
	fs.StringVar(&o.day, "day", "M", "day code or weekday name to load from --db")
	fs.StringVar(&o.from, "from", p.From.String(), "start of the simulated day")
	fs.StringVar(&o.to, "to", p.To.String(), "end of the simulated day")
	fs.IntVar(&o.params.Points, "points", p.Points, "number of samples")
	fs.Uint64Var(&o.params.Seed, "seed", p.Seed, "random seed for heater fluctuation")
	fs.Float64Var(&o.params.AmbientC, "ambient", p.AmbientC, "ambient temperature, °C")
	fs.Float64Var(&o.params.MaxC, "max", p.MaxC, "heater target temperature, °C")
	fs.Float64Var(&o.params.FluctuationC, "fluctuation", p.FluctuationC, "stddev of the heater target, °C")
	fs.Float64Var(&o.params.HeatRate, "heat-rate", p.HeatRate, "fraction of the gap to max closed per step")
	fs.Float64Var(&o.params.CoolRate, "cool-rate", p.CoolRate, "fraction of the gap to ambient lost per step")
	fs.StringVar(&o.logLevel, "log-level", logger.InfoLevel, "log level")
	if err := fs.Parse(args); err != nil {
		return o, err
	}

	var err error
	if o.params.From, err = models.ParseTimeOfDay(o.from); err != nil {
		return o, fmt.Errorf("--from: %w", err)
	}
	if o.params.To, err = models.ParseTimeOfDay(o.to); err != nil {
		return o, fmt.Errorf("--to: %w", err)
	}
	if o.dbPath != "" && (o.building == "" || o.room == "") {
		return o, fmt.Errorf("--db needs --building and --room")
	}
	return o, nil
}

// loadWindows replaces the sample windows with the room's schedule for one day.
func loadWindows(ctx context.Context, o options, log *logger.Logger) ([]service.HeatWindow, error) {
	dayCode, err := service.ParseDay(o.day)
	if err != nil {
		return nil, err
	}
	conn, err := db.InitDB(o.dbPath)
	if err != nil {
		return nil, err
	}
	defer conn.Close()

	repos := repository.NewRepository(conn)
	entries, err := repos.Schedules.List(ctx, repository.ScheduleFilter{
		Building: o.building,
		Room:     o.room,
		DayCode:  dayCode,
	})
	if err != nil {
		return nil, fmt.Errorf("list schedules: %w", err)
	}
	log.Infow("loaded schedule", "building", o.building, "room", o.room, "day", dayCode, "entries", len(entries))
	return service.WindowsFromSchedule(entries, dayCode), nil
}

func writeCSV(w io.Writer, samples []service.Sample) error {
	writer := csv.NewWriter(w)

	if err := writer.Write([]string{"hour", "temperature_c", "heater_on"}); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}
	for _, s := range samples {
		if err := writer.Write([]string{
			strconv.FormatFloat(s.Hour, 'f', 4, 64),
			strconv.FormatFloat(s.TemperatureC, 'f', 2, 64),
			strconv.FormatBool(s.HeaterOn),
		}); err != nil {
			return fmt.Errorf("failed to write CSV record: %w", err)
		}
	}
	writer.Flush()
	return writer.Error()
}

func run(ctx context.Context, args []string, stdout io.Writer) error {
	o, err := parseFlags(args)
	if err != nil {
		return err
	}
	log := logger.NewStderr(o.logLevel)
	defer func() { _ = log.Sync() }()

	if o.dbPath != "" {
		if o.params.Windows, err = loadWindows(ctx, o, log); err != nil {
			return err
		}
	}

	sim, err := service.NewSimulatorService(o.params)
	if err != nil {
		return err
	}
	samples, err := sim.Run(ctx)
	if err != nil {
		return err
	}

	out := stdout
	if o.out != "-" {
		f, err := os.Create(o.out)
		if err != nil {
			return fmt.Errorf("failed to create CSV file: %w", err)
		}
		defer f.Close()
		out = f
	}
	if err := writeCSV(out, samples); err != nil {
		return err
	}
	log.Infow("simulation written", "samples", len(samples), "windows", len(o.params.Windows), "out", o.out)
	return nil
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, "heatsim:", err)
		os.Exit(1)
	}
}
