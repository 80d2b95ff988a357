package service

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"

	"heater_notifier/internal/models"
)

// ----------- Simulation defaults -----------
const (
	DefaultAmbientC     = 6.0  // room temperature with the heater off, °C
	DefaultMaxC         = 24.0 // temperature the heater drives toward, °C
	DefaultFluctuationC = 0.4  // stddev of the heater's target, °C
	DefaultHeatRate     = 0.1  // fraction of the gap to max closed per step
	DefaultCoolRate     = 0.03 // fraction of the gap to ambient lost per step
	DefaultPoints       = 1000
)

// HeatWindow is a [Start, End) interval with the heater ON.
type HeatWindow struct {
	Start models.TimeOfDay
	End   models.TimeOfDay
}

func (w HeatWindow) contains(hour float64) bool {
	return w.Start.Hours() <= hour && hour < w.End.Hours()
}

// DefaultHeatWindows is a sample teaching day.
func DefaultHeatWindows() []HeatWindow {
	return []HeatWindow{
		{models.MustTimeOfDay("09:14"), models.MustTimeOfDay("10:04")},
		{models.MustTimeOfDay("10:15"), models.MustTimeOfDay("11:05")},
		{models.MustTimeOfDay("11:15"), models.MustTimeOfDay("12:05")},
		{models.MustTimeOfDay("18:46"), models.MustTimeOfDay("19:47")},
	}
}

// WindowsFromSchedule converts the entries active on dayCode into heat windows.
func WindowsFromSchedule(entries []models.ScheduleEntry, dayCode string) []HeatWindow {
	out := make([]HeatWindow, 0, len(entries))
	for _, e := range entries {
		if !e.ActiveOn(dayCode) {
			continue
		}
		out = append(out, HeatWindow{Start: e.BeginTime, End: e.EndTime})
	}
	return out
}

// SimulationParams describes one simulated day.
type SimulationParams struct {
	From         models.TimeOfDay
	To           models.TimeOfDay
	Points       int
	Windows      []HeatWindow
	AmbientC     float64
	MaxC         float64
	FluctuationC float64
	HeatRate     float64
	CoolRate     float64
	Seed         uint64
}

// DefaultSimulationParams covers 08:00 to 20:00 with the sample windows.
func DefaultSimulationParams() SimulationParams {
	return SimulationParams{
		From:         models.MustTimeOfDay("08:00"),
		To:           models.MustTimeOfDay("20:00"),
		Points:       DefaultPoints,
		Windows:      DefaultHeatWindows(),
		AmbientC:     DefaultAmbientC,
		MaxC:         DefaultMaxC,
		FluctuationC: DefaultFluctuationC,
		HeatRate:     DefaultHeatRate,
		CoolRate:     DefaultCoolRate,
		Seed:         1,
	}
}

var (
	errInvalidRange  = errors.New("simulation range: From must be before To")
	errInvalidPoints = errors.New("simulation needs at least 2 points")
	errInvalidRates  = errors.New("heat and cool rates must be within (0, 1]")
)

func (p SimulationParams) Validate() error {
	if p.From >= p.To {
		return errInvalidRange
	}
	if p.Points < 2 {
		return errInvalidPoints
	}
	if p.HeatRate <= 0 || p.HeatRate > 1 || p.CoolRate <= 0 || p.CoolRate > 1 {
		return errInvalidRates
	}
	if p.FluctuationC < 0 {
		return fmt.Errorf("fluctuation must be >= 0, got %.2f", p.FluctuationC)
	}
	return nil
}

// Sample is one point of the simulated day.
type Sample struct {
	Hour         float64 // decimal hours, 9.5 is 09:30
	TemperatureC float64
	HeaterOn     bool
}

// SimulatorService models room temperature under a heater schedule: the
// heater closes a fixed fraction of the gap to its target each step, and the
// room loses a fixed fraction of its excess over ambient when it is off.
type SimulatorService struct {
	params SimulationParams
	rng    *rand.Rand
}

func NewSimulatorService(params SimulationParams) (*SimulatorService, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	return &SimulatorService{
		params: params,
		rng:    rand.New(rand.NewPCG(params.Seed, params.Seed^0x9e3779b97f4a7c15)),
	}, nil
}

// Run simulates the whole day. The first sample is the room at ambient with
// the heater off.
func (s *SimulatorService) Run(ctx context.Context) ([]Sample, error) {
	p := s.params
	from, to := p.From.Hours(), p.To.Hours()
	step := (to - from) / float64(p.Points-1)

	out := make([]Sample, p.Points)
	out[0] = Sample{Hour: from, TemperatureC: p.AmbientC}

	for i := 1; i < p.Points; i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		hour := from + step*float64(i)
		if i == p.Points-1 {
			hour = to
		}
		prev := out[i-1].TemperatureC
		// heater target jitters every step
		maxC := p.MaxC + s.rng.NormFloat64()*p.FluctuationC

		on := s.heaterOn(hour)
		var temp float64
		if on {
			temp = s.handleHeat(prev, maxC)
		} else {
			temp = s.handleCooling(prev)
		}
		out[i] = Sample{Hour: hour, TemperatureC: temp, HeaterOn: on}
	}
	return out, nil
}

func (s *SimulatorService) heaterOn(hour float64) bool {
	for _, w := range s.params.Windows {
		if w.contains(hour) {
			return true
		}
	}
	return false
}

// handleHeat moves temp toward maxC, capping at maxC.
func (s *SimulatorService) handleHeat(temp, maxC float64) float64 {
	if temp < maxC {
		return temp + s.params.HeatRate*(maxC-temp)
	}
	return maxC
}

// handleCooling follows Newton's law of cooling toward ambient.
func (s *SimulatorService) handleCooling(temp float64) float64 {
	return temp - s.params.CoolRate*(temp-s.params.AmbientC)
}
