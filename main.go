package main

import (
	"errors"
	"fmt"
	"os"
	"runtime/pprof"
	"strings"
	"time"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/log"

	"github.com/navjotschahal/moku-arbitrary-waveform-poc/config"
	"github.com/navjotschahal/moku-arbitrary-waveform-poc/moku"
	"github.com/navjotschahal/moku-arbitrary-waveform-poc/tui"
	"github.com/navjotschahal/moku-arbitrary-waveform-poc/waveform"

	"github.com/knadh/koanf/parsers/hcl"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

var cli struct {
	Verbose bool `help:"Prints debug output by default"`
	Profile bool `help:"Output a pprof profile"`
	Probe   struct {
	} `cmd:"" help:"Connect to the Moku, print its description, and relinquish"`
	Run struct {
	} `cmd:"" help:"Build the configured waveform, optionally plot it, then program the AWG"`
	Plot struct {
	} `cmd:"" help:"Build the configured waveform and plot it without touching hardware"`
	Digital struct {
	} `cmd:"" help:"Toggle a digital pin via the pattern generator"`
}

var configFile = koanf.New(".")

func getConfigPath() string {
	paths := []string{"/etc/mokuawg/config.hcl", "~/.config/mokuawg/config.hcl", "./config.hcl"}
	for _, path := range paths {
		if _, err := os.Stat(path); !errors.Is(err, os.ErrNotExist) {
			log.Infof("Found config file: %s", path)
			return path
		}
	}
	log.Info("Config file not found!")
	return ""
}

func loadConfig() {
	configFile.Load(confmap.Provider(config.Defaults(), "."), nil)

	if err := configFile.Load(file.Provider(getConfigPath()), hcl.Parser(true)); err != nil {
		log.Errorf("Could not read config file: %v", err)
		log.Error("Attempting to use environment variables")
		configFile.Load(env.Provider("", env.Opt{
			Prefix: "MOKUAWG_",
			TransformFunc: func(k, v string) (string, any) {
				key := strings.ToLower(strings.TrimPrefix(k, "MOKUAWG_"))
				k = strings.Replace(key, "_", ".", 1)
				fmt.Printf("Found config env var: %s=%v\n", k, v)
				return k, v
			},
		}), nil)
	}
}

// buildSelectedWaveform dispatches on the configured shape name and returns
// the finished LUT plus a plot title.
func buildSelectedWaveform(shape string, n int) (waveform.LUT, string, error) {
	switch strings.ToLower(strings.TrimSpace(shape)) {
	case "gaussian", "gaussian_ramsey", "ramsey", "gaussian-ramsey":
		rdef := config.RamseyConf{
			TauS:      configFile.Float64("ramsey.tau_s"),
			TPi2S:     configFile.Float64("ramsey.t_pi2_s"),
			SigmaFrac: configFile.Float64("ramsey.sigma_frac"),
			Amp:       configFile.Float64("ramsey.amp"),
		}
		log.Debugf("Found ramsey definition: %##v", rdef)

		lut, err := waveform.BuildGaussianRamseyLUT(
			waveform.RamseyParams{TauS: rdef.TauS, TPi2S: rdef.TPi2S},
			n, rdef.SigmaFrac, rdef.Amp,
		)
		if err != nil {
			return waveform.LUT{}, "", err
		}
		title := fmt.Sprintf("Gaussian τ–π/2–τ–π/2 (f_rep=%.2f kHz)", lut.FRep/1e3)
		return lut, title, nil

	case "square", "sq":
		sdef := config.SquareConf{
			FRepHz: configFile.Float64("square.f_rep_hz"),
			Duty:   configFile.Float64("square.duty"),
			High:   configFile.Float64("square.high"),
			Low:    configFile.Float64("square.low"),
		}
		log.Debugf("Found square definition: %##v", sdef)

		strategy, err := waveform.ParseStrategy(configFile.String("waveform.normalize"))
		if err != nil {
			return waveform.LUT{}, "", err
		}
		lut, err := waveform.BuildSquareLUT(
			waveform.SquareParams{FRepHz: sdef.FRepHz, Duty: sdef.Duty, High: sdef.High, Low: sdef.Low},
			n, strategy,
		)
		if err != nil {
			return waveform.LUT{}, "", err
		}
		title := fmt.Sprintf("Square wave (f_rep=%.2f kHz, duty=%.3f)", lut.FRep/1e3, sdef.Duty)
		return lut, title, nil
	}

	return waveform.LUT{}, "", fmt.Errorf("unsupported waveform shape %q, use one of: gaussian_ramsey, square", shape)
}

func digitalTest(mdef config.MokuConf, ddef config.DigitalConf) {
	c, err := moku.Connect(mdef.IP, mdef.ForceConnect)
	if err != nil {
		log.Fatalf("Could not connect to Moku at %s: %v", mdef.IP, err)
	}
	defer func() {
		if err := c.RelinquishOwnership(); err != nil {
			log.Errorf("Could not relinquish ownership: %v", err)
		}
	}()

	la, err := moku.NewLogicAnalyzer(c)
	if err != nil {
		log.Fatalf("Could not deploy logic analyzer: %v", err)
	}
	if err := la.SetPinMode(ddef.Pin, "PG1"); err != nil {
		log.Fatalf("Could not route pin %d: %v", ddef.Pin, err)
	}

	high := moku.ConstantPattern(ddef.Pin, 1, ddef.PatternLen)
	low := moku.ConstantPattern(ddef.Pin, 0, ddef.PatternLen)

	steps := []struct {
		patterns []moku.PinPattern
		label    string
		hold     time.Duration
	}{
		{high, "HIGH (3.3 V)", 2 * time.Second},
		{low, "LOW (0 V)", 2 * time.Second},
		{high, "HIGH again", 5 * time.Second},
	}
	for _, step := range steps {
		if err := la.SetPatternGenerator(1, step.patterns, ddef.Divider); err != nil {
			log.Fatalf("Could not set pattern generator: %v", err)
		}
		log.Infof("Pin %d = %s", ddef.Pin, step.label)
		time.Sleep(step.hold)
	}
}

func main() {
	log.Info("Starting Moku AWG controller")
	flags := kong.Parse(&cli)
	if cli.Verbose {
		log.SetLevel(log.DebugLevel)
	}

	if cli.Profile {
		prof, err := os.Create("./cpu.pprof")
		if err != nil {
			panic(err)
		}
		pprof.StartCPUProfile(prof)
		defer pprof.StopCPUProfile()
	}

	loadConfig()

	mdef := config.MokuConf{
		IP:           configFile.String("moku.ip"),
		Channel:      configFile.Int("moku.channel"),
		Vpp:          configFile.Float64("moku.vpp"),
		SampleCount:  configFile.Int("moku.sample_count"),
		ForceConnect: configFile.Bool("moku.force_connect"),
	}
	log.Debugf("Found moku definition: %##v", mdef)

	switch flags.Command() {
	case "probe":
		c, err := moku.Connect(mdef.IP, mdef.ForceConnect)
		if err != nil {
			log.Fatalf("Could not connect to Moku at %s: %v", mdef.IP, err)
		}
		defer c.RelinquishOwnership()

		desc, err := c.Describe()
		if err != nil {
			log.Fatalf("Could not describe device: %v", err)
		}
		for key, val := range desc {
			log.Infof("\t- %s: %v", key, val)
		}

	case "run", "plot":
		shape := configFile.String("waveform.shape")
		lut, title, err := buildSelectedWaveform(shape, mdef.SampleCount)
		if err != nil {
			log.Fatalf("Could not build waveform: %v", err)
		}
		log.Infof("Repetition frequency = %.3f kHz", lut.FRep/1e3)

		pdef := config.PlotConf{
			Enable:          configFile.Bool("plot.enable"),
			RefreshMs:       configFile.Int("plot.refresh_ms"),
			DoFFT:           configFile.Bool("plot.do_fft"),
			EnableLogOutput: configFile.Bool("plot.enable_log_output"),
		}
		log.Debugf("Found plot definition: %##v", pdef)

		if flags.Command() == "plot" || pdef.Enable {
			tui.StartUI(lut, pdef, title, mdef.Vpp)
		}

		if flags.Command() == "run" {
			err := moku.ProgramIndefinitely(mdef.IP, mdef.ForceConnect, mdef.Channel, lut.Samples, lut.FRep, mdef.Vpp)
			if err != nil {
				log.Fatalf("Could not program AWG: %v", err)
			}
		}

	case "digital":
		ddef := config.DigitalConf{
			Pin:        configFile.Int("digital.pin"),
			Divider:    configFile.Int("digital.divider"),
			PatternLen: configFile.Int("digital.pattern_len"),
		}
		digitalTest(mdef, ddef)

	default:
		log.Info("Command not recognized")
	}
}
