package config

type MokuConf struct {
	IP           string  `koanf:"ip"`
	Channel      int     `koanf:"channel"`
	Vpp          float64 `koanf:"vpp"`
	SampleCount  int     `koanf:"sample_count"`
	ForceConnect bool    `koanf:"force_connect"`
}

type WaveformConf struct {
	Shape     string `koanf:"shape"`
	Normalize string `koanf:"normalize"`
}

type RamseyConf struct {
	TauS      float64 `koanf:"tau_s"`
	TPi2S     float64 `koanf:"t_pi2_s"`
	SigmaFrac float64 `koanf:"sigma_frac"`
	Amp       float64 `koanf:"amp"`
}

type SquareConf struct {
	FRepHz float64 `koanf:"f_rep_hz"`
	Duty   float64 `koanf:"duty"`
	High   float64 `koanf:"high"`
	Low    float64 `koanf:"low"`
}

type PlotConf struct {
	Enable          bool `koanf:"enable"`
	RefreshMs       int  `koanf:"refresh_ms"`
	DoFFT           bool `koanf:"do_fft"`
	EnableLogOutput bool `koanf:"enable_log_output"`
}

type DigitalConf struct {
	Pin        int `koanf:"pin"`
	Divider    int `koanf:"divider"`
	PatternLen int `koanf:"pattern_len"`
}

// Defaults returns the stock configuration applied underneath the config
// file and environment, so a bare invocation still drives a device on the
// default link-local address.
func Defaults() map[string]interface{} {
	return map[string]interface{}{
		"moku.ip":                "169.254.77.89",
		"moku.channel":           1,
		"moku.vpp":               1.0,
		"moku.sample_count":      2048,
		"moku.force_connect":     true,
		"waveform.shape":         "gaussian_ramsey",
		"waveform.normalize":     "peak",
		"ramsey.tau_s":           4.9e-6,
		"ramsey.t_pi2_s":         100e-9,
		"ramsey.sigma_frac":      0.25,
		"ramsey.amp":             1.0,
		"square.f_rep_hz":        1e3,
		"square.duty":            0.5,
		"square.high":            1.0,
		"square.low":             -1.0,
		"plot.enable":            true,
		"plot.refresh_ms":        500,
		"plot.do_fft":            false,
		"plot.enable_log_output": true,
		"digital.pin":            1,
		"digital.divider":        8,
		"digital.pattern_len":    1024,
	}
}
