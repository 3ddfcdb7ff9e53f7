package moku

import (
	"fmt"

	"github.com/charmbracelet/log"
)

// AWG is the arbitrary waveform generator instrument on an owned device.
type AWG struct {
	*Client
}

// NewAWG deploys the AWG instrument on the device.
func NewAWG(c *Client) (*AWG, error) {
	if _, err := c.do("awg", map[string]any{}, nil); err != nil {
		return nil, fmt.Errorf("deploy awg: %w", err)
	}
	return &AWG{c}, nil
}

// GenerateWaveform uploads one LUT period and starts it repeating at fRepHz
// with the given peak-to-peak amplitude. LUT values must already be in
// [-1, 1]; sampleRate is a device rate string, normally "Auto".
func (a *AWG) GenerateWaveform(channel int, lut []float64, fRepHz, vpp float64, sampleRate string) error {
	payload := map[string]any{
		"channel":     channel,
		"sample_rate": sampleRate,
		"lut_data":    lut,
		"frequency":   fRepHz,
		"amplitude":   vpp,
	}
	if _, err := a.do("awg/generate_waveform", payload, nil); err != nil {
		return fmt.Errorf("generate waveform: %w", err)
	}
	return nil
}

// ProgramIndefinitely programs one channel and relinquishes ownership right
// away. The waveform keeps running on the hardware until something else
// claims the device and reprograms it.
func ProgramIndefinitely(ip string, force bool, channel int, lut []float64, fRepHz, vpp float64) error {
	c, err := Connect(ip, force)
	if err != nil {
		return err
	}
	defer func() {
		if err := c.RelinquishOwnership(); err != nil {
			log.Errorf("Could not relinquish ownership: %v", err)
			return
		}
		log.Info("Ownership relinquished")
	}()

	awg, err := NewAWG(c)
	if err != nil {
		return err
	}
	if err := awg.GenerateWaveform(channel, lut, fRepHz, vpp, "Auto"); err != nil {
		return err
	}

	log.Infof("AWG CH%d running indefinitely: f_rep=%.3f kHz, Vpp=%.3f V", channel, fRepHz/1e3, vpp)
	log.Info("Relinquishing ownership now (GUI/other apps can take control)")
	return nil
}
