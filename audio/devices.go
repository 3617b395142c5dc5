package audio

import (
	"fmt"
	"io"

	"github.com/gordonklaus/portaudio"
)

// DeviceInfo describes an audio device visible to portaudio
type DeviceInfo struct {
	HostAPI           string
	Name              string
	MaxInputChannels  int
	MaxOutputChannels int
	DefaultSampleRate float64
}

// Devices returns every device of every host api.
func Devices() ([]DeviceInfo, error) {
	if err := portaudio.Initialize(); err != nil {
		return nil, fmt.Errorf("failed to initialize portaudio: %w", err)
	}
	defer portaudio.Terminate()

	devices, err := portaudio.Devices()
	if err != nil {
		return nil, fmt.Errorf("failed to list devices: %w", err)
	}

	result := make([]DeviceInfo, 0, len(devices))
	for _, d := range devices {
		info := DeviceInfo{
			Name:              d.Name,
			MaxInputChannels:  d.MaxInputChannels,
			MaxOutputChannels: d.MaxOutputChannels,
			DefaultSampleRate: d.DefaultSampleRate,
		}
		if d.HostApi != nil {
			info.HostAPI = d.HostApi.Name
		}
		result = append(result, info)
	}
	return result, nil
}

// PrintDevices writes one line per device.
func PrintDevices(w io.Writer, devices []DeviceInfo) {
	for _, d := range devices {
		fmt.Fprintf(w, "[%s] %s (in: %d, out: %d, %.0f Hz)\n",
			d.HostAPI, d.Name, d.MaxInputChannels, d.MaxOutputChannels, d.DefaultSampleRate)
	}
}
