package audio

import (
	"fmt"
	"strings"
	"sync"

	"github.com/gordonklaus/portaudio"
)

type Config struct {
	HostAPI         string
	SampleRate      float64
	FramesPerBuffer int
}

func GetDefaultConfig() Config {
	return Config{
		FramesPerBuffer: 128,
	}
}

var hostAPIs = map[string]portaudio.HostApiType{
	"jack":      portaudio.JACK,
	"alsa":      portaudio.ALSA,
	"oss":       portaudio.OSS,
	"coreaudio": portaudio.CoreAudio,
	"wasapi":    portaudio.WASAPI,
	"asio":      portaudio.ASIO,
}

// PortaudioBackend runs a duplex mono stream in callback mode
type PortaudioBackend struct {
	config     Config
	clientName string
	params     portaudio.StreamParameters
	stream     *portaudio.Stream
	opened     bool

	done      chan struct{}
	closeOnce sync.Once
}

func NewPortaudioBackend(config Config) *PortaudioBackend {
	return &PortaudioBackend{
		config: config,
		done:   make(chan struct{}),
	}
}

func (p *PortaudioBackend) Open(clientName string) error {
	if err := portaudio.Initialize(); err != nil {
		return fmt.Errorf("failed to initialize portaudio: %w", err)
	}

	api, err := p.hostAPI()
	if err != nil {
		portaudio.Terminate()
		return err
	}
	if api.DefaultInputDevice == nil || api.DefaultOutputDevice == nil {
		portaudio.Terminate()
		return fmt.Errorf("host api %s has no default input or output device", api.Name)
	}

	params := portaudio.LowLatencyParameters(api.DefaultInputDevice, api.DefaultOutputDevice)
	params.Input.Channels = 1
	params.Output.Channels = 1
	if p.config.SampleRate > 0 {
		params.SampleRate = p.config.SampleRate
	}
	if p.config.FramesPerBuffer > 0 {
		params.FramesPerBuffer = p.config.FramesPerBuffer
	}

	p.clientName = clientName
	p.params = params
	p.opened = true
	return nil
}

func (p *PortaudioBackend) hostAPI() (*portaudio.HostApiInfo, error) {
	name := strings.ToLower(strings.TrimSpace(p.config.HostAPI))
	if name == "" {
		api, err := portaudio.DefaultHostApi()
		if err != nil {
			return nil, fmt.Errorf("failed to get default host api: %w", err)
		}
		return api, nil
	}

	apiType, ok := hostAPIs[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownHostAPI, p.config.HostAPI)
	}
	api, err := portaudio.HostApi(apiType)
	if err != nil {
		return nil, fmt.Errorf("failed to get host api %s: %w", name, err)
	}
	return api, nil
}

// SampleRate reports the running stream rate, or the requested rate before activation
func (p *PortaudioBackend) SampleRate() float64 {
	if p.stream != nil {
		if info := p.stream.Info(); info != nil && info.SampleRate > 0 {
			return info.SampleRate
		}
	}
	return p.params.SampleRate
}

func (p *PortaudioBackend) Register(cb Callback) error {
	if !p.opened {
		return ErrNotOpen
	}

	stream, err := portaudio.OpenStream(p.params, func(in, out []float32) {
		cb(in, out)
	})
	if err != nil {
		return fmt.Errorf("failed to open audio stream: %w", err)
	}
	p.stream = stream
	return nil
}

func (p *PortaudioBackend) Activate() error {
	if p.stream == nil {
		return ErrNotOpen
	}
	if err := p.stream.Start(); err != nil {
		return fmt.Errorf("failed to start audio stream: %w", err)
	}
	return nil
}

func (p *PortaudioBackend) Done() <-chan struct{} {
	return p.done
}

func (p *PortaudioBackend) Err() error {
	return nil
}

func (p *PortaudioBackend) Close() error {
	var err error
	p.closeOnce.Do(func() {
		defer close(p.done)
		if p.stream != nil {
			if stopErr := p.stream.Stop(); stopErr != nil {
				err = fmt.Errorf("failed to stop audio stream: %w", stopErr)
			}
			if closeErr := p.stream.Close(); closeErr != nil && err == nil {
				err = fmt.Errorf("failed to close audio stream: %w", closeErr)
			}
		}
		if p.opened {
			portaudio.Terminate()
		}
	})
	return err
}
