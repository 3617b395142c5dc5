package cli

import (
	"bufio"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/d1nch8g/stompbox/audio"
	"github.com/d1nch8g/stompbox/engine"
	"github.com/d1nch8g/stompbox/sound"
)

var (
	renderInput  string
	renderOutput string
	renderFrames int
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Apply an effect to an MP3 file",
	Long: `Decode an MP3 file, run it through an effect and write raw mono
float32 little-endian samples at the source sample rate.

Examples:
  stompbox render -e tremolo -i song.mp3 -o song.f32
  ffplay -f f32le -ar 44100 -ac 1 song.f32`,
	Args: cobra.NoArgs,
	RunE: runRender,
}

func init() {
	renderCmd.Flags().StringVarP(&effectID, "effect", "e", "", "effect to apply (defaults to STOMPBOX_EFFECT)")
	renderCmd.Flags().StringVarP(&renderInput, "input", "i", "", "input MP3 file")
	renderCmd.Flags().StringVarP(&renderOutput, "output", "o", "", "output raw float32 file")
	renderCmd.Flags().IntVar(&renderFrames, "frames", 0, "frames per cycle (defaults to STOMPBOX_FRAMES_PER_BUFFER)")
	_ = renderCmd.MarkFlagRequired("input")
	_ = renderCmd.MarkFlagRequired("output")

	rootCmd.AddCommand(renderCmd)
}

func runRender(cmd *cobra.Command, _ []string) error {
	cfg, logger, err := setup()
	if err != nil {
		return err
	}

	in, err := os.Open(renderInput)
	if err != nil {
		return fmt.Errorf("failed to open input: %w", err)
	}
	defer in.Close()

	source, err := sound.NewMP3Source(bufio.NewReader(in))
	if err != nil {
		return err
	}

	out, err := os.Create(renderOutput)
	if err != nil {
		return fmt.Errorf("failed to create output: %w", err)
	}
	defer out.Close()

	w := bufio.NewWriter(out)

	frames := renderFrames
	if frames <= 0 {
		frames = cfg.FramesPerBuffer
	}
	backend := audio.NewFileBackend(source, sound.NewRawSink(w), frames)

	eng := engine.NewEngine(engine.EngineConfig{
		ClientName:        cfg.ClientName,
		RateCheckInterval: cfg.RateCheckInterval,
	}, backend, logger)

	ctx, stop := runWithContext(cmd)
	defer stop()

	if err := eng.Run(ctx, resolveEffect(cmd, cfg)); err != nil {
		return err
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	logger.WithField("frames", backend.Frames()).Infof("wrote %s", renderOutput)
	return nil
}
