// Command dspbench runs a chain of registry operations over a WAV file and
// reports throughput, in the spirit of the teacher's headless mode
// (cmd/gbemu -headless): no window required, suitable for CI and scripted
// benchmarking, with an optional switch to play the result back through
// ebiten's audio context for manual auditioning.
package main

import (
	"bytes"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2/audio"
	flag "github.com/spf13/pflag"

	"github.com/sndcore/dspkernel/internal/kernel"
	"github.com/sndcore/dspkernel/internal/patch"
	"github.com/sndcore/dspkernel/internal/registry"
)

type cliFlags struct {
	InPath    string
	OutPath   string
	PatchPath string
	Channels  int
	Play      bool
}

func parseFlags() cliFlags {
	var f cliFlags
	flag.StringVarP(&f.InPath, "in", "i", "", "input WAV path (16-bit PCM)")
	flag.StringVarP(&f.OutPath, "out", "o", "", "output WAV path (16-bit PCM)")
	flag.StringVarP(&f.PatchPath, "patch", "p", "", "YAML patch program describing the operation chain")
	flag.IntVarP(&f.Channels, "channels", "c", 2, "channel count of the input WAV (1 or 2)")
	flag.BoolVar(&f.Play, "play", false, "play the processed output back via ebiten's audio context")
	flag.Parse()
	return f
}

func readAllFrames(path string, channels int, scratch *kernel.Scratch) ([]float32, int, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, 0, fmt.Errorf("read %s: %w", path, err)
	}
	frames := len(raw) / (2 * channels)
	buf := make([]float32, frames*channels)
	if err := kernel.ReadWavBytes(buf, bytes.NewReader(raw), 15, channels, frames, scratch); err != nil {
		return nil, 0, fmt.Errorf("decode wav: %w", err)
	}
	return buf, frames, nil
}

func main() {
	f := parseFlags()
	if f.InPath == "" || f.OutPath == "" {
		log.Fatal("both -in and -out are required")
	}

	scratch := kernel.NewScratch()
	buf, frames, err := readAllFrames(f.InPath, f.Channels, scratch)
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("loaded %s: %d frames, %d channel(s)", f.InPath, frames, f.Channels)

	r := registry.New()

	if f.PatchPath != "" {
		pf, err := os.Open(f.PatchPath)
		if err != nil {
			log.Fatalf("open patch %s: %v", f.PatchPath, err)
		}
		prog, err := patch.Load(pf)
		pf.Close()
		if err != nil {
			log.Fatalf("load patch: %v", err)
		}

		start := time.Now()
		if err := patch.Run(prog, r, buf, f.Channels, frames); err != nil {
			log.Fatalf("run patch: %v", err)
		}
		elapsed := time.Since(start)
		samplesPerSec := float64(frames*f.Channels) / elapsed.Seconds()
		log.Printf("processed %d steps over %d frames in %s (%.0f samples/sec)",
			len(prog.Steps), frames, elapsed.Truncate(time.Microsecond), samplesPerSec)
	}

	out, err := os.Create(f.OutPath)
	if err != nil {
		log.Fatalf("create %s: %v", f.OutPath, err)
	}
	defer out.Close()
	if err := kernel.WriteWavBytes(out, buf, f.Channels, frames, scratch); err != nil {
		log.Fatalf("write wav: %v", err)
	}
	log.Printf("wrote %s", f.OutPath)

	if f.Play {
		if err := playback(buf, f.Channels, frames, scratch); err != nil {
			log.Fatalf("playback: %v", err)
		}
	}
}

// playback wraps the processed buffer in an ebiten audio.Context/Player the
// same way the teacher's internal/ui/audio.go wraps the emulator's APU
// stream: convert to 16-bit stereo and hand an io.Reader to the player.
func playback(buf []float32, channels, frames int, scratch *kernel.Scratch) error {
	stereo := buf
	if channels == 1 {
		wide := make([]float32, frames*2)
		kernel.Standardize(44100, 1, buf, frames, wide)
		stereo = wide
	}

	ctx := audio.NewContext(44100)
	var pcmBuf bytes.Buffer
	if err := kernel.WriteWavBytes(&pcmBuf, stereo, 2, frames, scratch); err != nil {
		return fmt.Errorf("encode for playback: %w", err)
	}

	player, err := ctx.NewPlayerFromBytes(pcmBuf.Bytes())
	if err != nil {
		return fmt.Errorf("new player: %w", err)
	}
	player.Play()
	for player.IsPlaying() {
		time.Sleep(20 * time.Millisecond)
	}
	return nil
}
