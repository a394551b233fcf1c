// Command normalize rewrites a WAV file with a gain applied so its
// measured loudness matches a target level.
//
//	normalize rms -6 in.wav out.wav
//	normalize lufs -23 --strict-ebur128 in.wav out.wav
package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"

	"github.com/cwbudde/algo-normalize/analyze"
	"github.com/cwbudde/algo-normalize/normalize"
)

// CLI mirrors normalize.Settings; kong owns parsing and help text.
type CLI struct {
	Mode   string  `arg:"" enum:"amplitude,lufs,rms" help:"Measurement algorithm (amplitude, lufs, rms)."`
	Target float64 `arg:"" help:"Target level. Units depend on the mode: dB for rms, loudness units for lufs."`
	Input  string  `arg:"" type:"existingfile" help:"Input WAV file."`
	Output string  `arg:"" type:"path" help:"Output WAV file."`

	ChannelIndependent bool `short:"c" help:"Measure and gain each channel independently."`
	StrictEBUR128      bool `short:"s" name:"strict-ebur128" help:"Strictly EBU R128 compliant measurement (no stereo normalization)."`
	Quiet              bool `short:"q" help:"Suppress progress output."`
}

func main() {
	cli := &CLI{}
	kong.Parse(cli,
		kong.Name("normalize"),
		kong.Description("Two-pass loudness normalization for WAV files"),
		kong.UsageOnError(),
	)

	if err := run(cli); err != nil {
		fmt.Fprintf(os.Stderr, "normalize: %v\n", err)
		os.Exit(1)
	}
}

func run(cli *CLI) error {
	mode, err := analyze.ParseKind(cli.Mode)
	if err != nil {
		return err
	}

	src, depth, err := openWAV(cli.Input)
	if err != nil {
		return fmt.Errorf("opening %s: %w", cli.Input, err)
	}

	out, err := os.Create(cli.Output)
	if err != nil {
		return fmt.Errorf("creating %s: %w", cli.Output, err)
	}
	defer out.Close()

	settings := normalize.Settings{
		Mode:               mode,
		Target:             cli.Target,
		ChannelIndependent: cli.ChannelIndependent,
		StrictR128:         cli.StrictEBUR128,
	}

	var progress normalize.Progress
	if !cli.Quiet {
		progress = &consoleProgress{}
	}

	if err := settings.Normalize(src, newWAVSink(out, src.Spec(), depth), progress); err != nil {
		// A failed run must not leave output that looks valid.
		out.Close()
		os.Remove(cli.Output)

		return err
	}

	return nil
}

// consoleProgress prints a single-line processed-frame counter.
type consoleProgress struct {
	total int
}

func (p *consoleProgress) Begin(total int) {
	p.total = total
}

func (p *consoleProgress) Advance(processed int) {
	if processed%4096 == 0 || processed == p.total {
		fmt.Printf("\rProcessing sample %d/%d", processed, p.total)
	}

	if processed == p.total {
		fmt.Println()
	}
}
