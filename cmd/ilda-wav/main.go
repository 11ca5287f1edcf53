// ABOUTME: Entry point for the ILDA to WAV converter
// ABOUTME: Parses CLI flags and runs the decode/encode pipeline
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/lasertools/ilda-go/pkg/ilda/decode"
	"github.com/lasertools/ilda-go/pkg/ilda/encode"
)

var (
	fps     = flag.Int("fps", encode.DefaultFPS, "Play speed in frames per second")
	signals = flag.String("signals", encode.DefaultSignals, "Output channels, one per character: x, y, z, l (laser gate), r, g, b")
	invert  = flag.String("invert", "", "Axes to invert (ex: xy)")
	rate    = flag.Int("rate", encode.DefaultSampleRate, "Sample rate in Hz")
	pps     = flag.Int("pps", encode.DefaultPointsPerSecond, "Point budget per second of animation; crowded frames get less sample time per point, never fewer points")
	outFile = flag.String("o", "", "Output file (default: stdout)")
)

func usage() {
	fmt.Fprintf(flag.CommandLine.Output(), `ilda-wav converts an .ild animation to a .wav file.

Useful when a galvanometer and laser hang off a sound card: samples are
written as 16-bit little-endian signed integers per channel (s16le).

Usage: ilda-wav [options] [filename]

With no filename ilda-wav reads from stdin.

Options:
`)
	flag.PrintDefaults()
}

func main() {
	log.SetFlags(0)
	flag.Usage = usage
	flag.Parse()

	var in io.Reader = os.Stdin
	if name := flag.Arg(0); name != "" {
		f, err := os.Open(name)
		if err != nil {
			log.Fatalf("ilda-wav: %v", err)
		}
		defer f.Close()
		in = f
	}

	var out io.Writer = os.Stdout
	if *outFile != "" {
		f, err := os.Create(*outFile)
		if err != nil {
			log.Fatalf("ilda-wav: %v", err)
		}
		defer func() {
			if err := f.Close(); err != nil {
				log.Fatalf("ilda-wav: closing output: %v", err)
			}
		}()
		out = f
	}

	enc, err := encode.NewEncoder(out, encode.Options{
		FPS:             *fps,
		SampleRate:      *rate,
		PointsPerSecond: *pps,
		Signals:         *signals,
		Invert:          *invert,
	})
	if err != nil {
		log.Fatalf("ilda-wav: %v", err)
	}

	if err := enc.Encode(decode.NewDecoder(bufio.NewReader(in))); err != nil {
		log.Fatalf("ilda-wav: %v", err)
	}
}
