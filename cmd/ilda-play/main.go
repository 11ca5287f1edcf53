// ABOUTME: Entry point for the terminal ILDA player
// ABOUTME: Parses CLI flags and runs the frame preview
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/lasertools/ilda-go/internal/player"
	"github.com/lasertools/ilda-go/pkg/ilda"
	"github.com/lasertools/ilda-go/pkg/ilda/decode"
)

var (
	fps    = flag.Int("fps", 20, "Frames per second")
	repeat = flag.Bool("repeat", false, "Endlessly repeat the input")
)

func usage() {
	fmt.Fprintf(flag.CommandLine.Output(), `ilda-play previews an .ild animation in the terminal.

Usage: ilda-play [options] [filename]

With no filename ilda-play reads from stdin.

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
			log.Fatalf("ilda-play: %v", err)
		}
		defer f.Close()
		in = f
	}

	var src ilda.FrameSource = decode.NewDecoder(bufio.NewReader(in))
	if *repeat {
		src = decode.NewRepeater(src)
	}

	if err := player.Run(src, *fps); err != nil {
		log.Fatalf("ilda-play: %v", err)
	}
}
