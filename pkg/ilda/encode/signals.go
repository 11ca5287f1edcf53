// ABOUTME: Output channel signal mapping
// ABOUTME: Parses signal spec strings and the per-axis inversion set
package encode

import (
	"errors"
	"fmt"
)

// ErrInvalidSignal means the signal spec contained a character with no
// mapped channel.
var ErrInvalidSignal = errors.New("invalid signal")

// signal identifies what one output channel carries.
type signal uint8

const (
	signalX signal = iota
	signalY
	signalZ
	signalLaser
	signalRed
	signalGreen
	signalBlue
)

// parseSignals maps a spec string like "xyl" to its channel list, one
// channel per character, in order.
func parseSignals(spec string) ([]signal, error) {
	signals := make([]signal, 0, len(spec))
	for _, c := range spec {
		var s signal
		switch c {
		case 'x':
			s = signalX
		case 'y':
			s = signalY
		case 'z':
			s = signalZ
		case 'l':
			s = signalLaser
		case 'r':
			s = signalRed
		case 'g':
			s = signalGreen
		case 'b':
			s = signalBlue
		default:
			return nil, fmt.Errorf("signal %q: %w", c, ErrInvalidSignal)
		}
		signals = append(signals, s)
	}
	return signals, nil
}

// axisInversion holds which axes get negated before interpolation.
type axisInversion struct {
	x, y, z bool
}

func parseInvert(spec string) axisInversion {
	var inv axisInversion
	for _, c := range spec {
		switch c {
		case 'x':
			inv.x = true
		case 'y':
			inv.y = true
		case 'z':
			inv.z = true
		}
	}
	return inv
}
