package qr

import (
	"io"

	"github.com/mdp/qrterminal/v3"
)

// TerminalRenderer draws the QR code with half-block characters directly
// into the terminal.
type TerminalRenderer struct{}

var _ Renderer = TerminalRenderer{}

func (TerminalRenderer) Render(url string, w io.Writer) error {
	qrterminal.GenerateWithConfig(url, qrterminal.Config{
		Level:      qrterminal.M,
		Writer:     w,
		HalfBlocks: true,
		QuietZone:  1,
	})
	return nil
}
