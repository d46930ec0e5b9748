// Package viewer displays a rendered artifact in a transient pop-up window.
//
// The window runs in a dedicated child process: the binary re-invokes
// itself with -view and receives the encoded artifact over stdin. This
// keeps the GUI stack out of the REPL process. The parent blocks until
// the window is dismissed, so exactly one viewer exists per cycle.
package viewer

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/simakma5/latex-cli/internal/pdf"
)

// payload is the wire form of an artifact sent to the viewer process.
type payload struct {
	Image  []byte `json:"image"`
	Text   string `json:"text"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
	Margin int    `json:"margin"`
}

// encodePayload serializes an artifact for the viewer process.
func encodePayload(art *pdf.Artifact, margin int) ([]byte, error) {
	return json.Marshal(payload{
		Image:  art.PNG,
		Text:   art.Text,
		Width:  art.Width,
		Height: art.Height,
		Margin: margin,
	})
}

// decodePayload reads a serialized artifact from r.
func decodePayload(r io.Reader) (*payload, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read artifact: %w", err)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("empty artifact")
	}
	var p payload
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("decode artifact: %w", err)
	}
	return &p, nil
}
