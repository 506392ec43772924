package printer

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/bnema/nirogya-cli/internal/domain"
	"github.com/bnema/nirogya-cli/internal/ports"
)

type Format string

const (
	FormatPath Format = "path"
	FormatLink Format = "link"
	FormatJSON Format = "json"
)

// Navigator "navigates" by writing the destination to out. Hosts that own a
// browser or a call window use their own ports.Navigator instead.
type Navigator struct {
	out     io.Writer
	baseURL string
	format  Format
}

var _ ports.Navigator = (*Navigator)(nil)

func New(out io.Writer, baseURL string, format Format) *Navigator {
	if format == "" {
		format = FormatPath
	}

	return &Navigator{out: out, baseURL: baseURL, format: format}
}

type destinationJSON struct {
	SessionType domain.SessionType       `json:"sessionType"`
	RoomID      domain.RoomID            `json:"roomId"`
	Path        string                   `json:"path"`
	Link        string                   `json:"link,omitempty"`
	Translation domain.TranslationConfig `json:"translation"`
}

func (n *Navigator) Navigate(ctx context.Context, destination domain.Destination) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	switch n.format {
	case FormatJSON:
		payload := destinationJSON{
			SessionType: destination.SessionType,
			RoomID:      destination.RoomID,
			Path:        destination.Path(),
			Translation: destination.Translation,
		}
		if n.baseURL != "" {
			payload.Link = destination.Link(n.baseURL)
		}
		enc := json.NewEncoder(n.out)
		enc.SetIndent("", "  ")
		return enc.Encode(payload)
	case FormatLink:
		if n.baseURL == "" {
			return errors.New("link output needs a base url")
		}
		_, err := fmt.Fprintln(n.out, destination.Link(n.baseURL))
		return err
	case FormatPath:
		_, err := fmt.Fprintln(n.out, destination.Path())
		return err
	default:
		return fmt.Errorf("unsupported output format %q", n.format)
	}
}
