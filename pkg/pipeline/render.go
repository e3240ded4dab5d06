package pipeline

import (
	"bytes"
	"time"

	perrors "github.com/matzehuels/peermap/pkg/errors"
	pio "github.com/matzehuels/peermap/pkg/io"
	"github.com/matzehuels/peermap/pkg/render/network"
	"github.com/matzehuels/peermap/pkg/render/nodelink"
	"github.com/matzehuels/peermap/pkg/render/style"
)

// Render generates output artifacts for a styled view in the requested formats.
func Render(v style.View, opts Options, generated time.Time) (map[string][]byte, error) {
	artifacts := make(map[string][]byte, len(opts.Formats))

	var dot string
	for _, format := range opts.Formats {
		var data []byte
		var err error

		switch format {
		case FormatHTML:
			data, err = network.Render(v, network.Options{
				Title:       opts.Title,
				Height:      opts.Height,
				ReportID:    opts.ReportID,
				Version:     opts.Version,
				GeneratedAt: generated,
				Filters:     opts.FilterSummary(),
			})
		case FormatJSON:
			var buf bytes.Buffer
			err = pio.WriteJSON(v, pio.Meta{
				ID:        opts.ReportID,
				Version:   opts.Version,
				Generated: generated,
				Filters:   pio.Filters{Accounts: opts.Accounts, Regions: opts.Regions},
			}, &buf)
			data = buf.Bytes()
		case FormatDOT, FormatSVG:
			if dot == "" {
				dot = nodelink.ToDOT(v, nodelink.Options{Detailed: true})
			}
			if format == FormatDOT {
				data = []byte(dot)
			} else {
				data, err = nodelink.RenderSVG(dot)
			}
		default:
			return nil, perrors.New(perrors.ErrCodeInvalidFormat, "unsupported format: %s", format)
		}

		if err != nil {
			return nil, perrors.Wrap(perrors.ErrCodeInternal, err, "render %s", format)
		}
		artifacts[format] = data
	}

	return artifacts, nil
}
