// Package pdf renders a filled form to a printable PDF through headless
// Chrome. The HTML layout and page styling come from an embedded YAML
// style config.
package pdf

import (
	"context"
	"fmt"
	"io"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"

	"formloom/internal/form"
)

// Renderer prints filled forms to PDF. One Renderer is built at startup;
// each Render call launches its own short-lived browser so a crashed
// Chrome never poisons later exports.
type Renderer struct {
	style     Style
	chromeBin string
}

// NewRenderer loads the style config. chromeBin optionally pins the
// Chrome/Chromium binary; empty lets the launcher discover one.
func NewRenderer(chromeBin string) (*Renderer, error) {
	style, err := loadStyle()
	if err != nil {
		return nil, err
	}
	return &Renderer{style: style, chromeBin: chromeBin}, nil
}

func f64(v float64) *float64 { return &v }

// Render produces the PDF bytes for a filled form.
func (r *Renderer) Render(ctx context.Context, spec form.Spec, values map[string]any) ([]byte, error) {
	html, err := renderHTML(spec, values, r.style)
	if err != nil {
		return nil, err
	}

	l := launcher.New().Headless(true)
	if r.chromeBin != "" {
		l = l.Bin(r.chromeBin)
	}
	controlURL, err := l.Launch()
	if err != nil {
		return nil, fmt.Errorf("launch browser: %w", err)
	}
	defer l.Cleanup()

	browser := rod.New().ControlURL(controlURL).Context(ctx)
	if err := browser.Connect(); err != nil {
		return nil, fmt.Errorf("connect browser: %w", err)
	}
	defer browser.Close()

	page, err := browser.Page(proto.TargetCreateTarget{URL: "about:blank"})
	if err != nil {
		return nil, fmt.Errorf("open page: %w", err)
	}
	if err := page.SetDocumentContent(html); err != nil {
		return nil, fmt.Errorf("set content: %w", err)
	}
	if err := page.WaitLoad(); err != nil {
		return nil, fmt.Errorf("wait load: %w", err)
	}

	width, height := r.style.paperSize()
	stream, err := page.PDF(&proto.PagePrintToPDF{
		PaperWidth:      f64(width),
		PaperHeight:     f64(height),
		MarginTop:       f64(r.style.Page.MarginTop),
		MarginBottom:    f64(r.style.Page.MarginBottom),
		MarginLeft:      f64(r.style.Page.MarginLeft),
		MarginRight:     f64(r.style.Page.MarginRight),
		PrintBackground: true,
	})
	if err != nil {
		return nil, fmt.Errorf("print to pdf: %w", err)
	}
	data, err := io.ReadAll(stream)
	if err != nil {
		return nil, fmt.Errorf("read pdf stream: %w", err)
	}
	return data, nil
}
