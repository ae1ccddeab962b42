// Package thumbnail renders product images as terminal cells.
package thumbnail

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/color"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"net/http"
	"strings"
	"time"

	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp"
)

const maxImageBytes = 4 * 1024 * 1024

// Renderer fetches, decodes and scales thumbnails. Each cell covers two
// vertical pixels drawn with an upper half block.
type Renderer struct {
	http       *http.Client
	background color.NRGBA
}

func NewRenderer() *Renderer {
	return &Renderer{
		http:       &http.Client{Timeout: 6 * time.Second},
		background: color.NRGBA{R: 0x1a, G: 0x1a, B: 0x1f, A: 0xff},
	}
}

// WithHTTPClient swaps the transport, mostly for tests.
func (r *Renderer) WithHTTPClient(hc *http.Client) *Renderer {
	r.http = hc
	return r
}

// Render never returns an empty string. On failure the placeholder is
// returned together with the cause.
func (r *Renderer) Render(ctx context.Context, url string, cols, rows int) (string, error) {
	cols, rows = max(cols, 4), max(rows, 2)
	if strings.TrimSpace(url) == "" {
		return Placeholder(cols, rows), fmt.Errorf("no thumbnail")
	}
	img, err := r.fetch(ctx, url)
	if err != nil {
		return Placeholder(cols, rows), err
	}
	return RenderImage(img, cols, rows, r.background), nil
}

func (r *Renderer) fetch(ctx context.Context, url string) (image.Image, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	resp, err := r.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching thumbnail: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("thumbnail status %d", resp.StatusCode)
	}
	data, err := io.ReadAll(io.LimitReader(resp.Body, maxImageBytes))
	if err != nil {
		return nil, fmt.Errorf("reading thumbnail: %w", err)
	}
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decoding thumbnail: %w", err)
	}
	return img, nil
}

// RenderImage fits img into cols x rows cells, letterboxed on bg.
func RenderImage(img image.Image, cols, rows int, bg color.NRGBA) string {
	if img.Bounds().Empty() {
		return Placeholder(cols, rows)
	}
	canvas := fit(img, cols, rows*2, bg)

	var out strings.Builder
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			top := canvas.NRGBAAt(x, 2*y)
			bot := canvas.NRGBAAt(x, 2*y+1)
			fmt.Fprintf(&out, "\x1b[38;2;%d;%d;%dm\x1b[48;2;%d;%d;%dm▀", top.R, top.G, top.B, bot.R, bot.G, bot.B)
		}
		out.WriteString("\x1b[0m")
		if y < rows-1 {
			out.WriteByte('\n')
		}
	}
	return out.String()
}

func fit(img image.Image, pw, ph int, bg color.NRGBA) *image.NRGBA {
	b := img.Bounds()

	// Half-block pixels are roughly square, so the aspect ratio carries over.
	w, h := pw, b.Dy()*pw/b.Dx()
	if h > ph {
		w, h = b.Dx()*ph/b.Dy(), ph
	}
	w, h = max(w, 1), max(h, 1)

	canvas := image.NewNRGBA(image.Rect(0, 0, pw, ph))
	draw.Draw(canvas, canvas.Bounds(), &image.Uniform{C: bg}, image.Point{}, draw.Src)
	dst := image.Rect((pw-w)/2, (ph-h)/2, (pw-w)/2+w, (ph-h)/2+h)
	draw.CatmullRom.Scale(canvas, dst, img, b, draw.Over, nil)
	return canvas
}

// Placeholder is the grey block shown while loading or when an image fails.
func Placeholder(cols, rows int) string {
	cols, rows = max(cols, 4), max(rows, 2)
	const label = "no image"
	var out strings.Builder
	for y := 0; y < rows; y++ {
		out.WriteString("\x1b[38;2;150;150;160m\x1b[48;2;60;60;70m")
		line := strings.Repeat(" ", cols)
		if y == rows/2 && cols >= len(label)+2 {
			pad := (cols - len(label)) / 2
			line = strings.Repeat(" ", pad) + label + strings.Repeat(" ", cols-pad-len(label))
		}
		out.WriteString(line)
		out.WriteString("\x1b[0m")
		if y < rows-1 {
			out.WriteByte('\n')
		}
	}
	return out.String()
}
