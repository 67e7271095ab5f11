// Package svg is a format-conversion adapter: it fetches raw SVG documents
// and rasterizes them to PNG so they can be attached to a message. The
// rasterized file is temporary and lives exactly as long as the render; the
// post must be closed once the response has been sent.
package svg

import (
	"context"
	"fmt"
	"image"
	"image/png"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"

	"embedbot/embed"
	"embedbot/models"
	"embedbot/scraper"
	"embedbot/utils"
)

// TempFilePattern names the rasterized temp files so the scheduler's sweep
// can recognize strays.
const TempFilePattern = "embedbot-svg-*.png"

const fallbackSize = 512

// Post is a rasterized SVG. It holds an open handle on the temp file; Close
// removes the file and must be called on every path once the post is no
// longer needed.
type Post struct {
	models.PostCommon
	content models.AttachmentContent
	file    *os.File
}

func (p *Post) Common() *models.PostCommon { return &p.PostCommon }
func (p *Post) Content() models.Content    { return p.content }

func (p *Post) Classify() models.Classification {
	return models.ClassifyCommon(&p.PostCommon, p.content)
}

// Close releases the rasterized temp file.
func (p *Post) Close() error {
	p.file.Close()
	return os.Remove(p.content.Path)
}

func (p *Post) CreateResponse(author string, opts *models.EmbedOptions, r *embed.Response) *embed.Response {
	authorComment := ""
	if opts.Comment != "" {
		authorComment = fmt.Sprintf("**Comment By %s:**\n%s\n\n", author, opts.Comment)
	}

	return r.
		AttachFile(p.content.Name, "image/png", p.file).
		Content(fmt.Sprintf(">>> **%s**\nSource: <%s>\n\n%s", author, p.SourceURL, authorComment))
}

// Scraper is the SVG rasterizer adapter.
type Scraper struct {
	client *scraper.Client
}

func New(client *scraper.Client) *Scraper {
	return &Scraper{client: client}
}

func (s *Scraper) Name() string { return "svg" }

func (s *Scraper) IsSuitable(u *url.URL) bool {
	ext := filepath.Ext(strings.TrimRight(u.Path, "/"))
	return strings.EqualFold(ext, ".svg")
}

// ShouldEmbed always allows rasterized SVGs.
func (s *Scraper) ShouldEmbed(models.Post) bool { return true }

func (s *Scraper) Scrape(ctx context.Context, u *url.URL) (models.Post, error) {
	svgText, err := s.client.GetString(ctx, u.String())
	if err != nil {
		return nil, err
	}

	file, err := Rasterize(svgText)
	if err != nil {
		return nil, err
	}

	name := utils.LastPathSegment(u)
	if name == "" {
		name = "image.svg"
	}

	return &Post{
		PostCommon: models.PostCommon{
			SourceURL: u,
			Title:     name,
			Origin:    models.JustOrigin("svg"),
		},
		content: models.AttachmentContent{
			Path: file.Name(),
			Name: strings.TrimSuffix(name, filepath.Ext(name)) + ".png",
		},
		file: file,
	}, nil
}

// Rasterize renders the SVG at its intrinsic size into a PNG temp file and
// returns the file positioned at the start. The file is removed on every
// error path.
func Rasterize(svgText string) (*os.File, error) {
	icon, err := oksvg.ReadIconStream(strings.NewReader(svgText))
	if err != nil {
		return nil, &scraper.ParseError{Reason: "invalid svg", Err: err}
	}

	w := int(icon.ViewBox.W)
	h := int(icon.ViewBox.H)
	if w <= 0 || h <= 0 {
		w, h = fallbackSize, fallbackSize
	}

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	icon.SetTarget(0, 0, float64(w), float64(h))

	sc := rasterx.NewScannerGV(w, h, img, img.Bounds())
	icon.Draw(rasterx.NewDasher(w, h, sc), 1.0)

	file, err := os.CreateTemp(TempDir(), TempFilePattern)
	if err != nil {
		return nil, fmt.Errorf("creating temp file: %w", err)
	}

	if err := png.Encode(file, img); err != nil {
		file.Close()
		os.Remove(file.Name())
		return nil, fmt.Errorf("encoding png: %w", err)
	}
	if _, err := file.Seek(0, 0); err != nil {
		file.Close()
		os.Remove(file.Name())
		return nil, fmt.Errorf("rewinding temp file: %w", err)
	}

	return file, nil
}

// TempDir is where rasterized files are written; empty means the system
// default.
func TempDir() string {
	return viper.GetString("bot.tempDir")
}
