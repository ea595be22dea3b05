// Package photo turns a picked image file into the data URI stored on an item
// and summarises stored URIs for display.
package photo

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"os"
	"strings"

	"github.com/dustin/go-humanize"
)

// ErrNotImage is returned when the bytes do not decode as a supported image.
var ErrNotImage = errors.New("photo: not a decodable image")

// Photo is a decoded-and-checked image ready to be stored.
type Photo struct {
	Format        string // png, jpeg, gif
	Width, Height int
	Size          int
	URI           string
}

// Load reads path once and encodes it. The file is closed before returning.
func Load(path string) (Photo, error) {
	f, err := os.Open(path)
	if err != nil {
		return Photo{}, fmt.Errorf("open: %w", err)
	}
	defer f.Close()

	b, err := io.ReadAll(f)
	if err != nil {
		return Photo{}, fmt.Errorf("read: %w", err)
	}
	return Encode(b)
}

// Encode checks that b is an image and wraps it in a data URI.
func Encode(b []byte) (Photo, error) {
	cfg, format, err := image.DecodeConfig(bytes.NewReader(b))
	if err != nil {
		return Photo{}, fmt.Errorf("%w: %v", ErrNotImage, err)
	}
	uri := "data:image/" + format + ";base64," + base64.StdEncoding.EncodeToString(b)
	return Photo{Format: format, Width: cfg.Width, Height: cfg.Height, Size: len(b), URI: uri}, nil
}

// Decode parses a stored data URI back into a Photo.
func Decode(uri string) (Photo, error) {
	rest, ok := strings.CutPrefix(uri, "data:")
	if !ok {
		return Photo{}, fmt.Errorf("%w: not a data URI", ErrNotImage)
	}
	meta, data, ok := strings.Cut(rest, ",")
	if !ok || !strings.HasSuffix(meta, ";base64") {
		return Photo{}, fmt.Errorf("%w: not base64 data", ErrNotImage)
	}
	b, err := base64.StdEncoding.DecodeString(data)
	if err != nil {
		return Photo{}, fmt.Errorf("%w: %v", ErrNotImage, err)
	}
	p, err := Encode(b)
	if err != nil {
		return Photo{}, err
	}
	p.URI = uri
	return p, nil
}

// Summary is a one-line description such as "PNG 640×480 · 12 kB".
func (p Photo) Summary() string {
	return fmt.Sprintf("%s %d×%d · %s", strings.ToUpper(p.Format), p.Width, p.Height, humanize.Bytes(uint64(p.Size)))
}

// Describe summarises a stored data URI, falling back to a generic label for
// values that were stored by something else.
func Describe(uri string) string {
	if uri == "" {
		return ""
	}
	p, err := Decode(uri)
	if err != nil {
		return "photo"
	}
	return p.Summary()
}
