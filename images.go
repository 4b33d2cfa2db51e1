package devcraft

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/draw"
)

const (
	maxCoverWidth = 800
	jpegQuality   = 80
)

// downscaleCover decodes a cover image and, when it is wider than
// maxCoverWidth, scales it down keeping the aspect ratio. The image is
// re-encoded in its original format (JPEG or PNG). resized is false when the
// image already fits, in which case data is nil and the original should be
// copied unchanged.
func downscaleCover(src io.Reader) (data []byte, resized bool, err error) {
	img, format, err := image.Decode(src)
	if err != nil {
		return nil, false, fmt.Errorf("decode image: %w", err)
	}

	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w <= maxCoverWidth {
		return nil, false, nil
	}

	newH := h * maxCoverWidth / w
	if newH < 1 {
		newH = 1
	}
	dst := image.NewRGBA(image.Rect(0, 0, maxCoverWidth, newH))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)

	var buf bytes.Buffer
	switch format {
	case "png":
		err = png.Encode(&buf, dst)
	default:
		err = jpeg.Encode(&buf, dst, &jpeg.Options{Quality: jpegQuality})
	}
	if err != nil {
		return nil, false, fmt.Errorf("encode %s: %w", format, err)
	}
	return buf.Bytes(), true, nil
}

func isScalableImage(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".jpg", ".jpeg", ".png":
		return true
	}
	return false
}

// copyAsset copies src to dst. When cover is true and the file is a JPEG or
// PNG wider than maxCoverWidth, a downscaled version is written instead.
// It reports whether the file was resized.
func copyAsset(src, dst string, cover bool) (bool, error) {
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return false, err
	}
	if cover && isScalableImage(src) {
		f, err := os.Open(src)
		if err != nil {
			return false, err
		}
		data, resized, err := downscaleCover(f)
		f.Close()
		if err == nil && resized {
			return true, os.WriteFile(dst, data, 0o644)
		}
		// undecodable covers are copied as they are
	}
	return false, copyFile(src, dst)
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()
	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
