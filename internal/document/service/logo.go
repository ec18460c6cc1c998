package service

import (
	"bytes"
	"encoding/base64"
	"image"
	"strings"

	_ "image/jpeg"
	_ "image/png"

	"github.com/smallbiznis/quickdocs/internal/document/domain"
	"github.com/smallbiznis/quickdocs/internal/render/pdf"
)

var logoPrefixes = []struct {
	prefix string
	kind   domain.LogoKind
}{
	{"data:image/png;base64,", domain.LogoPNG},
	{"data:image/jpeg;base64,", domain.LogoJPEG},
	{"data:image/jpg;base64,", domain.LogoJPEG},
}

// decodeLogo turns a data URL into an embeddable logo. Unsupported schemes,
// bad base64, undecodable images, and encodings the PDF writer rejects all
// yield nil so the document renders without a logo instead of failing.
func decodeLogo(dataURL string) *domain.Logo {
	dataURL = strings.TrimSpace(dataURL)
	if dataURL == "" {
		return nil
	}

	for _, p := range logoPrefixes {
		if !strings.HasPrefix(dataURL, p.prefix) {
			continue
		}

		raw, err := base64.StdEncoding.DecodeString(dataURL[len(p.prefix):])
		if err != nil {
			return nil
		}

		cfg, _, err := image.DecodeConfig(bytes.NewReader(raw))
		if err != nil || cfg.Width <= 0 || cfg.Height <= 0 {
			return nil
		}

		logo := &domain.Logo{Kind: p.kind, Data: raw, Width: cfg.Width, Height: cfg.Height}
		if !pdf.CanEmbed(logo) {
			return nil
		}
		return logo
	}
	return nil
}
