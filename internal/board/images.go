package board

import (
	"fmt"
	"net/url"
	"strings"
)

var placeholderImages = map[string]string{
	"fitness":       "https://images.unsplash.com/photo-1534438327276-14e5300c3a48?w=800&q=80",
	"career":        "https://images.unsplash.com/photo-1522071820081-009f0129c71c?w=800&q=80",
	"finance":       "https://images.unsplash.com/photo-1579621970563-ebec7560ff3e?w=800&q=80",
	"education":     "https://images.unsplash.com/photo-1503676260728-1c00da094a0b?w=800&q=80",
	"travel":        "https://images.unsplash.com/photo-1488646953014-85cb44e25828?w=800&q=80",
	"relationships": "https://images.unsplash.com/photo-1529156069898-49953e39b3ac?w=800&q=80",
	"personal":      "https://images.unsplash.com/photo-1499209974431-9dddcece7f88?w=800&q=80",
	"creative":      "https://images.unsplash.com/photo-1513364776144-60967b0f800f?w=800&q=80",
}

// PlaceholderImage returns the default image for a category. Unknown
// categories get the personal placeholder.
func PlaceholderImage(category string) string {
	if u, ok := placeholderImages[category]; ok {
		return u
	}
	return placeholderImages["personal"]
}

// ResolveImageURL keeps a user-supplied URL as is and only substitutes the
// placeholder when the input is blank.
func ResolveImageURL(input, category string) string {
	if strings.TrimSpace(input) != "" {
		return input
	}
	return PlaceholderImage(category)
}

// CheckImageURL reports whether raw can be fetched as an image source.
func CheckImageURL(raw string) error {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return fmt.Errorf("parse image url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("unsupported image url scheme %q", u.Scheme)
	}
	if u.Host == "" {
		return fmt.Errorf("image url %q has no host", raw)
	}
	return nil
}
