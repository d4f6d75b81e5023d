package entity

import (
	"errors"
	"net/url"
	"strings"
)

type Platform string

const (
	PlatformYouTube   Platform = "youtube"
	PlatformTikTok    Platform = "tiktok"
	PlatformInstagram Platform = "instagram"
	PlatformFacebook  Platform = "facebook"
)

const maxVideoURLLength = 500

var (
	ErrMalformedURL         = errors.New("videoUrl must be an absolute http(s) URL")
	ErrUnrecognizedPlatform = errors.New("videoUrl host is not a supported video platform")
)

// platformDomains maps registrable domains to platforms. Subdomains such as
// www., m. or vm. match their parent domain.
var platformDomains = map[string]Platform{
	"youtube.com":   PlatformYouTube,
	"youtu.be":      PlatformYouTube,
	"tiktok.com":    PlatformTikTok,
	"instagram.com": PlatformInstagram,
	"facebook.com":  PlatformFacebook,
	"fb.watch":      PlatformFacebook,
}

// ParseVideoURL validates raw and returns the platform it belongs to along
// with the normalized URL.
func ParseVideoURL(raw string) (Platform, string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" || len(raw) > maxVideoURLLength {
		return "", "", ErrMalformedURL
	}

	u, err := url.Parse(raw)
	if err != nil || !u.IsAbs() || u.Opaque != "" {
		return "", "", ErrMalformedURL
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return "", "", ErrMalformedURL
	}

	host := strings.TrimSuffix(strings.ToLower(u.Hostname()), ".")
	if host == "" {
		return "", "", ErrMalformedURL
	}

	for domain, platform := range platformDomains {
		if host == domain || strings.HasSuffix(host, "."+domain) {
			u.Host = strings.ToLower(u.Host)
			return platform, u.String(), nil
		}
	}

	return "", "", ErrUnrecognizedPlatform
}
