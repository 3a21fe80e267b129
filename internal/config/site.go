package config

import (
	_ "embed"
	"errors"
	"fmt"
	"net/url"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/haruki1953/sakiko-utils/internal/models"
)

var ErrInvalidSite = errors.New("invalid site configuration")

//go:embed site.yaml
var defaultSite []byte

// LoadSite reads the site content from path, or the built-in content when
// path is empty.
func LoadSite(path string) (models.Site, error) {
	data := defaultSite
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return models.Site{}, fmt.Errorf("failed to read site config: %w", err)
		}
		data = b
	}
	return ParseSite(data)
}

func ParseSite(data []byte) (models.Site, error) {
	var site models.Site
	if err := yaml.Unmarshal(data, &site); err != nil {
		return site, fmt.Errorf("failed to parse site config: %w", err)
	}
	if err := ValidateSite(site); err != nil {
		return site, err
	}
	return site, nil
}

func ValidateSite(site models.Site) error {
	if site.Name == "" {
		return fmt.Errorf("%w: site name is empty", ErrInvalidSite)
	}
	for key, c := range site.Contacts {
		if err := validateEntry(c); err != nil {
			return fmt.Errorf("%w: contact %q: %v", ErrInvalidSite, key, err)
		}
	}
	for i, t := range site.Tools {
		if err := validateEntry(t); err != nil {
			return fmt.Errorf("%w: tool %d: %v", ErrInvalidSite, i, err)
		}
	}
	if site.Ad.Link != "" {
		if err := validateLink(site.Ad.Link); err != nil {
			return fmt.Errorf("%w: ad: %v", ErrInvalidSite, err)
		}
	}
	return nil
}

func validateEntry(e models.LinkEntry) error {
	if e.Name == "" {
		return errors.New("name is empty")
	}
	return validateLink(e.Link)
}

func validateLink(link string) error {
	u, err := url.Parse(link)
	if err != nil {
		return fmt.Errorf("bad link %q: %w", link, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("link %q must be http or https", link)
	}
	if u.Host == "" {
		return fmt.Errorf("link %q has no host", link)
	}
	return nil
}
