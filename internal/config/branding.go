package config

import (
	"errors"
	"log"
	"strings"
	"sync/atomic"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

// Branding controls the strings stamped onto rendered documents.
type Branding struct {
	FooterText          string `mapstructure:"footerText"`
	DefaultCompanyName  string `mapstructure:"defaultCompanyName"`
	DefaultProjectTitle string `mapstructure:"defaultProjectTitle"`
}

func DefaultBranding() Branding {
	return Branding{
		FooterText:          "Generated with QuickDocs",
		DefaultCompanyName:  "Your Company",
		DefaultProjectTitle: "Estimate",
	}
}

type BrandingHolder struct {
	current atomic.Value // holds Branding
}

func NewBrandingHolder(cfg Config) (*BrandingHolder, error) {
	v := viper.New()

	v.SetConfigName("branding")
	v.SetConfigType("yml")
	v.AddConfigPath("/var/lib/quickdocs/config") // Volume-mounted config
	v.AddConfigPath("/etc/quickdocs")            // System config
	v.AddConfigPath(cfg.BrandingDir)             // Current directory (dev mode)

	v.SetEnvPrefix("QUICKDOCS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
		defaults := DefaultBranding()
		v.SetDefault("branding.footerText", defaults.FooterText)
		v.SetDefault("branding.defaultCompanyName", defaults.DefaultCompanyName)
		v.SetDefault("branding.defaultProjectTitle", defaults.DefaultProjectTitle)
	}

	var branding Branding
	if err := v.UnmarshalKey("branding", &branding); err != nil {
		return nil, err
	}
	if err := validateBranding(branding); err != nil {
		return nil, err
	}

	holder := &BrandingHolder{}
	holder.current.Store(branding)

	v.WatchConfig()
	v.OnConfigChange(func(e fsnotify.Event) {
		var updated Branding
		if err := v.UnmarshalKey("branding", &updated); err != nil {
			log.Printf("[branding-config] reload failed: %v", err)
			return
		}
		if err := validateBranding(updated); err != nil {
			log.Printf("[branding-config] invalid config ignored: %v", err)
			return
		}
		holder.current.Store(updated)
		log.Printf("[branding-config] reloaded from %s", e.Name)
	})

	return holder, nil
}

func (h *BrandingHolder) Get() Branding {
	return h.current.Load().(Branding)
}

func validateBranding(b Branding) error {
	if strings.TrimSpace(b.FooterText) == "" {
		return errors.New("branding.footerText cannot be empty")
	}
	if strings.TrimSpace(b.DefaultCompanyName) == "" {
		return errors.New("branding.defaultCompanyName cannot be empty")
	}
	if strings.TrimSpace(b.DefaultProjectTitle) == "" {
		return errors.New("branding.defaultProjectTitle cannot be empty")
	}
	return nil
}
