package user

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/cercle-social/cercle-cli/internal/auth"
	"github.com/cercle-social/cercle-cli/internal/telemetry"

	"github.com/spf13/afero"
	"github.com/spf13/viper"
)

const (
	// DefaultProfile is the default profile name
	DefaultProfile = "default"

	// ProfileType is the file type for profiles
	ProfileType = "yaml"

	envPrefix = "cercle"
)

// set of supported CLI user profile flags
const (
	FlagProfile      = "profile"
	FlagProfileUsage = `Specify your profile (Default value: "default")`

	FlagBaseURL      = "base-url"
	FlagBaseURLUsage = "Specify the base Cercle server URL"

	// DefaultBaseURL is the Cercle server used when none is configured
	DefaultBaseURL = "https://api.cercle.social"
)

// set of supported session store types
const (
	StoreProfile = "profile"
	StoreRedis   = "redis"
)

// Profile is the CLI profile
//
// A Profile is the durable auth.Store of the CLI: the session slots are
// saved to the profile file alongside the CLI configuration
type Profile struct {
	Flags
	Name string

	dir string
	fs  afero.Fs

	mu sync.RWMutex
	v  *viper.Viper
}

var _ auth.Store = (*Profile)(nil)

// Flags are the CLI profile flags
type Flags struct {
	BaseURL       string
	TelemetryMode telemetry.Mode
}

// NewDefaultProfile creates a new default CLI profile
func NewDefaultProfile() (*Profile, error) {
	return NewProfile(DefaultProfile)
}

// NewProfile creates a new CLI profile
func NewProfile(name string) (*Profile, error) {
	dir, err := HomeDir()
	if err != nil {
		return nil, fmt.Errorf("failed to create CLI profile: %w", err)
	}
	return newProfile(name, dir, afero.NewOsFs()), nil
}

func newProfile(name, dir string, fs afero.Fs) *Profile {
	v := viper.New()
	v.SetFs(fs)

	return &Profile{
		Name: name,
		dir:  dir,
		fs:   fs,
		v:    v,
	}
}

// Get gets the specified CLI profile property
func (p *Profile) Get(name string) string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.v.GetString(p.propertyKey(name))
}

// Set sets the specified CLI profile property
func (p *Profile) Set(name, value string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.v.Set(p.propertyKey(name), value)
}

// Update sets all of the specified CLI profile properties at once
func (p *Profile) Update(values map[string]string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	for name, value := range values {
		p.v.Set(p.propertyKey(name), value)
	}
}

// Clear clears the CLI profile session
func (p *Profile) Clear() {
	p.mu.Lock()
	defer p.mu.Unlock()
	for _, name := range auth.SessionKeys {
		p.v.Set(p.propertyKey(name), "")
	}
}

func (p *Profile) propertyKey(name string) string {
	return fmt.Sprintf("%s.%s", p.Name, name)
}

// Load loads the CLI profile
func (p *Profile) Load() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.v.SetConfigName(p.Name)
	p.v.AddConfigPath(p.dir)
	p.v.SetConfigPermissions(0600)
	p.v.SetConfigType(ProfileType)

	p.v.SetEnvPrefix(envPrefix)
	p.v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	p.v.AutomaticEnv()

	if err := p.v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return nil // proceed if profile doesn't exist
		}
		return fmt.Errorf("failed to load CLI profile: %s", err)
	}
	return nil
}

// Save saves the CLI profile
func (p *Profile) Save() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	exists, err := afero.DirExists(p.fs, p.dir)
	if err != nil {
		return fmt.Errorf("failed to save CLI profile: %s", err)
	}

	if !exists {
		if err := p.fs.MkdirAll(p.dir, 0700); err != nil {
			return fmt.Errorf("failed to save CLI profile: %s", err)
		}
	}

	if err := p.v.WriteConfigAs(p.Path()); err != nil {
		return fmt.Errorf("failed to save CLI profile: %s", err)
	}
	return nil
}

// ResolveFlags resolves the user profile flags
func (p *Profile) ResolveFlags() error {
	if p.Flags.TelemetryMode == telemetry.ModeEmpty {
		p.Flags.TelemetryMode = p.TelemetryMode()
	}
	p.Set(keyTelemetryMode, string(p.Flags.TelemetryMode))

	if p.Flags.BaseURL == "" {
		baseURL := p.BaseURL()
		if baseURL == "" {
			baseURL = DefaultBaseURL
		}
		p.Flags.BaseURL = baseURL
	}
	p.Set(keyBaseURL, p.Flags.BaseURL)

	return p.Save()
}

// Dir returns the CLI profile directory
func (p *Profile) Dir() string {
	return p.dir
}

// Path returns the CLI profile filepath
func (p *Profile) Path() string {
	return fmt.Sprintf("%s/%s.%s", p.dir, p.Name, ProfileType)
}

// set of supported CLI profile config keys
const (
	keyBaseURL        = "base_url"
	keyTelemetryMode  = "telemetry_mode"
	keyStore          = "store"
	keyRedisURL       = "redis_url"
	keySentryDSN      = "sentry_dsn"
	keyRefreshTimeout = "refresh_timeout"
)

// BaseURL gets the CLI profile Cercle base url
func (p *Profile) BaseURL() string {
	return p.Get(keyBaseURL)
}

// TelemetryMode gets the CLI profile telemetry mode
func (p *Profile) TelemetryMode() telemetry.Mode {
	return telemetry.Mode(p.Get(keyTelemetryMode))
}

// SentryDSN gets the CLI profile Sentry DSN used by telemetry
func (p *Profile) SentryDSN() string {
	return p.Get(keySentryDSN)
}

// RefreshTimeout gets the CLI profile session refresh timeout,
// zero when unset or invalid
func (p *Profile) RefreshTimeout() time.Duration {
	d, err := time.ParseDuration(p.Get(keyRefreshTimeout))
	if err != nil {
		return 0
	}
	return d
}

// Session gets the CLI profile session
func (p *Profile) Session() auth.Session {
	return auth.LoadSession(p)
}

// SessionStore returns the store which holds the CLI profile session
func (p *Profile) SessionStore() (auth.Store, error) {
	switch store := p.Get(keyStore); store {
	case "", StoreProfile:
		return p, nil
	case StoreRedis:
		redisURL := p.Get(keyRedisURL)
		if redisURL == "" {
			return nil, errors.New("must set redis_url to keep the session in redis")
		}
		store, err := auth.NewRedisStoreFromURL(redisURL, p.Name)
		if err != nil {
			return nil, err
		}
		return store, nil
	default:
		return nil, fmt.Errorf("unsupported session store: %s", store)
	}
}
