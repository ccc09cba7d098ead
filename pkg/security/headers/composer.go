package headers

import (
	"fmt"
	"net/http"
	"strings"
)

// Directive is one Content-Security-Policy directive with its source tokens.
// A directive with no sources (e.g. upgrade-insecure-requests) is emitted as
// a bare keyword. Directives are a slice, not a map, so the emitted policy
// preserves a stable order.
type Directive struct {
	// Name is the directive name, e.g. "script-src".
	Name string `yaml:"name"`

	// Sources are the allowed source tokens in emission order.
	Sources []string `yaml:"sources"`
}

// Config holds the declarative security-header policy. It is constructed
// once at startup and treated as read-only afterwards.
type Config struct {
	// EnableCSP emits the Content-Security-Policy header.
	EnableCSP bool `yaml:"enable_csp"`

	// CSPDirectives is the ordered directive table. Empty means use the
	// defaults from DefaultConfig.
	CSPDirectives []Directive `yaml:"csp_directives"`

	// EnableHSTS emits Strict-Transport-Security.
	EnableHSTS bool `yaml:"enable_hsts"`

	// HSTSMaxAge is the max-age value in seconds.
	HSTSMaxAge int `yaml:"hsts_max_age"`

	// HSTSIncludeSubdomains appends the includeSubDomains token.
	HSTSIncludeSubdomains bool `yaml:"hsts_include_subdomains"`

	// HSTSPreload appends the preload token.
	HSTSPreload bool `yaml:"hsts_preload"`

	// EnableXFrameOptions emits X-Frame-Options: SAMEORIGIN.
	EnableXFrameOptions bool `yaml:"enable_x_frame_options"`

	// EnableXContentTypeOptions emits X-Content-Type-Options: nosniff.
	EnableXContentTypeOptions bool `yaml:"enable_x_content_type_options"`

	// EnableReferrerPolicy emits Referrer-Policy: strict-origin-when-cross-origin.
	EnableReferrerPolicy bool `yaml:"enable_referrer_policy"`

	// EnablePermissionsPolicy emits the Permissions-Policy deny-list.
	EnablePermissionsPolicy bool `yaml:"enable_permissions_policy"`
}

// DefaultHSTSMaxAge is the default Strict-Transport-Security max-age in
// seconds (one year).
const DefaultHSTSMaxAge = 31536000

// DefaultConfig returns the deployment baseline: every category enabled,
// HSTS for one year with subdomains, and the default CSP directive table.
func DefaultConfig() Config {
	return Config{
		EnableCSP:                 true,
		CSPDirectives:             DefaultCSPDirectives(),
		EnableHSTS:                true,
		HSTSMaxAge:                DefaultHSTSMaxAge,
		HSTSIncludeSubdomains:     true,
		HSTSPreload:               false,
		EnableXFrameOptions:       true,
		EnableXContentTypeOptions: true,
		EnableReferrerPolicy:      true,
		EnablePermissionsPolicy:   true,
	}
}

// DefaultCSPDirectives returns the default CSP baseline for the community
// site: self-hosted assets plus the CDNs the client bundle loads from and
// the backend-as-a-service origins it talks to.
func DefaultCSPDirectives() []Directive {
	return []Directive{
		{Name: "default-src", Sources: []string{"'self'"}},
		{Name: "script-src", Sources: []string{"'self'", "'unsafe-inline'", "'unsafe-eval'", "https://cdn.jsdelivr.net", "https://unpkg.com"}},
		{Name: "style-src", Sources: []string{"'self'", "'unsafe-inline'", "https://fonts.googleapis.com"}},
		{Name: "font-src", Sources: []string{"'self'", "https://fonts.gstatic.com", "data:"}},
		{Name: "img-src", Sources: []string{"'self'", "data:", "https:", "blob:"}},
		{Name: "media-src", Sources: []string{"'self'", "data:", "https:", "blob:"}},
		{Name: "connect-src", Sources: []string{"'self'", "https://*.supabase.co", "wss://*.supabase.co", "https://api.github.com"}},
		{Name: "frame-src", Sources: []string{"'self'"}},
		{Name: "frame-ancestors", Sources: []string{"'self'"}},
		{Name: "base-uri", Sources: []string{"'self'"}},
		{Name: "form-action", Sources: []string{"'self'"}},
		{Name: "object-src", Sources: []string{"'none'"}},
		{Name: "upgrade-insecure-requests"},
	}
}

// permissionsPolicyFeatures is the fixed deny-list of browser capabilities.
// Every feature is disabled by default; a page that needs one must relax it
// explicitly per deployment.
var permissionsPolicyFeatures = []string{
	"accelerometer",
	"ambient-light-sensor",
	"autoplay",
	"battery",
	"camera",
	"display-capture",
	"document-domain",
	"encrypted-media",
	"geolocation",
	"gyroscope",
	"magnetometer",
	"microphone",
	"midi",
	"payment",
	"picture-in-picture",
	"publickey-credentials-get",
	"screen-wake-lock",
	"sync-xhr",
	"usb",
	"web-share",
	"xr-spatial-tracking",
}

// alwaysOnHeaders are unconditional hardening headers, not gated by config.
var alwaysOnHeaders = map[string]string{
	"X-XSS-Protection":                  "1; mode=block",
	"X-DNS-Prefetch-Control":            "off",
	"X-Download-Options":                "noopen",
	"X-Permitted-Cross-Domain-Policies": "none",
}

// GenerateCSP renders the Content-Security-Policy value: each directive as
// "name token1 token2 ...", directives joined by "; ". Empty-source
// directives emit the bare name.
func GenerateCSP(cfg Config) string {
	directives := cfg.CSPDirectives
	if len(directives) == 0 {
		directives = DefaultCSPDirectives()
	}

	parts := make([]string, 0, len(directives))
	for _, d := range directives {
		if len(d.Sources) == 0 {
			parts = append(parts, d.Name)
			continue
		}
		parts = append(parts, d.Name+" "+strings.Join(d.Sources, " "))
	}
	return strings.Join(parts, "; ")
}

// GenerateHSTS renders the Strict-Transport-Security value.
func GenerateHSTS(cfg Config) string {
	value := fmt.Sprintf("max-age=%d", cfg.HSTSMaxAge)
	if cfg.HSTSIncludeSubdomains {
		value += "; includeSubDomains"
	}
	if cfg.HSTSPreload {
		value += "; preload"
	}
	return value
}

// GeneratePermissionsPolicy renders the Permissions-Policy deny-list:
// every feature disabled with an empty allowlist.
func GeneratePermissionsPolicy() string {
	parts := make([]string, 0, len(permissionsPolicyFeatures))
	for _, feature := range permissionsPolicyFeatures {
		parts = append(parts, feature+"=()")
	}
	return strings.Join(parts, ", ")
}

// HeaderMap composes the full header set for a config. The result is a
// fresh map on every call; callers may mutate it freely.
func HeaderMap(cfg Config) map[string]string {
	h := make(map[string]string, len(alwaysOnHeaders)+6)

	if cfg.EnableCSP {
		h["Content-Security-Policy"] = GenerateCSP(cfg)
	}
	if cfg.EnableHSTS {
		h["Strict-Transport-Security"] = GenerateHSTS(cfg)
	}
	if cfg.EnableXFrameOptions {
		h["X-Frame-Options"] = "SAMEORIGIN"
	}
	if cfg.EnableXContentTypeOptions {
		h["X-Content-Type-Options"] = "nosniff"
	}
	if cfg.EnableReferrerPolicy {
		h["Referrer-Policy"] = "strict-origin-when-cross-origin"
	}
	if cfg.EnablePermissionsPolicy {
		h["Permissions-Policy"] = GeneratePermissionsPolicy()
	}
	for name, value := range alwaysOnHeaders {
		h[name] = value
	}
	return h
}

// Apply sets the composed headers on an http.Header. Existing values for
// the same names are replaced; unrelated headers are left untouched.
func Apply(h http.Header, cfg Config) {
	for name, value := range HeaderMap(cfg) {
		h.Set(name, value)
	}
}
