package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

type Config struct {
	CoreDatabaseURL string
	// SiteDatabaseURL is the admin connection string on the server that
	// hosts per-site tenant databases. Usually the same server as the core
	// database, different databases.
	SiteDatabaseURL string
	TemporalAddress string
	HTTPListenAddr  string
	MetricsAddr     string
	LogLevel        string
	ServiceName     string

	// ParentDomain is the platform domain tenant subdomains hang off of,
	// e.g. "acme" becomes "acme.onjuzbuild.com".
	ParentDomain string
	// TemplateWorkDir is where generated site templates are written before
	// they are pushed to the tenant's repository.
	TemplateWorkDir string
	// AdminEmail receives waitlist and contact notifications.
	AdminEmail string
	// ThemeCatalogPath points at the YAML file listing available themes.
	ThemeCatalogPath string

	GitHub  GitHubConfig
	Vercel  VercelConfig
	DNS     DNSConfig
	Email   EmailConfig
	Archive ArchiveConfig

	// Pacing for the repository publisher and deployment trigger. Tests
	// run with zero delays.
	RepoUploadDelay time.Duration
	RepoBatchDelay  time.Duration
	RepoBatchSize   int
	DeployLinkDelay time.Duration
}

type GitHubConfig struct {
	Token      string
	Owner      string
	APIBaseURL string
}

type VercelConfig struct {
	Token      string
	TeamID     string
	APIBaseURL string
}

type DNSConfig struct {
	APIUser    string
	APIKey     string
	ClientIP   string
	APIBaseURL string
}

type EmailConfig struct {
	APIKey     string
	From       string
	APIBaseURL string
}

type ArchiveConfig struct {
	Bucket    string
	Endpoint  string
	Region    string
	AccessKey string
	SecretKey string
}

// Capabilities reports which provisioning integrations have credentials
// configured. It is resolved once at load time and passed down to every
// step, instead of each step probing the environment on its own. A step
// whose integration is disabled performs no external effect and reports a
// degraded ("skipped") success.
type Capabilities struct {
	GitHub  bool `json:"github"`
	Vercel  bool `json:"vercel"`
	DNS     bool `json:"dns"`
	Email   bool `json:"email"`
	Archive bool `json:"archive"`
}

func Load() (*Config, error) {
	cfg := &Config{
		CoreDatabaseURL:  getEnv("CORE_DATABASE_URL", ""),
		SiteDatabaseURL:  getEnv("SITE_DATABASE_URL", ""),
		TemporalAddress:  getEnv("TEMPORAL_ADDRESS", "localhost:7233"),
		HTTPListenAddr:   getEnv("HTTP_LISTEN_ADDR", ":8090"),
		MetricsAddr:      getEnv("METRICS_ADDR", ""),
		LogLevel:         getEnv("LOG_LEVEL", "info"),
		ServiceName:      getEnv("SERVICE_NAME", ""),
		ParentDomain:     getEnv("PARENT_DOMAIN", "onjuzbuild.com"),
		TemplateWorkDir:  getEnv("TEMPLATE_WORK_DIR", os.TempDir()),
		AdminEmail:       getEnv("ADMIN_EMAIL", ""),
		ThemeCatalogPath: getEnv("THEME_CATALOG_PATH", "themes.yaml"),
		GitHub: GitHubConfig{
			Token:      getEnv("GITHUB_TOKEN", ""),
			Owner:      getEnv("GITHUB_OWNER", ""),
			APIBaseURL: getEnv("GITHUB_API_URL", "https://api.github.com"),
		},
		Vercel: VercelConfig{
			Token:      getEnv("VERCEL_TOKEN", ""),
			TeamID:     getEnv("VERCEL_TEAM_ID", ""),
			APIBaseURL: getEnv("VERCEL_API_URL", "https://api.vercel.com"),
		},
		DNS: DNSConfig{
			APIUser:    getEnv("NAMECHEAP_API_USER", ""),
			APIKey:     getEnv("NAMECHEAP_API_KEY", ""),
			ClientIP:   getEnv("NAMECHEAP_CLIENT_IP", ""),
			APIBaseURL: getEnv("NAMECHEAP_API_URL", "https://api.namecheap.com/xml.response"),
		},
		Email: EmailConfig{
			APIKey:     getEnv("RESEND_API_KEY", ""),
			From:       getEnv("EMAIL_FROM", "Juzbuild <noreply@juzbuild.com>"),
			APIBaseURL: getEnv("RESEND_API_URL", "https://api.resend.com"),
		},
		Archive: ArchiveConfig{
			Bucket:    getEnv("ARCHIVE_BUCKET", ""),
			Endpoint:  getEnv("ARCHIVE_ENDPOINT", ""),
			Region:    getEnv("ARCHIVE_REGION", "us-east-1"),
			AccessKey: getEnv("ARCHIVE_ACCESS_KEY", ""),
			SecretKey: getEnv("ARCHIVE_SECRET_KEY", ""),
		},
		RepoUploadDelay: getEnvDuration("REPO_UPLOAD_DELAY", 500*time.Millisecond),
		RepoBatchDelay:  getEnvDuration("REPO_BATCH_DELAY", 2*time.Second),
		RepoBatchSize:   getEnvInt("REPO_BATCH_SIZE", 5),
		DeployLinkDelay: getEnvDuration("DEPLOY_LINK_DELAY", 10*time.Second),
	}

	return cfg, nil
}

// Validate checks that the config is sufficient for the given role
// ("api" or "worker").
func (c *Config) Validate(role string) error {
	if c.CoreDatabaseURL == "" {
		return fmt.Errorf("CORE_DATABASE_URL is required")
	}
	if role == "worker" && c.SiteDatabaseURL == "" {
		return fmt.Errorf("SITE_DATABASE_URL is required for the worker")
	}
	return nil
}

// Capabilities resolves which integrations are enabled from the loaded
// credentials.
func (c *Config) Capabilities() Capabilities {
	return Capabilities{
		GitHub:  c.GitHub.Token != "" && c.GitHub.Owner != "",
		Vercel:  c.Vercel.Token != "",
		DNS:     c.DNS.APIUser != "" && c.DNS.APIKey != "",
		Email:   c.Email.APIKey != "",
		Archive: c.Archive.Bucket != "" && c.Archive.AccessKey != "",
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
