package config

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/Jrokz2315/SecureID/internal/log"
)

// Cache provider names accepted in Cache.Provider
const (
	CacheProviderMemory = "memory"
	CacheProviderRedis  = "redis"
	CacheProviderValKey = "valkey"
)

// Configuration holds the project configuration
type Configuration struct {
	ServerUrl     string
	ServerPort    int
	Cache         Cache         `mapstructure:"Cache"`
	Log           Log           `mapstructure:"Log"`
	HTTPBasicAuth HTTPBasicAuth `mapstructure:"HTTPBasicAuth"`
	Twilio        Twilio        `mapstructure:"Twilio"`
	VerifiedID    VerifiedID    `mapstructure:"VerifiedID"`
	Graph         Graph         `mapstructure:"Graph"`
	CodeTTL       time.Duration `mapstructure:"CodeTTL" tip:"Validity window for dispatched phone codes"`
}

// Cache configuration. Provider selects the session store backing; memory is
// the default and matches the single instance deployment model.
type Cache struct {
	Provider string `mapstructure:"Provider" tip:"Session store provider: memory, redis or valkey"`
	Url      string `mapstructure:"Url" tip:"The redis or valkey url to use as session store"`
}

// Log holds runtime log configurations
//
// Level: The minimum log level to show on logs. Values can be
//
//	 -4: Debug
//		0: Info
//		4: Warning
//		8: Error
//
// Mode: Log mode is the format of the log. 1 for JSON, 2 for text
type Log struct {
	Level int `mapstructure:"Level" tip:"Minimum level to log: (-4:Debug, 0:Info, 4:Warning, 8:Error)"`
	Mode  int `mapstructure:"Mode" tip:"Log format (1: JSON, 2:Structured text)"`
}

// HTTPBasicAuth configuration. The agent facing endpoints are protected with
// basic http auth. Here you can set the user and password to use.
type HTTPBasicAuth struct {
	User     string `mapstructure:"User" tip:"Basic auth username"`
	Password string `mapstructure:"Password" tip:"Basic auth password"`
}

// Twilio holds the phone delivery transport credentials
type Twilio struct {
	AccountSID string `mapstructure:"AccountSID" tip:"Twilio account SID"`
	AuthToken  string `mapstructure:"AuthToken" tip:"Twilio auth token"`
	FromNumber string `mapstructure:"FromNumber" tip:"Phone number calls and messages are sent from"`
}

// VerifiedID holds the credential verifier service configuration
type VerifiedID struct {
	Endpoint       string `mapstructure:"Endpoint" tip:"Verifier createPresentationRequest endpoint"`
	Scope          string `mapstructure:"Scope" tip:"OAuth2 scope for the verifier service"`
	Authority      string `mapstructure:"Authority" tip:"Verifier authority DID"`
	CredentialType string `mapstructure:"CredentialType" tip:"Requested credential type"`
	ClientName     string `mapstructure:"ClientName" tip:"Client name shown in the wallet"`
	CallbackAPIKey string `mapstructure:"CallbackAPIKey" tip:"Shared secret expected in callback api-key header"`
}

// Graph holds the identity directory (Microsoft Graph) credentials
type Graph struct {
	TenantID     string `mapstructure:"TenantID" tip:"Directory tenant id"`
	ClientID     string `mapstructure:"ClientID" tip:"App registration client id"`
	ClientSecret string `mapstructure:"ClientSecret" tip:"App registration client secret"`
}

// Load loads the configuration from a file
func Load(fileName string) (*Configuration, error) {
	bindEnv()
	pathFlag := viper.GetString("config")
	if _, err := os.Stat(pathFlag); err == nil {
		ext := filepath.Ext(pathFlag)
		if len(ext) > 1 {
			ext = ext[1:]
		}
		name := strings.Split(filepath.Base(pathFlag), ".")[0]
		viper.AddConfigPath(".")
		viper.SetConfigName(name)
		viper.SetConfigType(ext)
	} else {
		viper.AddConfigPath(getWorkingDirectory())
		viper.SetConfigType("toml")
		if fileName == "" {
			viper.SetConfigName("config")
		} else {
			viper.SetConfigName(fileName)
		}
	}

	config := &Configuration{
		Log: Log{
			Level: log.LevelDebug,
			Mode:  log.OutputText,
		},
	}
	ctx := context.Background()
	if err := viper.ReadInConfig(); err != nil {
		log.Info(ctx, "config file not loaded, relying on env vars", "err", err)
	}
	if err := viper.Unmarshal(config); err != nil {
		return nil, err
	}
	checkDefaults(ctx, config)
	if err := config.sanitizeServerUrl(); err != nil {
		return nil, err
	}
	return config, nil
}

func (c *Configuration) sanitizeServerUrl() error {
	sUrl, err := url.ParseRequestURI(c.ServerUrl)
	if err != nil {
		return fmt.Errorf("invalid server url: %w", err)
	}
	if sUrl.Scheme == "" {
		return fmt.Errorf("server URL must be an absolute URL")
	}
	sUrl.RawQuery = ""
	c.ServerUrl = strings.TrimRight(sUrl.String(), "/")
	return nil
}

func checkDefaults(ctx context.Context, config *Configuration) {
	if config.ServerPort == 0 {
		log.Info(ctx, "ServerPort not set, using default", "port", defaultServerPort)
		config.ServerPort = defaultServerPort
	}
	if config.Cache.Provider == "" {
		config.Cache.Provider = CacheProviderMemory
	}
	if config.CodeTTL == 0 {
		config.CodeTTL = defaultCodeTTL
	}
	if config.VerifiedID.Endpoint == "" {
		config.VerifiedID.Endpoint = defaultVerifierEndpoint
	}
	if config.VerifiedID.CredentialType == "" {
		config.VerifiedID.CredentialType = defaultCredentialType
	}
	if config.VerifiedID.ClientName == "" {
		config.VerifiedID.ClientName = defaultClientName
	}
	if config.HTTPBasicAuth.User == "" || config.HTTPBasicAuth.Password == "" {
		log.Warn(ctx, "basic auth credentials not set, agent endpoints are open")
	}
}

const (
	defaultServerPort       = 3000
	defaultCodeTTL          = 5 * time.Minute
	defaultCredentialType   = "VerifiedEmployee"
	defaultClientName       = "IT Helpdesk"
	defaultVerifierEndpoint = "https://verifiedid.did.msidentity.com/v1.0/verifiablecredentials/createPresentationRequest"
)

func bindEnv() {
	viper.SetEnvPrefix("SECUREID")
	_ = viper.BindEnv("ServerUrl", "SECUREID_SERVER_URL")
	_ = viper.BindEnv("ServerPort", "SECUREID_SERVER_PORT")
	_ = viper.BindEnv("CodeTTL", "SECUREID_CODE_TTL")

	_ = viper.BindEnv("Cache.Provider", "SECUREID_CACHE_PROVIDER")
	_ = viper.BindEnv("Cache.Url", "SECUREID_CACHE_URL")

	_ = viper.BindEnv("Log.Level", "SECUREID_LOG_LEVEL")
	_ = viper.BindEnv("Log.Mode", "SECUREID_LOG_MODE")

	_ = viper.BindEnv("HTTPBasicAuth.User", "SECUREID_API_AUTH_USER")
	_ = viper.BindEnv("HTTPBasicAuth.Password", "SECUREID_API_AUTH_PASSWORD")

	_ = viper.BindEnv("Twilio.AccountSID", "TWILIO_ACCOUNT_SID")
	_ = viper.BindEnv("Twilio.AuthToken", "TWILIO_AUTH_TOKEN")
	_ = viper.BindEnv("Twilio.FromNumber", "TWILIO_PHONE_NUMBER")

	_ = viper.BindEnv("VerifiedID.Endpoint", "SECUREID_VERIFIER_ENDPOINT")
	_ = viper.BindEnv("VerifiedID.Scope", "SECUREID_VERIFIER_SCOPE")
	_ = viper.BindEnv("VerifiedID.Authority", "VERIFIER_AUTHORITY_DID")
	_ = viper.BindEnv("VerifiedID.CredentialType", "CREDENTIAL_TYPE")
	_ = viper.BindEnv("VerifiedID.ClientName", "SECUREID_VERIFIER_CLIENT_NAME")
	_ = viper.BindEnv("VerifiedID.CallbackAPIKey", "SECUREID_VERIFIER_CALLBACK_API_KEY")

	_ = viper.BindEnv("Graph.TenantID", "TENANT_ID")
	_ = viper.BindEnv("Graph.ClientID", "CLIENT_ID")
	_ = viper.BindEnv("Graph.ClientSecret", "CLIENT_SECRET")

	viper.AutomaticEnv()
}

func getWorkingDirectory() string {
	wd, err := os.Getwd()
	if err != nil {
		return "."
	}
	return wd
}
