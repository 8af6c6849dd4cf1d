package config

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/Abd-Elsattar/Talaqi-Platform-sub000/internal/domain"
)

// Config is the root application configuration.
type Config struct {
	Server       ServerConfig       `yaml:"server"`
	Database     DatabaseConfig     `yaml:"database"`
	Auth         AuthConfig         `yaml:"auth"`
	Log          LogConfig          `yaml:"log"`
	CORS         CORSConfig         `yaml:"cors"`
	Matching     MatchingConfig     `yaml:"matching"`
	Extractor    ExtractorConfig    `yaml:"extractor"`
	Notification NotificationConfig `yaml:"notification"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,PATCH,DELETE,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Authorization,Content-Type"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"true"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
	// WriteRateLimit caps report writes per caller per minute. 0 disables it.
	WriteRateLimit int `yaml:"write_rate_limit" env:"SERVER_WRITE_RATE_LIMIT" env-default:"30"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"5"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
	// ApplicationName tags the sessions in pg_stat_activity.
	ApplicationName string `yaml:"application_name" env:"DATABASE_APPLICATION_NAME" env-default:"talaqi-matcher"`
	// StatementTimeout bounds every statement, e.g. a large eligibility scan. Zero disables it.
	StatementTimeout time.Duration `yaml:"statement_timeout" env:"DATABASE_STATEMENT_TIMEOUT" env-default:"30s"`
}

// AuthConfig holds bearer token validation settings. Tokens are issued elsewhere.
type AuthConfig struct {
	JWTSecret      string        `yaml:"jwt_secret"       env:"AUTH_JWT_SECRET"       env-required:"true"`
	JWTIssuer      string        `yaml:"jwt_issuer"       env:"AUTH_JWT_ISSUER"       env-default:"talaqi"`
	AccessTokenTTL time.Duration `yaml:"access_token_ttl" env:"AUTH_ACCESS_TOKEN_TTL" env-default:"15m"`
}

// LogConfig holds logging settings. When File is set, output goes to a
// rotating file instead of stderr.
type LogConfig struct {
	Level      string `yaml:"level"        env:"LOG_LEVEL"         env-default:"info"`
	Format     string `yaml:"format"       env:"LOG_FORMAT"        env-default:"json"`
	File       string `yaml:"file"         env:"LOG_FILE"`
	MaxSizeMB  int    `yaml:"max_size_mb"  env:"LOG_MAX_SIZE_MB"   env-default:"100"`
	MaxBackups int    `yaml:"max_backups"  env:"LOG_MAX_BACKUPS"   env-default:"5"`
	MaxAgeDays int    `yaml:"max_age_days" env:"LOG_MAX_AGE_DAYS"  env-default:"28"`
}

// MatchingConfig holds the matching engine knobs.
type MatchingConfig struct {
	TopNExpose                int     `yaml:"top_n_expose"                env:"MATCH_TOP_N_EXPOSE"                env-default:"5"`
	MaxCandidatesPerItem      int     `yaml:"max_candidates_per_item"     env:"MATCH_MAX_CANDIDATES_PER_ITEM"     env-default:"50"`
	MaxDateWindowDays         int     `yaml:"max_date_window_days"        env:"MATCH_MAX_DATE_WINDOW_DAYS"        env-default:"60"`
	CandidateScanLimit        int     `yaml:"candidate_scan_limit"        env:"MATCH_CANDIDATE_SCAN_LIMIT"        env-default:"0"`
	LocationDecayKm           float64 `yaml:"location_decay_km"           env:"MATCH_LOCATION_DECAY_KM"           env-default:"5"`
	DateDecayDays             float64 `yaml:"date_decay_days"             env:"MATCH_DATE_DECAY_DAYS"             env-default:"30"`
	StrictLocationCountry     bool    `yaml:"strict_location_country"     env:"MATCH_STRICT_LOCATION_COUNTRY"     env-default:"false"`
	StrictLocationGovernorate bool    `yaml:"strict_location_governorate" env:"MATCH_STRICT_LOCATION_GOVERNORATE" env-default:"false"`
	RescoreConcurrency        int     `yaml:"rescore_concurrency"         env:"MATCH_RESCORE_CONCURRENCY"         env-default:"4"`

	People             PeopleConfig             `yaml:"people"              env-prefix:"MATCH_PEOPLE_"`
	Pets               PetsConfig               `yaml:"pets"                env-prefix:"MATCH_PETS_"`
	PersonalBelongings PersonalBelongingsConfig `yaml:"personal_belongings" env-prefix:"MATCH_BELONGINGS_"`
}

// CategoryConfig holds the thresholds and weights of one category. Each
// category section below has the same fields with its own defaults.
type CategoryConfig struct {
	CandidateThreshold float64
	PromotionThreshold float64
	KeywordWeight      float64
	LocationWeight     float64
	DateWeight         float64
	ImageWeight        float64
}

// PeopleConfig carries the People defaults.
type PeopleConfig struct {
	CandidateThreshold float64 `yaml:"candidate_threshold" env:"CANDIDATE_THRESHOLD" env-default:"30"`
	PromotionThreshold float64 `yaml:"promotion_threshold" env:"PROMOTION_THRESHOLD" env-default:"55"`
	KeywordWeight      float64 `yaml:"keyword_weight"      env:"KEYWORD_WEIGHT"      env-default:"0.45"`
	LocationWeight     float64 `yaml:"location_weight"     env:"LOCATION_WEIGHT"     env-default:"0.35"`
	DateWeight         float64 `yaml:"date_weight"         env:"DATE_WEIGHT"         env-default:"0.20"`
	ImageWeight        float64 `yaml:"image_weight"        env:"IMAGE_WEIGHT"        env-default:"0"`
}

// PetsConfig carries the Pets defaults.
type PetsConfig struct {
	CandidateThreshold float64 `yaml:"candidate_threshold" env:"CANDIDATE_THRESHOLD" env-default:"28"`
	PromotionThreshold float64 `yaml:"promotion_threshold" env:"PROMOTION_THRESHOLD" env-default:"50"`
	KeywordWeight      float64 `yaml:"keyword_weight"      env:"KEYWORD_WEIGHT"      env-default:"0.35"`
	LocationWeight     float64 `yaml:"location_weight"     env:"LOCATION_WEIGHT"     env-default:"0.30"`
	DateWeight         float64 `yaml:"date_weight"         env:"DATE_WEIGHT"         env-default:"0.15"`
	ImageWeight        float64 `yaml:"image_weight"        env:"IMAGE_WEIGHT"        env-default:"0.20"`
}

// PersonalBelongingsConfig carries the PersonalBelongings defaults.
type PersonalBelongingsConfig struct {
	CandidateThreshold float64 `yaml:"candidate_threshold" env:"CANDIDATE_THRESHOLD" env-default:"25"`
	PromotionThreshold float64 `yaml:"promotion_threshold" env:"PROMOTION_THRESHOLD" env-default:"52"`
	KeywordWeight      float64 `yaml:"keyword_weight"      env:"KEYWORD_WEIGHT"      env-default:"0.40"`
	LocationWeight     float64 `yaml:"location_weight"     env:"LOCATION_WEIGHT"     env-default:"0.25"`
	DateWeight         float64 `yaml:"date_weight"         env:"DATE_WEIGHT"         env-default:"0.15"`
	ImageWeight        float64 `yaml:"image_weight"        env:"IMAGE_WEIGHT"        env-default:"0.20"`
}

func (c PeopleConfig) category() CategoryConfig             { return CategoryConfig(c) }
func (c PetsConfig) category() CategoryConfig               { return CategoryConfig(c) }
func (c PersonalBelongingsConfig) category() CategoryConfig { return CategoryConfig(c) }

// Policy converts the configuration into the engine's MatchingPolicy.
func (m MatchingConfig) Policy() domain.MatchingPolicy {
	return domain.MatchingPolicy{
		TopNExpose:                m.TopNExpose,
		MaxCandidatesPerItem:      m.MaxCandidatesPerItem,
		MaxDateWindowDays:         m.MaxDateWindowDays,
		CandidateScanLimit:        m.CandidateScanLimit,
		LocationDecayKm:           m.LocationDecayKm,
		DateDecayDays:             m.DateDecayDays,
		StrictLocationCountry:     m.StrictLocationCountry,
		StrictLocationGovernorate: m.StrictLocationGovernorate,
		Categories: map[domain.Category]domain.CategoryPolicy{
			domain.CategoryPeople:             m.People.category().policy(),
			domain.CategoryPets:               m.Pets.category().policy(),
			domain.CategoryPersonalBelongings: m.PersonalBelongings.category().policy(),
		},
	}
}

func (c CategoryConfig) policy() domain.CategoryPolicy {
	return domain.CategoryPolicy{
		CandidateThreshold: decimal.NewFromFloat(c.CandidateThreshold).Round(domain.ScoreScale),
		PromotionThreshold: decimal.NewFromFloat(c.PromotionThreshold).Round(domain.ScoreScale),
		Weights: domain.Weights{
			Keywords: c.KeywordWeight,
			Location: c.LocationWeight,
			Date:     c.DateWeight,
			Image:    c.ImageWeight,
		},
	}
}

// ExtractorConfig selects and configures the feature extractor.
// Driver "hashing" runs in-process; "http" calls an external service.
type ExtractorConfig struct {
	Driver     string        `yaml:"driver"     env:"EXTRACTOR_DRIVER"     env-default:"hashing"`
	BaseURL    string        `yaml:"base_url"   env:"EXTRACTOR_BASE_URL"`
	Timeout    time.Duration `yaml:"timeout"    env:"EXTRACTOR_TIMEOUT"    env-default:"5s"`
	Dimensions int           `yaml:"dimensions" env:"EXTRACTOR_DIMENSIONS" env-default:"256"`
}

// NotificationConfig configures the match notification dispatcher.
type NotificationConfig struct {
	Enabled    bool          `yaml:"enabled"     env:"NOTIFY_ENABLED"     env-default:"true"`
	Driver     string        `yaml:"driver"      env:"NOTIFY_DRIVER"      env-default:"log"`
	WebhookURL string        `yaml:"webhook_url" env:"NOTIFY_WEBHOOK_URL"`
	Timeout    time.Duration `yaml:"timeout"     env:"NOTIFY_TIMEOUT"     env-default:"5s"`
	Workers    int           `yaml:"workers"     env:"NOTIFY_WORKERS"     env-default:"4"`
	QueueSize  int           `yaml:"queue_size"  env:"NOTIFY_QUEUE_SIZE"  env-default:"256"`
}
