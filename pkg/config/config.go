package config

import (
	"time"
)

type DB struct {
	Url string `envconfig:"URL"`
	// Driver selects the storage backend: postgres, sqlite or memory.
	Driver string `envconfig:"DRIVER" default:"postgres"`
}

type Jwt struct {
	Secret string        `envconfig:"SECRET" required:"true"`
	Expiry time.Duration `envconfig:"EXPIRY" default:"24h"`
	// Claim is the JWT claim that carries the caller's address.
	Claim string `envconfig:"CLAIM" default:"address"`
}

type Auth struct {
	Strategy string `envconfig:"STRATEGY" default:"jwt"`
	Jwt      *Jwt   `envconfig:"JWT"`
	// DevTokens mounts POST /auth/token. Honoured only in development.
	DevTokens bool `envconfig:"DEV_TOKENS" default:"false"`
}

type Redis struct {
	URL          string        `envconfig:"URL" default:"redis://localhost:6379/0"`
	KeyPrefix    string        `envconfig:"KEY_PREFIX" default:""`
	PoolSize     int           `envconfig:"POOL_SIZE" default:"10"`
	DialTimeout  time.Duration `envconfig:"DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"READ_TIMEOUT" default:"3s"`
	WriteTimeout time.Duration `envconfig:"WRITE_TIMEOUT" default:"3s"`
}

type Kafka struct {
	Brokers []string `envconfig:"BROKERS" default:"localhost:9092"`
	Topic   string   `envconfig:"TOPIC" default:"aliasregistry.events"`
	GroupID string   `envconfig:"GROUP_ID" default:"aliasregistry"`
}

type EventBus struct {
	// Driver selects the event bus: memory, redis or kafka.
	Driver string `envconfig:"DRIVER" default:"memory"`
	Stream string `envconfig:"STREAM" default:"aliasregistry:events"`
	Group  string `envconfig:"GROUP" default:"aliasregistry"`

	// Instance names this process for the per-instance groups that carry
	// cache invalidations. Generated from the hostname when empty.
	Instance string `envconfig:"INSTANCE"`
}

type RateLimit struct {
	MaxRequests int           `envconfig:"MAX_REQUESTS" default:"100"`
	Window      time.Duration `envconfig:"WINDOW" default:"1m"`
}

type Cache struct {
	// Driver selects the lookup cache: memory, redis or none.
	Driver  string        `envconfig:"DRIVER" default:"memory"`
	TTL     time.Duration `envconfig:"TTL" default:"5m"`
	Cleanup time.Duration `envconfig:"CLEANUP" default:"10m"`
	Prefix  string        `envconfig:"PREFIX" default:"alias:cache:"`
}

type Registry struct {
	// MaxAliasSize is used when an init request does not carry one.
	MaxAliasSize              int    `envconfig:"MAX_ALIAS_SIZE" default:"65535"`
	TokenContractAddress      string `envconfig:"TOKEN_CONTRACT_ADDRESS"`
	TokenContractHash         string `envconfig:"TOKEN_CONTRACT_HASH"`
	PaymentDestinationAddress string `envconfig:"PAYMENT_DESTINATION_ADDRESS"`
	PaymentDestinationHash    string `envconfig:"PAYMENT_DESTINATION_HASH"`
	// AutoInit initializes the registry from this section at startup when no
	// configuration has been stored yet.
	AutoInit     bool `envconfig:"AUTO_INIT" default:"false"`
	PadResponses bool `envconfig:"PAD_RESPONSES" default:"false"`
	BlockSize    int  `envconfig:"BLOCK_SIZE" default:"256"`
}

type Log struct {
	Level      int    `envconfig:"LEVEL" default:"0"`
	Format     string `envconfig:"FORMAT" default:"json"`
	TimeFormat string `envconfig:"TIME_FORMAT" default:"2006-01-02 15:04:05"`
	Prefix     string `envconfig:"PREFIX" default:"[aliasregistry]"`
}

type Server struct {
	Scheme string `envconfig:"SCHEME" default:"http"`
	Host   string `envconfig:"HOST" default:"localhost"`
	Port   int    `envconfig:"PORT" default:"3000"`
}

type App struct {
	Env       string     `envconfig:"APP_ENV" default:"production"`
	Server    *Server    `envconfig:"SERVER"`
	Log       *Log       `envconfig:"LOG"`
	DB        *DB        `envconfig:"DATABASE"`
	Auth      *Auth      `envconfig:"AUTH"`
	Redis     *Redis     `envconfig:"REDIS"`
	Kafka     *Kafka     `envconfig:"KAFKA"`
	EventBus  *EventBus  `envconfig:"EVENT_BUS"`
	RateLimit *RateLimit `envconfig:"RATE_LIMIT"`
	Cache     *Cache     `envconfig:"CACHE"`
	Registry  *Registry  `envconfig:"REGISTRY"`
}

// IsDevelopment reports whether the app runs in a development environment.
func (a *App) IsDevelopment() bool {
	return a.Env == "development" || a.Env == "test"
}

// DevTokensEnabled reports whether the unauthenticated token endpoint is
// mounted. It needs both the explicit flag and a development environment.
func (a *App) DevTokensEnabled() bool {
	return a.Auth != nil && a.Auth.DevTokens && a.IsDevelopment()
}
