package config

import (
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
	"github/chapool/nft-mint/internal/util"
)

// Key sources for the allowlist signer and the contract owner key.
const (
	KeySourceEnv      = "env"
	KeySourceMnemonic = "mnemonic"
	KeySourceKeystore = "keystore"
)

// Allowlist sources.
const (
	AllowlistSourceEnv  = "env"
	AllowlistSourceFile = "file"
	AllowlistSourceDB   = "db"
)

const DefaultDerivationPath = "m/44'/60'/0'/0/0"

type EchoServer struct {
	Debug                          bool
	ListenAddress                  string
	HideInternalServerErrorDetails bool
	EnableRecoverMiddleware        bool
	EnableRequestIDMiddleware      bool
	EnableLoggerMiddleware         bool
	EnableCORSMiddleware           bool
	EnableMetricsMiddleware        bool
}

type LoggerServer struct {
	Level              zerolog.Level
	RequestLevel       zerolog.Level
	LogRequestBody     bool
	LogResponseBody    bool
	PrettyPrintConsole bool
}

type ManagementServer struct {
	ReadinessTimeout time.Duration
	LivenessTimeout  time.Duration
}

// Chain configures the outbound node connection. URLs are tried in order,
// later entries act as failover. Subscriptions need a ws:// or wss:// URL.
type Chain struct {
	RPCURLs        []string
	ChainID        int64
	RequestTimeout time.Duration
}

type Contract struct {
	Address      string
	ABIFile      string
	BytecodeFile string
}

// Key describes where a private key comes from. Only the fields of the chosen source are used.
type Key struct {
	Source           string
	PrivateKey       string `json:"-"` // sensitive
	Mnemonic         string `json:"-"` // sensitive
	DerivationPath   string
	KeystoreName     string
	KeystorePassword string `json:"-"` // sensitive
}

type Allowlist struct {
	Source    string
	Addresses []string
	File      string
}

type Sync struct {
	Enabled             bool
	BlockOnStartup      bool
	StartBlock          uint64
	BlockBatchSize      uint64
	Confirmations       uint64
	RPCTimeout          time.Duration
	PollInterval        time.Duration
	ReconnectMinBackoff time.Duration
	ReconnectMaxBackoff time.Duration
}

type Kafka struct {
	Brokers   []string
	MintTopic string
}

type Server struct {
	Database   Database
	Echo       EchoServer
	Management ManagementServer
	Logger     LoggerServer
	Chain      Chain
	Contract   Contract
	Signer     Key
	Owner      Key
	Allowlist  Allowlist
	Sync       Sync
	Kafka      Kafka
}

// DefaultServiceConfigFromEnv returns the server config as parsed from environment variables
// and their respective defaults defined below.
// We don't expect that ENV_VARs change while we are running our application or our tests
// (and it would be a bad thing to do anyways with parallel testing).
// Do NOT use os.Setenv / os.Unsetenv in tests utilizing DefaultServiceConfigFromEnv()!
func DefaultServiceConfigFromEnv() Server {
	// An `.env.local` file in your project root can override the currently set ENV variables.
	//
	// We never automatically apply `.env.local` when running "go test" as these ENV variables
	// may be sensitive (e.g. secrets to external APIs) and applying them modifies the process
	// global "os.Env" state (it should be applied via t.SetEnv instead).
	//
	// If you need dotenv ENV variables available in a test, do that explicitly within that
	// test before executing DefaultServiceConfigFromEnv (or test.WithTestServer).
	// See /internal/test/helper_dot_env.go: test.DotEnvLoadLocalOrSkipTest(t)
	if !runningInTest() {
		DotEnvTryLoad(filepath.Join(util.GetProjectRootDir(), ".env.local"), setEnv)
	}

	listenAddress := util.GetEnv("SERVER_ECHO_LISTEN_ADDRESS", ":"+util.GetEnv("PORT", "3000"))

	return Server{
		Database: Database{
			Host:     util.GetEnv("PGHOST", "postgres"),
			Port:     util.GetEnvAsInt("PGPORT", 5432),
			Database: util.GetEnv("PGDATABASE", "development"),
			Username: util.GetEnv("PGUSER", "dbuser"),
			Password: util.GetEnv("PGPASSWORD", ""),
			AdditionalParams: map[string]string{
				"sslmode": util.GetEnv("PGSSLMODE", "disable"),
			},
			MaxOpenConns:    util.GetEnvAsInt("DB_MAX_OPEN_CONNS", runtimeNumCPU()*2),
			MaxIdleConns:    util.GetEnvAsInt("DB_MAX_IDLE_CONNS", 1),
			ConnMaxLifetime: util.GetEnvAsInt("DB_CONN_MAX_LIFETIME_SEC", 60),
		},
		Echo: EchoServer{
			Debug:                          util.GetEnvAsBool("SERVER_ECHO_DEBUG", false),
			ListenAddress:                  listenAddress,
			HideInternalServerErrorDetails: util.GetEnvAsBool("SERVER_ECHO_HIDE_INTERNAL_SERVER_ERROR_DETAILS", true),
			EnableRecoverMiddleware:        util.GetEnvAsBool("SERVER_ECHO_ENABLE_RECOVER_MIDDLEWARE", true),
			EnableRequestIDMiddleware:      util.GetEnvAsBool("SERVER_ECHO_ENABLE_REQUEST_ID_MIDDLEWARE", true),
			EnableLoggerMiddleware:         util.GetEnvAsBool("SERVER_ECHO_ENABLE_LOGGER_MIDDLEWARE", true),
			EnableCORSMiddleware:           util.GetEnvAsBool("SERVER_ECHO_ENABLE_CORS_MIDDLEWARE", true),
			EnableMetricsMiddleware:        util.GetEnvAsBool("SERVER_ECHO_ENABLE_METRICS_MIDDLEWARE", true),
		},
		Management: ManagementServer{
			ReadinessTimeout: util.GetEnvAsDuration("SERVER_MANAGEMENT_READINESS_TIMEOUT", 4*time.Second),
			LivenessTimeout:  util.GetEnvAsDuration("SERVER_MANAGEMENT_LIVENESS_TIMEOUT", 9*time.Second),
		},
		Logger: LoggerServer{
			Level:              util.LogLevelFromString(util.GetEnv("SERVER_LOGGER_LEVEL", zerolog.InfoLevel.String()), zerolog.InfoLevel),
			RequestLevel:       util.LogLevelFromString(util.GetEnv("SERVER_LOGGER_REQUEST_LEVEL", zerolog.DebugLevel.String()), zerolog.DebugLevel),
			LogRequestBody:     util.GetEnvAsBool("SERVER_LOGGER_LOG_REQUEST_BODY", false),
			LogResponseBody:    util.GetEnvAsBool("SERVER_LOGGER_LOG_RESPONSE_BODY", false),
			PrettyPrintConsole: util.GetEnvAsBool("SERVER_LOGGER_PRETTY_PRINT_CONSOLE", false),
		},
		Chain: Chain{
			RPCURLs:        util.GetEnvAsStringArrTrimmed("CHAIN_RPC_URLS", []string{"ws://localhost:8545"}),
			ChainID:        util.GetEnvAsInt64("CHAIN_ID", 31337),
			RequestTimeout: util.GetEnvAsDuration("CHAIN_REQUEST_TIMEOUT", 15*time.Second),
		},
		Contract: Contract{
			Address:      util.GetEnv("CONTRACT_ADDRESS", ""),
			ABIFile:      util.GetEnv("CONTRACT_ABI_FILE", ""),
			BytecodeFile: util.GetEnv("CONTRACT_BYTECODE_FILE", ""),
		},
		Signer: keyFromEnv("SIGNER"),
		Owner:  keyFromEnv("OWNER"),
		Allowlist: Allowlist{
			Source: util.GetEnvEnum("ALLOWLIST_SOURCE", AllowlistSourceEnv,
				[]string{AllowlistSourceEnv, AllowlistSourceFile, AllowlistSourceDB}),
			Addresses: util.GetEnvAsStringArrTrimmed("ALLOWLIST_ADDRESSES", []string{}),
			File:      util.GetEnv("ALLOWLIST_FILE", filepath.Join(util.GetProjectRootDir(), "allowlist.toml")),
		},
		Sync: Sync{
			Enabled:             util.GetEnvAsBool("SYNC_ENABLED", true),
			BlockOnStartup:      util.GetEnvAsBool("SYNC_BLOCK_STARTUP", false),
			StartBlock:          util.GetEnvAsUint64("SYNC_START_BLOCK", 0),
			BlockBatchSize:      util.GetEnvAsUint64("SYNC_BLOCK_BATCH_SIZE", 2000),
			Confirmations:       util.GetEnvAsUint64("SYNC_CONFIRMATIONS", 0),
			RPCTimeout:          util.GetEnvAsDuration("SYNC_RPC_TIMEOUT", 30*time.Second),
			PollInterval:        util.GetEnvAsDuration("SYNC_POLL_INTERVAL", 15*time.Second),
			ReconnectMinBackoff: util.GetEnvAsDuration("SYNC_RECONNECT_MIN_BACKOFF", time.Second),
			ReconnectMaxBackoff: util.GetEnvAsDuration("SYNC_RECONNECT_MAX_BACKOFF", time.Minute),
		},
		Kafka: Kafka{
			Brokers:   util.GetEnvAsStringArrTrimmed("KAFKA_BROKERS", []string{}),
			MintTopic: util.GetEnv("KAFKA_MINT_TOPIC", "mint-events"),
		},
	}
}

func keyFromEnv(prefix string) Key {
	return Key{
		Source: util.GetEnvEnum(prefix+"_KEY_SOURCE", KeySourceEnv,
			[]string{KeySourceEnv, KeySourceMnemonic, KeySourceKeystore}),
		PrivateKey:       util.GetEnv(prefix+"_PRIVATE_KEY", ""),
		Mnemonic:         util.GetEnv(prefix+"_MNEMONIC", ""),
		DerivationPath:   util.GetEnv(prefix+"_DERIVATION_PATH", DefaultDerivationPath),
		KeystoreName:     util.GetEnv(prefix+"_KEYSTORE_NAME", "signer"),
		KeystorePassword: util.GetEnv(prefix+"_KEYSTORE_PASSWORD", ""),
	}
}
