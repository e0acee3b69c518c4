package config

import (
	"github.com/evgeny-myasishchev/ledger.transactions-api/pkg/lib-core-golang/config"
	"github.com/evgeny-myasishchev/ledger.transactions-api/pkg/version"
)

var appEnv = config.NewAppEnv(version.AppName)
var configBuilder = config.NewBuilder(appEnv)

var localParams = configBuilder.NewParamsBuilder(configBuilder.WithLocalSource())

// Do not change vars below at runtime
var (
	LogLevel = localParams.NewParam("log/logLevel").String()

	ServerPort = localParams.NewParam("server/port").Int()

	StorageDriver = localParams.NewParam("storage/driver").String()
	StorageDSN    = localParams.NewParam("storage/data-source-name").String()

	SessionTTLDays = localParams.NewParam("session/ttl-days").Int()
)

// Log represents logger specific options
type Log struct {
	Level config.StringVal
}

// Server represents http server settings
type Server struct {
	Port config.IntVal
}

// Storage represents storage settings
type Storage struct {
	Driver config.StringVal
	DSN    config.StringVal
}

// Session represents session cookie settings
type Session struct {
	TTLDays config.IntVal
}

// AppConfig is a toplevel config structure
type AppConfig struct {
	Log     Log
	Server  Server
	Storage Storage
	Session Session
}

// LoadAppConfig will load and initialize app config structure
func LoadAppConfig() *AppConfig {
	cfg, err := configBuilder.LoadConfig()
	if err != nil {
		panic(err)
	}

	appCfg := AppConfig{
		Log: Log{
			Level: cfg.StringParam(LogLevel),
		},
		Server: Server{
			Port: cfg.IntParam(ServerPort),
		},
		Storage: Storage{
			Driver: cfg.StringParam(StorageDriver),
			DSN:    cfg.StringParam(StorageDSN),
		},
		Session: Session{
			TTLDays: cfg.IntParam(SessionTTLDays),
		},
	}

	return &appCfg
}
