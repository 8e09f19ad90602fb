package config

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"time"

	"github.com/spf13/cast"
	"github.com/spf13/viper"

	"backoff_retrier/internal/retry"
)

const (
	keyServerAddress     = "SERVER_ADDRESS"
	keyRPCHTTP           = "ETH_RPC_HTTP"
	keyRPCTimeout        = "ETH_RPC_TIMEOUT"
	keyCacheMaxEntries   = "CACHE_HEADERS_MAX_ENTRIES"
	keyCacheTTL          = "CACHE_HEADERS_TTL"
	keyLogLevel          = "LOG_LEVEL"
	keyMaxRetries        = "MAX_RETRIES"
	keyRetryBaseDelay    = "RETRY_BASE_DELAY"
	keyRetryMaxDelay     = "RETRY_MAX_DELAY"
	defaultConfigName    = "config"
	defaultConfigType    = "json"
	defaultConfigDirPath = "."
)

// Worker is the retry section read by every retrier invocation.
type Worker struct {
	MaxRetries int
	BaseDelay  time.Duration
	MaxDelay   time.Duration
}

// Policy converts the worker section into a retry policy.
func (w Worker) Policy() retry.Policy {
	return retry.Policy{
		MaxRetries: w.MaxRetries,
		BaseDelay:  w.BaseDelay,
		MaxDelay:   w.MaxDelay,
	}
}

type Config struct {
	Server struct {
		Address string
	}
	Ethereum struct {
		RPCHTTP        string
		RequestTimeout time.Duration
	}
	Cache struct {
		Headers struct {
			MaxEntries int
			TTL        time.Duration
		}
	}
	Log struct {
		Level string
	}
	Worker Worker
}

func newViper() (*viper.Viper, error) {
	v := viper.New()
	v.SetConfigName(defaultConfigName)
	v.SetConfigType(defaultConfigType)
	v.AddConfigPath(defaultConfigDirPath)
	v.AutomaticEnv()

	v.SetDefault(keyServerAddress, ":8080")
	v.SetDefault(keyRPCHTTP, "http://localhost:8545")
	v.SetDefault(keyRPCTimeout, "5s")
	v.SetDefault(keyCacheMaxEntries, 1024)
	v.SetDefault(keyCacheTTL, "60m")
	v.SetDefault(keyLogLevel, "info")
	v.SetDefault(keyMaxRetries, 3)
	v.SetDefault(keyRetryBaseDelay, "1s")
	v.SetDefault(keyRetryMaxDelay, "10s")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}
	return v, nil
}

// Load reads the whole process configuration.
func Load() (*Config, error) {
	v, err := newViper()
	if err != nil {
		return nil, err
	}

	worker, err := workerFrom(v)
	if err != nil {
		return nil, err
	}

	cfg := &Config{Worker: worker}
	cfg.Server.Address = v.GetString(keyServerAddress)
	cfg.Ethereum.RPCHTTP = v.GetString(keyRPCHTTP)
	cfg.Log.Level = v.GetString(keyLogLevel)

	if cfg.Ethereum.RequestTimeout, err = cast.ToDurationE(v.Get(keyRPCTimeout)); err != nil {
		return nil, fmt.Errorf("%s: %w", keyRPCTimeout, err)
	}
	if cfg.Cache.Headers.MaxEntries, err = toStrictInt(v.Get(keyCacheMaxEntries)); err != nil {
		return nil, fmt.Errorf("%s: %w", keyCacheMaxEntries, err)
	}
	if cfg.Cache.Headers.TTL, err = cast.ToDurationE(v.Get(keyCacheTTL)); err != nil {
		return nil, fmt.Errorf("%s: %w", keyCacheTTL, err)
	}

	if cfg.Server.Address == "" {
		return nil, fmt.Errorf("%s must not be empty", keyServerAddress)
	}
	if cfg.Ethereum.RPCHTTP == "" {
		return nil, fmt.Errorf("%s must not be empty", keyRPCHTTP)
	}
	if cfg.Ethereum.RequestTimeout <= 0 {
		return nil, fmt.Errorf("%s must be > 0", keyRPCTimeout)
	}
	if cfg.Cache.Headers.MaxEntries < 1 {
		return nil, fmt.Errorf("%s must be ≥ 1", keyCacheMaxEntries)
	}
	if cfg.Cache.Headers.TTL <= 0 {
		return nil, fmt.Errorf("%s must be > 0", keyCacheTTL)
	}

	return cfg, nil
}

// LoadWorker reads only the retry section.
func LoadWorker() (Worker, error) {
	v, err := newViper()
	if err != nil {
		return Worker{}, err
	}
	return workerFrom(v)
}

func workerFrom(v *viper.Viper) (Worker, error) {
	var (
		w   Worker
		err error
	)

	if w.MaxRetries, err = toStrictInt(v.Get(keyMaxRetries)); err != nil {
		return Worker{}, fmt.Errorf("%s: %w", keyMaxRetries, err)
	}
	if w.BaseDelay, err = cast.ToDurationE(v.Get(keyRetryBaseDelay)); err != nil {
		return Worker{}, fmt.Errorf("%s: %w", keyRetryBaseDelay, err)
	}
	if w.MaxDelay, err = cast.ToDurationE(v.Get(keyRetryMaxDelay)); err != nil {
		return Worker{}, fmt.Errorf("%s: %w", keyRetryMaxDelay, err)
	}

	if w.MaxRetries < 0 {
		return Worker{}, fmt.Errorf("%s must be ≥ 0", keyMaxRetries)
	}
	if w.BaseDelay <= 0 {
		return Worker{}, fmt.Errorf("%s must be > 0", keyRetryBaseDelay)
	}
	if w.MaxDelay < w.BaseDelay {
		return Worker{}, fmt.Errorf("%s must be ≥ %s", keyRetryMaxDelay, keyRetryBaseDelay)
	}

	return w, nil
}

// toStrictInt accepts base-10 strings and whole numbers. Prefixes, digit
// separators, fractions and booleans are rejected.
func toStrictInt(raw any) (int, error) {
	switch v := raw.(type) {
	case string:
		n, err := strconv.Atoi(v)
		if err != nil {
			return 0, fmt.Errorf("%q is not a decimal integer", v)
		}
		return n, nil
	case float32:
		return wholeFloat(float64(v))
	case float64:
		return wholeFloat(v)
	case bool, nil:
		return 0, fmt.Errorf("%v is not an integer", v)
	default:
		return cast.ToIntE(v)
	}
}

func wholeFloat(f float64) (int, error) {
	if f != math.Trunc(f) || math.IsInf(f, 0) || math.Abs(f) > math.MaxInt32 {
		return 0, fmt.Errorf("%v is not a whole number", f)
	}
	return int(f), nil
}

// EnvSource is a retry.PolicySource backed by the environment and config.json.
// Every RetryPolicy call reloads the worker section.
type EnvSource struct{}

func (EnvSource) RetryPolicy() (retry.Policy, error) {
	w, err := LoadWorker()
	if err != nil {
		return retry.Policy{}, fmt.Errorf("loading worker config: %w", err)
	}
	return w.Policy(), nil
}
