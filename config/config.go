package config

import (
	"io"
	"net"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/ilyakaznacheev/cleanenv"
	"github.com/juju/errors"
)

const (
	LogFormatText = "text"
	LogFormatJSON = "json"
)

const (
	DefaultListen         = "127.0.0.1:8000"
	DefaultCityDB         = "db/GeoIP2-City.mmdb"
	DefaultISPDB          = "db/GeoIP2-ISP.mmdb"
	DefaultLocale         = "en"
	DefaultRequestTimeout = time.Minute
)

type BasicAuth struct {
	User     string `toml:"user" env:"GEOIP2API_BASIC_AUTH_USER" env-upd:""`
	Password string `toml:"password" env:"GEOIP2API_BASIC_AUTH_PASSWORD" env-upd:""`
}

func (b BasicAuth) Enabled() bool {
	return b.User != ""
}

type Config struct {
	Listen          string        `toml:"listen" env:"GEOIP2API_LISTEN" env-upd:""`
	CityDB          string        `toml:"city_db" env:"GEOIP2API_CITY_DB" env-upd:""`
	ISPDB           string        `toml:"isp_db" env:"GEOIP2API_ISP_DB" env-upd:""`
	Locale          string        `toml:"locale" env:"GEOIP2API_LOCALE" env-upd:""`
	LogFormat       string        `toml:"log_format" env:"GEOIP2API_LOG_FORMAT" env-upd:""`
	RequestTimeout  time.Duration `toml:"request_timeout" env:"GEOIP2API_REQUEST_TIMEOUT" env-upd:""`
	BasicAuth       BasicAuth     `toml:"basic_auth"`
	AllowedNetworks []string      `toml:"allowed_networks" env:"GEOIP2API_ALLOWED_NETWORKS" env-upd:""`
}

// Default returns configuration which is used if config file does not
// mention some option.
func Default() *Config {
	return &Config{
		Listen:         DefaultListen,
		CityDB:         DefaultCityDB,
		ISPDB:          DefaultISPDB,
		Locale:         DefaultLocale,
		LogFormat:      LogFormatText,
		RequestTimeout: DefaultRequestTimeout,
	}
}

// Parse reads TOML config from file and applies environment overrides on
// top of it. Nil file means that only defaults and environment are used.
func Parse(file io.Reader) (*Config, error) {
	conf := Default()

	if file != nil {
		buf, err := io.ReadAll(file)
		if err != nil {
			return nil, errors.Annotate(err, "Cannot read config file")
		}

		if _, err := toml.Decode(string(buf), conf); err != nil {
			return nil, errors.Annotate(err, "Cannot parse config file")
		}
	}

	if err := cleanenv.UpdateEnv(conf); err != nil {
		return nil, errors.Annotate(err, "Cannot read environment variables")
	}

	if err := validate(conf); err != nil {
		return nil, errors.Annotate(err, "Invalid value")
	}

	return conf, nil
}

func validate(conf *Config) error {
	_, port, err := net.SplitHostPort(conf.Listen)
	if err != nil {
		return errors.Annotatef(err, "Incorrect listen address %s", conf.Listen)
	}

	if portNum, err := strconv.Atoi(port); err != nil || portNum < 0 || portNum > 65535 {
		return errors.Errorf("Incorrect listen port %s", port)
	}

	if strings.TrimSpace(conf.CityDB) == "" {
		return errors.New("City database path is empty")
	}

	if strings.TrimSpace(conf.ISPDB) == "" {
		return errors.New("ISP database path is empty")
	}

	if strings.TrimSpace(conf.Locale) == "" {
		return errors.New("Locale is empty")
	}

	switch conf.LogFormat {
	case LogFormatText, LogFormatJSON:
	default:
		return errors.Errorf("Unknown log format %s", conf.LogFormat)
	}

	if conf.RequestTimeout <= 0 {
		return errors.Errorf("Incorrect request timeout %s", conf.RequestTimeout)
	}

	if (conf.BasicAuth.User == "") != (conf.BasicAuth.Password == "") {
		return errors.New("Basic auth requires both user and password")
	}

	for _, v := range conf.AllowedNetworks {
		if _, _, err := net.ParseCIDR(v); err != nil {
			return errors.Annotatef(err, "Incorrect allowed network %s", v)
		}
	}

	return nil
}
