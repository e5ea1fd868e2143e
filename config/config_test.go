package config

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestConfigOk(t *testing.T) {
	text := `listen = "0.0.0.0:9000"
		city_db = "/var/lib/geoip/GeoLite2-City.mmdb"
		isp_db = "/var/lib/geoip/GeoLite2-ASN.mmdb"
		locale = "de"
		log_format = "json"
		request_timeout = "15s"
		allowed_networks = ["10.0.0.0/8", "2001:db8::/32"]

		[basic_auth]
		user = "admin"
		password = "secret"`

	conf, err := Parse(strings.NewReader(text))
	assert.Nil(t, err)
	assert.NotNil(t, conf)

	assert.Equal(t, "0.0.0.0:9000", conf.Listen)
	assert.Equal(t, "/var/lib/geoip/GeoLite2-City.mmdb", conf.CityDB)
	assert.Equal(t, "/var/lib/geoip/GeoLite2-ASN.mmdb", conf.ISPDB)
	assert.Equal(t, "de", conf.Locale)
	assert.Equal(t, LogFormatJSON, conf.LogFormat)
	assert.Equal(t, 15*time.Second, conf.RequestTimeout)
	assert.Equal(t, []string{"10.0.0.0/8", "2001:db8::/32"}, conf.AllowedNetworks)
	assert.True(t, conf.BasicAuth.Enabled())
	assert.Equal(t, "admin", conf.BasicAuth.User)
	assert.Equal(t, "secret", conf.BasicAuth.Password)
}

func TestConfigDefaults(t *testing.T) {
	conf, err := Parse(strings.NewReader(""))
	assert.Nil(t, err)
	assert.NotNil(t, conf)

	assert.Equal(t, Default(), conf)
	assert.Equal(t, "127.0.0.1:8000", conf.Listen)
	assert.Equal(t, "db/GeoIP2-City.mmdb", conf.CityDB)
	assert.Equal(t, "db/GeoIP2-ISP.mmdb", conf.ISPDB)
	assert.Equal(t, "en", conf.Locale)
	assert.Equal(t, LogFormatText, conf.LogFormat)
	assert.Equal(t, time.Minute, conf.RequestTimeout)
	assert.False(t, conf.BasicAuth.Enabled())
	assert.Len(t, conf.AllowedNetworks, 0)
}

func TestConfigNoFile(t *testing.T) {
	conf, err := Parse(nil)

	assert.Nil(t, err)
	assert.Equal(t, Default(), conf)
}

func TestConfigEnvironment(t *testing.T) {
	t.Setenv("GEOIP2API_LISTEN", ":8080")
	t.Setenv("GEOIP2API_LOCALE", "ru")
	t.Setenv("GEOIP2API_REQUEST_TIMEOUT", "5s")
	t.Setenv("GEOIP2API_BASIC_AUTH_USER", "user")
	t.Setenv("GEOIP2API_BASIC_AUTH_PASSWORD", "pass")
	t.Setenv("GEOIP2API_ALLOWED_NETWORKS", "127.0.0.0/8,::1/128")

	conf, err := Parse(strings.NewReader(`locale = "de"
		city_db = "city.mmdb"`))
	assert.Nil(t, err)

	assert.Equal(t, ":8080", conf.Listen)
	assert.Equal(t, "ru", conf.Locale)
	assert.Equal(t, "city.mmdb", conf.CityDB)
	assert.Equal(t, 5*time.Second, conf.RequestTimeout)
	assert.Equal(t, "user", conf.BasicAuth.User)
	assert.Equal(t, "pass", conf.BasicAuth.Password)
	assert.Equal(t, []string{"127.0.0.0/8", "::1/128"}, conf.AllowedNetworks)
}

func TestConfigEnvironmentWithoutFile(t *testing.T) {
	t.Setenv("GEOIP2API_CITY_DB", "/srv/city.mmdb")
	t.Setenv("GEOIP2API_LISTEN", ":9999")

	conf, err := Parse(nil)
	assert.Nil(t, err)

	assert.Equal(t, "/srv/city.mmdb", conf.CityDB)
	assert.Equal(t, ":9999", conf.Listen)
	assert.Equal(t, DefaultISPDB, conf.ISPDB)
	assert.Equal(t, DefaultLocale, conf.Locale)
}

func TestConfigEnvironmentIncorrect(t *testing.T) {
	t.Setenv("GEOIP2API_REQUEST_TIMEOUT", "soon")

	_, err := Parse(nil)
	assert.NotNil(t, err)
}

func TestBrokenFile(t *testing.T) {
	_, err := Parse(strings.NewReader(`listen = `))
	assert.NotNil(t, err)
}

func TestIncorrectValues(t *testing.T) {
	texts := map[string]string{
		"listen without port": `listen = "127.0.0.1"`,
		"listen bad port":     `listen = "127.0.0.1:http-alt"`,
		"listen big port":     `listen = "127.0.0.1:70000"`,
		"empty city db":       `city_db = ""`,
		"empty isp db":        `isp_db = " "`,
		"empty locale":        `locale = ""`,
		"unknown log format":  `log_format = "xml"`,
		"zero timeout":        `request_timeout = "0s"`,
		"user only":           "[basic_auth]\nuser = \"admin\"",
		"password only":       "[basic_auth]\npassword = \"secret\"",
		"bad network":         `allowed_networks = ["10.0.0.0/33"]`,
		"not a network":       `allowed_networks = ["localhost"]`,
	}

	for name, text := range texts {
		_, err := Parse(strings.NewReader(text))
		assert.NotNil(t, err, name)
	}
}
