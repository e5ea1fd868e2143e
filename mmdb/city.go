package mmdb

import (
	"strings"

	"github.com/juju/errors"

	"github.com/geoip2api/geoip2api/geolib"
)

const fallbackLocale = "en"

type cityLookupResult struct {
	City struct {
		GeoNameID *uint             `maxminddb:"geoname_id"`
		Names     map[string]string `maxminddb:"names"`
	} `maxminddb:"city"`
	Continent struct {
		Code      *string           `maxminddb:"code"`
		GeoNameID *uint             `maxminddb:"geoname_id"`
		Names     map[string]string `maxminddb:"names"`
	} `maxminddb:"continent"`
	Country struct {
		GeoNameID *uint             `maxminddb:"geoname_id"`
		IsoCode   *string           `maxminddb:"iso_code"`
		Names     map[string]string `maxminddb:"names"`
	} `maxminddb:"country"`
	Location struct {
		Latitude  *float64 `maxminddb:"latitude"`
		Longitude *float64 `maxminddb:"longitude"`
		TimeZone  *string  `maxminddb:"time_zone"`
	} `maxminddb:"location"`
}

// CityReader serves city table from GeoIP2/GeoLite2 City database.
type CityReader struct {
	maxmindBase

	locale string
}

func (c *CityReader) LookupCity(ip string) (geolib.CityRecord, error) {
	result := cityLookupResult{}

	addr, err := c.lookup(ip, &result)
	if err != nil {
		return geolib.CityRecord{}, err
	}

	return geolib.CityRecord{
		IP:                 addr.String(),
		City:               c.name(result.City.Names),
		CityGeoNameID:      result.City.GeoNameID,
		CountryCode:        result.Country.IsoCode,
		Country:            c.name(result.Country.Names),
		CountryGeoNameID:   result.Country.GeoNameID,
		Continent:          c.name(result.Continent.Names),
		ContinentCode:      result.Continent.Code,
		ContinentGeoNameID: result.Continent.GeoNameID,
		Latitude:           result.Location.Latitude,
		Longitude:          result.Location.Longitude,
		TimeZone:           result.Location.TimeZone,
	}, nil
}

// name picks a localized name. Values stored in database are returned
// as is, even empty ones; nil means that there is no name neither for
// the locale nor for the fallback one.
func (c *CityReader) name(names map[string]string) *string {
	if value, ok := names[c.locale]; ok {
		return &value
	}

	if value, ok := names[fallbackLocale]; ok {
		return &value
	}

	return nil
}

// OpenCity opens city database at path. Names are taken for the given
// locale if database has them.
func OpenCity(path, locale string) (*CityReader, error) {
	locale = strings.TrimSpace(locale)
	if locale == "" {
		locale = fallbackLocale
	}

	reader := &CityReader{
		maxmindBase: maxmindBase{
			table:         geolib.TableCity,
			path:          path,
			databaseTypes: []string{"City"},
		},
		locale: locale,
	}

	if err := reader.Reopen(); err != nil {
		return nil, errors.Annotate(err, "cannot open city database")
	}

	return reader, nil
}
