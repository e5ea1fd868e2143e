package geolib

import (
	"strconv"
	"strings"
)

// Resource names.
const (
	FieldIP                 = "ip"
	FieldCity               = "city"
	FieldCityGeoNameID      = "city_gid"
	FieldCountryCode        = "country_code"
	FieldCountry            = "country"
	FieldCountryGeoNameID   = "country_gid"
	FieldContinent          = "continent"
	FieldContinentCode      = "continent_code"
	FieldContinentGeoNameID = "continent_gid"
	FieldLocation           = "location"
	FieldLatitude           = "latitude"
	FieldLongitude          = "longitude"
	FieldTimeZone           = "tz"
	FieldASN                = "asn"
	FieldOrganization       = "org"
	FieldASOrganization     = "as_org"
	FieldISP                = "isp"
)

// CuratedFields is a set of resources for a short summary, in response
// order.
var CuratedFields = []string{
	FieldIP,
	FieldCity,
	FieldCountryCode,
	FieldLocation,
	FieldASN,
	FieldOrganization,
}

// Records holds results of table lookups made for one request. A record
// of a table which was not queried is nil.
type Records struct {
	City *CityRecord
	ISP  *ISPRecord
}

// Field is a single resource of the catalog.
type Field struct {
	Name   string
	Source Table

	extractCity func(*CityRecord) Value
	extractISP  func(*ISPRecord) Value
}

// Extract takes a value of the field from the record of its source
// table. If this record is missing, value is absent.
func (f Field) Extract(records Records) Value {
	switch f.Source {
	case TableCity:
		if records.City != nil {
			return f.extractCity(records.City)
		}
	case TableISP:
		if records.ISP != nil {
			return f.extractISP(records.ISP)
		}
	}

	return Absent()
}

// Catalog is an immutable registry of resources. It is safe to share it
// between goroutines.
type Catalog struct {
	fields []Field
	index  map[string]int
}

// Resolve finds a field by its name. Name is compared case-insensitively.
func (c *Catalog) Resolve(name string) (Field, bool) {
	idx, ok := c.index[strings.ToLower(name)]
	if !ok {
		return Field{}, false
	}

	return c.fields[idx], true
}

// Fields returns all fields in catalog order.
func (c *Catalog) Fields() []Field {
	rv := make([]Field, len(c.fields))
	copy(rv, c.fields)

	return rv
}

// Select returns fields with given names, in given order. Unknown names
// are skipped.
func (c *Catalog) Select(names ...string) []Field {
	rv := make([]Field, 0, len(names))

	for _, v := range names {
		if field, ok := c.Resolve(v); ok {
			rv = append(rv, field)
		}
	}

	return rv
}

func cityField(name string, extract func(*CityRecord) Value) Field {
	return Field{Name: name, Source: TableCity, extractCity: extract}
}

func ispField(name string, extract func(*ISPRecord) Value) Field {
	return Field{Name: name, Source: TableISP, extractISP: extract}
}

func stringValue(value *string) Value {
	if value == nil {
		return Absent()
	}

	return Present(*value)
}

func uintValue(value *uint) Value {
	if value == nil {
		return Absent()
	}

	return Present(*value)
}

func floatValue(value *float64) Value {
	if value == nil {
		return Absent()
	}

	return Present(*value)
}

// FormatLocation joins coordinates with a comma. Floats are formatted
// with the smallest number of digits which represents them exactly.
func FormatLocation(latitude, longitude float64) string {
	return strconv.FormatFloat(latitude, 'f', -1, 64) + "," +
		strconv.FormatFloat(longitude, 'f', -1, 64)
}

func locationValue(rec *CityRecord) Value {
	if rec.Latitude == nil || rec.Longitude == nil {
		return Absent()
	}

	return Present(FormatLocation(*rec.Latitude, *rec.Longitude))
}

// NewCatalog builds a catalog of all resources API knows about.
func NewCatalog() *Catalog {
	fields := []Field{
		cityField(FieldIP, func(r *CityRecord) Value {
			if r.IP == "" {
				return Absent()
			}

			return Present(r.IP)
		}),
		cityField(FieldCity, func(r *CityRecord) Value { return stringValue(r.City) }),
		cityField(FieldCityGeoNameID, func(r *CityRecord) Value { return uintValue(r.CityGeoNameID) }),
		cityField(FieldCountryCode, func(r *CityRecord) Value { return stringValue(r.CountryCode) }),
		cityField(FieldCountry, func(r *CityRecord) Value { return stringValue(r.Country) }),
		cityField(FieldCountryGeoNameID, func(r *CityRecord) Value { return uintValue(r.CountryGeoNameID) }),
		cityField(FieldContinent, func(r *CityRecord) Value { return stringValue(r.Continent) }),
		cityField(FieldContinentCode, func(r *CityRecord) Value { return stringValue(r.ContinentCode) }),
		cityField(FieldContinentGeoNameID, func(r *CityRecord) Value { return uintValue(r.ContinentGeoNameID) }),
		cityField(FieldLocation, locationValue),
		cityField(FieldLatitude, func(r *CityRecord) Value { return floatValue(r.Latitude) }),
		cityField(FieldLongitude, func(r *CityRecord) Value { return floatValue(r.Longitude) }),
		cityField(FieldTimeZone, func(r *CityRecord) Value { return stringValue(r.TimeZone) }),
		ispField(FieldASN, func(r *ISPRecord) Value { return uintValue(r.ASN) }),
		ispField(FieldOrganization, func(r *ISPRecord) Value { return stringValue(r.Organization) }),
		ispField(FieldASOrganization, func(r *ISPRecord) Value { return stringValue(r.ASOrganization) }),
		ispField(FieldISP, func(r *ISPRecord) Value { return stringValue(r.ISP) }),
	}

	rv := &Catalog{
		fields: fields,
		index:  make(map[string]int, len(fields)),
	}

	for i, v := range fields {
		if _, ok := rv.index[v.Name]; ok {
			panic("duplicate catalog field " + v.Name)
		}

		rv.index[v.Name] = i
	}

	return rv
}
