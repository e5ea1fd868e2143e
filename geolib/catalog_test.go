package geolib_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/geoip2api/geoip2api/geolib"
)

func TestCatalogFieldsOrder(t *testing.T) {
	catalog := geolib.NewCatalog()
	names := make([]string, 0, len(catalog.Fields()))
	sources := map[string]geolib.Table{}

	for _, v := range catalog.Fields() {
		names = append(names, v.Name)
		sources[v.Name] = v.Source
	}

	assert.Equal(t, []string{
		"ip", "city", "city_gid", "country_code", "country", "country_gid",
		"continent", "continent_code", "continent_gid", "location",
		"latitude", "longitude", "tz", "asn", "org", "as_org", "isp",
	}, names)

	for _, name := range names[:13] {
		assert.Equal(t, geolib.TableCity, sources[name], name)
	}

	for _, name := range names[13:] {
		assert.Equal(t, geolib.TableISP, sources[name], name)
	}
}

func TestCatalogResolve(t *testing.T) {
	catalog := geolib.NewCatalog()

	field, ok := catalog.Resolve("Country_Code")
	assert.True(t, ok)
	assert.Equal(t, "country_code", field.Name)

	field, ok = catalog.Resolve("AS_ORG")
	assert.True(t, ok)
	assert.Equal(t, geolib.TableISP, field.Source)

	_, ok = catalog.Resolve("bogus")
	assert.False(t, ok)

	_, ok = catalog.Resolve("")
	assert.False(t, ok)
}

func TestCatalogSelect(t *testing.T) {
	fields := geolib.NewCatalog().Select("org", "nope", "tz")

	assert.Len(t, fields, 2)
	assert.Equal(t, "org", fields[0].Name)
	assert.Equal(t, "tz", fields[1].Name)
}

func TestCatalogFieldsIsACopy(t *testing.T) {
	catalog := geolib.NewCatalog()
	fields := catalog.Fields()

	fields[0].Name = "mutated"

	_, ok := catalog.Resolve("ip")
	assert.True(t, ok)
	assert.Equal(t, "ip", catalog.Fields()[0].Name)
}

func TestFieldExtractMissingRecord(t *testing.T) {
	catalog := geolib.NewCatalog()

	city, _ := catalog.Resolve("city")
	asn, _ := catalog.Resolve("asn")

	assert.False(t, city.Extract(geolib.Records{}).IsPresent())
	assert.False(t, asn.Extract(geolib.Records{City: &geolib.CityRecord{}}).IsPresent())
}

func TestFieldExtractIP(t *testing.T) {
	field, _ := geolib.NewCatalog().Resolve("ip")

	value := field.Extract(geolib.Records{City: &geolib.CityRecord{IP: "2001:db8::1"}})
	assert.True(t, value.IsPresent())
	assert.Equal(t, geolib.Present("2001:db8::1"), value)

	assert.False(t, field.Extract(geolib.Records{City: &geolib.CityRecord{}}).IsPresent())
}

func TestValueIsEmpty(t *testing.T) {
	assert.True(t, geolib.Absent().IsEmpty())
	assert.True(t, geolib.Present("").IsEmpty())
	assert.False(t, geolib.Present("x").IsEmpty())
	assert.False(t, geolib.Present(uint(0)).IsEmpty())
	assert.False(t, geolib.Present(0.0).IsEmpty())
}

func TestFormatLocation(t *testing.T) {
	assert.Equal(t, "40.1,-75.2", geolib.FormatLocation(40.1, -75.2))
	assert.Equal(t, "59.3247,18.056", geolib.FormatLocation(59.3247, 18.056))
	assert.Equal(t, "0,0", geolib.FormatLocation(0, 0))
	assert.Equal(t, "51.123456789012,-0.000001",
		geolib.FormatLocation(51.123456789012, -0.000001))
}

func TestFieldMapOrder(t *testing.T) {
	fields := &geolib.FieldMap{}

	fields.Set("b", geolib.Present("x"))
	fields.Set("a", geolib.Present(1))
	fields.Set("c", geolib.Absent())
	fields.Set("b", geolib.Present("y"))

	data, err := json.Marshal(fields)

	assert.NoError(t, err)
	assert.Equal(t, `{"b":"y","a":1,"c":null}`, string(data))
	assert.Equal(t, []string{"b", "a", "c"}, fields.Keys())
}

func TestFieldMapEmpty(t *testing.T) {
	data, err := json.Marshal(&geolib.FieldMap{})

	assert.NoError(t, err)
	assert.Equal(t, `{}`, string(data))
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "success", geolib.KindSuccess.String())
	assert.Equal(t, "no_data", geolib.KindNoData.String())
	assert.Equal(t, "malformed_input", geolib.KindMalformedInput.String())
	assert.Equal(t, "unknown_resource", geolib.KindUnknownResource.String())
	assert.Equal(t, "not_implemented", geolib.KindNotImplemented.String())
	assert.NotEqual(t, geolib.KindUnknownResource, geolib.KindNotImplemented)
}
