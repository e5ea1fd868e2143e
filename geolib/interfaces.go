package geolib

import "github.com/juju/errors"

var (
	// ErrNotFound is returned by readers if a table has no record for a
	// valid IP address.
	ErrNotFound = errors.New("address is not found in database")

	// ErrInvalidAddress is returned by readers if IP address cannot be
	// used for a lookup: it is unparseable or has a family which is not
	// supported by the table.
	ErrInvalidAddress = errors.New("invalid ip address")
)

// Table identifies a lookup table a resource is sourced from.
type Table uint8

const (
	TableCity Table = iota
	TableISP
)

func (t Table) String() string {
	switch t {
	case TableCity:
		return "city"
	case TableISP:
		return "isp"
	}

	return "unknown"
}

// CityRecord is a result of city table lookup. Nil pointers mean that
// table has no data for the attribute.
type CityRecord struct {
	IP                 string
	City               *string
	CityGeoNameID      *uint
	CountryCode        *string
	Country            *string
	CountryGeoNameID   *uint
	Continent          *string
	ContinentCode      *string
	ContinentGeoNameID *uint
	Latitude           *float64
	Longitude          *float64
	TimeZone           *string
}

// ISPRecord is a result of ISP table lookup. Nil pointers mean that table
// has no data for the attribute.
type ISPRecord struct {
	ASN            *uint
	Organization   *string
	ASOrganization *string
	ISP            *string
}

// CityReader looks up IP addresses in city table. Implementations have to
// be safe for concurrent use. It has to return ErrInvalidAddress or
// ErrNotFound (possibly annotated) for corresponding situations.
type CityReader interface {
	LookupCity(ip string) (CityRecord, error)
}

// ISPReader looks up IP addresses in ISP table. Error contract is the
// same as for CityReader.
type ISPReader interface {
	LookupISP(ip string) (ISPRecord, error)
}
