package mmdb

import (
	"github.com/juju/errors"
	"github.com/oschwald/geoip2-golang"

	"github.com/geoip2api/geoip2api/geolib"
)

// ISPReader serves ISP table. GeoIP2 ISP and GeoLite2 ASN databases are
// accepted; the latter has no isp and organization attributes.
type ISPReader struct {
	maxmindBase
}

func (i *ISPReader) LookupISP(ip string) (geolib.ISPRecord, error) {
	result := geoip2.ISP{}

	if _, err := i.lookup(ip, &result); err != nil {
		return geolib.ISPRecord{}, err
	}

	// geoip2.ISP cannot tell an absent key from a zero value, and ISP
	// databases omit keys instead of storing empty ones.
	return geolib.ISPRecord{
		ASN:            optionalUint(result.AutonomousSystemNumber),
		Organization:   optionalString(result.Organization),
		ASOrganization: optionalString(result.AutonomousSystemOrganization),
		ISP:            optionalString(result.ISP),
	}, nil
}

func OpenISP(path string) (*ISPReader, error) {
	reader := &ISPReader{
		maxmindBase: maxmindBase{
			table:         geolib.TableISP,
			path:          path,
			databaseTypes: []string{"ISP", "ASN"},
		},
	}

	if err := reader.Reopen(); err != nil {
		return nil, errors.Annotate(err, "cannot open isp database")
	}

	return reader, nil
}
