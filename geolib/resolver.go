package geolib

import (
	"strings"

	"github.com/juju/errors"
	log "github.com/sirupsen/logrus"
)

// Resolver answers requests for resources of IP addresses. It has no
// state besides references to the catalog and table readers, so it is
// safe for concurrent use if readers are.
type Resolver struct {
	catalog  *Catalog
	city     CityReader
	isp      ISPReader
	curated  []Field
	complete []Field
}

// Resolve dispatches a request according to mode.
func (r *Resolver) Resolve(ip string, mode Mode) Result {
	switch mode.kind {
	case modeCurated:
		return r.Curated(ip)
	case modeComplete:
		return r.Complete(ip)
	}

	return r.Single(ip, mode.Resource())
}

// Curated returns a short summary of IP address.
func (r *Resolver) Curated(ip string) Result {
	return r.resolveFields(ip, r.curated)
}

// Complete returns every resource of the catalog.
func (r *Resolver) Complete(ip string) Result {
	return r.resolveFields(ip, r.complete)
}

// Single returns one resource. Unlike curated and complete modes, absent
// or empty value of the resource means that there is no data at all.
func (r *Resolver) Single(ip, resource string) Result {
	if strings.EqualFold(resource, FieldIP) {
		return Result{Kind: KindNotImplemented}
	}

	field, ok := r.catalog.Resolve(resource)
	if !ok {
		return Result{Kind: KindUnknownResource}
	}

	records := Records{}

	var kind Kind

	switch field.Source {
	case TableCity:
		records.City, kind = r.lookupCity(ip)
	case TableISP:
		records.ISP, kind = r.lookupISP(ip)
	}

	if kind != KindSuccess {
		return Result{Kind: kind}
	}

	value := field.Extract(records)
	if value.IsEmpty() {
		return Result{Kind: KindNoData}
	}

	fields := &FieldMap{}
	fields.Set(field.Name, value)

	return Result{Kind: KindSuccess, Fields: fields}
}

func (r *Resolver) resolveFields(ip string, fields []Field) Result {
	cityRecord, cityKind := r.lookupCity(ip)
	ispRecord, ispKind := r.lookupISP(ip)

	switch {
	case cityKind == KindMalformedInput || ispKind == KindMalformedInput:
		return Result{Kind: KindMalformedInput}
	case cityKind != KindSuccess:
		return Result{Kind: cityKind}
	case ispKind != KindSuccess:
		return Result{Kind: ispKind}
	}

	records := Records{City: cityRecord, ISP: ispRecord}
	rv := &FieldMap{}

	for _, v := range fields {
		rv.Set(v.Name, v.Extract(records))
	}

	return Result{Kind: KindSuccess, Fields: rv}
}

func (r *Resolver) lookupCity(ip string) (*CityRecord, Kind) {
	record, err := r.city.LookupCity(ip)
	if err != nil {
		return nil, classifyLookupError(TableCity, ip, err)
	}

	return &record, KindSuccess
}

func (r *Resolver) lookupISP(ip string) (*ISPRecord, Kind) {
	record, err := r.isp.LookupISP(ip)
	if err != nil {
		return nil, classifyLookupError(TableISP, ip, err)
	}

	return &record, KindSuccess
}

// classifyLookupError converts any reader error into a response kind.
// Errors other than ErrInvalidAddress and ErrNotFound (closed or broken
// database) are treated as missing data.
func classifyLookupError(table Table, ip string, err error) Kind {
	logger := log.WithFields(log.Fields{
		"table": table.String(),
		"ip":    ip,
		"err":   err,
	})

	switch errors.Cause(err) {
	case ErrInvalidAddress:
		logger.Debug("malformed address")

		return KindMalformedInput
	case ErrNotFound:
		logger.Debug("address is not found")

		return KindNoData
	}

	logger.Error("cannot lookup address")

	return KindNoData
}

// NewResolver creates a resolver over the catalog and two table readers.
func NewResolver(catalog *Catalog, city CityReader, isp ISPReader) *Resolver {
	return &Resolver{
		catalog:  catalog,
		city:     city,
		isp:      isp,
		curated:  catalog.Select(CuratedFields...),
		complete: catalog.Fields(),
	}
}
