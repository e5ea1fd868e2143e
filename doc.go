// geoip2api is an HTTP service which answers geolocation questions about
// IP addresses using MaxMind GeoIP2 City and ISP databases.
//
// Endpoints:
//
//	GET /v1/ip                     curated report for the caller
//	GET /v1/ip/{ip}                curated report: ip, city, country_code,
//	                               location, asn, org
//	GET /v1/ip/{ip}/all            every known resource
//	GET /v1/ip/{ip}/{resource}     a single resource, e.g. /v1/ip/1.2.3.4/tz
//	GET /v1/info                   opened databases and their usage
//	GET /metrics                   Prometheus metrics
//
// Successful answers are JSON objects. If there is no data for the
// address, service responds with 204; unparseable address gives 406 and
// unknown resource gives 418. Error responses have no body.
//
// The tool is organized into several packages:
//
// Geolib
//
// geolib is a core of the service: a catalog of resources, a resolver
// which turns lookups into results and an ordered field map used as a
// response body. It knows nothing about HTTP or database formats.
//
// MMDB
//
// mmdb implements geolib readers on top of MaxMind DB files.
//
// API
//
// api is a chi router which maps resolver results to HTTP.
//
// A main package wires everything together: it reads TOML config, opens
// databases and starts HTTP server. SIGHUP reopens database files.
package main
