// Package geolib turns lookups in two MaxMind tables into API resources.
//
// Two tables back every request: a city table with geographical data and
// an ISP table with autonomous system and network operator data. Both are
// consumed through small reader interfaces (CityReader and ISPReader), so
// geolib itself never touches files.
//
// Catalog is a static registry of resources. Each resource knows which
// table it comes from and how to extract its value from a record of that
// table. Resolver uses catalog to answer three kinds of requests: a curated
// summary, a complete report and a single resource. Every answer is a
// Result: a Kind which classifies the outcome and, on success, an ordered
// FieldMap which is ready to be serialized as JSON.
package geolib
