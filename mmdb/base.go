package mmdb

import (
	"net"
	"strings"
	"sync"

	"github.com/juju/errors"
	"github.com/oschwald/maxminddb-golang"
	log "github.com/sirupsen/logrus"

	"github.com/geoip2api/geoip2api/geolib"
)

// Info describes an opened database and its usage.
type Info struct {
	Table        string   `json:"table"`
	Path         string   `json:"path"`
	DatabaseType string   `json:"database_type"`
	BuildEpoch   uint     `json:"build_epoch"`
	IPVersion    uint     `json:"ip_version"`
	NodeCount    uint     `json:"node_count"`
	Languages    []string `json:"languages"`
	Ready        bool     `json:"ready"`
	LastUpdated  int64    `json:"last_updated"`
	LastUsed     int64    `json:"last_used"`
	SuccessCount uint64   `json:"success_count"`
	FailureCount uint64   `json:"failure_count"`
}

type maxmindBase struct {
	table         geolib.Table
	path          string
	databaseTypes []string
	stats         UsageStats

	dbReader     *maxminddb.Reader
	dbReaderLock sync.RWMutex
}

// Reopen opens database file again and swaps it with the current one.
// Current database stays in use if a new one cannot be opened.
func (m *maxmindBase) Reopen() error {
	reader, err := maxminddb.Open(m.path)
	if err != nil {
		return errors.Annotatef(err, "cannot open database %s", m.path)
	}

	if !m.acceptsType(reader.Metadata.DatabaseType) {
		reader.Close()

		return errors.Annotatef(ErrUnexpectedDatabaseType,
			"%s is %s database, expected one of %v",
			m.path, reader.Metadata.DatabaseType, m.databaseTypes)
	}

	m.dbReaderLock.Lock()
	defer m.dbReaderLock.Unlock()

	if m.dbReader != nil {
		m.dbReader.Close()
	}

	m.dbReader = reader
	m.stats.Updated()

	log.WithFields(log.Fields{
		"table":         m.table.String(),
		"path":          m.path,
		"database_type": reader.Metadata.DatabaseType,
		"build_epoch":   reader.Metadata.BuildEpoch,
	}).Info("database was opened")

	return nil
}

func (m *maxmindBase) Close() error {
	m.dbReaderLock.Lock()
	defer m.dbReaderLock.Unlock()

	if m.dbReader == nil {
		return nil
	}

	err := m.dbReader.Close()
	m.dbReader = nil

	return errors.Trace(err)
}

func (m *maxmindBase) Info() Info {
	rv := Info{
		Table: m.table.String(),
		Path:  m.path,
	}

	m.dbReaderLock.RLock()

	if m.dbReader != nil {
		meta := m.dbReader.Metadata
		rv.Ready = true
		rv.DatabaseType = meta.DatabaseType
		rv.BuildEpoch = meta.BuildEpoch
		rv.IPVersion = meta.IPVersion
		rv.NodeCount = meta.NodeCount
		rv.Languages = append([]string{}, meta.Languages...)
	}

	m.dbReaderLock.RUnlock()

	m.stats.Snapshot(&rv)

	return rv
}

func (m *maxmindBase) acceptsType(databaseType string) bool {
	for _, v := range m.databaseTypes {
		if strings.Contains(databaseType, v) {
			return true
		}
	}

	return false
}

// lookup decodes a record of ip into result. It returns a parsed
// address on success.
func (m *maxmindBase) lookup(ip string, result interface{}) (net.IP, error) {
	addr := net.ParseIP(strings.TrimSpace(ip))
	if addr == nil {
		return nil, errors.Annotatef(geolib.ErrInvalidAddress, "cannot parse %q", ip)
	}

	m.dbReaderLock.RLock()
	defer m.dbReaderLock.RUnlock()

	if m.dbReader == nil {
		return nil, ErrDatabaseIsNotReadyYet
	}

	if addr.To4() == nil && m.dbReader.Metadata.IPVersion == 4 {
		return nil, errors.Annotatef(geolib.ErrInvalidAddress,
			"cannot lookup ipv6 address %s in ipv4 database", addr)
	}

	_, found, err := m.dbReader.LookupNetwork(addr, result)

	m.stats.Used(err == nil && found)

	switch {
	case err != nil:
		return nil, errors.Annotatef(err, "cannot lookup %s", addr)
	case !found:
		return nil, geolib.ErrNotFound
	}

	return addr, nil
}

func optionalString(value string) *string {
	if value == "" {
		return nil
	}

	return &value
}

func optionalUint(value uint) *uint {
	if value == 0 {
		return nil
	}

	return &value
}
