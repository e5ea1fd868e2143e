package mmdb_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/geoip2api/geoip2api/mmdb"
)

type UsageStatsTestSuite struct {
	suite.Suite

	u *mmdb.UsageStats
}

func (suite *UsageStatsTestSuite) SetupTest() {
	suite.u = &mmdb.UsageStats{}
}

func (suite *UsageStatsTestSuite) VerifyTime(expected time.Time, actual int64) {
	if expected.IsZero() {
		suite.EqualValues(0, actual)
	} else {
		suite.WithinDuration(expected, time.Unix(actual, 0), time.Second)
	}
}

func (suite *UsageStatsTestSuite) Verify(lastUsed, lastUpdated time.Time, success, failure int) {
	info := mmdb.Info{}

	suite.u.Snapshot(&info)

	suite.EqualValues(success, info.SuccessCount)
	suite.EqualValues(failure, info.FailureCount)
	suite.VerifyTime(lastUsed, info.LastUsed)
	suite.VerifyTime(lastUpdated, info.LastUpdated)
}

func (suite *UsageStatsTestSuite) TestEmpty() {
	suite.Verify(time.Time{}, time.Time{}, 0, 0)
}

func (suite *UsageStatsTestSuite) TestUsed() {
	suite.u.Used(true)
	suite.Verify(time.Now(), time.Time{}, 1, 0)

	suite.u.Used(false)
	suite.Verify(time.Now(), time.Time{}, 1, 1)

	suite.u.Used(false)
	suite.Verify(time.Now(), time.Time{}, 1, 2)

	suite.u.Used(true)
	suite.Verify(time.Now(), time.Time{}, 2, 2)
}

func (suite *UsageStatsTestSuite) TestUpdated() {
	suite.u.Updated()
	suite.Verify(time.Time{}, time.Now(), 0, 0)
}

func TestUsageStats(t *testing.T) {
	suite.Run(t, &UsageStatsTestSuite{})
}
