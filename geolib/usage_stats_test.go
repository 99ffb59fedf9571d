package geolib_test

import (
	"encoding/json"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/9seconds/geolookup/geolib"
)

type usageStatsJSON struct {
	Name         string `json:"name"`
	LastUsed     int64  `json:"last_used"`
	LastDuration string `json:"last_duration"`
	SuccessCount uint64 `json:"success_count"`
	FailureCount uint64 `json:"failure_count"`
	FieldsCount  uint64 `json:"fields_count"`
}

type UsageStatsTestSuite struct {
	suite.Suite

	u *geolib.UsageStats
}

func (suite *UsageStatsTestSuite) SetupTest() {
	suite.u = &geolib.UsageStats{
		Name: "test",
	}
}

func (suite *UsageStatsTestSuite) Verify(lastUsed time.Time, success, failure, fields int) {
	v, err := json.Marshal(suite.u)

	suite.NoError(err)

	raw := usageStatsJSON{}

	suite.NoError(json.Unmarshal(v, &raw))
	suite.Equal("test", raw.Name)
	suite.EqualValues(success, raw.SuccessCount)
	suite.EqualValues(failure, raw.FailureCount)
	suite.EqualValues(fields, raw.FieldsCount)

	if lastUsed.IsZero() {
		suite.EqualValues(0, raw.LastUsed)
	} else {
		suite.WithinDuration(lastUsed, time.Unix(raw.LastUsed, 0), 2*time.Second)
	}
}

func (suite *UsageStatsTestSuite) TestEmpty() {
	suite.Verify(time.Time{}, 0, 0, 0)
	suite.Zero(suite.u.LastDuration())
}

func (suite *UsageStatsTestSuite) TestUsed() {
	suite.u.Used(time.Now(), 3, nil)
	suite.Verify(time.Now(), 1, 0, 3)

	suite.u.Used(time.Now(), 0, io.EOF)
	suite.Verify(time.Now(), 1, 1, 3)

	suite.u.Used(time.Now(), 10, io.EOF)
	suite.Verify(time.Now(), 1, 2, 3)

	suite.u.Used(time.Now(), 2, nil)
	suite.Verify(time.Now(), 2, 2, 5)

	suite.EqualValues(2, suite.u.SuccessCount())
	suite.EqualValues(2, suite.u.FailureCount())
}

func (suite *UsageStatsTestSuite) TestLastDuration() {
	suite.u.Used(time.Now().Add(-time.Second), 1, nil)

	suite.GreaterOrEqual(suite.u.LastDuration(), time.Second)
}

func TestUsageStats(t *testing.T) {
	suite.Run(t, &UsageStatsTestSuite{})
}
