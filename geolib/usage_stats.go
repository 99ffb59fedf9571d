package geolib

import (
	"encoding/json"
	"time"
)

// UsageStats tracks how a provider behaved during the run.
type UsageStats struct {
	Name string

	lastUsed     time.Time
	lastDuration time.Duration
	successCount uint64
	failureCount uint64
	fieldsCount  uint64
}

// Used registers a finished lookup.
func (u *UsageStats) Used(started time.Time, fieldsCount int, err error) {
	now := time.Now()

	u.lastUsed = now
	u.lastDuration = now.Sub(started)

	if err == nil {
		u.successCount++
		u.fieldsCount += uint64(fieldsCount)
	} else {
		u.failureCount++
	}
}

func (u *UsageStats) SuccessCount() uint64 {
	return u.successCount
}

func (u *UsageStats) FailureCount() uint64 {
	return u.failureCount
}

func (u *UsageStats) FieldsCount() uint64 {
	return u.fieldsCount
}

// LastUsed returns a time of the latest lookup or zero time if provider
// was never asked.
func (u *UsageStats) LastUsed() time.Time {
	return u.lastUsed
}

func (u *UsageStats) LastDuration() time.Duration {
	return u.lastDuration
}

func (u *UsageStats) MarshalJSON() ([]byte, error) {
	var lastUsedTime int64

	if !u.lastUsed.IsZero() {
		lastUsedTime = u.lastUsed.Unix()
	}

	rawStruct := struct {
		Name         string `json:"name"`
		LastUsed     int64  `json:"last_used"`
		LastDuration string `json:"last_duration"`
		SuccessCount uint64 `json:"success_count"`
		FailureCount uint64 `json:"failure_count"`
		FieldsCount  uint64 `json:"fields_count"`
	}{
		Name:         u.Name,
		LastUsed:     lastUsedTime,
		LastDuration: u.lastDuration.String(),
		SuccessCount: u.successCount,
		FailureCount: u.failureCount,
		FieldsCount:  u.fieldsCount,
	}

	return json.Marshal(&rawStruct)
}
