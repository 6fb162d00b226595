package main

import (
	"strconv"
	"strings"
	"time"

	"connesus_dao/sdk"
)

// -----------------------------------------------------------------------------
// Payload helpers
// -----------------------------------------------------------------------------

// unwrapPayload trims quotes and whitespace, aborting if the payload is empty.
func unwrapPayload(payload *string, errMsg string) string {
	if payload == nil {
		sdk.Abort(errMsg)
	}
	raw := strings.TrimSpace(*payload)
	if raw == "" {
		sdk.Abort(errMsg)
	}
	if len(raw) >= 2 && raw[0] == '"' && raw[len(raw)-1] == '"' {
		if unquoted, err := strconv.Unquote(raw); err == nil {
			return unquoted
		}
		raw = strings.TrimSpace(raw[1 : len(raw)-1])
		if raw == "" {
			sdk.Abort(errMsg)
		}
	}
	return raw
}

// strptr is a tiny helper so we can take a literal string and hand a pointer to sdk calls quickly.
func strptr(s string) *string { return &s }

// -----------------------------------------------------------------------------
// Number helpers
// -----------------------------------------------------------------------------

// UInt64ToString turns an id back into decimal text for keys, logs and views.
// Example payload: UInt64ToString(9001)
func UInt64ToString(val uint64) string {
	return strconv.FormatUint(val, 10)
}

// StringToUInt64 parses decimal ids out of view payloads, aborting on junk.
func StringToUInt64(val string, errMsg string) uint64 {
	n, err := strconv.ParseUint(strings.TrimSpace(val), 10, 64)
	if err != nil {
		sdk.Abort(errMsg)
	}
	return n
}

// -----------------------------------------------------------------------------
// Timestamp helpers
// -----------------------------------------------------------------------------

// nowUnix returns the current Unix timestamp, preferring the chain's block
// timestamp from the environment.
func nowUnix() int64 {
	if ts := currentEnv().Timestamp; ts != "" {
		if v, ok := parseTimestamp(ts); ok {
			return v
		}
	}
	if tsPtr := sdk.GetEnvKey("block.timestamp"); tsPtr != nil && *tsPtr != "" {
		if v, ok := parseTimestamp(*tsPtr); ok {
			return v
		}
	}
	return time.Now().Unix()
}

// parseTimestamp accepts unix seconds or iso-ish strings since the env flips formats sometimes.
func parseTimestamp(val string) (int64, bool) {
	if v, err := strconv.ParseInt(val, 10, 64); err == nil {
		return v, true
	}
	if t, err := time.Parse(time.RFC3339, val); err == nil {
		return t.Unix(), true
	}
	if t, err := time.ParseInLocation("2006-01-02T15:04:05", val, time.UTC); err == nil {
		return t.Unix(), true
	}
	return 0, false
}
