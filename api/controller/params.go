package controller

import (
	"net/url"
	"strconv"
	"strings"
	"time"
)

const (
	// sessionWindow is the default lookback for queries keyed on epoch
	// seconds, such as authorizations and sessions.
	sessionWindow = 7 * 24 * time.Hour

	// Event listing defaults. Each parameter falls back independently.
	defaultEventsWithin = 720 // hours
	defaultEventsStart  = 0
	defaultEventsLimit  = 3000
)

// QueryParams carries the optional parameters a catalog query accepts.
// Unset fields resolve to the catalog defaults. Fields a query does not
// use are ignored.
type QueryParams struct {
	// ClientMAC selects a single client where supported.
	ClientMAC string
	// DeviceMAC selects a single device or access point where supported.
	DeviceMAC string
	// NetworkID selects a single network configuration.
	NetworkID string
	// WLANID selects a single wireless network configuration.
	WLANID string

	// Since is the lookback window in hours for queries that page by
	// recency.
	Since *int
	// StartNum and LimitNum bound event paging.
	StartNum *int
	LimitNum *int

	// StartEpoch and EndEpoch bound report windows. The unit follows
	// the query: seconds for session style queries, milliseconds for
	// reports. Supplied values pass through unchanged.
	StartEpoch *int64
	EndEpoch   *int64

	// CreatedTime filters vouchers by creation time (epoch seconds).
	CreatedTime *int64
}

// Int returns a pointer to v for use in QueryParams literals.
func Int(v int) *int {
	return &v
}

// Int64 returns a pointer to v for use in QueryParams literals.
func Int64(v int64) *int64 {
	return &v
}

// paramRule resolves one piece of a query string from the caller's
// parameters and the clock reading taken at dispatch time.
type paramRule func(p QueryParams, now time.Time, v url.Values)

// resolveParams builds the query string for desc. It is a pure function
// of its inputs so the windows the defaults produce can be pinned in
// tests.
func resolveParams(desc Descriptor, p QueryParams, now time.Time) url.Values {
	v := url.Values{}
	for _, rule := range desc.Rules {
		rule(p, now, v)
	}
	return v
}

// within sends a lookback window in hours, defaulting to defaultHours.
func within(defaultHours int) paramRule {
	return func(p QueryParams, _ time.Time, v url.Values) {
		hours := defaultHours
		if p.Since != nil {
			hours = *p.Since
		}
		v.Set("within", strconv.Itoa(hours))
	}
}

// withinWhenSet sends the lookback window only when the caller set one.
func withinWhenSet() paramRule {
	return func(p QueryParams, _ time.Time, v url.Values) {
		if p.Since != nil {
			v.Set("within", strconv.Itoa(*p.Since))
		}
	}
}

// epochSeconds sends a start/end window in epoch seconds. The end
// defaults to now and the start to one sessionWindow before the
// resolved end.
func epochSeconds() paramRule {
	return func(p QueryParams, now time.Time, v url.Values) {
		end := now.Unix()
		if p.EndEpoch != nil {
			end = *p.EndEpoch
		}
		start := end - int64(sessionWindow.Seconds())
		if p.StartEpoch != nil {
			start = *p.StartEpoch
		}
		v.Set("start", strconv.FormatInt(start, 10))
		v.Set("end", strconv.FormatInt(end, 10))
	}
}

// epochMillis sends a start/end window in epoch milliseconds. The end
// defaults to now and the start to span before the resolved end.
func epochMillis(span time.Duration) paramRule {
	return func(p QueryParams, now time.Time, v url.Values) {
		end := now.UnixMilli()
		if p.EndEpoch != nil {
			end = *p.EndEpoch
		}
		start := end - span.Milliseconds()
		if p.StartEpoch != nil {
			start = *p.StartEpoch
		}
		v.Set("start", strconv.FormatInt(start, 10))
		v.Set("end", strconv.FormatInt(end, 10))
	}
}

// attrs sends the report attribute list as repeated attrs keys.
func attrs(names ...string) paramRule {
	return func(_ QueryParams, _ time.Time, v url.Values) {
		for _, name := range names {
			v.Add("attrs", name)
		}
	}
}

// fixed always sends key=value.
func fixed(key, value string) paramRule {
	return func(_ QueryParams, _ time.Time, v url.Values) {
		v.Set(key, value)
	}
}

// clientMAC narrows the query to one client when the caller set a MAC.
func clientMAC() paramRule {
	return func(p QueryParams, _ time.Time, v url.Values) {
		if mac := strings.TrimSpace(p.ClientMAC); mac != "" {
			v.Set("mac", mac)
		}
	}
}

// deviceMAC narrows the query to one access point when the caller set
// a MAC.
func deviceMAC() paramRule {
	return func(p QueryParams, _ time.Time, v url.Values) {
		if mac := strings.TrimSpace(p.DeviceMAC); mac != "" {
			v.Set("mac", mac)
		}
	}
}

// createdTime filters vouchers by creation time when the caller set one.
func createdTime() paramRule {
	return func(p QueryParams, _ time.Time, v url.Values) {
		if p.CreatedTime != nil {
			v.Set("created_time", strconv.FormatInt(*p.CreatedTime, 10))
		}
	}
}

// events resolves the event listing parameters. Results are sorted
// newest first and each bound defaults independently of the others.
func events() paramRule {
	return func(p QueryParams, _ time.Time, v url.Values) {
		withinHours := defaultEventsWithin
		if p.Since != nil {
			withinHours = *p.Since
		}
		start := defaultEventsStart
		if p.StartNum != nil {
			start = *p.StartNum
		}
		limit := defaultEventsLimit
		if p.LimitNum != nil {
			limit = *p.LimitNum
		}
		v.Set("_sort", "-time")
		v.Set("within", strconv.Itoa(withinHours))
		v.Set("_start", strconv.Itoa(start))
		v.Set("_limit", strconv.Itoa(limit))
	}
}
