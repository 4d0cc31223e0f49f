package controller

import (
	"slices"
	"strings"
	"time"
)

// IDField names the caller parameter a descriptor appends to its path
// as a trailing segment.
type IDField int

const (
	// IDNone marks descriptors without a path identifier.
	IDNone IDField = iota
	// IDClientMAC appends QueryParams.ClientMAC.
	IDClientMAC
	// IDDeviceMAC appends QueryParams.DeviceMAC.
	IDDeviceMAC
	// IDNetwork appends QueryParams.NetworkID.
	IDNetwork
	// IDWLAN appends QueryParams.WLANID.
	IDWLAN
)

// Descriptor describes one catalog query: the endpoint it reaches and
// the parameters it resolves. All catalog queries are GETs.
type Descriptor struct {
	// Name is the catalog name callers pass to Query.
	Name string
	// Path is the endpoint path under the API root, without the site
	// prefix.
	Path string
	// Global marks controller-wide endpoints that take no site scope.
	Global bool
	// ID selects the request field appended to the path when set.
	ID IDField
	// Rules resolve the query string.
	Rules []paramRule
}

// identifier returns the trimmed path identifier for d, or "" when the
// descriptor takes none or the caller left it unset.
func (d Descriptor) identifier(p QueryParams) string {
	switch d.ID {
	case IDClientMAC:
		return strings.TrimSpace(p.ClientMAC)
	case IDDeviceMAC:
		return strings.TrimSpace(p.DeviceMAC)
	case IDNetwork:
		return strings.TrimSpace(p.NetworkID)
	case IDWLAN:
		return strings.TrimSpace(p.WLANID)
	default:
		return ""
	}
}

// Report attribute sets the controller expects on site and access
// point reports.
var (
	siteReportAttrs = []string{
		"bytes", "wan-tx_bytes", "wan-rx_bytes", "wlan_bytes",
		"num_sta", "lan-num_sta", "wlan-num_sta", "time",
	}
	apReportAttrs = []string{"bytes", "num_sta", "time"}
)

// Report window spans. Callers override them through StartEpoch and
// EndEpoch.
const (
	fiveMinuteReportSpan = 12 * time.Hour
	hourlyReportSpan     = 7 * 24 * time.Hour
	dailyReportSpan      = 52 * 7 * 24 * time.Hour
)

var catalog = []Descriptor{
	{Name: "list_online_clients", Path: "stat/sta", ID: IDClientMAC},
	{Name: "list_guests", Path: "stat/guest", Rules: []paramRule{within(8760)}},
	{Name: "list_users", Path: "list/user"},
	{Name: "list_user_groups", Path: "list/usergroup"},
	{Name: "stat_all_users", Path: "stat/alluser", Rules: []paramRule{
		within(8760), fixed("type", "all"), fixed("conn", "all"),
	}},
	{Name: "stat_authorizations", Path: "stat/authorization", Rules: []paramRule{epochSeconds()}},
	{Name: "stat_sessions", Path: "stat/session", Rules: []paramRule{
		epochSeconds(), fixed("type", "all"), clientMAC(),
	}},
	{Name: "list_devices", Path: "stat/device", ID: IDDeviceMAC},
	{Name: "list_wlan_groups", Path: "list/wlangroup"},
	{Name: "list_rouge_access_points", Path: "stat/rogueap", Rules: []paramRule{within(24)}},
	{Name: "list_known_rogue_access_points", Path: "rest/rogueknown"},
	{Name: "list_tags", Path: "rest/tag"},
	{Name: "five_minute_site_stats", Path: "stat/report/5minutes.site", Rules: []paramRule{
		epochMillis(fiveMinuteReportSpan), attrs(siteReportAttrs...),
	}},
	{Name: "hourly_site_stats", Path: "stat/report/hourly.site", Rules: []paramRule{
		epochMillis(hourlyReportSpan), attrs(siteReportAttrs...),
	}},
	{Name: "daily_site_stats", Path: "stat/report/daily.site", Rules: []paramRule{
		epochMillis(dailyReportSpan), attrs(siteReportAttrs...),
	}},
	{Name: "all_sites_stats", Path: "stat/sites", Global: true},
	{Name: "five_minute_access_point_stats", Path: "stat/report/5minutes.ap", Rules: []paramRule{
		epochMillis(fiveMinuteReportSpan), attrs(apReportAttrs...), deviceMAC(),
	}},
	{Name: "hourly_access_point_stats", Path: "stat/report/hourly.ap", Rules: []paramRule{
		epochMillis(hourlyReportSpan), attrs(apReportAttrs...), deviceMAC(),
	}},
	{Name: "daily_access_point_stats", Path: "stat/report/daily.ap", Rules: []paramRule{
		epochMillis(hourlyReportSpan), attrs(apReportAttrs...), deviceMAC(),
	}},
	{Name: "five_minute_site_dashboard_metrics", Path: "stat/dashboard", Rules: []paramRule{
		fixed("scale", "5minutes"),
	}},
	{Name: "hourly_site_dashboard_metrics", Path: "stat/dashboard"},
	{Name: "site_health_metrics", Path: "stat/health"},
	{Name: "port_forwarding_stats", Path: "stat/portforward"},
	{Name: "dpi_stats", Path: "stat/dpi"},
	{Name: "stat_vouchers", Path: "stat/voucher", Rules: []paramRule{createdTime()}},
	{Name: "stat_payments", Path: "stat/payment", Rules: []paramRule{withinWhenSet()}},
	{Name: "list_hotspot_operators", Path: "rest/hotspotop"},
	{Name: "list_sites", Path: "self/sites", Global: true},
	{Name: "sysinfo", Path: "stat/sysinfo"},
	{Name: "list_site_settings", Path: "get/setting"},
	{Name: "list_admins_for_current_site", Path: "cmd/sitemgr", Rules: []paramRule{
		fixed("cmd", "get-admins"),
	}},
	{Name: "list_admins_for_all_sites", Path: "stat/admin", Global: true},
	{Name: "list_wlan_configuration", Path: "rest/wlanconf", ID: IDWLAN},
	{Name: "list_current_channels", Path: "stat/current-channel"},
	{Name: "list_voip_extensions", Path: "list/extension"},
	{Name: "list_network_configuration", Path: "rest/networkconf", ID: IDNetwork},
	{Name: "list_port_configuration", Path: "list/portconf"},
	{Name: "list_port_forwarding_rules", Path: "list/portforward"},
	{Name: "list_firewall_groups", Path: "rest/firewallgroup"},
	{Name: "dynamic_dns_configuration", Path: "list/dynamicdns"},
	{Name: "list_country_codes", Path: "stat/ccode"},
	{Name: "list_auto_backups", Path: "cmd/backup", Rules: []paramRule{
		fixed("cmd", "list-backups"),
	}},
	{Name: "list_radius_profiles", Path: "rest/radiusprofile"},
	{Name: "list_radius_accounts", Path: "rest/account"},
	{Name: "list_alarms", Path: "list/alarm"},
	{Name: "list_events", Path: "stat/event", Rules: []paramRule{events()}},
}

// registry maps query names to descriptors. Built once at init and
// read-only afterwards.
var registry = make(map[string]Descriptor, len(catalog)+1)

func init() {
	for _, d := range catalog {
		register(d)
	}

	// list_clients predates list_online_clients and keeps working as
	// an alias for it.
	alias := registry["list_online_clients"]
	alias.Name = "list_clients"
	register(alias)
}

func register(d Descriptor) {
	if _, exists := registry[d.Name]; exists {
		panic("controller: duplicate query name " + d.Name)
	}
	registry[d.Name] = d
}

// Lookup resolves a catalog query by name.
func Lookup(name string) (Descriptor, error) {
	d, ok := registry[name]
	if !ok {
		return Descriptor{}, &UnsupportedQueryError{Name: name}
	}
	return d, nil
}

// Queries returns every catalog query name in sorted order.
func Queries() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
