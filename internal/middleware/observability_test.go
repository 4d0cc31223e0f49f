package middleware

import (
	"testing"
)

func TestNormalizePath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "MAC in client stats path",
			input:    "/api/s/default/stat/sta/aa:bb:cc:dd:ee:ff",
			expected: "/api/s/:site/stat/sta/:mac",
		},
		{
			name:     "uppercase MAC",
			input:    "/api/s/default/stat/device/AA:BB:CC:DD:EE:FF",
			expected: "/api/s/:site/stat/device/:mac",
		},
		{
			name:     "ObjectID in wlan config path",
			input:    "/api/s/default/rest/wlanconf/5c2e8a7f9d3b4a0011223344",
			expected: "/api/s/:site/rest/wlanconf/:id",
		},
		{
			name:     "ObjectID in network config path",
			input:    "/api/s/branch-office/rest/networkconf/507f1f77bcf86cd799439011",
			expected: "/api/s/:site/rest/networkconf/:id",
		},
		{
			name:     "site name normalization",
			input:    "/api/s/my-custom-site/stat/health",
			expected: "/api/s/:site/stat/health",
		},
		{
			name:     "site segment alone",
			input:    "/api/s/default",
			expected: "/api/s/:site",
		},
		{
			name:     "global path untouched",
			input:    "/api/stat/sites",
			expected: "/api/stat/sites",
		},
		{
			name:     "self sites not mistaken for site segment",
			input:    "/api/self/sites",
			expected: "/api/self/sites",
		},
		{
			name:     "login path untouched",
			input:    "/api/login",
			expected: "/api/login",
		},
		{
			name:     "report path with dots untouched",
			input:    "/api/s/default/stat/report/5minutes.site",
			expected: "/api/s/:site/stat/report/5minutes.site",
		},
		{
			name:     "empty path",
			input:    "",
			expected: "",
		},
		{
			name:     "root path",
			input:    "/",
			expected: "/",
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			result := normalizePath(testCase.input)
			if result != testCase.expected {
				t.Errorf("normalizePath(%q) = %q, want %q", testCase.input, result, testCase.expected)
			}
		})
	}
}
