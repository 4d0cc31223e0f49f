package cli

import (
	"bytes"
	"io"
	"testing"

	"github.com/cockroachdb/errors"
	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kenmoini/unifi-facts/internal/testutil"
)

const cliSitesBody = `{"data":[{"_id":"5a32aa4ee4b0412345678901","desc":"Default","name":"default","role":"admin"}],"meta":{"rc":"ok"}}`

// runQueryCommand executes the query command with args and returns its
// stdout and error.
func runQueryCommand(t *testing.T, mc *testutil.MockController, extra ...string) (string, error) {
	t.Helper()

	args := append([]string{
		"--base-url", mc.Server.URL,
		"--username", "admin",
		"--password", "secret",
		"--rate-limit=-1",
	}, extra...)

	cmd := newQueryCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return out.String(), err
}

func TestQueryCommand(t *testing.T) {
	mc := testutil.NewMockController(t, testutil.MockControllerConfig{
		QueryPath: "/api/self/sites",
		QueryBody: cliSitesBody,
	})

	out, err := runQueryCommand(t, mc, "list_sites")
	require.NoError(t, err)

	var got struct {
		Changed bool            `json:"changed"`
		Failed  bool            `json:"failed"`
		Msg     string          `json:"msg"`
		Status  int             `json:"status"`
		Data    json.RawMessage `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &got))

	assert.False(t, got.Changed)
	assert.False(t, got.Failed)
	assert.Empty(t, got.Msg)
	assert.Equal(t, 200, got.Status)
	assert.JSONEq(t, cliSitesBody, string(got.Data))
}

func TestQueryCommandDefaultsToListSites(t *testing.T) {
	mc := testutil.NewMockController(t, testutil.MockControllerConfig{
		QueryPath: "/api/self/sites",
		QueryBody: cliSitesBody,
	})

	_, err := runQueryCommand(t, mc)
	require.NoError(t, err)

	assert.Equal(t, "/api/self/sites", mc.LastQuery().Path)
}

func TestQueryCommandParamFlags(t *testing.T) {
	mc := testutil.NewMockController(t, testutil.MockControllerConfig{
		QueryPath: "/api/s/default/stat/event",
	})

	_, err := runQueryCommand(t, mc, "list_events", "--since", "24", "--limit-num", "50")
	require.NoError(t, err)

	q := mc.LastQuery().Query
	assert.Equal(t, "24", q.Get("within"))
	assert.Equal(t, "50", q.Get("_limit"))
	assert.Equal(t, "0", q.Get("_start"), "unset paging keeps its default")
	assert.Equal(t, "-time", q.Get("_sort"))
}

func TestQueryCommandDeviceMAC(t *testing.T) {
	mc := testutil.NewMockController(t, testutil.MockControllerConfig{
		QueryPath: "/api/s/default/stat/device/fc:ec:da:11:22:33",
	})

	_, err := runQueryCommand(t, mc, "list_devices", "--device-mac", "fc:ec:da:11:22:33")
	require.NoError(t, err)

	assert.Equal(t, "/api/s/default/stat/device/fc:ec:da:11:22:33", mc.LastQuery().Path)
}

func TestQueryCommandAPIFailure(t *testing.T) {
	mc := testutil.NewMockController(t, testutil.MockControllerConfig{
		QueryStatus: 400,
		QueryBody:   `{"data":[],"meta":{"msg":"api.err.NoSiteContext","rc":"error"}}`,
	})

	out, err := runQueryCommand(t, mc, "site_health_metrics")

	require.ErrorIs(t, err, errAlreadyReported, "failure result already printed")

	var got struct {
		Failed bool   `json:"failed"`
		Msg    string `json:"msg"`
		Status int    `json:"status"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.True(t, got.Failed)
	assert.Equal(t, "Error", got.Msg)
	assert.Equal(t, 400, got.Status)
}

func TestQueryCommandLoginFailure(t *testing.T) {
	mc := testutil.NewMockController(t, testutil.MockControllerConfig{
		Password: "other-secret",
	})

	out, err := runQueryCommand(t, mc, "list_sites")

	require.ErrorIs(t, err, errAlreadyReported)

	var got struct {
		Failed bool `json:"failed"`
		Status int  `json:"status"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.True(t, got.Failed)
	assert.Equal(t, 400, got.Status)
	assert.Equal(t, 0, mc.QueryCalls(), "no query after rejected login")
}

func TestQueryCommandUnsupportedName(t *testing.T) {
	mc := testutil.NewMockController(t, testutil.MockControllerConfig{})

	out, err := runQueryCommand(t, mc, "reboot_controller")

	require.Error(t, err)
	assert.False(t, errors.Is(err, errAlreadyReported))
	assert.Contains(t, err.Error(), "unsupported query")
	assert.Empty(t, out, "nothing printed for unsupported names")
}

func TestQueryCommandMissingCredentials(t *testing.T) {
	cmd := newQueryCmd()
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)
	cmd.SetArgs([]string{"list_sites"})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid configuration")
}
