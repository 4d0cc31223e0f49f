package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kenmoini/unifi-facts/api/controller"
)

func TestQueriesCommand(t *testing.T) {
	cmd := newQueriesCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)

	require.NoError(t, cmd.Execute())

	listing := out.String()
	for _, name := range controller.Queries() {
		assert.Contains(t, listing, name)
	}
	assert.Contains(t, listing, "self/sites")
	assert.Contains(t, listing, "global")
	assert.Contains(t, listing, "site")
}

func TestQueriesCommandRowCount(t *testing.T) {
	cmd := newQueriesCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)

	require.NoError(t, cmd.Execute())

	// Header, separators, and one row per catalog entry.
	lines := strings.Count(out.String(), "\n")
	assert.GreaterOrEqual(t, lines, len(controller.Queries()))
}

func TestVersionCommand(t *testing.T) {
	cmd := newVersionCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)

	require.NoError(t, cmd.Execute())

	assert.Contains(t, out.String(), "unifi-facts")
	assert.Contains(t, out.String(), cliVersion)
}
