package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kenmoini/unifi-facts/api/controller"
)

func TestRenderResultData(t *testing.T) {
	body := `{"data":[{"name":"default"}],"meta":{"rc":"ok"}}`

	rendered, err := renderResult(&controller.QueryResult{
		Status:  200,
		Payload: body,
	})
	require.NoError(t, err)

	assert.JSONEq(t, `{
		"changed": false,
		"failed": false,
		"status": 200,
		"data": {"data":[{"name":"default"}],"meta":{"rc":"ok"}}
	}`, string(rendered))
}

func TestRenderResultAck(t *testing.T) {
	rendered, err := renderResult(&controller.QueryResult{
		Status:  200,
		Payload: controller.AckPayload,
	})
	require.NoError(t, err)

	assert.JSONEq(t, `{
		"changed": false,
		"failed": false,
		"status": 200,
		"data": "SUCCESS"
	}`, string(rendered))
}

func TestRenderResultFailure(t *testing.T) {
	body := `{"data":[],"meta":{"msg":"api.err.NoSiteContext","rc":"error"}}`

	rendered, err := renderResult(&controller.QueryResult{
		IsError: true,
		Status:  400,
		Payload: body,
	})
	require.NoError(t, err)

	assert.JSONEq(t, `{
		"changed": false,
		"failed": true,
		"msg": "Error",
		"status": 400,
		"data": {"data":[],"meta":{"msg":"api.err.NoSiteContext","rc":"error"}}
	}`, string(rendered))
}

func TestRenderResultNonJSONPayload(t *testing.T) {
	rendered, err := renderResult(&controller.QueryResult{
		IsError: true,
		Status:  200,
		Payload: "<html>dashboard</html>",
	})
	require.NoError(t, err)

	assert.JSONEq(t, `{
		"changed": false,
		"failed": true,
		"msg": "Error",
		"status": 200,
		"data": "<html>dashboard</html>"
	}`, string(rendered))
}
