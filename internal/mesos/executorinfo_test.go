package mesos_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mesoslab/beatbridge/internal/mesos"
)

func TestParseExecutorInfo(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{name: "empty input", raw: ""},
		{name: "not json", raw: "not json at all"},
		{name: "wrong top-level type", raw: `["a","b"]`},
		{name: "empty object", raw: `{}`},
		{name: "missing environment", raw: `{"command":{}}`},
		{name: "missing variables", raw: `{"command":{"environment":{}}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info := mesos.ParseExecutorInfo(tt.raw)
			assert.Empty(t, info.Image())
			assert.Empty(t, info.Framework())

			value, ok := info.EnvValue("FILEBEAT_OUTPUT_HOST")
			assert.False(t, ok)
			assert.Empty(t, value)
		})
	}
}

func TestParseExecutorInfoFields(t *testing.T) {
	raw := `{
		"command": {"environment": {"variables": [
			{"name": "FILEBEAT_OUTPUT_HOST", "value": "es:9200"},
			{"name": "OTHER", "value": "x"}
		]}},
		"container": {"docker": {"image": "nginx"}},
		"framework_id": {"value": "framework-1234"}
	}`

	info := mesos.ParseExecutorInfo(raw)
	assert.Equal(t, "nginx", info.Image())
	assert.Equal(t, "framework-1234", info.Framework())

	host, ok := info.EnvValue("FILEBEAT_OUTPUT_HOST")
	assert.True(t, ok)
	assert.Equal(t, "es:9200", host)

	_, ok = info.EnvValue("MISSING")
	assert.False(t, ok)
}

func TestEnvValueFirstMatchWins(t *testing.T) {
	raw := `{"command":{"environment":{"variables":[
		{"name":"DUP","value":"first"},
		{"name":"DUP","value":"second"}
	]}}}`

	value, ok := mesos.ParseExecutorInfo(raw).EnvValue("DUP")
	assert.True(t, ok)
	assert.Equal(t, "first", value)
}

func TestEnvValueExactNameMatch(t *testing.T) {
	raw := `{"command":{"environment":{"variables":[
		{"name":"filebeat_output_host","value":"lower"}
	]}}}`

	_, ok := mesos.ParseExecutorInfo(raw).EnvValue("FILEBEAT_OUTPUT_HOST")
	assert.False(t, ok)
}

func TestEnvValuePresentButEmpty(t *testing.T) {
	raw := `{"command":{"environment":{"variables":[
		{"name":"FILEBEAT_OUTPUT_HOST","value":""}
	]}}}`

	value, ok := mesos.ParseExecutorInfo(raw).EnvValue("FILEBEAT_OUTPUT_HOST")
	assert.True(t, ok)
	assert.Empty(t, value)
}
