package protocol

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sheetstream/sheetstream/tabular"
)

func TestEmitterRecord(t *testing.T) {
	var out bytes.Buffer
	emitter := NewEmitter(&out)

	var record tabular.Record
	stream := tabular.NewStream("vendas", tabular.CleanSheet{
		Headers: []string{"produto", "valor"},
		Rows:    [][]any{{"Produto X", 10.5}},
	})

	require.NoError(t, stream.ReadRecords(func(r tabular.Record) error {
		record = r
		return nil
	}))

	require.NoError(t, emitter.Record("vendas", record, 1700000000000))

	line := strings.TrimSpace(out.String())
	assert.Equal(t, `{"type":"RECORD","record":{"stream":"vendas","data":{"produto":"Produto X","valor":10.5},"emitted_at":1700000000000}}`, line)
}

func TestEmitterState(t *testing.T) {
	tests := []struct {
		name     string
		state    json.RawMessage
		expected string
	}{
		{"nil state", nil, `{"type":"STATE","state":{"data":{}}}`},
		{"pass-through", json.RawMessage(`{"cursor":"abc"}`), `{"type":"STATE","state":{"data":{"cursor":"abc"}}}`},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			var out bytes.Buffer

			require.NoError(t, NewEmitter(&out).State(test.state))
			assert.Equal(t, test.expected, strings.TrimSpace(out.String()))
		})
	}
}

func TestEmitterInfof(t *testing.T) {
	var out bytes.Buffer

	NewEmitter(&out).Infof("stream '%s': %d records emitted", "vendas", 3)

	assert.Equal(t, `{"type":"LOG","log":{"level":"INFO","message":"stream 'vendas': 3 records emitted"}}`, strings.TrimSpace(out.String()))
}

func TestEmitterStatus(t *testing.T) {
	var out bytes.Buffer
	emitter := NewEmitter(&out)

	require.NoError(t, emitter.Status(true, ""))
	require.NoError(t, emitter.Status(false, "unsupported MIME type 'text/plain'"))

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 2)

	assert.Equal(t, `{"type":"CONNECTION_STATUS","connectionStatus":{"status":"SUCCEEDED","message":""}}`, lines[0])
	assert.Equal(t, `{"type":"CONNECTION_STATUS","connectionStatus":{"status":"FAILED","message":"unsupported MIME type 'text/plain'"}}`, lines[1])
}

func TestEmitterCatalog(t *testing.T) {
	var out bytes.Buffer

	catalog := Catalog{
		Streams: []CatalogStream{
			{
				Name:               "vendas",
				JSONSchema:         tabular.InferSchema([]string{"produto"}, [][]any{{"Produto X"}}),
				SupportedSyncModes: []string{SyncModeFullRefresh},
			},
		},
	}

	require.NoError(t, NewEmitter(&out).Catalog(catalog))

	var decoded Message
	require.NoError(t, json.Unmarshal(out.Bytes(), &decoded))

	assert.Equal(t, TypeCatalog, decoded.Type)
	require.NotNil(t, decoded.Catalog)
	require.Len(t, decoded.Catalog.Streams, 1)
	assert.Equal(t, "vendas", decoded.Catalog.Streams[0].Name)
	assert.Equal(t, []string{SyncModeFullRefresh}, decoded.Catalog.Streams[0].SupportedSyncModes)
}
