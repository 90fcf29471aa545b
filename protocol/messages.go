// Package protocol carries the connector's wire protocol: typed message
// documents emitted as JSON lines on stdout.
package protocol

import (
	"encoding/json"

	"github.com/sheetstream/sheetstream/tabular"
)

// Message type discriminators.
const (
	TypeRecord           = "RECORD"
	TypeState            = "STATE"
	TypeLog              = "LOG"
	TypeSpec             = "SPEC"
	TypeCatalog          = "CATALOG"
	TypeConnectionStatus = "CONNECTION_STATUS"
)

// Connection check outcomes.
const (
	StatusSucceeded = "SUCCEEDED"
	StatusFailed    = "FAILED"
)

// SyncModeFullRefresh is the only sync mode the connector supports.
const SyncModeFullRefresh = "full_refresh"

// Message is the envelope for every emitted protocol line. Exactly one of the
// payload fields is set, matching Type.
type Message struct {
	Type             string            `json:"type"`
	Record           *RecordMessage    `json:"record,omitempty"`
	State            *StateMessage     `json:"state,omitempty"`
	Log              *LogMessage       `json:"log,omitempty"`
	Spec             map[string]any    `json:"spec,omitempty"`
	Catalog          *Catalog          `json:"catalog,omitempty"`
	ConnectionStatus *ConnectionStatus `json:"connectionStatus,omitempty"`
}

// RecordMessage is one emitted row of one stream.
type RecordMessage struct {
	Stream    string         `json:"stream"`
	Data      tabular.Record `json:"data"`
	EmittedAt int64          `json:"emitted_at"`
}

// StateMessage acknowledges the end of a read. The payload is opaque to the
// connector and passed through unchanged.
type StateMessage struct {
	Data json.RawMessage `json:"data"`
}

// LogMessage is an informational protocol line.
type LogMessage struct {
	Level   string `json:"level"`
	Message string `json:"message"`
}

// ConnectionStatus reports the outcome of a check command.
type ConnectionStatus struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// Catalog is the discovery result: one entry per stream.
type Catalog struct {
	Streams []CatalogStream `json:"streams"`
}

// CatalogStream describes one discoverable stream.
type CatalogStream struct {
	Name               string         `json:"name"`
	JSONSchema         tabular.Schema `json:"json_schema"`
	SupportedSyncModes []string       `json:"supported_sync_modes"`
}

// ConfiguredCatalog is the catalog handed to a read command; only stream
// names are consulted.
type ConfiguredCatalog struct {
	Streams []ConfiguredStream `json:"streams"`
}

// ConfiguredStream is one requested stream in a configured catalog.
type ConfiguredStream struct {
	Stream   StreamDescriptor `json:"stream"`
	SyncMode string           `json:"sync_mode,omitempty"`
}

// StreamDescriptor names a stream inside a configured catalog.
type StreamDescriptor struct {
	Name string `json:"name"`
}
