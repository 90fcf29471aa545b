package protocol

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/sheetstream/sheetstream/tabular"
)

// Emitter writes protocol messages to a single writer, one JSON document per
// line. It is not safe for concurrent use; the connector is single-threaded.
type Emitter struct {
	enc *json.Encoder
}

func NewEmitter(w io.Writer) *Emitter {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)

	return &Emitter{enc: enc}
}

func (e *Emitter) emit(m Message) error {
	return e.enc.Encode(m)
}

// Record emits one row of the named stream.
func (e *Emitter) Record(stream string, data tabular.Record, emittedAt int64) error {
	return e.emit(Message{
		Type: TypeRecord,
		Record: &RecordMessage{
			Stream:    stream,
			Data:      data,
			EmittedAt: emittedAt,
		},
	})
}

// State emits the opaque state acknowledgment. A nil payload is emitted as an
// empty object.
func (e *Emitter) State(data json.RawMessage) error {
	if len(data) == 0 {
		data = json.RawMessage(`{}`)
	}

	return e.emit(Message{
		Type:  TypeState,
		State: &StateMessage{Data: data},
	})
}

// Infof emits an INFO protocol log line. The signature doubles as a
// tabular.Logf sink so the orchestrator can report through the protocol.
func (e *Emitter) Infof(format string, args ...any) {
	e.emit(Message{
		Type: TypeLog,
		Log: &LogMessage{
			Level:   "INFO",
			Message: fmt.Sprintf(format, args...),
		},
	})
}

// Spec emits the connector specification document.
func (e *Emitter) Spec(doc map[string]any) error {
	return e.emit(Message{Type: TypeSpec, Spec: doc})
}

// Catalog emits the discovery catalog.
func (e *Emitter) Catalog(catalog Catalog) error {
	return e.emit(Message{Type: TypeCatalog, Catalog: &catalog})
}

// Status emits the outcome of a connection check.
func (e *Emitter) Status(ok bool, message string) error {
	status := StatusSucceeded
	if !ok {
		status = StatusFailed
	}

	return e.emit(Message{
		Type: TypeConnectionStatus,
		ConnectionStatus: &ConnectionStatus{
			Status:  status,
			Message: message,
		},
	})
}
