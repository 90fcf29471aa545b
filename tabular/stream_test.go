package tabular

import (
	"encoding/json"
	"fmt"
	"reflect"
	"testing"
	"time"
)

func TestStreamReadRecords(t *testing.T) {
	sheet := CleanSheet{
		Name:    "vendas",
		Headers: []string{"data", "produto", "valor"},
		Rows: [][]any{
			{time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC), "Produto X", 10.5},
			{nil, "Produto Y"},
		},
	}

	stream := NewStream("vendas", sheet)

	records := []Record{}
	err := stream.ReadRecords(func(r Record) error {
		records = append(records, r)
		return nil
	})
	if err != nil {
		t.Fatalf("Unexpected error reading records (%v)", err)
	}

	if len(records) != 2 {
		t.Fatalf("Incorrect record count\n   expected: %v\n   got:      %v\n", 2, len(records))
	}

	if v, _ := records[0].Get("data"); v != "2024-01-15T10:30:00" {
		t.Errorf("Incorrect datetime encoding\n   expected: %v\n   got:      %v\n", "2024-01-15T10:30:00", v)
	}

	// short row - the missing trailing cell reads as absent
	if v, ok := records[1].Get("valor"); !ok || v != nil {
		t.Errorf("Expected absent cell to read as null, got %v (present: %v)", v, ok)
	}
}

func TestRecordMarshalsInHeaderOrder(t *testing.T) {
	sheet := CleanSheet{
		Headers: []string{"z", "a", "m"},
		Rows:    [][]any{{int64(1), int64(2), int64(3)}},
	}

	var record Record
	NewStream("ordered", sheet).ReadRecords(func(r Record) error {
		record = r
		return nil
	})

	b, err := json.Marshal(record)
	if err != nil {
		t.Fatalf("Unexpected error marshalling record (%v)", err)
	}

	expected := `{"z":1,"a":2,"m":3}`
	if string(b) != expected {
		t.Errorf("Incorrect record document\n   expected: %v\n   got:      %v\n", expected, string(b))
	}
}

func TestReadRecordsStopsOnError(t *testing.T) {
	sheet := CleanSheet{
		Headers: []string{"n"},
		Rows:    [][]any{{int64(1)}, {int64(2)}, {int64(3)}},
	}

	count := 0
	err := NewStream("short", sheet).ReadRecords(func(r Record) error {
		count++
		if count == 2 {
			return fmt.Errorf("stop")
		}
		return nil
	})

	if err == nil || count != 2 {
		t.Errorf("Expected iteration to stop after 2 records, got %v records and error %v", count, err)
	}
}

func TestBuildStreams(t *testing.T) {
	sheets := []RawSheet{
		{
			Name:   "Vendas Região",
			Header: []any{"Data", "Produto"},
			Rows:   [][]any{{"2024-01-15", "Produto X"}},
		},
		{Name: "Blank"},
		{
			Name:   "Estoque",
			Header: []any{"Produto", "Quantidade"},
			Rows:   [][]any{{"Produto X", int64(3)}},
		},
	}

	logged := []string{}
	logf := func(format string, args ...any) {
		logged = append(logged, fmt.Sprintf(format, args...))
	}

	streams := BuildStreams(sheets, true, logf)

	names := make([]string, len(streams))
	for i, stream := range streams {
		names[i] = stream.Name()
	}

	if !reflect.DeepEqual(names, []string{"vendas_regiao", "estoque"}) {
		t.Errorf("Incorrect stream names\n   expected: %v\n   got:      %v\n", []string{"vendas_regiao", "estoque"}, names)
	}

	if len(logged) != 3 {
		t.Errorf("Incorrect observer call count\n   expected: %v\n   got:      %v\n", 3, len(logged))
	}
}

func TestBuildStreamsKeepsDisplayNamesWithoutConversion(t *testing.T) {
	sheets := []RawSheet{
		{
			Name:   "Vendas Região",
			Header: []any{"Data"},
			Rows:   [][]any{{"2024-01-15"}},
		},
	}

	streams := BuildStreams(sheets, false, nil)

	if len(streams) != 1 || streams[0].Name() != "Vendas Região" {
		t.Errorf("Incorrect stream names for names_conversion=false: %v", streams)
	}
}
