package sources

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNativeSheet(t *testing.T) {
	values := [][]any{
		{"Data", "Produto", "Valor"},
		{"2024-01-15", "Produto X", "10.5"},
		{"2024-01-16"},
	}

	sheet := nativeSheet("Vendas", values)

	assert.Equal(t, "Vendas", sheet.Name)
	assert.Equal(t, []any{"Data", "Produto", "Valor"}, sheet.Header)
	require.Len(t, sheet.Rows, 2)

	// the values API truncates trailing empty cells - short rows are padded
	// with absent cells to the header width
	assert.Equal(t, []any{"2024-01-16", nil, nil}, sheet.Rows[1])
}

func TestNativeSheetWithNoValues(t *testing.T) {
	sheet := nativeSheet("Empty", nil)

	assert.Equal(t, "Empty", sheet.Name)
	assert.Nil(t, sheet.Header)
	assert.Nil(t, sheet.Rows)
}

func TestUnsupportedTypeError(t *testing.T) {
	err := &UnsupportedTypeError{MIME: "text/plain"}

	assert.Equal(t, "unsupported MIME type 'text/plain'", err.Error())
}
