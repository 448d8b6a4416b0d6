package lib

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testRow struct {
	Name  string `json:"name" yaml:"name"`
	Value string `json:"value" yaml:"value"`
}

func (r testRow) String() string         { return r.Name + "=" + r.Value }
func (r testRow) TableHeaders() []string { return []string{"Name", "Value"} }
func (r testRow) TableRow() []string     { return []string{r.Name, r.Value} }

func TestFormatOutput(t *testing.T) {
	rows := []testRow{
		{Name: "Volume", Value: "uint16"},
		{Name: "Mute", Value: "scpd.Bool"},
	}

	t.Run("text", func(t *testing.T) {
		out, err := FormatOutput(rows, Text)
		require.NoError(t, err)
		assert.Equal(t, "Volume=uint16\nMute=scpd.Bool", out)
	})

	t.Run("json", func(t *testing.T) {
		out, err := FormatOutput(rows, JSON)
		require.NoError(t, err)
		assert.Contains(t, out, `"name": "Volume"`)
	})

	t.Run("yaml", func(t *testing.T) {
		out, err := FormatOutput(rows, YAML)
		require.NoError(t, err)
		assert.Contains(t, out, "name: Volume")
	})

	t.Run("table", func(t *testing.T) {
		out, err := FormatOutput(rows, Table)
		require.NoError(t, err)
		assert.Contains(t, out, "NAME")
		assert.Contains(t, out, "Volume")
	})

	t.Run("unknown", func(t *testing.T) {
		_, err := FormatOutput(rows, FormatType("csv"))
		assert.Error(t, err)
	})
}

func TestParseFormatType(t *testing.T) {
	format, err := ParseFormatType("JSON")
	require.NoError(t, err)
	assert.Equal(t, JSON, format)

	_, err = ParseFormatType("csv")
	assert.Error(t, err)
}
