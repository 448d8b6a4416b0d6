package scpd

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGoTypeTable(t *testing.T) {
	tests := []struct {
		dataType DataType
		goType   string
	}{
		{DataTypeUI1, "uint8"},
		{DataTypeUI2, "uint16"},
		{DataTypeUI4, "uint32"},
		{DataTypeUI8, "uint64"},
		{DataTypeI1, "int8"},
		{DataTypeI2, "int16"},
		{DataTypeI4, "int32"},
		{DataTypeInt, "int64"},
		{DataTypeChar, "rune"},
		{DataTypeString, "string"},
		{DataTypeBoolean, "scpd.Bool"},
		{DataTypeURI, "*url.URL"},
	}

	for _, tt := range tests {
		t.Run(string(tt.dataType), func(t *testing.T) {
			sv := StateVariable{name: "X", dataType: tt.dataType}

			goType, err := sv.GoType()
			require.NoError(t, err)
			assert.Equal(t, tt.goType, goType)

			// Mapping is stable across repeated calls on equal input.
			again, err := sv.GoType()
			require.NoError(t, err)
			assert.Equal(t, goType, again)
		})
	}
}

func TestGoTypeUnsupported(t *testing.T) {
	unsupported := []DataType{
		DataTypeR4,
		DataTypeR8,
		DataTypeNumber,
		DataTypeFloat,
		DataTypeFixed144,
		DataTypeDate,
		DataTypeDateTime,
		DataTypeDateTimeTz,
		DataTypeTime,
		DataTypeTimeTz,
		DataTypeBinBase64,
		DataTypeBinHex,
	}

	for _, dataType := range unsupported {
		t.Run(string(dataType), func(t *testing.T) {
			sv := StateVariable{name: "X", dataType: dataType}

			goType, err := sv.GoType()
			assert.Empty(t, goType)
			require.Error(t, err)

			var unsupportedErr *UnsupportedTypeError
			require.True(t, errors.As(err, &unsupportedErr))
			assert.Equal(t, dataType, unsupportedErr.DataType)
			assert.Equal(t, "X", unsupportedErr.Variable)
		})
	}
}

func TestGoTypeEnumPrecedence(t *testing.T) {
	// An enumerated variable maps to its own stripped name regardless of
	// the declared primitive tag.
	sv := StateVariable{
		name:          "A_ARG_TYPE_Mode",
		dataType:      DataTypeString,
		allowedValues: []string{"A", "B"},
	}

	goType, err := sv.GoType()
	require.NoError(t, err)
	assert.Equal(t, "Mode", goType)

	// Even an otherwise unsupported tag is shadowed by the enumeration.
	sv.dataType = DataTypeR4
	goType, err = sv.GoType()
	require.NoError(t, err)
	assert.Equal(t, "Mode", goType)
}

func TestGoTypeDirectionUniform(t *testing.T) {
	variables := []StateVariable{
		{name: "Volume", dataType: DataTypeUI2},
		{name: "Mode", dataType: DataTypeString, allowedValues: []string{"A"}},
	}

	for i := range variables {
		sv := &variables[i]
		base, err := sv.GoType()
		require.NoError(t, err)

		input, err := sv.GoTypeInput()
		require.NoError(t, err)
		output, err := sv.GoTypeOutput()
		require.NoError(t, err)

		assert.Equal(t, base, input)
		assert.Equal(t, base, output)
	}
}

func TestParseDataType(t *testing.T) {
	dataType, err := ParseDataType("dateTime.tz")
	require.NoError(t, err)
	assert.Equal(t, DataTypeDateTimeTz, dataType)

	_, err = ParseDataType("varchar")
	assert.Error(t, err)
}
