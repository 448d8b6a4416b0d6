package scpd

import "fmt"

// DataType is a UPnP primitive type tag. The vocabulary is closed: tags
// outside this set are rejected at parse time rather than carried through.
type DataType string

const (
	DataTypeUI1        DataType = "ui1"
	DataTypeUI2        DataType = "ui2"
	DataTypeUI4        DataType = "ui4"
	DataTypeUI8        DataType = "ui8"
	DataTypeI1         DataType = "i1"
	DataTypeI2         DataType = "i2"
	DataTypeI4         DataType = "i4"
	DataTypeInt        DataType = "int"
	DataTypeR4         DataType = "r4"
	DataTypeR8         DataType = "r8"
	DataTypeNumber     DataType = "number"
	DataTypeFloat      DataType = "float"
	DataTypeFixed144   DataType = "fixed.14.4"
	DataTypeChar       DataType = "char"
	DataTypeString     DataType = "string"
	DataTypeDate       DataType = "date"
	DataTypeDateTime   DataType = "dateTime"
	DataTypeDateTimeTz DataType = "dateTime.tz"
	DataTypeTime       DataType = "time"
	DataTypeTimeTz     DataType = "time.tz"
	DataTypeBoolean    DataType = "boolean"
	DataTypeBinBase64  DataType = "bin.base64"
	DataTypeBinHex     DataType = "bin.hex"
	DataTypeURI        DataType = "uri"
)

var dataTypes = map[DataType]struct{}{
	DataTypeUI1:        {},
	DataTypeUI2:        {},
	DataTypeUI4:        {},
	DataTypeUI8:        {},
	DataTypeI1:         {},
	DataTypeI2:         {},
	DataTypeI4:         {},
	DataTypeInt:        {},
	DataTypeR4:         {},
	DataTypeR8:         {},
	DataTypeNumber:     {},
	DataTypeFloat:      {},
	DataTypeFixed144:   {},
	DataTypeChar:       {},
	DataTypeString:     {},
	DataTypeDate:       {},
	DataTypeDateTime:   {},
	DataTypeDateTimeTz: {},
	DataTypeTime:       {},
	DataTypeTimeTz:     {},
	DataTypeBoolean:    {},
	DataTypeBinBase64:  {},
	DataTypeBinHex:     {},
	DataTypeURI:        {},
}

func (t DataType) String() string {
	return string(t)
}

// ParseDataType parses a dataType element literal against the closed UPnP
// type vocabulary.
func ParseDataType(s string) (DataType, error) {
	t := DataType(s)
	if _, ok := dataTypes[t]; !ok {
		return "", fmt.Errorf("unrecognized data type %q", s)
	}
	return t, nil
}
