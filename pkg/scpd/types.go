package scpd

// goTypes is the closed dispatch table from UPnP primitive tags to Go type
// names. Floating point, decimal, date/time and binary tags have no
// defined mapping; GoType fails for them instead of guessing.
var goTypes = map[DataType]string{
	DataTypeUI1:     "uint8",
	DataTypeUI2:     "uint16",
	DataTypeUI4:     "uint32",
	DataTypeUI8:     "uint64",
	DataTypeI1:      "int8",
	DataTypeI2:      "int16",
	DataTypeI4:      "int32",
	DataTypeInt:     "int64",
	DataTypeChar:    "rune",
	DataTypeString:  "string",
	DataTypeBoolean: "scpd.Bool",
	DataTypeURI:     "*url.URL",
}

// GoType returns the Go type name a code generator should use for this
// state variable.
//
// A variable constrained by an allowedValueList maps to its own stripped
// name regardless of the declared primitive tag: the generator is expected
// to emit a dedicated enumeration type named after the variable and
// reference it here. Otherwise the primitive tag is looked up in the fixed
// table; tags outside it yield *UnsupportedTypeError.
func (v *StateVariable) GoType() (string, error) {
	if v.HasAllowedValues() {
		return v.Name(), nil
	}
	if t, ok := goTypes[v.dataType]; ok {
		return t, nil
	}
	return "", &UnsupportedTypeError{Variable: v.Name(), DataType: v.dataType}
}

// GoTypeInput returns the Go type for the variable when it backs an input
// argument. The mapping is direction-uniform; no widening or narrowing is
// applied.
func (v *StateVariable) GoTypeInput() (string, error) {
	return v.GoType()
}

// GoTypeOutput returns the Go type for the variable when it backs an
// output argument.
func (v *StateVariable) GoTypeOutput() (string, error) {
	return v.GoType()
}
