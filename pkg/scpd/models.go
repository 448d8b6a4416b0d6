package scpd

import (
	"fmt"
	"iter"
)

// ServiceDescription is a parsed SCPD document for a single UPnP service.
// The service type URN is not part of the XML body; it is supplied by the
// caller at parse time and never changes afterwards. All other fields are
// immutable after construction, so a ServiceDescription may be shared
// between goroutines freely.
type ServiceDescription struct {
	urn            string
	specVersion    SpecVersion
	stateVariables []StateVariable
	actions        []Action
}

// SpecVersion is the UPnP architecture version the document declares.
type SpecVersion struct {
	Major int `json:"major"`
	Minor int `json:"minor"`
}

// URN returns the service type identifier the description was registered under.
func (d *ServiceDescription) URN() string {
	return d.urn
}

// SpecVersion returns the declared UPnP architecture version.
func (d *ServiceDescription) SpecVersion() SpecVersion {
	return d.specVersion
}

// StateVariables returns the state variables in document order.
func (d *ServiceDescription) StateVariables() []StateVariable {
	return d.stateVariables
}

// Actions returns the actions in document order.
func (d *ServiceDescription) Actions() []Action {
	return d.actions
}

// StateVariable resolves a related-state-variable back-reference by name.
// Both the stored raw name and the prefix-stripped name match, so the value
// returned by Argument.RelatedStateVariable can be passed in directly.
func (d *ServiceDescription) StateVariable(name string) (*StateVariable, bool) {
	for i := range d.stateVariables {
		sv := &d.stateVariables[i]
		if sv.name == name || sv.Name() == name {
			return sv, true
		}
	}
	return nil, false
}

// Destructure transfers ownership of the description's contents to the
// caller. The receiver is drained and must not be used afterwards.
func (d *ServiceDescription) Destructure() (urn string, stateVariables []StateVariable, actions []Action) {
	urn, stateVariables, actions = d.urn, d.stateVariables, d.actions
	d.urn = ""
	d.stateVariables = nil
	d.actions = nil
	return urn, stateVariables, actions
}

// Action is a remotely invocable operation exposed by a service.
type Action struct {
	name      string
	arguments []Argument
}

// Name returns the action name.
func (a *Action) Name() string {
	return a.name
}

// Arguments returns the action's arguments in declaration order. Actions
// without an argumentList element have an empty slice.
func (a *Action) Arguments() []Argument {
	return a.arguments
}

// InputArguments iterates over the arguments with direction "in". The
// sequence is lazy and restartable; it yields pointers into the action's
// own argument storage without copying or reordering it.
func (a *Action) InputArguments() iter.Seq[*Argument] {
	return a.argumentsByDirection(DirectionIn)
}

// OutputArguments iterates over the arguments with direction "out".
func (a *Action) OutputArguments() iter.Seq[*Argument] {
	return a.argumentsByDirection(DirectionOut)
}

func (a *Action) argumentsByDirection(dir Direction) iter.Seq[*Argument] {
	return func(yield func(*Argument) bool) {
		for i := range a.arguments {
			if a.arguments[i].direction != dir {
				continue
			}
			if !yield(&a.arguments[i]) {
				return
			}
		}
	}
}

// Destructure transfers ownership of the action's contents to the caller.
// The receiver is drained and must not be used afterwards.
func (a *Action) Destructure() (name string, arguments []Argument) {
	name, arguments = a.name, a.arguments
	a.name = ""
	a.arguments = nil
	return name, arguments
}

// Argument is a single directional parameter of an action. It references
// its state variable by name only; resolve it against the enclosing
// description with ServiceDescription.StateVariable.
type Argument struct {
	name                 string
	direction            Direction
	relatedStateVariable string
}

// Name returns the argument name.
func (a *Argument) Name() string {
	return a.name
}

// Direction reports whether the argument is an input or an output.
func (a *Argument) Direction() Direction {
	return a.direction
}

// RelatedStateVariable returns the name of the state variable backing this
// argument, with any A_ARG_TYPE_ prefix stripped.
func (a *Argument) RelatedStateVariable() string {
	return StripArgTypePrefix(a.relatedStateVariable)
}

// StateVariable is a named, typed value exposed by a UPnP service.
type StateVariable struct {
	name          string
	sendEvents    Bool
	multicast     Bool
	dataType      DataType
	defaultValue  *string
	allowedValues []string
	allowedRange  *AllowedValueRange
	optional      bool
}

// Name returns the variable name with any A_ARG_TYPE_ prefix stripped.
// The raw name is kept internally so repeated reads are consistent.
func (v *StateVariable) Name() string {
	return StripArgTypePrefix(v.name)
}

// SendEvents reports whether event messages are generated when the value of
// this state variable changes. Defaults to yes when absent from the document.
func (v *StateVariable) SendEvents() Bool {
	return v.sendEvents
}

// Multicast reports whether event messages are delivered using multicast
// eventing. Defaults to no when absent from the document.
func (v *StateVariable) Multicast() Bool {
	return v.multicast
}

// DataType returns the declared UPnP primitive type tag.
func (v *StateVariable) DataType() DataType {
	return v.dataType
}

// DefaultValue returns the declared default value, if any.
func (v *StateVariable) DefaultValue() (string, bool) {
	if v.defaultValue == nil {
		return "", false
	}
	return *v.defaultValue, true
}

// AllowedValues returns the enumerated value constraint in declaration
// order, or nil when the document declares none. An empty allowedValueList
// element yields an empty non-nil slice.
func (v *StateVariable) AllowedValues() []string {
	return v.allowedValues
}

// HasAllowedValues reports whether the document declares an allowedValueList
// element, regardless of how many values it contains.
func (v *StateVariable) HasAllowedValues() bool {
	return v.allowedValues != nil
}

// AllowedValueRange returns the numeric range constraint, or nil when the
// document declares none.
func (v *StateVariable) AllowedValueRange() *AllowedValueRange {
	return v.allowedRange
}

// Optional reports whether the optional presence-marker element appears in
// the source document. Presence alone carries the meaning; the element's
// content is ignored.
func (v *StateVariable) Optional() bool {
	return v.optional
}

// AllowedValueRange constrains a numeric state variable. Sub-fields omitted
// from the document default to 1.
type AllowedValueRange struct {
	minimum int32
	maximum int32
	step    int32
}

// Minimum returns the inclusive lower bound.
func (r *AllowedValueRange) Minimum() int32 {
	return r.minimum
}

// Maximum returns the inclusive upper bound.
func (r *AllowedValueRange) Maximum() int32 {
	return r.maximum
}

// Step returns the value increment.
func (r *AllowedValueRange) Step() int32 {
	return r.step
}

// Direction states whether an argument is supplied to or returned from an
// action invocation. It is a closed vocabulary; any other literal in the
// document is a parse error.
type Direction int

const (
	DirectionIn Direction = iota
	DirectionOut
)

// IsIn reports whether the argument is supplied to the action.
func (d Direction) IsIn() bool {
	return d == DirectionIn
}

// IsOut reports whether the argument is returned from the action.
func (d Direction) IsOut() bool {
	return d == DirectionOut
}

func (d Direction) String() string {
	if d == DirectionIn {
		return "in"
	}
	return "out"
}

// ParseDirection parses the direction element literal.
func ParseDirection(s string) (Direction, error) {
	switch s {
	case "in":
		return DirectionIn, nil
	case "out":
		return DirectionOut, nil
	default:
		return 0, fmt.Errorf("unrecognized direction %q", s)
	}
}

// Bool is the UPnP yes/no domain boolean, distinct from the native bool.
type Bool int

const (
	BoolNo Bool = iota
	BoolYes
)

// Bool returns the native-bool view of the value.
func (b Bool) Bool() bool {
	return b == BoolYes
}

func (b Bool) String() string {
	if b == BoolYes {
		return "yes"
	}
	return "no"
}

// ParseBool parses the yes/no attribute literal.
func ParseBool(s string) (Bool, error) {
	switch s {
	case "yes":
		return BoolYes, nil
	case "no":
		return BoolNo, nil
	default:
		return 0, fmt.Errorf("unrecognized boolean %q", s)
	}
}
