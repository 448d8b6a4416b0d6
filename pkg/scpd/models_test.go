package scpd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDestructure(t *testing.T) {
	description, err := NewParser().ParseFromBytes([]byte(renderingControlSCPD), renderingControlURN)
	require.NoError(t, err)

	urn, variables, actions := description.Destructure()

	assert.Equal(t, renderingControlURN, urn)
	require.Len(t, variables, 4)
	assert.Equal(t, "Volume", variables[0].Name())
	assert.Equal(t, "Mode", variables[3].Name())
	require.Len(t, actions, 2)
	assert.Equal(t, "GetVolume", actions[0].Name())

	// The receiver is drained by the ownership transfer.
	assert.Empty(t, description.URN())
	assert.Nil(t, description.StateVariables())
	assert.Nil(t, description.Actions())
}

func TestActionDestructure(t *testing.T) {
	description, err := NewParser().ParseFromBytes([]byte(renderingControlSCPD), renderingControlURN)
	require.NoError(t, err)

	action := &description.Actions()[0]
	name, arguments := action.Destructure()

	assert.Equal(t, "GetVolume", name)
	require.Len(t, arguments, 2)
	assert.Equal(t, "InstanceID", arguments[0].Name())
	assert.Equal(t, "CurrentVolume", arguments[1].Name())

	assert.Empty(t, action.Name())
	assert.Nil(t, action.Arguments())
}

func TestArgumentPartition(t *testing.T) {
	description, err := NewParser().ParseFromBytes([]byte(renderingControlSCPD), renderingControlURN)
	require.NoError(t, err)

	for i := range description.Actions() {
		action := &description.Actions()[i]

		seen := make(map[*Argument]int)
		var inputs, outputs []*Argument
		for arg := range action.InputArguments() {
			assert.True(t, arg.Direction().IsIn())
			seen[arg]++
			inputs = append(inputs, arg)
		}
		for arg := range action.OutputArguments() {
			assert.True(t, arg.Direction().IsOut())
			seen[arg]++
			outputs = append(outputs, arg)
		}

		// The two views partition the argument sequence exactly, by identity.
		assert.Len(t, seen, len(action.Arguments()))
		for arg, count := range seen {
			assert.Equal(t, 1, count, "argument %s yielded more than once", arg.Name())
		}
		for j := range action.Arguments() {
			_, ok := seen[&action.Arguments()[j]]
			assert.True(t, ok, "argument %s missing from both views", action.Arguments()[j].Name())
		}

		assert.Len(t, inputs, len(action.Arguments())-len(outputs))
	}
}

func TestArgumentViewsAreRestartable(t *testing.T) {
	description, err := NewParser().ParseFromBytes([]byte(renderingControlSCPD), renderingControlURN)
	require.NoError(t, err)

	action := &description.Actions()[0]
	view := action.InputArguments()

	count := func() int {
		n := 0
		for range view {
			n++
		}
		return n
	}
	first := count()
	second := count()
	assert.Equal(t, first, second)
	assert.Equal(t, 1, first)
}

func TestArgumentViewEarlyStop(t *testing.T) {
	description, err := NewParser().ParseFromBytes([]byte(renderingControlSCPD), renderingControlURN)
	require.NoError(t, err)

	action := &description.Actions()[0]
	for range action.Arguments() {
		// Breaking out of a view iteration must not panic or leak.
		for arg := range action.OutputArguments() {
			assert.NotNil(t, arg)
			break
		}
	}
}

func TestStateVariableLookup(t *testing.T) {
	description, err := NewParser().ParseFromBytes([]byte(renderingControlSCPD), renderingControlURN)
	require.NoError(t, err)

	tests := []struct {
		name  string
		found bool
	}{
		{"Volume", true},
		// Both the raw and the stripped spelling of an internal name resolve.
		{"A_ARG_TYPE_InstanceID", true},
		{"InstanceID", true},
		{"Nope", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sv, ok := description.StateVariable(tt.name)
			assert.Equal(t, tt.found, ok)
			if tt.found {
				require.NotNil(t, sv)
			}
		})
	}
}

func TestDirection(t *testing.T) {
	assert.True(t, DirectionIn.IsIn())
	assert.False(t, DirectionIn.IsOut())
	assert.True(t, DirectionOut.IsOut())
	assert.False(t, DirectionOut.IsIn())
	assert.Equal(t, "in", DirectionIn.String())
	assert.Equal(t, "out", DirectionOut.String())

	_, err := ParseDirection("sideways")
	assert.Error(t, err)
}

func TestBool(t *testing.T) {
	assert.True(t, BoolYes.Bool())
	assert.False(t, BoolNo.Bool())
	assert.Equal(t, "yes", BoolYes.String())
	assert.Equal(t, "no", BoolNo.String())

	_, err := ParseBool("true")
	assert.Error(t, err)
}
