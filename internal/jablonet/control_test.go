package jablonet

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestResolvePinCode(t *testing.T) {
	withDefault := NewClient(zap.NewNop(), "", Credentials{PinCode: "1234"}, nil)
	withoutDefault := NewClient(zap.NewNop(), "", Credentials{}, nil)

	t.Run("explicit wins over default", func(t *testing.T) {
		pin, err := withDefault.resolvePinCode("9999")
		require.NoError(t, err)
		assert.Equal(t, "9999", pin)
	})

	t.Run("falls back to default", func(t *testing.T) {
		pin, err := withDefault.resolvePinCode("")
		require.NoError(t, err)
		assert.Equal(t, "1234", pin)
	})

	t.Run("explicit without default", func(t *testing.T) {
		pin, err := withoutDefault.resolvePinCode("5678")
		require.NoError(t, err)
		assert.Equal(t, "5678", pin)
	})

	t.Run("no code anywhere", func(t *testing.T) {
		_, err := withoutDefault.resolvePinCode("")
		assert.ErrorIs(t, err, ErrNoPinCode)
	})
}

func TestEvaluateControlOutcome(t *testing.T) {
	t.Run("desired state reached", func(t *testing.T) {
		reached, err := evaluateControlOutcome(ControlResponse{
			States: []ControlResponseState{{ComponentID: "SEC-1", State: "ARM"}},
		}, "SEC-1", "ARM")
		require.NoError(t, err)
		assert.True(t, reached)
	})

	t.Run("desired state compared case-insensitively", func(t *testing.T) {
		reached, err := evaluateControlOutcome(ControlResponse{
			States: []ControlResponseState{{ComponentID: "SEC-1", State: "ARM"}},
		}, "SEC-1", "arm")
		require.NoError(t, err)
		assert.True(t, reached)
	})

	t.Run("state not yet reached", func(t *testing.T) {
		reached, err := evaluateControlOutcome(ControlResponse{
			States: []ControlResponseState{{ComponentID: "SEC-1", State: "DISARM"}},
		}, "SEC-1", "ARM")
		require.NoError(t, err)
		assert.False(t, reached)
	})

	t.Run("other component state does not count", func(t *testing.T) {
		reached, err := evaluateControlOutcome(ControlResponse{
			States: []ControlResponseState{{ComponentID: "SEC-2", State: "ARM"}},
		}, "SEC-1", "ARM")
		require.NoError(t, err)
		assert.False(t, reached)
	})

	t.Run("wrong code wins over other errors", func(t *testing.T) {
		_, err := evaluateControlOutcome(ControlResponse{
			ControlErrors: []ControlResponseError{
				{ComponentID: "SEC-1", ControlError: "COMPONENT-BLOCKED"},
				{ComponentID: "SEC-1", ControlError: "WRONG-CODE"},
			},
		}, "SEC-1", "ARM")
		assert.ErrorIs(t, err, ErrIncorrectPinCode)
	})

	t.Run("wrong code wins even with matching state", func(t *testing.T) {
		_, err := evaluateControlOutcome(ControlResponse{
			ControlErrors: []ControlResponseError{{ComponentID: "SEC-1", ControlError: "WRONG-CODE"}},
			States:        []ControlResponseState{{ComponentID: "SEC-1", State: "ARM"}},
		}, "SEC-1", "ARM")
		assert.ErrorIs(t, err, ErrIncorrectPinCode)
	})

	t.Run("first other error is surfaced", func(t *testing.T) {
		_, err := evaluateControlOutcome(ControlResponse{
			ControlErrors: []ControlResponseError{
				{ComponentID: "SEC-1", ControlError: "COMPONENT-BLOCKED"},
				{ComponentID: "SEC-1", ControlError: "COMPONENT-OFFLINE"},
			},
		}, "SEC-1", "ARM")
		var actionErr *ControlActionError
		require.ErrorAs(t, err, &actionErr)
		assert.Equal(t, "COMPONENT-BLOCKED", actionErr.Code)
		assert.Equal(t, "SEC-1", actionErr.ComponentID)
	})

	t.Run("empty response is not reached", func(t *testing.T) {
		reached, err := evaluateControlOutcome(ControlResponse{}, "SEC-1", "ARM")
		require.NoError(t, err)
		assert.False(t, reached)
	})
}
