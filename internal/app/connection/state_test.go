package connection

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestState_Predicates(t *testing.T) {
	tests := []struct {
		name     string
		state    State
		live     bool
		terminal bool
		str      string
	}{
		{"not started", NotStarted(), false, false, "not_started"},
		{"connecting", Connecting(), true, false, "connecting"},
		{"connected", Connected(), true, false, "connected"},
		{"data", DataReceived("x"), true, false, `data_received("x")`},
		{"failed", Failed("boom"), false, true, "failed(boom)"},
		{"closed", Closed(""), false, true, "closed"},
		{"closed with reason", Closed("cancelled"), false, true, "closed(cancelled)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.live, tt.state.IsLive())
			assert.Equal(t, tt.terminal, tt.state.IsTerminal())
			assert.Equal(t, tt.str, tt.state.String())
		})
	}
}

func TestPhase_String(t *testing.T) {
	assert.Equal(t, "unknown", Phase(99).String())
}
