package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEvent_Message_PerKind(t *testing.T) {
	tests := []struct {
		event Event
		want  string
	}{
		{ev(0, EventAdmittedFromEntry, 1, "", "", ""), "[ENTRY] Item 1 released from Entry Point."},
		{ev(0, EventLoaded, 1, "A", "", ""), "[MOVE] Item 1 moved to Station A."},
		{ev(0, EventLoaded, 2, "A", "", "Waiting_A"), "[MOVE] Item 2 from Waiting_A to Station A."},
		{ev(0, EventQueued, 2, "A", "Waiting_A", ""), "[WAIT] Item 2 cannot enter A. Moved to Waiting_A."},
		{ev(0, EventHalted, 3, "C", "Waiting_C", ""), "[HALT] Item 3 cannot enter C. Waiting_C is full. Entry Halted!"},
		{ev(0, EventReleased, 1, "A", "", ""), "[SIGNAL] Station A finished Item 1."},
		{ev(0, EventFinished, 4, "", "", ""), "[DONE] Item 4 FINISHED process."},
		{ev(0, EventError, 9, "Z", "", ""), "[ERROR] Item 9 cannot find station Z"},
	}
	for _, tt := range tests {
		t.Run(string(tt.event.Kind), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.event.Message())
		})
	}
}

func TestEvent_String_IncludesTick(t *testing.T) {
	e := ev(12, EventFinished, 4, "", "", "")
	assert.Equal(t, "[tick 0012] [DONE] Item 4 FINISHED process.", e.String())
}

func TestOutcome_String_And_Placed(t *testing.T) {
	assert.Equal(t, "Halted", OutcomeHalted.String())
	assert.True(t, OutcomeLoaded.Placed())
	assert.True(t, OutcomeQueued.Placed())
	assert.False(t, OutcomeHalted.Placed())
	assert.False(t, OutcomeFinished.Placed())
	assert.False(t, OutcomeError.Placed())
}
