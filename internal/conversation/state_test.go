package conversation

import (
	"encoding/json"
	"sync"
	"testing"
	"time"

	"github.com/abhisek/guruji/internal/drill"
)

func TestRolloverResetsCountersOnNewDay(t *testing.T) {
	now := time.Date(2026, 3, 10, 23, 50, 0, 0, time.UTC)
	st := NewState(now)
	st.QuestionsToday = 5
	st.CorrectToday = 4

	st.Rollover(now.Add(5 * time.Minute)) // still the same day
	if st.QuestionsToday != 5 {
		t.Errorf("same-day rollover cleared counters")
	}

	st.Rollover(now.Add(time.Hour)) // past midnight
	if st.QuestionsToday != 0 || st.CorrectToday != 0 {
		t.Errorf("counters survived the day boundary: %d/%d", st.QuestionsToday, st.CorrectToday)
	}
}

func TestDrillPhaseInvariant(t *testing.T) {
	now := time.Now()
	st := NewState(now)

	q := testQuestion()
	sess, err := drill.NewSession("m1", 7, q)
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}

	st.StartDrill(sess, now)
	if !st.Drilling() || st.Phase != PhaseDrilling {
		t.Errorf("StartDrill left phase %q", st.Phase)
	}

	st.ClearDrill(now)
	if st.Drilling() || st.ActiveDrill != nil || st.Phase != PhaseIdle {
		t.Errorf("ClearDrill left %+v", st)
	}
}

func TestUnmarshalNormalizesOrphanedDrillPhase(t *testing.T) {
	raw := json.RawMessage(`{"phase":"drilling"}`)
	st, err := UnmarshalState(raw)
	if err != nil {
		t.Fatalf("UnmarshalState: %v", err)
	}
	if st.Phase != PhaseIdle {
		t.Errorf("phase = %q, want idle for drilling-without-session", st.Phase)
	}
}

func TestUnmarshalRejectsGarbage(t *testing.T) {
	if _, err := UnmarshalState(json.RawMessage(`{"phase":`)); err == nil {
		t.Error("expected error for truncated JSON")
	}
}

func TestKeyMutexSerializesPerKey(t *testing.T) {
	km := newKeyMutex()

	var mu sync.Mutex
	active := map[string]int{}
	maxActive := map[string]int{}

	var wg sync.WaitGroup
	for _, key := range []string{"a", "a", "a", "b", "b"} {
		wg.Add(1)
		go func(key string) {
			defer wg.Done()
			unlock := km.Lock(key)
			defer unlock()

			mu.Lock()
			active[key]++
			if active[key] > maxActive[key] {
				maxActive[key] = active[key]
			}
			mu.Unlock()

			time.Sleep(time.Millisecond)

			mu.Lock()
			active[key]--
			mu.Unlock()
		}(key)
	}
	wg.Wait()

	for key, m := range maxActive {
		if m > 1 {
			t.Errorf("key %q had %d concurrent holders", key, m)
		}
	}

	km.mu.Lock()
	if len(km.locks) != 0 {
		t.Errorf("%d locks leaked", len(km.locks))
	}
	km.mu.Unlock()
}
