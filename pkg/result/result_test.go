package result

import (
	"bytes"
	"strings"
	"sync"
	"testing"
)

func TestNewSolution(t *testing.T) {
	s := NewSolution(12, 2, 3500)
	if s.Answer != 1202 {
		t.Errorf("Answer = %d, want 1202", s.Answer)
	}
}

// TestTableConcurrentAdd verifies the table is safe for concurrent writers
// and returns solutions in enumeration order.
func TestTableConcurrentAdd(t *testing.T) {
	tbl := NewTable()
	var wg sync.WaitGroup
	for noun := uint64(0); noun < 10; noun++ {
		wg.Add(1)
		go func(noun uint64) {
			defer wg.Done()
			for verb := uint64(3); verb > 0; verb-- {
				tbl.Add(NewSolution(noun, verb, 0))
			}
		}(noun)
	}
	wg.Wait()

	if tbl.Len() != 30 {
		t.Fatalf("Len() = %d, want 30", tbl.Len())
	}
	sols := tbl.Solutions()
	for i := 1; i < len(sols); i++ {
		if sols[i-1].Answer >= sols[i].Answer {
			t.Fatalf("solutions out of order at %d: %v then %v", i, sols[i-1], sols[i])
		}
	}
}

func TestReportJSON(t *testing.T) {
	rep := Report{
		Target:    19690720,
		Limit:     99,
		Solutions: []Solution{NewSolution(12, 2, 19690720)},
	}
	var buf bytes.Buffer
	if err := WriteJSON(&buf, rep); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), `"answer": 1202`) {
		t.Errorf("unexpected JSON: %s", buf.String())
	}

	got, err := ReadJSON(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if got.Target != rep.Target || got.Limit != rep.Limit || len(got.Solutions) != 1 || got.Solutions[0] != rep.Solutions[0] {
		t.Errorf("ReadJSON = %+v, want %+v", got, rep)
	}
}

func TestReportJSONEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteJSON(&buf, Report{Target: 1, Limit: 99}); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), `"solutions": []`) {
		t.Errorf("empty solutions should encode as [], got %s", buf.String())
	}
}

func TestReadJSONInvalid(t *testing.T) {
	if _, err := ReadJSON(strings.NewReader("{")); err == nil {
		t.Error("expected error for truncated JSON")
	}
}
