package game

import (
	"reflect"
	"testing"

	"github.com/vovakirdan/launchland/internal/config"
)

func TestSimulateDeterministic(t *testing.T) {
	cfg := config.DefaultLaunchConfig()
	a, err := Simulate(cfg, testRuntime(21), 1200, nil)
	if err != nil {
		t.Fatal(err)
	}
	b, err := Simulate(cfg, testRuntime(21), 1200, nil)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(a, b) {
		t.Errorf("simulations differ:\n%+v\n%+v", a, b)
	}
}

func TestSimulateAccountsForEveryFrame(t *testing.T) {
	cfg := config.DefaultLaunchConfig()
	cfg.Terrain.Start.Y = -20 // Every session falls out

	runs, err := Simulate(cfg, testRuntime(1), 500, nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(runs) < 2 {
		t.Fatalf("expected several runs, got %d", len(runs))
	}

	total := 0
	for i, r := range runs {
		total += r.Stats.Frames
		if r.Stats.Seed != int64(1+i) {
			t.Errorf("run %d seed = %d, expected %d", i, r.Stats.Seed, 1+i)
		}
		if i < len(runs)-1 && r.Reason != ReasonFell {
			t.Errorf("run %d reason = %q, expected %q", i, r.Reason, ReasonFell)
		}
	}
	if total != 500 {
		t.Errorf("frames across runs = %d, expected 500", total)
	}
}
