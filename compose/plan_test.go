package compose

import (
	"context"
	"strings"
	"testing"
)

func TestPlan(t *testing.T) {
	cfg := defaultComposite(t, writeAssets(t, testFragments))

	comp, err := New(cfg, nil).Compose(context.Background())
	if err != nil {
		t.Fatalf("Compose() error = %v", err)
	}
	plan := Plan(comp)

	for _, want := range []string{
		"composite 900x1780, 9 fragments\n",
		"  [0] header @ y=0\n",
		"  [4] divider @ y=1000\n",
		"    definitions: [grad glow]\n",
		"    duplicates dropped: [fade]\n",
		"    keyframes: [blink]\n",
		"style collisions\n  selector .title defined in header, footer\n",
	} {
		if !strings.Contains(plan, want) {
			t.Errorf("plan does not contain %q:\n%s", want, plan)
		}
	}
}

func TestPlan_NoCollisions(t *testing.T) {
	plan := Plan(&Composite{Width: 10, Height: 20})
	if plan != "composite 10x20, 0 fragments\n" {
		t.Errorf("Plan() = %q", plan)
	}
}
