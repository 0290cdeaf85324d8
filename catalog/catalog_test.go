package catalog

import "testing"

func TestDefaultComposition(t *testing.T) {
	tvs := TVs()
	phones := Phones()
	acs := AirConditioners()
	all := Default()

	if len(tvs) != 20 {
		t.Errorf("TVs() returned %d products, want 20", len(tvs))
	}
	if len(phones) != 40 {
		t.Errorf("Phones() returned %d products, want 40", len(phones))
	}
	if len(acs) != 20 {
		t.Errorf("AirConditioners() returned %d products, want 20", len(acs))
	}
	if len(all) != 80 {
		t.Fatalf("Default() returned %d products, want 80", len(all))
	}

	// Sheet rows depend on this concatenation order.
	for i, want := range tvs {
		if all[i] != want {
			t.Fatalf("Default()[%d] = %q, want TV %q", i, all[i], want)
		}
	}
	for i, want := range phones {
		if all[20+i] != want {
			t.Fatalf("Default()[%d] = %q, want phone %q", 20+i, all[20+i], want)
		}
	}
	for i, want := range acs {
		if all[60+i] != want {
			t.Fatalf("Default()[%d] = %q, want AC %q", 60+i, all[60+i], want)
		}
	}
}

func TestDefaultHasNoDuplicates(t *testing.T) {
	seen := make(map[string]bool)
	for _, product := range Default() {
		if product == "" {
			t.Fatal("catalog contains an empty product name")
		}
		if seen[product] {
			t.Errorf("duplicate product %q", product)
		}
		seen[product] = true
	}
}
