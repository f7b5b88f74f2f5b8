package category

import "testing"

func TestAll_CountAndOrder(t *testing.T) {
	all := All()
	if len(all) != 13 {
		t.Fatalf("len(All()) = %d, want 13", len(all))
	}
	if all[0] != Signs {
		t.Errorf("All()[0] = %q, want %q", all[0], Signs)
	}
	if all[len(all)-1] != Documents {
		t.Errorf("All() last = %q, want %q", all[len(all)-1], Documents)
	}
}

func TestValid(t *testing.T) {
	if !Documents.Valid() {
		t.Error("Documents should be valid")
	}
	if Category("Videos").Valid() {
		t.Error("unknown label should not be valid")
	}
}

func TestFromLabel(t *testing.T) {
	if FromLabel("Motorway rules") != Motorway {
		t.Error("FromLabel should resolve known labels")
	}
	if FromLabel("nope") != DefaultCategory {
		t.Error("FromLabel should fall back to the default")
	}
}
