package stoplist

import "testing"

func TestDefaultStoplist(t *testing.T) {
	m := Default()

	for _, w := range []string{"the", "fresh", "organic", "large"} {
		if !m.IsStop(w) {
			t.Errorf("expected %q to be a stopword", w)
		}
	}
	for _, w := range []string{"peeled", "diced", "carrot", "salt"} {
		if m.IsStop(w) {
			t.Errorf("%q must not be a stopword", w)
		}
	}

	if r, ok := m.ReasonFor("jumbo"); !ok || r != ReasonSize {
		t.Errorf("jumbo reason = %q, %v", r, ok)
	}
}

func TestAddRemove(t *testing.T) {
	m := NewManager(nil)
	m.Add("Heritage", ReasonCustom)
	if !m.IsStop("heritage") {
		t.Fatal("added word should be lowercased and present")
	}
	m.Remove("HERITAGE")
	if m.IsStop("heritage") {
		t.Fatal("removed word should be gone")
	}
}

func TestAllSorted(t *testing.T) {
	m := FromWords([]string{"c", "a", "b"}, ReasonCustom)
	all := m.All()
	if len(all) != 3 || all[0] != "a" || all[2] != "c" {
		t.Errorf("All() = %v", all)
	}
	if m.Len() != 3 {
		t.Errorf("Len() = %d", m.Len())
	}
}
