package extract

import (
	"reflect"
	"testing"
)

// --- Ratio Tests ---

func TestRatio(t *testing.T) {
	tests := []struct {
		a, b string
		want float64
	}{
		{"SMITH", "SMITH", 1},
		{"", "", 1},
		{"Career", "Career:", 1 - 1.0/7},
		{"ABC", "XYZ", 0},
	}

	for _, tt := range tests {
		got := Ratio(tt.a, tt.b)
		if diff := got - tt.want; diff > 1e-9 || diff < -1e-9 {
			t.Errorf("Ratio(%q, %q) = %v, want %v", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestWordsMatch_FirstLetterPreFilter(t *testing.T) {
	// "SMITH" vs "SMITT" clears 0.8 on its own merits.
	if !wordsMatch("SMITH", "SMITT", WordThreshold) {
		t.Error("expected SMITH/SMITT to match at 0.8")
	}

	// High similarity but different first letter is rejected outright.
	if wordsMatch("KATHY", "CATHY", WordThreshold) {
		t.Error("first-letter pre-filter should reject KATHY/CATHY")
	}

	if wordsMatch("", "SMITH", WordThreshold) {
		t.Error("empty word should never match")
	}
}

// --- Associate Tests ---

func TestAssociate_DirectTokenMatch(t *testing.T) {
	names := []string{"JOHN SMITH", "MARY JONES"}
	bioNames := []string{"SMITH, JOHN", "JONES, MARY"}

	bound := Associate(names, bioNames)
	want := []string{"SMITH, JOHN", "JONES, MARY"}
	if !reflect.DeepEqual(bound, want) {
		t.Errorf("expected %v, got %v", want, bound)
	}
}

func TestAssociate_NicknameMatch(t *testing.T) {
	// JONES matches directly; the first-name rule is exercised with a
	// surname that differs.
	names := []string{"ROBERT JONES"}
	bound := Associate(names, []string{"BOB JONES"})
	if bound[0] != "BOB JONES" {
		t.Errorf("expected nickname-assisted match, got %q", bound[0])
	}

	// Nickname alone: ROBERT maps to BOB in the table.
	names = []string{"ROBERT SMYTHE-WATSON"}
	bound = Associate(names, []string{"BOB JONES"})
	if bound[0] != "BOB JONES" {
		t.Errorf("expected ROBERT to bind via nickname BOB, got %q", bound[0])
	}
}

func TestAssociate_HonBioOccurrence(t *testing.T) {
	bioNames := BioNames("HON BOB JONES\n")
	bound := Associate([]string{"ROBERT JONES"}, bioNames)
	if bound[0] != "BOB JONES" {
		t.Errorf("expected ROBERT JONES to bind HON BOB JONES occurrence, got %q", bound[0])
	}
}

func TestAssociate_FirstEntryWins(t *testing.T) {
	// Two entries share the surname; the earlier one binds.
	names := []string{"JOHN SMITH", "PETER SMITH"}
	bound := Associate(names, []string{"SMITH, ALBERT"})

	if bound[0] != "SMITH, ALBERT" {
		t.Errorf("expected first entry to win, got %q", bound[0])
	}
	if bound[1] != "" {
		t.Errorf("expected second entry unbound, got %q", bound[1])
	}
}

func TestAssociate_EntryBindsAtMostOnce(t *testing.T) {
	names := []string{"JOHN SMITH"}
	bound := Associate(names, []string{"SMITH, JOHN", "SMITH, J"})

	if bound[0] != "SMITH, JOHN" {
		t.Errorf("expected first bio occurrence kept, got %q", bound[0])
	}
}

func TestAssociate_NoMatchLeavesEmpty(t *testing.T) {
	bound := Associate([]string{"JOHN SMITH"}, []string{"WILSON, GRACE"})
	if bound[0] != "" {
		t.Errorf("expected no binding, got %q", bound[0])
	}
}

func TestAssociate_RowCountStable(t *testing.T) {
	names := []string{"A B", "C D", "E F"}
	bound := Associate(names, nil)
	if len(bound) != len(names) {
		t.Fatalf("binding slice must track entry count: got %d, want %d", len(bound), len(names))
	}
}

// --- Nickname Table Tests ---

func TestNickname_Symmetry(t *testing.T) {
	alt, ok := Nickname("WILLIAM")
	if !ok || alt != "BILL" {
		t.Errorf("WILLIAM should map to BILL, got %q", alt)
	}
	alt, ok = Nickname("BILL")
	if !ok || alt != "WILLIAM" {
		t.Errorf("BILL should map to WILLIAM, got %q", alt)
	}
}

// The source table defined RICHARD twice, so the DICK mapping was
// overwritten. RICHARD resolves to RICK only; both short forms still map
// back. This is observed behavior, kept deliberately.
func TestNickname_RichardOverwriteQuirk(t *testing.T) {
	alt, ok := Nickname("RICHARD")
	if !ok || alt != "RICK" {
		t.Errorf("RICHARD should map to RICK (later entry wins), got %q", alt)
	}

	alt, ok = Nickname("DICK")
	if !ok || alt != "RICHARD" {
		t.Errorf("DICK should map to RICHARD, got %q", alt)
	}
	alt, ok = Nickname("RICK")
	if !ok || alt != "RICHARD" {
		t.Errorf("RICK should map to RICHARD, got %q", alt)
	}
}

func TestNickname_Unknown(t *testing.T) {
	if _, ok := Nickname("ZEBEDEE"); ok {
		t.Error("unexpected nickname for ZEBEDEE")
	}
}
