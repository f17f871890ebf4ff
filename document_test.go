package strategies

import "testing"

func TestValidFilename(t *testing.T) {
	valid := []string{
		"a.json",
		"haplotig-removal.json",
		"x1-y2-z3.json",
		"2n-karyotype.json",
	}
	for _, name := range valid {
		if !validFilename(name) {
			t.Fatalf("%s should be valid", name)
		}
	}

	invalid := []string{
		"Upper-Case.json",
		"under_score.json",
		"double--hyphen.json",
		"-leading.json",
		"trailing-.json",
		"spaced name.json",
		"dotted.name.json",
		".json",
		"noext",
		"wrong-ext.yaml",
	}
	for _, name := range invalid {
		if validFilename(name) {
			t.Fatalf("%s should be rejected", name)
		}
	}
}

func TestStem(t *testing.T) {
	if got := stem("haplotig-removal.json"); got != "haplotig-removal" {
		t.Fatalf("unexpected stem %q", got)
	}
	if got := stem("noext"); got != "noext" {
		t.Fatalf("unexpected stem %q", got)
	}
}

func TestCategoriesCopy(t *testing.T) {
	got := Categories()
	want := []string{"general", "pattern", "workflow", "organism"}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}
	// Mutating the copy must not leak into the package set.
	got[0] = "mutated"
	if !validCategory("general") {
		t.Fatalf("package set must be unaffected by caller mutation")
	}
}
