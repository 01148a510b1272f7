package catalog

import (
	"sort"
	"strings"
	"testing"
)

func TestRolesSortedByName(t *testing.T) {
	all := Roles()
	if len(all) == 0 {
		t.Fatalf("expected catalog roles")
	}
	if !sort.SliceIsSorted(all, func(i, j int) bool { return all[i].Name < all[j].Name }) {
		t.Fatalf("expected roles sorted by name")
	}
}

func TestRolesEntriesComplete(t *testing.T) {
	for _, r := range Roles() {
		if r.Name == "" || len(r.CoreSkills) == 0 || len(r.Frameworks) == 0 {
			t.Fatalf("incomplete role entry: %+v", r)
		}
		if r.SalaryRange == "" || r.GrowthOutlook == "" || r.TechStack == "" {
			t.Fatalf("missing market metadata for %s", r.Name)
		}
		if len(r.DailyTasks) == 0 || len(r.KeyEmployers) == 0 {
			t.Fatalf("missing tasks or employers for %s", r.Name)
		}
	}
}

func TestLookupNormalizesNames(t *testing.T) {
	cases := []string{
		"Machine Learning Engineer",
		"machine learning engineer",
		"machine_learning_engineer",
		"Machine-Learning-Engineer",
		"  machine  learning  engineer ",
	}
	for _, name := range cases {
		role, ok := Lookup(name)
		if !ok {
			t.Fatalf("expected lookup to succeed for %q", name)
		}
		if role.Name != "Machine Learning Engineer" {
			t.Fatalf("expected canonical name, got %q", role.Name)
		}
	}
}

func TestLookupUnknownRole(t *testing.T) {
	if _, ok := Lookup("underwater basket weaver"); ok {
		t.Fatalf("expected unknown role to miss")
	}
	if _, ok := Lookup(""); ok {
		t.Fatalf("expected empty name to miss")
	}
}

func TestSkillVocabularyDedupedAndSorted(t *testing.T) {
	vocab := SkillVocabulary()
	if !sort.StringsAreSorted(vocab) {
		t.Fatalf("expected sorted vocabulary")
	}
	seen := make(map[string]bool, len(vocab))
	for _, s := range vocab {
		if s != strings.ToLower(s) {
			t.Fatalf("expected lowercase vocabulary entry, got %q", s)
		}
		if seen[s] {
			t.Fatalf("duplicate vocabulary entry %q", s)
		}
		seen[s] = true
	}
	for _, want := range []string{"python", "kubernetes", "react"} {
		if !seen[want] {
			t.Fatalf("expected %q in vocabulary", want)
		}
	}
}

func TestAccessorsReturnCopies(t *testing.T) {
	first := GenericKeywords()
	first[0] = "mutated"
	if GenericKeywords()[0] == "mutated" {
		t.Fatalf("expected GenericKeywords to return a copy")
	}

	r := Roles()
	r[0].Name = "mutated"
	if Roles()[0].Name == "mutated" {
		t.Fatalf("expected Roles to return a copy")
	}
}
