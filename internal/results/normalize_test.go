package results

import (
	"net/url"
	"testing"
)

func TestFormFromValues_TrimsAndDefaults(t *testing.T) {
	v := url.Values{
		"name": {"  Ann Lee \t"},
		"s1":   {" 90 "},
		"s3":   {""},
		"s5":   {"\n100"},
	}
	f := FormFromValues(v)
	if f.Name != "Ann Lee" {
		t.Fatalf("name = %q", f.Name)
	}
	want := [5]string{"90", "", "", "", "100"}
	if f.Marks != want {
		t.Fatalf("marks = %q, want %q", f.Marks, want)
	}
}

func TestFormFromValues_Empty(t *testing.T) {
	if f := FormFromValues(nil); f != (Form{}) {
		t.Fatalf("want zero form, got %+v", f)
	}
}

func TestFormFromMap_IgnoresUnknownKeys(t *testing.T) {
	f := FormFromMap(map[string]string{"name": "Bo", "s2": " 7", "s6": "99", "extra": "x"})
	if f.Name != "Bo" || f.Marks[1] != "7" {
		t.Fatalf("unexpected form %+v", f)
	}
	for i, m := range f.Marks {
		if i != 1 && m != "" {
			t.Fatalf("mark %d = %q, want empty", i, m)
		}
	}
}

func TestMarkField(t *testing.T) {
	for i, want := range []string{"s1", "s2", "s3", "s4", "s5"} {
		if got := MarkField(i); got != want {
			t.Fatalf("MarkField(%d) = %q, want %q", i, got, want)
		}
	}
}
