package shell

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/Twisol/molt/pkg/must"
	"github.com/Twisol/molt/pkg/testutil"
)

func TestLoadConfig(t *testing.T) {
	testutil.InTempDir(t)
	must.WriteFile("full.yaml", `
prompt: "molt% "
continuation-prompt: "... "
history: ""
recursion-limit: 50
rc: /etc/moltrc
`)
	must.WriteFile("empty.yaml", "")
	must.WriteFile("unknown.yaml", "colour: red\n")
	must.WriteFile("negative.yaml", "recursion-limit: -1\n")
	must.WriteFile("bad-type.yaml", "recursion-limit: lots\n")

	cfg, err := LoadConfig("full.yaml", true)
	if err != nil {
		t.Fatal(err)
	}
	want := &Config{Prompt: "molt% ", ContinuationPrompt: "... ",
		History: ptr(""), RecursionLimit: 50, RC: ptr("/etc/moltrc")}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("full.yaml (-want +got):\n%s", diff)
	}

	defaults := &Config{Prompt: DefaultPrompt, ContinuationPrompt: DefaultContinuationPrompt}
	for _, name := range []string{"empty.yaml", "non-existent.yaml"} {
		cfg, err := LoadConfig(name, false)
		if err != nil {
			t.Errorf("%s: got error %v", name, err)
		}
		if diff := cmp.Diff(defaults, cfg); diff != "" {
			t.Errorf("%s (-want +got):\n%s", name, diff)
		}
	}

	errorTests := []struct {
		name      string
		mustExist bool
		wantErr   string
	}{
		{"non-existent.yaml", true, "no such file"},
		{"unknown.yaml", false, "field colour not found"},
		{"negative.yaml", false, "recursion-limit must not be negative"},
		{"bad-type.yaml", false, "cannot unmarshal"},
	}
	for _, test := range errorTests {
		_, err := LoadConfig(test.name, test.mustExist)
		if err == nil || !strings.Contains(err.Error(), test.wantErr) {
			t.Errorf("%s: got error %v, want one containing %q",
				test.name, err, test.wantErr)
		}
	}
}

func ptr[T any](v T) *T { return &v }
