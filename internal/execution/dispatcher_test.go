package execution

import (
	"strings"
	"testing"

	"vregress/internal/config"
)

func TestDispatcher_JobEnv(t *testing.T) {
	t.Run("appends timescale to existing options", func(t *testing.T) {
		t.Setenv(config.EnvSimOptions, "-suppress-warnings")

		d := NewDispatcher(config.New(), &strings.Builder{})
		env := d.jobEnv()

		var found []string
		for _, kv := range env {
			if strings.HasPrefix(kv, config.EnvSimOptions+"=") {
				found = append(found, kv)
			}
		}
		if len(found) != 1 {
			t.Fatalf("expected exactly one %s entry, got %v", config.EnvSimOptions, found)
		}
		want := config.EnvSimOptions + "=-suppress-warnings " + config.TimescaleOption
		if found[0] != want {
			t.Errorf("expected %q, got %q", want, found[0])
		}
	})

	t.Run("sets timescale when unset", func(t *testing.T) {
		t.Setenv(config.EnvSimOptions, "")

		d := NewDispatcher(config.New(), &strings.Builder{})
		env := d.jobEnv()

		want := config.EnvSimOptions + "=" + config.TimescaleOption
		ok := false
		for _, kv := range env {
			if kv == want {
				ok = true
			}
		}
		if !ok {
			t.Errorf("env missing %q", want)
		}
	})
}
