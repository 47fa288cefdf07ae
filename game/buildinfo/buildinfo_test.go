package buildinfo

import (
	"testing"

	"github.com/kestrelworks/roost/engine"
)

func TestResolvePlaceholders(t *testing.T) {
	info := Resolve("", "")
	if info.AppName != PlaceholderAppName {
		t.Errorf("AppName = %q, want %q", info.AppName, PlaceholderAppName)
	}
	if info.AppVersion == "" {
		t.Error("AppVersion must never be empty")
	}
	if info.EngineVersion != engine.Version {
		t.Errorf("EngineVersion = %q, want %q", info.EngineVersion, engine.Version)
	}
}

func TestResolveExplicitIdentity(t *testing.T) {
	info := Resolve("Roost", "1.2.3")
	if info.AppName != "Roost" || info.AppVersion != "1.2.3" {
		t.Errorf("identity not honored: %+v", info)
	}
}
