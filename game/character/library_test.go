package character

import (
	"os"
	"path/filepath"
	"testing"
)

const heroSheet = `
[base_info]
display_name = "Wren"
localized_name = "wren"

[skill_attributes]
vitality = 12.0
strength = 8.0

[damage_attributes]
fire_damage = 4.5
fire_wds = 0.2

[base_attributes]
hp = 100.0
attack = 15.0
speed = 5.5

[world_stats]
attack_range = 2.5
`

func writeSheet(t *testing.T, dir, name, contents string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(contents), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestLoadDirParsesSheets(t *testing.T) {
	dir := t.TempDir()
	writeSheet(t, dir, "wren.toml", heroSheet)

	lib := NewLibrary(WithLoadWorkers(2))
	n, err := lib.LoadDir(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n != 1 {
		t.Fatalf("loaded %d characters, want 1", n)
	}

	c := lib.Character("Wren")
	if c == nil {
		t.Fatal("character not found by display name")
	}
	if c.SkillAttributes.Vitality != 12.0 {
		t.Errorf("vitality = %v, want 12", c.SkillAttributes.Vitality)
	}
	if c.DamageAttributes.FireDamage != 4.5 {
		t.Errorf("fire damage = %v, want 4.5", c.DamageAttributes.FireDamage)
	}
	if c.WorldStats.AttackRange != 2.5 {
		t.Errorf("attack range = %v, want 2.5", c.WorldStats.AttackRange)
	}
}

func TestLoadDirSeedsCurrentStatsFromBase(t *testing.T) {
	dir := t.TempDir()
	writeSheet(t, dir, "wren.toml", heroSheet)

	lib := NewLibrary()
	if _, err := lib.LoadDir(dir); err != nil {
		t.Fatal(err)
	}

	c := lib.Character("Wren")
	if c.CurrentStats.HP != 100.0 || c.CurrentStats.Attack != 15.0 {
		t.Errorf("current stats not seeded from base: %+v", c.CurrentStats)
	}
}

func TestLoadDirSkipsBrokenFiles(t *testing.T) {
	dir := t.TempDir()
	writeSheet(t, dir, "wren.toml", heroSheet)
	writeSheet(t, dir, "broken.toml", "[base_info\nnot toml")
	writeSheet(t, dir, "notes.txt", "not a character sheet")

	lib := NewLibrary()
	n, err := lib.LoadDir(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n != 1 {
		t.Errorf("loaded %d characters, want 1 (broken and non-toml skipped)", n)
	}
	if lib.Count() != 1 {
		t.Errorf("count = %d, want 1", lib.Count())
	}
}

func TestLoadDirFallsBackToFileName(t *testing.T) {
	dir := t.TempDir()
	writeSheet(t, dir, "nameless.toml", "[base_attributes]\nhp = 10.0\n")

	lib := NewLibrary()
	if _, err := lib.LoadDir(dir); err != nil {
		t.Fatal(err)
	}
	if c := lib.Character("nameless"); c == nil {
		t.Error("expected file name fallback for display name")
	}
}

func TestLoadDirMissingDirectory(t *testing.T) {
	lib := NewLibrary()
	if _, err := lib.LoadDir(filepath.Join(t.TempDir(), "nope")); err == nil {
		t.Error("expected error for missing directory")
	}
}

func TestNamesSorted(t *testing.T) {
	dir := t.TempDir()
	writeSheet(t, dir, "b.toml", "[base_info]\ndisplay_name = \"Brix\"\n")
	writeSheet(t, dir, "a.toml", "[base_info]\ndisplay_name = \"Ash\"\n")

	lib := NewLibrary()
	if _, err := lib.LoadDir(dir); err != nil {
		t.Fatal(err)
	}

	names := lib.Names()
	if len(names) != 2 || names[0] != "Ash" || names[1] != "Brix" {
		t.Errorf("names = %v, want [Ash Brix]", names)
	}
}

func TestResetStats(t *testing.T) {
	c := &Character{
		BaseAttributes: BaseAttributes{HP: 50, Attack: 7, CritRate: 0.1},
		CurrentStats:   CurrentStats{HP: 3, Attack: 1},
	}
	c.ResetStats()
	if c.CurrentStats.HP != 50 || c.CurrentStats.Attack != 7 || c.CurrentStats.CritRate != 0.1 {
		t.Errorf("stats not reset: %+v", c.CurrentStats)
	}
}
