package balance

import (
	"os"
	"path/filepath"
	"testing"

	"roomcrawler/sim"
)

func writeSpec(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "balance.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write spec: %v", err)
	}
	return path
}

func TestLoadAndApplyPartialOverride(t *testing.T) {
	path := writeSpec(t, `
player_speed: 200
enemy_hp: 5
max_rooms: 12
`)

	spec, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	tun := sim.DefaultTuning()
	spec.Apply(&tun)

	if tun.PlayerSpeed != 200 {
		t.Errorf("PlayerSpeed = %v, want 200", tun.PlayerSpeed)
	}
	if tun.EnemyHP != 5 {
		t.Errorf("EnemyHP = %v, want 5", tun.EnemyHP)
	}
	if tun.MaxRooms != 12 {
		t.Errorf("MaxRooms = %v, want 12", tun.MaxRooms)
	}

	// Everything the file does not mention keeps its default.
	def := sim.DefaultTuning()
	if tun.EnemySpeed != def.EnemySpeed {
		t.Errorf("EnemySpeed = %v, want default %v", tun.EnemySpeed, def.EnemySpeed)
	}
	if tun.PlayerMaxHP != def.PlayerMaxHP {
		t.Errorf("PlayerMaxHP = %v, want default %v", tun.PlayerMaxHP, def.PlayerMaxHP)
	}
	if tun.FireInterval != def.FireInterval {
		t.Errorf("FireInterval = %v, want default %v", tun.FireInterval, def.FireInterval)
	}
}

func TestLoadEmptyFileChangesNothing(t *testing.T) {
	path := writeSpec(t, "")

	spec, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	tun := sim.DefaultTuning()
	spec.Apply(&tun)
	if tun != sim.DefaultTuning() {
		t.Fatalf("empty spec changed the tuning")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}

func TestLoadMalformed(t *testing.T) {
	path := writeSpec(t, "player_speed: [not a number\n")
	if _, err := Load(path); err == nil {
		t.Fatalf("expected error for malformed yaml")
	}
}

func TestApplyNilReceiver(t *testing.T) {
	tun := sim.DefaultTuning()
	var spec *Spec
	spec.Apply(&tun)
	if tun != sim.DefaultTuning() {
		t.Fatalf("nil spec changed the tuning")
	}
}
