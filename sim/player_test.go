package sim

import (
	"math"
	"testing"
)

func TestPlayerMove(t *testing.T) {
	tun := DefaultTuning()

	t.Run("cardinal", func(t *testing.T) {
		p := newPlayer(&tun)
		start := p.Pos
		p.move(Snapshot{MoveRight: true}, &tun, testDT)
		if !almostEqual(p.Pos.X, start.X+tun.PlayerSpeed*testDT) || !almostEqual(p.Pos.Y, start.Y) {
			t.Fatalf("moved to %v from %v", p.Pos, start)
		}
	})

	t.Run("diagonal_normalized", func(t *testing.T) {
		p := newPlayer(&tun)
		start := p.Pos
		p.move(Snapshot{MoveRight: true, MoveDown: true}, &tun, testDT)
		step := tun.PlayerSpeed * testDT / math.Sqrt2
		if !almostEqual(p.Pos.X, start.X+step) || !almostEqual(p.Pos.Y, start.Y+step) {
			t.Fatalf("diagonal moved to %v from %v", p.Pos, start)
		}
	})

	t.Run("opposing_flags_cancel", func(t *testing.T) {
		p := newPlayer(&tun)
		start := p.Pos
		p.move(Snapshot{MoveLeft: true, MoveRight: true, MoveUp: true, MoveDown: true}, &tun, testDT)
		if p.Pos != start {
			t.Fatalf("conflicting input moved player: %v -> %v", start, p.Pos)
		}
	})

	t.Run("clamped_to_walls", func(t *testing.T) {
		p := newPlayer(&tun)
		walls := tun.RoomBounds.Inset(tun.WallMargin + p.Radius)
		p.Pos.X = walls.Right()
		p.move(Snapshot{MoveRight: true}, &tun, testDT)
		if p.Pos.X != walls.Right() {
			t.Fatalf("player pushed through wall: %v", p.Pos.X)
		}
	})
}

func TestPlayerShootCooldown(t *testing.T) {
	tun := DefaultTuning()
	p := newPlayer(&tun)
	snap := Snapshot{ShootRight: true}

	p.shoot(snap, &tun, testDT)
	if len(p.Bullets) != 1 {
		t.Fatalf("first trigger spawned %d bullets", len(p.Bullets))
	}

	b := p.Bullets[0]
	if !almostEqual(b.Pos.X, p.Pos.X+p.Radius+tun.MuzzleGap) || !almostEqual(b.Pos.Y, p.Pos.Y) {
		t.Fatalf("bullet spawned at %v", b.Pos)
	}
	if !almostEqual(b.Vel.X, tun.BulletSpeed) || b.Radius != tun.BulletRadius || b.TTL != tun.BulletTTL {
		t.Fatalf("bullet stats %v/%v/%v", b.Vel, b.Radius, b.TTL)
	}

	// Holding the trigger for 0.05s of ticks must not fire again.
	for elapsed := testDT; elapsed < 0.05; elapsed += testDT {
		p.shoot(snap, &tun, testDT)
	}
	if len(p.Bullets) != 1 {
		t.Fatalf("fired again inside the cooldown window: %d bullets", len(p.Bullets))
	}

	// Holding through a full fire interval fires exactly once more.
	for elapsed := 0.0; elapsed < tun.FireInterval+2*testDT; elapsed += testDT {
		p.shoot(snap, &tun, testDT)
	}
	if len(p.Bullets) != 2 {
		t.Fatalf("want exactly 2 bullets after a full interval, got %d", len(p.Bullets))
	}
}

func TestPlayerCooldownTicksWithoutFiring(t *testing.T) {
	tun := DefaultTuning()
	p := newPlayer(&tun)
	p.ShotCooldown = 0.5

	p.shoot(Snapshot{}, &tun, testDT)

	if !almostEqual(p.ShotCooldown, 0.5-testDT) {
		t.Fatalf("cooldown = %v, want %v", p.ShotCooldown, 0.5-testDT)
	}
	if len(p.Bullets) != 0 {
		t.Fatalf("bullet fired with no intent")
	}
}
