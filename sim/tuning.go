package sim

// Tuning collects every gameplay constant in one place so a whole run can
// be rebalanced from a single struct. The zero value is not usable; start
// from DefaultTuning.
type Tuning struct {
	// Grid and room geometry.
	GridW, GridH int
	RoomBounds   Rect
	WallMargin   float64
	SpawnInset   float64
	PatrolInset  float64

	// Doors. DoorW spans along the wall, DoorH is the slab depth.
	// DoorBleed lets the slab poke slightly past the wall line and
	// DoorHitMargin enlarges the traversal hit zone on all sides.
	DoorW         float64
	DoorH         float64
	DoorBleed     float64
	DoorHitMargin float64
	ExitOffset    float64

	// Player.
	PlayerRadius float64
	PlayerSpeed  float64
	PlayerMaxHP  int

	// Bullets.
	BulletRadius float64
	BulletSpeed  float64
	BulletTTL    float64
	MuzzleGap    float64
	FireInterval float64

	// Regular enemies.
	EnemyRadius float64
	EnemyHP     float64
	EnemySpeed  float64

	// Boss room squad.
	BossSquad  int
	BossHP     float64
	BossRadius float64
	BossSpeed  float64

	// Patroller behavior.
	PatrolFactor   float64
	ChaseBlend     float64
	ProximityRange float64

	// Contact damage.
	HurtInterval float64
	Knockback    float64

	// Generation.
	MinRooms, MaxRooms int
	MinSquad, MaxSquad int

	// Fixed simulation steps per second.
	TickRate float64
}

// DefaultTuning returns the shipped balance.
func DefaultTuning() Tuning {
	return Tuning{
		GridW:      5,
		GridH:      5,
		RoomBounds: Rect{X: 120, Y: 70, W: 720, H: 400},

		WallMargin:  20,
		SpawnInset:  40,
		PatrolInset: 30,

		DoorW:         80,
		DoorH:         18,
		DoorBleed:     2,
		DoorHitMargin: 10,
		ExitOffset:    60,

		PlayerRadius: 12,
		PlayerSpeed:  125,
		PlayerMaxHP:  6, // half-heart units, 3 hearts

		BulletRadius: 5,
		BulletSpeed:  360,
		BulletTTL:    0.9,
		MuzzleGap:    6,
		FireInterval: 0.12,

		EnemyRadius: 12,
		EnemyHP:     2,
		EnemySpeed:  55,

		BossSquad:  6,
		BossHP:     4,
		BossRadius: 14,
		BossSpeed:  70,

		PatrolFactor:   0.75,
		ChaseBlend:     0.4,
		ProximityRange: 180,

		HurtInterval: 0.9,
		Knockback:    20,

		MinRooms: 6,
		MaxRooms: 9,
		MinSquad: 2,
		MaxSquad: 5,

		TickRate: 120,
	}
}
