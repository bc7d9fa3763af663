package sim

import "github.com/jakecoffman/cp"

// Snapshot is the input intent fed to the simulation each frame. The
// shell fills it from whatever device it polls; the simulation never
// touches input hardware. Opposing flags cancel through vector
// composition rather than being rejected.
type Snapshot struct {
	MoveUp, MoveDown, MoveLeft, MoveRight     bool
	ShootUp, ShootDown, ShootLeft, ShootRight bool

	// Restart is honored only while the run is over.
	Restart bool
	// Quit is a shell concern; the simulation ignores it.
	Quit bool
}

func composeDir(up, down, left, right bool) cp.Vector {
	var v cp.Vector
	if up {
		v.Y--
	}
	if down {
		v.Y++
	}
	if left {
		v.X--
	}
	if right {
		v.X++
	}
	return v
}

func (s Snapshot) moveVec() cp.Vector {
	return composeDir(s.MoveUp, s.MoveDown, s.MoveLeft, s.MoveRight)
}

func (s Snapshot) shootVec() cp.Vector {
	return composeDir(s.ShootUp, s.ShootDown, s.ShootLeft, s.ShootRight)
}
