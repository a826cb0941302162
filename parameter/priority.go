package parameter

// System execution priorities (lower runs first)
// Order within a tick: player input, firing, world motion, spawning, combat, effects
const (
	PriorityPlayer  = 10
	PriorityWeapon  = 20
	PriorityMotion  = 30
	PrioritySnake   = 35 // Grid advance runs with world motion
	PrioritySpawn   = 40
	PriorityCombat  = 50
	PriorityEffects = 60
)
