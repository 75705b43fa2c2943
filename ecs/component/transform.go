package component

// Transform is a world-space position (top-left for rect entities, emitter
// origin for blasters).
type Transform struct {
	X float64
	Y float64
}

var TransformComponent = NewComponent[Transform]()
