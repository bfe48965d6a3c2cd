package component

// TTL destroys its entity after Frames more updates. Particle bursts use it.
type TTL struct {
	Frames int
}

var TTLComponent = NewComponent[TTL]()
