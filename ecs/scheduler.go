package ecs

// Scheduler runs the game's systems once per tick in a fixed order. Events
// pushed during a tick are visible to every later system of that tick and
// are dropped when the tick ends.
type Scheduler struct {
	systems []System
}

func NewScheduler(systems ...System) *Scheduler {
	s := &Scheduler{}
	for _, system := range systems {
		if system != nil {
			s.systems = append(s.systems, system)
		}
	}
	return s
}

func (s *Scheduler) Update(w *World) {
	if s == nil || w == nil {
		return
	}
	for _, system := range s.systems {
		system.Update(w)
	}
	w.Events().flush()
}
