package character

// Health tracks current and maximum health. Current is only clamped from
// above; a character configured with FloorHealth also clamps at zero.
type Health struct {
	Current float64
	Max     float64
}

func (h *Health) damage(amount float64, floor bool) {
	h.Current -= amount
	if floor && h.Current < 0 {
		h.Current = 0
	}
}

func (h *Health) heal(amount float64) {
	if h.Current+amount > h.Max {
		h.Current = h.Max
		return
	}
	h.Current += amount
}

// Depleted reports whether health has reached zero or below.
func (h Health) Depleted() bool {
	return h.Current <= 0
}
