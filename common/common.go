package common

const (
	BaseWidth  = 1280
	BaseHeight = 720

	// TPS is the fixed simulation rate.
	TPS = 60
	// DeltaTime is the duration of one simulation tick in seconds.
	DeltaTime = 1.0 / TPS

	// PixelsPerUnit converts world units (y-up) to screen pixels (y-down).
	PixelsPerUnit = 32.0
	// Gravity in pixels per second squared.
	Gravity = 1200.0
)
