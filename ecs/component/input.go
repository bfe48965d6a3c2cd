package component

// Input is the player's controls for the current frame. MoveX is the
// horizontal axis in [-1, 1]; the Pressed fields are true only on the frame
// the button went down.
type Input struct {
	MoveX        float64
	Jump         bool
	JumpPressed  bool
	ResetPressed bool
}

var InputComponent = NewComponent[Input]()
