package render

// Renderer paints the remaining-seconds display. The control loop
// depends on this interface; tests substitute a recorder.
type Renderer interface {
	Draw(remaining int) error
}
