package imcore

// Widget state kept in FrameStores between frames.

// dragState tracks a DragFloat drag from its press.
type dragState struct {
	StartMouseX float32 // Pointer X at the press
	StartValue  float32 // Value at the press
	Dragging    bool    // Pointer travelled past Config.DragThreshold
}
