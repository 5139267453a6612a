// internal/event/types.go
package event

// Input events, posted by the host surface.
const (
	PointerMoved   EventType = "PointerMoved"   // Data: Pointer
	PointerClicked EventType = "PointerClicked" // Data: Pointer
	PointerDragged EventType = "PointerDragged" // Data: Drag
	PointerLeft    EventType = "PointerLeft"    // no data
	WheelScrolled  EventType = "WheelScrolled"  // Data: float32, positive = zoom in
	SurfaceResized EventType = "SurfaceResized" // Data: Size
)

// Scene events, dispatched by the engine.
const (
	HotspotEntered   EventType = "HotspotEntered"   // Data: string label
	HotspotLeft      EventType = "HotspotLeft"      // Data: string label
	BodyPartSelected EventType = "BodyPartSelected" // Data: string label
	AssetLoaded      EventType = "AssetLoaded"      // Data: string URI
	AssetFailed      EventType = "AssetFailed"      // Data: error
)

// Pointer is a surface-local pixel position.
type Pointer struct {
	X, Y float32
}

// Drag is a pointer movement in pixels while the primary button is held.
type Drag struct {
	DX, DY float32
}

// Size is a surface size in pixels.
type Size struct {
	Width, Height int
}
