package input

// KeyPressTracker manages key press state to prevent duplicate key presses.
// Keys are SDL scancodes converted to int so the tracker stays free of SDL.
type KeyPressTracker struct {
	pressed map[int]bool
}

// NewKeyPressTracker creates a new KeyPressTracker
func NewKeyPressTracker() KeyPressTracker {
	return KeyPressTracker{
		pressed: make(map[int]bool),
	}
}

// IsPressed checks if a key was just pressed (not held)
func (kpt *KeyPressTracker) IsPressed(keyState []uint8, scancode int) bool {
	isCurrentlyPressed := scancode >= 0 && scancode < len(keyState) && keyState[scancode] != 0
	wasPressed := kpt.pressed[scancode]

	kpt.pressed[scancode] = isCurrentlyPressed

	return isCurrentlyPressed && !wasPressed
}

// AnyPressed reports whether any of scancodes was just pressed. Every key is
// sampled so none of them reports a stale edge on the next frame.
func (kpt *KeyPressTracker) AnyPressed(keyState []uint8, scancodes ...int) bool {
	hit := false
	for _, sc := range scancodes {
		if kpt.IsPressed(keyState, sc) {
			hit = true
		}
	}
	return hit
}

// MousePressTracker manages mouse button press state to prevent duplicate presses
type MousePressTracker struct {
	// Keyed by SDL button mask (e.g. sdl.ButtonLMask())
	pressed map[uint32]bool
}

// NewMousePressTracker creates a new MousePressTracker
func NewMousePressTracker() MousePressTracker {
	return MousePressTracker{
		pressed: make(map[uint32]bool),
	}
}

// IsPressed checks if a mouse button (by mask) was just pressed (not held)
func (mpt *MousePressTracker) IsPressed(mouseState uint32, buttonMask uint32) bool {
	isCurrentlyPressed := (mouseState & buttonMask) != 0
	wasPressed := mpt.pressed[buttonMask]

	mpt.pressed[buttonMask] = isCurrentlyPressed

	return isCurrentlyPressed && !wasPressed
}
