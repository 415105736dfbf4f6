package toolbar

// ButtonID identifies a toolbar button
type ButtonID int

const (
	AddColorButton ButtonID = iota
	ExportButton
	UploadButton
	ShareButton
)

var buttonNames = []string{"Add Color", "Export PNG", "Upload", "Share"}

func (b ButtonID) String() string {
	if b < 0 || int(b) >= len(buttonNames) {
		return "unknown"
	}
	return buttonNames[b]
}

// Height is the height of the toolbar strip in pixels.
const Height = int32(56)
