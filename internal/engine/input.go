package engine

import "fmt"

// DeviceClass is the kind of hardware an input event came from.
type DeviceClass int

const (
	DeviceNone DeviceClass = iota
	DeviceMouse
	DeviceKeyboard
	DeviceTouch
	DeviceController
)

func (d DeviceClass) String() string {
	switch d {
	case DeviceMouse:
		return "Mouse"
	case DeviceKeyboard:
		return "Keyboard"
	case DeviceTouch:
		return "Touch"
	case DeviceController:
		return "Controller"
	}
	return "None"
}

type Handedness int

const (
	HandNone Handedness = iota
	HandLeft
	HandRight
)

func (h Handedness) String() string {
	switch h {
	case HandLeft:
		return "left"
	case HandRight:
		return "right"
	}
	return "none"
}

// ButtonCode is the logical button within a device class.
type ButtonCode int

const (
	CodeNone ButtonCode = iota
	CodeMouseLeft
	CodeTouchScreen
	CodeKey
	CodeTrigger
	CodeGrip
	CodeStickPress
	CodePrimary   // A or X
	CodeSecondary // B or Y
	CodeStickUp
	CodeStickDown
	CodeStickLeft
	CodeStickRight
	// CodeControllerButton is any controller button without a fixed role;
	// ButtonID.Index carries the raw index.
	CodeControllerButton
)

var buttonCodeNames = [...]string{
	CodeNone:             "None",
	CodeMouseLeft:        "MouseLeft",
	CodeTouchScreen:      "TouchScreen",
	CodeKey:              "Key",
	CodeTrigger:          "Trigger",
	CodeGrip:             "Grip",
	CodeStickPress:       "StickPress",
	CodePrimary:          "Primary",
	CodeSecondary:        "Secondary",
	CodeStickUp:          "StickUp",
	CodeStickDown:        "StickDown",
	CodeStickLeft:        "StickLeft",
	CodeStickRight:       "StickRight",
	CodeControllerButton: "ControllerButton",
}

func (c ButtonCode) String() string {
	if c >= 0 && int(c) < len(buttonCodeNames) {
		return buttonCodeNames[c]
	}
	return fmt.Sprintf("ButtonCode(%d)", int(c))
}

// ButtonID identifies the physical origin of a button edge.
type ButtonID struct {
	Device DeviceClass
	Hand   Handedness
	Index  int
	Code   ButtonCode
}

var (
	MouseLeft   = ButtonID{Device: DeviceMouse, Code: CodeMouseLeft}
	TouchScreen = ButtonID{Device: DeviceTouch, Code: CodeTouchScreen}
)

func (b ButtonID) String() string {
	if b.Device == DeviceController {
		return fmt.Sprintf("%s/%s/%s#%d", b.Device, b.Hand, b.Code, b.Index)
	}
	return fmt.Sprintf("%s/%s", b.Device, b.Code)
}

// IsPointer reports whether the button is aimed with the pointer ray and is
// therefore routed to the hovered widget.
func (b ButtonID) IsPointer() bool {
	return b.Device == DeviceMouse || b.Device == DeviceTouch || b.Device == DeviceController
}

// KeyName is a logical keyboard key.
type KeyName int

const (
	KeyUnknown KeyName = iota
	KeyChar            // printable, see Key.Char
	KeyBackspace
	KeyTab
	KeyBacktab
	KeyEnter
	KeyEscape
)

type Key struct {
	Name KeyName
	Char rune
}

func CharKey(r rune) Key {
	return Key{Name: KeyChar, Char: r}
}

func (k Key) String() string {
	switch k.Name {
	case KeyChar:
		return string(k.Char)
	case KeyBackspace:
		return "BACKSPACE"
	case KeyTab:
		return "TAB"
	case KeyBacktab:
		return "BACKTAB"
	case KeyEnter:
		return "ENTER"
	case KeyEscape:
		return "ESCAPE"
	}
	return "UNKNOWN"
}

// ControllerHandle describes a connected immersive controller.
type ControllerHandle struct {
	Slot    int
	Hand    Handedness
	Profile string
	Buttons int
	Axes    int
}
