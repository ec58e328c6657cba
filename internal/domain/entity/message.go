package entity

// MessageType identifies a runtime message exchanged between open surfaces.
type MessageType string

const (
	MessageThemeChanged MessageType = "themeChanged"
)

// RuntimeMessage is sent from the settings surface to the panel.
type RuntimeMessage struct {
	Type  MessageType `json:"type"`
	Theme Theme       `json:"theme,omitempty"`
}

// NewThemeChangedMessage builds the message announcing a theme switch.
func NewThemeChangedMessage(theme Theme) RuntimeMessage {
	return RuntimeMessage{Type: MessageThemeChanged, Theme: theme}
}
