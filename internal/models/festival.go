package models

// FestivalType distinguishes fasting days from celebrations
type FestivalType string

const (
	TypeVrat  FestivalType = "vrat"
	TypeUtsav FestivalType = "utsav"
)

// FestivalEvent is one entry of the predefined 2026 festival catalog. The
// catalog is compiled into the binary and never written at runtime.
type FestivalEvent struct {
	ID          string       `json:"id"`
	Title       string       `json:"title"`
	Date        string       `json:"date"` // YYYY-MM-DD
	Type        FestivalType `json:"type"`
	Description string       `json:"description,omitempty"`
}
