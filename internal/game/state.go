package game

import "encoding/json"

// Player identifies whose turn it is.
type Player int

const (
	PlayerOwner Player = iota
	PlayerCat
)

func (p Player) String() string {
	switch p {
	case PlayerCat:
		return "cat"
	default:
		return "owner"
	}
}

// MarshalJSON serializes Player as a string.
func (p Player) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.String())
}

// UnmarshalJSON deserializes Player from a string.
func (p *Player) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	switch s {
	case "cat":
		*p = PlayerCat
	default:
		*p = PlayerOwner
	}
	return nil
}

type Winner int

const (
	WinNone Winner = iota
	WinCat
	WinOwner
)

func (w Winner) String() string {
	switch w {
	case WinCat:
		return "cat"
	case WinOwner:
		return "owner"
	default:
		return "none"
	}
}

// MarshalJSON serializes Winner as a string.
func (w Winner) MarshalJSON() ([]byte, error) {
	return json.Marshal(w.String())
}

// UnmarshalJSON deserializes Winner from a string.
func (w *Winner) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	switch s {
	case "cat":
		*w = WinCat
	case "owner":
		*w = WinOwner
	default:
		*w = WinNone
	}
	return nil
}

// Facing is the direction the cat sprite faces after a move.
type Facing int

const (
	FacingNone Facing = iota
	FacingLeft
	FacingRight
)

func (f Facing) String() string {
	switch f {
	case FacingLeft:
		return "left"
	case FacingRight:
		return "right"
	default:
		return ""
	}
}

// MarshalJSON serializes Facing as a string.
func (f Facing) MarshalJSON() ([]byte, error) {
	return json.Marshal(f.String())
}

// UnmarshalJSON deserializes Facing from a string.
func (f *Facing) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	switch s {
	case "left":
		*f = FacingLeft
	case "right":
		*f = FacingRight
	default:
		*f = FacingNone
	}
	return nil
}
