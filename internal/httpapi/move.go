package httpapi

import (
	"bytes"
	"encoding/json"
	"errors"
	"math"
	"strconv"

	"github.com/1broseidon/wmhttp/internal/platform"
)

// errIDNotNumber rejects an id that is present but not a JSON number.
var errIDNotNumber = errors.New("id is not a JSON number")

// moveWindowBody is the wire form of a move-window request. The id stays raw
// so that numbers no window can carry are told apart from non-numbers.
type moveWindowBody struct {
	ID       json.RawMessage `json:"id"`
	Above    bool            `json:"above"`
	Minimize bool            `json:"minimize"`
	Stick    bool            `json:"stick"`
	Raise    bool            `json:"raise"`
	Focus    bool            `json:"focus"`
	X        int             `json:"x"`
	Y        int             `json:"y"`
	Width    int             `json:"width"`
	Height   int             `json:"height"`
}

// command returns the MoveCommand the body names. ok is false when the id is
// a number that cannot match any window: absent, fractional, negative, or
// beyond 32 bits. Integral spellings such as 100.0 and 1e2 match window 100.
func (b moveWindowBody) command() (cmd platform.MoveCommand, ok bool, err error) {
	id, ok, err := windowIDFromJSON(b.ID)
	if err != nil || !ok {
		return platform.MoveCommand{}, false, err
	}
	return platform.MoveCommand{
		ID:       id,
		Above:    b.Above,
		Minimize: b.Minimize,
		Stick:    b.Stick,
		Raise:    b.Raise,
		Focus:    b.Focus,
		X:        b.X,
		Y:        b.Y,
		Width:    b.Width,
		Height:   b.Height,
	}, true, nil
}

func windowIDFromJSON(raw json.RawMessage) (platform.WindowID, bool, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return 0, false, nil
	}
	if c := raw[0]; c != '-' && (c < '0' || c > '9') {
		return 0, false, errIDNotNumber
	}

	f, err := strconv.ParseFloat(string(raw), 64)
	if err != nil {
		// Out of float64 range; certainly no window has it.
		return 0, false, nil
	}
	if f != math.Trunc(f) || f < 0 || f > math.MaxUint32 {
		return 0, false, nil
	}
	return platform.WindowID(f), true, nil
}
