package core

import (
	"strings"
	"time"
)

// Input is the query-only view of keyboard state handed to entities.
// Key names are case-insensitive ("ArrowLeft" == "arrowleft").
type Input interface {
	IsDown(name string) bool
}

// NoInput is an Input with nothing pressed.
type NoInput struct{}

// IsDown always returns false.
func (NoInput) IsDown(string) bool { return false }

// Keys tracks which named keys are currently held.
//
// Back ends that receive real key-up events call Press and Release.
// Terminals only report presses (plus auto-repeat), so a Keys with a
// non-zero hold window treats a key as held until hold has elapsed since
// its last press.
type Keys struct {
	pressed map[string]time.Time
	hold    time.Duration
	now     func() time.Time
}

// NewKeys creates a key tracker. A zero hold means keys stay down until
// Release is called.
func NewKeys(hold time.Duration) *Keys {
	return &Keys{
		pressed: make(map[string]time.Time),
		hold:    hold,
		now:     time.Now,
	}
}

// SetClock replaces the time source used for the hold window.
func (k *Keys) SetClock(now func() time.Time) {
	k.now = now
}

// Press marks a key as held.
func (k *Keys) Press(name string) {
	k.pressed[strings.ToLower(name)] = k.now()
}

// Release marks a key as no longer held.
func (k *Keys) Release(name string) {
	delete(k.pressed, strings.ToLower(name))
}

// Reset releases every key.
func (k *Keys) Reset() {
	clear(k.pressed)
}

// IsDown reports whether the named key is held.
func (k *Keys) IsDown(name string) bool {
	at, ok := k.pressed[strings.ToLower(name)]
	if !ok {
		return false
	}
	if k.hold > 0 && k.now().Sub(at) > k.hold {
		return false
	}
	return true
}

// AnyDown reports whether any of the named keys is held.
func AnyDown(in Input, names ...string) bool {
	if in == nil {
		return false
	}
	for _, n := range names {
		if in.IsDown(n) {
			return true
		}
	}
	return false
}
