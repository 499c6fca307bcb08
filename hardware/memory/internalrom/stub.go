// This file is part of e07stub.
//
// e07stub is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// e07stub is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with e07stub.  If not, see <https://www.gnu.org/licenses/>.

package internalrom

import (
	"github.com/jetsetilly/e07stub/curated"
	"github.com/jetsetilly/e07stub/logger"
)

// Sentinal error patterns.
const (
	UnwritableAddress = "internalrom: address is not writable (%#04x)"
	UnknownVariant    = "internalrom: unknown variant (%s)"
)

// Logger is the logging capability required by the Stub. The logger.Logger
// type satisfies this interface.
type Logger interface {
	Logf(perm logger.Permission, tag string, detail string, args ...any)
}

// EnableSource decides whether the stub drives the bus. The prefs.Bool type
// satisfies this interface.
type EnableSource interface {
	Enabled() bool
}

type alwaysEnabled struct{}

func (alwaysEnabled) Enabled() bool {
	return true
}

// AlwaysEnabled is an EnableSource that is always true. The Device variant is
// usually paired with AlwaysEnabled.
var AlwaysEnabled EnableSource = alwaysEnabled{}

const logTag = "E07-11"

// Stub is the internal ROM as seen by the memory system. It implements the
// bus.Memory interface.
type Stub struct {
	variant Variant
	enable  EnableSource
	log     Logger
	perm    logger.Permission
}

// NewStub is the preferred method of initialisation for the Stub type. If
// enable is nil the stub is always enabled. If log is nil the central logger
// is used.
func NewStub(variant Variant, enable EnableSource, log Logger) *Stub {
	if enable == nil {
		enable = AlwaysEnabled
	}
	if log == nil {
		log = logger.Central()
	}
	return &Stub{
		variant: variant,
		enable:  enable,
		log:     log,
		perm:    logger.Allow,
	}
}

// SetPermission changes the logging permission used for diagnostic output. A
// nil value is the same as logger.Allow.
func (s *Stub) SetPermission(perm logger.Permission) {
	if perm == nil {
		perm = logger.Allow
	}
	s.perm = perm
}

// Variant returns the variant of the stub.
func (s *Stub) Variant() Variant {
	return s.variant
}

// Enabled returns the current value of the enable source.
func (s *Stub) Enabled() bool {
	return s.enable.Enabled()
}

// Read implements the bus.DSPBus interface.
func (s *Stub) Read(address uint16) (uint16, error) {
	data, ev := Lookup(s.variant, address, s.enable.Enabled())
	switch ev {
	case DeadLoop:
		s.log.Logf(s.perm, logTag, "dead loop workaround at PC=%04X", address)
	case Unmapped:
		s.log.Logf(s.perm, logTag, "unmapped internal ROM read at %04X (returning RET)", address)
	}
	return data, nil
}

// Write implements the bus.DSPBus interface. The ROM does not respond to
// writes and the data is dropped.
func (s *Stub) Write(_ uint16, _ uint16) error {
	return nil
}

// Peek implements the bus.DebuggerBus interface. Peeking does not produce
// any log output.
func (s *Stub) Peek(address uint16) (uint16, error) {
	data, _ := Lookup(s.variant, address, s.enable.Enabled())
	return data, nil
}

// Poke implements the bus.DebuggerBus interface. The stub has no backing
// store so poking always fails.
func (s *Stub) Poke(address uint16, _ uint16) error {
	return curated.Errorf(UnwritableAddress, address)
}
