// Copyright (c) 2025 Lu-Luou
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package clock abstracts the source of the current time. The fare
// rules depend on the weekday, the hour of the day, and the spacing
// between trips, so the engine never reads the ambient wall clock
// directly: it receives a Clock capability instead. Production code
// injects the System clock while the tests (and the demo simulation)
// inject a Manual clock which only advances when told to.
package clock

import "time"

// Clock supplies the current time.
type Clock interface {
	// Now returns the current instant.
	Now() time.Time
}

// System is the real wall clock. Its Now method returns the actual
// current instant on every call.
type System struct{}

// Now returns the current wall-clock time.
func (System) Now() time.Time {
	return time.Now()
}
