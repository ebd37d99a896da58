// Copyright 2020-2025 Buf Technologies, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package pretty

// buffer is the output accumulator for a single [Print] call.
//
// It holds up to two slots: the committed output, and a speculative fork
// created at the start of a flex group attempt. Writes land in the
// speculative slot while one exists.
//
// The buffer never rolls back on its own. The interpreter discards a failed
// speculation by restoring a buffer value saved before [buffer.branch] was
// called, which reverts to the committed slot as it was at that point.
type buffer[B any] struct {
	committed   B
	speculative B
	branched    bool
}

func newBuffer[B any](empty B) buffer[B] {
	return buffer[B]{committed: empty}
}

// modify applies f to the active slot.
func (b *buffer[B]) modify(f func(B) B) {
	if b.branched {
		b.speculative = f(b.speculative)
	} else {
		b.committed = f(b.committed)
	}
}

// branch forks the committed value into a new speculative slot. Writes
// diverge from here until commit, or until the interpreter restores an
// earlier buffer value.
//
// The interpreter keeps at most one speculation alive, so branch is never
// called while already branched.
func (b *buffer[B]) branch() {
	b.speculative = b.committed
	b.branched = true
}

// commit accepts the speculative slot as committed and drops the fork.
func (b *buffer[B]) commit() {
	if !b.branched {
		return
	}
	b.committed = b.speculative
	b.branched = false
	var zero B
	b.speculative = zero
}

// get snapshots the active slot.
func (b *buffer[B]) get() B {
	if b.branched {
		return b.speculative
	}
	return b.committed
}
