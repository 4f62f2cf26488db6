// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package queue

import (
	"errors"
	"fmt"

	"code.hybscloud.com/iox"
)

// ErrFull indicates an enqueue could not proceed because the queue was
// observed full. The item passed to the failed call is left unchanged.
//
// ErrFull wraps [iox.ErrWouldBlock]: [iox.IsWouldBlock] still classifies
// it as a would-block condition for ecosystem consistency, while [IsFull]
// distinguishes it from [ErrEmpty] for callers that need to tell
// backpressure apart from starvation.
//
// ErrFull is a control flow signal, not a failure: callers retry with
// their own backoff policy rather than propagating it.
var ErrFull = fmt.Errorf("queue: full: %w", iox.ErrWouldBlock)

// ErrEmpty indicates a dequeue could not proceed because the queue was
// observed empty. The destination passed to the failed call is left
// unchanged.
//
// ErrEmpty wraps [iox.ErrWouldBlock] the same way [ErrFull] does.
//
// ErrEmpty is a control flow signal, not a failure.
var ErrEmpty = fmt.Errorf("queue: empty: %w", iox.ErrWouldBlock)

// IsFull reports whether err is (or wraps) ErrFull.
func IsFull(err error) bool {
	return errors.Is(err, ErrFull)
}

// IsEmpty reports whether err is (or wraps) ErrEmpty.
func IsEmpty(err error) bool {
	return errors.Is(err, ErrEmpty)
}

// IsWouldBlock reports whether err is a would-block control flow signal
// ([ErrFull] or [ErrEmpty]), delegating to [iox.IsWouldBlock] so callers
// that don't need to distinguish full from empty can use the ecosystem's
// common retry classification.
func IsWouldBlock(err error) bool {
	return iox.IsWouldBlock(err)
}
