// SPDX-License-Identifier: MIT

package invsqrt

import "errors"

// ErrDivergence is returned when the residual ‖P − I‖_F/√n becomes NaN or
// Inf: the iteration has left its basin of attraction and no amount of
// further work can recover it. This is distinct from running out of
// iterations, which is not an error.
var ErrDivergence = errors.New("invsqrt: iteration diverged (non-finite residual)")
