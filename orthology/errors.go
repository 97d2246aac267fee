// SPDX-License-Identifier: MIT

package orthology

import "errors"

// ErrNoLoader indicates that no Loader is configured for a species pair.
var ErrNoLoader = errors.New("orthology: no loader for species pair")
