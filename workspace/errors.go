// SPDX-License-Identifier: MIT

package workspace

import "errors"

// ErrNoDatabase indicates an operation that needs PPIN_ORTHOLOG_DB.
var ErrNoDatabase = errors.New("workspace: no ortholog database configured")
