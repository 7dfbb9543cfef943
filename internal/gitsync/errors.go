package gitsync

import "errors"

// ErrLocked is reported when another process holds the game's repository
// lock.
var ErrLocked = errors.New("repository is locked by another sync")
