package core

import (
	"errors"
)

var (
	ErrNotInitialized = errors.New("system used before initialization")
	ErrWatcherClosed  = errors.New("asset watcher already closed")
	ErrUnknown        = errors.New("unknown")
)
