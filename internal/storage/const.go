package storage

import (
	"errors"
)

var (
	ErrNotFound        = errors.New("row not found")
	ErrSettingNotFound = errors.New("setting not found")
)
