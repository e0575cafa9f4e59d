package emulator

import (
	"errors"

	"github.com/ezrec/quadstack/translate"
)

var f = translate.From

var (
	ErrNotRunning = errors.New(f("organism is dead"))
)
