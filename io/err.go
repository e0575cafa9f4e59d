package io

import (
	"errors"

	"github.com/ezrec/quadstack/translate"
)

var f = translate.From

var (
	// Channel errors
	ErrChannelFull     = errors.New(f("channel full"))
	ErrChannelReadOnly = errors.New(f("channel read only"))
)
