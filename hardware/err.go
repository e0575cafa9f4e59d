package hardware

import (
	"errors"

	"github.com/ezrec/quadstack/translate"
)

var f = translate.From

var (
	// Hardware errors
	ErrGenomeEmpty    = errors.New(f("genome empty"))
	ErrThreadCapacity = errors.New(f("thread capacity invalid"))

	// Assembler errors
	ErrEquateSyntax       = errors.New(f(".equ syntax"))
	ErrEquateDuplicate    = errors.New(f(".equ duplicated"))
	ErrMacroSyntax        = errors.New(f(".macro syntax"))
	ErrMacroNesting       = errors.New(f(".macro in .macro prohibited"))
	ErrMacroDuplicate     = errors.New(f(".macro duplicated"))
	ErrMacroLonely        = errors.New(f(".macro without .endm"))
	ErrMacroLonelyEndm    = errors.New(f(".endm without .macro"))
	ErrRepeatSyntax       = errors.New(f(".repeat syntax"))
	ErrInstructionUnknown = errors.New(f("instruction unknown"))
	ErrInstructionExtra   = errors.New(f("excessive arguments"))
)

type ErrSyntax struct {
	LineNo int
	Line   string
	Err    error
}

func (err ErrSyntax) Error() string {
	return f("line %d '%v' %v", err.LineNo, err.Line, err.Err)
}

func (err ErrSyntax) Unwrap() error {
	return err.Err
}

type ErrParseNumber string

func (err ErrParseNumber) Error() string {
	return f("'%v' is not a number", string(err))
}

type ErrParseExpression string

func (err ErrParseExpression) Error() string {
	return f("$(%v) is not a valid expression", string(err))
}

type ErrMacro struct {
	Macro string
	Line  int
	Err   error
}

func (err ErrMacro) Error() string {
	return f("macro %v line %v %v", err.Macro, err.Line, err.Err.Error())
}

func (err ErrMacro) Unwrap() error {
	return err.Err
}

type ErrDivideMethod string

func (err ErrDivideMethod) Error() string {
	return f("'%v' is not a divide method", string(err))
}
