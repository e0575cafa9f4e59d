// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package hardware

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"maps"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"

	"github.com/ezrec/quadstack/genome"
	"github.com/ezrec/quadstack/internal"
)

// Macro represents a macro definition in a genome listing.
type Macro struct {
	LineNo int      // Line number of the macro definition.
	Args   []string // Arguments for the macro.
	Lines  []string // Lines of macro text to expand.
}

// Assembler converts genome listings into genomes.
//
// A listing has one instruction name per line, matched without regard to
// case. Text after ';' or '#' is a comment. Directives are:
//
//	.equ NAME VALUE          define an equate
//	.macro NAME ARG...       begin a macro, ending with .endm
//	.repeat COUNT NAME       emit NAME COUNT times
//
// A $(expr) is evaluated at assembly time, with all integer equates
// available as variables.
type Assembler struct {
	Verbose bool     // If set, verbosely logs the assembler actions.
	Library *Library // Instruction library. Defaults to DefaultLibrary().

	Code   genome.Genome       // Generated genome.
	Equate map[string]string   // Map of equates.
	Macro  map[string](*Macro) // Map of macros.

	predefine map[string]string // Predefines
}

// Predefine defines a new equate or redefines an existing equate.
func (asm *Assembler) Predefine(equ string, value string) {
	if asm.predefine == nil {
		asm.predefine = map[string]string{equ: value}
	} else {
		asm.predefine[equ] = value
	}
}

func (asm *Assembler) library() *Library {
	if asm.Library == nil {
		asm.Library = DefaultLibrary()
	}
	return asm.Library
}

// valueOf returns the value of a simple word.
func (asm *Assembler) valueOf(word string) (value int, err error) {
	v64, err := strconv.ParseInt(word, 0, 32)
	if err != nil {
		err = ErrParseNumber(word)
		return
	}

	value = int(v64)
	return
}

// instOf returns the instruction for a name or opcode.
func (asm *Assembler) instOf(word string) (inst genome.Instruction, err error) {
	lib := asm.library()

	for op := range lib.Size() {
		if strings.EqualFold(lib.Name(genome.Instruction(op)), word) {
			inst = genome.Instruction(op)
			return
		}
	}

	value, err := asm.valueOf(word)
	if err != nil || value < 0 || value >= lib.Size() {
		err = ErrInstructionUnknown
		return
	}

	inst = genome.Instruction(value)
	return
}

// parenEval does compile-time $(...) evaluations
func (asm *Assembler) parenEval(expr string) (value int, err error) {
	thread := starlark.Thread{}
	opts := syntax.FileOptions{}
	pred := starlark.StringDict{}
	for key, str := range asm.Equate {
		var equ int
		equ, err = asm.valueOf(str)
		if err != nil {
			// Ignore non-integer equates. They may be instruction names.
			err = nil
			continue
		}
		pred[key] = starlark.MakeInt(equ)
	}
	prog := "rc=" + expr + "\n"
	dict, err := starlark.ExecFileOptions(&opts, &thread, "expr", prog, pred)
	if err != nil {
		return
	}
	st_rc, ok := dict["rc"]
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	st_int, ok := st_rc.(starlark.Int)
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	st_int64, ok := st_int.Int64()
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	value = int(st_int64)
	return
}

var parenRegexp = regexp.MustCompile(`\$\([^\$]*\)`)

// parseLine expands a line of text into words.
func (asm *Assembler) parseLine(line string, lineno int) (words []string, err error) {
	// Set line number.
	asm.Equate["LINENO"] = fmt.Sprintf("%v", lineno)

	// Do $() evaluations
	line = parenRegexp.ReplaceAllStringFunc(line, func(str string) string {
		value, _err := asm.parenEval(str[2 : len(str)-1])
		if _err != nil {
			err = _err
		}
		return fmt.Sprintf("%v", value)
	})
	if err != nil {
		return
	}

	words = strings.Fields(line)
	if len(words) == 0 {
		return
	}

	// .equ CONST VALUE
	if words[0] == ".equ" {
		if len(words) != 3 {
			err = ErrEquateSyntax
			return
		}
		_, ok := asm.Equate[words[1]]
		if ok {
			err = ErrEquateDuplicate
			return
		}
		asm.Equate[words[1]] = words[2]
		words = words[:0]
		return
	}

	for n, word := range words {
		equate, ok := asm.Equate[word]
		if ok {
			words[n] = equate
		}
	}

	return
}

// parseWords evaluates the words of a line.
func (asm *Assembler) parseWords(words []string) (err error) {
	if len(words) == 0 {
		return
	}

	// .macro processing
	macro, ok := asm.Macro[words[0]]
	if ok {
		return asm.expandMacro(words[0], macro, words[1:])
	}

	count := 1
	if words[0] == ".repeat" {
		if len(words) < 3 {
			err = ErrRepeatSyntax
			return
		}
		count, err = asm.valueOf(words[1])
		if err != nil || count < 0 {
			err = ErrRepeatSyntax
			return
		}
		words = words[2:]
	}

	if len(words) > 1 {
		err = ErrInstructionExtra
		return
	}

	inst, err := asm.instOf(words[0])
	if err != nil {
		return
	}

	for range count {
		asm.Code = append(asm.Code, inst)
	}

	return
}

// expandMacro evaluates the lines of a macro, with its arguments bound as
// equates.
func (asm *Assembler) expandMacro(name string, macro *Macro, args []string) (err error) {
	if len(args) != len(macro.Args) {
		err = ErrMacroSyntax
		return
	}

	old_equate := maps.Clone(asm.Equate)
	for n, arg := range macro.Args {
		asm.Equate[arg] = args[n]
	}
	defer func() { asm.Equate = old_equate }()

	for n, line := range macro.Lines {
		lineno := macro.LineNo + n

		var words []string
		words, err = asm.parseLine(line, lineno)
		if err == nil {
			err = asm.parseWords(words)
		}
		if err != nil {
			err = &ErrMacro{Macro: name, Line: lineno, Err: err}
			return
		}
	}

	return
}

// Parse parses an input stream into a genome.
func (asm *Assembler) Parse(input io.Reader) (code genome.Genome, err error) {
	scanner := bufio.NewScanner(input)

	var line string
	var lineno int
	var macro *Macro

	defer func() {
		if err != nil {
			err = &ErrSyntax{LineNo: lineno, Line: line, Err: err}
		}
	}()

	asm.Code = asm.Code[:0]
	if asm.Macro == nil {
		asm.Macro = make(map[string](*Macro))
	}
	clear(asm.Macro)
	asm.Equate = internal.Merge(
		asm.library().Defines(),
		maps.All(asm.predefine),
	)

	for scanner.Scan() {
		text := scanner.Text()
		lineno += 1

		if asm.Verbose {
			log.Printf("%v: %v\n", lineno, text)
		}

		if n := strings.IndexAny(text, ";#"); n >= 0 {
			text = text[:n]
		}
		line = strings.TrimSpace(text)
		words := strings.Fields(line)

		// .macro NAME arg...
		if len(words) > 0 && words[0] == ".macro" {
			if macro != nil {
				err = ErrMacroNesting
				return
			}
			if len(words) < 2 {
				err = ErrMacroSyntax
				return
			}
			_, ok := asm.Macro[words[1]]
			if ok {
				err = ErrMacroDuplicate
				return
			}
			macro = &Macro{
				LineNo: lineno + 1,
				Args:   words[2:],
			}
			asm.Macro[words[1]] = macro
			continue
		}

		if len(words) > 0 && words[0] == ".endm" {
			if macro == nil {
				err = ErrMacroLonelyEndm
				return
			}
			macro = nil
			continue
		}

		if macro != nil {
			macro.Lines = append(macro.Lines, line)
			continue
		}

		words, err = asm.parseLine(line, lineno)
		if err != nil {
			return
		}

		err = asm.parseWords(words)
		if err != nil {
			return
		}
	}

	if err = scanner.Err(); err != nil {
		return
	}

	if macro != nil {
		err = ErrMacroLonely
		return
	}

	code = slices.Clone(asm.Code)

	return
}

// Disassemble writes a genome as a listing, one instruction per line.
func (asm *Assembler) Disassemble(output io.Writer, code genome.Genome) (err error) {
	lib := asm.library()

	w := bufio.NewWriter(output)
	for _, inst := range code {
		_, err = fmt.Fprintln(w, lib.Name(inst))
		if err != nil {
			return
		}
	}

	return w.Flush()
}
