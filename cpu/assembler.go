// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package cpu

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
)

// Macro represents a macro definition in the assembly language.
type Macro struct {
	LineNo int      // Line number of the macro definition.
	Args   []string // Arguments for the macro.
	Lines  []string // Lines of macro text to expand.
}

// Predefined system equates
var sysEquate = map[string]string{
	"LINENO": "0",
}

// Assembler is a single pass macro assembler for the 8080.
//
// Source lines have the form:
//
//	[LABEL:]... MNEMONIC [OPERAND[, OPERAND]] [; comment]
//
// Label references are resolved after the last line is read, so
// labels may be used before they are defined.
type Assembler struct {
	Verbose bool     // If set, verbosely logs the assembler actions.
	Opcode  []Opcode // List of generated opcodes.

	predefine map[string]string   // Predefines
	Label     map[string]int      // Map of labels to addresses.
	Equate    map[string]string   // Map of equates.
	Macro     map[string](*Macro) // Map of macros.

	pc        int // Address of the next assembled byte.
	expansion int // Count of macro expansions, for local labels.
}

// Predefine defines a new equate or redefines an existing equate.
func (asm *Assembler) Predefine(equ string, value string) {
	if asm.predefine == nil {
		asm.predefine = map[string]string{equ: value}
	} else {
		asm.predefine[equ] = value
	}
}

// opcodeMap maps a mnemonic and its register operands to an opcode byte.
var opcodeMap = func() (m map[string]uint8) {
	m = make(map[string]uint8, len(InstructionSet))
	for n := range InstructionSet {
		inst := &InstructionSet[n]
		if inst.Kind == OP_RESERVED {
			continue
		}
		m[opcodeKey(inst.Mnemonic, inst.Operands())] = uint8(n)
	}
	return
}()

func opcodeKey(mnemonic string, regs []string) string {
	return strings.Join(append([]string{mnemonic}, regs...), " ")
}

var labelRegexp = regexp.MustCompile(`^[A-Za-z_.][A-Za-z0-9_.]*$`)
var hexSuffixRegexp = regexp.MustCompile(`^-?[0-9][0-9A-Fa-f]*[hH]$`)

// valueOf returns the value of a simple word.
func (asm *Assembler) valueOf(word string) (value int, err error) {
	if len(word) == 0 {
		err = ErrParseNumber(word)
		return
	}

	var v64 int64
	if hexSuffixRegexp.MatchString(word) {
		v64, err = strconv.ParseInt(word[:len(word)-1], 16, 32)
	} else {
		v64, err = strconv.ParseInt(word, 0, 32)
	}
	if err != nil {
		err = ErrParseNumber(word)
		return
	}

	value = int(v64)

	return
}

// resolve evaluates an operand of size bytes. A word that names a label
// which is not yet defined is returned as a link to resolve later.
func (asm *Assembler) resolve(word string, size int) (value int, label string, err error) {
	value, err = asm.valueOf(word)
	if err != nil {
		if !labelRegexp.MatchString(word) {
			err = ErrParseValue(word)
			return
		}
		err = nil
		addr, ok := asm.Label[word]
		if !ok {
			label = word
			return
		}
		value = addr
	}

	err = checkRange(value, size)

	return
}

// checkRange verifies that value fits in size bytes, signed or unsigned.
func checkRange(value int, size int) (err error) {
	limit := 1 << (8 * size)
	if value >= limit || value < -(limit/2) {
		err = ErrValueRange
	}
	return
}

// parenEval does compile-time $(...) evaluations
func (asm *Assembler) parenEval(expr string) (value int, err error) {
	thread := starlark.Thread{}
	opts := syntax.FileOptions{}
	pred := starlark.StringDict{}
	for key, str := range asm.Equate {
		var ival int
		ival, err = asm.valueOf(str)
		if err != nil {
			// Ignore non-integer equates. They may be registers
			// or something else.
			continue
		}
		pred[key] = starlark.MakeInt(ival)
	}
	err = nil
	for key, addr := range asm.Label {
		if labelRegexp.MatchString(key) && !strings.Contains(key, ".") {
			pred[key] = starlark.MakeInt(addr)
		}
	}
	prog := "rc=" + expr + "\n"
	dict, err := starlark.ExecFileOptions(&opts, &thread, "expr", prog, pred)
	if err != nil {
		err = ErrParseExpression(expr)
		return
	}
	st_int, ok := dict["rc"].(starlark.Int)
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

// stripComment removes a trailing ';' comment, ignoring quoted semicolons.
func stripComment(text string) string {
	quoted := false
	for n, ch := range text {
		switch ch {
		case '\'':
			quoted = !quoted
		case ';':
			if !quoted {
				return text[:n]
			}
		}
	}
	return text
}

// splitWords splits a line into the mnemonic followed by its comma
// separated operands.
func splitWords(line string) (words []string) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return
	}

	words = append(words, fields[0])
	for _, op := range strings.Split(strings.Join(fields[1:], " "), ",") {
		op = strings.TrimSpace(op)
		if len(op) > 0 {
			words = append(words, op)
		}
	}

	return
}

// parseLine parses a single line into words.
func (asm *Assembler) parseLine(line string, lineno int) (words []string, err error) {
	// Set line number.
	asm.Equate["LINENO"] = fmt.Sprintf("%v", lineno)

	// Do 'x' evaluations
	re := regexp.MustCompile(`'\\?[^']'`)
	line = re.ReplaceAllStringFunc(line, func(word string) string {
		str := word[1 : len(word)-1]
		if str[0] == '\\' {
			str = str[1:]
			switch str {
			case "\\":
				str = "\\"
			case "n":
				str = "\n"
			case "r":
				str = "\r"
			case "t":
				str = "\t"
			case "0":
				str = "\000"
			default:
				return word
			}
		} else if len(str) != 1 {
			return word
		}
		return fmt.Sprintf("%v", str[0])
	})

	// Do $() evaluations
	re = regexp.MustCompile(`\$\([^\$]*\)`)
	line = re.ReplaceAllStringFunc(line, func(str string) string {
		value, _err := asm.parenEval(str[2 : len(str)-1])
		if _err != nil {
			err = _err
		}
		return fmt.Sprintf("%v", value)
	})
	if err != nil {
		return
	}

	fields := strings.Fields(line)
	if len(fields) == 0 {
		return
	}

	// .equ CONST VALUE
	if strings.ToLower(fields[0]) == ".equ" {
		if len(fields) != 3 {
			err = ErrEquateSyntax
			return
		}
		_, ok := asm.Equate[fields[1]]
		if ok {
			err = ErrEquateDuplicate
			return
		}
		asm.Equate[fields[1]] = fields[2]
		return
	}

	for len(fields) > 0 && strings.HasSuffix(fields[0], ":") {
		label := fields[0][:len(fields[0])-1]
		if !labelRegexp.MatchString(label) {
			err = ErrLabelInvalid
			return
		}
		_, ok := asm.Label[label]
		if ok {
			err = ErrLabelDuplicate
			return
		}

		if asm.Label == nil {
			asm.Label = make(map[string]int, 16)
		}
		asm.Label[label] = asm.pc
		fields = fields[1:]
	}

	words = splitWords(strings.Join(fields, " "))
	if len(words) == 0 {
		return
	}

	for n, word := range words {
		// Check for equate next
		equate, ok := asm.Equate[word]
		if ok {
			words[n] = equate
		}
	}

	// .macro processing
	macro, ok := asm.Macro[words[0]]
	if ok {
		name := words[0]

		args := words[1:]
		if len(args) != len(macro.Args) {
			err = ErrMacroSyntax
			return
		}
		// Turn args into equs
		old_equate := maps.Clone(asm.Equate)
		for n, arg := range macro.Args {
			asm.Equate[arg] = args[n]
		}
		defer func() { asm.Equate = old_equate }()

		asm.expansion++
		local := fmt.Sprintf("%v_%v_", name, asm.expansion)

		for n, line := range macro.Lines {
			lineno := macro.LineNo + n

			line = strings.ReplaceAll(line, "@", local)
			words, err = asm.parseLine(line, lineno)
			if err != nil {
				err = &ErrMacro{Macro: name, Line: lineno, Err: err}
				return
			}

			err = asm.parseWords(words, lineno)
			if err != nil {
				err = &ErrMacro{Macro: name, Line: lineno, Err: err}
				return
			}
		}

		words = nil
		return
	}

	return
}

// Parse parses an input stream into a Program containing opcodes.
func (asm *Assembler) Parse(input io.Reader) (prog *Program, err error) {

	scanner := bufio.NewScanner(input)

	var line string
	var lineno int
	var macro *Macro

	defer func() {
		if err != nil {
			err = &ErrSyntax{LineNo: lineno, Line: line, Err: err}
		}
	}()

	clear(asm.Label)
	asm.Opcode = asm.Opcode[:0]
	asm.pc = 0
	asm.expansion = 0
	if asm.Macro == nil {
		asm.Macro = make(map[string](*Macro))
	}
	clear(asm.Macro)
	asm.Equate = maps.Clone(sysEquate)
	for attr, val := range asm.predefine {
		asm.Equate[attr] = val
	}

	for scanner.Scan() {
		text := scanner.Text()
		lineno += 1

		if asm.Verbose {
			log.Printf("%v: %v\n", lineno, text)
		}

		line = strings.TrimSpace(stripComment(text))
		words := strings.Fields(line)

		// .macro NAME arg...
		if len(words) > 0 && strings.ToLower(words[0]) == ".macro" {
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
			}
			if len(words) > 2 {
				macro.Args = splitWords(strings.Join(words[1:], " "))[1:]
			}
			asm.Macro[words[1]] = macro
			continue
		}

		if len(words) > 0 && strings.ToLower(words[0]) == ".endm" {
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

		err = asm.parseWords(words, lineno)
		if err != nil {
			return
		}
	}

	err = scanner.Err()
	if err != nil {
		return
	}

	if macro != nil {
		err = ErrMacroLonely
		return
	}

	// Final linking of labels.
	for n := range asm.Opcode {
		op := &asm.Opcode[n]

		for _, link := range op.Links {
			addr, ok := asm.Label[link.Label]
			if !ok {
				lineno, line = op.LineNo, strings.Join(op.Words, " ")
				err = ErrLabelMissing(link.Label)
				return
			}
			err = checkRange(addr, link.Size)
			if err != nil {
				lineno, line = op.LineNo, strings.Join(op.Words, " ")
				return
			}
			encode(op.Bytes[link.Offset:], addr, link.Size)
		}
	}

	prog = &Program{
		Opcodes: slices.Clone(asm.Opcode),
	}

	return
}

// encode a little-endian value of size bytes.
func encode(out []byte, value int, size int) {
	for n := range size {
		out[n] = uint8(value >> (8 * n))
	}
}

// emit appends an opcode at the current address.
func (asm *Assembler) emit(op Opcode) (err error) {
	if asm.pc+len(op.Bytes) > MEMORY_SIZE {
		err = ErrOriginRange
		return
	}

	op.Pc = Address(asm.pc)
	asm.Opcode = append(asm.Opcode, op)
	asm.pc += len(op.Bytes)

	return
}

// data encodes a list of values, size bytes each.
func (asm *Assembler) data(words []string, size int) (bytes []byte, links []Link, err error) {
	if len(words) == 0 {
		err = ErrOpcodeValueMissing
		return
	}

	bytes = make([]byte, len(words)*size)
	for n, word := range words {
		var value int
		var label string
		value, label, err = asm.resolve(word, size)
		if err != nil {
			return
		}
		if len(label) != 0 {
			links = append(links, Link{Offset: n * size, Size: size, Label: label})
			continue
		}
		encode(bytes[n*size:], value, size)
	}

	return
}

// instruction encodes a machine instruction.
func (asm *Assembler) instruction(words []string) (bytes []byte, links []Link, err error) {
	mnemonic := strings.ToUpper(words[0])
	ops := words[1:]
	regs := make([]string, len(ops))
	for n, op := range ops {
		regs[n] = strings.ToUpper(op)
	}

	code, ok := opcodeMap[opcodeKey(mnemonic, regs)]
	if ok && InstructionSet[code].Size > 1 {
		err = ErrOpcodeValueMissing
		return
	}
	if !ok && len(ops) > 0 {
		code, ok = opcodeMap[opcodeKey(mnemonic, regs[:len(regs)-1])]
		if ok && InstructionSet[code].Size == 1 {
			err = ErrOpcodeExtraArgs
			return
		}
	}
	if !ok {
		err = ErrOpcodeInvalid
		return
	}

	inst := &InstructionSet[code]
	bytes = []byte{code}
	if inst.Size == 1 {
		return
	}

	var data []byte
	data, links, err = asm.data(ops[len(ops)-1:], inst.Size-1)
	if err != nil {
		return
	}
	for n := range links {
		links[n].Offset += 1
	}
	bytes = append(bytes, data...)

	return
}

// parseWords evaluates the words in a line of assembly text.
func (asm *Assembler) parseWords(words []string, lineno int) (err error) {
	// no-op
	if len(words) == 0 {
		return
	}

	op := Opcode{LineNo: lineno, Words: words}

	switch strings.ToLower(words[0]) {
	case ".org":
		if len(words) < 2 {
			err = ErrOpcodeValueMissing
			return
		}
		if len(words) > 2 {
			err = ErrOpcodeExtraArgs
			return
		}
		var value int
		value, err = asm.valueOf(words[1])
		if err != nil {
			return
		}
		if value < 0 || value >= MEMORY_SIZE {
			err = ErrOriginRange
			return
		}
		if len(asm.Opcode) != 0 && value < asm.pc {
			err = ErrOriginBackwards
			return
		}
		asm.pc = value
		return
	case ".db":
		op.Bytes, op.Links, err = asm.data(words[1:], 1)
	case ".dw":
		op.Bytes, op.Links, err = asm.data(words[1:], 2)
	case ".ds":
		if len(words) < 2 {
			err = ErrOpcodeValueMissing
			return
		}
		if len(words) > 2 {
			err = ErrOpcodeExtraArgs
			return
		}
		var count int
		count, err = asm.valueOf(words[1])
		if err != nil {
			return
		}
		if count < 0 || count > MEMORY_SIZE {
			err = ErrValueRange
			return
		}
		op.Bytes = make([]byte, count)
	default:
		op.Bytes, op.Links, err = asm.instruction(words)
	}
	if err != nil {
		return
	}

	err = asm.emit(op)

	return
}
