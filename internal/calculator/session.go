// SPDX-License-Identifier: MIT

// Package calculator runs the interactive matrix menu over a text stream.
//
// A Session reads menu choices, sizes and matrix rows line by line from an
// io.Reader and writes prompts and results to an io.Writer. All arithmetic is
// delegated to the matrix package; this package only parses, dispatches and
// prints.
//
// Dialog outline:
//
//	1. Add matrices
//	2. Multiply matrix by a constant
//	3. Multiply matrices
//	4. Transpose matrix
//	5. Calculate a determinant
//	6. Inverse matrix
//	0. Exit
//	Your choice: 3
//	Enter size of first matrix: 2 2
//	Enter first matrix:
//	1 2
//	3 4
//	...
//	The result is:
//	19 22
//	43 50
//
// Malformed input never terminates the session: the reason is printed as
// "Invalid input: <reason>" and the menu is shown again.
//
// Differences from the classic console tool this dialog follows:
//   - prompts name the operand ("Enter size of first matrix:");
//   - matrix rows carry no trailing separator;
//   - the determinant goes through FormatValue like every matrix cell, so it
//     is printed as "-2" where the classic tool printed the raw double "-2.0";
//   - overflowing results print as "Infinity", "-Infinity" or "NaN".
package calculator

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/katalvlaran/matcalc/internal/logging"
	"github.com/katalvlaran/matcalc/matrix"
)

// Menu codes.
const (
	choiceExit = iota
	choiceAdd
	choiceScale
	choiceMul
	choiceTranspose
	choiceDeterminant
	choiceInverse
)

// Operation names used as the "op" log field.
const (
	opAdd         = "add"
	opScale       = "scale"
	opMul         = "mul"
	opTranspose   = "transpose"
	opDeterminant = "determinant"
	opInverse     = "inverse"
)

// User-facing messages.
const (
	msgChoice     = "Your choice: "
	msgResult     = "The result is:"
	msgCannot     = "The operation cannot be performed."
	msgNoInverse  = "This matrix doesn't have an inverse."
	msgWrong      = "Wrong choice!"
	msgInvalid    = "Invalid input: "
	msgConstant   = "Enter constant: "
	msgSizeFormat = "Enter size of%s matrix: "
	msgRowsFormat = "Enter%s matrix:"
)

var mainMenu = []string{
	"1. Add matrices",
	"2. Multiply matrix by a constant",
	"3. Multiply matrices",
	"4. Transpose matrix",
	"5. Calculate a determinant",
	"6. Inverse matrix",
	"0. Exit",
}

var transposeMenu = []string{
	"1. Main diagonal",
	"2. Side diagonal",
	"3. Vertical line",
	"4. Horizontal line",
}

// DeterminantFunc computes the determinant of a square matrix.
type DeterminantFunc func(matrix.Matrix) (float64, error)

// InputError reports malformed user input. Reason is printed to the user.
type InputError struct {
	Reason string
	Err    error
}

func (e *InputError) Error() string {
	if e.Err != nil {
		return "invalid input: " + e.Reason + ": " + e.Err.Error()
	}

	return "invalid input: " + e.Reason
}

func (e *InputError) Unwrap() error { return e.Err }

func inputErrorf(cause error, format string, args ...any) *InputError {
	return &InputError{Reason: fmt.Sprintf(format, args...), Err: cause}
}

// Option configures a Session.
type Option func(*Session)

// WithLogger sets the diagnostics logger (default: no-op).
func WithLogger(l *logging.Logger) Option {
	return func(s *Session) {
		if l != nil {
			s.log = l
		}
	}
}

// WithPrecision sets the number of fraction digits in printed results.
// Panics if p < 0.
func WithPrecision(p int) Option {
	fmtOpt := matrix.WithPrecision(p)
	return func(s *Session) {
		s.precision = p
		s.fmtOpts = []matrix.Option{fmtOpt}
	}
}

// WithDeterminant replaces the determinant algorithm (default: matrix.Determinant).
func WithDeterminant(f DeterminantFunc) Option {
	return func(s *Session) {
		if f != nil {
			s.det = f
		}
	}
}

// Session is one interactive calculator dialog. It is not safe for concurrent use.
type Session struct {
	in        *bufio.Reader
	out       io.Writer
	log       *logging.Logger
	det       DeterminantFunc
	precision int
	fmtOpts   []matrix.Option
	werr      error // first write failure
}

// New creates a Session reading from in and writing to out.
func New(in io.Reader, out io.Writer, opts ...Option) *Session {
	s := &Session{
		in:        bufio.NewReader(in),
		out:       out,
		log:       logging.NewNop(),
		det:       matrix.Determinant,
		precision: matrix.DefaultPrecision,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}

	return s
}

// Run shows the menu until the user picks 0, the input ends or ctx is cancelled.
// Returns nil on a normal exit, ctx.Err() on cancellation, or the first read/write failure.
func (s *Session) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		s.printLines(mainMenu)
		s.printf(msgChoice)
		if s.werr != nil {
			return s.werr
		}

		choice, err := s.readInt("choice")
		if err == nil && choice == choiceExit {
			return nil
		}
		if err == nil {
			err = s.dispatch(choice)
		}

		var ie *InputError
		switch {
		case err == nil:
		case errors.Is(err, io.EOF):
			return s.werr
		case errors.As(err, &ie):
			s.log.Warn("invalid input", zap.Error(err))
			s.println(msgInvalid + ie.Reason)
		default:
			return err
		}
		if s.werr != nil {
			return s.werr
		}
	}
}

func (s *Session) dispatch(choice int) error {
	switch choice {
	case choiceAdd:
		return s.add()
	case choiceScale:
		return s.scale()
	case choiceMul:
		return s.mul()
	case choiceTranspose:
		return s.transpose()
	case choiceDeterminant:
		return s.determinant()
	case choiceInverse:
		return s.inverse()
	default:
		s.log.Debug("unknown menu choice", zap.Int("choice", choice))
		s.println(msgWrong)

		return nil
	}
}

func (s *Session) add() error {
	a, err := s.readMatrix("first")
	if err != nil {
		return err
	}
	b, err := s.readMatrix("second")
	if err != nil {
		return err
	}
	if !matrix.IsAdditionAllowed(a, b) {
		s.cannot(opAdd, nil)
		return nil
	}
	res, err := matrix.Add(a, b)
	if err != nil {
		s.cannot(opAdd, err)
		return nil
	}
	s.printResult(opAdd, res)

	return nil
}

func (s *Session) scale() error {
	m, err := s.readMatrix("")
	if err != nil {
		return err
	}
	s.printf(msgConstant)
	c, err := s.readFloat()
	if err != nil {
		return err
	}
	res, err := matrix.Scale(m, c)
	if err != nil {
		s.cannot(opScale, err)
		return nil
	}
	s.printResult(opScale, res)

	return nil
}

func (s *Session) mul() error {
	a, err := s.readMatrix("first")
	if err != nil {
		return err
	}
	b, err := s.readMatrix("second")
	if err != nil {
		return err
	}
	if !matrix.IsMultiplicationAllowed(a, b) {
		s.cannot(opMul, nil)
		return nil
	}
	res, err := matrix.Mul(a, b)
	if err != nil {
		s.cannot(opMul, err)
		return nil
	}
	s.printResult(opMul, res)

	return nil
}

func (s *Session) transpose() error {
	s.printLines(transposeMenu)
	s.printf(msgChoice)
	code, err := s.readInt("choice")
	if err != nil {
		return err
	}
	strategy := matrix.StrategyByCode(code)
	m, err := s.readMatrix("")
	if err != nil {
		return err
	}
	if err = strategy.Transpose(m); err != nil {
		s.cannot(opTranspose, err)
		return nil
	}
	s.log.Debug("transpose strategy", zap.Stringer("strategy", strategy))
	s.printResult(opTranspose, m)

	return nil
}

func (s *Session) determinant() error {
	m, err := s.readMatrix("")
	if err != nil {
		return err
	}
	if !matrix.IsSquare(m) {
		s.cannot(opDeterminant, nil)
		return nil
	}
	det, err := s.det(m)
	if err != nil {
		s.cannot(opDeterminant, err)
		return nil
	}
	s.logDone(opDeterminant, m)
	s.println(msgResult)
	s.println(matrix.FormatValue(det, s.precision))

	return nil
}

func (s *Session) inverse() error {
	m, err := s.readMatrix("")
	if err != nil {
		return err
	}
	if !matrix.IsSquare(m) {
		s.cannot(opInverse, nil)
		return nil
	}
	inv, ok, err := matrix.Inverse(m)
	if err != nil {
		s.cannot(opInverse, err)
		return nil
	}
	if !ok {
		s.log.Debug("singular matrix", zap.String("op", opInverse), zap.Int("rows", m.Rows()))
		s.println(msgNoInverse)
		return nil
	}
	s.printResult(opInverse, inv)

	return nil
}

// readMatrix prompts for "n m" and then n rows of m numbers.
// An empty name yields the unnamed prompts ("Enter size of matrix: ").
func (s *Session) readMatrix(name string) (*matrix.Dense, error) {
	label := ""
	if name != "" {
		label = " " + name
	}

	s.printf(msgSizeFormat, label)
	line, err := s.readLine()
	if err != nil {
		return nil, err
	}
	fields := strings.Fields(line)
	if len(fields) != 2 {
		return nil, inputErrorf(nil, "size must be two integers, got %q", line)
	}
	rows, err := strconv.Atoi(fields[0])
	if err != nil {
		return nil, inputErrorf(err, "size must be two integers, got %q", line)
	}
	cols, err := strconv.Atoi(fields[1])
	if err != nil {
		return nil, inputErrorf(err, "size must be two integers, got %q", line)
	}
	if rows < 1 || cols < 1 {
		return nil, inputErrorf(matrix.ErrInvalidDimensions, "size must be positive, got %d %d", rows, cols)
	}

	s.println(fmt.Sprintf(msgRowsFormat, label))
	data := make([][]float64, rows)
	for i := range data {
		if line, err = s.readLine(); err != nil {
			return nil, err
		}
		fields = strings.Fields(line)
		if len(fields) != cols {
			return nil, inputErrorf(matrix.ErrInconsistentRowLength,
				"row %d has %d values, want %d", i+1, len(fields), cols)
		}
		row := make([]float64, cols)
		for j, f := range fields {
			if row[j], err = parseFloat(f); err != nil {
				return nil, err
			}
		}
		data[i] = row
	}

	m, err := matrix.NewDenseFromRows(data)
	if err != nil {
		return nil, inputErrorf(err, "matrix values must be finite")
	}

	return m, nil
}

func (s *Session) readInt(what string) (int, error) {
	line, err := s.readLine()
	if err != nil {
		return 0, err
	}
	v, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil {
		return 0, inputErrorf(err, "%s must be an integer, got %q", what, line)
	}

	return v, nil
}

func (s *Session) readFloat() (float64, error) {
	line, err := s.readLine()
	if err != nil {
		return 0, err
	}

	return parseFloat(strings.TrimSpace(line))
}

func parseFloat(f string) (float64, error) {
	v, err := strconv.ParseFloat(f, 64)
	if err != nil {
		return 0, inputErrorf(err, "%q is not a number", f)
	}

	return v, nil
}

// readLine returns the next line without its terminator. A final line without
// '\n' is still returned; io.EOF is reported only when nothing is left.
func (s *Session) readLine() (string, error) {
	line, err := s.in.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", err
	}

	return strings.TrimRight(line, "\r\n"), nil
}

func (s *Session) printResult(op string, m matrix.Matrix) {
	s.logDone(op, m)
	s.println(msgResult)
	s.printf("%s", matrix.Format(m, s.fmtOpts...))
}

func (s *Session) logDone(op string, m matrix.Matrix) {
	s.log.Operation(op).Debug("operation completed",
		zap.Int("rows", m.Rows()),
		zap.Int("cols", m.Cols()),
	)
}

func (s *Session) cannot(op string, err error) {
	if err != nil {
		s.log.Operation(op).Warn("operation failed", zap.Error(err))
	} else {
		s.log.Operation(op).Debug("operation not allowed for operand shapes")
	}
	s.println(msgCannot)
}

func (s *Session) printLines(lines []string) {
	for _, l := range lines {
		s.println(l)
	}
}

func (s *Session) println(line string) {
	s.printf("%s\n", line)
}

func (s *Session) printf(format string, args ...any) {
	if s.werr != nil {
		return
	}
	if _, err := fmt.Fprintf(s.out, format, args...); err != nil {
		s.werr = fmt.Errorf("write output: %w", err)
	}
}
