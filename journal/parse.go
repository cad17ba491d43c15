// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package journal

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/bitmark-inc/avltree/fault"
)

// Kind - the type of an operation
type Kind int

// operation kinds
const (
	Insert Kind = iota
	Delete
	Find
)

var kindNames = map[string]Kind{
	"insert": Insert,
	"delete": Delete,
	"find":   Find,
}

// String - name of the kind as written in a journal
func (k Kind) String() string {
	switch k {
	case Insert:
		return "insert"
	case Delete:
		return "delete"
	case Find:
		return "find"
	default:
		return "unknown"
	}
}

// Operation - one parsed journal line
type Operation struct {
	Line int
	Kind Kind
	Key  int
}

// LineError - a fault detected on a specific line
type LineError struct {
	Line int
	Err  error
}

func (e *LineError) Error() string {
	return fmt.Sprintf("line %d: %s", e.Line, e.Err)
}

// Unwrap - the underlying fault
func (e *LineError) Unwrap() error {
	return e.Err
}

// ReadFile - parse a journal file
func ReadFile(fileName string) ([]Operation, error) {
	f, err := os.Open(fileName)
	if os.IsNotExist(err) {
		return nil, fault.ErrNotFoundJournal
	}
	if nil != err {
		return nil, err
	}
	defer f.Close()

	return Parse(f)
}

// Parse - read all operations, stopping at the first bad line
func Parse(r io.Reader) ([]Operation, error) {
	ops := make([]Operation, 0, 64)

	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line += 1

		text := scanner.Text()
		if i := strings.IndexByte(text, '#'); i >= 0 {
			text = text[:i]
		}
		fields := strings.Fields(text)
		if 0 == len(fields) {
			continue
		}

		kind, ok := kindNames[strings.ToLower(fields[0])]
		if !ok || 2 != len(fields) {
			return nil, &LineError{Line: line, Err: fault.ErrInvalidOperation}
		}
		key, err := strconv.Atoi(fields[1])
		if nil != err {
			return nil, &LineError{Line: line, Err: fault.ErrInvalidKey}
		}

		ops = append(ops, Operation{
			Line: line,
			Kind: kind,
			Key:  key,
		})
	}
	if err := scanner.Err(); nil != err {
		return nil, err
	}

	return ops, nil
}
