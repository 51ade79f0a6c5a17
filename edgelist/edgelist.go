// SPDX-License-Identifier: MIT
// Package: lvlheap/edgelist
//
// edgelist.go — parser for the "<source> / <n m> / m×<u v w>" format.

package edgelist

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/lvlheap/shortestpath"
)

// Sentinel errors.
var (
	// ErrMalformed indicates a line that cannot be parsed or describes an
	// invalid vertex, weight or source.
	ErrMalformed = errors.New("edgelist: malformed input")

	// ErrCountMismatch indicates the number of edge lines differs from m.
	ErrCountMismatch = errors.New("edgelist: edge count mismatch")
)

// Input is a parsed edge-list file.
type Input struct {
	Source int
	Graph  *shortestpath.Graph
}

// ParseFile opens path and parses it with Parse.
func ParseFile(path string) (*Input, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("edgelist: open %q: %w", path, err)
	}
	defer f.Close()

	in, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return in, nil
}

// Parse reads one graph from r. Nothing is returned unless every record is
// valid.
func Parse(r io.Reader) (*Input, error) {
	p := &parser{sc: bufio.NewScanner(r)}

	// 1) Source vertex.
	fields, err := p.header(1)
	if err != nil {
		return nil, err
	}
	source, err := p.atoi(fields[0], "source")
	if err != nil {
		return nil, err
	}
	sourceLine := p.line

	// 2) Header: n m.
	if fields, err = p.header(2); err != nil {
		return nil, err
	}
	n, err := p.atoi(fields[0], "vertex count")
	if err != nil {
		return nil, err
	}
	m, err := p.atoi(fields[1], "edge count")
	if err != nil {
		return nil, err
	}
	if m < 0 {
		return nil, p.errorf("edge count %d is negative", m)
	}
	g, err := shortestpath.NewGraph(n)
	if err != nil {
		return nil, p.wrap(err)
	}
	if source < 0 || source >= n {
		return nil, fmt.Errorf("%w: line %d: %w: source=%d vertices=%d",
			ErrMalformed, sourceLine, shortestpath.ErrSourceOutOfRange, source, n)
	}

	// 3) Exactly m edges.
	for i := 0; i < m; i++ {
		if fields, err = p.next(3); err != nil {
			if errors.Is(err, io.EOF) {
				return nil, fmt.Errorf("%w: declared %d edges, found %d", ErrCountMismatch, m, i)
			}
			return nil, err
		}
		u, err := p.atoi(fields[0], "endpoint")
		if err != nil {
			return nil, err
		}
		v, err := p.atoi(fields[1], "endpoint")
		if err != nil {
			return nil, err
		}
		w, err := strconv.ParseInt(fields[2], 10, 64)
		if err != nil {
			return nil, p.errorf("weight %q: %v", fields[2], err)
		}
		if err = g.AddEdge(u, v, w); err != nil {
			return nil, p.wrap(err)
		}
	}

	// 4) Trailing records are an error.
	if _, err = p.next(0); err == nil {
		return nil, fmt.Errorf("%w: declared %d edges, extra record on line %d", ErrCountMismatch, m, p.line)
	} else if !errors.Is(err, io.EOF) {
		return nil, err
	}

	return &Input{Source: source, Graph: g}, nil
}

// parser tracks the scanner and the current 1-based line number.
type parser struct {
	sc   *bufio.Scanner
	line int
}

// next returns the fields of the next non-blank line. want > 0 demands exactly
// that many fields. Returns io.EOF (unwrapped) at end of input.
func (p *parser) next(want int) ([]string, error) {
	for p.sc.Scan() {
		p.line++
		fields := strings.Fields(p.sc.Text())
		if len(fields) == 0 {
			continue
		}
		if want > 0 && len(fields) != want {
			return nil, p.errorf("want %d fields, got %d", want, len(fields))
		}
		return fields, nil
	}
	if err := p.sc.Err(); err != nil {
		return nil, fmt.Errorf("edgelist: read: %w", err)
	}

	return nil, io.EOF
}

// header is next for lines that must exist.
func (p *parser) header(want int) ([]string, error) {
	fields, err := p.next(want)
	if errors.Is(err, io.EOF) {
		return nil, p.errorf("unexpected end of input")
	}

	return fields, err
}

func (p *parser) atoi(s, what string) (int, error) {
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, p.errorf("%s %q: %v", what, s, err)
	}

	return v, nil
}

func (p *parser) errorf(format string, args ...any) error {
	return fmt.Errorf("%w: line %d: %s", ErrMalformed, p.line, fmt.Sprintf(format, args...))
}

func (p *parser) wrap(err error) error {
	return fmt.Errorf("%w: line %d: %w", ErrMalformed, p.line, err)
}
