// Copyright © 2025 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package tree

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Newick reads one or more trees in newick
// (parenthetical)
// format.
//
// The first tree will be named with the given name;
// additional trees will use the name
// with a numeric suffix.
// Internal node labels
// (usually support values)
// are ignored.
// Branches without an explicit length
// are assigned a zero length.
func Newick(r io.Reader, name string) (*Collection, error) {
	name = strings.Join(strings.Fields(name), " ")
	if name == "" {
		name = "tree"
	}

	c := NewCollection()
	s := &scanner{r: bufio.NewReader(r), line: 1}
	for i := 0; ; i++ {
		if err := s.skip(); err != nil {
			if err == io.EOF {
				break
			}
			return nil, err
		}

		tn := name
		if i > 0 {
			tn = fmt.Sprintf("%s.%d", name, i)
		}
		t := New(tn)
		if err := s.readClade(t, -1); err != nil {
			return nil, fmt.Errorf("tree %q: %v", tn, err)
		}

		r, err := s.next()
		if err != nil {
			return nil, fmt.Errorf("tree %q: on line %d: unexpected end of file, expecting ';'", tn, s.line)
		}
		if r != ';' {
			return nil, fmt.Errorf("tree %q: on line %d: got %q, expecting ';'", tn, s.line, r)
		}
		if err := c.Add(t); err != nil {
			return nil, err
		}
	}

	if len(c.Names()) == 0 {
		return nil, fmt.Errorf("newick: no trees on input")
	}
	return c, nil
}

// A scanner reads runes from a newick file,
// skipping blanks and bracketed comments.
type scanner struct {
	r    *bufio.Reader
	line int
}

// ReadClade reads a clade,
// either a terminal
// or a parenthesized descendant list,
// and adds it to the tree as a child of parent.
// The root clade is indicated with parent -1.
func (s *scanner) readClade(t *Tree, parent int) error {
	if err := s.skip(); err != nil {
		return fmt.Errorf("on line %d: unexpected end of file", s.line)
	}

	r, _ := s.peek()
	if r != '(' {
		if parent < 0 {
			return fmt.Errorf("on line %d: got %q, expecting '('", s.line, r)
		}

		// a terminal
		taxon, err := s.readLabel()
		if err != nil {
			return err
		}
		if taxon == "" {
			return fmt.Errorf("on line %d: expecting taxon name", s.line)
		}
		ln, err := s.readLength()
		if err != nil {
			return err
		}
		if _, err := t.Add(parent, ln, taxon); err != nil {
			return fmt.Errorf("on line %d: %v", s.line, err)
		}
		return nil
	}
	s.next()

	id := 0
	if parent >= 0 {
		var err error
		id, err = t.Add(parent, 0, "")
		if err != nil {
			return fmt.Errorf("on line %d: %v", s.line, err)
		}
	}

	for {
		if err := s.readClade(t, id); err != nil {
			return err
		}
		if err := s.skip(); err != nil {
			return fmt.Errorf("on line %d: unexpected end of file", s.line)
		}
		r, _ := s.next()
		if r == ',' {
			continue
		}
		if r == ')' {
			break
		}
		return fmt.Errorf("on line %d: got %q, expecting ',' or ')'", s.line, r)
	}

	// an internal node label,
	// ignored
	if _, err := s.readLabel(); err != nil {
		return err
	}
	ln, err := s.readLength()
	if err != nil {
		return err
	}
	if parent >= 0 {
		t.nodes[id].length = ln
	}
	return nil
}

// ReadLabel reads a node label,
// either quoted or unquoted.
// It returns an empty string if there is no label.
func (s *scanner) readLabel() (string, error) {
	if err := s.skip(); err != nil {
		return "", nil
	}

	r, _ := s.peek()
	if r == '\'' {
		s.next()
		var b strings.Builder
		for {
			r, err := s.next()
			if err != nil {
				return "", fmt.Errorf("on line %d: unclosed quoted label", s.line)
			}
			if r == '\'' {
				if nx, _ := s.peek(); nx == '\'' {
					s.next()
					b.WriteRune('\'')
					continue
				}
				break
			}
			b.WriteRune(r)
		}
		return b.String(), nil
	}

	var b strings.Builder
	for {
		r, err := s.peek()
		if err != nil {
			break
		}
		if strings.ContainsRune("():,;[' \t\r\n", r) {
			break
		}
		s.next()
		b.WriteRune(r)
	}
	return b.String(), nil
}

// ReadLength reads a branch length,
// if defined.
func (s *scanner) readLength() (float64, error) {
	if err := s.skip(); err != nil {
		return 0, nil
	}
	if r, _ := s.peek(); r != ':' {
		return 0, nil
	}
	s.next()
	if err := s.skip(); err != nil {
		return 0, fmt.Errorf("on line %d: expecting branch length", s.line)
	}

	var b strings.Builder
	for {
		r, err := s.peek()
		if err != nil {
			break
		}
		if !strings.ContainsRune("+-.0123456789eE", r) {
			break
		}
		s.next()
		b.WriteRune(r)
	}
	ln, err := strconv.ParseFloat(b.String(), 64)
	if err != nil {
		return 0, fmt.Errorf("on line %d: invalid branch length %q", s.line, b.String())
	}
	return ln, nil
}

func (s *scanner) next() (rune, error) {
	r, _, err := s.r.ReadRune()
	if err != nil {
		return 0, io.EOF
	}
	if r == '\n' {
		s.line++
	}
	return r, nil
}

func (s *scanner) peek() (rune, error) {
	r, _, err := s.r.ReadRune()
	if err != nil {
		return 0, io.EOF
	}
	s.r.UnreadRune()
	return r, nil
}

// Skip moves the scanner to the next significant rune,
// ignoring blanks
// and comments between square brackets.
func (s *scanner) skip() error {
	for {
		r, err := s.peek()
		if err != nil {
			return io.EOF
		}
		if r == '[' {
			for {
				r, err := s.next()
				if err != nil {
					return io.EOF
				}
				if r == ']' {
					break
				}
			}
			continue
		}
		if r != ' ' && r != '\t' && r != '\n' && r != '\r' {
			return nil
		}
		s.next()
	}
}
