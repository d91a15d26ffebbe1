// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package fortune holds the pool of messages a visitor can draw.
package fortune

import (
	"bufio"
	_ "embed"
	"fmt"
	"io"
	"math/rand/v2"
	"os"
	"strings"
)

// Fallback is returned by Pick when the pool has no messages
const Fallback = "Merry Christmas! (The fortune list is empty.)"

//go:embed fortunes.txt
var defaultList string

// Pool is an immutable ordered list of fortune messages
type Pool struct {
	messages []string
}

// NewPool copies messages into a new pool
func NewPool(messages []string) *Pool {
	return &Pool{messages: append([]string(nil), messages...)}
}

// Default returns the pool built into the binary
func Default() *Pool {
	p, _ := parse(strings.NewReader(defaultList))
	return p
}

// Load reads a fortune file, one message per line.
// An empty path yields the default pool.
func Load(path string) (*Pool, error) {
	if path == "" {
		return Default(), nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open fortune file: %w", err)
	}
	defer f.Close()

	p, err := parse(f)
	if err != nil {
		return nil, fmt.Errorf("failed to read fortune file %s: %w", path, err)
	}
	return p, nil
}

func parse(r io.Reader) (*Pool, error) {
	var messages []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		messages = append(messages, line)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return &Pool{messages: messages}, nil
}

// Pick returns a uniformly random message, or Fallback for an empty pool
func (p *Pool) Pick() string {
	if p == nil || len(p.messages) == 0 {
		return Fallback
	}
	return p.messages[rand.IntN(len(p.messages))]
}

func (p *Pool) Len() int {
	if p == nil {
		return 0
	}
	return len(p.messages)
}

// All returns a copy of the messages in order
func (p *Pool) All() []string {
	if p == nil {
		return nil
	}
	return append([]string(nil), p.messages...)
}

// Contains reports whether msg is one of the pool's messages
func (p *Pool) Contains(msg string) bool {
	for _, m := range p.All() {
		if m == msg {
			return true
		}
	}
	return false
}
