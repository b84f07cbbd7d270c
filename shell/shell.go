// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package shell

import (
	"bufio"
	"fmt"
	"io"
	"iter"
	"strconv"
	"strings"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/redblack/counter"
	"github.com/bitmark-inc/redblack/fault"
)

//go:generate mockgen -source=shell.go -destination=mocks/tree.go -package=mocks

// Tree - the operations the shell drives
type Tree interface {
	Insert(key int) bool
	Remove(key int) bool
	Contains(key int) bool
	Verify() bool
	Count() int
	All() iter.Seq[int]
	Print(w io.Writer) int
}

// Shell - state of one interpreter session
type Shell struct {
	log    *logger.L
	tree   Tree
	out    io.Writer
	prompt string
	ops    counter.Operations
	lines  counter.Counter
	errors counter.Counter
}

type handler func(s *Shell, args []string) error

type command struct {
	short   string
	long    string
	hasKey  bool
	usage   string
	handler handler
}

// filled by init to break the help -> commands reference loop
var commands []command

func init() {
	commands = []command{
		{"I", "insert", true, "add a key", doInsert},
		{"D", "delete", true, "remove a key", doDelete},
		{"Q", "query", true, "test if a key is present", doQuery},
		{"P", "print", false, "draw the tree", doPrint},
		{"C", "check", false, "verify the tree", doCheck},
		{"L", "list", false, "list keys in ascending order", doList},
		{"H", "help", false, "show this list", doHelp},
		{"X", "exit", false, "leave the shell", nil},
	}
}

// New - create a shell writing its responses to out, an empty
// prompt suppresses prompting
func New(log *logger.L, tree Tree, out io.Writer, prompt string) *Shell {
	return &Shell{
		log:    log,
		tree:   tree,
		out:    out,
		prompt: prompt,
	}
}

// Run - execute commands from in until exit or end of input
//
// a damaged tree ends the session and its fault.ProcessError is
// returned
func (s *Shell) Run(in io.Reader) error {
	scanner := bufio.NewScanner(in)
	for {
		if "" != s.prompt {
			fmt.Fprint(s.out, s.prompt)
		}
		if !scanner.Scan() {
			break
		}
		quit, err := s.Execute(scanner.Text())
		if nil != err {
			s.errors.Increment()
			s.log.Warnf("line: %d  error: %s", s.lines.Uint64(), err)
			fmt.Fprintf(s.out, "error: %s\n", err)
			if fault.IsErrProcess(err) {
				return err
			}
		}
		if quit {
			return nil
		}
	}
	if "" != s.prompt {
		fmt.Fprintln(s.out)
	}
	return scanner.Err()
}

// Execute - run a single command line
// returns true when the line asks to leave the shell or the tree
// reported its own corruption
func (s *Shell) Execute(line string) (quit bool, err error) {
	defer func() {
		if r := recover(); nil != r {
			err = fault.Recovered(r)
			if nil == err {
				panic(r)
			}
			s.log.Criticalf("line: %d  tree damaged: %s", s.lines.Uint64(), err)
			quit = true
		}
	}()

	fields := strings.Fields(line)
	if 0 == len(fields) {
		return false, nil
	}
	s.lines.Increment()
	s.log.Debugf("command: %q", fields)

	name := fields[0]
	for _, c := range commands {
		if !strings.EqualFold(name, c.short) && !strings.EqualFold(name, c.long) {
			continue
		}
		if nil == c.handler {
			return true, nil
		}
		if c.hasKey && len(fields) < 2 {
			return false, fault.ErrMissingKey
		}
		return false, c.handler(s, fields[1:])
	}
	return false, fault.ErrUnknownCommand
}

// Statistics - counts of operations performed so far
func (s *Shell) Statistics() *counter.Operations {
	return &s.ops
}

// Errors - number of lines that failed
func (s *Shell) Errors() uint64 {
	return s.errors.Uint64()
}

func parseKey(args []string) (int, error) {
	key, err := strconv.Atoi(args[0])
	if nil != err {
		return 0, fault.ErrInvalidKey
	}
	return key, nil
}

func (s *Shell) respond(ok bool, yes string, no string) {
	if ok {
		fmt.Fprintln(s.out, yes)
	} else {
		fmt.Fprintln(s.out, no)
	}
}

func doInsert(s *Shell, args []string) error {
	key, err := parseKey(args)
	if nil != err {
		return err
	}
	s.respond(s.ops.Record(&s.ops.Inserted, s.tree.Insert(key)), "inserted", "already present")
	return nil
}

func doDelete(s *Shell, args []string) error {
	key, err := parseKey(args)
	if nil != err {
		return err
	}
	s.respond(s.ops.Record(&s.ops.Removed, s.tree.Remove(key)), "deleted", "not present")
	return nil
}

func doQuery(s *Shell, args []string) error {
	key, err := parseKey(args)
	if nil != err {
		return err
	}
	s.respond(s.ops.Record(&s.ops.Found, s.tree.Contains(key)), "present", "absent")
	return nil
}

func doPrint(s *Shell, args []string) error {
	if 0 == s.tree.Print(s.out) {
		fmt.Fprintln(s.out, "empty")
	}
	return nil
}

func doCheck(s *Shell, args []string) error {
	ok := s.tree.Verify()
	if !ok {
		s.log.Criticalf("verify failed with %d keys", s.tree.Count())
	}
	s.respond(ok, "valid", "INVALID")
	return nil
}

func doList(s *Shell, args []string) error {
	keys := make([]string, 0, s.tree.Count())
	for k := range s.tree.All() {
		keys = append(keys, strconv.Itoa(k))
	}
	fmt.Fprintf(s.out, "%d: [%s]\n", len(keys), strings.Join(keys, " "))
	return nil
}

func doHelp(s *Shell, args []string) error {
	for _, c := range commands {
		arg := "  "
		if c.hasKey {
			arg = " n"
		}
		fmt.Fprintf(s.out, "%s%s  %-6s%s  %s\n", c.short, arg, c.long, arg, c.usage)
	}
	return nil
}
