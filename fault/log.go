// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

import (
	"fmt"
	"runtime"

	"github.com/bitmark-inc/logger"
)

// hold a logger channel
var log *logger.L

// Initialise - setup a log channel for last attempt to log something
func Initialise() error {
	if nil != log {
		return ErrAlreadyInitialised
	}
	log = logger.New("PANIC")
	if nil == log {
		return ErrInvalidLoggerChannel
	}
	return nil
}

// Finalise - flush any data
func Finalise() {
	if nil != log {
		log.Flush()
	}
	log = nil
}

// Criticalf - log a formatted string with arguments like fmt.Sprintf()
// prefixed by the caller's position
func Criticalf(format string, arguments ...interface{}) {
	if _, file, line, ok := runtime.Caller(1); ok {
		internalCriticalf("(%q:%d) "+format, withCaller(file, line, arguments)...)
	} else {
		internalCriticalf(format, arguments...)
	}
}

// Recovered - classify a value obtained from recover()
// a tree detecting its own corruption panics with a ProcessError,
// this returns that error, or nil for anything else
func Recovered(r interface{}) error {
	if err, ok := r.(ProcessError); ok {
		return err
	}
	return nil
}

func withCaller(file string, line int, arguments []interface{}) []interface{} {
	a := make([]interface{}, 2, 2+len(arguments))
	a[0] = file
	a[1] = line
	return append(a, arguments...)
}

// internal routines to handle uninitialised logger channel
func internalCriticalf(format string, arguments ...interface{}) {
	if nil == log {
		fmt.Printf("*** "+format+"\n", arguments...)
	} else {
		log.Criticalf(format, arguments...)
		log.Flush() // make sure log file is saved
	}
}
