//
// Copyright 2012 Nathan Fiedler. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
//

// Package applog sets up file-based logging for the CLI driver, the way
// the teacher program's main.go did (a per-user dotdir holding a
// messages.log, written through a buffered writer, with an atexit-style
// hook to flush it on the way out).
package applog

import (
	"bufio"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"sync"
	"time"
)

// atExitMutex guards the list of exit functions.
var atExitMutex sync.Mutex

// atExitFuncs are functions invoked when Exit is called.
var atExitFuncs []func()

// RunAtExit registers fn to run when Exit is called. Go has no atexit
// hook, so callers must route their exit paths through Exit for this to
// take effect.
func RunAtExit(fn func()) {
	atExitMutex.Lock()
	defer atExitMutex.Unlock()
	atExitFuncs = append(atExitFuncs, fn)
}

// Exit runs every registered exit function, in registration order, then
// terminates the process with the given status.
func Exit(status int) {
	atExitMutex.Lock()
	fns := append([]func(){}, atExitFuncs...)
	atExitMutex.Unlock()
	for _, fn := range fns {
		fn()
	}
	os.Exit(status)
}

// Setup opens (creating if necessary) ~/.golisp/messages.log, directs
// the standard log package's output there, and registers a flush/close
// hook via RunAtExit. It returns an error rather than calling
// log.Fatalln, since the CLI must be able to report the problem and
// still set a non-zero exit status through Cobra.
func Setup() error {
	home, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("locating home directory: %w", err)
	}
	dir := filepath.Join(home, ".golisp")
	if _, err := os.Stat(dir); err != nil {
		if os.IsNotExist(err) {
			if err := os.Mkdir(dir, 0755); err != nil {
				return fmt.Errorf("creating %s: %w", dir, err)
			}
		} else {
			return err
		}
	}
	logname := filepath.Join(dir, "messages.log")
	logfile, err := os.OpenFile(logname, os.O_WRONLY|os.O_APPEND|os.O_CREATE, 0644)
	if err != nil {
		return fmt.Errorf("opening %s: %w", logname, err)
	}
	out := bufio.NewWriter(logfile)
	log.SetOutput(out)
	RunAtExit(func() {
		out.Flush()
		logfile.Sync()
		logfile.Close()
	})
	logSessionHeader()
	return nil
}

// logSessionHeader writes a handful of facts about the current process,
// useful when diagnosing a bug report after the fact.
func logSessionHeader() {
	header := "-------------------------------------------------------------------------------"
	log.Println(header)
	log.Printf("Log Session: %s\n", time.Now().Format(time.ANSIC))
	log.Printf("Go Version = %s\n", runtime.Version())
	if home, err := os.UserHomeDir(); err == nil {
		log.Printf("Home Directory = %s\n", home)
	}
	if pwd, err := os.Getwd(); err == nil {
		log.Printf("Current Directory = %s\n", pwd)
	}
	for _, key := range []string{"PATH", "LANG", "LC_ALL", "SHELL", "TERM"} {
		if val := os.Getenv(key); val != "" {
			log.Printf("%s = %s", key, val)
		}
	}
	log.Println(header)
}
