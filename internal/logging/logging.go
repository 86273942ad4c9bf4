/*
   Copyright 2025 The DIRPX Authors.

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

// Package logging holds the library-wide zerolog logger. It is silent until
// a host installs a logger with Set or a command calls Setup.
package logging

import (
	"io"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"
)

// current is the installed logger.
var current atomic.Pointer[zerolog.Logger]

func init() {
	nop := zerolog.Nop()
	current.Store(&nop)
}

// L returns the installed logger.
func L() *zerolog.Logger {
	return current.Load()
}

// Set installs l as the library logger.
func Set(l zerolog.Logger) {
	current.Store(&l)
}

// Component returns the installed logger tagged with a component field.
func Component(name string) zerolog.Logger {
	return L().With().Str("component", name).Logger()
}

// Setup installs a console logger writing to w at a level chosen by verbosity
// (0 warn, 1 info, 2 debug, 3+ trace) and returns it. Caller information is
// added from debug upwards.
func Setup(w io.Writer, verbosity int) zerolog.Logger {
	level := zerolog.WarnLevel
	switch verbosity {
	case 0:
	case 1:
		level = zerolog.InfoLevel
	case 2:
		level = zerolog.DebugLevel
	default:
		level = zerolog.TraceLevel
	}

	console := zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: time.Kitchen,
	}
	l := zerolog.New(console).Level(level).With().Timestamp().Logger()
	if verbosity >= 2 {
		l = l.With().Caller().Logger()
	}

	Set(l)
	l.Debug().Int("verbosity", verbosity).Msg("Logger initialized")
	return l
}
