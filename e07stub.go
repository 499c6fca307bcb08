// This file is part of e07stub.
//
// e07stub is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// e07stub is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with e07stub.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/jetsetilly/e07stub/logger"
	"github.com/jetsetilly/e07stub/modalflag"
	"golang.org/x/term"
)

func main() {
	os.Exit(launch(os.Args[1:], os.Stdout))
}

// launch the program with the command line arguments. returns the value to use
// with os.Exit()
func launch(args []string, output io.Writer) int {
	md := &modalflag.Modes{Output: output}
	md.NewArgs(args)
	md.AddSubModes("PROBE", "MAP", "DUMP", "BUILD", "BOARD", "SOAK", "MEMVIZ")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return 0

	case modalflag.ParseError:
		fmt.Fprintf(output, "* error: %v\n", err)
		return 10
	}

	switch md.Mode() {
	case "PROBE":
		err = probe(md, output)
	case "MAP":
		err = memoryMap(md, output)
	case "DUMP":
		err = dump(md, output)
	case "BUILD":
		err = build(md, output)
	case "BOARD":
		err = board(md, output)
	case "SOAK":
		err = soak(md, output)
	case "MEMVIZ":
		err = visualise(md, output)
	}

	if err != nil {
		fmt.Fprintf(output, "* error in %s mode: %s\n", md.String(), err)
		return 20
	}

	return 0
}

// echoLog sets the echo writer of the central logger. if the output is a
// terminal then the log is colourised.
func echoLog(output io.Writer, echo bool) {
	if !echo {
		logger.SetEcho(nil)
		return
	}

	if f, ok := output.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		logger.SetEcho(logger.NewColorizer(output))
		return
	}

	logger.SetEcho(output)
}
