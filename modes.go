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
	"strconv"
	"strings"

	"github.com/bradleyjkemp/memviz"
	"github.com/jetsetilly/e07stub/hardware/dsp"
	"github.com/jetsetilly/e07stub/hardware/memory/bus"
	"github.com/jetsetilly/e07stub/hardware/memory/internalrom"
	"github.com/jetsetilly/e07stub/hardware/memory/memorymap"
	"github.com/jetsetilly/e07stub/hardware/taitojc"
	"github.com/jetsetilly/e07stub/logger"
	"github.com/jetsetilly/e07stub/modalflag"
	"github.com/jetsetilly/e07stub/performance"
	"github.com/jetsetilly/e07stub/prefs"
	"github.com/jetsetilly/e07stub/romimage"
	"github.com/jetsetilly/e07stub/statsview"
)

// parseAddress accepts hexadecimal addresses with or without a 0x prefix.
func parseAddress(s string) (uint16, error) {
	s = strings.TrimPrefix(strings.ToLower(s), "0x")
	a, err := strconv.ParseUint(s, 16, 16)
	if err != nil {
		return 0, fmt.Errorf("invalid address (%s)", s)
	}
	return uint16(a), nil
}

func newStub(variant string, disabled bool) (*internalrom.Stub, error) {
	v, err := internalrom.NewVariant(strings.ToUpper(variant))
	if err != nil {
		return nil, err
	}

	var enable prefs.Bool
	err = enable.Set(!disabled)
	if err != nil {
		return nil, err
	}

	return internalrom.NewStub(v, &enable, logger.Central()), nil
}

func probe(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()

	variant := md.AddString("variant", "DEVICE", "stub variant: DEVICE, BOARD")
	disabled := md.AddBool("disabled", false, "probe with the stub disabled")
	device := md.AddBool("dsp", false, "probe through the DSP memory map (variant and disabled are ignored)")
	log := md.AddBool("log", false, "echo diagnostic log to stdout")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	echoLog(output, *log)
	defer echoLog(output, false)

	var mem bus.DSPBus
	if *device {
		mem = dsp.NewE07(logger.Central())
	} else {
		mem, err = newStub(*variant, *disabled)
		if err != nil {
			return err
		}
	}

	if len(md.RemainingArgs()) == 0 {
		return fmt.Errorf("at least one address required for %s mode", md)
	}

	for _, arg := range md.RemainingArgs() {
		a, err := parseAddress(arg)
		if err != nil {
			return err
		}
		d, err := mem.Read(a)
		if err != nil {
			fmt.Fprintf(output, "%04x: %v\n", a, err)
			continue
		}
		fmt.Fprintf(output, "%04x: %04x\n", a, d)
	}

	return nil
}

func memoryMap(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()

	layout := md.AddString("layout", "DEVICE", "memory layout: DEVICE, STUB, DEFAULT")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	var l memorymap.Layout
	switch strings.ToUpper(*layout) {
	case "DEVICE":
		l = memorymap.Device
	case "STUB":
		l = memorymap.BoardStub
	case "DEFAULT":
		l = memorymap.BoardDefault
	default:
		return fmt.Errorf("unknown layout (%s)", *layout)
	}

	fmt.Fprintf(output, "%s\n", l.Name)
	io.WriteString(output, l.Summary())

	return nil
}

func writeImage(img romimage.Image, filename string) error {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}

	_, err = img.WriteTo(f)
	if err != nil {
		f.Close()
		return err
	}

	return f.Close()
}

func dump(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()

	variant := md.AddString("variant", "DEVICE", "stub variant: DEVICE, BOARD")
	disabled := md.AddBool("disabled", false, "dump with the stub disabled")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) != 1 {
		return fmt.Errorf("output filename required for %s mode", md)
	}

	v, err := internalrom.NewVariant(strings.ToUpper(*variant))
	if err != nil {
		return err
	}

	err = writeImage(romimage.Dump(v, !*disabled), md.GetArg(0))
	if err != nil {
		return err
	}

	fmt.Fprintf(output, "%d words written to %s\n", internalrom.Size, md.GetArg(0))

	return nil
}

func build(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) != 1 {
		return fmt.Errorf("output filename required for %s mode", md)
	}

	img := romimage.Guessed()

	err = writeImage(img, md.GetArg(0))
	if err != nil {
		return err
	}

	fmt.Fprintf(output, "%d words written to %s\n", internalrom.Size, md.GetArg(0))
	fmt.Fprintf(output, "%d words differ from the internal ROM stub\n",
		len(romimage.Compare(img, romimage.Dump(internalrom.Device, true))))

	return nil
}

func newBoard(title string, prefsString string) (*taitojc.Board, error) {
	if prefsString != "" {
		prefs.PushCommandLineStack(prefsString)
		defer prefs.PopCommandLineStack()
	}

	b := taitojc.NewBoard(logger.Central())
	err := b.Init(title)
	if err != nil {
		return nil, err
	}
	b.Reset()

	return b, nil
}

func board(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()

	title := md.AddString("title", "dangcurv", fmt.Sprintf("title: %s", strings.Join(taitojc.Titles(), ", ")))
	prefsString := md.AddString("prefs", "", fmt.Sprintf("preferences string (eg. %s::true)", taitojc.PrefsKey))
	log := md.AddBool("log", false, "echo diagnostic log to stdout")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	echoLog(output, *log)
	defer echoLog(output, false)

	b, err := newBoard(*title, *prefsString)
	if err != nil {
		return err
	}

	fmt.Fprintf(output, "%s\n", b.Title)
	fmt.Fprintf(output, "internal ROM stub: %v\n", b.InternalROMStub.Enabled())
	fmt.Fprintf(output, "DSP reset line: %s\n", b.DSPReset)
	fmt.Fprintf(output, "%s\n", b.Program.Layout.Name)
	io.WriteString(output, b.Program.Layout.Summary())

	for _, arg := range md.RemainingArgs() {
		a, err := parseAddress(arg)
		if err != nil {
			return err
		}
		d, err := b.Program.Read(a)
		if err != nil {
			fmt.Fprintf(output, "%04x: %v\n", a, err)
			continue
		}
		fmt.Fprintf(output, "%04x: %04x\n", a, d)
	}

	return nil
}

func soak(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()

	variant := md.AddString("variant", "DEVICE", "stub variant: DEVICE, BOARD")
	duration := md.AddString("duration", "5s", "run duration")
	profile := md.AddString("profile", "NONE", "run with profiling: CPU, MEM (comma separated)")
	stats := md.AddBool("statsview", false, fmt.Sprintf("run stats server (%s)", statsview.Address))

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	prf, err := performance.ParseProfileString(*profile)
	if err != nil {
		return err
	}

	stub, err := newStub(*variant, false)
	if err != nil {
		return err
	}
	stub.SetPermission(logger.Deny)

	if *stats {
		stop := statsview.Launch(output)
		defer stop()
	}

	return performance.Check(output, prf, stub, *duration)
}

// boardDescription is the structure drawn by the MEMVIZ mode. the memory of the
// board is not included because the graph would be dominated by RAM words
type boardDescription struct {
	Title           taitojc.Title
	InternalROMStub bool
	DSPReset        string
	Layout          memorymap.Layout
}

func visualise(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()

	title := md.AddString("title", "dangcurv", fmt.Sprintf("title: %s", strings.Join(taitojc.Titles(), ", ")))
	prefsString := md.AddString("prefs", "", fmt.Sprintf("preferences string (eg. %s::true)", taitojc.PrefsKey))

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) != 1 {
		return fmt.Errorf("output filename required for %s mode", md)
	}

	b, err := newBoard(*title, *prefsString)
	if err != nil {
		return err
	}

	desc := &boardDescription{
		Title:           b.Title,
		InternalROMStub: b.InternalROMStub.Enabled(),
		DSPReset:        b.DSPReset.String(),
		Layout:          b.Program.Layout,
	}

	f, err := os.Create(md.GetArg(0))
	if err != nil {
		return err
	}

	memviz.Map(f, desc)

	err = f.Close()
	if err != nil {
		return err
	}

	fmt.Fprintf(output, "graph written to %s\n", md.GetArg(0))

	return nil
}
