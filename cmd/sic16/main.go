package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/Coldlapse/16bit-SIC/cpu"
	"github.com/Coldlapse/16bit-SIC/emulator"
	"github.com/Coldlapse/16bit-SIC/mem"
)

// showRegisters prints the register view banner after a step.
func showRegisters(emu *emulator.Emulator) {
	fmt.Println("==================== DEBUG ====================")
	fmt.Print(emu.Cpu.String())
	fmt.Println("===============================================")
}

// promptDump asks whether to dump memory and prints the requested range.
// Addresses and the format are decimal. A bad request is reported and the
// run continues; quit is set when input runs out.
func promptDump(emu *emulator.Emulator, prompt *bufio.Scanner) (quit bool) {
	fmt.Print("dump? (y/n): ")
	if !prompt.Scan() {
		quit = true
		return
	}

	choice := strings.TrimSpace(prompt.Text())
	if choice != "y" && choice != "Y" {
		return
	}

	fmt.Print("start end format (16 hex, 2 binary): ")
	if !prompt.Scan() {
		quit = true
		return
	}

	var start, end, format int
	_, err := fmt.Sscanf(prompt.Text(), "%d %d %d", &start, &end, &format)
	if err != nil {
		log.Printf("dump: %v", err)
		return
	}

	text, err := emu.Mem.Dump(start, end, mem.Format(format))
	if err != nil {
		log.Printf("dump: %v", err)
		return
	}

	fmt.Print(text)

	return
}

// batchDump prints the dump described by a start:end:format argument.
func batchDump(emu *emulator.Emulator, arg string) (err error) {
	var start, end, format int
	_, err = fmt.Sscanf(arg, "%d:%d:%d", &start, &end, &format)
	if err != nil {
		return
	}

	var text string
	text, err = emu.Mem.Dump(start, end, mem.Format(format))
	if err != nil {
		return
	}

	fmt.Print(text)

	return
}

func main() {
	var interactive bool
	var dump string
	var verbose bool

	flag.BoolVar(&interactive, "i", term.IsTerminal(int(os.Stdin.Fd())), "Prompt for a memory dump after each step")
	flag.StringVar(&dump, "d", "", "Dump `start:end:format` (decimal) after the run stops")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")

	flag.Parse()

	if flag.NArg() != 1 {
		log.Fatalf("usage: %v [options] program.txt", os.Args[0])
	}

	name := flag.Arg(0)

	inf, err := os.Open(name)
	if err != nil {
		log.Fatalf("%v: %v", name, err)
	}
	defer inf.Close()

	emu := emulator.NewEmulator()
	emu.Verbose = verbose

	asm := &cpu.Assembler{Verbose: verbose}
	for attr, val := range emu.Defines() {
		asm.Predefine(attr, val)
	}

	prog, err := asm.Parse(inf)
	if err != nil {
		log.Fatalf("%v: %v", name, err)
	}

	err = emu.Load(prog)
	if err != nil {
		log.Fatalf("%v: %v", name, err)
	}

	prompt := bufio.NewScanner(os.Stdin)

	for {
		err = emu.Step()
		if err != nil {
			// There is no halt instruction; every run ends on a
			// failed step.
			log.Printf("%v: %v", name, err)
			break
		}

		showRegisters(emu)

		if interactive && promptDump(emu, prompt) {
			break
		}
	}

	if len(dump) != 0 {
		err = batchDump(emu, dump)
		if err != nil {
			log.Fatalf("%v: %v", dump, err)
		}
	}
}
