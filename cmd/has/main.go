package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/fredmorcos/has/pkg/asm"
	"github.com/fredmorcos/has/pkg/config"
	"github.com/fredmorcos/has/pkg/hack"
	"github.com/teris-io/cli"
)

var Description = strings.ReplaceAll(strings.TrimSpace(`
The Hack Application Suite translates Hack assembly language to Hack machine
code and back. The 'asm' command assembles a .asm file into machine code, either
raw binary or bintext (one line of sixteen '0'/'1' characters per instruction);
the 'dis' command disassembles either machine code flavor back to assembly.
`), "\n", " ")

// Options shared by both commands. The bintext flag selects the machine code
// flavor: the output of 'asm', the input of 'dis'.
func command(name, descr string) cli.Command {
	return cli.NewCommand(name, descr).
		WithArg(cli.NewArg("file", "The input file")).
		WithOption(cli.NewOption("bintext", "Use bintext instead of binary machine code").
			WithChar('b').WithType(cli.TypeBool)).
		WithOption(cli.NewOption("out", "Output file (must not exist)").WithChar('o')).
		WithOption(cli.NewOption("config", "Configuration file").WithChar('c')).
		WithOption(cli.NewOption("verbose", "Verbosity, 0 (warnings) to 3 (trace)").
			WithChar('v').WithType(cli.TypeInt))
}

var Has = cli.New(Description).
	WithCommand(command("asm", "Assemble a Hack assembly file").WithAction(AsmHandler)).
	WithCommand(command("dis", "Disassemble a Hack machine code file").WithAction(DisHandler))

func fail(err error) int {
	fmt.Fprintf(os.Stderr, "Error: %s\n", err)
	return 1
}

// Resolves the configuration file and the shared options down to a logger, the
// machine code flavor and the output path.
func setup(options map[string]string) (*logger, bool, string, error) {
	cfg, err := config.Load(options["config"])
	if err != nil {
		return nil, false, "", err
	}

	level := cfg.Log.Verbosity
	if v, found := options["verbose"]; found {
		level, err = strconv.Atoi(v)
		if err != nil || level < levelWarn || level > levelTrace {
			return nil, false, "", fmt.Errorf("verbosity %q out of range 0-3", v)
		}
	}

	bintext := cfg.Output.Bintext
	if options["bintext"] == "true" {
		bintext = true
	}

	out := options["out"]
	if out == "" {
		return nil, false, "", fmt.Errorf("missing required option --out")
	}

	return newLogger(level), bintext, out, nil
}

// Creates the output file, refusing to clobber an existing one.
func createOutput(path string) (*os.File, error) {
	return os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
}

func AsmHandler(args []string, options map[string]string) int {
	lg, bintext, out, err := setup(options)
	if err != nil {
		return fail(err)
	}

	buf, err := os.ReadFile(args[0])
	if err != nil {
		return fail(err)
	}
	lg.infof("Read %d bytes from %s", len(buf), args[0])

	prog, err := asm.Assemble(buf)
	if err != nil {
		return fail(fmt.Errorf("%s: %w", args[0], err))
	}
	lg.debugf("Parsed %d instructions and %d symbols", len(prog.Items()), prog.Symbols().Len())

	output, err := createOutput(out)
	if err != nil {
		return fail(err)
	}
	defer output.Close()
	lg.infof("Writing to %s", out)

	writer := bufio.NewWriter(output)
	emitted := 0

	if bintext {
		enc := prog.EncodeBintext()
		for enc.Scan() {
			if _, err := writer.Write(enc.Bytes()); err != nil {
				return fail(err)
			}
			emitted++
			lg.tracef("emitted %s", strings.TrimSpace(string(enc.Bytes())))
		}
		err = enc.Err()
	} else {
		enc := prog.EncodeBin()
		for enc.Scan() {
			if _, err := writer.Write(enc.Bytes()); err != nil {
				return fail(err)
			}
			emitted++
			lg.tracef("emitted %02x%02x", enc.Bytes()[0], enc.Bytes()[1])
		}
		err = enc.Err()
	}

	if err != nil {
		return fail(err)
	}
	if err := writer.Flush(); err != nil {
		return fail(err)
	}

	lg.debugf("Emitted %d instructions", emitted)
	return 0
}

func DisHandler(args []string, options map[string]string) int {
	lg, bintext, out, err := setup(options)
	if err != nil {
		return fail(err)
	}

	buf, err := os.ReadFile(args[0])
	if err != nil {
		return fail(err)
	}
	lg.infof("Read %d bytes from %s", len(buf), args[0])

	var prog *hack.Program
	if bintext {
		prog, err = hack.FromBintext(buf)
	} else {
		prog, err = hack.FromBin(buf)
	}
	if err != nil {
		return fail(fmt.Errorf("%s: %w", args[0], err))
	}
	lg.debugf("Decoded %d instructions", len(prog.Items()))

	output, err := createOutput(out)
	if err != nil {
		return fail(err)
	}
	defer output.Close()
	lg.infof("Writing to %s", out)

	writer := bufio.NewWriter(output)
	for enc := prog.EncodeSource(); enc.Scan(); {
		lg.tracef("emitted %s", enc.Text())
		if _, err := fmt.Fprintln(writer, enc.Text()); err != nil {
			return fail(err)
		}
	}

	if err := writer.Flush(); err != nil {
		return fail(err)
	}

	return 0
}

func main() { os.Exit(Has.Run(os.Args, os.Stdout)) }
