package main

import (
	"fmt"
	"io"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: slidemaker <command> [flags] [args]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  generate   Generate a slide deck from an order of service")
	fmt.Fprintln(w, "  inspect    Show the slides a text would produce")
	fmt.Fprintln(w, "  title      Format a song name as a TITLE line")
	fmt.Fprintln(w, "  watch      Regenerate the deck when the text changes")
	fmt.Fprintln(w, "  doctor     Check Chrome and the template set")
	fmt.Fprintln(w, "  version    Show version information")
	fmt.Fprintln(w, "  help       Show help for a command, or 'help syntax'")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'slidemaker help <command>' for details on a specific command.")
}

// printGenerateUsage prints usage for the generate command.
func printGenerateUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: slidemaker generate <input|-> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Generate a PDF slide deck from an order of service text.")
	fmt.Fprintln(w, "Use - to read the text from standard input.")
	fmt.Fprintln(w)
	printDeckFlagsUsage(w)
}

// printWatchUsage prints usage for the watch command.
func printWatchUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: slidemaker watch <input> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Generate the deck, then regenerate it every time the input file is saved.")
	fmt.Fprintln(w, "Stop with Ctrl+C. Reserved labels fail the build unless --yes is given.")
	fmt.Fprintln(w)
	printDeckFlagsUsage(w)
}

// printDeckFlagsUsage prints the flags shared by generate and watch.
func printDeckFlagsUsage(w io.Writer) {
	fmt.Fprintln(w, "Deck:")
	fmt.Fprintln(w, "  -s, --service <s>         Service type: sunday, midweek (default: sunday)")
	fmt.Fprintln(w, "      --notice <s>          Intro slide notice")
	fmt.Fprintln(w, "  -y, --yes                 Keep reserved labels (Chorus, V1...) without asking")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output:")
	fmt.Fprintln(w, "  -o, --output <dir>        Output directory")
	fmt.Fprintln(w, "  -n, --name <s>            File name without extension")
	fmt.Fprintln(w, "                            (default: next service, e.g. \"Sunday 08 01 2023\")")
	fmt.Fprintln(w, "      --html                Write the HTML deck alongside the PDF")
	fmt.Fprintln(w, "      --html-only           Write the HTML deck only, skip PDF")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Template:")
	fmt.Fprintln(w, "      --template <name>     Template set (default: default)")
	fmt.Fprintln(w, "      --asset-path <dir>    Directory holding templates/<name>/ sets")
	fmt.Fprintln(w, "  -t, --timeout <d>         PDF rendering timeout (e.g., 30s, 2m)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output Control:")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
	fmt.Fprintln(w, "  -v, --verbose             Show deck details and timing")
}

// printInspectUsage prints usage for the inspect command.
func printInspectUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: slidemaker inspect <input|-> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Print the blocks of an order of service as YAML, without rendering.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "      --slides              Print a slide table (layout and placeholders)")
	fmt.Fprintln(w, "  -s, --service <s>         Service type: sunday, midweek")
	fmt.Fprintln(w, "      --notice <s>          Intro slide notice")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
}

// printTitleUsage prints usage for the title command.
func printTitleUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: slidemaker title <words...>")
	fmt.Fprintln(w, "       slidemaker title --file <path> --line <n> [--write]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Format a song name as a title line: bracketed parts and anything after")
	fmt.Fprintln(w, "a dash are dropped, words are capitalized.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  \"amazing grace (live) - bridge\"  ->  TITLE (Amazing Grace)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "  -f, --file <path>         Text file holding the song name")
	fmt.Fprintln(w, "  -l, --line <n>            Line to replace (1-based)")
	fmt.Fprintln(w, "  -w, --write               Rewrite the file instead of printing it")
}

// printDoctorUsage prints usage for the doctor command.
func printDoctorUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: slidemaker doctor [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Check Chrome, the environment, and the layouts of the template set.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "      --template <name>     Template set to check")
	fmt.Fprintln(w, "      --asset-path <dir>    Directory holding templates/<name>/ sets")
	fmt.Fprintln(w, "      --json                Print the report as JSON")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
}

// printSyntaxHelp describes the order of service text format.
func printSyntaxHelp(w io.Writer) {
	fmt.Fprintln(w, "Order of service syntax")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Separate slides with blank lines. Each paragraph is a block of lyrics;")
	fmt.Fprintln(w, "every lyric slide shows one paragraph with the next one below it.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Add section slides with a keyword (in ALL CAPS) followed by a name in")
	fmt.Fprintln(w, "brackets, alone in its paragraph:")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  WELCOME/PRAYER (Jane Doe)")
	fmt.Fprintln(w, "  COMMUNION (John Doe)")
	fmt.Fprintln(w, "  SERMON (Daniel Marie)")
	fmt.Fprintln(w, "  CLOSE (Jane Doe)")
	fmt.Fprintln(w, "  CONTRIBUTION (Elders)      also adds the contribution details slide")
	fmt.Fprintln(w, "  TITLE (Amazing Grace)      song title slide")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "A keyword with a typo or in lowercase is treated as a lyric.")
	fmt.Fprintln(w, "Use 'slidemaker title' to turn a song name into a TITLE line.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Remove section labels such as CHORUS, Verse 1, V2 or 1. before")
	fmt.Fprintln(w, "generating: they would be projected as lyrics.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Every deck starts with a welcome slide announcing the service time and")
	fmt.Fprintln(w, "ends with a closing slide.")
}

// runHelp prints help for a specific command.
func runHelp(args []string, env *Environment) int {
	if len(args) == 0 {
		printUsage(env.Stdout)
		return ExitSuccess
	}

	switch args[0] {
	case "generate":
		printGenerateUsage(env.Stdout)
	case "watch":
		printWatchUsage(env.Stdout)
	case "inspect":
		printInspectUsage(env.Stdout)
	case "title":
		printTitleUsage(env.Stdout)
	case "doctor":
		printDoctorUsage(env.Stdout)
	case "syntax":
		printSyntaxHelp(env.Stdout)
	case "version":
		fmt.Fprintln(env.Stdout, "Usage: slidemaker version")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show version information.")
	case "help":
		fmt.Fprintln(env.Stdout, "Usage: slidemaker help [command|syntax]")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show help for a command, or the text syntax.")
	default:
		fmt.Fprintf(env.Stderr, "unknown help topic: %s\n\n", args[0])
		printUsage(env.Stderr)
		return ExitUsage
	}
	return ExitSuccess
}
