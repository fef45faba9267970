package main

import (
	"fmt"
	"io"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: htgen <command> [flags] [args]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  build      Build the documentation site")
	fmt.Fprintln(w, "  check      Validate config, skeleton and pages without writing")
	fmt.Fprintln(w, "  clicheck   Check an executable's --help and --version output")
	fmt.Fprintln(w, "  init       Write an example site config")
	fmt.Fprintln(w, "  version    Show version information")
	fmt.Fprintln(w, "  help       Show help for a command")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'htgen help <command>' for details on a specific command.")
}

func printSiteFlags(w io.Writer) {
	fmt.Fprintln(w, "Site:")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path (default: htgen)")
	fmt.Fprintln(w, "      --fragments <dir>     Directory of page fragments")
	fmt.Fprintln(w, "  -o, --output <dir>        Directory receiving the site")
	fmt.Fprintln(w, "      --aux <dir>           Directory of changelogs, credits and TODO")
	fmt.Fprintln(w)
}

func printOutputControl(w io.Writer) {
	fmt.Fprintln(w, "Output Control:")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
	fmt.Fprintln(w, "  -v, --verbose             Show per-page progress")
}

func printEnvironment(w io.Writer) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Environment:")
	fmt.Fprintln(w, "  HTGEN_CONFIG, HTGEN_FRAGMENT_ROOT, HTGEN_OUTPUT_ROOT, HTGEN_AUX_ROOT")
	fmt.Fprintln(w, "  Flags override environment, environment overrides the config file.")
}

// printBuildUsage prints usage for the build command.
func printBuildUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: htgen build [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Compose every registered page into the skeleton and write the site.")
	fmt.Fprintln(w, "Nothing is written when a fragment, changelog or injection target is missing.")
	fmt.Fprintln(w)
	printSiteFlags(w)
	fmt.Fprintln(w, "Assets:")
	fmt.Fprintln(w, "      --no-assets           Skip mirroring static assets")
	fmt.Fprintln(w)
	printOutputControl(w)
	printEnvironment(w)
}

// printCheckUsage prints usage for the check command.
func printCheckUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: htgen check [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Validate the config, the skeleton and every page source without writing.")
	fmt.Fprintln(w)
	printSiteFlags(w)
	fmt.Fprintln(w, "Output:")
	fmt.Fprintln(w, "      --yaml                Print the resolved config as YAML")
	fmt.Fprintln(w)
	printOutputControl(w)
	printEnvironment(w)
}

// printCLICheckUsage prints usage for the clicheck command.
func printCLICheckUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: htgen clicheck --executable <path> --version <v> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run the executable with --help and --version and check the output:")
	fmt.Fprintln(w, "license line, usage marker, option set, placeholder alignment, and")
	fmt.Fprintln(w, "the blank line after -warp.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "  -e, --executable <path>   Program to check")
	fmt.Fprintln(w, "      --version <v>         Version string --version must print")
	fmt.Fprintln(w, "  -t, --timeout <d>         Wait per invocation (default: 3s)")
	fmt.Fprintln(w)
	printOutputControl(w)
}

// printInitUsage prints usage for the init command.
func printInitUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: htgen init [dir] [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Write an example site config to <dir>/htgen.yaml (default: current directory).")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "  -f, --force               Overwrite an existing config file")
}

// runHelp prints help for a specific command.
func runHelp(args []string, env *Environment) int {
	if len(args) == 0 {
		printUsage(env.Stdout)
		return ExitSuccess
	}

	switch args[0] {
	case "build":
		printBuildUsage(env.Stdout)
	case "check":
		printCheckUsage(env.Stdout)
	case "clicheck":
		printCLICheckUsage(env.Stdout)
	case "init":
		printInitUsage(env.Stdout)
	case "version":
		fmt.Fprintln(env.Stdout, "Usage: htgen version")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show version information.")
	case "help":
		fmt.Fprintln(env.Stdout, "Usage: htgen help [command]")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show help for a command.")
	default:
		fmt.Fprintf(env.Stderr, "Unknown command: %s\n", args[0])
		printUsage(env.Stderr)
		return ExitUsage
	}
	return ExitSuccess
}
