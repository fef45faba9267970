// Package clicheck verifies the --help and --version output of a companion
// executable against a fixed contract.
//
// The checks are pure functions over captured output (CheckHelp,
// CheckVersion). Runner executes the program in its own process group with a
// bounded wait and hard-kills the whole group when the wait expires. Check
// ties both together.
package clicheck
