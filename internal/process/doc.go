// Package process starts child processes in their own group and tears the
// whole group down, so a hung executable and its children never outlive the
// check that spawned them.
package process
