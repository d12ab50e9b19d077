// Package input supplies puzzle text to the engines as an injected data
// source, plus the credential handling the runner needs.
//
// What & Why
//
// The engine packages are pure: they accept []string and never touch the
// filesystem or the environment. Everything that knows where puzzle text
// lives is collected here behind the Source interface, so a caller (the CLI,
// a test) decides which collaborator to inject. There is no process-global
// state and no networking — a Source reads local files, nothing else.
//
//   - Source     — Lines/Example for a given day (1..25).
//   - DirSource  — the on-disk layout Day<d>/day<d>_input.txt and
//     Day<d>/day<d>_example.txt under a root directory.
//   - Secrets    — session credentials: environment variables first
//     (AOC_COOKIE / AOC_YEAR), then a secret.json file. Loaded on demand
//     into a value the caller owns; nothing is cached globally.
//
// Errors (sentinel):
//
//	– ErrBadDay    day outside 1..25.
//	– ErrNoSecrets neither environment variables nor secret.json present.
//	– ErrBadSecrets credentials present but empty or implausible.
//
// File-not-found from a DirSource surfaces as the wrapped os error so the
// caller can distinguish "day not prepared yet" from a malformed request.
package input
