// Package command holds the command template and the shell execution primitive.
//
// A Template is an immutable string containing at least one occurrence of the
// placeholder marker "{}". Render substitutes an input record for every marker
// occurrence with no quoting or escaping; inputs containing shell metacharacters
// reach the shell verbatim. That is a deliberate, documented hazard of the tool,
// not a defect: the user is expected to template a safe command.
//
// Runner is the seam between dispatch and the operating system: "run this string
// as a shell command and wait for it to finish". ShellRunner is the production
// implementation; tests substitute their own.
package command
