// doc.go - Package documentation.
// SPDX-License-Identifier: GPL-3.0-or-later

/*
Package getopt is a command-line argument matching engine.

It takes a sequence of program arguments and, given a user-declared
schema of options and positional slots, matches raw tokens to schema
entries, coerces their textual values into typed values, and invokes
user callbacks when matches occur.

# Layers

The package is organized bottom-up, mirroring how a single raw argument
flows through the engine:

 1. [Tokenize] splits a raw argument into prefix/name/value parts.
 2. [Entry] is the polymorphic schema entry (bool, int, uint, flt, str,
    array, pos, cmd, main) that [Registry] owns and looks up.
 3. [Context] is one candidate interpretation of a tokenized argument;
    the candidate generator enumerates these in a fixed style order.
 4. [Proc] bundles the contexts generated from one raw token and drives
    them against every entry in the [Registry] (publish/subscribe).
 5. [Parser] runs the top-level loop, in one of two strategies:
    [StrategyForward] assigns values as soon as a [Proc] completes;
    [StrategyDelayed] defers value assignment until after the
    positional pass so Index/Main callbacks can observe positional
    context before option Value callbacks fire.

# Declaration syntax

Schema entries are declared with strings shaped like
"[prefix]name[=type][!][/][@index]", parsed by [ParseCreateInfo]; see
that function's documentation for the full grammar.

# Scope

The help-text generator, the process-argument entry wrapper, and any
higher-level command facade are deliberately out of scope: this package
only implements the matching engine itself.
*/
package getopt
