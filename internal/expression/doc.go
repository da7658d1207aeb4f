// Package expression holds the text rules behind the calculator input: how
// free text splits into confirmed tokens and an active search term, how a
// chosen suggestion is spliced back in, how whole "name (value)" tokens are
// deleted in one step, and how the numeric expression is pulled out of the
// text and evaluated.
//
// Every function here is pure. Positions are rune offsets into the text so
// callers can pass caret positions straight from a text control.
package expression
