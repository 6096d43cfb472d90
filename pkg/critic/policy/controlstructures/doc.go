// Package controlstructures contains critic policies about Perl control
// structures.
//
// ProhibitForeachHandle flags for/foreach loops that iterate over the lines
// of a file handle. A for-style loop evaluates its list up front, so
// "foreach my $line (<$fh>)" silently reads the entire file into memory
// before the first iteration; a while loop reads one line at a time. The
// policy recognizes the readline both as a single <...> token and in the
// degenerate tokenization where a spaced "< $fh >" surfaces as separate
// "<", symbol, ">" tokens.
package controlstructures
