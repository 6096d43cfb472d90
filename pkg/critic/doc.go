// Package critic hosts statement-level lint policies for Perl source code.
//
// A Policy inspects one statement of a parsed token tree and returns zero or
// more Violations. The Critic runner enumerates every statement of a
// document (top-level and nested) and applies the enabled policies to each,
// collecting violations in source order.
//
// Policies are pure functions over the immutable tree: they never mutate
// their input, keep no state between statements, and may be invoked
// concurrently on independent documents.
//
// # Basic Usage
//
//	c := critic.New(critic.DefaultRegistry.All(), nil)
//	violations, err := c.CritiqueFile("script.pl")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, v := range violations {
//	    fmt.Printf("%s: %s [%s]\n", v.Location, v.Message, v.Policy)
//	}
package critic
