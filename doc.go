/*
Package ppda is an engine for deterministic probabilistic pushdown automata.

A PPDA assigns an exact rational weight to every string over its alphabet and
can randomly generate strings according to the distribution it defines. The
engine wraps an automaton.Automaton with the concerns a host application
needs: concurrency-safe scoring and generation, reproducible seeded batches,
lifecycle hooks for observability and optional persistence of generated
samples.

# Concept

The automaton (pkg/automaton) is built once and then used read-only. Every
Accept or Generate call on the Engine gets its own run (current state and
stack) and, for generation, its own random source derived from a seed, so
calls can proceed in parallel and every sample can be replayed from the seed
it records.

# Usage

	model, err := catalog.Default().Build("dyck")
	if err != nil {
		log.Fatal(err)
	}

	eng, err := ppda.New("dyck", model, ppda.WithSampleStore(memory.NewStore()))
	if err != nil {
		log.Fatal(err)
	}

	samples, err := eng.Batch(ctx, 100, 42)
	// ...
	w, err := eng.Accept(ctx, domain.Tokenize("(())$", ""))

# Errors

Construction bugs (popping the bottom marker, weights that are not locally
normalized) surface as errors wrapping domain.ErrPopBottom and
domain.ErrNotNormalized. A string that cannot be produced simply has weight 0.
*/
package ppda
