/*
Package ports defines the driven ports (interfaces) for the ppda engine.

These interfaces decouple the engine from external implementations, allowing
generated corpora to be kept in various storage backends.

# Key Interfaces

  - SampleStore: Responsible for persisting and loading generated Samples.
*/
package ports
