/*
Package observability provides tools for monitoring the ppda engine.

It turns engine lifecycle hooks into Prometheus metrics and structured log
records. Hooks compose with Chain, so an engine can feed several sinks.
*/
package observability
