// Package dispatcher is the entry point callers use to send requests through
// a chain. It freezes the chain, tags each dispatch with an ID, logs the
// outcome and feeds dispatch statistics to an optional metrics store.
package dispatcher
