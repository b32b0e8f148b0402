// Package processor contains the batch translation controller. It walks the
// source-language candidate words, translates the ones not yet cached,
// flushes the cache and evaluates matches batch by batch, and paces provider
// calls between batches. Durable state only ever reflects completed batches,
// so an interrupted run resumes where the last flush left off.
package processor
