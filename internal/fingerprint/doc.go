// Package fingerprint loads the per-language candidate sets: words whose
// letter-frequency fingerprint equals the fingerprint of that language's
// ciphertext word. The sets are produced upstream; this package only reads
// them and offers the fingerprint function for inspection.
package fingerprint
