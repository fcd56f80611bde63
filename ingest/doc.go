// Package ingest turns raw corpus text into n-gram counts and caches the
// result so large corpora are only scanned once.
//
// What:
//
//   - Alphabet maps runes onto the dense symbol indices the corpus tables
//     use; runes outside the alphabet break the current n-gram window.
//   - Count scans a text stream once, accumulating monogram, bigram,
//     trigram, quadgram and skip-gram counts into corpus.Counts.
//   - Cache persists counts in a LevelDB store keyed by the SHA-256 of the
//     corpus bytes plus the alphabet, so repeated runs skip re-counting.
//
// Skip distance convention: a skip-gram at distance d pairs two symbols
// with exactly d other characters between them, for d in 1..9. Distance
// follows positions in the original text; a non-alphabet rune resets the
// window, so n-grams never straddle word separators or punctuation.
//
// Errors:
//
//   - ErrEmptyAlphabet: alphabet built from an empty string.
//   - ErrDuplicateRune: the same rune listed twice in an alphabet.
//
// Complexity: Count is O(text length), with an O(1) sliding window.
package ingest
