// Sentirec - Sentiment-Aware Product Recommendation Engine
// Copyright 2026 Sentirec Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sentirec/sentirec

package text

// negationTokens always survive stopword, length and numeric filtering and
// bypass the stemmer. Contractions appear with the apostrophe already
// stripped because cleaning removes punctuation before tokenization.
var negationTokens = map[string]struct{}{
	"no":      {},
	"not":     {},
	"nor":     {},
	"never":   {},
	"none":    {},
	"nothing": {},
	"nobody":  {},
	"neither": {},
	"cannot":  {},
	"dont":    {},
	"doesnt":  {},
	"didnt":   {},
	"isnt":    {},
	"wasnt":   {},
	"arent":   {},
	"werent":  {},
	"wont":    {},
	"wouldnt": {},
	"couldnt": {},
	"shouldnt": {},
	"cant":    {},
	"aint":    {},
	"hasnt":   {},
	"havent":  {},
	"hadnt":   {},
}

// defaultStopwords is the built-in English stopword list. It deliberately
// contains no negators; those live in negationTokens and are protected.
var defaultStopwords = []string{
	"the", "a", "an", "and", "or", "but", "in", "on", "at", "to", "for",
	"of", "with", "by", "from", "as", "is", "was", "are", "were", "been",
	"be", "have", "has", "had", "do", "does", "did", "will", "would",
	"should", "could", "may", "might", "must", "can", "this", "that",
	"these", "those", "i", "you", "he", "she", "it", "we", "they",
	"me", "him", "her", "us", "them", "my", "your", "his", "its", "our",
	"their", "all", "any", "both", "each", "few", "more", "most", "other",
	"some", "such", "only", "own", "same", "so", "than", "too", "very",
	"just", "about", "into", "through", "during", "before", "after",
	"above", "below", "up", "down", "out", "off", "over", "under",
	"again", "further", "then", "once", "here", "there", "when", "where",
	"why", "how", "what", "which", "who", "whom", "am", "being", "if",
	"because", "while", "until",
}
