// Package textutil normalizes and ranks movie titles.
//
// The CLI accepts titles as free text, so a user typing "amelie (2001)" must
// land on "Amélie" from TMDB search results. NormalizeTitle folds width,
// diacritics, case and punctuation; RankTitles orders candidates by exact
// match, fuzzy match, and token cosine similarity, keeping TMDB's relevance
// order as the final tie-breaker.
package textutil
