// Package selection holds the movie picker state behind the CLI prompt and
// any other front end.
//
// Each slot is one record (input text, latest search results, chosen movie,
// dropdown flag) kept in an ordered list, so adding or removing a slot can
// never leave parallel fields out of step. Front ends subscribe to change
// notifications while mounted and unsubscribe when they go away.
package selection
