// Package anchor keeps a scrolling list visually stable while its
// collection is replaced underneath it.
//
// A Controller watches two signals: the length of every new collection and
// the offset reported by every user scroll. On each length change it issues
// at most one directive to a Scroller:
//
//   - same length: nothing, even if the contents differ;
//   - shorter: scroll to the top, the old offset may point past the end;
//   - longer while the user sits at the top: scroll to the top and follow
//     the stream;
//   - longer while the user is reading further down: scroll by the size of
//     the inserted rows so the same rows stay under the cursor.
//
// Growth is assumed to happen at the head of the list (newest first). If rows
// were appended at the tail instead, the shift would be wrong.
//
// Observe must run before the frame that shows the new collection is drawn;
// in the terminal UI it runs inside Update, ahead of View.
package anchor
