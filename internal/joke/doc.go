// Package joke provides the record store for Punchline Core.
//
// A Joke is a short text record with a setup, a punchline, and an author,
// plus creation and update timestamps managed by the store.
//
// # Key Types
//
//   - Joke: the stored record
//   - Repository: persistence interface (SQLite implementation provided)
//   - ValidationError: reports required fields missing at create time
//
// # Usage
//
//	repo := joke.NewSQLiteRepository(db)
//
//	j := &joke.Joke{Setup: "why", Punchline: "because", Author: "Al"}
//	if err := repo.Create(ctx, j); err != nil {
//	    return err
//	}
//
//	all, _ := repo.List(ctx, "")        // newest first
//	byAl, _ := repo.List(ctx, "al")     // case-insensitive author filter
//	random, _ := repo.PickRandom(ctx)
//
// # Thread Safety
//
// SQLiteRepository is safe for concurrent use; each operation is a single
// statement and the database provides row-level atomicity. Concurrent
// updates to the same record are last-write-wins.
package joke
