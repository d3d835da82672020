package db

import "errors"

// errUnset is returned by the Unset sentinel DB's operations. Seeing it
// means Run (or a caller building its own Config) forgot to substitute
// a real DB before the first persistence attempt.
var errUnset = errors.New("db: no DB configured (Config.DB is db.Unset)")
