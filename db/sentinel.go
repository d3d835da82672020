package db

import "github.com/lucaskalb/choicex/choice"

// unsetDB represents "caller has not chosen a DB" (spec.md §4.9). Run
// substitutes a directory-backed DB the first time persistence is
// actually needed; unsetDB itself refuses every operation so a bug that
// forgets to substitute fails loudly instead of silently discarding.
type unsetDB struct{}

func (unsetDB) List() ([]string, error)                  { return nil, errUnset }
func (unsetDB) Put(string, choice.Attempt) error         { return errUnset }
func (unsetDB) Get(string) (choice.Attempt, bool, error) { return choice.Attempt{}, false, errUnset }
func (unsetDB) Delete(string) error                      { return errUnset }

// Unset is the sentinel DB meaning "no choice has been made yet".
var Unset DB = unsetDB{}

// noRecordDB accepts writes that discard and returns absent on every
// read, for runs that should never touch persistent storage.
type noRecordDB struct{}

func (noRecordDB) List() ([]string, error)                  { return nil, nil }
func (noRecordDB) Put(string, choice.Attempt) error         { return nil }
func (noRecordDB) Get(string) (choice.Attempt, bool, error) { return choice.Attempt{}, false, nil }
func (noRecordDB) Delete(string) error                      { return nil }

// NoRecord is the sentinel DB that silently discards all persistence.
var NoRecord DB = noRecordDB{}
