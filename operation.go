package myria

// FilterOperation - a generic function deciding whether a row of a
// TupleBatch should be retained
type FilterOperation func(b TupleBatch, row int) (bool, error)
