package watch

import "github.com/aretw0/strata/pkg/model"

// Diff computes the field-level changes that turn old into new: a
// CREATE for every mask path present only in new, a DELETE for every
// path present only in old, and a MODIFY where both resolve but the
// values differ. Changes come out in the canonical path order of the
// combined masks.
func Diff(old, new *model.ObjectValue) []Change {
	oldPaths := old.FieldMask().Paths()
	newPaths := new.FieldMask().Paths()
	union := model.NewFieldMask(append(append([]model.FieldPath{}, oldPaths...), newPaths...)...)

	var changes []Change
	for _, path := range union.Paths() {
		oldValue, oldOK := old.Get(path)
		newValue, newOK := new.Get(path)
		switch {
		case oldOK && !newOK:
			changes = append(changes, Change{Type: EventDelete, Path: path})
		case !oldOK && newOK:
			changes = append(changes, Change{Type: EventCreate, Path: path})
		case oldOK && newOK && !model.Equal(oldValue, newValue):
			changes = append(changes, Change{Type: EventModify, Path: path})
		}
	}
	return changes
}
