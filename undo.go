package contour

// Action is one reversible edit: a pair of closures that are exact inverses
// of each other. Applying Forward and then Inverse must reproduce the prior
// state bit-for-bit, point identities included. The stack treats actions as
// opaque.
type Action struct {
	Name    string
	Forward func()
	Inverse func()
}

// UndoStack is the single controller through which every user-visible edit
// is undone and redone. Callers apply an edit, then [UndoStack.Record] it;
// recording clears the redo history.
type UndoStack struct {
	undo []Action
	redo []Action
}

func NewUndoStack() *UndoStack {
	return &UndoStack{}
}

// Record pushes an already-applied action onto the undo stack and clears the
// redo stack.
func (s *UndoStack) Record(a Action) {
	s.undo = append(s.undo, a)
	s.redo = s.redo[:0]
}

// Undo pops the most recent action, invokes its inverse, and moves it to the
// redo stack. It reports whether anything was undone.
func (s *UndoStack) Undo() bool {
	if len(s.undo) == 0 {
		return false
	}
	a := s.undo[len(s.undo)-1]
	s.undo = s.undo[:len(s.undo)-1]
	a.Inverse()
	s.redo = append(s.redo, a)
	return true
}

// Redo pops the most recently undone action, re-invokes its forward closure,
// and moves it back to the undo stack. It reports whether anything was
// redone.
func (s *UndoStack) Redo() bool {
	if len(s.redo) == 0 {
		return false
	}
	a := s.redo[len(s.redo)-1]
	s.redo = s.redo[:len(s.redo)-1]
	a.Forward()
	s.undo = append(s.undo, a)
	return true
}

func (s *UndoStack) CanUndo() bool { return len(s.undo) > 0 }
func (s *UndoStack) CanRedo() bool { return len(s.redo) > 0 }

// Clear drops both histories.
func (s *UndoStack) Clear() {
	s.undo = s.undo[:0]
	s.redo = s.redo[:0]
}
