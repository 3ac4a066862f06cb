package app

import (
	"github.com/Tharindu714/Code-Editor-Memento/internal/renderer/backend"
)

// handleEvent applies one backend event to the editor.
func (app *Application) handleEvent(ev backend.Event) error {
	switch ev.Type {
	case backend.EventKey:
		return app.handleKey(ev)
	case backend.EventResize:
		app.logger.Debug("resize %dx%d", ev.Width, ev.Height)
	}
	return nil
}

// handleKey maps a key press to an editor command.
func (app *Application) handleKey(ev backend.Event) error {
	ed := app.editor

	switch ev.Key {
	case backend.KeyCtrlQ, backend.KeyEscape:
		return ErrQuit

	case backend.KeyCtrlZ:
		app.undo()
	case backend.KeyCtrlY:
		app.redo()

	case backend.KeyRune:
		if ev.Mod.Has(backend.ModCtrl) || ev.Mod.Has(backend.ModAlt) {
			return nil
		}
		ed.InsertRune(ev.Rune)
	case backend.KeyEnter:
		ed.InsertRune('\n')
	case backend.KeyTab:
		ed.InsertRune('\t')
	case backend.KeyBackspace:
		ed.DeleteBackward()
	case backend.KeyDelete:
		ed.DeleteForward()

	case backend.KeyLeft:
		ed.MoveLeft()
	case backend.KeyRight:
		ed.MoveRight()
	case backend.KeyUp:
		ed.MoveUp()
	case backend.KeyDown:
		ed.MoveDown()
	case backend.KeyHome:
		ed.MoveHome()
	case backend.KeyEnd:
		ed.MoveEnd()
	}
	return nil
}

// undo restores the previous state, or beeps when there is none.
func (app *Application) undo() {
	if !app.editor.Undo() {
		app.backend.Beep()
		app.logger.Debug("undo unavailable")
		return
	}
	app.logger.WithFields(map[string]any{
		"undo": app.history.UndoCount(),
		"redo": app.history.RedoCount(),
	}).Debug("undo")
}

// redo restores the next state, or beeps when there is none.
func (app *Application) redo() {
	if !app.editor.Redo() {
		app.backend.Beep()
		app.logger.Debug("redo unavailable")
		return
	}
	app.logger.WithFields(map[string]any{
		"undo": app.history.UndoCount(),
		"redo": app.history.RedoCount(),
	}).Debug("redo")
}
