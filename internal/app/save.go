package app

import (
	"errors"

	"github.com/dshills/barcode/internal/filestore"
	"github.com/dshills/barcode/internal/prompt"
	"github.com/dshills/barcode/internal/renderer/overlay"
)

// Messages shown after a save attempt.
const (
	msgSaved      = "File saved successfully"
	msgNoFileName = "You did not provide a name for the file"
	msgDeclined   = "The parent directory did not exist"
	msgCancelled  = "User input was cancelled"
)

// save writes the buffer, prompting through the modal box when needed.
// Failures are reported and never end the session.
func (app *Application) save(as bool) {
	buf := app.engine.Buffer()

	var (
		path string
		err  error
	)
	if as {
		path, err = filestore.SaveAs(app.ctx, buf, app.prompter)
	} else {
		path, err = filestore.Save(app.ctx, buf, app.prompter)
	}

	log := app.log("filestore")
	app.metrics.RecordSave(err == nil)

	var fe *filestore.FileError
	switch {
	case err == nil:
		app.engine.MarkSaved()
		log.Info("saved %s lines=%d", path, buf.LineCount())
		app.notify(msgSaved, overlay.MessageSuccess)
	case errors.Is(err, prompt.ErrCancelled):
		log.Info("save cancelled")
		app.notify(msgCancelled, overlay.MessageInfo)
	case errors.Is(err, filestore.ErrNoFileName):
		log.Info("save skipped: %v", err)
		app.notify(msgNoFileName, overlay.MessageInfo)
	case errors.Is(err, filestore.ErrDeclined):
		log.Info("save skipped: %v", err)
		app.notify(msgDeclined, overlay.MessageInfo)
	case errors.As(err, &fe):
		app.reportError("filestore", err)
	default:
		app.reportError("filestore", NewOperationError("save", buf.Path(), err))
	}
}
