package gdialog

import "github.com/sqweek/dialog"

// ShowError blocks until the user closes the message box.
func ShowError(title, format string, args ...interface{}) {
	dialog.Message(format, args...).Title(title).Error()
}
