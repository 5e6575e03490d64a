package i18n

// english is the built-in table. External tables use the same modules and
// keys.
var english = Table{
	"errors": {
		"adminRequired":        "Error: This program requires administrator privileges to modify the registry.",
		"runAsAdmin":           "Please run this program as administrator.",
		"noAdaptersFound":      "No display adapter devices found.",
		"noAdaptersAvailable":  "No display adapters available.",
		"noBackupsFound":       "No backups found.",
		"noBackupsAvailable":   "No backups available.",
		"backupNotFound":       "Backup not found.",
		"unableToOpenRegistry": "Unable to open registry key.",
		"deviceRemoved":        "Unable to open registry key. The device may have been removed.",
		"modificationFailed":   "Modification failed: Unable to open registry key.",
		"restoreFailed":        "Failed to restore backup.",
		"deleteFailed":         "Failed to delete backup.",
		"nameEmpty":            "Name cannot be empty. Operation cancelled.",
		"restartingAsAdmin":    "Restarting with administrator privileges...",
		"restartFailed":        "Failed to restart with administrator privileges.",
		"adapterNotFound":      "Display adapter '{0}' not found.",
		"languageNotFound":     "Language '{0}' is not available.",
	},
	"menu": {
		"selectOperation":   "Please select an operation:",
		"viewAdapterList":   "View Display Adapter List",
		"modifyAdapterName": "Modify Display Adapter Name",
		"backupManagement":  "Backup Management",
		"languageSettings":  "Language Settings",
		"exit":              "Exit",
		"back":              "Back",
	},
	"backup": {
		"management":      "Backup Management:",
		"viewAll":         "View All Backups",
		"restore":         "Restore from Backup",
		"delete":          "Delete Backup",
		"selectToRestore": "Please select a backup to restore:",
		"selectToDelete":  "Please select a backup to delete:",
	},
	"adapter": {
		"selectToModify":        "Please select the display adapter to modify:",
		"currentName":           "Current Name:",
		"enterNewName":          "Please enter the new name:",
		"confirmChange":         "Are you sure you want to change the name to '{0}'?",
		"operationCancelled":    "Operation cancelled.",
		"backupCreated":         "Backup created: {0}",
		"usingExistingBackup":   "Using existing backup (original value preserved)",
		"backupFailed":          "Warning: Failed to create backup. Continue anyway?",
		"continueWithoutBackup": "Continue without backup?",
		"nameModified":          "Name modified successfully!",
		"noteRestart":           "Note: You may need to restart your computer or reinstall the driver to see the changes.",
	},
	"table": {
		"no":           "No.",
		"deviceId":     "Device ID",
		"currentName":  "Current Name",
		"backupId":     "Backup ID",
		"originalName": "Original Name",
		"createdTime":  "Created Time",
	},
	"confirm": {
		"restoreBackup": "Are you sure you want to restore backup '{0}'?",
		"deleteBackup":  "Are you sure you want to delete backup '{0}'?",
		"yesNo":         "[y/N]",
	},
	"success": {
		"backupRestored":  "Backup restored successfully!",
		"backupDeleted":   "Backup deleted successfully!",
		"goodbye":         "Goodbye!",
		"languageChanged": "Language changed to {0}",
	},
	"common": {
		"pressAnyKey": "Press any key to continue...",
		"navigate":    "up/down: move  enter: select  esc: back  q: quit",
	},
	"language": {
		"select":  "Please select a language:",
		"current": "Current language: {0}",
	},
	"history": {
		"title":    "Operation History",
		"empty":    "No operations recorded.",
		"action":   "Action",
		"device":   "Device",
		"change":   "Change",
		"result":   "Result",
		"time":     "Time",
		"ok":       "ok",
		"failed":   "failed",
		"disabled": "The operation journal is disabled.",
	},
}
