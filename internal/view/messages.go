package view

// Outcome flags arrive as success=/error= query parameters after a redirect
// and resolve to banner texts here. Unknown flags resolve to nothing so a
// crafted query string cannot inject arbitrary banner content.

// SuccessMessage resolves a success outcome flag to its banner text.
func SuccessMessage(flag string) string {
	switch flag {
	case "created":
		return "Task created successfully"
	case "updated":
		return "Task updated successfully"
	case "deleted":
		return "Task deleted successfully"
	case "status-updated":
		return "Task status updated successfully"
	default:
		return ""
	}
}

// ErrorMessage resolves an error outcome flag to its banner text.
func ErrorMessage(flag string) string {
	switch flag {
	case "not-found":
		return "Task not found"
	case "delete-failed":
		return "Failed to delete task"
	case "status-update-failed":
		return "Failed to update task status"
	default:
		return ""
	}
}
