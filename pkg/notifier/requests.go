package notifier

import (
	"fmt"

	"github.com/dmitrymomot/notifykit/pkg/registry"
	"github.com/dmitrymomot/notifykit/pkg/sink"
)

// Request builders for the common business events. Each returns a
// ready-to-Show request with type, routing data, and actions filled in;
// priority and presentation defaults resolve from the registry.

// TaskAssigned announces a task assignment to its new assignee.
func TaskAssigned(taskID, taskTitle, assignedBy string) Request {
	return Request{
		Title:   "New Task Assigned",
		Message: fmt.Sprintf("%s assigned you: %s", assignedBy, taskTitle),
		Type:    registry.TypeTaskAssigned,
		Data: map[string]any{
			"task_id": taskID,
		},
		URL: "/tasks/" + taskID,
		Actions: []sink.Action{
			{Action: "view", Title: "View Task"},
			{Action: "dismiss", Title: "Dismiss"},
		},
	}
}

// TaskCompleted announces that a watched task was finished.
func TaskCompleted(taskID, taskTitle, completedBy string) Request {
	return Request{
		Title:   "Task Completed",
		Message: fmt.Sprintf("%s completed: %s", completedBy, taskTitle),
		Type:    registry.TypeTaskCompleted,
		Data: map[string]any{
			"task_id": taskID,
		},
		URL: "/tasks/" + taskID,
	}
}

// DeadlineApproaching warns about a task nearing its due time.
func DeadlineApproaching(taskID, taskTitle, due string) Request {
	return Request{
		Title:   "Deadline Approaching",
		Message: fmt.Sprintf("%s is due %s", taskTitle, due),
		Type:    registry.TypeDeadlineApproaching,
		Data: map[string]any{
			"task_id": taskID,
			"due":     due,
		},
		URL: "/tasks/" + taskID,
		Actions: []sink.Action{
			{Action: "view", Title: "View Task"},
			{Action: "snooze", Title: "Snooze"},
		},
	}
}

// DeadlineOverdue escalates a task past its due time. Overdue alerts
// persist and require interaction, which also exempts them from batching.
func DeadlineOverdue(taskID, taskTitle string) Request {
	return Request{
		Title:              "Task Overdue",
		Message:            fmt.Sprintf("%s is past its deadline", taskTitle),
		Type:               registry.TypeDeadlineOverdue,
		Data:               map[string]any{"task_id": taskID},
		URL:                "/tasks/" + taskID,
		Persistent:         true,
		RequireInteraction: true,
	}
}

// AttendanceReminder nudges the user to check in or out.
func AttendanceReminder(action string) Request {
	return Request{
		Title:   "Attendance Reminder",
		Message: fmt.Sprintf("Don't forget to %s", action),
		Type:    registry.TypeAttendanceReminder,
		Data:    map[string]any{"action": action},
		Actions: []sink.Action{
			{Action: "open", Title: "Open Attendance"},
		},
	}
}

// DailyTaskReminder summarizes the day's open tasks.
func DailyTaskReminder(openTasks int) Request {
	return Request{
		Title:   "Daily Task Summary",
		Message: fmt.Sprintf("You have %d open tasks for today", openTasks),
		Type:    registry.TypeDailyReminder,
		Data:    map[string]any{"open_tasks": openTasks},
	}
}

// SystemError surfaces an application failure the user must see.
func SystemError(message string) Request {
	return Request{
		Title:   "Something Went Wrong",
		Message: message,
		Type:    registry.TypeSystemError,
	}
}
