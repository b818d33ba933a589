package registry

// Type is an enumerated tag identifying the business event a
// notification originates from.
type Type string

const (
	TypeTaskAssigned  Type = "task_assigned"
	TypeTaskCompleted Type = "task_completed"
	TypeTaskUpdated   Type = "task_updated"

	TypeDeadlineApproaching Type = "deadline_approaching"
	TypeDeadlineCritical    Type = "deadline_critical"
	TypeDeadlineOverdue     Type = "deadline_overdue"

	TypeAttendanceReminder   Type = "attendance_reminder"
	TypeAttendanceCheckedIn  Type = "attendance_checked_in"
	TypeAttendanceCheckedOut Type = "attendance_checked_out"

	TypeDailyReminder Type = "daily_reminder"

	TypeSystemUpdate  Type = "system_update"
	TypeSystemError   Type = "system_error"
	TypeSystemSuccess Type = "system_success"

	TypeConnectionStatus Type = "connection_status"
)

// TypeProfile carries the delivery defaults attached to a notification type.
// AggregateTitle and AggregateBody are fmt templates taking a single %d count.
type TypeProfile struct {
	Priority       Priority `yaml:"-"`
	Icon           string   `yaml:"icon"`
	URL            string   `yaml:"url"`
	AggregateTitle string   `yaml:"aggregate_title"`
	AggregateBody  string   `yaml:"aggregate_body"`
	AggregateURL   string   `yaml:"aggregate_url"`
	// FastAggregate shortens the batching window for types whose bursts
	// should collapse quickly instead of waiting the full batch delay.
	FastAggregate bool `yaml:"fast_aggregate"`
}

func defaultTypeProfiles() map[Type]TypeProfile {
	return map[Type]TypeProfile{
		TypeTaskAssigned: {
			Priority:       PriorityMedium,
			Icon:           "/icons/task-assigned.png",
			URL:            "/tasks",
			AggregateTitle: "%d New Tasks Assigned",
			AggregateBody:  "You have %d new tasks waiting for you",
			AggregateURL:   "/tasks?filter=assigned",
		},
		TypeTaskCompleted: {
			Priority:       PriorityLow,
			Icon:           "/icons/task-completed.png",
			URL:            "/tasks",
			AggregateTitle: "%d Tasks Completed",
			AggregateBody:  "%d tasks were marked as completed",
			AggregateURL:   "/tasks?filter=completed",
		},
		TypeTaskUpdated: {
			Priority:       PriorityLow,
			Icon:           "/icons/task-updated.png",
			URL:            "/tasks",
			AggregateTitle: "%d Task Updates",
			AggregateBody:  "%d of your tasks were updated",
			AggregateURL:   "/tasks",
		},
		TypeDeadlineApproaching: {
			Priority:       PriorityMedium,
			Icon:           "/icons/deadline.png",
			URL:            "/tasks?filter=due-soon",
			AggregateTitle: "%d Deadline Reminders",
			AggregateBody:  "%d tasks are approaching their deadlines",
			AggregateURL:   "/tasks?filter=due-soon",
			FastAggregate:  true,
		},
		TypeDeadlineCritical: {
			Priority:       PriorityHigh,
			Icon:           "/icons/deadline-critical.png",
			URL:            "/tasks?filter=due-today",
			AggregateTitle: "%d Critical Deadlines",
			AggregateBody:  "%d tasks are due very soon",
			AggregateURL:   "/tasks?filter=due-today",
		},
		TypeDeadlineOverdue: {
			Priority:       PriorityCritical,
			Icon:           "/icons/deadline-overdue.png",
			URL:            "/tasks?filter=overdue",
			AggregateTitle: "%d Overdue Tasks",
			AggregateBody:  "%d tasks are past their deadlines",
			AggregateURL:   "/tasks?filter=overdue",
		},
		TypeAttendanceReminder: {
			Priority:       PriorityMedium,
			Icon:           "/icons/attendance.png",
			URL:            "/attendance",
			AggregateTitle: "%d Attendance Reminders",
			AggregateBody:  "You have %d pending attendance actions",
			AggregateURL:   "/attendance",
		},
		TypeAttendanceCheckedIn: {
			Priority:       PriorityLow,
			Icon:           "/icons/attendance.png",
			URL:            "/attendance",
			AggregateTitle: "%d Check-ins",
			AggregateBody:  "%d team members checked in",
			AggregateURL:   "/attendance",
		},
		TypeAttendanceCheckedOut: {
			Priority:       PriorityLow,
			Icon:           "/icons/attendance.png",
			URL:            "/attendance",
			AggregateTitle: "%d Check-outs",
			AggregateBody:  "%d team members checked out",
			AggregateURL:   "/attendance",
		},
		TypeDailyReminder: {
			Priority:       PriorityMedium,
			Icon:           "/icons/daily-reminder.png",
			URL:            "/tasks?filter=today",
			AggregateTitle: "%d Daily Reminders",
			AggregateBody:  "You have %d reminders for today",
			AggregateURL:   "/tasks?filter=today",
		},
		TypeSystemUpdate: {
			Priority:       PriorityLow,
			Icon:           "/icons/system.png",
			URL:            "/",
			AggregateTitle: "%d System Updates",
			AggregateBody:  "%d system updates are available",
			AggregateURL:   "/",
		},
		TypeSystemError: {
			Priority:       PriorityHigh,
			Icon:           "/icons/error.png",
			URL:            "/",
			AggregateTitle: "%d System Errors",
			AggregateBody:  "%d errors need your attention",
			AggregateURL:   "/",
		},
		TypeSystemSuccess: {
			Priority:       PriorityLow,
			Icon:           "/icons/success.png",
			URL:            "/",
			AggregateTitle: "%d Operations Completed",
			AggregateBody:  "%d operations completed successfully",
			AggregateURL:   "/",
		},
		TypeConnectionStatus: {
			Priority:       PriorityLow,
			Icon:           "/icons/connection.png",
			URL:            "/",
			AggregateTitle: "%d Connection Changes",
			AggregateBody:  "Your connection status changed %d times",
			AggregateURL:   "/",
		},
	}
}
