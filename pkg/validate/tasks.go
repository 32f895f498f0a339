package validate

import (
	"strings"
	"unicode/utf8"

	"tableflip.dev/gorev/pkg/msg"
	"tableflip.dev/gorev/pkg/task"
)

// TaskTitle applies the shared title rules to an already-trimmed candidate.
func (v *Validator) TaskTitle(title string) string {
	switch {
	case title == "":
		return v.loc.T(msg.TaskTitleRequired)
	case utf8.RuneCountInString(title) < TitleMin:
		return v.loc.T(msg.TaskTitleTooShort)
	case utf8.RuneCountInString(title) > TitleMax:
		return v.loc.T(msg.TaskTitleTooLong)
	case !titlePattern.MatchString(title):
		return v.loc.T(msg.TaskTitleInvalidFormat)
	}
	return ""
}

// CreateTask validates a creation record. The due date, when present, must
// fall strictly after the current calendar day; today is rejected.
func (v *Validator) CreateTask(title string, dueDate *task.Date) Errors {
	errs := Errors{}
	if m := v.TaskTitle(strings.TrimSpace(title)); m != "" {
		errs["title"] = m
	}
	if dueDate != nil && !dueDate.After(task.Today()) {
		errs["dueDate"] = v.loc.T(msg.TaskDueDateFuture)
	}
	return errs
}

// UpdateTaskTitle validates a targeted title update.
func (v *Validator) UpdateTaskTitle(id int64, title string) Errors {
	errs := v.taskID(id)
	if m := v.TaskTitle(strings.TrimSpace(title)); m != "" {
		errs["title"] = m
	}
	return errs
}

// UpdateTaskStatus validates a completion toggle.
func (v *Validator) UpdateTaskStatus(id int64) Errors {
	return v.taskID(id)
}

// UpdateTaskDueDate validates a due-date update. An empty raw value clears
// the deadline and is always valid; otherwise the value only has to parse as
// a calendar date. Unlike creation there is no future-only rule here — the
// asymmetry matches the remote contract and is kept pending product
// clarification.
func (v *Validator) UpdateTaskDueDate(id int64, raw string) Errors {
	errs := v.taskID(id)
	if strings.TrimSpace(raw) == "" {
		return errs
	}
	if _, err := task.ParseDate(strings.TrimSpace(raw)); err != nil {
		errs["dueDate"] = v.loc.T(msg.TaskDueDateInvalid)
	}
	return errs
}

// DeleteTask validates a deletion request.
func (v *Validator) DeleteTask(id int64) Errors {
	return v.taskID(id)
}

// ListQuery validates pagination and search parameters.
func (v *Validator) ListQuery(page, pageSize int, searchTerm string) Errors {
	errs := Errors{}
	if page < 1 {
		errs["page"] = v.loc.T(msg.PageNumberInvalid)
	}
	if pageSize < PageSizeMin || pageSize > PageSizeMax {
		errs["pageSize"] = v.loc.T(msg.PageSizeInvalid)
	}
	if utf8.RuneCountInString(searchTerm) > SearchMax {
		errs["searchTerm"] = v.loc.T(msg.SearchTermTooLong)
	}
	return errs
}

func (v *Validator) taskID(id int64) Errors {
	errs := Errors{}
	if id <= 0 {
		errs["id"] = v.loc.T(msg.TaskIDRequired)
	}
	return errs
}
