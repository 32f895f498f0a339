package api

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"tableflip.dev/gorev/pkg/task"
)

// ListParams are the query parameters for the paginated task listing.
// Zero-valued filters are omitted from the query entirely rather than sent
// empty.
type ListParams struct {
	Page       int
	PageSize   int
	Status     task.StatusFilter
	SearchTerm string
	EndDate    *task.Date
}

// Query renders the parameters as a URL query string. Page and pageSize are
// always present; statusFilter only when a status is selected; searchTerm
// URL-encoded only when non-empty; the due-date upper bound only when set.
func (p ListParams) Query() string {
	q := url.Values{}
	q.Set("page", strconv.Itoa(p.Page))
	q.Set("pageSize", strconv.Itoa(p.PageSize))
	if p.Status != task.StatusAll {
		q.Set("statusFilter", strconv.Itoa(int(p.Status)))
	}
	if p.SearchTerm != "" {
		q.Set("searchTerm", p.SearchTerm)
	}
	if p.EndDate != nil {
		q.Set("dueDate", p.EndDate.String())
	}
	return q.Encode()
}

// CreateTaskRequest is the creation payload. DueDate is optional.
type CreateTaskRequest struct {
	Title   string     `json:"title"`
	DueDate *task.Date `json:"dueDate,omitempty"`
}

// ListTasks fetches one page of tasks under the given parameters.
func (c *Client) ListTasks(ctx context.Context, params ListParams) (*task.Page, error) {
	var page task.Page
	if err := c.do(ctx, "GET", "/api/tasks?"+params.Query(), nil, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// CreateTask creates a task and returns the server-assigned id.
func (c *Client) CreateTask(ctx context.Context, req CreateTaskRequest) (int64, error) {
	var id int64
	if err := c.do(ctx, "POST", "/api/tasks", req, &id); err != nil {
		return 0, err
	}
	return id, nil
}

// UpdateTaskTitle sends a targeted title update.
func (c *Client) UpdateTaskTitle(ctx context.Context, id int64, title string) error {
	body := struct {
		Title string `json:"title"`
	}{Title: title}
	return c.do(ctx, "PUT", fmt.Sprintf("/api/tasks/%d/title", id), body, nil)
}

// UpdateTaskStatus sends a targeted completion update.
func (c *Client) UpdateTaskStatus(ctx context.Context, id int64, isCompleted bool) error {
	body := struct {
		IsCompleted bool `json:"isCompleted"`
	}{IsCompleted: isCompleted}
	return c.do(ctx, "PUT", fmt.Sprintf("/api/tasks/%d/status", id), body, nil)
}

// UpdateTaskDueDate sends a targeted due-date update. A nil date serializes
// as an explicit null, which the service reads as "remove the deadline" —
// distinct from omitting the field.
func (c *Client) UpdateTaskDueDate(ctx context.Context, id int64, dueDate *task.Date) error {
	body := struct {
		DueDate *task.Date `json:"dueDate"`
	}{DueDate: dueDate}
	return c.do(ctx, "PUT", fmt.Sprintf("/api/tasks/%d/date", id), body, nil)
}

// DeleteTask removes the task.
func (c *Client) DeleteTask(ctx context.Context, id int64) error {
	return c.do(ctx, "DELETE", fmt.Sprintf("/api/tasks/%d", id), nil, nil)
}
