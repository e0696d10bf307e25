// ABOUTME: Content library and schedule handlers for the Huma API
// ABOUTME: Library items are what content regions and content-update events refer to

package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/google/uuid"
	"signage-app-api/api/dto/mappers"
	"signage-app-api/api/dto/requests"
	"signage-app-api/api/dto/responses"
	"signage-app-api/core/domain"
	"signage-app-api/core/interfaces"
	"signage-app-api/core/store"
)

// LibraryHandler handles content and schedule HTTP requests
type LibraryHandler struct {
	store  StateStore
	logger interfaces.Logger
	now    func() time.Time
}

// NewLibraryHandler creates a new library handler
func NewLibraryHandler(deps interfaces.Dependencies, store StateStore) *LibraryHandler {
	return &LibraryHandler{
		store:  store,
		logger: deps.Logger,
		now:    time.Now,
	}
}

// RegisterRoutes registers content and schedule routes
func (h *LibraryHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "listContent",
		Method:      http.MethodGet,
		Path:        "/content",
		Summary:     "List the content library",
		Tags:        []string{"Content"},
	}, h.ListContent)

	huma.Register(api, huma.Operation{
		OperationID:   "createContent",
		Method:        http.MethodPost,
		Path:          "/content",
		Summary:       "Add a library item",
		Tags:          []string{"Content"},
		DefaultStatus: http.StatusCreated,
	}, h.CreateContent)

	huma.Register(api, huma.Operation{
		OperationID: "deleteContent",
		Method:      http.MethodDelete,
		Path:        "/content/{id}",
		Summary:     "Delete a library item",
		Description: "Regions still referring to the item show a 'Content not found' placeholder",
		Tags:        []string{"Content"},
	}, h.DeleteContent)

	huma.Register(api, huma.Operation{
		OperationID: "listSchedules",
		Method:      http.MethodGet,
		Path:        "/schedules",
		Summary:     "List schedules",
		Tags:        []string{"Schedules"},
	}, h.ListSchedules)

	huma.Register(api, huma.Operation{
		OperationID:   "createSchedule",
		Method:        http.MethodPost,
		Path:          "/schedules",
		Summary:       "Create a schedule",
		Tags:          []string{"Schedules"},
		DefaultStatus: http.StatusCreated,
	}, h.CreateSchedule)

	huma.Register(api, huma.Operation{
		OperationID: "updateSchedule",
		Method:      http.MethodPatch,
		Path:        "/schedules/{id}",
		Summary:     "Update a schedule",
		Tags:        []string{"Schedules"},
	}, h.UpdateSchedule)

	huma.Register(api, huma.Operation{
		OperationID: "deleteSchedule",
		Method:      http.MethodDelete,
		Path:        "/schedules/{id}",
		Summary:     "Delete a schedule",
		Tags:        []string{"Schedules"},
	}, h.DeleteSchedule)
}

// ItemIDInput addresses one library item or schedule
type ItemIDInput struct {
	ID string `path:"id" doc:"Identifier"`
}

// ContentOutput returns one library item
type ContentOutput struct {
	Body domain.Content
}

// ListContentOutput returns the library
type ListContentOutput struct {
	Body responses.ContentListResponse
}

// CreateContentInput defines the input for CreateContent
type CreateContentInput struct {
	Body requests.CreateContentRequest
}

// ScheduleOutput returns one schedule
type ScheduleOutput struct {
	Body domain.Schedule
}

// ListSchedulesOutput returns every schedule
type ListSchedulesOutput struct {
	Body responses.SchedulesResponse
}

// CreateScheduleInput defines the input for CreateSchedule
type CreateScheduleInput struct {
	Body requests.CreateScheduleRequest
}

// UpdateScheduleInput defines the input for UpdateSchedule
type UpdateScheduleInput struct {
	ID   string `path:"id" doc:"Schedule identifier"`
	Body store.SchedulePatch
}

// ListContent handles GET /content
func (h *LibraryHandler) ListContent(ctx context.Context, input *struct{}) (*ListContentOutput, error) {
	content := h.store.Contents()
	return &ListContentOutput{Body: responses.ContentListResponse{Content: content, Total: len(content)}}, nil
}

// CreateContent handles POST /content
func (h *LibraryHandler) CreateContent(ctx context.Context, input *CreateContentInput) (*ContentOutput, error) {
	c := mappers.ToContent(input.Body, h.now().UTC().Format(time.RFC3339))
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	if err := h.store.Dispatch(ctx, store.AddContent{Content: c}); err != nil {
		return nil, toHumaError(err)
	}
	created, err := h.store.Content(c.ID)
	if err != nil {
		return nil, toHumaError(err)
	}
	return &ContentOutput{Body: created}, nil
}

// DeleteContent handles DELETE /content/{id}
func (h *LibraryHandler) DeleteContent(ctx context.Context, input *ItemIDInput) (*struct{}, error) {
	if err := h.store.Dispatch(ctx, store.DeleteContent{ID: input.ID}); err != nil {
		return nil, toHumaError(err)
	}
	h.logger.Info("Content deleted", map[string]interface{}{"content_id": input.ID})
	return nil, nil
}

// ListSchedules handles GET /schedules
func (h *LibraryHandler) ListSchedules(ctx context.Context, input *struct{}) (*ListSchedulesOutput, error) {
	schedules := h.store.Schedules()
	return &ListSchedulesOutput{Body: responses.SchedulesResponse{Schedules: schedules, Total: len(schedules)}}, nil
}

// CreateSchedule handles POST /schedules
func (h *LibraryHandler) CreateSchedule(ctx context.Context, input *CreateScheduleInput) (*ScheduleOutput, error) {
	sch := mappers.ToSchedule(input.Body)
	if sch.ID == "" {
		sch.ID = uuid.NewString()
	}
	if err := h.store.Dispatch(ctx, store.AddSchedule{Schedule: sch}); err != nil {
		return nil, toHumaError(err)
	}
	return h.schedule(sch.ID)
}

// UpdateSchedule handles PATCH /schedules/{id}
func (h *LibraryHandler) UpdateSchedule(ctx context.Context, input *UpdateScheduleInput) (*ScheduleOutput, error) {
	if err := h.store.Dispatch(ctx, store.UpdateSchedule{ID: input.ID, Patch: input.Body}); err != nil {
		return nil, toHumaError(err)
	}
	return h.schedule(input.ID)
}

// DeleteSchedule handles DELETE /schedules/{id}
func (h *LibraryHandler) DeleteSchedule(ctx context.Context, input *ItemIDInput) (*struct{}, error) {
	if err := h.store.Dispatch(ctx, store.DeleteSchedule{ID: input.ID}); err != nil {
		return nil, toHumaError(err)
	}
	return nil, nil
}

func (h *LibraryHandler) schedule(id string) (*ScheduleOutput, error) {
	for _, sch := range h.store.Schedules() {
		if sch.ID == id {
			return &ScheduleOutput{Body: sch}, nil
		}
	}
	return nil, huma.Error404NotFound("schedule not found: " + id)
}
