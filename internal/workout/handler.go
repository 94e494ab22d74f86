package workout

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/2beens/fittrack/internal/telemetry/tracing"
	"github.com/2beens/fittrack/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=workout_test

type workoutService interface {
	ListTemplates(ctx context.Context, ownerID string) ([]Template, error)
	CreateTemplate(ctx context.Context, ownerID, title, name string, exercises []ExerciseEntry) (*Template, error)
	CreateTemplateFromSession(ctx context.Context, ownerID, sessionID, name string) (*Template, error)
	DeleteTemplate(ctx context.Context, ownerID, templateID string) error
	InstantiateFromTemplate(ctx context.Context, ownerID, templateID string) (*Session, error)
	InstantiateFromDefinition(ctx context.Context, ownerID string, d Definition) (*Session, error)
	GetSession(ctx context.Context, ownerID, sessionID string) (*Session, error)
	ListSessions(ctx context.Context, ownerID string, params ListSessionsParams) ([]Session, error)
	SetCompletion(ctx context.Context, ownerID, sessionID string, exerciseIdx, setIdx int, completed bool) error
	CompleteSession(ctx context.Context, ownerID, sessionID string, params CompleteSessionParams) (*CompleteSessionResult, error)
}

type CreateTemplateRequest struct {
	Title         string          `json:"title"`
	TemplateName  string          `json:"templateName"`
	Exercises     []ExerciseEntry `json:"exercises"`
	FromSessionID string          `json:"fromSessionId"`
}

type CreateSessionRequest struct {
	DefinitionKey string          `json:"definitionKey"`
	Title         string          `json:"title"`
	Exercises     []ExerciseEntry `json:"exercises"`
}

type SetCompletionRequest struct {
	Completed *bool `json:"completed"`
}

type CompleteSessionRequest struct {
	Rating         *int   `json:"rating"`
	Comment        string `json:"comment"`
	SaveAsTemplate string `json:"saveAsTemplate"`
}

type SessionResponse struct {
	Session
	Progress Progress `json:"progress"`
}

type CompleteSessionResponse struct {
	Session       SessionResponse `json:"session"`
	Template      *Template       `json:"template,omitempty"`
	TemplateError string          `json:"templateError,omitempty"`
}

type DeleteTemplateResponse struct {
	DeletedID string `json:"deletedId"`
}

func NewSessionResponse(s Session) SessionResponse {
	return SessionResponse{
		Session:  s,
		Progress: s.Progress(),
	}
}

type Handler struct {
	service workoutService
}

func NewHandler(service workoutService) *Handler {
	return &Handler{
		service: service,
	}
}

func isJSON(r *http.Request) bool {
	return r.Header.Get("Content-Type") == pkg.ContentType.JSON
}

func (handler *Handler) HandleListTemplates(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workout.listTemplates")
	defer span.End()

	templates, err := handler.service.ListTemplates(ctx, pkg.OwnerID(r))
	if err != nil {
		pkg.WriteError(w, "list templates", err)
		return
	}
	pkg.WriteJSON(w, templates, http.StatusOK)
}

func (handler *Handler) HandleCreateTemplate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workout.createTemplate")
	defer span.End()

	if !isJSON(r) {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var req CreateTemplateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Tracef("create template, unmarshal json params: %s", err)
		http.Error(w, "create template failed, invalid json", http.StatusBadRequest)
		return
	}

	ownerID := pkg.OwnerID(r)
	var (
		t   *Template
		err error
	)
	if req.FromSessionID != "" {
		t, err = handler.service.CreateTemplateFromSession(ctx, ownerID, req.FromSessionID, req.TemplateName)
	} else {
		t, err = handler.service.CreateTemplate(ctx, ownerID, req.Title, req.TemplateName, req.Exercises)
	}
	if err != nil {
		pkg.WriteError(w, "create template", err)
		return
	}

	pkg.WriteJSON(w, t, http.StatusCreated)
}

func (handler *Handler) HandleDeleteTemplate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workout.deleteTemplate")
	defer span.End()

	id := mux.Vars(r)["id"]
	if id == "" {
		http.Error(w, "error, id empty", http.StatusBadRequest)
		return
	}

	if err := handler.service.DeleteTemplate(ctx, pkg.OwnerID(r), id); err != nil {
		pkg.WriteError(w, "delete template", err)
		return
	}

	pkg.WriteJSON(w, DeleteTemplateResponse{DeletedID: id}, http.StatusOK)
}

func (handler *Handler) HandleInstantiateTemplate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workout.instantiateTemplate")
	defer span.End()

	id := mux.Vars(r)["id"]
	if id == "" {
		http.Error(w, "error, id empty", http.StatusBadRequest)
		return
	}

	session, err := handler.service.InstantiateFromTemplate(ctx, pkg.OwnerID(r), id)
	if err != nil {
		pkg.WriteError(w, "instantiate template", err)
		return
	}

	log.Debugf("session [%s] started from template [%s]", session.ID, id)
	pkg.WriteJSON(w, NewSessionResponse(*session), http.StatusCreated)
}

func (handler *Handler) HandleListDefinitions(w http.ResponseWriter, _ *http.Request) {
	pkg.WriteJSON(w, Definitions(), http.StatusOK)
}

func (handler *Handler) HandleCreateSession(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workout.createSession")
	defer span.End()

	if !isJSON(r) {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var req CreateSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Tracef("create session, unmarshal json params: %s", err)
		http.Error(w, "create session failed, invalid json", http.StatusBadRequest)
		return
	}

	def := Definition{Title: req.Title, Exercises: req.Exercises}
	if req.DefinitionKey != "" {
		known, ok := DefinitionByKey(req.DefinitionKey)
		if !ok {
			http.Error(w, "error, unknown definition key", http.StatusNotFound)
			return
		}
		def = known
		if req.Title != "" {
			def.Title = req.Title
		}
	}

	session, err := handler.service.InstantiateFromDefinition(ctx, pkg.OwnerID(r), def)
	if err != nil {
		pkg.WriteError(w, "create session", err)
		return
	}

	pkg.WriteJSON(w, NewSessionResponse(*session), http.StatusCreated)
}

func (handler *Handler) HandleListSessions(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workout.listSessions")
	defer span.End()

	params := ListSessionsParams{
		OnlyCompleted: r.URL.Query().Get("completed") == "true",
	}
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		limit, err := strconv.Atoi(limitStr)
		if err != nil || limit < 0 {
			http.Error(w, "error, invalid limit", http.StatusBadRequest)
			return
		}
		params.Limit = limit
	}

	sessions, err := handler.service.ListSessions(ctx, pkg.OwnerID(r), params)
	if err != nil {
		pkg.WriteError(w, "list sessions", err)
		return
	}

	resp := make([]SessionResponse, 0, len(sessions))
	for _, s := range sessions {
		resp = append(resp, NewSessionResponse(s))
	}
	pkg.WriteJSON(w, resp, http.StatusOK)
}

func (handler *Handler) HandleGetSession(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workout.getSession")
	defer span.End()

	session, err := handler.service.GetSession(ctx, pkg.OwnerID(r), mux.Vars(r)["id"])
	if err != nil {
		pkg.WriteError(w, "get session", err)
		return
	}
	pkg.WriteJSON(w, NewSessionResponse(*session), http.StatusOK)
}

func (handler *Handler) HandleSetCompletion(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workout.setCompletion")
	defer span.End()

	if !isJSON(r) {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	vars := mux.Vars(r)
	exerciseIdx, err := strconv.Atoi(vars["exercise"])
	if err != nil {
		http.Error(w, "error, exercise index NaN", http.StatusBadRequest)
		return
	}
	setIdx, err := strconv.Atoi(vars["set"])
	if err != nil {
		http.Error(w, "error, set index NaN", http.StatusBadRequest)
		return
	}

	var req SetCompletionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Completed == nil {
		http.Error(w, "error, completed flag missing", http.StatusBadRequest)
		return
	}

	ownerID := pkg.OwnerID(r)
	sessionID := vars["id"]
	if err := handler.service.SetCompletion(ctx, ownerID, sessionID, exerciseIdx, setIdx, *req.Completed); err != nil {
		pkg.WriteError(w, "set completion", err)
		return
	}

	session, err := handler.service.GetSession(ctx, ownerID, sessionID)
	if err != nil {
		pkg.WriteError(w, "get session", err)
		return
	}
	pkg.WriteJSON(w, NewSessionResponse(*session), http.StatusOK)
}

func (handler *Handler) HandleCompleteSession(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workout.completeSession")
	defer span.End()

	if !isJSON(r) {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var req CompleteSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Tracef("complete session, unmarshal json params: %s", err)
		http.Error(w, "complete session failed, invalid json", http.StatusBadRequest)
		return
	}
	if req.Rating == nil {
		http.Error(w, ErrRatingOutOfRange.Error(), http.StatusBadRequest)
		return
	}

	result, err := handler.service.CompleteSession(ctx, pkg.OwnerID(r), mux.Vars(r)["id"], CompleteSessionParams{
		Rating:         *req.Rating,
		Comment:        req.Comment,
		SaveAsTemplate: req.SaveAsTemplate,
	})
	if err != nil {
		pkg.WriteError(w, "complete session", err)
		return
	}

	resp := CompleteSessionResponse{
		Session:  NewSessionResponse(result.Session),
		Template: result.Template,
	}
	if result.TemplateErr != nil {
		resp.TemplateError = result.TemplateErr.Error()
	}
	pkg.WriteJSON(w, resp, http.StatusOK)
}
