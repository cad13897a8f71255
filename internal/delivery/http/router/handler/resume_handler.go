package handler

import (
	"net/http"

	"resumeapp/internal/delivery/http/response"
	domainerrors "resumeapp/internal/domain/errors"
	"resumeapp/internal/errors"
	"resumeapp/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// resumeIDParam is bound from the :id path segment.
type resumeIDParam struct {
	ID string `param:"id" json:"id" validate:"required,uuid"`
}

// ResumeHandler serves the résumés of the authorized user.
type ResumeHandler struct {
	uc usecase.ResumeUsecase
}

// NewResumeHandler is the constructor for ResumeHandler, injected by Fx.
func NewResumeHandler(uc usecase.ResumeUsecase) *ResumeHandler {
	return &ResumeHandler{uc: uc}
}

// List handles GET /resume.
func (h *ResumeHandler) List(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	resumes, err := h.uc.List(c.Request().Context(), user.ID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newResumeResponses(resumes), "")
}

// Create handles POST /resume.
func (h *ResumeHandler) Create(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	input := new(usecase.CreateResumeInput)
	if err := bindBody(c, input); err != nil {
		return err
	}

	resume, err := h.uc.Create(c.Request().Context(), user.ID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, newResumeResponse(resume), "Resume created successfully")
}

// Get handles GET /resume/:id.
func (h *ResumeHandler) Get(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	resumeID, err := parseResumeID(c)
	if err != nil {
		return err
	}

	resume, err := h.uc.Get(c.Request().Context(), user.ID, resumeID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newResumeResponse(resume), "")
}

// Update handles PUT /resume/:id. Omitted fields keep their value.
func (h *ResumeHandler) Update(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	resumeID, err := parseResumeID(c)
	if err != nil {
		return err
	}

	input := new(usecase.UpdateResumeInput)
	if err := bindBody(c, input); err != nil {
		return err
	}

	resume, err := h.uc.Update(c.Request().Context(), user.ID, resumeID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newResumeResponse(resume), "Resume updated successfully")
}

// Delete handles DELETE /resume/:id and returns the removed résumé.
func (h *ResumeHandler) Delete(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	resumeID, err := parseResumeID(c)
	if err != nil {
		return err
	}

	resume, err := h.uc.Delete(c.Request().Context(), user.ID, resumeID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newResumeResponse(resume), "Resume deleted successfully")
}

func parseResumeID(c echo.Context) (uuid.UUID, error) {
	param := resumeIDParam{ID: c.Param("id")}
	if err := c.Validate(&param); err != nil {
		return uuid.Nil, err
	}

	resumeID, err := uuid.Parse(param.ID)
	if err != nil {
		return uuid.Nil, domainerrors.ErrValidationFailed.WithDetails("id: uuid")
	}

	return resumeID, nil
}
