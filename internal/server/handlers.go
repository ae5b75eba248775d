package server

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/goliatone/go-formcheck/pkg/render"
	"github.com/goliatone/go-formcheck/pkg/validation"
)

const (
	channelForm = "form"
	channelAPI  = "api"
)

func (s *Server) showForm(c echo.Context) error {
	return s.renderForm(c, http.StatusOK, render.RenderOptions{})
}

// submitForm validates every field at once. A rejected submission is shown
// again with all messages and the non-secret values kept; an accepted one
// clears the form and shows the success banner.
func (s *Server) submitForm(c echo.Context) error {
	var values validation.Values
	if err := c.Bind(&values); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "malformed form submission").SetInternal(err)
	}

	report := validation.ValidateAll(values)
	s.metrics.ObserveReport(channelForm, report)

	status := http.StatusUnprocessableEntity
	if report.Valid {
		status = http.StatusOK
		s.logger.Info("submission accepted",
			zap.String("submission_id", uuid.NewString()),
			zap.String("request_id", requestID(c)),
			zap.String("username", values.Username),
		)
	} else {
		s.logger.Debug("submission rejected",
			zap.String("request_id", requestID(c)),
			zap.Any("issues", report.Messages()),
		)
	}
	return s.renderForm(c, status, render.ReportOptions(s.form, values, report, s.cfg.Success()))
}

func (s *Server) renderForm(c echo.Context, status int, opts render.RenderOptions) error {
	out, err := s.html.Render(c.Request().Context(), s.form, s.renderOptions(c, opts))
	if err != nil {
		return err
	}
	return c.Blob(status, s.html.ContentType(), out)
}

type liveResponse struct {
	Results []validation.Result `json:"results"`
}

// validateField runs the live check for one field as the user types.
func (s *Server) validateField(c echo.Context) error {
	field, err := validation.ParseField(c.Param("field"))
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	}
	var values validation.Values
	if err := c.Bind(&values); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "malformed values").SetInternal(err)
	}

	results, err := s.live.Changed(field, values)
	if err != nil {
		return err
	}
	s.metrics.ObserveLive(results)
	return c.JSON(http.StatusOK, liveResponse{Results: results})
}

type signupResponse struct {
	Valid   bool                        `json:"valid"`
	ID      string                      `json:"id,omitempty"`
	Errors  map[validation.Field]string `json:"errors,omitempty"`
	Results []validation.Result         `json:"results,omitempty"`
}

// apiSignup is the JSON variant of submitForm, validated through the echo
// struct validator.
func (s *Server) apiSignup(c echo.Context) error {
	var values validation.Values
	if err := c.Bind(&values); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "malformed JSON body").SetInternal(err)
	}

	err := c.Validate(&values)
	var reportErr *validation.ReportError
	switch {
	case err == nil:
		s.metrics.ObserveReport(channelAPI, validation.ValidateAll(values))
		id := uuid.NewString()
		s.logger.Info("submission accepted",
			zap.String("submission_id", id),
			zap.String("request_id", requestID(c)),
			zap.String("channel", channelAPI),
		)
		return c.JSON(http.StatusOK, signupResponse{Valid: true, ID: id})
	case errors.As(err, &reportErr):
		s.metrics.ObserveReport(channelAPI, reportErr.Report)
		return c.JSON(http.StatusUnprocessableEntity, signupResponse{
			Errors:  reportErr.Report.Messages(),
			Results: reportErr.Report.Results,
		})
	default:
		return echo.NewHTTPError(http.StatusBadRequest, err.Error()).SetInternal(err)
	}
}

func (s *Server) showPlayground(c echo.Context) error {
	out, err := s.playground.render(c.QueryParams())
	if err != nil {
		return err
	}
	return c.HTMLBlob(http.StatusOK, out)
}
