// Package handlers provides the HTTP request handlers for NumberClassifierService.
//
// The classification handler reads the "number" query parameter, validates it as
// a base 10 integer, runs the numeric predicates from the classify package and
// attaches a fun fact from the funfact package. Every response, including
// failures, carries a JSON body.
//
// Handlers receive the endpoint and error counters so each call and each failed
// call is recorded in Prometheus.
package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"NumberClassifierService/classify"
	"NumberClassifierService/commands"
	"NumberClassifierService/models"
	"NumberClassifierService/response"
	"NumberClassifierService/validation"

	"github.com/go-playground/validator/v10"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"
)

const (
	// ClassifyEndpoint is the path served by ClassifyNumberHandler.
	ClassifyEndpoint = "/api/classify-number"
	// HealthEndpoint is the path served by HealthHandler.
	HealthEndpoint = "/health"

	classifyFailedMessage = "an unexpected error occurred while classifying the number"
)

// FactResolver returns a fun fact for a number. Implementations must not fail.
type FactResolver interface {
	Resolve(ctx context.Context, n int64) string
}

// ClassifyHandler serves the classification endpoint.
type ClassifyHandler struct {
	resolver FactResolver
	validate *validator.Validate
	log      *logrus.Logger
}

// NewClassifyHandler creates a ClassifyHandler that fetches fun facts from resolver.
func NewClassifyHandler(resolver FactResolver, log *logrus.Logger) *ClassifyHandler {
	return &ClassifyHandler{
		resolver: resolver,
		validate: validation.New(),
		log:      log,
	}
}

// ClassifyNumberHandler handles GET /api/classify-number?number=<value>.
// It keeps track of the number of requests or errors using Prometheus counters.
//
// Example request:
// GET /api/classify-number?number=153
//
// Example response:
//
//	{
//	  "number": 153,
//	  "is_prime": false,
//	  "is_perfect": false,
//	  "properties": ["armstrong", "odd"],
//	  "digit_sum": 9,
//	  "fun_fact": "153 is an Armstrong number because 1^3 + 5^3 + 3^3 = 153"
//	}
//
// A missing or blank number is answered with 400 and {"number": null, "error": true}.
// A number that is not an integer is answered with 400 and the raw input echoed back.
// If classification fails unexpectedly the response is 500 with {"error": true, "message": "..."}.
func (h *ClassifyHandler) ClassifyNumberHandler(res http.ResponseWriter, req *http.Request, endPointCounter *prometheus.CounterVec, errorCounter *prometheus.CounterVec) {
	endPointCounter.WithLabelValues(ClassifyEndpoint).Inc()
	logger := h.log.WithFields(logrus.Fields{
		"operation":  "classify number",
		"request":    "Get " + ClassifyEndpoint,
		"request_id": req.Header.Get("X-Request-ID"),
	})

	raw := req.URL.Query().Get("number")
	cmd := commands.ClassifyNumberCommand{Number: raw}
	if err := h.validate.Struct(cmd); err != nil {
		errorCounter.WithLabelValues(ClassifyEndpoint).Inc()
		var echo *string
		if failedTag(err) != validation.FieldTag {
			echo = &raw
		}
		logger.WithField("number", raw).Error("invalid number: " + err.Error())
		h.write(res, logger, http.StatusBadRequest, response.NewClientError(echo))
		return
	}

	n, err := validation.ParseInteger(cmd.Number)
	if err != nil {
		errorCounter.WithLabelValues(ClassifyEndpoint).Inc()
		logger.WithField("number", raw).Error("invalid number: " + err.Error())
		h.write(res, logger, http.StatusBadRequest, response.NewClientError(&raw))
		return
	}

	result, err := h.classify(req.Context(), n)
	if err != nil {
		errorCounter.WithLabelValues(ClassifyEndpoint).Inc()
		logger.WithField("number", n).Error(err.Error())
		h.write(res, logger, http.StatusInternalServerError, response.NewServerError(classifyFailedMessage))
		return
	}

	logger.WithFields(logrus.Fields{
		"number":     result.Number,
		"properties": result.Properties,
	}).Info("Processing request")
	h.write(res, logger, http.StatusOK, result)
}

// classify runs the predicates and the fun fact lookup, turning a panic in
// either into an error.
func (h *ClassifyHandler) classify(ctx context.Context, n int64) (result models.ClassificationResult, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("classify %d: %v", n, r)
		}
	}()
	result = classify.Classify(n)
	result.FunFact = h.resolver.Resolve(ctx, n)
	return result, nil
}

func (h *ClassifyHandler) write(res http.ResponseWriter, logger *logrus.Entry, status int, v any) {
	if err := response.WriteJSON(res, status, v); err != nil {
		logger.Error("writing response: " + err.Error())
	}
}

// failedTag returns the tag of the first failed validation, or "" if err is
// not a validation failure.
func failedTag(err error) string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		return verrs[0].Tag()
	}
	return ""
}

// HealthHandler reports that the service is up.
func HealthHandler(res http.ResponseWriter, req *http.Request, endPointCounter *prometheus.CounterVec, errorCounter *prometheus.CounterVec) {
	endPointCounter.WithLabelValues(HealthEndpoint).Inc()
	response.WriteJSON(res, http.StatusOK, response.Message{Status: "ok"})
}
