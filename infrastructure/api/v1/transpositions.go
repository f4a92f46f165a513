// Package v1 implements the v1 HTTP API handlers.
package v1

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	vocal "github.com/iagovirgilio/vocal-app"
	"github.com/iagovirgilio/vocal-app/application/service"
	"github.com/iagovirgilio/vocal-app/domain/pitch"
	"github.com/iagovirgilio/vocal-app/infrastructure/api/jsonapi"
	"github.com/iagovirgilio/vocal-app/infrastructure/api/middleware"
	"github.com/iagovirgilio/vocal-app/infrastructure/api/v1/dto"
)

// TranspositionsRouter handles transposition API endpoints.
type TranspositionsRouter struct {
	client *vocal.Client
	logger *slog.Logger
}

// NewTranspositionsRouter creates a new TranspositionsRouter.
func NewTranspositionsRouter(client *vocal.Client) *TranspositionsRouter {
	return &TranspositionsRouter{
		client: client,
		logger: client.Logger(),
	}
}

// Routes returns the chi router for transposition endpoints.
func (r *TranspositionsRouter) Routes() chi.Router {
	router := chi.NewRouter()

	router.Post("/", r.Compute)

	return router
}

// Compute handles POST /api/v1/transpositions.
func (r *TranspositionsRouter) Compute(w http.ResponseWriter, req *http.Request) {
	ctx := req.Context()

	var body dto.TranspositionRequest
	if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
		middleware.WriteError(w, req, middleware.NewAPIError(http.StatusBadRequest, "malformed request body", err), r.logger)
		return
	}

	params, err := r.buildParams(req, body)
	if err != nil {
		middleware.WriteError(w, req, err, r.logger)
		return
	}

	suggestion, err := r.client.Transpositions.Compute(ctx, params)
	if err != nil {
		middleware.WriteError(w, req, err, r.logger)
		return
	}

	response := jsonapi.NewSingleResponse(jsonapi.NewResource(
		"transposition",
		strconv.Itoa(suggestion.Shift()),
		suggestionAttributes(suggestion),
	))
	middleware.WriteJSON(w, http.StatusOK, response)
}

// buildParams maps the request body onto service parameters, resolving a
// voice preset when one is named and applying the client defaults for
// omitted fields.
func (r *TranspositionsRouter) buildParams(req *http.Request, body dto.TranspositionRequest) (service.ComputeParams, error) {
	attrs := body.Data.Attributes

	singerLow, singerHigh := attrs.SingerLow, attrs.SingerHigh
	if attrs.Voice != nil {
		voice, err := r.client.Voices.Resolve(req.Context(), *attrs.Voice)
		if err != nil {
			return service.ComputeParams{}, err
		}
		singerLow, singerHigh = voice.Low(), voice.High()
	}

	margin := r.client.DefaultComfortMargin()
	if attrs.ComfortMargin != nil {
		margin = *attrs.ComfortMargin
	}

	preferFlats := r.client.PreferFlats()
	if attrs.PreferFlats != nil {
		preferFlats = *attrs.PreferFlats
	}

	mode := attrs.SongMode
	if mode == "" {
		mode = "major"
	}

	return service.ComputeParams{
		SingerLow:     singerLow,
		SingerHigh:    singerHigh,
		SongLow:       attrs.SongLow,
		SongHigh:      attrs.SongHigh,
		SongRoot:      attrs.SongKey,
		SongMode:      mode,
		ComfortMargin: margin,
		PreferFlats:   preferFlats,
		Notation:      pitch.Notation(attrs.Notation),
	}, nil
}

func suggestionAttributes(s service.Suggestion) dto.TranspositionResultAttributes {
	alternatives := make([]dto.AlternativeSchema, 0, len(s.Alternatives()))
	for _, a := range s.Alternatives() {
		alternatives = append(alternatives, dto.AlternativeSchema{
			Shift:       a.Shift(),
			Key:         a.Key(),
			Low:         a.Low(),
			High:        a.High(),
			MarginBelow: a.MarginBelow(),
			MarginAbove: a.MarginAbove(),
		})
	}

	return dto.TranspositionResultAttributes{
		Shift:            s.Shift(),
		ShiftDescription: s.ShiftDescription(),
		SuggestedKey:     s.SuggestedKey(),
		LocalizedKey:     s.LocalizedKey(),
		TransposedLow:    s.TransposedLow(),
		TransposedHigh:   s.TransposedHigh(),
		MarginBelow:      s.MarginBelow(),
		MarginAbove:      s.MarginAbove(),
		Fits:             s.Fits(),
		Alternatives:     alternatives,
	}
}
