package v1

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	vocal "github.com/iagovirgilio/vocal-app"
	"github.com/iagovirgilio/vocal-app/infrastructure/api/jsonapi"
	"github.com/iagovirgilio/vocal-app/infrastructure/api/middleware"
	"github.com/iagovirgilio/vocal-app/infrastructure/api/v1/dto"
)

// VoicesRouter handles voice-preset API endpoints.
type VoicesRouter struct {
	client *vocal.Client
	logger *slog.Logger
}

// NewVoicesRouter creates a new VoicesRouter.
func NewVoicesRouter(client *vocal.Client) *VoicesRouter {
	return &VoicesRouter{
		client: client,
		logger: client.Logger(),
	}
}

// Routes returns the chi router for voice endpoints.
func (r *VoicesRouter) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/", r.List)
	router.Get("/{name}", r.Get)

	return router
}

// List handles GET /api/v1/voices.
func (r *VoicesRouter) List(w http.ResponseWriter, req *http.Request) {
	voices := r.client.Voices.List(req.Context())

	resources := make([]*jsonapi.Resource, len(voices))
	for i, v := range voices {
		resources[i] = jsonapi.NewResource("voice", v.Name(), dto.VoiceAttributes{
			Name: v.Name(),
			Low:  v.Low(),
			High: v.High(),
		})
	}

	middleware.WriteJSON(w, http.StatusOK, jsonapi.NewListResponse(resources))
}

// Get handles GET /api/v1/voices/{name}.
func (r *VoicesRouter) Get(w http.ResponseWriter, req *http.Request) {
	name := chi.URLParam(req, "name")

	voice, err := r.client.Voices.Resolve(req.Context(), name)
	if err != nil {
		middleware.WriteError(w, req, err, r.logger)
		return
	}

	response := jsonapi.NewSingleResponse(jsonapi.NewResource("voice", voice.Name(), dto.VoiceAttributes{
		Name: voice.Name(),
		Low:  voice.Low(),
		High: voice.High(),
	}))
	middleware.WriteJSON(w, http.StatusOK, response)
}
