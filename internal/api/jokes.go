package api

import (
	"crypto/subtle"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/punchlinehq/punchline-core/internal/infrastructure/mqtt"
	"github.com/punchlinehq/punchline-core/internal/joke"
)

// handleListJokes returns all jokes, newest first.
//
// Query parameters:
//   - name: case-insensitive substring filter on the author field
func (s *Server) handleListJokes(w http.ResponseWriter, r *http.Request) {
	filter := r.URL.Query().Get("name")

	jokes, err := s.repo.List(r.Context(), filter)
	if err != nil {
		writeInternalError(w, "failed to list jokes")
		return
	}

	writeJSON(w, http.StatusOK, jokes)
}

// handleGetJoke returns a single joke by ID.
func (s *Server) handleGetJoke(w http.ResponseWriter, r *http.Request) {
	id, ok := parseJokeID(w, r)
	if !ok {
		return
	}

	j, err := s.repo.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, joke.ErrJokeNotFound) {
			writeNotFound(w, "joke not found")
			return
		}
		writeInternalError(w, "failed to get joke")
		return
	}

	writeJSON(w, http.StatusOK, j)
}

// handleCreateJoke creates a new joke and pushes it to all subscribers.
func (s *Server) handleCreateJoke(w http.ResponseWriter, r *http.Request) {
	s.createJoke(w, r)
}

// handleAdvancedJoke creates a joke behind a shared-secret header check.
// The auth-key header must match the configured key exactly; the request
// is rejected before any store mutation.
func (s *Server) handleAdvancedJoke(w http.ResponseWriter, r *http.Request) {
	key := r.Header.Get("auth-key")
	if key == "" || s.secCfg.AdvancedKey == "" ||
		subtle.ConstantTimeCompare([]byte(key), []byte(s.secCfg.AdvancedKey)) != 1 {
		writeUnauthorized(w, "invalid or missing auth-key header")
		return
	}

	s.createJoke(w, r)
}

// createJoke is the shared create path for the plain and gated endpoints.
// On success the new record is broadcast to realtime subscribers and
// mirrored to the optional MQTT and InfluxDB sinks.
func (s *Server) createJoke(w http.ResponseWriter, r *http.Request) {
	var j joke.Joke
	if err := json.NewDecoder(r.Body).Decode(&j); err != nil {
		writeBadRequest(w, "invalid JSON body")
		return
	}

	if err := s.repo.Create(r.Context(), &j); err != nil {
		if joke.IsValidationError(err) {
			writeError(w, http.StatusBadRequest, ErrCodeValidation, err.Error())
			return
		}
		writeInternalError(w, "failed to create joke")
		return
	}

	s.publishJokeEvent(&j, "created")

	writeJSON(w, http.StatusCreated, j)
}

// handleUpdateJoke partially updates a joke. Absent or empty fields are
// left unchanged; an empty body still refreshes updated_at.
func (s *Server) handleUpdateJoke(w http.ResponseWriter, r *http.Request) {
	id, ok := parseJokeID(w, r)
	if !ok {
		return
	}

	// An empty body is a valid no-op update.
	var params joke.UpdateParams
	if err := json.NewDecoder(r.Body).Decode(&params); err != nil && !errors.Is(err, io.EOF) {
		writeBadRequest(w, "invalid JSON body")
		return
	}

	j, err := s.repo.Update(r.Context(), id, params)
	if err != nil {
		// Absent ids surface as a store failure on this endpoint.
		writeInternalError(w, "failed to update joke")
		return
	}

	if s.influx != nil {
		s.influx.WriteJokeEvent("updated", j.ID)
	}
	s.publishMQTTEvent(mqtt.Topics{}.JokeUpdated(), j)

	writeJSON(w, http.StatusOK, j)
}

// handleDeleteJoke removes a joke.
func (s *Server) handleDeleteJoke(w http.ResponseWriter, r *http.Request) {
	id, ok := parseJokeID(w, r)
	if !ok {
		return
	}

	if err := s.repo.Delete(r.Context(), id); err != nil {
		// Absent ids surface as a store failure on this endpoint.
		writeInternalError(w, "failed to delete joke")
		return
	}

	if s.influx != nil {
		s.influx.WriteJokeEvent("deleted", id)
	}
	s.publishMQTTEvent(mqtt.Topics{}.JokeDeleted(), map[string]int64{"id": id})

	w.WriteHeader(http.StatusNoContent)
}

// handleRandomJoke returns one uniformly random joke.
func (s *Server) handleRandomJoke(w http.ResponseWriter, r *http.Request) {
	j, err := s.repo.PickRandom(r.Context())
	if err != nil {
		if errors.Is(err, joke.ErrJokeNotFound) {
			writeNotFound(w, "no jokes available")
			return
		}
		writeInternalError(w, "failed to pick a joke")
		return
	}

	writeJSON(w, http.StatusOK, j)
}

// handleJokeStats returns catalogue statistics.
func (s *Server) handleJokeStats(w http.ResponseWriter, r *http.Request) {
	count, err := s.repo.Count(r.Context())
	if err != nil {
		writeInternalError(w, "failed to count jokes")
		return
	}

	stats := map[string]any{
		"count": count,
	}
	if s.hub != nil {
		stats["subscribers"] = s.hub.SubscriberCount()
	}

	writeJSON(w, http.StatusOK, stats)
}

// publishJokeEvent fans a newly created joke out to realtime subscribers
// and mirrors it to the optional sinks. Delivery is best-effort; failures
// never affect the HTTP response.
func (s *Server) publishJokeEvent(j *joke.Joke, action string) {
	if s.hub != nil {
		s.hub.Publish(j)
	}
	if s.influx != nil {
		s.influx.WriteJokeEvent(action, j.ID)
	}
	s.publishMQTTEvent(mqtt.Topics{}.JokeEvent(action), j)
}

// publishMQTTEvent mirrors an event payload to the broker when configured.
func (s *Server) publishMQTTEvent(topic string, payload any) {
	if s.mqtt == nil {
		return
	}

	data, err := json.Marshal(payload)
	if err != nil {
		return
	}
	if err := s.mqtt.PublishEvent(topic, data); err != nil {
		s.logger.Debug("mqtt event publish failed", "topic", topic, "error", err)
	}
}

// parseJokeID extracts and validates the {id} URL parameter.
// Writes a 400 response and returns false when the id is not an integer.
func parseJokeID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		writeBadRequest(w, "joke id must be an integer")
		return 0, false
	}
	return id, true
}
