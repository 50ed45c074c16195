package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/oapi-codegen/runtime"

	"github.com/pkordes/radio-stations/backend/internal/domain"
)

// stationFields is the wire shape of create and patch bodies. Pointers
// distinguish an absent (or null) field from a zero value.
type stationFields struct {
	Name   *string  `json:"name"`
	Freq   *float64 `json:"freq"`
	Actual *bool    `json:"actual"`
}

// StationListResponse is the body of GET /stations.
type StationListResponse struct {
	Stations []domain.Station `json:"stations"`
}

// StationEnvelope is the body of DELETE /stations/{id}.
type StationEnvelope struct {
	Station domain.Station `json:"station"`
}

// errEmptyBody is returned by decodeStationFields when the body has no JSON value.
var errEmptyBody = errors.New("request body is required")

// CreateStation handles POST /stations.
func (s *Server) CreateStation(w http.ResponseWriter, r *http.Request) {
	fields, err := decodeStationFields(r)
	if err != nil {
		s.writeDecodeError(w, err)
		return
	}
	station, err := requestToStation(fields)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, requestBody(err.Error()))
		return
	}

	created, err := s.stations.Create(r.Context(), station)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, created)
}

// ListStations handles GET /stations.
func (s *Server) ListStations(w http.ResponseWriter, r *http.Request) {
	stations, err := s.stations.List(r.Context())
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	if stations == nil {
		stations = []domain.Station{}
	}
	writeJSON(w, http.StatusOK, StationListResponse{Stations: stations})
}

// GetStation handles GET /stations/{id}. The station is returned unwrapped.
func (s *Server) GetStation(w http.ResponseWriter, r *http.Request) {
	id, ok := s.bindStationID(w, r)
	if !ok {
		return
	}

	station, err := s.stations.GetByID(r.Context(), id)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, station)
}

// DeleteStation handles DELETE /stations/{id}. The removed station is
// returned wrapped as {"station": ...}.
func (s *Server) DeleteStation(w http.ResponseWriter, r *http.Request) {
	id, ok := s.bindStationID(w, r)
	if !ok {
		return
	}

	deleted, err := s.stations.Delete(r.Context(), id)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, StationEnvelope{Station: deleted})
}

// UpdateStation handles PATCH /stations/{id}. Only fields present in the
// body are written. An empty body leaves the station unchanged.
func (s *Server) UpdateStation(w http.ResponseWriter, r *http.Request) {
	id, ok := s.bindStationID(w, r)
	if !ok {
		return
	}

	fields, err := decodeStationFields(r)
	if err != nil && !errors.Is(err, errEmptyBody) {
		s.writeDecodeError(w, err)
		return
	}

	updated, err := s.stations.Update(r.Context(), id, requestToPatch(fields))
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

// bindStationID extracts the {id} path parameter the same way generated
// OpenAPI servers do. Format checking is left to the store, which reports
// domain.ErrInvalidID.
func (s *Server) bindStationID(w http.ResponseWriter, r *http.Request) (string, bool) {
	var id string
	err := runtime.BindStyledParameterWithOptions("simple", "id", chi.URLParam(r, "id"), &id,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		writeJSON(w, http.StatusNotFound, notFoundBody("station not found"))
		return "", false
	}
	return id, true
}

// writeDecodeError maps body decoding failures. Oversized bodies get 413;
// everything else is the client's malformed input.
func (s *Server) writeDecodeError(w http.ResponseWriter, err error) {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		WriteRequestTooLarge(w, tooLarge.Limit)
		return
	}
	writeJSON(w, http.StatusBadRequest, requestBody(err.Error()))
}

// --- mapping helpers --------------------------------------------------------

// decodeStationFields reads exactly one JSON object from the request body.
// A field of the wrong JSON type is reported by name; anything after the
// object other than whitespace rejects the whole body.
func decodeStationFields(r *http.Request) (stationFields, error) {
	var f stationFields
	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(&f); err != nil {
		return stationFields{}, classifyDecodeError(err, true)
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return stationFields{}, classifyDecodeError(err, false)
	}
	return f, nil
}

// classifyDecodeError turns a json.Decoder failure into the error the client
// sees. first is false when the failure came from data trailing the object.
func classifyDecodeError(err error, first bool) error {
	var typeErr *json.UnmarshalTypeError
	var tooLarge *http.MaxBytesError
	switch {
	case first && errors.Is(err, io.EOF):
		return errEmptyBody
	case errors.As(err, &tooLarge):
		return err
	case first && errors.As(err, &typeErr) && typeErr.Field != "":
		return fmt.Errorf("%s has the wrong type", typeErr.Field)
	default:
		return errors.New("request body must be a JSON object")
	}
}

// requestToStation converts a create body into a domain.Station.
// Returns an error if a required field is missing.
func requestToStation(f stationFields) (domain.Station, error) {
	if f.Name == nil {
		return domain.Station{}, errors.New("name is required")
	}
	if f.Freq == nil {
		return domain.Station{}, errors.New("freq is required")
	}
	st := domain.Station{Name: *f.Name, Freq: *f.Freq}
	if f.Actual != nil {
		st.Actual = *f.Actual
	}
	return st, nil
}

func requestToPatch(f stationFields) domain.StationPatch {
	return domain.StationPatch{Name: f.Name, Freq: f.Freq, Actual: f.Actual}
}
