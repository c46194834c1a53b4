package httpserver

import (
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"staybook/internal/adapters/images"
	"staybook/internal/app"
	"staybook/internal/catalog"
	"staybook/internal/domain"
	"staybook/internal/query"
)

const (
	catalogPageSize = 10
	imageCountMax   = 10
)

var errInvalidCount = fmt.Errorf("%w: count must be between 1 and %d", domain.ErrInvalidArgument, imageCountMax)

type Handlers struct {
	Q         *app.QueryService
	Favorites *app.FavoritesService
	Images    *images.Resolver
}

type problem struct {
	Type   string `json:"type"`
	Title  string `json:"title"`
	Status int    `json:"status"`
	Detail string `json:"detail,omitempty"`
}

func (s *Server) MountHandlers(h *Handlers) {
	s.mux.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200); _, _ = w.Write([]byte("ok")) })

	s.mux.Route("/api", func(r chi.Router) {
		r.Get("/hotels/all", h.listAllHotels)
		r.Get("/hotels", h.searchHotels)
		r.Get("/hotels/{id}", h.getHotel)

		r.Get("/cities", h.listCities)
		r.Get("/cities/{slug}", h.getCity)

		r.Get("/images", h.searchImages)

		r.Get("/favorites", h.listFavorites)
		r.Post("/favorites", h.addFavorite)
		r.Delete("/favorites/{id}", h.removeFavorite)
	})
}

func writeProblem(w http.ResponseWriter, status int, title, detail string) {
	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(problem{Type: "about:blank", Title: title, Status: status, Detail: detail}); err != nil {
		log.Error().Err(err).Msg("write JSON problem response failed")
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Msg("write JSON response failed")
	}
}

func badRequest(w http.ResponseWriter, err error) {
	writeProblem(w, http.StatusBadRequest, "Invalid Parameter", err.Error())
}

// GET /api/hotels/all
// Filter, sort and paginate the lazily-generated population.
func (h *Handlers) listAllHotels(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	f, err := catalogFilters(q)
	if err != nil {
		badRequest(w, err)
		return
	}
	page, limit, err := pageParams(q, catalogPageSize)
	if err != nil {
		badRequest(w, err)
		return
	}

	out, err := h.Q.SearchAll(r.Context(), app.SearchAllParams{
		Filters: f,
		Sort:    query.ParseSortKey(q.Get("sort")),
		Page:    page,
		Limit:   limit,
	})
	if err != nil {
		writeProblem(w, http.StatusInternalServerError, "Internal Error", "hotel search failed")
		return
	}
	writeJSON(w, http.StatusOK, out)
}

// GET /api/hotels
// Location-scoped search. location is the one mandatory parameter.
func (h *Handlers) searchHotels(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	location := q.Get("location")
	if location == "" {
		writeProblem(w, http.StatusBadRequest, "Missing Parameter", "location is required")
		return
	}
	f, err := searchFilters(q)
	if err != nil {
		badRequest(w, err)
		return
	}
	// checkIn/checkOut are accepted for interface compatibility but do not
	// filter generated inventory; guests still has to be numeric.
	if _, err := intParam(q, "guests"); err != nil {
		badRequest(w, err)
		return
	}

	hotels, err := h.Q.SearchLocation(r.Context(), location, f, query.ParseSortKey(q.Get("sortBy")))
	if err != nil {
		writeProblem(w, http.StatusInternalServerError, "Internal Error", "hotel search failed")
		return
	}
	if h.Images != nil {
		h.Images.Decorate(r.Context(), hotels)
	}
	writeJSON(w, http.StatusOK, map[string]any{"hotels": hotels})
}

// GET /api/hotels/{id}
// An id outside the population is synthesized deterministically from the id.
func (h *Handlers) getHotel(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		writeProblem(w, http.StatusNotFound, "Not Found", "hotel not found")
		return
	}
	hotel, err := h.Q.GetHotel(r.Context(), id)
	if err != nil {
		writeProblem(w, http.StatusNotFound, "Not Found", "hotel not found")
		return
	}

	resp := map[string]any{"hotel": hotel}
	etag, body := calcETagAndBody(resp)
	if inm := r.Header.Get("If-None-Match"); inm != "" && inm == etag {
		w.Header().Set("ETag", etag)
		w.WriteHeader(http.StatusNotModified)
		return
	}
	w.Header().Set("ETag", etag)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(body); err != nil {
		log.Error().Err(err).Msg("failed to write getHotel body")
	}
}

// calcETagAndBody marshals once and hashes once, returning both ETag and body.
func calcETagAndBody(v any) (string, []byte) {
	body, err := json.Marshal(v)
	if err != nil {
		log.Error().Err(err).Msg("failed to marshal object for ETag/body")
		return "", nil
	}
	sum := sha1.Sum(body)
	return `W/"` + hex.EncodeToString(sum[:]) + `"`, body
}

// GET /api/cities[?popular=true]
func (h *Handlers) listCities(w http.ResponseWriter, r *http.Request) {
	if r.URL.Query().Get("popular") == "true" {
		writeJSON(w, http.StatusOK, map[string]any{"cities": catalog.PopularCities()})
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"cities": catalog.AllCities()})
}

// GET /api/cities/{slug}
func (h *Handlers) getCity(w http.ResponseWriter, r *http.Request) {
	city, ok := catalog.CityBySlug(chi.URLParam(r, "slug"))
	if !ok {
		writeProblem(w, http.StatusNotFound, "Not Found", "city not found")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"city": city})
}

// GET /api/images?query=&count=
// Provider failures never surface: the client always gets an array.
func (h *Handlers) searchImages(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	search := q.Get("query")
	if search == "" {
		writeProblem(w, http.StatusBadRequest, "Missing Parameter", "query is required")
		return
	}
	count := 5
	if c, err := intParam(q, "count"); err != nil {
		badRequest(w, err)
		return
	} else if c != nil {
		if *c < 1 || *c > imageCountMax {
			badRequest(w, errInvalidCount)
			return
		}
		count = *c
	}

	urls := []string{}
	if h.Images != nil {
		if found := h.Images.Resolve(r.Context(), search, count); found != nil {
			urls = found
		}
	}
	writeJSON(w, http.StatusOK, map[string]any{"images": urls})
}

// GET /api/favorites?userId=
func (h *Handlers) listFavorites(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("userId")
	if userID == "" {
		writeProblem(w, http.StatusBadRequest, "Missing Parameter", "userId is required")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"favorites": h.Favorites.List(r.Context(), userID)})
}

// POST /api/favorites {"userId": "...", "hotelId": 42}
func (h *Handlers) addFavorite(w http.ResponseWriter, r *http.Request) {
	var body struct {
		UserID  string `json:"userId"`
		HotelID int    `json:"hotelId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.UserID == "" || body.HotelID == 0 {
		writeProblem(w, http.StatusBadRequest, "Invalid Body", "userId and hotelId are required")
		return
	}
	fav, err := h.Favorites.Add(r.Context(), body.UserID, body.HotelID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeProblem(w, http.StatusNotFound, "Not Found", "hotel not found")
			return
		}
		writeProblem(w, http.StatusInternalServerError, "Internal Error", "could not add favorite")
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{"favorite": fav})
}

// DELETE /api/favorites/{id}
func (h *Handlers) removeFavorite(w http.ResponseWriter, r *http.Request) {
	if err := h.Favorites.Remove(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeProblem(w, http.StatusNotFound, "Not Found", "favorite not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
