// Package handlers provides HTTP request handlers for the price-comparison
// API endpoints. It implements the HTTPHandler interface with dependency
// injection.
package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/kcbailey111/AffordRX/catalog"
	"github.com/kcbailey111/AffordRX/interfaces"
	"github.com/kcbailey111/AffordRX/logging"
	"github.com/kcbailey111/AffordRX/metrics"
	"github.com/kcbailey111/AffordRX/search"
)

// Error kinds returned in the "kind" field of error responses. Clients
// branch on these rather than on the message text.
const (
	KindValidationError   = "VALIDATION_ERROR"
	KindDataNotReady      = "DATA_NOT_READY"
	KindDrugNotFound      = "DRUG_NOT_FOUND"
	KindNoPharmacyResults = "NO_PHARMACY_RESULTS"
)

// HTTPHandlerImpl implements the interfaces.HTTPHandler interface
type HTTPHandlerImpl struct {
	dataStore interfaces.DataStore
	validator interfaces.DataValidator
	searcher  *search.Service
	checker   interfaces.HealthChecker
}

// NewHTTPHandler creates a new HTTP handler with injected dependencies
func NewHTTPHandler(dataStore interfaces.DataStore, validator interfaces.DataValidator,
	searcher *search.Service, checker interfaces.HealthChecker) interfaces.HTTPHandler {
	return &HTTPHandlerImpl{
		dataStore: dataStore,
		validator: validator,
		searcher:  searcher,
		checker:   checker,
	}
}

type errorResponse struct {
	Error       string   `json:"error"`
	Kind        string   `json:"kind"`
	Message     string   `json:"message"`
	Code        int      `json:"code"`
	Suggestions []string `json:"suggestions,omitempty"`
}

// RespondWithJSON writes a JSON response
func (h *HTTPHandlerImpl) RespondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	data, err := json.Marshal(payload)
	if err != nil {
		logging.Error("Failed to marshal JSON response", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.Header().Set("Last-Modified", time.Now().UTC().Format(http.TimeFormat))
	w.WriteHeader(code)
	w.Write(data)
}

// RespondWithError writes a JSON error response with a machine-readable kind
func (h *HTTPHandlerImpl) RespondWithError(w http.ResponseWriter, code int, kind, message string) {
	h.RespondWithJSON(w, code, errorResponse{
		Error:   http.StatusText(code),
		Kind:    kind,
		Message: message,
		Code:    code,
	})
}

// SearchPrices handles GET /search?medication=&dosage=&quantity=
func (h *HTTPHandlerImpl) SearchPrices(w http.ResponseWriter, r *http.Request) {
	medication := r.URL.Query().Get("medication")
	dosage := r.URL.Query().Get("dosage")
	quantity := r.URL.Query().Get("quantity")

	if err := h.validator.ValidateSearchTerm(medication); err != nil {
		logging.Warn("Unusual user input", "medication", medication, "error", err)
		h.RespondWithError(w, http.StatusBadRequest, KindValidationError, err.Error())
		return
	}

	// Missing dosage or quantity falls back to the guidance defaults so a
	// bare medication query still prices something sensible.
	if guidance, ok := catalog.GuidanceFor(medication); ok {
		if dosage == "" {
			dosage = guidance.DefaultDosage
		}
		if quantity == "" {
			if opts := catalog.QuantityOptionsFor(guidance.ProductForm); len(opts) > 0 {
				quantity = opts[0]
			}
		}
	}

	// Feed-only drugs have no guidance entry, so the defaults above may have
	// filled nothing in. Pricing needs both selections.
	if dosage == "" || quantity == "" {
		h.RespondWithError(w, http.StatusBadRequest, KindValidationError,
			"dosage and quantity are required")
		return
	}

	if err := h.validator.ValidateSelection("dosage", dosage); err != nil {
		h.RespondWithError(w, http.StatusBadRequest, KindValidationError, err.Error())
		return
	}
	if err := h.validator.ValidateSelection("quantity", quantity); err != nil {
		h.RespondWithError(w, http.StatusBadRequest, KindValidationError, err.Error())
		return
	}

	resp, err := h.searcher.Search(search.Request{
		Medication: medication,
		Dosage:     dosage,
		Quantity:   quantity,
	})
	if err != nil {
		h.respondSearchError(w, medication, err)
		return
	}

	metrics.PriceSearchesTotal.WithLabelValues("ok").Inc()
	h.RespondWithJSON(w, http.StatusOK, resp)
}

func (h *HTTPHandlerImpl) respondSearchError(w http.ResponseWriter, medication string, err error) {
	var noResults *search.NoResultsError
	switch {
	case errors.Is(err, search.ErrDataNotReady):
		metrics.PriceSearchesTotal.WithLabelValues("not_ready").Inc()
		h.RespondWithError(w, http.StatusServiceUnavailable, KindDataNotReady,
			"Price data is still loading, try again shortly")

	case errors.As(err, &noResults):
		metrics.PriceSearchesTotal.WithLabelValues("no_results").Inc()
		h.RespondWithJSON(w, http.StatusNotFound, errorResponse{
			Error:       http.StatusText(http.StatusNotFound),
			Kind:        KindNoPharmacyResults,
			Message:     "No pharmacy prices found for " + medication,
			Code:        http.StatusNotFound,
			Suggestions: noResults.Suggestions,
		})

	case errors.Is(err, search.ErrDrugNotFound):
		metrics.PriceSearchesTotal.WithLabelValues("not_found").Inc()
		h.RespondWithError(w, http.StatusNotFound, KindDrugNotFound,
			"Medication not found: "+medication)

	default:
		metrics.PriceSearchesTotal.WithLabelValues("error").Inc()
		logging.Error("Search failed", "medication", medication, "error", err)
		h.RespondWithError(w, http.StatusInternalServerError, "INTERNAL", "Internal server error")
	}
}

// ListMedications handles GET /medications?q= and returns known medication
// names for autocomplete. An empty q returns the full sorted list.
func (h *HTTPHandlerImpl) ListMedications(w http.ResponseWriter, r *http.Request) {
	q := strings.ToLower(strings.TrimSpace(r.URL.Query().Get("q")))
	if q != "" {
		if err := h.validator.ValidateSearchTerm(q); err != nil {
			h.RespondWithError(w, http.StatusBadRequest, KindValidationError, err.Error())
			return
		}
	}

	names := h.dataStore.DrugNames()
	if q == "" {
		h.RespondWithJSON(w, http.StatusOK, names)
		return
	}

	matches := make([]string, 0, 20)
	for _, n := range names {
		if strings.Contains(strings.ToLower(n), q) {
			matches = append(matches, n)
			if len(matches) == 20 {
				break
			}
		}
	}
	h.RespondWithJSON(w, http.StatusOK, matches)
}

type guidanceResponse struct {
	Medication      string   `json:"medication"`
	GuidanceText    string   `json:"guidanceText"`
	DosageOptions   []string `json:"dosageOptions"`
	DefaultDosage   string   `json:"defaultDosage"`
	ProductForm     string   `json:"productForm"`
	QuantityOptions []string `json:"quantityOptions"`
}

// MedicationGuidance handles GET /medications/{name}/guidance
func (h *HTTPHandlerImpl) MedicationGuidance(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	if err := h.validator.ValidateSearchTerm(name); err != nil {
		h.RespondWithError(w, http.StatusBadRequest, KindValidationError, err.Error())
		return
	}

	guidance, ok := catalog.GuidanceFor(name)
	if !ok {
		if !h.drugKnown(name) {
			h.RespondWithError(w, http.StatusNotFound, KindDrugNotFound,
				"Medication not found: "+name)
			return
		}
		// Feed-only drugs get the tablets defaults.
		guidance = catalog.DefaultGuidance()
	}

	h.RespondWithJSON(w, http.StatusOK, guidanceResponse{
		Medication:      name,
		GuidanceText:    guidance.GuidanceText,
		DosageOptions:   guidance.DosageOptions,
		DefaultDosage:   guidance.DefaultDosage,
		ProductForm:     string(guidance.ProductForm),
		QuantityOptions: catalog.QuantityOptionsFor(guidance.ProductForm),
	})
}

func (h *HTTPHandlerImpl) drugKnown(name string) bool {
	target := strings.ToLower(strings.TrimSpace(name))
	for _, n := range h.dataStore.DrugNames() {
		if strings.ToLower(n) == target {
			return true
		}
	}
	return false
}

// ListPharmacies handles GET /pharmacies
func (h *HTTPHandlerImpl) ListPharmacies(w http.ResponseWriter, r *http.Request) {
	h.RespondWithJSON(w, http.StatusOK, catalog.Pharmacies())
}

// HealthCheck handles GET /health
func (h *HTTPHandlerImpl) HealthCheck(w http.ResponseWriter, r *http.Request) {
	status, data, httpStatus := h.checker.HealthCheck()

	data["next_update"] = h.checker.CalculateNextUpdate().Format(time.RFC3339)
	data["uptime_seconds"] = time.Since(h.dataStore.GetServerStartTime()).Seconds()

	h.RespondWithJSON(w, httpStatus, map[string]any{
		"status": status,
		"data":   data,
	})
}
