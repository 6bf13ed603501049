package server

import (
	"encoding/json"
	stderrors "errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/neurolab/eegpos/pkg/errors"
	"github.com/neurolab/eegpos/pkg/montage"
	"github.com/neurolab/eegpos/pkg/pipeline"
)

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(requestID)
	r.Use(s.logRequests)

	r.Get("/healthz", s.handleHealth)

	r.Route("/v1", func(r chi.Router) {
		r.Get("/systems", s.handleSystems)
		r.Get("/systems/{density}/coords", s.handleCoords)
		r.Get("/systems/{density}/map", s.handleMap)
		r.Get("/aliases", s.handleAliases)
		r.Get("/labels/{label}", s.handleLabel)
	})

	return r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

type systemInfo struct {
	Density    string   `json:"density"`
	Electrodes int      `json:"electrodes"`
	Equators   []string `json:"equators"`
}

func (s *Server) handleSystems(w http.ResponseWriter, r *http.Request) {
	var equators []string
	for _, eq := range montage.Equators() {
		equators = append(equators, string(eq))
	}

	var out []systemInfo
	for _, d := range []montage.Density{montage.Density1020, montage.Density1010, montage.Density1005} {
		labels, err := montage.SystemLabels(d)
		if err != nil {
			s.writeError(w, r, err)
			return
		}
		out = append(out, systemInfo{
			Density:    string(d),
			Electrodes: len(labels),
			Equators:   equators,
		})
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleCoords(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	opts := pipeline.TableOptions{
		Density:       chi.URLParam(r, "density"),
		Equator:       q.Get("equator"),
		Format:        q.Get("format"),
		Sort:          q.Get("sort") == "true",
		DropLandmarks: q.Get("landmarks") == "false",
	}
	if names := q.Get("names"); names != "" {
		opts.Names = strings.Split(names, ",")
	}
	if dim := q.Get("dim"); dim != "" {
		n, err := strconv.Atoi(dim)
		if err != nil {
			s.writeError(w, r, errors.New(errors.ErrCodeInvalidInput, "invalid dim %q", dim))
			return
		}
		opts.Dimensions = n
	}
	if p := q.Get("precision"); p != "" {
		n, err := strconv.Atoi(p)
		if err != nil {
			s.writeError(w, r, errors.New(errors.ErrCodeInvalidInput, "invalid precision %q", p))
			return
		}
		opts.Precision = n
	}

	data, hit, err := s.runner.Table(r.Context(), opts)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	contentType := "text/tab-separated-values; charset=utf-8"
	if opts.Format == "json" {
		contentType = "application/json"
	}
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("X-Cache", cacheStatus(hit))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

func (s *Server) handleMap(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	opts := pipeline.MapOptions{
		Density:   chi.URLParam(r, "density"),
		Equator:   q.Get("equator"),
		Format:    q.Get("format"),
		ShowNames: q.Get("names") != "false",
		Sensors:   q.Get("sensors") == "true",
	}

	data, hit, err := s.runner.Map(r.Context(), opts)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	contentType := "image/svg+xml"
	switch opts.Format {
	case "png":
		contentType = "image/png"
	case "dot":
		contentType = "text/vnd.graphviz"
	}
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("X-Cache", cacheStatus(hit))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

func (s *Server) handleAliases(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, montage.Aliases())
}

type labelInfo struct {
	Label      string `json:"label"`
	Row        string `json:"row"`
	Column     string `json:"column"`
	Hemisphere string `json:"hemisphere"`
	Canonical  string `json:"canonical,omitempty"`
}

func (s *Server) handleLabel(w http.ResponseWriter, r *http.Request) {
	raw := chi.URLParam(r, "label")
	if err := errors.ValidateLabel(raw); err != nil {
		s.writeError(w, r, err)
		return
	}

	canonical := montage.Canonical(raw)
	parsed, err := montage.ParseLabel(canonical)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	info := labelInfo{
		Label:      raw,
		Row:        parsed.Row,
		Column:     parsed.Column,
		Hemisphere: parsed.Hemisphere.String(),
	}
	if canonical != raw {
		info.Canonical = canonical
	}
	writeJSON(w, http.StatusOK, info)
}

func cacheStatus(hit bool) string {
	if hit {
		return "HIT"
	}
	return "MISS"
}

// errorPayload is the JSON error envelope.
type errorPayload struct {
	Error struct {
		Code      string `json:"code"`
		Message   string `json:"message"`
		RequestID string `json:"request_id,omitempty"`
	} `json:"error"`
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	code := errorCode(err)
	status := statusFor(code)

	var payload errorPayload
	payload.Error.Code = string(code)
	payload.Error.Message = errors.UserMessage(err)
	payload.Error.RequestID = RequestID(r.Context())

	if status >= 500 {
		s.log.Error("request failed", "error", err, "request_id", RequestID(r.Context()))
	}
	writeJSON(w, status, payload)
}

// errorCode maps any error to a machine-readable code, translating the
// montage/sphere typed errors for callers that bypass the pipeline.
func errorCode(err error) errors.Code {
	if code := errors.GetCode(err); code != "" {
		return code
	}
	var (
		unkErr *montage.UnknownLabelError
		denErr *montage.InvalidDensityLevelError
		eqErr  *montage.InvalidEquatorChoiceError
		colErr *montage.AliasCollisionError
	)
	switch {
	case stderrors.As(err, &unkErr):
		return errors.ErrCodeUnknownLabel
	case stderrors.As(err, &denErr):
		return errors.ErrCodeInvalidDensity
	case stderrors.As(err, &eqErr):
		return errors.ErrCodeInvalidEquator
	case stderrors.As(err, &colErr):
		return errors.ErrCodeInvalidInput
	}
	return errors.ErrCodeInternal
}

func statusFor(code errors.Code) int {
	switch code {
	case errors.ErrCodeUnknownLabel, errors.ErrCodeNotFound:
		return http.StatusNotFound
	case errors.ErrCodeInternal, errors.ErrCodeRender, errors.ErrCodeExport:
		return http.StatusInternalServerError
	case "":
		return http.StatusInternalServerError
	default:
		return http.StatusBadRequest
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
