// Package web exposes the simulator over HTTP.
package web

import (
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/sarchlab/pagesim/mem/replacement"
	"github.com/sarchlab/pagesim/report"
	"github.com/sarchlab/pagesim/simulation"
)

// A Server runs page-replacement simulations on behalf of HTTP clients.
type Server struct {
	router     *mux.Router
	portNumber int
}

// NewServer creates a new Server.
func NewServer() *Server {
	s := &Server{}

	s.router = mux.NewRouter()
	s.router.HandleFunc("/api/policies", s.listPolicies).Methods("GET")
	s.router.HandleFunc("/api/simulate", s.simulate).Methods("POST")

	return s
}

// WithPortNumber sets the port number of the server. With no port set,
// a random free port is used.
func (s *Server) WithPortNumber(portNumber int) *Server {
	s.portNumber = portNumber
	return s
}

// Handler returns the HTTP handler of the server.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Run listens on the configured port and serves requests until the
// process exits or the listener fails.
func (s *Server) Run() error {
	addr := ":0"
	if s.portNumber > 0 {
		addr = ":" + strconv.Itoa(s.portNumber)
	}

	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}

	fmt.Fprintf(os.Stderr, "Serving simulations at http://localhost:%d\n",
		listener.Addr().(*net.TCPAddr).Port)

	return http.Serve(listener, s.router)
}

type simulateRequest struct {
	Policy     string `json:"policy"`
	FrameCount int    `json:"frame_count"`
	References []int  `json:"references"`
}

type simulateResponse struct {
	RunID      string           `json:"run_id"`
	Policy     string           `json:"policy"`
	FrameCount int              `json:"frame_count"`
	Trace      simulation.Trace `json:"trace"`
	Summary    report.Summary   `json:"summary"`
}

func (s *Server) listPolicies(w http.ResponseWriter, r *http.Request) {
	names := []string{}
	for _, kind := range replacement.Kinds() {
		names = append(names, kind.String())
	}

	writeJSON(w, http.StatusOK, names)
}

func (s *Server) simulate(w http.ResponseWriter, r *http.Request) {
	var req simulateRequest
	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		http.Error(w, "malformed request body: "+err.Error(),
			http.StatusBadRequest)
		return
	}

	kind, err := replacement.ParseKind(req.Policy)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	sim, err := simulation.MakeBuilder().
		WithPolicy(kind).
		WithFrameCount(req.FrameCount).
		WithReferences(req.References).
		Build()
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, simulation.ErrInvalidConfiguration) {
			status = http.StatusBadRequest
		}

		http.Error(w, err.Error(), status)

		return
	}

	trace := sim.Run()

	writeJSON(w, http.StatusOK, simulateResponse{
		RunID:      sim.ID(),
		Policy:     kind.String(),
		FrameCount: req.FrameCount,
		Trace:      trace,
		Summary:    report.Summarize(trace),
	})
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	err := json.NewEncoder(w).Encode(payload)
	if err != nil {
		panic(err)
	}
}
