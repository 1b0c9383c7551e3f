// Package server runs a websocket preview service that regenerates and
// pushes meshes as clients adjust generation parameters.
package server

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/nrayamajhee/globemesh/internal/config"
	"github.com/nrayamajhee/globemesh/pkg/geom"
	"github.com/nrayamajhee/globemesh/pkg/mesh"
	"github.com/nrayamajhee/globemesh/pkg/spheremesh"
)

// meshMessage is the payload pushed to clients after each rebuild.
type meshMessage struct {
	Type      string       `json:"type"`
	Vertices  [][3]float64 `json:"vertices"`
	Normals   [][3]float64 `json:"normals"`
	Indices   []uint32     `json:"indices"`
	Triangles int          `json:"triangles"`
	BuildMS   float64      `json:"buildMs"`
}

// updateMessage carries parameter changes from a client. Absent fields
// leave the current value untouched.
type updateMessage struct {
	Target        *[3]float64 `json:"target,omitempty"`
	Radius        *float64    `json:"radius,omitempty"`
	MaxResolution *int        `json:"maxResolution,omitempty"`
	Shape         *string     `json:"shape,omitempty"`
}

// params is the comparable generation state, used both for rebuilds and
// as the memoization key.
type params struct {
	shape  string
	target geom.Vec3
	gen    spheremesh.Config
}

type key struct {
	Shape        string
	Radius       float64
	MinRes       int
	MaxRes       int
	StepCount    int
	StepGamma    float64
	BaseSub      int
	Mode         spheremesh.Mode
	Target       geom.Vec3
	MaxDistance  float64
	Displacement float64
	HeightsWired bool
}

func (p params) key() key {
	g := p.gen
	return key{
		Shape:        p.shape,
		Radius:       g.Radius,
		MinRes:       g.MinResolution,
		MaxRes:       g.MaxResolution,
		StepCount:    g.StepCount,
		StepGamma:    g.StepGamma,
		BaseSub:      g.BaseSubdivision,
		Mode:         g.Mode,
		Target:       p.target,
		MaxDistance:  g.MaxDistance,
		Displacement: g.DisplacementScale,
		HeightsWired: g.Heights != nil,
	}
}

// Server owns the preview state: connected clients, current parameters,
// and the rebuild cache.
type Server struct {
	cfg      *config.Config
	heights  spheremesh.HeightSampler
	log      *zap.Logger
	upgrader websocket.Upgrader

	mu    sync.Mutex
	cur   params
	dirty chan struct{}

	clientsMu sync.RWMutex
	clients   map[*websocket.Conn]*sync.Mutex

	cacheMu sync.Mutex
	cache   map[key]*mesh.Mesh
}

// New creates a preview server from the loaded config. A nil logger
// disables logging.
func New(cfg *config.Config, heights spheremesh.HeightSampler, log *zap.Logger) (*Server, error) {
	if log == nil {
		log = zap.NewNop()
	}

	gen, err := cfg.SphereGenConfig(heights)
	if err != nil {
		return nil, err
	}
	if err := gen.Validate(); err != nil {
		return nil, err
	}

	target := geom.Vec3{Y: gen.Radius}
	if gen.Target != nil {
		target = *gen.Target
	}

	return &Server{
		cfg:     cfg,
		heights: heights,
		log:     log,
		upgrader: websocket.Upgrader{
			// Preview tool; the viewer page may be served from anywhere.
			CheckOrigin: func(r *http.Request) bool { return true },
		},
		cur:     params{shape: cfg.Sphere.Shape, target: target, gen: gen},
		dirty:   make(chan struct{}, 1),
		clients: make(map[*websocket.Conn]*sync.Mutex),
		cache:   make(map[key]*mesh.Mesh),
	}, nil
}

// Run serves until the context is canceled.
func (s *Server) Run(ctx context.Context) error {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", s.handleWebSocket)
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	srv := &http.Server{
		Addr:    s.cfg.Server.Listen,
		Handler: mux,
	}

	go s.rebuildLoop(ctx)

	errc := make(chan error, 1)
	go func() {
		s.log.Info("preview server listening", zap.String("addr", srv.Addr))
		errc <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
		return nil
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}

// Handler exposes the HTTP handler for tests.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", s.handleWebSocket)
	return mux
}

func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.log.Warn("websocket upgrade failed", zap.Error(err))
		return
	}
	defer conn.Close()

	connMu := &sync.Mutex{}
	s.clientsMu.Lock()
	s.clients[conn] = connMu
	s.clientsMu.Unlock()
	defer func() {
		s.clientsMu.Lock()
		delete(s.clients, conn)
		s.clientsMu.Unlock()
	}()

	s.log.Info("client connected", zap.String("remote", conn.RemoteAddr().String()))

	// Push the current mesh immediately so the viewer has something to
	// draw before it touches any controls.
	m, err := s.build(s.snapshot())
	if err != nil {
		s.log.Error("initial build failed", zap.Error(err))
		return
	}
	s.send(conn, connMu, m, 0)

	for {
		var msg updateMessage
		if err := conn.ReadJSON(&msg); err != nil {
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				s.log.Debug("websocket read ended", zap.Error(err))
			}
			return
		}
		s.applyUpdate(msg)
	}
}

// applyUpdate merges a client update into the current parameters and
// marks them dirty for the rebuild loop.
func (s *Server) applyUpdate(msg updateMessage) {
	s.mu.Lock()
	if msg.Target != nil {
		t := geom.Vec3{X: msg.Target[0], Y: msg.Target[1], Z: msg.Target[2]}
		s.cur.target = t
		s.cur.gen.Target = &t
	}
	if msg.Radius != nil && *msg.Radius > 0 {
		s.cur.gen.Radius = *msg.Radius
	}
	if msg.MaxResolution != nil && *msg.MaxResolution >= s.cur.gen.MinResolution {
		s.cur.gen.MaxResolution = *msg.MaxResolution
	}
	if msg.Shape != nil && (*msg.Shape == "icosphere" || *msg.Shape == "cubesphere") {
		s.cur.shape = *msg.Shape
	}
	s.mu.Unlock()

	select {
	case s.dirty <- struct{}{}:
	default:
	}
}

func (s *Server) snapshot() params {
	s.mu.Lock()
	defer s.mu.Unlock()
	p := s.cur
	// Target pointer must not alias mutable state.
	t := p.target
	p.gen.Target = &t
	return p
}

// rebuildLoop debounces parameter changes, rebuilds, and broadcasts.
func (s *Server) rebuildLoop(ctx context.Context) {
	debounce := s.cfg.Server.Debounce
	if debounce <= 0 {
		debounce = 100 * time.Millisecond
	}

	for {
		select {
		case <-ctx.Done():
			return
		case <-s.dirty:
		}

		// Absorb further updates arriving within the debounce window.
		timer := time.NewTimer(debounce)
	settle:
		for {
			select {
			case <-ctx.Done():
				timer.Stop()
				return
			case <-s.dirty:
				if !timer.Stop() {
					<-timer.C
				}
				timer.Reset(debounce)
			case <-timer.C:
				break settle
			}
		}

		p := s.snapshot()
		start := time.Now()
		m, err := s.build(p)
		if err != nil {
			s.log.Error("rebuild failed", zap.Error(err))
			continue
		}
		buildMS := float64(time.Since(start).Microseconds()) / 1000

		s.log.Info("mesh rebuilt",
			zap.String("shape", p.shape),
			zap.Int("vertices", len(m.Positions)),
			zap.Int("triangles", len(m.Indices)/3),
			zap.Float64("build_ms", buildMS))

		s.broadcast(m, buildMS)
	}
}

// build returns the mesh for the given parameters, reusing a cached
// result when the same parameters were built before.
func (s *Server) build(p params) (*mesh.Mesh, error) {
	k := p.key()

	s.cacheMu.Lock()
	if m, ok := s.cache[k]; ok {
		s.cacheMu.Unlock()
		return m, nil
	}
	s.cacheMu.Unlock()

	var (
		m   *mesh.Mesh
		err error
	)
	switch p.shape {
	case "cubesphere":
		m, err = spheremesh.GenerateCube(p.gen)
	default:
		m, err = spheremesh.Generate(p.gen)
	}
	if err != nil {
		return nil, err
	}

	s.cacheMu.Lock()
	s.cache[k] = m
	s.cacheMu.Unlock()
	return m, nil
}

func (s *Server) broadcast(m *mesh.Mesh, buildMS float64) {
	s.clientsMu.RLock()
	defer s.clientsMu.RUnlock()
	for conn, mu := range s.clients {
		s.send(conn, mu, m, buildMS)
	}
}

func (s *Server) send(conn *websocket.Conn, mu *sync.Mutex, m *mesh.Mesh, buildMS float64) {
	msg := meshMessage{
		Type:      "mesh",
		Vertices:  packVec3(m.Positions),
		Normals:   packVec3(m.Normals),
		Indices:   m.Indices,
		Triangles: len(m.Indices) / 3,
		BuildMS:   buildMS,
	}

	mu.Lock()
	err := conn.WriteJSON(msg)
	mu.Unlock()
	if err != nil {
		s.log.Debug("websocket write failed", zap.Error(err))
	}
}

func packVec3(vs []geom.Vec3) [][3]float64 {
	out := make([][3]float64, len(vs))
	for i, v := range vs {
		out[i] = [3]float64{v.X, v.Y, v.Z}
	}
	return out
}
