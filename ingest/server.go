package ingest

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/katalvlaran/kitnet/kitnet"
)

const (
	writeWait      = 5 * time.Second
	maxMessageSize = 1 << 16
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  maxMessageSize,
	WriteBufferSize: maxMessageSize,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// observationFrame is the inbound wire frame: a single observation
// vector.
type observationFrame struct {
	Vector []float64 `json:"vector"`
}

// scoreFrame is the outbound wire frame: the score for the observation
// just processed, or an error description.
type scoreFrame struct {
	Score float64 `json:"score"`
	Error string  `json:"error,omitempty"`
}

// EngineFactory builds a fresh Engine for one connection. Every
// connection gets its own Engine so connections never share mutable
// state.
type EngineFactory func() (*kitnet.Engine, error)

// Server upgrades HTTP connections to websockets and funnels each
// connection's observation stream through its own Engine.
type Server struct {
	newEngine EngineFactory
	logger    *slog.Logger
}

// NewServer constructs a Server that builds one Engine per connection via
// newEngine. logger defaults to slog.Default() if nil.
func NewServer(newEngine EngineFactory, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{newEngine: newEngine, logger: logger}
}

// ServeHTTP upgrades the request to a websocket and serves it until the
// client disconnects or a fatal error occurs.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Error("websocket upgrade failed", "error", err)
		return
	}
	defer conn.Close()

	engine, err := s.newEngine()
	if err != nil {
		s.logger.Error("engine construction failed", "error", err)
		return
	}

	s.logger.Info("connection opened", "remote", r.RemoteAddr)
	s.serve(conn, engine)
	s.logger.Info("connection closed", "remote", r.RemoteAddr)
}

func (s *Server) serve(conn *websocket.Conn, engine *kitnet.Engine) {
	for {
		var frame observationFrame
		if err := conn.ReadJSON(&frame); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				s.logger.Warn("websocket read error", "error", err)
			}
			return
		}

		if len(frame.Vector) != engine.N() {
			s.writeError(conn, ErrVectorLengthMismatch)
			continue
		}

		score, err := engine.Process(frame.Vector)
		if err != nil {
			s.writeError(conn, err)
			continue
		}

		conn.SetWriteDeadline(time.Now().Add(writeWait))
		if err := conn.WriteJSON(scoreFrame{Score: score}); err != nil {
			s.logger.Warn("websocket write error", "error", err)
			return
		}
	}
}

func (s *Server) writeError(conn *websocket.Conn, err error) {
	conn.SetWriteDeadline(time.Now().Add(writeWait))
	if writeErr := conn.WriteJSON(scoreFrame{Error: err.Error()}); writeErr != nil {
		s.logger.Warn("websocket write error", "error", writeErr)
	}
}
