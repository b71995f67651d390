package handlers

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"net/url"
	"sync"
	"time"

	"defensa_juridica_web/config"
	"defensa_juridica_web/middleware"
	"defensa_juridica_web/models"
	"defensa_juridica_web/services/slider"
	"defensa_juridica_web/templates/components"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
)

const (
	sliderWriteTimeout = 10 * time.Second
	sliderReadTimeout  = 60 * time.Second
	sliderPingInterval = 30 * time.Second
	sliderMaxMessage   = 1024
)

// SliderConfig maps the site configuration onto the slider settings
func SliderConfig(cfg *config.Config) slider.Config {
	return slider.NewConfig(
		slider.WithAutoplay(cfg.SliderAutoplay),
		slider.WithAutoplayInterval(time.Duration(cfg.SliderAutoplayIntervalMs)*time.Millisecond),
		slider.WithInfinite(cfg.SliderInfinite),
		slider.WithTransitionDuration(time.Duration(cfg.SliderTransitionMs)*time.Millisecond),
		slider.WithKeyboard(cfg.SliderKeyboard),
		slider.WithTouch(cfg.SliderTouch),
		slider.WithPauseOnHover(cfg.SliderPauseOnHover),
		slider.WithSwipeThreshold(float64(cfg.SliderSwipeThreshold)),
	)
}

// SliderMessage is one inbound message on the slider socket. Raw input
// (keys, pointer and hover events) goes through the bus; the remaining
// types are clicks on the carousel controls.
type SliderMessage struct {
	Type   string  `json:"type"`
	Key    string  `json:"key,omitempty"`
	Y      float64 `json:"y,omitempty"`
	Source string  `json:"source,omitempty"`
	Index  int     `json:"index,omitempty"`
}

// SliderStateMessage is sent after every state change
type SliderStateMessage struct {
	Type string                `json:"type"`
	View components.SliderView `json:"view"`
}

var busEventKinds = map[string]slider.EventKind{
	"keydown":       slider.KeyDown,
	"pointerdown":   slider.PointerDown,
	"pointermove":   slider.PointerMove,
	"pointerup":     slider.PointerUp,
	"pointercancel": slider.PointerCancel,
	"hoverenter":    slider.HoverEnter,
	"hoverleave":    slider.HoverLeave,
}

// dispatchSliderMessage applies msg to one connection's controller and bus.
// It reports whether the message type is known.
func dispatchSliderMessage(ctrl *slider.Controller, bus *slider.Bus, msg SliderMessage) bool {
	if kind, ok := busEventKinds[msg.Type]; ok {
		bus.Publish(slider.Event{
			Kind:   kind,
			Key:    msg.Key,
			Y:      msg.Y,
			Source: slider.PointerSource(msg.Source),
		})
		return true
	}

	switch msg.Type {
	case "next":
		ctrl.Next()
	case "previous":
		ctrl.Previous()
	case "goto":
		ctrl.GoTo(msg.Index)
	case "toggle":
		ctrl.ToggleAutoplay()
	default:
		return false
	}
	return true
}

// SliderSocket serves /ws/slider. Every connection gets its own controller,
// bus and gesture detector; nothing is shared between connections.
type SliderSocket struct {
	slides   []models.Slide
	config   slider.Config
	clock    slider.Clock
	metrics  *middleware.Metrics
	upgrader websocket.Upgrader
}

// NewSliderSocket creates the socket handler. allowedOrigins may contain
// "*" to accept any origin; same-host origins are always accepted.
func NewSliderSocket(slides []models.Slide, cfg slider.Config, metrics *middleware.Metrics, allowedOrigins []string) *SliderSocket {
	return &SliderSocket{
		slides:  slides,
		config:  cfg,
		clock:   slider.SystemClock,
		metrics: metrics,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 4096,
			CheckOrigin: func(r *http.Request) bool {
				return originAllowed(r, allowedOrigins)
			},
		},
	}
}

func originAllowed(r *http.Request, allowed []string) bool {
	origin := r.Header.Get("Origin")
	if origin == "" {
		return true
	}
	u, err := url.Parse(origin)
	if err != nil {
		return false
	}
	if u.Host == r.Host {
		return true
	}
	for _, a := range allowed {
		if a == "*" || a == origin {
			return true
		}
	}
	return false
}

// Handle upgrades the request and runs the connection until either side
// closes it
func (s *SliderSocket) Handle(c echo.Context) error {
	conn, err := s.upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		return err
	}

	connID := uuid.New().String()
	s.metrics.SliderConnected()
	defer s.metrics.SliderDisconnected()

	s.serve(c.Request().Context(), connID, conn)
	return nil
}

func (s *SliderSocket) serve(ctx context.Context, connID string, conn *websocket.Conn) {
	ctrl := slider.NewController(len(s.slides), s.config, s.clock)
	bus := slider.NewBus()
	// Holds only the newest unsent view; a slow client skips to it
	outbox := make(chan components.SliderView, 1)
	done := make(chan struct{})

	var offerMu sync.Mutex
	ctrl.OnChange(func(snap slider.Snapshot) {
		offerMu.Lock()
		defer offerMu.Unlock()
		offerLatest(outbox, components.BuildSliderView(ctx, s.slides, snap))
	})
	ctrl.Activate(bus)

	offerMu.Lock()
	offerLatest(outbox, components.BuildSliderView(ctx, s.slides, ctrl.Snapshot()))
	offerMu.Unlock()

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		s.writeLoop(conn, outbox, done)
	}()

	s.readLoop(connID, conn, ctrl, bus)

	close(done)
	ctrl.Dispose()
	wg.Wait()
	conn.Close()
}

// offerLatest puts view in the one-slot outbox without blocking, replacing
// a view the writer has not picked up yet. Callers must not offer
// concurrently.
func offerLatest(outbox chan components.SliderView, view components.SliderView) {
	for {
		select {
		case outbox <- view:
			return
		default:
		}
		select {
		case <-outbox:
		default:
		}
	}
}

// readLoop feeds inbound messages to the controller until the socket fails
func (s *SliderSocket) readLoop(connID string, conn *websocket.Conn, ctrl *slider.Controller, bus *slider.Bus) {
	conn.SetReadLimit(sliderMaxMessage)
	conn.SetReadDeadline(time.Now().Add(sliderReadTimeout))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(sliderReadTimeout))
	})

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err,
				websocket.CloseGoingAway,
				websocket.CloseAbnormalClosure,
				websocket.CloseNormalClosure) {
				log.Printf("[WARNING] Slider %s read error: %v", connID, err)
			}
			return
		}
		conn.SetReadDeadline(time.Now().Add(sliderReadTimeout))

		var msg SliderMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			log.Printf("[WARNING] Slider %s sent an invalid message: %v", connID, err)
			continue
		}
		if !dispatchSliderMessage(ctrl, bus, msg) {
			continue
		}
		s.metrics.SliderEvent(msg.Type)
	}
}

// writeLoop is the only writer of conn
func (s *SliderSocket) writeLoop(conn *websocket.Conn, outbox <-chan components.SliderView, done <-chan struct{}) {
	ticker := time.NewTicker(sliderPingInterval)
	defer ticker.Stop()

	for {
		select {
		case view := <-outbox:
			conn.SetWriteDeadline(time.Now().Add(sliderWriteTimeout))
			if err := conn.WriteJSON(SliderStateMessage{Type: "state", View: view}); err != nil {
				conn.Close()
				return
			}
		case <-ticker.C:
			if err := conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(sliderWriteTimeout)); err != nil {
				conn.Close()
				return
			}
		case <-done:
			conn.WriteControl(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
				time.Now().Add(time.Second))
			return
		}
	}
}
