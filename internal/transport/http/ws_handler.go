package http

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"trivia-session-service/internal/app"
	"trivia-session-service/internal/domain"
)

// WSHandler bridges the game engine to a presentation client over a
// websocket. One connection owns exactly one session; the handler never
// shares session state between connections.
type WSHandler struct {
	service  *app.GameService
	upgrader websocket.Upgrader
}

func NewWSHandler(service *app.GameService) *WSHandler {
	return &WSHandler{
		service: service,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
	}
}

type inboundMessage struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

type configurePayload struct {
	Name       string `json:"name"`
	Difficulty string `json:"difficulty"`
	Category   string `json:"category,omitempty"`
}

type answerPayload struct {
	OptionIndex int `json:"optionIndex"`
}

type leaderboardPayload struct {
	Limit int `json:"limit"`
}

// questionView is the client-facing shape of a question. The answer index and
// explanation stay server-side until the outcome is sent.
type questionView struct {
	ID         string   `json:"id"`
	Category   string   `json:"category"`
	Difficulty string   `json:"difficulty"`
	Text       string   `json:"text"`
	Options    []string `json:"options"`
	Index      int      `json:"index"`
	Total      int      `json:"total"`
}

type resultView struct {
	Player string `json:"player"`
	Score  int    `json:"score"`
	Rank   int    `json:"rank"` // 0 means unranked
}

type outboundMessage[T any] struct {
	Type    string `json:"type"`
	Payload T      `json:"payload"`
}

type errorPayload struct {
	Message string `json:"message"`
}

// ServeWS upgrades HTTP requests to websockets and drives one session through
// its configure/start/answer/advance/restart cycle.
func (h *WSHandler) ServeWS(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("ws upgrade failed: %v", err)
		return
	}
	defer conn.Close()

	sessionID := uuid.NewString()
	session := h.service.Open(sessionID)
	defer h.service.Close(sessionID)

	events, cancel := session.Subscribe()
	defer cancel()

	send := make(chan outboundMessage[any], 16)
	closeSignals := make(chan struct{})
	writerDone := make(chan struct{})
	eventsDone := make(chan struct{})

	go func() {
		defer close(writerDone)
		for msg := range send {
			if err := conn.WriteJSON(msg); err != nil {
				log.Printf("ws write error: %v", err)
				return
			}
		}
	}()

	go func() {
		defer close(eventsDone)
		for {
			select {
			case e, ok := <-events:
				if !ok {
					return
				}
				select {
				case send <- outboundMessage[any]{Type: "event", Payload: e}:
				case <-closeSignals:
					return
				}
			case <-closeSignals:
				return
			}
		}
	}()

	send <- outboundMessage[any]{Type: "event", Payload: domain.GameEvent{Phase: session.Phase()}}

	for {
		var inbound inboundMessage
		if err := conn.ReadJSON(&inbound); err != nil {
			break
		}
		switch inbound.Type {
		case "configure":
			var payload configurePayload
			if err := json.Unmarshal(inbound.Payload, &payload); err != nil {
				send <- errMsg("invalid configure payload")
				continue
			}
			if err := session.Configure(payload.Name, domain.Difficulty(payload.Difficulty), payload.Category); err != nil {
				send <- errMsg(err.Error())
			}

		case "start":
			if err := session.Start(r.Context()); err != nil {
				send <- errMsg(err.Error())
				continue
			}
			h.sendQuestion(send, session)

		case "answer":
			var payload answerPayload
			if err := json.Unmarshal(inbound.Payload, &payload); err != nil {
				send <- errMsg("invalid answer payload")
				continue
			}
			outcome, accepted, err := session.SubmitAnswer(payload.OptionIndex)
			if err != nil {
				send <- errMsg(err.Error())
				continue
			}
			if !accepted {
				// Repeat submission for the same question; nothing scored.
				continue
			}
			send <- outboundMessage[any]{Type: "outcome", Payload: outcome}

		case "advance":
			if err := session.Advance(r.Context()); err != nil {
				send <- errMsg(err.Error())
				continue
			}
			if session.Phase() == domain.PhaseResult {
				send <- outboundMessage[any]{Type: "result", Payload: resultView{
					Player: session.Player(),
					Score:  session.Score(),
					Rank:   session.Rank(),
				}}
				continue
			}
			h.sendQuestion(send, session)

		case "restart":
			if err := session.Restart(); err != nil {
				send <- errMsg(err.Error())
			}

		case "leaderboard":
			var payload leaderboardPayload
			if len(inbound.Payload) > 0 {
				if err := json.Unmarshal(inbound.Payload, &payload); err != nil {
					send <- errMsg("invalid leaderboard payload")
					continue
				}
			}
			if payload.Limit <= 0 {
				payload.Limit = 10
			}
			entries, err := h.service.Leaderboard(r.Context(), payload.Limit)
			if err != nil {
				send <- errMsg(err.Error())
				continue
			}
			send <- outboundMessage[any]{Type: "leaderboard", Payload: entries}

		default:
			send <- errMsg("unsupported message type")
		}
	}

	close(closeSignals)
	<-eventsDone
	close(send)
	<-writerDone
}

func (h *WSHandler) sendQuestion(send chan<- outboundMessage[any], session *app.Session) {
	q, ok := session.CurrentQuestion()
	if !ok {
		return
	}
	index, total := session.Progress()
	send <- outboundMessage[any]{Type: "question", Payload: questionView{
		ID:         q.ID,
		Category:   q.Category,
		Difficulty: string(q.Difficulty),
		Text:       q.Text,
		Options:    q.Options,
		Index:      index,
		Total:      total,
	}}
}

func errMsg(message string) outboundMessage[any] {
	return outboundMessage[any]{Type: "error", Payload: errorPayload{Message: message}}
}
