package api

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/ironsheep/color-picker-mcp/internal/metrics"
	"github.com/ironsheep/color-picker-mcp/internal/picker"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(req *http.Request) bool {
		return true
	},
}

// handleWebsocket streams every published snapshot, starting with the
// current one. Text messages from the client are decoded as intents and
// applied; their effect comes back through the stream like anyone else's.
func (a *Api) handleWebsocket(w http.ResponseWriter, req *http.Request) {
	ws, err := upgrader.Upgrade(w, req, nil)
	if err != nil {
		// Upgrade has already replied to the client.
		log.Printf("couldn't make websocket: %s\n", err)
		return
	}
	defer func(ws *websocket.Conn) {
		err := ws.Close()
		if err != nil {
			log.Printf("could not close websocket: %s\n", err.Error())
		}
	}(ws)

	ctx, cancel := context.WithCancel(req.Context())
	defer cancel()

	sub, err := a.picker.Subscribe(ctx)
	if err != nil {
		_ = ws.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseGoingAway, err.Error()),
			time.Now().Add(writeTimeout))
		return
	}
	defer a.picker.Unsubscribe(sub.ID)

	done := make(chan struct{})
	go func() {
		defer close(done)
		websocketWriter(ws, sub)
		// Ask the client to hang up so the read loop below ends too.
		_ = ws.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
			time.Now().Add(writeTimeout))
	}()

	for {
		_, msg, err := ws.ReadMessage()
		if err != nil {
			break
		}
		var in picker.Intent
		if err := json.Unmarshal(msg, &in); err != nil {
			log.Printf("websocket %s: bad intent: %s\n", sub.ID, err)
			continue
		}
		_, err = a.picker.Apply(in)
		metrics.ObserveToolCall("ws_intent", err)
		if err != nil {
			log.Printf("websocket %s: %s\n", sub.ID, err)
		}
	}

	a.picker.Unsubscribe(sub.ID)
	<-done
}

// websocketWriter is the only writer on ws. It returns when the
// subscription closes or a write fails.
func websocketWriter(ws *websocket.Conn, sub *picker.Subscription) {
	pingTicker := time.NewTicker(pingInterval)
	defer pingTicker.Stop()

	for {
		select {
		case snap, ok := <-sub.C:
			if !ok {
				return
			}
			if err := writeSnapshot(ws, snap); err != nil {
				log.Printf("websocket %s: %s\n", sub.ID, err)
				return
			}
		case <-pingTicker.C:
			err := ws.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeTimeout))
			if err != nil {
				return
			}
		}
	}
}

func writeSnapshot(ws *websocket.Conn, snap picker.Snapshot) error {
	packet, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("could not encode snapshot: %w", err)
	}
	if err := ws.SetWriteDeadline(time.Now().Add(writeTimeout)); err != nil {
		return fmt.Errorf("could not set write deadline: %w", err)
	}
	return ws.WriteMessage(websocket.TextMessage, packet)
}
