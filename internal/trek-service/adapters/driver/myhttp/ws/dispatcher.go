package ws

import (
	"context"
	"net/http"
	"strings"
	"sync"

	"trek-tango/internal/mylogger"
	websocketdto "trek-tango/internal/trek-service/core/domain/websocket_dto"
	"trek-tango/internal/trek-service/core/ports"

	"github.com/golang-jwt/jwt"
	"github.com/gorilla/websocket"
)

var websocketUpgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
}

// Dispatcher keeps one live connection per username and pushes trek
// progress events to it. A new connection for the same user replaces
// the old one.
type Dispatcher struct {
	clients map[string]*Client
	sync.RWMutex
	log          mylogger.Logger
	accessSecret string
}

func NewDispatcher(log mylogger.Logger, accessSecret string) *Dispatcher {
	return &Dispatcher{
		clients:      make(map[string]*Client),
		log:          log,
		accessSecret: accessSecret,
	}
}

var _ ports.INotifyWebsocket = (*Dispatcher)(nil)

func (d *Dispatcher) WsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := d.log.Action("wsHandler")

		username := r.PathValue("username")
		if username == "" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		// the browser ws API cannot set headers, token rides the query
		if err := d.verifyToken(r.URL.Query().Get("token"), username); err != nil {
			log.Warn("rejected ws connection", "username", username, "reason", err.Error())
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		conn, err := websocketUpgrader.Upgrade(w, r, nil)
		if err != nil {
			log.Error("cannot upgrade", err)
			return
		}

		client := NewClient(context.Background(), conn, d, username)
		d.AddClient(client)
		go client.ReadMessage()
		go client.WriteMessage()

		log.Info("ws client connected", "username", username)
	}
}

func (d *Dispatcher) WriteToUser(username string, msg websocketdto.Event) {
	d.RLock()
	client, ok := d.clients[username]
	d.RUnlock()
	if !ok {
		return
	}

	select {
	case client.egress <- msg:
	default:
		// slow consumer, drop the frame rather than block the caller
	}
}

func (d *Dispatcher) AddClient(client *Client) {
	d.Lock()
	defer d.Unlock()

	// a fresh connection replaces the old one; closing the conn makes
	// the old client's pumps exit on their own
	if old, ok := d.clients[client.username]; ok {
		old.conn.Close()
	}
	d.clients[client.username] = client
}

func (d *Dispatcher) RemoveClient(client *Client) {
	d.Lock()
	defer d.Unlock()

	if d.clients[client.username] == client {
		delete(d.clients, client.username)
	}
	client.conn.Close()
}

func (d *Dispatcher) verifyToken(tokenString, username string) error {
	if tokenString == "" {
		return jwt.NewValidationError("empty token", jwt.ValidationErrorMalformed)
	}
	tokenString = strings.TrimPrefix(tokenString, "Bearer ")

	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		return []byte(d.accessSecret), nil
	})
	if err != nil {
		return err
	}
	if !token.Valid {
		return jwt.NewValidationError("invalid token", jwt.ValidationErrorSignatureInvalid)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return jwt.NewValidationError("invalid claims", jwt.ValidationErrorClaimsInvalid)
	}
	if claimed, ok := claims["username"].(string); !ok || claimed != username {
		return jwt.NewValidationError("username mismatch", jwt.ValidationErrorClaimsInvalid)
	}
	return nil
}
