package ws

import (
	"context"
	"encoding/json"

	websocketdto "trek-tango/internal/trek-service/core/domain/websocket_dto"

	"github.com/gorilla/websocket"
)

type Client struct {
	ctx      context.Context
	conn     *websocket.Conn
	dis      *Dispatcher
	egress   chan websocketdto.Event
	username string
}

func NewClient(ctx context.Context, conn *websocket.Conn, dis *Dispatcher, username string) *Client {
	return &Client{
		ctx:      ctx,
		conn:     conn,
		dis:      dis,
		egress:   make(chan websocketdto.Event, 8),
		username: username,
	}
}

// ReadMessage drains the connection until it drops. The stream is
// push-only; incoming frames are discarded.
func (c *Client) ReadMessage() {
	defer c.dis.RemoveClient(c)

	c.conn.SetReadLimit(1024)
	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			return
		}
	}
}

func (c *Client) WriteMessage() {
	defer c.conn.Close()

	for {
		select {
		case <-c.ctx.Done():
			return
		case event, ok := <-c.egress:
			if !ok {
				return
			}
			payload, err := json.Marshal(event)
			if err != nil {
				continue
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, payload); err != nil {
				return
			}
		}
	}
}
