// SPDX-License-Identifier: Unlicense OR MIT

/*
Package remote delivers input sent over a websocket to an app.Inbox.

Each text message is a JSON encoded [Message], such as

	{"kind": "button", "x": 10, "y": 10, "button": 0, "pressed": true}
	{"kind": "key", "key": "Tab", "state": "press", "modifiers": ["shift"]}

Messages that can't be delivered are answered with a [Reply] carrying
the error; the connection stays open.

Browsers may only connect from pages of the same host as the handler,
or from the origins passed to [NewHandler]. Clients that send no Origin
header, such as [Client], are always accepted.
*/
package remote

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/gorilla/websocket"
	"github.com/kataras/golog"
	"golang.org/x/exp/slices"

	"gioui.org/inputengine/app"
)

// Handler is an http.Handler accepting websocket connections.
type Handler struct {
	inbox    *app.Inbox
	upgrader websocket.Upgrader
	origins  []string
	log      *golog.Logger
}

var logger = golog.Child("[remote]")

// NewHandler returns a handler delivering input to inbox. Browser
// pages from other hosts may connect only if their origin, such as
// "https://example.com", is listed in origins.
func NewHandler(inbox *app.Inbox, origins ...string) *Handler {
	h := &Handler{
		inbox:   inbox,
		origins: slices.Clone(origins),
		log:     logger,
	}
	h.upgrader = websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin:     h.checkOrigin,
	}
	return h
}

func (h *Handler) checkOrigin(r *http.Request) bool {
	origin := r.Header.Get("Origin")
	if origin == "" {
		return true
	}
	if slices.Contains(h.origins, origin) {
		return true
	}
	u, err := url.Parse(origin)
	if err != nil {
		return false
	}
	if !strings.EqualFold(u.Host, r.Host) {
		h.log.Warnf("rejected origin %q", origin)
		return false
	}
	return true
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.log.Warnf("upgrade %s: %v", r.RemoteAddr, err)
		return
	}
	defer conn.Close()
	h.log.Infof("client connected: %s", r.RemoteAddr)
	if err := h.serve(conn); err != nil {
		h.log.Warnf("client %s: %v", r.RemoteAddr, err)
		return
	}
	h.log.Infof("client disconnected: %s", r.RemoteAddr)
}

func (h *Handler) serve(conn *websocket.Conn) error {
	for {
		typ, data, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				return fmt.Errorf("remote: read: %w", err)
			}
			return nil
		}
		if typ != websocket.TextMessage {
			h.log.Debugf("ignoring message of type %d", typ)
			continue
		}
		if err := h.deliver(data); err != nil {
			h.log.Debugf("%v", err)
			reply, _ := json.Marshal(Reply{Error: err.Error()})
			if err := conn.WriteMessage(websocket.TextMessage, reply); err != nil {
				return fmt.Errorf("remote: reply: %w", err)
			}
		}
	}
}

func (h *Handler) deliver(data []byte) error {
	m, err := Decode(data)
	if err != nil {
		return err
	}
	switch m.Kind {
	case "focus":
		h.inbox.SetFocused(m.Focused)
	case "modifiers":
		mods, err := m.Mods()
		if err != nil {
			return err
		}
		h.inbox.SetModifiers(mods)
	default:
		e, err := m.Event()
		if err != nil {
			return err
		}
		h.inbox.Push(e)
	}
	return nil
}

// Client sends input to a Handler.
type Client struct {
	conn *websocket.Conn
}

// Dial connects to the handler at the websocket url.
func Dial(ctx context.Context, url string) (*Client, error) {
	conn, _, err := websocket.DefaultDialer.DialContext(ctx, url, nil)
	if err != nil {
		return nil, fmt.Errorf("remote: dial: %w", err)
	}
	return &Client{conn: conn}, nil
}

// Send sends a message.
func (c *Client) Send(m Message) error {
	data, err := Encode(m)
	if err != nil {
		return fmt.Errorf("remote: encode: %w", err)
	}
	if err := c.conn.WriteMessage(websocket.TextMessage, data); err != nil {
		return fmt.Errorf("remote: send: %w", err)
	}
	return nil
}

// Reply waits for the reply to a rejected message.
func (c *Client) Reply() (Reply, error) {
	_, data, err := c.conn.ReadMessage()
	if err != nil {
		return Reply{}, fmt.Errorf("remote: read: %w", err)
	}
	var r Reply
	if err := json.Unmarshal(data, &r); err != nil {
		return Reply{}, fmt.Errorf("remote: decode: %w", err)
	}
	return r, nil
}

// Close closes the connection.
func (c *Client) Close() error {
	msg := websocket.FormatCloseMessage(websocket.CloseNormalClosure, "")
	werr := c.conn.WriteMessage(websocket.CloseMessage, msg)
	if err := errors.Join(werr, c.conn.Close()); err != nil {
		return fmt.Errorf("remote: close: %w", err)
	}
	return nil
}
