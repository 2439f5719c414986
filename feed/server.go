// Package feed streams node snapshots to TCP clients as line-delimited JSON.
//
// A client sends {"id":1,"method":"feed.subscribe"} to receive every new
// snapshot as a {"method":"feed.snapshot","params":[...]} line,
// "feed.latest" to fetch the current one and "feed.ping" to keep the
// connection alive.
package feed

import (
	"encoding/json"
	"errors"
	"io"
	"net"
	"sync"
	"time"

	"github.com/CADMonkey21/pivx-rpc-go/logging"
	"github.com/CADMonkey21/pivx-rpc-go/monitor"
)

// Source is what the server streams from; *monitor.Monitor implements it.
type Source interface {
	Latest() *monitor.Snapshot
	Subscribe() (<-chan *monitor.Snapshot, func())
}

type Server struct {
	source      Source
	idleTimeout time.Duration

	mu      sync.Mutex
	clients map[uint64]*Client
}

func NewServer(source Source) *Server {
	return &Server{
		source:      source,
		idleTimeout: 10 * time.Minute,
		clients:     make(map[uint64]*Client),
	}
}

func (s *Server) ClientCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.clients)
}

// Serve accepts connections on l until it is closed.
func (s *Server) Serve(l net.Listener) error {
	logging.Infof("FEED: Listening for clients on %s", l.Addr())
	for {
		conn, err := l.Accept()
		if err != nil {
			if errors.Is(err, net.ErrClosed) {
				return nil
			}
			var ne net.Error
			if errors.As(err, &ne) && ne.Timeout() {
				logging.Warnf("FEED: Failed to accept new connection: %v", err)
				continue
			}
			return err
		}
		go s.handleConnection(conn)
	}
}

func (s *Server) handleConnection(conn net.Conn) {
	client := NewClient(conn)
	logging.Infof("FEED: New client connection from %s (ID: %d)", conn.RemoteAddr(), client.ID)

	s.mu.Lock()
	s.clients[client.ID] = client
	s.mu.Unlock()

	done := make(chan struct{})
	defer func() {
		close(done)
		conn.Close()
		s.mu.Lock()
		delete(s.clients, client.ID)
		s.mu.Unlock()
		logging.Infof("FEED: Client %s disconnected.", conn.RemoteAddr())
	}()

	decoder := json.NewDecoder(client.reader)
	for {
		conn.SetReadDeadline(time.Now().Add(s.idleTimeout))

		var req Request
		if err := decoder.Decode(&req); err != nil {
			if err != io.EOF {
				logging.Warnf("FEED: Error reading from client %s: %v", conn.RemoteAddr(), err)
			}
			return
		}

		switch req.Method {
		case MethodSubscribe:
			s.handleSubscribe(client, &req, done)
		case MethodLatest:
			s.handleLatest(client, &req)
		case MethodPing:
			s.reply(client, Response{ID: req.ID, Result: "pong"})
		default:
			logging.Warnf("FEED: Received unhandled method '%s' from %s", req.Method, conn.RemoteAddr())
			s.reply(client, Response{ID: req.ID, Error: errUnknownMethod})
		}
	}
}

func (s *Server) handleLatest(c *Client, req *Request) {
	snap := s.source.Latest()
	if snap == nil {
		s.reply(c, Response{ID: req.ID, Error: errNoSnapshot})
		return
	}
	s.reply(c, Response{ID: req.ID, Result: snap})
}

func (s *Server) handleSubscribe(c *Client, req *Request, done <-chan struct{}) {
	if c.Subscribed {
		s.reply(c, Response{ID: req.ID, Result: true})
		return
	}
	c.Subscribed = true
	updates, cancel := s.source.Subscribe()
	s.reply(c, Response{ID: req.ID, Result: true})

	if snap := s.source.Latest(); snap != nil {
		s.push(c, snap)
	}
	go func() {
		defer cancel()
		for {
			select {
			case <-done:
				return
			case snap, ok := <-updates:
				if !ok {
					return
				}
				if err := s.push(c, snap); err != nil {
					c.Conn.Close()
					return
				}
			}
		}
	}()
}

func (s *Server) push(c *Client, snap *monitor.Snapshot) error {
	err := c.Send(Response{Method: MethodSnapshot, Params: []interface{}{snap}})
	if err != nil {
		logging.Warnf("FEED: Failed to send snapshot to %s: %v", c.Conn.RemoteAddr(), err)
	}
	return err
}

func (s *Server) reply(c *Client, resp Response) {
	if err := c.Send(resp); err != nil {
		logging.Warnf("FEED: Failed to send response to %s: %v", c.Conn.RemoteAddr(), err)
	}
}
