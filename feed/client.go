package feed

import (
	"bufio"
	"encoding/json"
	"net"
	"sync"
	"sync/atomic"
	"time"
)

var nextClientID atomic.Uint64

// Client is one connected feed consumer.
type Client struct {
	Conn       net.Conn
	ID         uint64
	Subscribed bool

	reader  *bufio.Reader
	encoder *json.Encoder
	mu      sync.Mutex
}

func NewClient(conn net.Conn) *Client {
	return &Client{
		Conn:    conn,
		ID:      nextClientID.Add(1),
		reader:  bufio.NewReader(conn),
		encoder: json.NewEncoder(conn),
	}
}

// Send writes one line. Writes from the reader loop and the push loop are
// serialized.
func (c *Client) Send(resp Response) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.Conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
	return c.encoder.Encode(resp)
}
