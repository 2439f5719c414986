package feed

import (
	"bufio"
	"encoding/json"
	"net"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CADMonkey21/pivx-rpc-go/monitor"
	"github.com/CADMonkey21/pivx-rpc-go/pivxjson"
)

type fakeSource struct {
	mu     sync.Mutex
	latest *monitor.Snapshot
	subs   []chan *monitor.Snapshot
}

func (f *fakeSource) Latest() *monitor.Snapshot {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.latest
}

func (f *fakeSource) Subscribe() (<-chan *monitor.Snapshot, func()) {
	ch := make(chan *monitor.Snapshot, 4)
	f.mu.Lock()
	f.subs = append(f.subs, ch)
	f.mu.Unlock()
	return ch, func() {}
}

func (f *fakeSource) publish(s *monitor.Snapshot) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.latest = s
	for _, ch := range f.subs {
		ch <- s
	}
}

func (f *fakeSource) subscribers() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.subs)
}

func snapshotAt(height int64) *monitor.Snapshot {
	return &monitor.Snapshot{Time: time.Now().UTC(), Chain: &pivxjson.BlockChainInfo{Chain: "main", Blocks: height}}
}

type wireMessage struct {
	ID     json.RawMessage   `json:"id"`
	Result json.RawMessage   `json:"result"`
	Error  *Error            `json:"error"`
	Method string            `json:"method"`
	Params []json.RawMessage `json:"params"`
}

func startServer(t *testing.T, src Source) (*Server, net.Conn, *bufio.Scanner) {
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	srv := NewServer(src)
	go func() { _ = srv.Serve(l) }()
	t.Cleanup(func() { l.Close() })

	conn, err := net.Dial("tcp", l.Addr().String())
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	require.NoError(t, conn.SetDeadline(time.Now().Add(5*time.Second)))
	return srv, conn, bufio.NewScanner(conn)
}

func send(t *testing.T, conn net.Conn, line string) {
	_, err := conn.Write([]byte(line + "\n"))
	require.NoError(t, err)
}

func readMessage(t *testing.T, sc *bufio.Scanner) wireMessage {
	require.True(t, sc.Scan(), "connection closed: %v", sc.Err())
	var msg wireMessage
	require.NoError(t, json.Unmarshal(sc.Bytes(), &msg))
	return msg
}

func TestPingAndUnknownMethod(t *testing.T) {
	srv, conn, sc := startServer(t, &fakeSource{})

	send(t, conn, `{"id":1,"method":"feed.ping"}`)
	msg := readMessage(t, sc)
	assert.JSONEq(t, `1`, string(msg.ID))
	assert.JSONEq(t, `"pong"`, string(msg.Result))
	assert.Equal(t, 1, srv.ClientCount())

	send(t, conn, `{"id":2,"method":"getblock"}`)
	msg = readMessage(t, sc)
	require.NotNil(t, msg.Error)
	assert.Equal(t, -32601, msg.Error.Code)
}

func TestLatest(t *testing.T) {
	src := &fakeSource{}
	_, conn, sc := startServer(t, src)

	send(t, conn, `{"id":"a","method":"feed.latest"}`)
	msg := readMessage(t, sc)
	require.NotNil(t, msg.Error)
	assert.Equal(t, "no snapshot yet", msg.Error.Message)

	src.publish(snapshotAt(10))
	send(t, conn, `{"id":"b","method":"feed.latest"}`)
	msg = readMessage(t, sc)
	require.Nil(t, msg.Error)
	var snap monitor.Snapshot
	require.NoError(t, json.Unmarshal(msg.Result, &snap))
	assert.Equal(t, int64(10), snap.Chain.Blocks)
}

func TestSubscribeStreamsSnapshots(t *testing.T) {
	src := &fakeSource{}
	src.publish(snapshotAt(1))
	_, conn, sc := startServer(t, src)

	send(t, conn, `{"id":1,"method":"feed.subscribe"}`)
	ack := readMessage(t, sc)
	assert.JSONEq(t, `true`, string(ack.Result))

	first := readMessage(t, sc)
	assert.Equal(t, MethodSnapshot, first.Method)
	require.Len(t, first.Params, 1)

	require.Eventually(t, func() bool { return src.subscribers() == 1 }, time.Second, time.Millisecond)
	src.publish(snapshotAt(2))

	next := readMessage(t, sc)
	assert.Equal(t, MethodSnapshot, next.Method)
	var snap monitor.Snapshot
	require.NoError(t, json.Unmarshal(next.Params[0], &snap))
	assert.Equal(t, int64(2), snap.Chain.Blocks)
}
