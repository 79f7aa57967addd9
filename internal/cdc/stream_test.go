package cdc

import (
	"bufio"
	"encoding/json"
	"github.com/stretchr/testify/require"
	"net"
	"testing"
	"time"
)

func TestNewStream(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		cfg   *StreamConfig
		error string
	}{
		"invalid config": {
			cfg:   &StreamConfig{},
			error: "address required\ninvalid port: 0\nmanager required",
		},
		"listener replaces address": {
			cfg: &StreamConfig{Manager: newStartedManager(t)},
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			req := require.New(t)
			if tc.cfg.Manager != nil {
				lis, err := net.Listen("tcp", "127.0.0.1:0")
				req.NoError(err)
				tc.cfg.Listener = lis
			}

			s, err := NewStream(tc.cfg)
			if tc.error != "" {
				req.EqualError(err, tc.error)
				req.Nil(s)
				return
			}
			req.NoError(err)
			req.Equal("CDC Stream", s.Name())
			req.NoError(s.Stop())
		})
	}
}

func TestStream_SubscribesBeforeStart(t *testing.T) {
	t.Parallel()
	req := require.New(t)

	m, err := New(&Config{BufferSize: 16, SubscriberBuffer: 4})
	req.NoError(err)
	lis, err := net.Listen("tcp", "127.0.0.1:0")
	req.NoError(err)

	s, err := NewStream(&StreamConfig{Listener: lis, Manager: m})
	req.NoError(err)

	// emitted while the manager and the stream are both still stopped
	m.Emit(&Event{Operation: OperationCreateTable, Table: "users"})
	req.NoError(m.Start())

	e := receive(t, s.sub)
	req.Equal(OperationCreateTable, e.Operation)
	req.Equal("users", e.Table)

	req.NoError(s.Stop())
	req.NoError(m.Stop())
}

func (s *Stream) clientCount() int {
	s.clientsMux.Lock()
	defer s.clientsMux.Unlock()
	return len(s.clients)
}

func TestStream_Broadcast(t *testing.T) {
	t.Parallel()
	req := require.New(t)

	m := newStartedManager(t)
	lis, err := net.Listen("tcp", "127.0.0.1:0")
	req.NoError(err)

	s, err := NewStream(&StreamConfig{Listener: lis, Manager: m})
	req.NoError(err)
	req.NoError(s.Start())

	conn, err := net.Dial("tcp", s.Addr().String())
	req.NoError(err)
	defer conn.Close()

	req.Eventually(func() bool {
		return s.clientCount() == 1
	}, 2*time.Second, 10*time.Millisecond)

	m.Emit(&Event{Operation: OperationPut, Table: "users", Row: []byte("r1"), Value: []byte("v1")})

	req.NoError(conn.SetReadDeadline(time.Now().Add(2 * time.Second)))
	line, err := bufio.NewReader(conn).ReadBytes('\n')
	req.NoError(err)

	var got Event
	req.NoError(json.Unmarshal(line, &got))
	req.Equal(OperationPut, got.Operation)
	req.Equal("users", got.Table)
	req.Equal("r1", string(got.Row))
	req.Equal("v1", string(got.Value))

	req.NoError(s.Stop())
	req.Zero(s.clientCount())

	// the server side closed the connection
	_, err = bufio.NewReader(conn).ReadBytes('\n')
	req.Error(err)
}
