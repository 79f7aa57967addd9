package cdc

import (
	"context"
	"encoding/json"
	"fmt"
	"github.com/cockroachdb/errors"
	"github.com/rs/zerolog/log"
	"io"
	"net"
	"sync"
	"time"
)

const streamWriteTimeout = 100 * time.Millisecond

type StreamConfig struct {
	Address string
	Port    int
	// Listener replaces the TCP listener built from Address and Port.
	Listener net.Listener
	Manager  *Manager
}

func (c *StreamConfig) validate() error {
	var errGrp []error
	if c.Listener == nil {
		if c.Address == "" {
			errGrp = append(errGrp, errors.New("address required"))
		}
		if c.Port <= 0 {
			errGrp = append(errGrp, errors.Newf("invalid port: %d", c.Port))
		}
	}
	if c.Manager == nil {
		errGrp = append(errGrp, errors.New("manager required"))
	}
	return errors.Join(errGrp...)
}

// Stream pushes every change event to connected TCP clients as newline-delimited JSON.
// A client that cannot take a write within streamWriteTimeout is disconnected.
type Stream struct {
	listener net.Listener
	manager  *Manager
	sub      *Subscription

	procCtx    context.Context
	procCancel context.CancelFunc
	wg         sync.WaitGroup

	clients    map[net.Conn]struct{}
	clientsMux sync.Mutex
}

func NewStream(cfg *StreamConfig) (*Stream, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	lis := cfg.Listener
	if lis == nil {
		addr := fmt.Sprintf("%s:%d", cfg.Address, cfg.Port)
		var err error
		lis, err = net.Listen("tcp", addr)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to listen on %s", addr)
		}
	}

	ctx, cancel := context.WithCancel(context.Background())
	return &Stream{
		listener:   lis,
		manager:    cfg.Manager,
		sub:        cfg.Manager.Subscribe(0),
		procCtx:    ctx,
		procCancel: cancel,
		clients:    make(map[net.Conn]struct{}),
	}, nil
}

// Addr is the address clients connect to.
func (s *Stream) Addr() net.Addr {
	return s.listener.Addr()
}

// Start serves clients. Events emitted since NewStream are queued in the subscription and
// reach the clients connected by the time the broadcast loop handles them.
func (s *Stream) Start() error {
	s.wg.Add(2)
	go func() {
		defer s.wg.Done()
		for e := range s.sub.Events() {
			s.broadcast(e)
		}
	}()
	go func() {
		defer s.wg.Done()
		s.accept()
	}()

	log.Info().Str("address", s.listener.Addr().String()).Msg("cdc stream listening")
	return nil
}

func (s *Stream) accept() {
	for {
		conn, err := s.listener.Accept()
		if err != nil {
			if s.procCtx.Err() != nil {
				return
			}
			log.Warn().Err(err).Msg("failed to accept cdc client")
			continue
		}

		s.clientsMux.Lock()
		s.clients[conn] = struct{}{}
		s.clientsMux.Unlock()

		s.wg.Add(1)
		go func() {
			defer s.wg.Done()
			s.handle(conn)
		}()
	}
}

// handle only reads to notice when the client goes away.
func (s *Stream) handle(conn net.Conn) {
	log.Debug().Str("client", conn.RemoteAddr().String()).Msg("cdc client connected")
	defer s.drop(conn)

	buffer := make([]byte, 512)
	for {
		if _, err := conn.Read(buffer); err != nil {
			if !errors.Is(err, io.EOF) && s.procCtx.Err() == nil {
				log.Debug().Err(err).Str("client", conn.RemoteAddr().String()).Msg("cdc client read failed")
			}
			return
		}
	}
}

func (s *Stream) drop(conn net.Conn) {
	s.clientsMux.Lock()
	delete(s.clients, conn)
	s.clientsMux.Unlock()
	_ = conn.Close()
}

func (s *Stream) broadcast(e *Event) {
	data, err := json.Marshal(e)
	if err != nil {
		log.Error().Err(err).Msg("failed to marshal cdc event")
		return
	}
	message := append(data, '\n')

	s.clientsMux.Lock()
	defer s.clientsMux.Unlock()

	for conn := range s.clients {
		_ = conn.SetWriteDeadline(time.Now().Add(streamWriteTimeout))
		if _, err := conn.Write(message); err != nil {
			log.Warn().Err(err).Str("client", conn.RemoteAddr().String()).Msg("dropping slow cdc client")
			delete(s.clients, conn)
			_ = conn.Close()
		}
	}
}

// Stop closes the listener and every client connection.
func (s *Stream) Stop() error {
	if s.procCancel != nil {
		s.procCancel()
	}
	err := s.listener.Close()
	s.sub.Close()

	s.clientsMux.Lock()
	for conn := range s.clients {
		_ = conn.Close()
	}
	s.clientsMux.Unlock()

	s.wg.Wait()
	if err != nil && !errors.Is(err, net.ErrClosed) {
		return errors.Wrap(err, "failed to close cdc listener")
	}
	return nil
}

func (s *Stream) Name() string {
	return "CDC Stream"
}
